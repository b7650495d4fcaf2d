package inventory

// System identifies a transcription system of the predefined catalogue,
// or Custom for a user-supplied inventory.
type System string

const (
	IPAUS    System = "ipa-us"
	IPAUK    System = "ipa-uk"
	IPAFR    System = "ipa-fr"
	IPAES    System = "ipa-es"
	IPANL    System = "ipa-nl"
	IPADE    System = "ipa-de"
	SAMPAUS  System = "sampa-us"
	SAMPAUK  System = "sampa-uk"
	SAMPAFR  System = "sampa-fr"
	SAMPAES  System = "sampa-es"
	SAMPANL  System = "sampa-nl"
	SAMPADE  System = "sampa-de"
	Klattese System = "klattese"
	Custom   System = "custom"
)

const (
	ipaPrimary     = "ˈ"
	ipaSecondary   = "ˌ"
	sampaPrimary   = `"`
	sampaSecondary = "%"
	sampaBoundary  = "."
)

// definition is the raw catalogue entry a predefined Inventory is built from.
type definition struct {
	consonants  []string
	vowels      []string
	rhotics     []string
	diphthongs  []string
	triphthongs []Triphthong
	boundary    string
	primary     string
	secondary   string
}

var ipaCommonEnglishCons = []string{
	"b", "d", "dʒ", "ð", "f", "ɡ", "h", "j", "k", "l", "m", "n", "ŋ", "p", "r", "s", "ʃ", "t", "tʃ", "θ",
	"v", "w", "z", "ʒ", "ʍ", "x", "ʔ",
}

var catalogue = map[System]definition{
	IPAUS: {
		consonants: ipaCommonEnglishCons,
		vowels:     []string{"ɪ", "i", "ɛ", "æ", "ɑ", "ɔ", "ʊ", "u", "ə", "eɪ", "aɪ", "aʊ", "oʊ", "ɔɪ"},
		diphthongs: []string{"eɪ", "aɪ", "aʊ", "oʊ", "ɔɪ"},
		primary:    ipaPrimary,
		secondary:  ipaSecondary,
	},
	IPAUK: {
		consonants: ipaCommonEnglishCons,
		vowels: []string{"ɪ", "iː", "i", "ɛ", "a", "ɑː", "ɒ", "ɔː", "ʊ", "uː", "ʌ", "ə", "əː", "ɪə", "ɛː", "ʊə",
			"eɪ", "aʊ", "ʌɪ", "əʊ", "ɔɪ"},
		triphthongs: []Triphthong{{First: "ɪə", Second: "ʊ"}, {First: "ʊə", Second: "ʊ"}},
		primary:     ipaPrimary,
		secondary:   ipaSecondary,
	},
	IPAFR: {
		consonants: []string{"b", "d", "f", "ɡ", "k", "l", "m", "n", "ɲ", "ŋ", "p", "ʀ", "s", "ʃ", "t", "v", "z",
			"ʒ", "j", "w", "ɥ"},
		vowels:    []string{"a", "ɑ", "e", "ɛ", "ɛː", "ə", "i", "œ", "ø", "o", "ɔ", "u", "y", "ɑ̃", "ɛ̃", "œ̃", "ɔ̃"},
		primary:   ipaPrimary,
		secondary: ipaSecondary,
	},
	IPAES: {
		consonants: []string{"b", "β", "d", "ð", "f", "ɡ", "ɣ", "ʝ", "k", "l", "ʎ", "m", "n", "ɲ", "ŋ", "p", "r",
			"ɾ", "s", "θ", "t", "tʃ", "v", "x", "z", "ʃ", "j", "w"},
		vowels:    []string{"a", "i", "o", "e", "u"},
		primary:   ipaPrimary,
		secondary: ipaSecondary,
	},
	IPANL: {
		consonants: []string{"b", "d", "f", "ɣ", "h", "j", "k", "l", "m", "n", "ŋ", "p", "r", "s", "t", "v", "ʋ",
			"x", "z", "ɡ", "c", "ɲ", "ʃ", "ʒ"},
		vowels: []string{"ɑ", "ɛ", "ɪ", "ɔ", "ʏ", "ə", "aː", "eː", "i", "oː", "y", "øː", "u", "ɛi", "œy", "ɑu",
			"ɑi", "ɔi", "iu", "yu", "ui", "aːi", "eːu", "oːi", "iː", "yː", "uː", "ɔː", "ɛː", "œː", "ɑː", "ɑ̃", "ɛ̃",
			"ɔ̃", "œ̃"},
		primary:   ipaPrimary,
		secondary: ipaSecondary,
	},
	IPADE: {
		consonants: []string{"b", "ç", "d", "f", "ɡ", "h", "j", "k", "l", "m", "n", "ŋ", "p", "pf", "r", "s", "ʃ",
			"t", "ts", "v", "x", "z", "ʔ", "tʃ", "dʒ", "ʒ", "i̯", "u̯"},
		vowels: []string{"a", "aː", "ɛ", "ɛː", "eː", "ɪ", "iː", "ɔ", "oː", "œ", "øː", "ʊ", "uː", "ʏ", "yː", "ə",
			"aɪ", "aʊ", "ɔʏ", "uɪ", "ɐ", "l̩", "m̩", "n̩"},
		rhotics: []string{"iːr", "ɪr", "yːr", "ʏr", "eːr", "ɛr", "ɛːr", "øːr", "œr", "aːr", "ar", "uːr", "ʊr",
			"oːr", "ɔr"},
		diphthongs: []string{"aɪ", "aʊ", "ɔʏ", "uɪ"},
		primary:    ipaPrimary,
		secondary:  ipaSecondary,
	},
	SAMPAUS: {
		consonants: []string{"b", "d", "dZ", "D", "f", "g", "h", "j", "k", "l", "m", "n", "N", "p", "r", "s", "S",
			"t", "tS", "T", "v", "w", "z", "Z", "W", "x", "?", "4"},
		vowels: []string{"I", "i", "E", "a", "A", "O", "U", "u", "@", "e", "V", "aI", "aU", "o", "OI", "3`", "@`",
			"m=", "n=", "l="},
		boundary:  sampaBoundary,
		primary:   sampaPrimary,
		secondary: sampaSecondary,
	},
	SAMPAUK: {
		consonants: []string{"b", "d", "dZ", "D", "f", "g", "h", "j", "k", "l", "m", "n", "N", "p", "r", "s", "S",
			"t", "tS", "T", "v", "w", "z", "Z", "W", "x", "?"},
		vowels: []string{"I", "i:", "i", "E", "a", "A:", "Q", "O:", "U", "u:", "V", "@", "@:", "I@", "E:", "U@",
			"eI", "aU", "aI", "@U", "OI", "=m", "=n", "=l"},
		triphthongs: []Triphthong{{First: "I@", Second: "U"}, {First: "U@", Second: "U"}},
		boundary:    sampaBoundary,
		primary:     sampaPrimary,
		secondary:   sampaSecondary,
	},
	SAMPAFR: {
		consonants: []string{"b", "d", "f", "g", "k", "l", "m", "n", "J", "N", "p", "R", "s", "S", "t", "v", "z",
			"Z", "j", "w", "H"},
		vowels: []string{"a", "A", "e", "E", "E:", "@", "i", "9", "2", "o", "O", "u", "y", "a~", "e~", "9~",
			"o~"},
		boundary:  sampaBoundary,
		primary:   sampaPrimary,
		secondary: sampaSecondary,
	},
	SAMPAES: {
		consonants: []string{"b", "B", "d", "D", "f", "g", "G", "jj", "k", "l", "L", "m", "n", "J", "N", "p",
			"rr", "r", "s", "T", "t", "tS", "v", "x", "z", "S", "j", "w"},
		vowels:    []string{"a", "i", "o", "e", "u"},
		boundary:  sampaBoundary,
		primary:   sampaPrimary,
		secondary: sampaSecondary,
	},
	SAMPANL: {
		consonants: []string{"b", "d", "f", "G", "h", "j", "k", "l", "m", "n", "N", "p", "r", "s", "t", "v", "P",
			"x", "z", "g", "c", "J", "S", "Z"},
		vowels: []string{"A", "E", "I", "O", "Y", "@", "a:", "e:", "i", "o:", "y", "2:", "u", "Ei", "9y", "Au",
			"Ai", "Oi", "iu", "yu", "ui", "a:i", "e:u", "o:i", "i:", "y:", "u:", "O:", "E:", "9:", "A:", "A~",
			"E~:", "O~", "9~"},
		boundary:  sampaBoundary,
		primary:   sampaPrimary,
		secondary: sampaSecondary,
	},
	SAMPADE: {
		consonants: []string{"b", "C", "d", "f", "g", "h", "j", "k", "l", "m", "n", "N", "p", "pf", "R", "s", "S",
			"t", "ts", "v", "x", "z", "?", "tS", "dZ", "Z"},
		vowels: []string{"a", "a:", "E", "E:", "e:", "I", "i:", "O", "o:", "9", "2:", "U", "u:", "Y", "y:", "@",
			"aI", "aU", "OY", "uI", "6"},
		boundary:  sampaBoundary,
		primary:   sampaPrimary,
		secondary: sampaSecondary,
	},
	Klattese: {
		consonants: []string{"b", "d", "J", "D", "f", "g", "h", "y", "k", "l", "m", "n", "G", "p", "r", "s", "S",
			"t", "C", "T", "v", "w", "z", "Z"},
		vowels: []string{"I", "i", "E", "@", "a", "c", "U", "u", "^", "x", "|", "e", "Y", "W", "o", "O", "R", "X",
			"N", "M", "L"},
		rhotics:    []string{"ar", "cr", "or", "Ir", "Er", "@r", "Ur", "Yr", "Wr"},
		diphthongs: []string{"e", "Y", "W", "o", "O"},
	},
}

// Systems lists the predefined systems in catalogue order.
func Systems() []System {
	return []System{
		IPAUS, IPAUK, IPAFR, IPAES, IPANL, IPADE,
		SAMPAUS, SAMPAUK, SAMPAFR, SAMPAES, SAMPANL, SAMPADE,
		Klattese,
	}
}
