package inventory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
)

// Triphthong is a fused symbol pair whose glide belongs to the next symbol.
// "ɪə" followed by "ʊ" becomes "ɪ" followed by "əʊ".
type Triphthong struct {
	First, Second string
}

// Inventory is the closed set of symbols a transcription system is
// tokenized against. It is immutable once built.
type Inventory struct {
	system      System
	consonants  []string
	vowels      []string
	rhotics     []string
	diphthongs  map[string]struct{}
	triphthongs []Triphthong
	boundary    string
	primary     string
	secondary   string

	vowelSet  map[string]struct{}
	rhoticSet map[string]struct{}
}

// Predefined returns the catalogue inventory for a system
func Predefined(system System) (*Inventory, error) {
	def, ok := catalogue[system]
	if !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnknownSystem, system)
	}
	return build(system, def)
}

// MustPredefined is Predefined for catalogue systems known to exist.
func MustPredefined(system System) *Inventory {
	inv, err := Predefined(system)
	if err != nil {
		panic(err)
	}
	return inv
}

// CustomRow is one line of a user phonetic-system file.
type CustomRow struct {
	Consonant     string
	Vowel         string
	PrimaryStress string
}

// NewCustom builds a user-defined inventory. Blank cells are skipped, the
// primary stress symbol may only be given on the first row, and both
// consonants and vowels must be present.
func NewCustom(rows []CustomRow) (*Inventory, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty phonetic system", internalerr.ErrInvalidInput)
	}
	def := definition{}
	for i, row := range rows {
		if c := strings.TrimSpace(row.Consonant); c != "" {
			def.consonants = append(def.consonants, c)
		}
		if v := strings.TrimSpace(row.Vowel); v != "" {
			def.vowels = append(def.vowels, v)
		}
		stress := strings.TrimSpace(row.PrimaryStress)
		if stress == "" {
			continue
		}
		if i > 0 {
			return nil, fmt.Errorf("%w: stress symbol on row %d, only the first row may carry one",
				internalerr.ErrInvalidInput, i+1)
		}
		def.primary = stress
	}
	if len(def.consonants) == 0 || len(def.vowels) == 0 {
		return nil, fmt.Errorf("%w: phonetic system needs both consonants and vowels", internalerr.ErrInvalidInput)
	}
	return build(Custom, def)
}

func build(system System, def definition) (*Inventory, error) {
	inv := &Inventory{
		system:     system,
		diphthongs: make(map[string]struct{}, len(def.diphthongs)),
		vowelSet:   make(map[string]struct{}, len(def.vowels)+len(def.rhotics)),
		rhoticSet:  make(map[string]struct{}, len(def.rhotics)),
	}

	var err error
	if inv.consonants, err = normalizeAll(def.consonants); err != nil {
		return nil, err
	}
	if inv.vowels, err = normalizeAll(def.vowels); err != nil {
		return nil, err
	}
	if inv.rhotics, err = normalizeAll(def.rhotics); err != nil {
		return nil, err
	}
	diphthongs, err := normalizeAll(def.diphthongs)
	if err != nil {
		return nil, err
	}
	for _, d := range diphthongs {
		inv.diphthongs[d] = struct{}{}
	}
	for _, v := range inv.vowels {
		inv.vowelSet[v] = struct{}{}
	}
	for _, r := range inv.rhotics {
		inv.vowelSet[r] = struct{}{}
		inv.rhoticSet[r] = struct{}{}
	}
	for _, t := range def.triphthongs {
		inv.triphthongs = append(inv.triphthongs, Triphthong{
			First:  norm.NFC.String(t.First),
			Second: norm.NFC.String(t.Second),
		})
	}
	inv.boundary = norm.NFC.String(def.boundary)
	inv.primary = norm.NFC.String(def.primary)
	inv.secondary = norm.NFC.String(def.secondary)
	return inv, nil
}

func normalizeAll(symbols []string) ([]string, error) {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("%w: empty symbol", internalerr.ErrInvalidInput)
		}
		out = append(out, norm.NFC.String(s))
	}
	return out, nil
}

// System returns the system the inventory was built for.
func (inv *Inventory) System() System { return inv.system }

// Consonants returns a copy of the consonant symbols.
func (inv *Inventory) Consonants() []string { return append([]string(nil), inv.consonants...) }

// Vowels returns a copy of the vowel symbols, rhotics excluded.
func (inv *Inventory) Vowels() []string { return append([]string(nil), inv.vowels...) }

// Rhotics returns a copy of the vowel+r symbols.
func (inv *Inventory) Rhotics() []string { return append([]string(nil), inv.rhotics...) }

// Triphthongs returns the fused pairs corrected after segmentation.
func (inv *Inventory) Triphthongs() []Triphthong {
	return append([]Triphthong(nil), inv.triphthongs...)
}

// Boundary returns the syllable boundary symbol, or "" if the system has none.
func (inv *Inventory) Boundary() string { return inv.boundary }

// PrimaryStress returns the primary stress symbol, or "".
func (inv *Inventory) PrimaryStress() string { return inv.primary }

// SecondaryStress returns the secondary stress symbol, or "".
func (inv *Inventory) SecondaryStress() string { return inv.secondary }

// SupportsStress reports whether stress metrics can be computed.
func (inv *Inventory) SupportsStress() bool { return inv.primary != "" }

// IsVowel reports whether sym is a syllable nucleus. Rhotics count as vowels.
func (inv *Inventory) IsVowel(sym string) bool {
	_, ok := inv.vowelSet[sym]
	return ok
}

// IsRhotic reports whether sym is a vowel+r symbol.
func (inv *Inventory) IsRhotic(sym string) bool {
	_, ok := inv.rhoticSet[sym]
	return ok
}

// IsDiphthong reports whether sym blocks a following rhotic split.
func (inv *Inventory) IsDiphthong(sym string) bool {
	_, ok := inv.diphthongs[sym]
	return ok
}

// IsStress reports whether sym is one of the stress markers.
func (inv *Inventory) IsStress(sym string) bool {
	return sym != "" && (sym == inv.primary || sym == inv.secondary)
}

// Phonemes returns consonants, vowels and rhotics in that order.
func (inv *Inventory) Phonemes() []string {
	out := make([]string, 0, len(inv.consonants)+len(inv.vowels)+len(inv.rhotics))
	out = append(out, inv.consonants...)
	out = append(out, inv.vowels...)
	return append(out, inv.rhotics...)
}

// Symbols returns every symbol segmentation may produce: phonemes, the
// boundary and, when withStress is set, the stress markers.
func (inv *Inventory) Symbols(withStress bool) []string {
	out := inv.Phonemes()
	if inv.boundary != "" {
		out = append(out, inv.boundary)
	}
	if withStress {
		if inv.primary != "" {
			out = append(out, inv.primary)
		}
		if inv.secondary != "" {
			out = append(out, inv.secondary)
		}
	}
	return out
}

// SymbolsByLength groups Symbols(withStress) by rune count.
func (inv *Inventory) SymbolsByLength(withStress bool) map[int]map[string]struct{} {
	byLen := make(map[int]map[string]struct{})
	for _, s := range inv.Symbols(withStress) {
		n := utf8.RuneCountInString(s)
		if byLen[n] == nil {
			byLen[n] = make(map[string]struct{})
		}
		byLen[n][s] = struct{}{}
	}
	return byLen
}

// MaxSymbolLen returns the rune length of the longest symbol.
func (inv *Inventory) MaxSymbolLen(withStress bool) int {
	longest := 0
	for _, s := range inv.Symbols(withStress) {
		if n := utf8.RuneCountInString(s); n > longest {
			longest = n
		}
	}
	return longest
}

// Alphabet returns the set of runes occurring in any symbol.
func (inv *Inventory) Alphabet(withStress bool) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, s := range inv.Symbols(withStress) {
		for _, r := range s {
			set[r] = struct{}{}
		}
	}
	return set
}

// ParseSystem maps a system name to a catalogue key.
func ParseSystem(name string) (System, error) {
	s := System(strings.ToLower(strings.TrimSpace(name)))
	if s == Custom {
		return s, nil
	}
	if _, ok := catalogue[s]; !ok {
		return "", fmt.Errorf("%w: %q", internalerr.ErrUnknownSystem, name)
	}
	return s, nil
}
