package tokenize

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
)

// TokenizeError reports a string that could not be segmented into
// inventory symbols.
type TokenizeError struct {
	Word string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("unable to tokenize %q", e.Word)
}

// Unwrap lets errors.Is match internalerr.ErrTokenize.
func (e *TokenizeError) Unwrap() error { return internalerr.ErrTokenize }

// Segmenter turns a raw string into a Word.
type Segmenter interface {
	Tokenize(raw string) (Word, error)
}

// Tokenizer segments transcriptions against a symbol inventory by greedy
// longest match.
type Tokenizer struct {
	inv      *inventory.Inventory
	codec    *Codec
	stress   bool
	byLen    map[int]map[string]struct{}
	maxLen   int
	alphabet map[rune]struct{}
}

// Option configures a Tokenizer
type Option func(*Tokenizer)

// WithStress makes stress markers recognized symbols.
func WithStress() Option {
	return func(t *Tokenizer) { t.stress = true }
}

// WithCodec shares a codec between tokenizers.
func WithCodec(c *Codec) Option {
	return func(t *Tokenizer) { t.codec = c }
}

// New creates a tokenizer for the inventory
func New(inv *inventory.Inventory, opts ...Option) *Tokenizer {
	t := &Tokenizer{inv: inv}
	for _, opt := range opts {
		opt(t)
	}
	if t.codec == nil {
		t.codec = NewCodec()
	}
	t.byLen = inv.SymbolsByLength(t.stress)
	t.maxLen = inv.MaxSymbolLen(t.stress)
	t.alphabet = inv.Alphabet(t.stress)
	return t
}

// Inventory returns the inventory the tokenizer segments against.
func (t *Tokenizer) Inventory() *inventory.Inventory { return t.inv }

// Codec returns the codec words are interned with.
func (t *Tokenizer) Codec() *Codec { return t.codec }

// RecognizesStress reports whether stress markers are kept as symbols.
func (t *Tokenizer) RecognizesStress() bool { return t.stress }

// Tokenize segments raw into symbols. Characters outside the inventory are
// dropped first; an empty input yields an empty Word.
func (t *Tokenizer) Tokenize(raw string) (Word, error) {
	if raw == "" {
		return Word{}, nil
	}
	normalized := norm.NFC.String(raw)

	filtered := make([]rune, 0, len(normalized))
	for _, r := range normalized {
		if _, ok := t.alphabet[r]; ok {
			filtered = append(filtered, r)
		}
	}

	symbols, ok := t.segment(filtered)
	if !ok {
		return Word{}, &TokenizeError{Word: raw}
	}
	symbols = t.splitTriphthongs(symbols)
	symbols = t.splitRhotics(symbols)
	symbols = t.dropBoundaries(symbols)

	if len(symbols) == 0 {
		return Word{}, &TokenizeError{Word: raw}
	}
	return t.codec.NewWord(normalized, symbols), nil
}

// segment applies greedy longest match from the left
func (t *Tokenizer) segment(runes []rune) ([]string, bool) {
	var out []string
	i := 0
	for i < len(runes) {
		n := t.maxLen
		if remaining := len(runes) - i; n > remaining {
			n = remaining
		}
		matched := false
		for ; n > 0; n-- {
			candidate := string(runes[i : i+n])
			if _, ok := t.byLen[n][candidate]; ok {
				out = append(out, candidate)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return out, true
}

// splitTriphthongs moves the glide of a fused pair onto the next symbol.
func (t *Tokenizer) splitTriphthongs(symbols []string) []string {
	for _, tri := range t.inv.Triphthongs() {
		first := []rune(tri.First)
		for i := 0; i+1 < len(symbols); i++ {
			if symbols[i] == tri.First && symbols[i+1] == tri.Second {
				symbols[i] = string(first[0])
				symbols[i+1] = string(first[len(first)-1]) + symbols[i+1]
			}
		}
	}
	return symbols
}

// splitRhotics separates vowel+r symbols before another vowel, unless a
// diphthong precedes them.
func (t *Tokenizer) splitRhotics(symbols []string) []string {
	if len(t.inv.Rhotics()) == 0 {
		return symbols
	}
	out := make([]string, 0, len(symbols)+1)
	for i, s := range symbols {
		if t.inv.IsRhotic(s) && i+1 < len(symbols) && t.inv.IsVowel(symbols[i+1]) &&
			(i == 0 || !t.inv.IsDiphthong(symbols[i-1])) {
			runes := []rune(s)
			out = append(out, string(runes[:len(runes)-1]), string(runes[len(runes)-1]))
			continue
		}
		out = append(out, s)
	}
	return out
}

func (t *Tokenizer) dropBoundaries(symbols []string) []string {
	b := t.inv.Boundary()
	if b == "" {
		return symbols
	}
	out := symbols[:0]
	for _, s := range symbols {
		if s != b {
			out = append(out, s)
		}
	}
	return out
}

// Syllables counts the vowel symbols of w.
func (t *Tokenizer) Syllables(w Word) int {
	n := 0
	for _, s := range w.Symbols {
		if t.inv.IsVowel(s) {
			n++
		}
	}
	return n
}

// Orthographic segments spellings into letters.
type Orthographic struct {
	codec *Codec
}

// NewOrthographic creates a letter segmenter with its own codec
func NewOrthographic() *Orthographic {
	return &Orthographic{codec: NewCodec()}
}

// Codec returns the codec words are interned with.
func (o *Orthographic) Codec() *Codec { return o.codec }

// Tokenize lower-cases raw and splits it into runes. It never fails.
func (o *Orthographic) Tokenize(raw string) (Word, error) {
	key := Fold(raw)
	if key == "" {
		return Word{}, nil
	}
	symbols := make([]string, 0, len(key))
	for _, r := range key {
		symbols = append(symbols, string(r))
	}
	return o.codec.NewWord(key, symbols), nil
}

// Fold returns the canonical orthographic key: NFC, lower case, trimmed.
func Fold(raw string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(raw)))
}
