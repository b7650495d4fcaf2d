// Package stress derives stress codes from transcriptions and the
// typicality of a stress pattern among words with as many syllables.
package stress

import (
	"fmt"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Model reads stress from words tokenized with stress recognition.
type Model struct {
	tok *tokenize.Tokenizer
}

// NewModel requires a stress-recognizing tokenizer over an inventory with
// a primary stress symbol.
func NewModel(tok *tokenize.Tokenizer) (*Model, error) {
	if !tok.Inventory().SupportsStress() {
		return nil, fmt.Errorf("%w: %s", internalerr.ErrStressUnsupported, tok.Inventory().System())
	}
	if !tok.RecognizesStress() {
		return nil, fmt.Errorf("%w: tokenizer drops stress markers", internalerr.ErrInvalidInput)
	}
	return &Model{tok: tok}, nil
}

// Tokenizer returns the stress-recognizing tokenizer.
func (m *Model) Tokenizer() *tokenize.Tokenizer { return m.tok }

// Code is 1 plus the number of vowels before the first primary stress
// marker, or 0 when the word carries none.
func (m *Model) Code(w tokenize.Word) int {
	return m.code(w, m.tok.Inventory().PrimaryStress())
}

// SecondaryCode is Code for the secondary stress marker. Systems without
// one always yield 0.
func (m *Model) SecondaryCode(w tokenize.Word) int {
	return m.code(w, m.tok.Inventory().SecondaryStress())
}

func (m *Model) code(w tokenize.Word, marker string) int {
	if marker == "" {
		return 0
	}
	inv := m.tok.Inventory()
	vowels := 0
	for _, s := range w.Symbols {
		if s == marker {
			return vowels + 1
		}
		if inv.IsVowel(s) {
			vowels++
		}
	}
	return 0
}

// Syllables counts vowel symbols.
func (m *Model) Syllables(w tokenize.Word) int { return m.tok.Syllables(w) }

// Table maps syllable count to the probability of each stress code.
type Table struct {
	probs map[int]map[int]float64
}

// BuildTable counts stress codes per syllable count over the reference
// words, duplicates included.
func (m *Model) BuildTable(words []tokenize.Word) *Table {
	counts := make(map[int]map[int]int)
	totals := make(map[int]int)
	for _, w := range words {
		syl := m.Syllables(w)
		if counts[syl] == nil {
			counts[syl] = make(map[int]int)
		}
		counts[syl][m.Code(w)]++
		totals[syl]++
	}

	t := &Table{probs: make(map[int]map[int]float64, len(counts))}
	for syl, codes := range counts {
		t.probs[syl] = make(map[int]float64, len(codes))
		for code, n := range codes {
			t.probs[syl][code] = float64(n) / float64(totals[syl])
		}
	}
	return t
}

// Probability looks up a code. Monosyllables are undefined; an unseen
// code or syllable count is 0.
func (t *Table) Probability(syllables, code int) stats.Float {
	if syllables < 2 {
		return stats.Undefined
	}
	return stats.Of(t.probs[syllables][code])
}

// Typicality is the probability of w's stress code among reference words
// with the same number of syllables.
func (m *Model) Typicality(t *Table, w tokenize.Word) stats.Float {
	return t.Probability(m.Syllables(w), m.Code(w))
}
