// Package biphone models positional probabilities of adjacent symbol
// pairs. The same table serves letter bigrams and phoneme biphones.
package biphone

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Pair is two adjacent symbols
type Pair [2]string

// Pairs returns the adjacent symbol pairs of w, in order.
func Pairs(w tokenize.Word) []Pair {
	if w.Len() < 2 {
		return nil
	}
	out := make([]Pair, 0, w.Len()-1)
	for i := 0; i+1 < w.Len(); i++ {
		out = append(out, Pair{w.Symbols[i], w.Symbols[i+1]})
	}
	return out
}

// Table holds, per position, the probability of each pair observed there.
type Table struct {
	positions []map[Pair]float64
}

// Build counts pairs per position weighted by frequency and normalizes
// each position into a distribution. Positions whose weights sum to zero
// stay empty.
func Build(entries []corpus.Entry) *Table {
	var counts []map[Pair]float64
	for _, e := range entries {
		for pos, p := range Pairs(e.Word) {
			for len(counts) <= pos {
				counts = append(counts, make(map[Pair]float64))
			}
			counts[pos][p] += e.Freq
		}
	}

	t := &Table{positions: make([]map[Pair]float64, len(counts))}
	for pos, c := range counts {
		total := 0.0
		for _, n := range c {
			total += n
		}
		probs := make(map[Pair]float64, len(c))
		if total != 0 {
			for p, n := range c {
				probs[p] = n / total
			}
		}
		t.positions[pos] = probs
	}
	return t
}

// Positions returns the number of positions with observations.
func (t *Table) Positions() int { return len(t.positions) }

// Probability returns the probability of p at pos, 0 when unseen.
func (t *Table) Probability(pos int, p Pair) float64 {
	if pos < 0 || pos >= len(t.positions) {
		return 0
	}
	return t.positions[pos][p]
}

// Probabilities returns a copy of the distribution at pos.
func (t *Table) Probabilities(pos int) map[Pair]float64 {
	out := make(map[Pair]float64)
	if pos < 0 || pos >= len(t.positions) {
		return out
	}
	for p, v := range t.positions[pos] {
		out[p] = v
	}
	return out
}

// Score sums the positional probabilities of the pairs of w. Words with
// fewer than two symbols have no pairs and an undefined score.
func (t *Table) Score(w tokenize.Word) stats.Float {
	pairs := Pairs(w)
	if len(pairs) == 0 {
		return stats.Undefined
	}
	sum := 0.0
	for pos, p := range pairs {
		sum += t.Probability(pos, p)
	}
	return stats.Of(sum)
}
