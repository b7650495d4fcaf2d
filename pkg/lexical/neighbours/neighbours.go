package neighbours

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Find returns the corpus entries at distance exactly 1 from word, in
// corpus order.
func Find(word tokenize.Word, idx *corpus.Index, kind Kind) []corpus.Entry {
	var out []corpus.Entry
	for _, e := range idx.Entries() {
		if isNeighbour(word, e.Word, kind) {
			out = append(out, e)
		}
	}
	return out
}

// ByPosition counts, per symbol position, the equal-length entries that
// differ from word at that position only.
func ByPosition(word tokenize.Word, idx *corpus.Index) []int {
	counts := make([]int, word.Len())
	code := word.Code()
	for _, e := range idx.Entries() {
		other := e.Word.Code()
		if len(other) != len(code) {
			continue
		}
		pos, mismatches := -1, 0
		for i := range code {
			if code[i] != other[i] {
				pos = i
				mismatches++
				if mismatches > 1 {
					break
				}
			}
		}
		if mismatches == 1 {
			counts[pos]++
		}
	}
	return counts
}

// Density is the size of a neighbour set.
func Density(set []corpus.Entry) int { return len(set) }

// Frequency returns the mean and sample SD of the neighbours' frequencies.
func Frequency(set []corpus.Entry) (mean, sd stats.Float) {
	freqs := make([]float64, len(set))
	for i, e := range set {
		freqs[i] = e.Freq
	}
	return stats.MeanSD(freqs)
}

// Words extracts the tokenized forms of a neighbour set.
func Words(set []corpus.Entry) []tokenize.Word {
	out := make([]tokenize.Word, len(set))
	for i, e := range set {
		out[i] = e.Word
	}
	return out
}

// Keys extracts the index keys of a neighbour set.
func Keys(set []corpus.Entry) []string {
	out := make([]string, len(set))
	for i, e := range set {
		out[i] = e.Key
	}
	return out
}

// Connectivity is the C coefficient: edges among the neighbours, where an
// edge is a distance of exactly 1, over the edges of a complete graph.
// It is 0 for no neighbours and undefined for a single one.
func Connectivity(set []tokenize.Word, kind Kind) stats.Float {
	return connectivity(len(set), func(i, j int) bool {
		return isNeighbour(set[i], set[j], kind)
	})
}

func connectivity(n int, edge func(i, j int) bool) stats.Float {
	switch n {
	case 0:
		return stats.Of(0)
	case 1:
		return stats.Undefined
	}
	edges := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if edge(i, j) {
				edges++
			}
		}
	}
	return stats.Of(float64(edges) / (float64(n*(n-1)) / 2))
}

// Spread counts the positions at which deleting a symbol from word and
// from some substitution neighbour leaves the two identical.
func Spread(word tokenize.Word, set []tokenize.Word) int {
	if len(set) == 0 {
		return 0
	}
	code := word.Code()
	spread := 0
	for i := range code {
		target := without(code, i)
		for _, n := range set {
			if without(n.Code(), i) == target {
				spread++
				break
			}
		}
	}
	return spread
}

func without(code []rune, i int) string {
	if i >= len(code) {
		return string(code)
	}
	out := make([]rune, 0, len(code)-1)
	out = append(out, code[:i]...)
	return string(append(out, code[i+1:]...))
}

// UniquenessPoint returns 1 plus the number of prefixes of word that are
// still shared with another corpus word starting with the same symbol.
// An empty word has point 0.
func UniquenessPoint(word tokenize.Word, byFirst map[rune][]tokenize.Word) int {
	code := word.Code()
	if len(code) == 0 {
		return 0
	}
	var competitors []tokenize.Word
	for _, w := range byFirst[code[0]] {
		if !w.Equal(word) {
			competitors = append(competitors, w)
		}
	}

	point := 1
	for p := 1; p <= len(code) && len(competitors) > 0; p++ {
		kept := competitors[:0:0]
		for _, w := range competitors {
			if hasPrefix(w.Code(), code[:p]) {
				kept = append(kept, w)
			}
		}
		competitors = kept
		if len(competitors) > 0 {
			point++
		}
	}
	return point
}

func hasPrefix(code, prefix []rune) bool {
	if len(code) < len(prefix) {
		return false
	}
	for i := range prefix {
		if code[i] != prefix[i] {
			return false
		}
	}
	return true
}
