package neighbours

import (
	"sort"

	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// NearestCount is the size of the OLD20/PLD20 neighbourhood.
const NearestCount = 20

// Ranked is a candidate with its distance to the query.
type Ranked[T any] struct {
	Item     T
	Distance int
}

// Ranking holds the nearest candidates, ties at the cutoff included, and
// the mean and SD of the NearestCount smallest distances.
type Ranking[T any] struct {
	Neighbours []Ranked[T]
	Mean       stats.Float
	SD         stats.Float
}

// rank keeps every candidate at or below the distance of the
// NearestCount-th smallest one. Distance 0 is never a candidate; dist
// reports false to skip an item.
func rank[T any](items []T, dist func(T) (int, bool)) Ranking[T] {
	var cands []Ranked[T]
	for _, it := range items {
		d, ok := dist(it)
		if !ok || d == 0 {
			continue
		}
		cands = append(cands, Ranked[T]{Item: it, Distance: d})
	}
	if len(cands) == 0 {
		return Ranking[T]{Mean: stats.Undefined, SD: stats.Undefined}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Distance < cands[j].Distance })

	top := cands
	if len(top) > NearestCount {
		top = top[:NearestCount]
	}
	cutoff := top[len(top)-1].Distance
	end := len(top)
	for end < len(cands) && cands[end].Distance == cutoff {
		end++
	}

	dists := make([]int, len(top))
	for i, c := range top {
		dists[i] = c.Distance
	}
	mean, sd := stats.MeanSD(stats.Ints(dists))
	return Ranking[T]{Neighbours: cands[:end], Mean: mean, SD: sd}
}

// Nearest ranks the corpus by distance to word: the 20 closest entries
// plus every entry tied with the 20th.
func Nearest(word tokenize.Word, idx *corpus.Index, kind Kind) Ranking[corpus.Entry] {
	return rank(idx.Entries(), func(e corpus.Entry) (int, bool) {
		return Distance(word, e.Word, kind), true
	})
}
