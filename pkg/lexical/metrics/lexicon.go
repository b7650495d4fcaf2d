package metrics

import (
	"sync"

	"github.com/cognicore/lexical/pkg/lexical/biphone"
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/stats"
)

// lexicon holds the measures shared by the single-sequence word kinds.
type lexicon struct {
	index *corpus.Index

	pairsOnce sync.Once
	pairs     *biphone.Table
}

// Index returns the corpus index queries run against.
func (l *lexicon) Index() *corpus.Index { return l.index }

// Neighbours returns the entries at distance 1, cached per query and kind.
func (l *lexicon) Neighbours(q *Query, kind neighbours.Kind) []corpus.Entry {
	if q.cache == nil {
		q.cache = make(wordCache, 2)
	}
	if set, ok := q.cache[kind]; ok {
		return set
	}
	set := neighbours.Find(q.Word, l.index, kind)
	q.cache[kind] = set
	return set
}

func (l *lexicon) Density(q *Query, kind neighbours.Kind) int {
	return neighbours.Density(l.Neighbours(q, kind))
}

func (l *lexicon) Frequency(q *Query, kind neighbours.Kind) (mean, sd stats.Float) {
	return neighbours.Frequency(l.Neighbours(q, kind))
}

// Nearest ranks the corpus by edit distance.
func (l *lexicon) Nearest(q *Query) neighbours.Ranking[corpus.Entry] {
	return neighbours.Nearest(q.Word, l.index, neighbours.Edit)
}

func (l *lexicon) LD20(q *Query) (mean, sd stats.Float) {
	r := l.Nearest(q)
	return r.Mean, r.SD
}

// Connectivity is computed over the edit-distance neighbours.
func (l *lexicon) Connectivity(q *Query) (stats.Float, error) {
	set := l.Neighbours(q, neighbours.Edit)
	return neighbours.Connectivity(neighbours.Words(set), neighbours.Edit), nil
}

// Spread is computed over the substitution neighbours.
func (l *lexicon) Spread(q *Query) int {
	set := l.Neighbours(q, neighbours.Substitution)
	return neighbours.Spread(q.Word, neighbours.Words(set))
}

func (l *lexicon) UniquenessPoint(q *Query) int {
	return neighbours.UniquenessPoint(q.Word, l.index.ByFirstSymbol())
}

func (l *lexicon) PositionNeighbours(q *Query) []int {
	return neighbours.ByPosition(q.Word, l.index)
}

// pairScore sums positional bigram or biphone probabilities. The table
// is built on first use.
func (l *lexicon) pairScore(q *Query) stats.Float {
	l.pairsOnce.Do(func() {
		l.pairs = biphone.Build(l.index.Entries())
	})
	return l.pairs.Score(q.Word)
}
