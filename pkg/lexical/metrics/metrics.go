// Package metrics exposes the orthographic, phonological and
// phonographic measures of a word against a reference corpus and
// assembles them into records.
package metrics

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Neighbourhood is the capability set shared by the word kinds.
type Neighbourhood[W any] interface {
	Density(w W, kind neighbours.Kind) int
	Identity(w W, kind neighbours.Kind) ([]record.Value, error)
	Frequency(w W, kind neighbours.Kind) (mean, sd stats.Float)
	LD20(w W) (mean, sd stats.Float)
	Connectivity(w W) (stats.Float, error)
}

// Positional is implemented by the kinds with a single symbol sequence.
type Positional[W any] interface {
	Spread(w W) int
	UniquenessPoint(w W) int
	PositionNeighbours(w W) []int
}

var (
	_ Neighbourhood[*Query]     = (*Orthographic)(nil)
	_ Neighbourhood[*Query]     = (*Phonological)(nil)
	_ Neighbourhood[*PairQuery] = (*Phonographic)(nil)
	_ Positional[*Query]        = (*Orthographic)(nil)
	_ Positional[*Query]        = (*Phonological)(nil)
)

// wordCache keeps the neighbour sets already found for one word.
type wordCache map[neighbours.Kind][]corpus.Entry

// Query is one word being measured. It is not safe for concurrent use.
type Query struct {
	Word  tokenize.Word
	cache wordCache
}

// NewQuery wraps a tokenized word
func NewQuery(w tokenize.Word) *Query {
	return &Query{Word: w, cache: make(wordCache, 2)}
}

// PairQuery is a word measured by spelling and sound together.
type PairQuery struct {
	Orth *Query
	Phon *Query
}

// neighbourhoodValues renders density with identity, frequency and the
// LD20 statistics in record order.
func neighbourhoodValues[W any](m Neighbourhood[W], w W, density, frequency NeighbourMetric, ld20 bool) ([]record.Value, error) {
	var out []record.Value
	if density.Enabled {
		kind := density.Kind()
		out = append(out, record.Int(m.Density(w, kind)))
		ids, err := m.Identity(w, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, ids...)
	}
	if frequency.Enabled {
		mean, sd := m.Frequency(w, frequency.Kind())
		out = append(out, record.Stat(mean), record.Stat(sd))
	}
	if ld20 {
		mean, sd := m.LD20(w)
		out = append(out, record.Stat(mean), record.Stat(sd))
	}
	return out, nil
}

// positionalValues renders spread and uniqueness point.
func positionalValues[W any](m Positional[W], w W, spread, uniqueness bool) []record.Value {
	var out []record.Value
	if spread {
		out = append(out, record.Int(m.Spread(w)))
	}
	if uniqueness {
		out = append(out, record.Int(m.UniquenessPoint(w)))
	}
	return out
}
