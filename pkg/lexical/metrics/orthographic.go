package metrics

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stats"
)

// Orthographic measures spellings.
type Orthographic struct {
	*lexicon
}

// NewOrthographic creates the façade over an orthographic index
func NewOrthographic(index *corpus.Index) *Orthographic {
	return &Orthographic{lexicon: &lexicon{index: index}}
}

// Identity lists the neighbours' spellings.
func (o *Orthographic) Identity(q *Query, kind neighbours.Kind) ([]record.Value, error) {
	return []record.Value{record.TextList(neighbours.Keys(o.Neighbours(q, kind)))}, nil
}

// Bigram sums the positional bigram probabilities of the spelling.
func (o *Orthographic) Bigram(q *Query) stats.Float { return o.pairScore(q) }

// Values computes the selected orthographic metrics in header order.
func (o *Orthographic) Values(q *Query, sel OrthSelection) ([]record.Value, error) {
	var out []record.Value
	n := q.Word.Len()
	if sel.Length {
		out = append(out, record.Int(n))
	}
	if sel.QuadraticLength {
		out = append(out, record.Int(n*n))
	}

	vals, err := neighbourhoodValues[*Query](o, q, sel.Density, sel.Frequency, sel.OLD20)
	if err != nil {
		return nil, err
	}
	out = append(out, vals...)
	out = append(out, positionalValues[*Query](o, q, sel.Spread, sel.UniquenessPoint)...)

	if sel.Connectivity {
		c, err := o.Connectivity(q)
		if err != nil {
			return nil, err
		}
		out = append(out, record.Stat(c))
	}
	if sel.Bigram {
		out = append(out, record.Stat(o.Bigram(q)))
	}
	if sel.PositionNeighbours {
		out = append(out, record.IntList(o.PositionNeighbours(q)))
	}
	return out, nil
}
