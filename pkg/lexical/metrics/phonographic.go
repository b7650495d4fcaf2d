package metrics

import (
	"fmt"

	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stats"
)

// Phonographic measures words that are neighbours in spelling and in
// sound. It delegates neighbour search to the other two façades.
type Phonographic struct {
	orth  *Orthographic
	phon  *Phonological
	cross *corpus.CrossMap
	pairs *corpus.PairIndex
}

// NewPhonographic composes the orthographic and phonological façades.
func NewPhonographic(orth *Orthographic, phon *Phonological, cross *corpus.CrossMap, pairs *corpus.PairIndex) *Phonographic {
	return &Phonographic{orth: orth, phon: phon, cross: cross, pairs: pairs}
}

// Neighbours returns the orthographic neighbours whose transcription is a
// phonological neighbour of the query's transcription.
func (g *Phonographic) Neighbours(q *PairQuery, kind neighbours.Kind) []corpus.Entry {
	return neighbours.Phonographic(g.orth.Neighbours(q.Orth, kind), g.phon.Neighbours(q.Phon, kind), g.cross)
}

func (g *Phonographic) Density(q *PairQuery, kind neighbours.Kind) int {
	return neighbours.Density(g.Neighbours(q, kind))
}

// Identity lists the neighbours' spellings (O) and transcriptions (P).
func (g *Phonographic) Identity(q *PairQuery, kind neighbours.Kind) ([]record.Value, error) {
	set := g.Neighbours(q, kind)
	transcriptions := make([]string, 0, len(set))
	for _, e := range set {
		phon, err := g.cross.Transcription(e.Key)
		if err != nil {
			return nil, err
		}
		transcriptions = append(transcriptions, phon)
	}
	return []record.Value{record.TextList(neighbours.Keys(set)), record.TextList(transcriptions)}, nil
}

// Frequency uses the orthographic frequencies of the neighbours.
func (g *Phonographic) Frequency(q *PairQuery, kind neighbours.Kind) (mean, sd stats.Float) {
	return neighbours.Frequency(g.Neighbours(q, kind))
}

// Connectivity links two neighbours when both their spellings and their
// transcriptions are one edit apart.
func (g *Phonographic) Connectivity(q *PairQuery) (stats.Float, error) {
	set := g.Neighbours(q, neighbours.Edit)
	words := make([]neighbours.PairWord, 0, len(set))
	for _, e := range set {
		phon, err := g.cross.Transcription(e.Key)
		if err != nil {
			return stats.Undefined, err
		}
		pe, ok := g.phon.Index().Lookup(phon)
		if !ok {
			return stats.Undefined, fmt.Errorf("%w: transcription %q missing from index", internalerr.ErrInternal, phon)
		}
		words = append(words, neighbours.PairWord{Orth: e.Word, Phon: pe.Word})
	}
	return neighbours.PairedConnectivity(words), nil
}

// Nearest ranks the corpus pairs whose spelling and sound distances agree.
func (g *Phonographic) Nearest(q *PairQuery) neighbours.Ranking[corpus.Pair] {
	return neighbours.PairedNearest(neighbours.PairWord{Orth: q.Orth.Word, Phon: q.Phon.Word}, g.pairs)
}

func (g *Phonographic) LD20(q *PairQuery) (mean, sd stats.Float) {
	r := g.Nearest(q)
	return r.Mean, r.SD
}

// Values computes the selected phonographic metrics in header order.
func (g *Phonographic) Values(q *PairQuery, sel PhonographicSelection) ([]record.Value, error) {
	out, err := neighbourhoodValues[*PairQuery](g, q, sel.Density, sel.Frequency, false)
	if err != nil {
		return nil, err
	}
	if sel.Connectivity {
		c, err := g.Connectivity(q)
		if err != nil {
			return nil, err
		}
		out = append(out, record.Stat(c))
	}
	if sel.PGLD20 {
		mean, sd := g.LD20(q)
		out = append(out, record.Stat(mean), record.Stat(sd))
	}
	return out, nil
}
