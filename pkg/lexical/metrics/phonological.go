package metrics

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Phonological measures transcriptions.
type Phonological struct {
	*lexicon
	tok   *tokenize.Tokenizer
	cross *corpus.CrossMap
}

// NewPhonological creates the façade over a phonological index. The
// tokenizer counts syllables; cross supplies neighbour spellings.
func NewPhonological(index *corpus.Index, tok *tokenize.Tokenizer, cross *corpus.CrossMap) *Phonological {
	return &Phonological{lexicon: &lexicon{index: index}, tok: tok, cross: cross}
}

// Identity lists the neighbours' spellings (O) and transcriptions (P).
func (p *Phonological) Identity(q *Query, kind neighbours.Kind) ([]record.Value, error) {
	set := p.Neighbours(q, kind)
	spellings := make([]string, 0, len(set))
	for _, e := range set {
		s, err := p.cross.Spellings(e.Key)
		if err != nil {
			return nil, err
		}
		spellings = append(spellings, s)
	}
	return []record.Value{record.TextList(spellings), record.TextList(neighbours.Keys(set))}, nil
}

// Syllables counts the vowels of the transcription.
func (p *Phonological) Syllables(q *Query) int { return p.tok.Syllables(q.Word) }

// Biphone sums the positional biphone probabilities of the transcription.
func (p *Phonological) Biphone(q *Query) stats.Float { return p.pairScore(q) }

// Values computes the selected phonological metrics in header order.
func (p *Phonological) Values(q *Query, sel PhonSelection) ([]record.Value, error) {
	var out []record.Value
	if sel.Phonemes {
		out = append(out, record.Int(q.Word.Len()))
	}
	if sel.Syllables {
		out = append(out, record.Int(p.Syllables(q)))
	}

	vals, err := neighbourhoodValues[*Query](p, q, sel.Density, sel.Frequency, sel.PLD20)
	if err != nil {
		return nil, err
	}
	out = append(out, vals...)
	out = append(out, positionalValues[*Query](p, q, sel.Spread, sel.UniquenessPoint)...)

	if sel.Connectivity {
		c, err := p.Connectivity(q)
		if err != nil {
			return nil, err
		}
		out = append(out, record.Stat(c))
	}
	if sel.Biphone {
		out = append(out, record.Stat(p.Biphone(q)))
	}
	if sel.PositionNeighbours {
		out = append(out, record.IntList(p.PositionNeighbours(q)))
	}
	return out, nil
}
