package metrics

import (
	"fmt"

	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// InputWord is one word to measure. Either form may be empty when the
// selection does not need it.
type InputWord struct {
	Orth string
	Phon string
}

// Prepared is an input word with its tokenized forms. Stress is the
// transcription tokenized with stress symbols kept.
type Prepared struct {
	Input  InputWord
	Orth   tokenize.Word
	Phon   tokenize.Word
	Stress tokenize.Word
}

// Calculator assembles one record per prepared word. Façades for
// families the selection does not use may be nil.
type Calculator struct {
	sel    Selection
	orth   *Orthographic
	phon   *Phonological
	graph  *Phonographic
	stress *Stress
}

// NewCalculator wires the façades for a selection.
func NewCalculator(sel Selection, orth *Orthographic, phon *Phonological, graph *Phonographic, stress *Stress) *Calculator {
	return &Calculator{sel: sel, orth: orth, phon: phon, graph: graph, stress: stress}
}

// Selection returns the metrics the calculator computes.
func (c *Calculator) Selection() Selection { return c.sel }

// Header returns the column names of the records.
func (c *Calculator) Header() []string { return c.sel.Header() }

// Record computes every selected metric of one word. A block whose word
// form is missing is filled with undefined values.
func (c *Calculator) Record(p Prepared) (record.Record, error) {
	sel := c.sel
	hasOrth := !p.Orth.Empty()
	hasPhon := !p.Phon.Empty()

	out := record.Record{record.OptionalText(p.Input.Orth)}
	var orthQ, phonQ *Query
	if hasOrth {
		orthQ = NewQuery(p.Orth)
	}
	if hasPhon {
		phonQ = NewQuery(p.Phon)
	}

	if sel.Orth.Any() {
		if !hasOrth {
			out = append(out, undefined(len(sel.Orth.header()))...)
		} else {
			vals, err := c.orth.Values(orthQ, sel.Orth)
			if err != nil {
				return nil, fmt.Errorf("orthographic metrics of %q: %w", p.Input.Orth, err)
			}
			out = append(out, vals...)
		}
	}

	if sel.NeedsPhon() {
		out = append(out, record.OptionalText(p.Input.Phon))
	}

	if sel.Phon.Any() {
		if !hasPhon {
			out = append(out, undefined(len(sel.Phon.header()))...)
		} else {
			vals, err := c.phon.Values(phonQ, sel.Phon)
			if err != nil {
				return nil, fmt.Errorf("phonological metrics of %q: %w", p.Input.Phon, err)
			}
			out = append(out, vals...)
		}
	}

	if sel.Phonographic.Any() {
		if !hasOrth || !hasPhon {
			out = append(out, undefined(len(sel.Phonographic.header()))...)
		} else {
			vals, err := c.graph.Values(&PairQuery{Orth: orthQ, Phon: phonQ}, sel.Phonographic)
			if err != nil {
				return nil, fmt.Errorf("phonographic metrics of %q: %w", p.Input.Orth, err)
			}
			out = append(out, vals...)
		}
	}

	if sel.Stress.Any() {
		if p.Stress.Empty() {
			out = append(out, undefined(len(sel.Stress.header()))...)
		} else {
			out = append(out, c.stress.Values(p.Stress, sel.Stress)...)
		}
	}
	return out, nil
}

func undefined(n int) []record.Value {
	return make([]record.Value, n)
}
