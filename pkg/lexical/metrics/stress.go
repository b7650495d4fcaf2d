package metrics

import (
	"sync"

	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stress"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Stress computes the surface metrics of stress-tokenized transcriptions.
type Stress struct {
	model     *stress.Model
	reference []tokenize.Word

	tableOnce sync.Once
	table     *stress.Table
}

// NewStress uses every corpus transcription, duplicates included, as the
// typicality reference.
func NewStress(model *stress.Model, reference []tokenize.Word) *Stress {
	return &Stress{model: model, reference: reference}
}

// Table returns the typicality table, building it on first use.
func (s *Stress) Table() *stress.Table {
	s.tableOnce.Do(func() {
		s.table = s.model.BuildTable(s.reference)
	})
	return s.table
}

// Values computes the selected stress metrics in header order.
func (s *Stress) Values(w tokenize.Word, sel StressSelection) []record.Value {
	var out []record.Value
	if sel.PrimaryCode {
		out = append(out, record.Int(s.model.Code(w)))
	}
	if sel.SecondaryCode {
		out = append(out, record.Int(s.model.SecondaryCode(w)))
	}
	if sel.Typicality {
		out = append(out, record.Stat(s.model.Typicality(s.Table(), w)))
	}
	return out
}
