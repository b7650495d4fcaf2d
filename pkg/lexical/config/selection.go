package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/metrics"
)

// metricNames maps configuration names to selection toggles. A "-sub"
// suffix restricts a neighbourhood metric to substitutions.
var metricNames = map[string]func(*metrics.Selection){
	"orth.length":              func(s *metrics.Selection) { s.Orth.Length = true },
	"orth.quadratic-length":    func(s *metrics.Selection) { s.Orth.QuadraticLength = true },
	"orth.density":             func(s *metrics.Selection) { s.Orth.Density.Enabled = true },
	"orth.density-sub":         func(s *metrics.Selection) { s.Orth.Density = substitution },
	"orth.frequency":           func(s *metrics.Selection) { s.Orth.Frequency.Enabled = true },
	"orth.frequency-sub":       func(s *metrics.Selection) { s.Orth.Frequency = substitution },
	"orth.old20":               func(s *metrics.Selection) { s.Orth.OLD20 = true },
	"orth.spread":              func(s *metrics.Selection) { s.Orth.Spread = true },
	"orth.uniqueness-point":    func(s *metrics.Selection) { s.Orth.UniquenessPoint = true },
	"orth.connectivity":        func(s *metrics.Selection) { s.Orth.Connectivity = true },
	"orth.bigram":              func(s *metrics.Selection) { s.Orth.Bigram = true },
	"orth.position-neighbours": func(s *metrics.Selection) { s.Orth.PositionNeighbours = true },

	"phon.phonemes":            func(s *metrics.Selection) { s.Phon.Phonemes = true },
	"phon.syllables":           func(s *metrics.Selection) { s.Phon.Syllables = true },
	"phon.density":             func(s *metrics.Selection) { s.Phon.Density.Enabled = true },
	"phon.density-sub":         func(s *metrics.Selection) { s.Phon.Density = substitution },
	"phon.frequency":           func(s *metrics.Selection) { s.Phon.Frequency.Enabled = true },
	"phon.frequency-sub":       func(s *metrics.Selection) { s.Phon.Frequency = substitution },
	"phon.pld20":               func(s *metrics.Selection) { s.Phon.PLD20 = true },
	"phon.spread":              func(s *metrics.Selection) { s.Phon.Spread = true },
	"phon.uniqueness-point":    func(s *metrics.Selection) { s.Phon.UniquenessPoint = true },
	"phon.connectivity":        func(s *metrics.Selection) { s.Phon.Connectivity = true },
	"phon.biphone":             func(s *metrics.Selection) { s.Phon.Biphone = true },
	"phon.position-neighbours": func(s *metrics.Selection) { s.Phon.PositionNeighbours = true },

	"pg.density":       func(s *metrics.Selection) { s.Phonographic.Density.Enabled = true },
	"pg.density-sub":   func(s *metrics.Selection) { s.Phonographic.Density = substitution },
	"pg.frequency":     func(s *metrics.Selection) { s.Phonographic.Frequency.Enabled = true },
	"pg.frequency-sub": func(s *metrics.Selection) { s.Phonographic.Frequency = substitution },
	"pg.connectivity":  func(s *metrics.Selection) { s.Phonographic.Connectivity = true },
	"pg.pgld20":        func(s *metrics.Selection) { s.Phonographic.PGLD20 = true },

	"stress.code":           func(s *metrics.Selection) { s.Stress.PrimaryCode = true },
	"stress.secondary-code": func(s *metrics.Selection) { s.Stress.SecondaryCode = true },
	"stress.typicality":     func(s *metrics.Selection) { s.Stress.Typicality = true },
}

var substitution = metrics.NeighbourMetric{Enabled: true, SubstitutionOnly: true}

// ParseSelection turns metric names into a selection. Names are
// case-insensitive; blank names are ignored.
func ParseSelection(names []string) (metrics.Selection, error) {
	var sel metrics.Selection
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		set, ok := metricNames[key]
		if !ok {
			return metrics.Selection{}, fmt.Errorf("%w: unknown metric %q", internalerr.ErrInvalidConfig, name)
		}
		set(&sel)
	}
	return sel, nil
}

// MetricNames lists every accepted metric name in sorted order.
func MetricNames() []string {
	out := make([]string, 0, len(metricNames))
	for name := range metricNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
