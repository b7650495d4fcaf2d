package metrics

import "github.com/cognicore/lexical/pkg/lexical/neighbours"

// NeighbourMetric toggles a neighbourhood measure and picks its distance.
type NeighbourMetric struct {
	Enabled          bool
	SubstitutionOnly bool
}

// Kind returns the distance the metric is computed with.
func (m NeighbourMetric) Kind() neighbours.Kind {
	if m.SubstitutionOnly {
		return neighbours.Substitution
	}
	return neighbours.Edit
}

// OrthSelection lists the orthographic metrics.
type OrthSelection struct {
	Length             bool
	QuadraticLength    bool
	Density            NeighbourMetric
	Frequency          NeighbourMetric
	OLD20              bool
	Spread             bool
	UniquenessPoint    bool
	Connectivity       bool
	Bigram             bool
	PositionNeighbours bool
}

// Any reports whether at least one metric is selected.
func (s OrthSelection) Any() bool {
	return s.Length || s.QuadraticLength || s.Density.Enabled || s.Frequency.Enabled || s.OLD20 ||
		s.Spread || s.UniquenessPoint || s.Connectivity || s.Bigram || s.PositionNeighbours
}

// PhonSelection lists the phonological metrics.
type PhonSelection struct {
	Phonemes           bool
	Syllables          bool
	Density            NeighbourMetric
	Frequency          NeighbourMetric
	PLD20              bool
	Spread             bool
	UniquenessPoint    bool
	Connectivity       bool
	Biphone            bool
	PositionNeighbours bool
}

func (s PhonSelection) Any() bool {
	return s.Phonemes || s.Syllables || s.Density.Enabled || s.Frequency.Enabled || s.PLD20 ||
		s.Spread || s.UniquenessPoint || s.Connectivity || s.Biphone || s.PositionNeighbours
}

// PhonographicSelection lists the metrics over spelling and sound together.
type PhonographicSelection struct {
	Density      NeighbourMetric
	Frequency    NeighbourMetric
	Connectivity bool
	PGLD20       bool
}

func (s PhonographicSelection) Any() bool {
	return s.Density.Enabled || s.Frequency.Enabled || s.Connectivity || s.PGLD20
}

// StressSelection lists the surface metrics.
type StressSelection struct {
	PrimaryCode   bool
	SecondaryCode bool
	Typicality    bool
}

func (s StressSelection) Any() bool {
	return s.PrimaryCode || s.SecondaryCode || s.Typicality
}

// Selection is the full set of requested metrics.
type Selection struct {
	Orth         OrthSelection
	Phon         PhonSelection
	Phonographic PhonographicSelection
	Stress       StressSelection
}

// Any reports whether anything at all is selected.
func (s Selection) Any() bool {
	return s.Orth.Any() || s.Phon.Any() || s.Phonographic.Any() || s.Stress.Any()
}

// NeedsOrth reports whether input words need a spelling.
func (s Selection) NeedsOrth() bool { return s.Orth.Any() || s.Phonographic.Any() }

// NeedsPhon reports whether input words need a transcription.
func (s Selection) NeedsPhon() bool {
	return s.Phon.Any() || s.Phonographic.Any() || s.Stress.Any()
}

// Header names the record columns in the order Calculator.Record fills them.
// The phonological item column precedes the first block that works on
// transcriptions.
func (s Selection) Header() []string {
	h := []string{"Item (Orthography)"}
	h = append(h, s.Orth.header()...)
	h = appendIf(h, s.NeedsPhon(), "Item (Phonology)")
	h = append(h, s.Phon.header()...)
	h = append(h, s.Phonographic.header()...)
	return append(h, s.Stress.header()...)
}

func (o OrthSelection) header() []string {
	var h []string
	h = appendIf(h, o.Length, "Length")
	h = appendIf(h, o.QuadraticLength, "Quadratic Length")
	h = appendIf(h, o.Density.Enabled, "Orthographic Neighbourhood Density", "Identity of Orthographic Neighbours")
	h = appendIf(h, o.Frequency.Enabled,
		"Orthographic Neighbourhood Frequency (M)", "Orthographic Neighbourhood Frequency (SD)")
	h = appendIf(h, o.OLD20, "OLD-20 (M)", "OLD-20 (SD)")
	h = appendIf(h, o.Spread, "Orthographic Spread")
	h = appendIf(h, o.UniquenessPoint, "Orthographic Uniqueness Point")
	h = appendIf(h, o.Connectivity, "Orthographic C Coefficient")
	h = appendIf(h, o.Bigram, "Sum Bigram Frequency")
	return appendIf(h, o.PositionNeighbours, "Orthographic Position Neighbours")
}

func (p PhonSelection) header() []string {
	var h []string
	h = appendIf(h, p.Phonemes, "No. of Phonemes")
	h = appendIf(h, p.Syllables, "No. of Syllables")
	h = appendIf(h, p.Density.Enabled, "Phonological Neighbourhood Density",
		"Identity of Phonological Neighbours (O)", "Identity of Phonological Neighbours (P)")
	h = appendIf(h, p.Frequency.Enabled,
		"Phonological Neighbourhood Frequency (M)", "Phonological Neighbourhood Frequency (SD)")
	h = appendIf(h, p.PLD20, "PLD-20 (M)", "PLD-20 (SD)")
	h = appendIf(h, p.Spread, "Phonological Spread")
	h = appendIf(h, p.UniquenessPoint, "Phonological Uniqueness Point")
	h = appendIf(h, p.Connectivity, "Phonological C Coefficient")
	h = appendIf(h, p.Biphone, "Sum Biphone Frequency")
	return appendIf(h, p.PositionNeighbours, "Phonological Position Neighbours")
}

func (g PhonographicSelection) header() []string {
	var h []string
	h = appendIf(h, g.Density.Enabled, "Phonographic Neighbourhood Density",
		"Identity of Phonographic Neighbours (O)", "Identity of Phonographic Neighbours (P)")
	h = appendIf(h, g.Frequency.Enabled,
		"Phonographic Neighbourhood Frequency (M)", "Phonographic Neighbourhood Frequency (SD)")
	h = appendIf(h, g.Connectivity, "Phonographic C Coefficient")
	return appendIf(h, g.PGLD20, "PGLD-20 (M)", "PGLD-20 (SD)")
}

func (st StressSelection) header() []string {
	var h []string
	h = appendIf(h, st.PrimaryCode, "Stress Code")
	h = appendIf(h, st.SecondaryCode, "Secondary Stress Code")
	return appendIf(h, st.Typicality, "Stress Typicality")
}

func appendIf(h []string, cond bool, names ...string) []string {
	if !cond {
		return h
	}
	return append(h, names...)
}
