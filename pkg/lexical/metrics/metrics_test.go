package metrics

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/stress"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

type fixture struct {
	orthSeg *tokenize.Orthographic
	phonSeg *tokenize.Tokenizer
	orth    *Orthographic
	phon    *Phonological
	graph   *Phonographic
}

func catRows() []corpus.Row {
	return []corpus.Row{
		{Orth: "cat", Phon: "kæt", Freq: 10},
		{Orth: "bat", Phon: "bæt", Freq: 5},
		{Orth: "cot", Phon: "kɑt", Freq: 3},
		{Orth: "cab", Phon: "kæb", Freq: 2},
		{Orth: "car", Phon: "kɑr", Freq: 2},
	}
}

func newFixture(t *testing.T, rows []corpus.Row) fixture {
	t.Helper()
	orthSeg := tokenize.NewOrthographic()
	phonSeg := tokenize.New(inventory.MustPredefined(inventory.IPAUS))
	orthIdx, err := corpus.BuildOrthographic(rows, orthSeg)
	require.NoError(t, err)
	phonIdx, err := corpus.BuildPhonological(rows, phonSeg)
	require.NoError(t, err)
	cross := corpus.BuildCrossMap(rows)
	pairs, err := corpus.BuildPairs(rows, orthIdx, phonIdx)
	require.NoError(t, err)

	orth := NewOrthographic(orthIdx)
	phon := NewPhonological(phonIdx, phonSeg, cross)
	return fixture{
		orthSeg: orthSeg,
		phonSeg: phonSeg,
		orth:    orth,
		phon:    phon,
		graph:   NewPhonographic(orth, phon, cross, pairs),
	}
}

func (f fixture) prepare(t *testing.T, orth, phon string) Prepared {
	t.Helper()
	p := Prepared{Input: InputWord{Orth: orth, Phon: phon}}
	var err error
	p.Orth, err = f.orthSeg.Tokenize(orth)
	require.NoError(t, err)
	p.Phon, err = f.phonSeg.Tokenize(phon)
	require.NoError(t, err)
	return p
}

func TestOrthographicValues(t *testing.T) {
	f := newFixture(t, catRows())
	p := f.prepare(t, "cat", "kæt")
	q := NewQuery(p.Orth)

	vals, err := f.orth.Values(q, OrthSelection{
		Length:          true,
		QuadraticLength: true,
		Density:         NeighbourMetric{Enabled: true},
		Frequency:       NeighbourMetric{Enabled: true},
	})
	require.NoError(t, err)
	got := record.Record(vals).Strings()
	require.Len(t, got, 6)
	assert.Equal(t, []string{"3", "9", "4", "[bat, cot, cab, car]", "3.0"}, got[:5])
	assertFloatCell(t, math.Sqrt(2), got[5])
}

// assertFloatCell compares a rendered float cell within rounding error.
func assertFloatCell(t *testing.T, want float64, cell string) {
	t.Helper()
	got, err := strconv.ParseFloat(cell, 64)
	require.NoError(t, err, "cell %q", cell)
	assert.InDelta(t, want, got, 1e-12)
}

func TestNeighbourCacheIsPerKind(t *testing.T) {
	f := newFixture(t, catRows())
	q := NewQuery(f.prepare(t, "cat", "kæt").Orth)

	assert.Equal(t, 4, f.orth.Density(q, neighbours.Edit))
	assert.Equal(t, 4, f.orth.Density(q, neighbours.Substitution))
	assert.Len(t, q.cache, 2)

	empty := &Query{Word: q.Word}
	assert.Equal(t, 4, f.orth.Density(empty, neighbours.Edit))
}

func TestPhonologicalIdentity(t *testing.T) {
	f := newFixture(t, catRows())
	q := NewQuery(f.prepare(t, "cat", "kæt").Phon)

	ids, err := f.phon.Identity(q, neighbours.Edit)
	require.NoError(t, err)
	assert.Equal(t, []string{"[bat, cot, cab]", "[bæt, kɑt, kæb]"}, record.Record(ids).Strings())
	assert.Equal(t, 1, f.phon.Syllables(q))
}

func TestPhonographicValues(t *testing.T) {
	f := newFixture(t, catRows())
	p := f.prepare(t, "cat", "kæt")
	q := &PairQuery{Orth: NewQuery(p.Orth), Phon: NewQuery(p.Phon)}

	vals, err := f.graph.Values(q, PhonographicSelection{
		Density:      NeighbourMetric{Enabled: true},
		Frequency:    NeighbourMetric{Enabled: true},
		Connectivity: true,
		PGLD20:       true,
	})
	require.NoError(t, err)
	got := record.Record(vals).Strings()
	require.Len(t, got, 8)
	assert.Equal(t, []string{"3", "[bat, cot, cab]", "[bæt, kɑt, kæb]"}, got[:3])
	// neighbour frequencies 5, 3 and 2
	assertFloatCell(t, 10.0/3, got[3])
	assertFloatCell(t, math.Sqrt(7.0/3), got[4])
	assert.Equal(t, []string{"0.0", "1.0", "0.0"}, got[5:])
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "stress only",
			sel:  Selection{Stress: StressSelection{PrimaryCode: true, Typicality: true}},
			want: []string{"Item (Orthography)", "Item (Phonology)", "Stress Code", "Stress Typicality"},
		},
		{
			name: "orthographic only",
			sel:  Selection{Orth: OrthSelection{Length: true, OLD20: true}},
			want: []string{"Item (Orthography)", "Length", "OLD-20 (M)", "OLD-20 (SD)"},
		},
		{
			name: "phonographic after phonological",
			sel: Selection{
				Phon:         PhonSelection{Phonemes: true},
				Phonographic: PhonographicSelection{PGLD20: true},
			},
			want: []string{"Item (Orthography)", "Item (Phonology)", "No. of Phonemes", "PGLD-20 (M)", "PGLD-20 (SD)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Header())
		})
	}
}

func TestSelectionNeeds(t *testing.T) {
	sel := Selection{Orth: OrthSelection{Bigram: true}}
	assert.True(t, sel.NeedsOrth())
	assert.False(t, sel.NeedsPhon())
	assert.True(t, sel.Any())
	assert.False(t, Selection{}.Any())

	sel = Selection{Phonographic: PhonographicSelection{Connectivity: true}}
	assert.True(t, sel.NeedsOrth())
	assert.True(t, sel.NeedsPhon())
	assert.Equal(t, neighbours.Substitution, NeighbourMetric{Enabled: true, SubstitutionOnly: true}.Kind())
}

func TestCalculatorRecord(t *testing.T) {
	f := newFixture(t, catRows())
	sel := Selection{
		Orth:         OrthSelection{Length: true, Density: NeighbourMetric{Enabled: true}},
		Phon:         PhonSelection{Phonemes: true, Density: NeighbourMetric{Enabled: true}},
		Phonographic: PhonographicSelection{Density: NeighbourMetric{Enabled: true}, Connectivity: true},
	}
	calc := NewCalculator(sel, f.orth, f.phon, f.graph, nil)

	rec, err := calc.Record(f.prepare(t, "cat", "kæt"))
	require.NoError(t, err)
	require.Len(t, rec, len(calc.Header()))
	assert.Equal(t, []string{
		"cat", "3", "4", "[bat, cot, cab, car]",
		"kæt", "3", "3", "[bat, cot, cab]", "[bæt, kɑt, kæb]",
		"3", "[bat, cot, cab]", "[bæt, kɑt, kæb]", "0.0",
	}, rec.Strings())
}

func TestCalculatorRecordMissingForm(t *testing.T) {
	f := newFixture(t, catRows())
	sel := Selection{
		Orth: OrthSelection{Length: true},
		Phon: PhonSelection{Phonemes: true, PLD20: true},
	}
	calc := NewCalculator(sel, f.orth, f.phon, nil, nil)

	p := f.prepare(t, "cat", "")
	rec, err := calc.Record(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "3", "NULL", "NULL", "NULL", "NULL"}, rec.Strings())
}

func TestCalculatorStress(t *testing.T) {
	tok := tokenize.New(inventory.MustPredefined(inventory.IPAUS), tokenize.WithStress())
	model, err := stress.NewModel(tok)
	require.NoError(t, err)

	var ref []tokenize.Word
	for _, s := range []string{"bəˈnænə", "ˈkæmərə", "ˈkæbɪn", "ˈkætəl"} {
		w, err := tok.Tokenize(s)
		require.NoError(t, err)
		ref = append(ref, w)
	}
	st := NewStress(model, ref)
	calc := NewCalculator(Selection{Stress: StressSelection{PrimaryCode: true, SecondaryCode: true, Typicality: true}},
		nil, nil, nil, st)

	w, err := tok.Tokenize("ˈkæbɪn")
	require.NoError(t, err)
	rec, err := calc.Record(Prepared{Input: InputWord{Phon: "ˈkæbɪn"}, Stress: w})
	require.NoError(t, err)
	assert.Equal(t, []string{"NULL", "ˈkæbɪn", "1", "0", "1.0"}, rec.Strings())
}
