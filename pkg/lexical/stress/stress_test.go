package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

func newModel(t *testing.T, sys inventory.System) *Model {
	t.Helper()
	m, err := NewModel(tokenize.New(inventory.MustPredefined(sys), tokenize.WithStress()))
	require.NoError(t, err)
	return m
}

func tokenizeAll(t *testing.T, m *Model, words ...string) []tokenize.Word {
	t.Helper()
	out := make([]tokenize.Word, len(words))
	for i, s := range words {
		w, err := m.Tokenizer().Tokenize(s)
		require.NoError(t, err)
		out[i] = w
	}
	return out
}

func TestCode(t *testing.T) {
	m := newModel(t, inventory.IPAUS)
	tests := []struct {
		word      string
		primary   int
		secondary int
	}{
		{"kˈæt", 1, 0},
		{"ˈkæt", 1, 0},
		{"bəˈnænə", 2, 0},
		{"ˌɛkspləˈneɪʃən", 3, 1},
		{"kæt", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w := tokenizeAll(t, m, tt.word)[0]
			assert.Equal(t, tt.primary, m.Code(w))
			assert.Equal(t, tt.secondary, m.SecondaryCode(w))
		})
	}
}

func TestCodeFromSymbols(t *testing.T) {
	m := newModel(t, inventory.IPAUS)
	w := tokenize.NewCodec().NewWord("kˈæt", []string{"k", "ˈ", "æ", "t"})
	assert.Equal(t, 1, m.Code(w))
}

func TestSampaCode(t *testing.T) {
	m := newModel(t, inventory.SAMPAUS)
	w := tokenizeAll(t, m, `b@."nA.n@`)[0]
	assert.Equal(t, 2, m.Code(w))
	assert.Equal(t, 3, m.Syllables(w))
}

func TestNewModelUnsupported(t *testing.T) {
	_, err := NewModel(tokenize.New(inventory.MustPredefined(inventory.Klattese), tokenize.WithStress()))
	assert.ErrorIs(t, err, internalerr.ErrStressUnsupported)

	_, err = NewModel(tokenize.New(inventory.MustPredefined(inventory.IPAUS)))
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
}

func TestTypicality(t *testing.T) {
	m := newModel(t, inventory.IPAUS)
	ref := tokenizeAll(t, m, "ˈbɛtər", "ˈbɛtər", "bəˈlun", "ˈkæt", "bəˈnænə")
	table := m.BuildTable(ref)

	tests := []struct {
		word  string
		want  float64
		valid bool
	}{
		{"ˈlɛtər", 2.0 / 3, true},
		{"əˈbaʊt", 1.0 / 3, true},
		{"ˈkæt", 0, false},
		{"ˈbɛnənə", 0, true},
		{"ˈmɛləˌdi", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := m.Typicality(table, tokenizeAll(t, m, tt.word)[0])
			assert.Equal(t, tt.valid, got.Valid)
			assert.InDelta(t, tt.want, got.Value, 1e-12)
		})
	}
}
