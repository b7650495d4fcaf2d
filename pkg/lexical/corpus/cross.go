package corpus

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// CrossMap links spellings and transcriptions of the same corpus rows.
type CrossMap struct {
	orthToPhon map[string]string
	phonToOrth map[string][]string
}

// BuildCrossMap records, for every row with a transcription, the
// transcription of its spelling (last row wins) and the spellings of its
// transcription in row order.
func BuildCrossMap(rows []Row) *CrossMap {
	m := &CrossMap{
		orthToPhon: make(map[string]string, len(rows)),
		phonToOrth: make(map[string][]string, len(rows)),
	}
	for _, row := range rows {
		orth, phon := OrthKey(row.Orth), PhonKey(row.Phon)
		if orth == "" || phon == "" {
			continue
		}
		m.orthToPhon[orth] = phon
		if !contains(m.phonToOrth[phon], orth) {
			m.phonToOrth[phon] = append(m.phonToOrth[phon], orth)
		}
	}
	return m
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Transcription returns the transcription recorded for a spelling.
func (m *CrossMap) Transcription(orth string) (string, error) {
	phon, ok := m.orthToPhon[orth]
	if !ok {
		return "", fmt.Errorf("%w: no transcription for %q", internalerr.ErrInternal, orth)
	}
	return phon, nil
}

// Spellings returns the spellings of a transcription joined by "/".
func (m *CrossMap) Spellings(phon string) (string, error) {
	orths, ok := m.phonToOrth[phon]
	if !ok {
		return "", fmt.Errorf("%w: no spelling for %q", internalerr.ErrInternal, phon)
	}
	return strings.Join(orths, "/"), nil
}

// HasTranscription reports whether the spelling has a transcription.
func (m *CrossMap) HasTranscription(orth string) bool {
	_, ok := m.orthToPhon[orth]
	return ok
}

// Pair is a distinct (spelling, transcription) combination of the corpus.
type Pair struct {
	Orth Entry
	Phon Entry
}

// PairIndex lists the distinct pairs in corpus order.
type PairIndex struct {
	pairs []Pair
}

// BuildPairs joins rows against already built indices.
func BuildPairs(rows []Row, orth, phon *Index) (*PairIndex, error) {
	seen := make(map[[2]string]struct{}, len(rows))
	pi := &PairIndex{}
	for _, row := range rows {
		ork, pk := OrthKey(row.Orth), PhonKey(row.Phon)
		if ork == "" || pk == "" {
			continue
		}
		key := [2]string{ork, pk}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		oe, found := orth.Lookup(ork)
		if !found {
			return nil, fmt.Errorf("%w: spelling %q missing from index", internalerr.ErrInternal, ork)
		}
		pe, found := phon.Lookup(pk)
		if !found {
			return nil, fmt.Errorf("%w: transcription %q missing from index", internalerr.ErrInternal, pk)
		}
		pi.pairs = append(pi.pairs, Pair{Orth: oe, Phon: pe})
	}
	return pi, nil
}

// Len returns the number of pairs.
func (pi *PairIndex) Len() int { return len(pi.pairs) }

// Pairs returns the pairs in corpus order. Callers must not modify it.
func (pi *PairIndex) Pairs() []Pair { return pi.pairs }

// Words returns the tokenized forms of a pair.
func (p Pair) Words() (orth, phon tokenize.Word) { return p.Orth.Word, p.Phon.Word }
