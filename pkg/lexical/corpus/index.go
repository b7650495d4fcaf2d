package corpus

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Row is one validated line of the reference corpus. Phon is empty for
// orthography-only corpora.
type Row struct {
	Orth string
	Phon string
	Freq float64
}

// Entry is one distinct word of an Index.
type Entry struct {
	Key  string
	Word tokenize.Word
	Freq float64
}

// Index maps distinct word strings to their summed frequency and
// tokenization, in order of first appearance. It is read-only once built.
type Index struct {
	entries []Entry
	byKey   map[string]int

	firstOnce sync.Once
	byFirst   map[rune][]tokenize.Word
}

// OrthKey is the index key of a spelling.
func OrthKey(s string) string { return tokenize.Fold(s) }

// PhonKey is the index key of a transcription.
func PhonKey(s string) string { return norm.NFC.String(strings.TrimSpace(s)) }

// BuildOrthographic indexes the spellings of rows, lower-cased.
func BuildOrthographic(rows []Row, seg tokenize.Segmenter) (*Index, error) {
	return build(rows, func(r Row) string { return OrthKey(r.Orth) }, seg)
}

// BuildPhonological indexes the transcriptions of rows. Rows without a
// transcription are skipped.
func BuildPhonological(rows []Row, seg tokenize.Segmenter) (*Index, error) {
	return build(rows, func(r Row) string { return PhonKey(r.Phon) }, seg)
}

func build(rows []Row, key func(Row) string, seg tokenize.Segmenter) (*Index, error) {
	idx := &Index{byKey: make(map[string]int, len(rows))}
	for _, row := range rows {
		k := key(row)
		if k == "" {
			continue
		}
		if i, ok := idx.byKey[k]; ok {
			idx.entries[i].Freq += row.Freq
			continue
		}
		w, err := seg.Tokenize(k)
		if err != nil {
			return nil, fmt.Errorf("index corpus: %w", err)
		}
		idx.byKey[k] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{Key: k, Word: w, Freq: row.Freq})
	}
	return idx, nil
}

// Len returns the number of distinct words.
func (idx *Index) Len() int { return len(idx.entries) }

// Entries returns the entries in corpus order. Callers must not modify it.
func (idx *Index) Entries() []Entry { return idx.entries }

// Lookup returns the entry for a key.
func (idx *Index) Lookup(key string) (Entry, bool) {
	i, ok := idx.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// ByFirstSymbol groups the words by their first symbol code.
// Built on first use.
func (idx *Index) ByFirstSymbol() map[rune][]tokenize.Word {
	idx.firstOnce.Do(func() {
		idx.byFirst = make(map[rune][]tokenize.Word)
		for _, e := range idx.entries {
			code := e.Word.Code()
			if len(code) == 0 {
				continue
			}
			idx.byFirst[code[0]] = append(idx.byFirst[code[0]], e.Word)
		}
	})
	return idx.byFirst
}
