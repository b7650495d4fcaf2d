package corpusio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/metrics"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// readRecords decodes a CSV stream. A leading byte order mark is removed;
// UTF-16 input is recognised by its mark.
func readRecords(r io.Reader) ([][]string, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(dec)
	reader.FieldsPerRecord = -1 // allow variable column count

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if cell != "" {
			return false
		}
	}
	return true
}

func minColumns(records [][]string) int {
	n := -1
	for _, rec := range records {
		if n < 0 || len(rec) < n {
			n = len(rec)
		}
	}
	return n
}

// ReadCorpus parses a corpus of (orthography, frequency) rows, or of
// (orthography, phonology, frequency) rows when withPhon is set. Blank rows
// are skipped; a blank cell in any other row is an error. Spellings are
// lower-cased.
func ReadCorpus(r io.Reader, withPhon bool) ([]corpus.Row, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", internalerr.ErrInvalidInput)
	}
	want := 2
	if withPhon {
		want = 3
	}
	if got := minColumns(records); got != want {
		return nil, fmt.Errorf("%w: corpus needs %d columns, found a row with %d", internalerr.ErrInvalidInput, want, got)
	}

	rows := make([]corpus.Row, 0, len(records))
	for i, rec := range records {
		rec = rec[:want]
		if isBlank(rec) {
			continue
		}
		for _, cell := range rec {
			if cell == "" {
				return nil, fmt.Errorf("%w: empty cell on corpus row %d", internalerr.ErrInvalidInput, i+1)
			}
		}
		freq, err := strconv.ParseFloat(rec[want-1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: frequency %q on corpus row %d is not a number",
				internalerr.ErrInvalidInput, rec[want-1], i+1)
		}
		row := corpus.Row{Orth: tokenize.Fold(rec[0]), Freq: freq}
		if withPhon {
			row.Phon = rec[1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadWords parses input words: one column of spellings, or spellings and
// transcriptions. With phonOnly the single column holds transcriptions.
// Empty cells are an error; maxWords > 0 truncates the list.
func ReadWords(r io.Reader, phonOnly bool, maxWords int) ([]metrics.InputWord, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	words := make([]metrics.InputWord, 0, len(records))
	for i, rec := range records {
		if maxWords > 0 && len(words) == maxWords {
			break
		}
		if len(rec) == 0 || len(rec) > 2 {
			return nil, fmt.Errorf("%w: word list row %d has %d columns", internalerr.ErrInvalidInput, i+1, len(rec))
		}
		for _, cell := range rec {
			if cell == "" {
				return nil, fmt.Errorf("%w: empty cell on word list row %d", internalerr.ErrInvalidInput, i+1)
			}
		}
		switch {
		case phonOnly:
			words = append(words, metrics.InputWord{Phon: rec[0]})
		case len(rec) == 2:
			words = append(words, metrics.InputWord{Orth: tokenize.Fold(rec[0]), Phon: rec[1]})
		default:
			words = append(words, metrics.InputWord{Orth: tokenize.Fold(rec[0])})
		}
	}
	return words, nil
}

// ReadInventory parses a phonetic system table of consonant, vowel and
// optional primary stress columns.
func ReadInventory(r io.Reader) (*inventory.Inventory, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	rows := make([]inventory.CustomRow, 0, len(records))
	for i, rec := range records {
		if len(rec) > 3 {
			return nil, fmt.Errorf("%w: phonetic system row %d has %d columns", internalerr.ErrInvalidInput, i+1, len(rec))
		}
		var row inventory.CustomRow
		if len(rec) > 0 {
			row.Consonant = rec[0]
		}
		if len(rec) > 1 {
			row.Vowel = rec[1]
		}
		if len(rec) > 2 {
			row.PrimaryStress = rec[2]
		}
		rows = append(rows, row)
	}
	return inventory.NewCustom(rows)
}

// LoadCorpus reads a corpus file.
func LoadCorpus(path string, withPhon bool) ([]corpus.Row, error) {
	return withFile(path, func(r io.Reader) ([]corpus.Row, error) { return ReadCorpus(r, withPhon) })
}

// LoadWords reads a word list file.
func LoadWords(path string, phonOnly bool, maxWords int) ([]metrics.InputWord, error) {
	return withFile(path, func(r io.Reader) ([]metrics.InputWord, error) { return ReadWords(r, phonOnly, maxWords) })
}

// LoadInventory reads a phonetic system CSV file.
func LoadInventory(path string) (*inventory.Inventory, error) {
	return withFile(path, ReadInventory)
}
