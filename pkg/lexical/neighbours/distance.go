// Package neighbours computes distances between tokenized words and the
// neighbourhood measures derived from them.
package neighbours

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Kind selects how two words are compared.
type Kind int

const (
	// Edit is Levenshtein distance over symbols.
	Edit Kind = iota
	// Substitution counts positional mismatches between equal-length words.
	Substitution
)

func (k Kind) String() string {
	switch k {
	case Edit:
		return "edit"
	case Substitution:
		return "substitution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Distance compares two words. Substitution distance is 0 for words of
// different length, so a 0 only means "identical" once lengths match.
func Distance(a, b tokenize.Word, kind Kind) int {
	if kind == Substitution {
		return substitutions(a.Code(), b.Code())
	}
	return levenshtein.ComputeDistance(a.Key(), b.Key())
}

func substitutions(a, b []rune) int {
	if len(a) != len(b) {
		return 0
	}
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// lengthClose is the pre-filter applied before an edit distance of 1 is
// tested: longer or shorter by more than one symbol can never qualify.
func lengthClose(a, b tokenize.Word) bool {
	d := a.Len() - b.Len()
	return d >= -1 && d <= 1
}

// isNeighbour reports whether b is at distance exactly 1 from a.
func isNeighbour(a, b tokenize.Word, kind Kind) bool {
	if kind == Edit && !lengthClose(a, b) {
		return false
	}
	return Distance(a, b, kind) == 1
}
