// Package record holds the typed values of one output row.
package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/cognicore/lexical/pkg/lexical/stats"
)

// NullText is how an undefined value is rendered.
const NullText = "NULL"

// Kind tells which field of a Value is set.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindFloat
	KindText
	KindTextList
	KindIntList
)

// Value is one cell of a Record. The zero Value is Undefined.
type Value struct {
	kind  Kind
	i     int
	f     float64
	s     string
	texts []string
	ints  []int
}

// Undefined is distinct from every numeric value, zero included.
var Undefined = Value{}

// Int wraps a count.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Float wraps a defined real value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text wraps an item or identity string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// IntList wraps per-position counts. An empty list renders as "[]".
func IntList(v []int) Value { return Value{kind: KindIntList, ints: append([]int{}, v...)} }

// Stat converts a possibly undefined metric.
func Stat(f stats.Float) Value {
	if !f.Valid {
		return Undefined
	}
	return Float(f.Value)
}

// TextList renders as "[a, b]"; an empty list is Undefined.
func TextList(v []string) Value {
	if len(v) == 0 {
		return Undefined
	}
	return Value{kind: KindTextList, texts: append([]string(nil), v...)}
}

// OptionalText is Undefined for an empty string.
func OptionalText(s string) Value {
	if s == "" {
		return Undefined
	}
	return Text(s)
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// AsInt returns the integer payload.
func (v Value) AsInt() (int, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the numeric payload of an int or float value.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsText returns the text payload.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsTextList returns the list payload.
func (v Value) AsTextList() ([]string, bool) { return v.texts, v.kind == KindTextList }

// AsIntList returns the per-position counts payload.
func (v Value) AsIntList() ([]int, bool) { return v.ints, v.kind == KindIntList }

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return FormatFloat(v.f)
	case KindText:
		return v.s
	case KindTextList:
		return "[" + strings.Join(v.texts, ", ") + "]"
	case KindIntList:
		parts := make([]string, len(v.ints))
		for i, n := range v.ints {
			parts[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return NullText
	}
}

// FormatFloat prints the shortest representation, keeping a ".0" on
// integral values and switching to exponent form outside [1e-4, 1e16).
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Record is one output row, aligned with its header.
type Record []Value

// Strings renders every value.
func (r Record) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}
