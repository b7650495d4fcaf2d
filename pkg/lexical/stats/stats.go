// Package stats holds the numeric helpers shared by the metric packages,
// including the "undefined" outcome that is distinct from zero.
package stats

import "math"

// Float is a metric value that may be undefined.
type Float struct {
	Value float64
	Valid bool
}

// Undefined is the sentinel for a value that cannot be computed.
var Undefined = Float{}

// Of wraps a defined value.
func Of(v float64) Float { return Float{Value: v, Valid: true} }

// Mean returns the arithmetic mean. It is undefined for an empty slice or
// when the values sum to zero.
func Mean(vals []float64) Float {
	if len(vals) == 0 {
		return Undefined
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	if sum == 0 {
		return Undefined
	}
	return Of(sum / float64(len(vals)))
}

// SampleSD returns the standard deviation with an n-1 denominator. It is
// undefined when mean is undefined or there are fewer than two values.
func SampleSD(vals []float64, mean Float) Float {
	if !mean.Valid || len(vals) <= 1 {
		return Undefined
	}
	sq := 0.0
	for _, v := range vals {
		d := v - mean.Value
		sq += d * d
	}
	return Of(math.Sqrt(sq / float64(len(vals)-1)))
}

// MeanSD returns Mean and SampleSD together.
func MeanSD(vals []float64) (mean, sd Float) {
	mean = Mean(vals)
	return mean, SampleSD(vals, mean)
}

// Ints converts integer samples for MeanSD.
func Ints(vals []int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
