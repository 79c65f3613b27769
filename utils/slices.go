package utils

import (
	"math"
)

// Zeros returns a new slice of zeros with the same length as s.
func Zeros(s []float64) []float64 {
	return make([]float64, len(s))
}

// AllClose returns true if a and b have the same length and
// |a[i]-b[i]| <= atol + rtol * |b[i]| for all i.
func AllClose(a, b []float64, rtol, atol float64) bool {

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns max_i |a[i]-b[i]|.
// The slices must have the same length.
func MaxAbsDiff(a, b []float64) (max float64) {

	if len(a) != len(b) {
		panic("cannot MaxAbsDiff: a and b of different lengths")
	}

	for i := range a {
		max = math.Max(max, math.Abs(a[i]-b[i]))
	}

	return
}
