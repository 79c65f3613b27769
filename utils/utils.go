// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsOdd returns true if x is odd.
func IsOdd[T constraints.Integer](x T) bool {
	return x&1 == 1
}

// Max returns the maximum value of the input values.
func Max[T constraints.Ordered](a, b T) (r T) {
	if a >= b {
		return a
	}
	return b
}

// ISqrt returns floor(sqrt(x)) for x >= 0.
func ISqrt(x int) (r int) {

	if x < 2 {
		return x
	}

	// Newton iteration on integers, converges from above.
	r = x
	y := (r + 1) >> 1
	for y < r {
		r = y
		y = (r + x/r) >> 1
	}

	return
}
