package bignum

import (
	"fmt"
	"math/big"
)

// Factorial returns n!.
// Panics if n < 0.
func Factorial(n int) (f *big.Int) {

	if n < 0 {
		panic(fmt.Errorf("cannot Factorial: n=%d < 0", n))
	}

	f = big.NewInt(1)
	if n < 2 {
		return
	}

	return f.MulRange(2, int64(n))
}

// Binomial returns the binomial coefficient C(n, k).
// Returns 0 if k < 0 or k > n.
func Binomial(n, k int) (b *big.Int) {

	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}
