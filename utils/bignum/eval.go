package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with the Horner scheme.
// The precision of x is used as reference precision for y.
// Returns zero if poly is empty.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	n := len(poly)
	if n == 0 {
		return
	}

	y.Set(poly[n-1])
	for i := n - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}
