package radial

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/tuneinsight/zernike/utils"
	"github.com/tuneinsight/zernike/utils/bignum"
)

// MaxCoefficientBits bounds log2(sum_j |c_j|) for the Standard basis.
// Every pair (n, m) above the bound fails with ErrNumericOverflow, even when
// each |c_j| is still below 2^53: the bound applies to the cancellation in
// the float64 sum, not to the representation of the coefficients.
const MaxCoefficientBits = 32

// StandardErrorBound is the largest absolute error of Evaluate on [0, 1]
// against EvaluateBig, over every pair accepted by the Standard basis.
const StandardErrorBound = 2e-7

// CoefficientsBig returns the exact coefficients c_0, ..., c_k, k = (|n|-|m|)/2, of
//
//	R_n^m(rho) = sum_j c_j rho^(|n|-2j)
//
// computed as c_j = (-1)^j C(n-j, j) C(n-2j, k-j), which equals the factorial ratio
// (-1)^j (n-j)! / (j! ((n+m)/2-j)! ((n-m)/2-j)!) without evaluating the factorials.
// Returns an empty slice if (|n|-|m|) is odd.
func CoefficientsBig(n, m int) (coeffs []*big.Int, err error) {

	if n, m, err = degrees(n, m); err != nil {
		return nil, fmt.Errorf("cannot CoefficientsBig: %w", err)
	}

	if utils.IsOdd(n - m) {
		return []*big.Int{}, nil
	}

	k := (n - m) >> 1

	coeffs = make([]*big.Int, k+1)

	for j := 0; j <= k; j++ {
		c := bignum.Binomial(n-j, j)
		c.Mul(c, bignum.Binomial(n-2*j, k-j))
		if utils.IsOdd(j) {
			c.Neg(c)
		}
		coeffs[j] = c
	}

	return
}

// Coefficients returns the coefficients of R_n^m as float64, see CoefficientsBig.
// Returns ErrNumericOverflow if log2(sum_j |c_j|) exceeds MaxCoefficientBits.
func Coefficients(n, m int) (coeffs []float64, err error) {

	var cBig []*big.Int
	if cBig, err = CoefficientsBig(n, m); err != nil {
		return nil, fmt.Errorf("cannot Coefficients: %w", err)
	}

	if bits := coefficientBits(cBig); bits > MaxCoefficientBits {
		return nil, fmt.Errorf("cannot Coefficients: %w: n=%d, m=%d requires %.2f bits > %d", ErrNumericOverflow, n, m, bits, MaxCoefficientBits)
	}

	coeffs = make([]float64, len(cBig))
	for j := range cBig {
		coeffs[j], _ = new(big.Float).SetInt(cBig[j]).Float64()
	}

	return
}

// coefficientBits returns log2(sum_j |c_j|), or -Inf for an empty slice.
func coefficientBits(coeffs []*big.Int) float64 {

	sum := new(big.Int)
	for j := range coeffs {
		sum.Add(sum, new(big.Int).Abs(coeffs[j]))
	}

	if sum.Sign() == 0 {
		return math.Inf(-1)
	}

	return bignum.Log2Abs(bignum.NewFloat(sum, uint(utils.Max(sum.BitLen(), 64))))
}

var maxStandardDegree struct {
	sync.Once
	n int
}

// MaxStandardDegree returns the largest degree n for which the Standard
// basis accepts every azimuthal order m. Larger degrees are served by the
// Jacobi basis or by EvaluateBig.
func MaxStandardDegree() int {
	maxStandardDegree.Do(func() {
		for n := 0; ; n++ {
			for m := n & 1; m <= n; m += 2 {
				if _, err := Coefficients(n, m); err != nil {
					maxStandardDegree.n = n - 1
					return
				}
			}
		}
	})
	return maxStandardDegree.n
}
