package radial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/zernike/utils"
	"github.com/tuneinsight/zernike/utils/bignum"
)

// Evaluate evaluates R_n^m on each of the samples with the Standard basis.
// The sign of n and m is ignored. The output has the same length and order as samples.
//
// Returns ErrInvalidDegree if |m| > |n| and ErrNumericOverflow if n exceeds
// the range of the Standard basis (see MaxCoefficientBits).
// If (|n|-|m|) is odd, the output is all zeros.
func Evaluate(n, m int, samples []float64) (r []float64, err error) {

	if n, m, err = degrees(n, m); err != nil {
		return nil, fmt.Errorf("cannot Evaluate: %w", err)
	}

	if utils.IsOdd(n - m) {
		return utils.Zeros(samples), nil
	}

	var coeffs []float64
	if coeffs, err = Coefficients(n, m); err != nil {
		return nil, fmt.Errorf("cannot Evaluate: %w", err)
	}

	return accumulate(m, coeffs, samples), nil
}

// accumulate returns sum_j coeffs[j] * rho^(m+2(k-j)) for each rho in samples,
// where k = len(coeffs)-1. The terms are added from the lowest power upward.
func accumulate(m int, coeffs []float64, samples []float64) (r []float64) {

	r = utils.Zeros(samples)

	k := len(coeffs) - 1

	pow := make([]float64, len(samples))
	for i, rho := range samples {
		pow[i] = math.Pow(rho, float64(m))
	}

	for j := k; j >= 0; j-- {

		c := coeffs[j]

		for i, rho := range samples {
			r[i] += c * pow[i]
			pow[i] *= rho * rho
		}
	}

	return
}

// EvaluateJacobi evaluates R_n^m on each of the samples with the Jacobi basis
//
//	R_n^m(rho) = (-1)^k rho^m P_k^(m,0)(1-2rho^2), k = (n-m)/2.
//
// It has the same semantic as Evaluate but no upper bound on n.
func EvaluateJacobi(n, m int, samples []float64) (r []float64, err error) {

	if n, m, err = degrees(n, m); err != nil {
		return nil, fmt.Errorf("cannot EvaluateJacobi: %w", err)
	}

	r = utils.Zeros(samples)

	if utils.IsOdd(n - m) {
		return
	}

	k := (n - m) >> 1

	sign := 1.0
	if utils.IsOdd(k) {
		sign = -1.0
	}

	for i, rho := range samples {
		r[i] = sign * math.Pow(rho, float64(m)) * jacobiP(k, float64(m), 1-2*rho*rho)
	}

	return
}

// jacobiP evaluates the Jacobi polynomial P_k^(a,0)(x) with the recurrence
//
//	2i(i+a)(2i+a-2) P_i = (2i+a-1)((2i+a)(2i+a-2)x + a^2) P_{i-1} - 2(i+a-1)(i-1)(2i+a) P_{i-2}
//
// started from P_0 = 1 and P_1 = (a+1) + (a+2)(x-1)/2.
func jacobiP(k int, a, x float64) float64 {

	if k == 0 {
		return 1
	}

	p0, p1 := 1.0, (a+1)+(a+2)*(x-1)/2

	for i := 2; i <= k; i++ {
		fi := float64(i)
		s := 2*fi + a
		p0, p1 = p1, ((s-1)*(s*(s-2)*x+a*a)*p1-2*(fi+a-1)*(fi-1)*s*p0)/(2*fi*(fi+a)*(s-2))
	}

	return p1
}

// EvaluateBig evaluates R_n^m on each of the samples with prec bits of precision,
// using the exact coefficients of CoefficientsBig and the Horner scheme in rho^2.
// It is the reference against which the float64 evaluators are measured.
func EvaluateBig(n, m int, samples []float64, prec uint) (r []*big.Float, err error) {

	var cBig []*big.Int
	if cBig, err = CoefficientsBig(n, m); err != nil {
		return nil, fmt.Errorf("cannot EvaluateBig: %w", err)
	}

	m = utils.Abs(m)

	r = make([]*big.Float, len(samples))

	if len(cBig) == 0 {
		for i := range r {
			r[i] = bignum.NewFloat(0, prec)
		}
		return
	}

	// poly[i] is the coefficient of (rho^2)^i
	k := len(cBig) - 1
	poly := make([]*big.Float, k+1)
	for j := range cBig {
		poly[k-j] = bignum.NewFloat(cBig[j], prec)
	}

	for i := range samples {
		rho := bignum.NewFloat(samples[i], prec)
		u := new(big.Float).SetPrec(prec).Mul(rho, rho)
		r[i] = bignum.MonomialEval(u, poly)
		r[i].Mul(r[i], bignum.PowInt(rho, m))
	}

	return
}
