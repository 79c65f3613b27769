// Package wavefront implements the full Zernike terms Z_n^m(rho, theta) and
// wavefronts expanded over them, on top of the radial package.
package wavefront

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/zernike/radial"
	"github.com/tuneinsight/zernike/utils"
)

// Term evaluates the Zernike term
//
//	Z_n^m(rho, theta) = R_n^|m|(rho) cos(m theta), m >= 0
//	Z_n^m(rho, theta) = R_n^|m|(rho) sin(|m| theta), m < 0
//
// on each (rho[i], theta[i]) with the radial polynomial evaluated in the given basis.
func Term(n, m int, basis radial.Basis, rho, theta []float64) (z []float64, err error) {

	if len(rho) != len(theta) {
		return nil, fmt.Errorf("cannot Term: len(rho)=%d != len(theta)=%d", len(rho), len(theta))
	}

	var eval radial.Evaluator
	if eval, err = radial.NewEvaluator(basis); err != nil {
		return nil, fmt.Errorf("cannot Term: %w", err)
	}

	if z, err = eval(n, m, rho); err != nil {
		return nil, fmt.Errorf("cannot Term: %w", err)
	}

	applyAzimuth(m, z, theta)

	return
}

func applyAzimuth(m int, z, theta []float64) {

	if m == 0 {
		return
	}

	fm := float64(utils.Abs(m))

	for i := range z {
		if m > 0 {
			z[i] *= math.Cos(fm * theta[i])
		} else {
			z[i] *= math.Sin(fm * theta[i])
		}
	}
}

// NormalizationFactor returns the factor sqrt((2-delta_{m0})(n+1)) that
// makes the term Z_n^m of unit RMS over the unit disk.
func NormalizationFactor(n, m int) float64 {
	if m == 0 {
		return math.Sqrt(float64(n + 1))
	}
	return math.Sqrt(2 * float64(n+1))
}

// ExpansionLiteral is a literal representation of a wavefront expansion.
// It has public fields and is used to express unchecked user-defined
// expansions literally into Go programs or JSON documents.
// The NewExpansionFromLiteral function is used to generate the actual
// checked Expansion from the literal representation.
//
// Coeffs are the weights of the Zernike terms in OSA/ANSI order (j = 0, 1, 2, ...).
type ExpansionLiteral struct {
	Coeffs     []float64
	Basis      radial.Basis `json:",omitempty"`
	Normalized bool         `json:",omitempty"`
}

// Expansion is a wavefront sum_j Coeffs[j] Z_j(rho, theta) over the OSA/ANSI
// ordered Zernike terms. Its fields are private and immutable.
type Expansion struct {
	coeffs     []float64
	indices    []radial.Index
	basis      radial.Basis
	normalized bool
}

// NewExpansionFromLiteral instantiates an Expansion from an ExpansionLiteral.
func NewExpansionFromLiteral(lit ExpansionLiteral) (e Expansion, err error) {

	if len(lit.Coeffs) == 0 {
		return e, fmt.Errorf("cannot NewExpansionFromLiteral: no coefficients")
	}

	if _, err = radial.NewEvaluator(lit.Basis); err != nil {
		return e, fmt.Errorf("cannot NewExpansionFromLiteral: %w", err)
	}

	e.coeffs = make([]float64, len(lit.Coeffs))
	copy(e.coeffs, lit.Coeffs)

	e.indices = make([]radial.Index, len(lit.Coeffs))
	for j := range e.indices {
		if e.indices[j], err = radial.FromOSA(j); err != nil {
			return Expansion{}, fmt.Errorf("cannot NewExpansionFromLiteral: %w", err)
		}
	}

	e.basis = lit.Basis
	e.normalized = lit.Normalized

	return
}

// Literal returns the ExpansionLiteral of the expansion.
func (e Expansion) Literal() ExpansionLiteral {
	coeffs := make([]float64, len(e.coeffs))
	copy(coeffs, e.coeffs)
	return ExpansionLiteral{
		Coeffs:     coeffs,
		Basis:      e.basis,
		Normalized: e.normalized,
	}
}

// Len returns the number of terms of the expansion.
func (e Expansion) Len() int {
	return len(e.coeffs)
}

// Order returns the largest radial degree of the expansion.
func (e Expansion) Order() int {
	return radial.MaxOrder(len(e.coeffs))
}

// Basis returns the basis used to evaluate the radial polynomials.
func (e Expansion) Basis() radial.Basis {
	return e.basis
}

// Indices returns the (n, m) pair of each of the terms.
func (e Expansion) Indices() []radial.Index {
	indices := make([]radial.Index, len(e.indices))
	copy(indices, e.indices)
	return indices
}

// Evaluate returns the wavefront at each (rho[i], theta[i]).
// Terms with a zero coefficient are skipped.
func (e Expansion) Evaluate(rho, theta []float64) (w []float64, err error) {

	if len(rho) != len(theta) {
		return nil, fmt.Errorf("cannot Evaluate: len(rho)=%d != len(theta)=%d", len(rho), len(theta))
	}

	w = utils.Zeros(rho)

	for j, idx := range e.indices {

		c := e.coeffs[j]
		if c == 0 {
			continue
		}

		if e.normalized {
			c *= NormalizationFactor(idx.N, idx.M)
		}

		var z []float64
		if z, err = Term(idx.N, idx.M, e.basis, rho, theta); err != nil {
			return nil, fmt.Errorf("cannot Evaluate: term j=%d: %w", j, err)
		}

		for i := range w {
			w[i] += c * z[i]
		}
	}

	return
}

// Equal performs a deep equal.
func (e Expansion) Equal(other *Expansion) bool {
	return other != nil &&
		e.basis == other.basis &&
		e.normalized == other.normalized &&
		cmp.Equal(e.coeffs, other.coeffs)
}
