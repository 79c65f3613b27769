// Package radial implements the evaluation of the Zernike radial polynomials
//
//	R_n^m(rho) = sum_{j=0}^{(n-m)/2} (-1)^j (n-j)! / (j! ((n+m)/2-j)! ((n-m)/2-j)!) rho^(n-2j)
//
// over sequences of radial samples. All evaluators are pure functions: they never
// mutate their inputs and return freshly allocated outputs of the same length and order.
package radial

import (
	"encoding/json"
	"fmt"
)

// Basis is the closed set of formulations available to evaluate R_n^m.
type Basis int

const (
	// Standard evaluates the explicit factorial-ratio sum.
	Standard = Basis(0)
	// Jacobi evaluates R_n^m(rho) = (-1)^k rho^m P_k^(m,0)(1-2rho^2) with k = (n-m)/2
	// using the three-term recurrence of the Jacobi polynomials.
	Jacobi = Basis(1)
)

var basisNames = map[Basis]string{
	Standard: "Standard",
	Jacobi:   "Jacobi",
}

// String returns the name of the basis.
func (b Basis) String() string {
	if name, ok := basisNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Basis(%d)", int(b))
}

// ParseBasis returns the Basis with the given name.
func ParseBasis(name string) (Basis, error) {
	for b, s := range basisNames {
		if s == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("cannot ParseBasis: %w: %q", ErrUnknownBasis, name)
}

// MarshalJSON encodes the basis by name.
func (b Basis) MarshalJSON() ([]byte, error) {
	name, ok := basisNames[b]
	if !ok {
		return nil, fmt.Errorf("cannot MarshalJSON: %w: %d", ErrUnknownBasis, int(b))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a basis from its name.
func (b *Basis) UnmarshalJSON(p []byte) (err error) {
	var name string
	if err = json.Unmarshal(p, &name); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	*b, err = ParseBasis(name)
	return
}

// Evaluator is a function evaluating R_n^m on each of the samples.
type Evaluator func(n, m int, samples []float64) ([]float64, error)

// NewEvaluator returns the Evaluator of the given basis.
// Unknown basis values are rejected here, before any evaluation.
func NewEvaluator(basis Basis) (Evaluator, error) {
	switch basis {
	case Standard:
		return Evaluate, nil
	case Jacobi:
		return EvaluateJacobi, nil
	default:
		return nil, fmt.Errorf("cannot NewEvaluator: %w: %d", ErrUnknownBasis, int(basis))
	}
}
