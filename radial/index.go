package radial

import (
	"fmt"
	"math"

	"github.com/tuneinsight/zernike/utils"
)

// Index is a (degree, azimuthal order) pair (n, m).
type Index struct {
	N int `json:"n"`
	M int `json:"m"`
}

// Validate returns an error if n < 0 or |m| > n.
// Pairs with (n-|m|) odd are valid: their radial polynomial is identically zero.
func (idx Index) Validate() error {
	if idx.N < 0 {
		return fmt.Errorf("%w: n=%d < 0", ErrInvalidDegree, idx.N)
	}
	_, _, err := degrees(idx.N, idx.M)
	return err
}

// degrees returns (|n|, |m|), or ErrInvalidDegree if |m| > |n|
// or if one of them is math.MinInt, whose absolute value is not an int.
func degrees(n, m int) (int, int, error) {

	if n == math.MinInt || m == math.MinInt {
		return 0, 0, fmt.Errorf("%w: degree %d out of range", ErrInvalidDegree, math.MinInt)
	}

	n, m = utils.Abs(n), utils.Abs(m)

	if n < m {
		return 0, 0, fmt.Errorf("%w: |m|=%d > |n|=%d", ErrInvalidDegree, m, n)
	}

	return n, m, nil
}

// IsNull returns true if (|n|-|m|) is odd, in which case R_n^m is identically zero.
func (idx Index) IsNull() bool {
	return utils.IsOdd(utils.Abs(idx.N) - utils.Abs(idx.M))
}

func (idx Index) String() string {
	return fmt.Sprintf("n=%d/m=%d", idx.N, idx.M)
}

// TermCount returns the number of Zernike terms of degree at most order,
// that is (order+1)(order+2)/2. Returns 0 if order < 0.
func TermCount(order int) int {
	if order < 0 {
		return 0
	}
	return (order + 1) * (order + 2) / 2
}

// MaxOrder returns the smallest degree n such that the terms of degree at most n
// hold count coefficients, i.e. ceil((sqrt(1+8*count)-3)/2).
// Returns 0 for count <= 1.
func MaxOrder(count int) (n int) {

	if count <= 1 {
		return 0
	}

	n = utils.Max((utils.ISqrt(1+8*count)-3)/2, 0)

	for TermCount(n) < count {
		n++
	}

	for n > 0 && TermCount(n-1) >= count {
		n--
	}

	return
}

// OSAIndex returns the OSA/ANSI single index j = (n(n+2)+m)/2 of (n, m).
func OSAIndex(n, m int) (j int, err error) {
	idx := Index{N: n, M: m}
	if err = idx.validateTerm(); err != nil {
		return 0, fmt.Errorf("cannot OSAIndex: %w", err)
	}
	return (n*(n+2) + m) / 2, nil
}

// FromOSA returns the (n, m) pair of the OSA/ANSI single index j >= 0.
func FromOSA(j int) (idx Index, err error) {
	if j < 0 {
		return idx, fmt.Errorf("cannot FromOSA: j=%d < 0", j)
	}
	n := MaxOrder(j + 1)
	return Index{N: n, M: 2*j - n*(n+2)}, nil
}

// NollIndex returns Noll's 1-based single index of (n, m).
// Even indices are assigned to m > 0 (cosine terms), odd indices to m < 0 (sine terms).
func NollIndex(n, m int) (j int, err error) {

	idx := Index{N: n, M: m}
	if err = idx.validateTerm(); err != nil {
		return 0, fmt.Errorf("cannot NollIndex: %w", err)
	}

	j = n*(n+1)/2 + utils.Abs(m)

	switch {
	case m > 0 && (n%4 == 0 || n%4 == 1):
	case m < 0 && (n%4 == 2 || n%4 == 3):
	default:
		j++
	}

	return
}

// FromNoll returns the (n, m) pair of Noll's 1-based single index j >= 1.
func FromNoll(j int) (idx Index, err error) {

	if j < 1 {
		return idx, fmt.Errorf("cannot FromNoll: j=%d < 1", j)
	}

	n := MaxOrder(j)

	for m := -n; m <= n; m += 2 {
		if jm, _ := NollIndex(n, m); jm == j {
			return Index{N: n, M: m}, nil
		}
	}

	// unreachable: each row n holds exactly the Noll indices in (TermCount(n-1), TermCount(n)]
	return idx, fmt.Errorf("cannot FromNoll: no term for j=%d", j)
}

// validateTerm checks that idx is a non-null term of the Zernike basis.
func (idx Index) validateTerm() error {
	if err := idx.Validate(); err != nil {
		return err
	}
	if idx.IsNull() {
		return fmt.Errorf("%w: n-|m|=%d is odd", ErrInvalidDegree, idx.N-utils.Abs(idx.M))
	}
	return nil
}
