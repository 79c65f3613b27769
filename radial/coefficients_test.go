package radial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/zernike/utils/bignum"
)

func TestCoefficients(t *testing.T) {

	t.Run("FactorialRatio", func(t *testing.T) {
		for n := 0; n <= 30; n++ {
			for m := n & 1; m <= n; m += 2 {

				coeffs, err := CoefficientsBig(n, m)
				require.NoError(t, err)
				require.Len(t, coeffs, (n-m)/2+1)

				for j := range coeffs {
					num := bignum.Factorial(n - j)
					den := bignum.Factorial(j)
					den.Mul(den, bignum.Factorial((n+m)/2-j))
					den.Mul(den, bignum.Factorial((n-m)/2-j))

					want := new(big.Int).Quo(num, den)
					if j&1 == 1 {
						want.Neg(want)
					}

					require.Zero(t, want.Cmp(coeffs[j]), "n=%d m=%d j=%d", n, m, j)
				}
			}
		}
	})

	t.Run("Float64", func(t *testing.T) {
		coeffs, err := Coefficients(6, 0)
		require.NoError(t, err)
		require.Equal(t, []float64{20, -30, 12, -1}, coeffs)

		coeffs, err = Coefficients(-4, -2)
		require.NoError(t, err)
		require.Equal(t, []float64{4, -3}, coeffs)

		coeffs, err = Coefficients(5, 2)
		require.NoError(t, err)
		require.Empty(t, coeffs)
	})

	t.Run("SumAtUnitRadius", func(t *testing.T) {
		// R_n^m(1) = sum_j c_j = 1
		for n := 0; n <= 80; n++ {
			for m := n & 1; m <= n; m += 2 {
				coeffs, err := CoefficientsBig(n, m)
				require.NoError(t, err)
				sum := new(big.Int)
				for _, c := range coeffs {
					sum.Add(sum, c)
				}
				require.Equal(t, int64(1), sum.Int64(), "n=%d m=%d", n, m)
			}
		}
	})
}

func TestEvaluateBig(t *testing.T) {

	r, err := EvaluateBig(200, 0, []float64{1, 0}, 1024)
	require.NoError(t, err)

	one, _ := r[0].Float64()
	require.InDelta(t, 1.0, one, 1e-30)

	// R_{2k}^0(0) = (-1)^k
	zero, _ := r[1].Float64()
	require.Equal(t, 1.0, zero)

	r, err = EvaluateBig(3, 0, []float64{0.25, 0.5}, 64)
	require.NoError(t, err)
	for i := range r {
		require.Zero(t, r[i].Sign())
	}

	r, err = EvaluateBig(4, 2, nil, 64)
	require.NoError(t, err)
	require.Empty(t, r)
}

func TestJacobiAgreesWithReference(t *testing.T) {

	samples := testSamples(t, 32)

	for _, idx := range []Index{{40, 0}, {41, 3}, {60, 10}, {90, 30}} {
		t.Run(testString("Agreement", Jacobi, idx), func(t *testing.T) {

			have, err := EvaluateJacobi(idx.N, idx.M, samples)
			require.NoError(t, err)

			want, err := EvaluateBig(idx.N, idx.M, samples, 512)
			require.NoError(t, err)

			for i := range want {
				w, _ := want[i].Float64()
				require.InDelta(t, w, have[i], 1e-9)
			}
		})
	}
}
