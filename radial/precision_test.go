package radial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionStats(t *testing.T) {

	samples := testSamples(t, 256)

	for _, basis := range []Basis{Standard, Jacobi} {
		for _, idx := range []Index{{4, 2}, {12, 0}, {20, 2}} {
			t.Run(testString("PrecisionStats", basis, idx), func(t *testing.T) {

				prec, err := GetPrecisionStats(idx.N, idx.M, basis, samples)
				require.NoError(t, err)

				require.Equal(t, idx, prec.Index)
				require.Equal(t, basis, prec.Basis)

				require.GreaterOrEqual(t, prec.MinPrecision, 20.0)
				require.LessOrEqual(t, prec.MinPrecision, prec.MedianPrecision)
				require.LessOrEqual(t, prec.MedianPrecision, prec.MaxPrecision)
				require.LessOrEqual(t, prec.MaxPrecision, float64(ReferencePrecision))
				require.Less(t, prec.MaxDelta, 1e-7)

				require.NotEmpty(t, prec.String())
			})
		}
	}

	t.Run("Errors", func(t *testing.T) {
		_, err := GetPrecisionStats(4, 2, Standard, nil)
		require.Error(t, err)

		_, err = GetPrecisionStats(2, 4, Standard, samples)
		require.ErrorIs(t, err, ErrInvalidDegree)

		_, err = GetPrecisionStats(4, 2, Basis(5), samples)
		require.ErrorIs(t, err, ErrUnknownBasis)
	})

	t.Run("Parity", func(t *testing.T) {
		prec, err := GetPrecisionStats(5, 2, Standard, samples)
		require.NoError(t, err)
		require.Equal(t, float64(ReferencePrecision), prec.MinPrecision)
		require.Zero(t, prec.MaxDelta)
	})
}
