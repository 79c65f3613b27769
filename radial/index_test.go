package radial

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, Index{N: 4, M: -2}.Validate())
		require.NoError(t, Index{N: 3, M: 0}.Validate())
		require.ErrorIs(t, Index{N: 2, M: 3}.Validate(), ErrInvalidDegree)
		require.ErrorIs(t, Index{N: -1, M: 0}.Validate(), ErrInvalidDegree)

		require.True(t, Index{N: 3, M: 0}.IsNull())
		require.False(t, Index{N: 4, M: -2}.IsNull())
	})

	t.Run("JSON", func(t *testing.T) {
		var idx Index
		require.NoError(t, json.Unmarshal([]byte(`{"n":5,"m":-3}`), &idx))
		require.Equal(t, Index{N: 5, M: -3}, idx)
	})

	t.Run("MaxOrder", func(t *testing.T) {

		// 6 coefficients fill the terms up to degree 2
		require.Equal(t, 2, MaxOrder(6))
		require.Equal(t, 0, MaxOrder(0))
		require.Equal(t, 0, MaxOrder(1))
		require.Equal(t, 1, MaxOrder(2))
		require.Equal(t, 1, MaxOrder(3))
		require.Equal(t, 2, MaxOrder(4))
		require.Equal(t, 3, MaxOrder(7))

		for count := 2; count < 5000; count++ {
			n := MaxOrder(count)
			require.GreaterOrEqual(t, TermCount(n), count)
			require.Less(t, TermCount(n-1), count)
		}

		require.Equal(t, 0, TermCount(-1))
		require.Equal(t, 15, TermCount(4))
	})

	t.Run("OSA", func(t *testing.T) {

		want := []Index{{0, 0}, {1, -1}, {1, 1}, {2, -2}, {2, 0}, {2, 2}, {3, -3}, {3, -1}, {3, 1}, {3, 3}}
		for j, idx := range want {
			have, err := FromOSA(j)
			require.NoError(t, err)
			require.Equal(t, idx, have)

			jj, err := OSAIndex(idx.N, idx.M)
			require.NoError(t, err)
			require.Equal(t, j, jj)
		}

		for j := 0; j < 2000; j++ {
			idx, err := FromOSA(j)
			require.NoError(t, err)
			jj, err := OSAIndex(idx.N, idx.M)
			require.NoError(t, err)
			require.Equal(t, j, jj)
		}

		_, err := FromOSA(-1)
		require.Error(t, err)

		_, err = OSAIndex(3, 0)
		require.ErrorIs(t, err, ErrInvalidDegree)
	})

	t.Run("Noll", func(t *testing.T) {

		want := []Index{{0, 0}, {1, 1}, {1, -1}, {2, 0}, {2, -2}, {2, 2}, {3, -1}, {3, 1}, {3, -3}, {3, 3}, {4, 0}, {4, 2}, {4, -2}}
		for i, idx := range want {
			j := i + 1

			have, err := FromNoll(j)
			require.NoError(t, err)
			require.Equal(t, idx, have, "j=%d", j)

			jj, err := NollIndex(idx.N, idx.M)
			require.NoError(t, err)
			require.Equal(t, j, jj)
		}

		seen := map[int]bool{}
		for n := 0; n <= 40; n++ {
			for m := -n; m <= n; m += 2 {
				j, err := NollIndex(n, m)
				require.NoError(t, err)
				require.False(t, seen[j], "duplicate Noll index %d", j)
				seen[j] = true

				idx, err := FromNoll(j)
				require.NoError(t, err)
				require.Equal(t, Index{N: n, M: m}, idx)
			}
		}

		require.Len(t, seen, TermCount(40))

		_, err := FromNoll(0)
		require.Error(t, err)
	})
}
