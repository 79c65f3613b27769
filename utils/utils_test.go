package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, Abs(-3))
	require.Equal(t, int64(7), Abs(int64(7)))
	require.Equal(t, 0, Abs(0))
}

func TestIsOdd(t *testing.T) {
	require.True(t, IsOdd(3))
	require.False(t, IsOdd(4))
	require.True(t, IsOdd(-1))
	require.False(t, IsOdd(0))
}

func TestISqrt(t *testing.T) {
	for x := 0; x < 10000; x++ {
		r := ISqrt(x)
		require.LessOrEqual(t, r*r, x)
		require.Greater(t, (r+1)*(r+1), x)
	}
}
