package buffer

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Float64Slice", func(t *testing.T) {
		values := []float64{0, -1, math.Pi, math.Inf(1), 1e300}

		b := NewBufferSize(8 * len(values))

		n, err := WriteFloat64Slice(b, values)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(values)), n)
		require.Equal(t, 0, b.Available())

		got := make([]float64, len(values))
		n, err = ReadFloat64Slice(b, got)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(values)), n)
		require.Equal(t, values, got)
	})

	t.Run("TooSmall", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := WriteUint64(b, 1)
		require.Error(t, err)

		var c uint64
		_, err = ReadUint64(NewBuffer([]byte{1, 2, 3}), &c)
		require.Error(t, err)
	})

	t.Run("Bufio", func(t *testing.T) {
		var bb bytes.Buffer
		w := bufio.NewWriter(&bb)
		_, err := WriteInt(w, -7)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		var c int
		_, err = ReadInt(bufio.NewReader(&bb), &c)
		require.NoError(t, err)
		require.Equal(t, -7, c)
	})
}
