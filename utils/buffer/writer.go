package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes a single uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return 0, fmt.Errorf("cannot WriteUint64: %w", err)
		}
		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: writer has less than 8 bytes of capacity")
		}
	}

	buf := w.AvailableBuffer()
	buf = binary.LittleEndian.AppendUint64(buf, c)

	inc, err := w.Write(buf)
	return int64(inc), err
}

// WriteInt writes a single int c to w as an uint64.
func WriteInt(w Writer, c int) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteFloat64 writes the IEEE 754 binary representation of c to w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes a slice of float64 c to w.
// The length of the slice is not written.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	var inc int64
	for i := range c {
		if inc, err = WriteFloat64(w, c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}
