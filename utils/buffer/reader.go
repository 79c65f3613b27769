package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadUint64 reads an uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb []byte
	if bb, err = r.Peek(8); err != nil {
		return 0, fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(bb)

	inc, err := r.Discard(8)
	return int64(inc), err
}

// ReadInt reads an int values from r and stores the result into *c.
func ReadInt(r Reader, c *int) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return n, err
	}

	*c = int(v)
	return
}

// ReadFloat64 reads a float64 from r and stores the result into *c.
func ReadFloat64(r Reader, c *float64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return n, err
	}

	*c = math.Float64frombits(v)
	return
}

// ReadFloat64Slice reads len(c) float64 values from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {

	var inc int64
	for i := range c {
		if inc, err = ReadFloat64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}
