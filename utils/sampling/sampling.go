// Package sampling implements the sampling of radial sample points.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RandFloat64 returns a float64 in [min, max) read from r.
func RandFloat64(r io.Reader, min, max float64) (f float64, err error) {
	b := make([]byte, 8)
	if _, err = io.ReadFull(r, b); err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}
	// 53 random bits mapped to [0, 1)
	f = float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// Radii returns count values uniformly distributed in [0, 1) read from r.
func Radii(r io.Reader, count int) (rho []float64, err error) {

	if count < 0 {
		return nil, fmt.Errorf("cannot Radii: count=%d < 0", count)
	}

	rho = make([]float64, count)
	for i := range rho {
		if rho[i], err = RandFloat64(r, 0, 1); err != nil {
			return nil, fmt.Errorf("cannot Radii: %w", err)
		}
	}

	return
}

// Linspace returns count evenly spaced values over [start, end].
// The end point is included when count > 1.
func Linspace(start, end float64, count int) (x []float64) {

	if count <= 0 {
		return []float64{}
	}

	x = make([]float64, count)

	if count == 1 {
		x[0] = start
		return
	}

	step := (end - start) / float64(count-1)
	for i := range x {
		x[i] = start + step*float64(i)
	}
	x[count-1] = end

	return
}
