package radial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/zernike/utils"
	"github.com/tuneinsight/zernike/utils/buffer"
	"github.com/zeebo/blake3"
)

// Table stores the Standard coefficients of every R_n^m with 0 <= m <= n <= order
// and (n-m) even, so that repeated evaluations do not recompute them.
type Table struct {
	order  int
	coeffs [][]float64
}

// NewTable precomputes the coefficients up to the given order.
// Returns ErrNumericOverflow if order > MaxStandardDegree().
func NewTable(order int) (t *Table, err error) {

	if order < 0 {
		return nil, fmt.Errorf("cannot NewTable: %w: order=%d < 0", ErrInvalidDegree, order)
	}

	t = &Table{
		order:  order,
		coeffs: make([][]float64, tableSize(order)),
	}

	for n := 0; n <= order; n++ {
		for m := n & 1; m <= n; m += 2 {
			if t.coeffs[tableOffset(n, m)], err = Coefficients(n, m); err != nil {
				return nil, fmt.Errorf("cannot NewTable: %w", err)
			}
		}
	}

	return
}

// tableOffset returns the position of (n, m) in the table, with the pairs
// sorted by n and then by m. There are n/2+1 pairs of degree n.
func tableOffset(n, m int) int {
	return n + (n/2)*((n-1)/2) + m/2
}

func tableSize(order int) int {
	return tableOffset(order+1, 0)
}

// Order returns the largest degree stored in the table.
func (t Table) Order() int {
	return t.order
}

// Lookup returns the coefficients of R_n^m, see Coefficients.
// The second return value is false if (n, m) is outside of the table.
func (t Table) Lookup(n, m int) ([]float64, bool) {

	n, m, err := degrees(n, m)
	if err != nil || n > t.order {
		return nil, false
	}

	if utils.IsOdd(n - m) {
		return []float64{}, true
	}

	return t.coeffs[tableOffset(n, m)], true
}

// Evaluate evaluates R_n^m on the samples with the stored coefficients.
// It returns the same values as the package level Evaluate.
func (t Table) Evaluate(n, m int, samples []float64) (r []float64, err error) {

	if n, m, err = degrees(n, m); err != nil {
		return nil, fmt.Errorf("cannot Evaluate: %w", err)
	}

	coeffs, ok := t.Lookup(n, m)
	if !ok {
		return nil, fmt.Errorf("cannot Evaluate: n=%d > table order %d", n, t.order)
	}

	if len(coeffs) == 0 {
		return utils.Zeros(samples), nil
	}

	return accumulate(m, coeffs, samples), nil
}

// Equal performs a deep equal.
func (t Table) Equal(other *Table) bool {
	return other != nil && t.order == other.order && cmp.Equal(t.coeffs, other.coeffs)
}

// BinarySize returns the serialized size of the object in bytes.
func (t Table) BinarySize() (size int) {
	size = 8
	for i := range t.coeffs {
		size += 8 * len(t.coeffs[i])
	}
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see zernike/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (t Table) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteInt(w, t.order); err != nil {
			return n + inc, err
		}

		n += inc

		for i := range t.coeffs {
			if inc, err = buffer.WriteFloat64Slice(w, t.coeffs[i]); err != nil {
				return n + inc, err
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return t.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see zernike/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (t *Table) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var order int

		if inc, err = buffer.ReadInt(r, &order); err != nil {
			return n + inc, err
		}

		n += inc

		if err = checkTableOrder(order); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		t.order = order
		t.coeffs = make([][]float64, tableSize(order))

		for deg := 0; deg <= order; deg++ {
			for m := deg & 1; m <= deg; m += 2 {

				c := make([]float64, (deg-m)/2+1)

				if inc, err = buffer.ReadFloat64Slice(r, c); err != nil {
					return n + inc, err
				}

				n += inc

				t.coeffs[tableOffset(deg, m)] = c
			}
		}

		return

	default:
		return t.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (t Table) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(t.BinarySize())
	_, err = t.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (t *Table) UnmarshalBinary(p []byte) (err error) {
	_, err = t.ReadFrom(buffer.NewBuffer(p))
	return
}

// checkTableOrder rejects the orders that NewTable would refuse.
func checkTableOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: table order %d < 0", ErrInvalidDegree, order)
	}
	if limit := MaxStandardDegree(); order > limit {
		return fmt.Errorf("%w: table order %d > %d", ErrNumericOverflow, order, limit)
	}
	return nil
}

type tableCBOR struct {
	Order  int         `cbor:"1,keyasint"`
	Coeffs [][]float64 `cbor:"2,keyasint"`
}

// MarshalCBOR encodes the object in CBOR.
func (t Table) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(tableCBOR{Order: t.order, Coeffs: t.coeffs})
}

// UnmarshalCBOR decodes a CBOR encoding generated by MarshalCBOR.
func (t *Table) UnmarshalCBOR(p []byte) (err error) {

	var w tableCBOR
	if err = cbor.Unmarshal(p, &w); err != nil {
		return fmt.Errorf("cannot UnmarshalCBOR: %w", err)
	}

	if err = checkTableOrder(w.Order); err != nil {
		return fmt.Errorf("cannot UnmarshalCBOR: %w", err)
	}

	if len(w.Coeffs) != tableSize(w.Order) {
		return fmt.Errorf("cannot UnmarshalCBOR: %d coefficient vectors for order %d", len(w.Coeffs), w.Order)
	}

	for n := 0; n <= w.Order; n++ {
		for m := n & 1; m <= n; m += 2 {
			if len(w.Coeffs[tableOffset(n, m)]) != (n-m)/2+1 {
				return fmt.Errorf("cannot UnmarshalCBOR: invalid coefficient vector for n=%d, m=%d", n, m)
			}
		}
	}

	t.order, t.coeffs = w.Order, w.Coeffs

	return
}

// Digest returns the blake3 hash of the binary encoding of the table.
func (t Table) Digest() (digest [32]byte, err error) {
	var p []byte
	if p, err = t.MarshalBinary(); err != nil {
		return digest, fmt.Errorf("cannot Digest: %w", err)
	}
	return blake3.Sum256(p), nil
}
