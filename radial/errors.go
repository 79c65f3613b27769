package radial

import (
	"errors"
)

var (
	// ErrInvalidDegree is returned when the azimuthal order exceeds the radial degree (|m| > |n|).
	ErrInvalidDegree = errors.New("invalid degree: |m| > n")

	// ErrNumericOverflow is returned when the coefficients of R_n^m are too large
	// to be applied in float64 without losing the guaranteed precision.
	ErrNumericOverflow = errors.New("numeric overflow: coefficients exceed float64 precision")

	// ErrUnknownBasis is returned when a Basis is not one of the supported values.
	ErrUnknownBasis = errors.New("unknown basis")
)
