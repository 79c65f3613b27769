package radial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/zernike/utils/bignum"
)

// ReferencePrecision is the precision in bits of the reference evaluation
// used by GetPrecisionStats.
const ReferencePrecision = 128

// PrecisionStats is a struct storing statistics about the precision
// of a float64 evaluation of R_n^m, measured against EvaluateBig.
// Precisions are expressed in bits: -log2(|have - want|), capped at ReferencePrecision.
type PrecisionStats struct {
	Index Index
	Basis Basis

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64

	MaxDelta float64
	STDDelta float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬────────┐
│ %-7s │ %-6s │
├─────────┼────────┤
│MIN Prec │ %6.2f │
│MAX Prec │ %6.2f │
│AVG Prec │ %6.2f │
│MED Prec │ %6.2f │
└─────────┴────────┘
Err MAX : %5.2f Log2
Err STD : %5.2f Log2
`,
		prec.Index, prec.Basis,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		math.Log2(prec.MaxDelta),
		math.Log2(prec.STDDelta))
}

// GetPrecisionStats evaluates R_n^m on the samples with the given basis and
// compares the result against EvaluateBig at ReferencePrecision bits.
func GetPrecisionStats(n, m int, basis Basis, samples []float64) (prec PrecisionStats, err error) {

	if len(samples) == 0 {
		return prec, fmt.Errorf("cannot GetPrecisionStats: no samples")
	}

	var eval Evaluator
	if eval, err = NewEvaluator(basis); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	var have []float64
	if have, err = eval(n, m, samples); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	var want []*big.Float
	if want, err = EvaluateBig(n, m, samples, ReferencePrecision); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	precisions := make(stats.Float64Data, len(samples))
	deltas := make(stats.Float64Data, len(samples))

	delta := new(big.Float).SetPrec(ReferencePrecision)

	for i := range samples {

		delta.Sub(bignum.NewFloat(have[i], ReferencePrecision), want[i])

		deltas[i], _ = new(big.Float).Abs(delta).Float64()

		precisions[i] = math.Min(-bignum.Log2Abs(delta), ReferencePrecision)
	}

	prec.Index = Index{N: n, M: m}
	prec.Basis = basis

	if prec.MinPrecision, err = precisions.Min(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxPrecision, err = precisions.Max(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanPrecision, err = precisions.Mean(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianPrecision, err = precisions.Median(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxDelta, err = deltas.Max(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.STDDelta, err = deltas.StandardDeviation(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return
}
