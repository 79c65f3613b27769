package radial

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch evaluates R_n^m on the same samples for each of the indices,
// with at most runtime.NumCPU() evaluations in flight. out[i] holds the result
// for indices[i]. The first failing index, or the cancellation of ctx,
// aborts the remaining evaluations.
func EvaluateBatch(ctx context.Context, basis Basis, indices []Index, samples []float64) (out [][]float64, err error) {

	var eval Evaluator
	if eval, err = NewEvaluator(basis); err != nil {
		return nil, fmt.Errorf("cannot EvaluateBatch: %w", err)
	}

	out = make([][]float64, len(indices))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range indices {

		g.Go(func() (err error) {

			if err = ctx.Err(); err != nil {
				return
			}

			if out[i], err = eval(indices[i].N, indices[i].M, samples); err != nil {
				return fmt.Errorf("index %d (%s): %w", i, indices[i], err)
			}

			return
		})
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot EvaluateBatch: %w", err)
	}

	return
}
