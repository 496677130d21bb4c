package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AggregateMedian reduces an ensemble to a single curve by taking, at each
// evaluation position t, the median of the R running-best values there.
//
// Tie-break convention for even R: the average of the two middle order
// statistics. Note the result is NOT guaranteed to be pointwise
// non-increasing — the median of non-increasing curves need not itself be
// non-increasing when the curves differ — and no monotonicity is enforced.
func AggregateMedian(e *Ensemble) ([]float64, error) {
	return aggregate(e, func(column []float64) float64 {
		n := len(column)
		if n%2 == 1 {
			return column[n/2]
		}
		return (column[n/2-1] + column[n/2]) / 2
	})
}

// AggregateQuantile reduces an ensemble to the per-position empirical
// q-quantile curve, 0 < q < 1. Useful for drawing spread bands around the
// median, e.g. q = 0.25 and q = 0.75.
func AggregateQuantile(e *Ensemble, q float64) ([]float64, error) {
	if q <= 0 || q >= 1 {
		return nil, fmt.Errorf("aggregate quantile: q must be in (0, 1), got %v: %w", q, ErrInvalidInput)
	}
	return aggregate(e, func(column []float64) float64 {
		return stat.Quantile(q, stat.Empirical, column, nil)
	})
}

// aggregate applies reduce to the sorted column of ensemble values at every
// evaluation position.
func aggregate(e *Ensemble, reduce func(sorted []float64) float64) ([]float64, error) {
	if e == nil || e.Runs() == 0 {
		return nil, fmt.Errorf("aggregate: empty ensemble: %w", ErrInvalidInput)
	}
	n := e.Evals()
	out := make([]float64, n)
	column := make([]float64, e.Runs())
	for t := 0; t < n; t++ {
		for r, curve := range e.Curves {
			column[r] = curve[t]
		}
		sort.Float64s(column)
		out[t] = reduce(column)
	}
	return out, nil
}
