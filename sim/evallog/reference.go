package evallog

import "fmt"

// ReferencePoint is one point of an externally produced scheduler trace:
// the cumulative number of full-budget evaluations consumed, and the best
// validation error reached by then.
type ReferencePoint struct {
	Evaluations float64
	BestError   float64
}

// ReferenceCurve is an already-executed scheduler's trace, e.g. the
// hyperband_evals file written by the Hyperband driver. It is treated as
// opaque ground truth: points are consumed in file order and never
// recomputed or re-sorted.
type ReferenceCurve []ReferencePoint

// LoadReference reads a two-column trace (evaluation count, best validation
// accuracy on a 0-100 scale) and converts the second column to error via
// 100 - value. That transform is the only change applied to the file.
func LoadReference(path string) (ReferenceCurve, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("loading %s: no data rows: %w", path, ErrMalformedLog)
	}

	curve := make(ReferenceCurve, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("loading %s: row %d has %d columns, need 2: %w",
				path, i+1, len(row), ErrMalformedLog)
		}
		curve = append(curve, ReferencePoint{
			Evaluations: row[0],
			BestError:   100 - row[1],
		})
	}
	return curve, nil
}
