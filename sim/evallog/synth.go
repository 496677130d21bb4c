package evallog

import (
	"fmt"
	"math"
	"math/rand"
)

// Synthetic-objective constants, matching the benchmark scenario used to
// exercise the search drivers: the optimum sits at 0.8 in the unit cube and
// drifts toward it as the per-evaluation budget grows.
const (
	synthOptimum      = 0.8
	synthOptimumShift = 0.8
	synthBudgetEpochs = 60
)

// Synthesize generates a synthetic evaluation log of n trials for testing
// and demos. Each trial samples a configuration x uniformly in [0, 1) and
// scores it with a noisy distance-to-optimum objective:
//
//	xopt = 0.8 - 0.8/sqrt(epochs)
//	y    = |xopt - x|^0.5 + 0.5/epochs
//	y   *= 1 + |Normal(0, noise)|
//
// y is interpreted as a validation error percentage, so the recorded
// accuracy is 100 - y. Output is deterministic for a given seed.
func Synthesize(n int, seed int64, noise float64) (*EvaluationLog, error) {
	if n <= 0 {
		return nil, fmt.Errorf("synthesize: trial count must be positive, got %d", n)
	}
	if noise < 0 {
		return nil, fmt.Errorf("synthesize: noise level must be non-negative, got %v", noise)
	}

	rng := rand.New(rand.NewSource(seed))
	xopt := synthOptimum - synthOptimumShift/math.Sqrt(synthBudgetEpochs)

	records := make([]Record, n)
	for i := range records {
		x := rng.Float64()
		y := math.Sqrt(math.Abs(xopt-x)) + 0.5/synthBudgetEpochs
		y *= 1 + math.Abs(rng.NormFloat64()*noise)
		records[i] = Record{
			Epoch:          i,
			ElapsedSeconds: float64(i+1) * synthBudgetEpochs,
			TrainLoss:      y,
			ValLoss:        y,
			ValAccuracy:    100 - y,
		}
	}
	return &EvaluationLog{records: records}, nil
}
