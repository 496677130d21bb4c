package sim

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultRuns is the default number of simulated random-search runs.
const DefaultRuns = 1000

// Ensemble holds the running-best curves of R independent simulated runs.
// Every curve has the same length N (the number of recorded evaluations).
type Ensemble struct {
	Curves [][]float64
}

// Runs returns R, the number of simulated runs in the ensemble.
func (e *Ensemble) Runs() int {
	return len(e.Curves)
}

// Evals returns N, the number of evaluations per run (0 for an empty ensemble).
func (e *Ensemble) Evals() int {
	if len(e.Curves) == 0 {
		return 0
	}
	return len(e.Curves[0])
}

// RunningBest computes the best-so-far curve for one visiting order.
// curve[0] = errs[perm[0]], curve[t] = min(curve[t-1], errs[perm[t]]).
// The result is monotonically non-increasing and its final value is the
// minimum error among the visited indices.
func RunningBest(errs []float64, perm []int) []float64 {
	curve := make([]float64, len(perm))
	best := errs[perm[0]]
	curve[0] = best
	for t := 1; t < len(perm); t++ {
		if v := errs[perm[t]]; v < best {
			best = v
		}
		curve[t] = best
	}
	return curve
}

// SimulateOneRun simulates a single random-search run over the recorded
// evaluation errors: it draws a uniform permutation of all N evaluations
// (Fisher-Yates, no replacement) from rng and returns the running-best curve
// along that order. The input slice is never mutated.
func SimulateOneRun(errs []float64, rng *rand.Rand) ([]float64, error) {
	if len(errs) == 0 {
		return nil, fmt.Errorf("simulate run: empty evaluation log: %w", ErrInvalidInput)
	}
	return RunningBest(errs, rng.Perm(len(errs))), nil
}

// SimulateEnsemble simulates runs independent random-search runs over the
// recorded evaluation errors and returns their running-best curves.
//
// Runs execute on a bounded worker pool. Each run draws from its own RNG,
// seeded via key.RunRNG(i), so the returned ensemble is identical for a
// given key no matter how the runs are scheduled.
func SimulateEnsemble(errs []float64, runs int, key SimulationKey) (*Ensemble, error) {
	if len(errs) == 0 {
		return nil, fmt.Errorf("simulate ensemble: empty evaluation log: %w", ErrInvalidInput)
	}
	if runs <= 0 {
		return nil, fmt.Errorf("simulate ensemble: run count must be positive, got %d: %w", runs, ErrInvalidInput)
	}

	curves := make([][]float64, runs)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			curve, err := SimulateOneRun(errs, key.RunRNG(i))
			if err != nil {
				return err
			}
			curves[i] = curve
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Ensemble{Curves: curves}, nil
}
