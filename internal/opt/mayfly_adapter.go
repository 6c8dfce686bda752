package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the Mayfly optimization using the external library.
//
// The external library applies a single scalar bound pair to every dimension,
// so the search runs in the unit cube and candidates are mapped affinely into
// the requested per-parameter box before evaluation.
func (m *MayflyAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	denorm := func(u []float64) []float64 {
		x := make([]float64, dim)
		for i := 0; i < dim; i++ {
			x[i] = lower[i] + u[i]*(upper[i]-lower[i])
		}
		return x
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(u []float64) float64 {
		return eval(denorm(u))
	}
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = 0
	config.UpperBound = 1

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fall back to the box midpoint if optimization fails
		mid := make([]float64, dim)
		for i := range mid {
			mid[i] = 0.5
		}
		best := denorm(mid)
		return best, eval(best)
	}

	return denorm(result.GlobalBest.Position), result.GlobalBest.Cost
}
