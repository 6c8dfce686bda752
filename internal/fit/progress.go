package fit

import (
	"math"
	"sync"
)

// ProgressFunc receives significant improvements during a fit: the number of
// objective evaluations so far, the improved cost and the full parameter
// vector that achieved it.
type ProgressFunc func(evals int, cost float64, params []float64)

// progressTracker watches objective evaluations and reports best-so-far
// improvements above a relative threshold, so a trace of a long run stays
// small. Safe for concurrent evaluation.
type progressTracker struct {
	mu        sync.Mutex
	threshold float64
	evals     int
	best      float64
	onImprove ProgressFunc
}

func newProgressTracker(threshold float64, fn ProgressFunc) *progressTracker {
	return &progressTracker{
		threshold: threshold,
		best:      math.Inf(1),
		onImprove: fn,
	}
}

// observe records one evaluation. full is called lazily, only when the cost
// is worth reporting, to build the full parameter vector.
func (t *progressTracker) observe(cost float64, full func() []float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.evals++
	if cost >= t.best {
		return
	}
	significant := math.IsInf(t.best, 1) ||
		(t.best-cost)/math.Abs(t.best) >= t.threshold
	t.best = cost
	if significant && t.onImprove != nil {
		t.onImprove(t.evals, cost, full())
	}
}

// Evals returns the number of evaluations observed so far.
func (t *progressTracker) Evals() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.evals
}
