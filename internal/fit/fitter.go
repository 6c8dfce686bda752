package fit

import (
	"log/slog"
	"math"

	"github.com/haydenrob/refnx/internal/opt"
)

// Result holds the output of one fit. Params is a new full parameter vector;
// the Problem's stored parameters are untouched until Commit.
type Result struct {
	Params      []float64
	Cost        float64
	InitialCost float64
	Evaluations int
}

// FitOption configures a single Fit call.
type FitOption func(*fitConfig)

type fitConfig struct {
	constraints []opt.NonlinearConstraint
	threshold   float64
	progress    ProgressFunc
}

// WithConstraints applies inequality constraints to the fit. Infeasible
// candidates evaluate to +Inf, so a box-only optimizer rejects them.
func WithConstraints(cons ...opt.NonlinearConstraint) FitOption {
	return func(c *fitConfig) { c.constraints = append(c.constraints, cons...) }
}

// WithProgress reports best-so-far improvements whose relative gain exceeds
// threshold.
func WithProgress(threshold float64, fn ProgressFunc) FitOption {
	return func(c *fitConfig) {
		c.threshold = threshold
		c.progress = fn
	}
}

// Fit minimizes the problem's energy over the free parameters using the
// given optimizer, bound to the fitted limits. Convergence criteria and the
// iteration budget belong to the optimizer.
//
// The returned Result carries a new full parameter vector with the winning
// free values scattered in; callers adopt it with Commit. Repeated fits
// re-optimize from whatever the stored parameters are at the time.
func (p *Problem) Fit(optimizer opt.Optimizer, opts ...FitOption) (*Result, error) {
	var c fitConfig
	for _, o := range opts {
		o(&c)
	}

	initial, err := p.Energy(nil)
	if err != nil {
		return nil, err
	}

	k := len(p.fitted)
	if k == 0 {
		// Nothing free to vary; the fit is its own starting point.
		return &Result{Params: p.Parameters(), Cost: initial, InitialCost: initial}, nil
	}

	tracker := newProgressTracker(c.threshold, c.progress)
	eval := func(free []float64) float64 {
		cost, err := p.Energy(free)
		if err != nil {
			// Failed evaluations are worst-possible candidates.
			return math.Inf(1)
		}
		tracker.observe(cost, func() []float64 {
			full, _ := p.scatter(free)
			return full
		})
		return cost
	}
	eval = opt.Penalized(eval, c.constraints...)

	lower, upper := p.FittedLimits()

	slog.Info("Starting fit", "free_params", k, "points", p.NumPoints(), "initial_cost", initial)
	bestFree, bestCost := optimizer.Run(eval, lower, upper, k)
	slog.Info("Fit complete", "best_cost", bestCost, "evaluations", tracker.Evals())

	params, err := p.scatter(bestFree)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params:      params,
		Cost:        bestCost,
		InitialCost: initial,
		Evaluations: tracker.Evals(),
	}, nil
}
