package opt

import "math"

// NonlinearConstraint is an inequality constraint on a candidate vector.
// Fun maps a candidate to one or more outputs; a candidate is feasible when
// every output lies in [Lower, Upper]. Fun must be pure: evaluating the same
// candidate twice yields the same outputs.
type NonlinearConstraint struct {
	Fun   func(x []float64) ([]float64, error)
	Lower float64
	Upper float64
}

// NewNonlinearConstraint creates a constraint with the given feasible range.
func NewNonlinearConstraint(fun func(x []float64) ([]float64, error), lower, upper float64) NonlinearConstraint {
	return NonlinearConstraint{Fun: fun, Lower: lower, Upper: upper}
}

// Satisfied reports whether x is feasible. Evaluation errors count as
// infeasible.
func (c NonlinearConstraint) Satisfied(x []float64) bool {
	outs, err := c.Fun(x)
	if err != nil {
		return false
	}
	for _, v := range outs {
		if v < c.Lower || v > c.Upper || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Penalized wraps an objective so that candidates violating any of the given
// constraints evaluate to +Inf. This is how a box-only optimizer consumes
// inequality constraints.
func Penalized(eval func([]float64) float64, cons ...NonlinearConstraint) func([]float64) float64 {
	if len(cons) == 0 {
		return eval
	}
	return func(x []float64) float64 {
		for _, c := range cons {
			if !c.Satisfied(x) {
				return math.Inf(1)
			}
		}
		return eval(x)
	}
}
