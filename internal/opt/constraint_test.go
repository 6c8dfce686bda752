package opt

import (
	"errors"
	"math"
	"testing"
)

func unitRange(x []float64) ([]float64, error) {
	return x, nil
}

func TestConstraintSatisfied(t *testing.T) {
	con := NewNonlinearConstraint(unitRange, 0, 1)

	tests := []struct {
		name string
		x    []float64
		want bool
	}{
		{"inside", []float64{0.2, 0.8}, true},
		{"on boundary", []float64{0, 1}, true},
		{"below", []float64{-0.1, 0.5}, false},
		{"above", []float64{0.5, 1.3}, false},
		{"nan", []float64{math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := con.Satisfied(tt.x); got != tt.want {
				t.Errorf("Satisfied(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestConstraintEvaluationErrorIsInfeasible(t *testing.T) {
	con := NewNonlinearConstraint(func(x []float64) ([]float64, error) {
		return nil, errors.New("objective rejected candidate")
	}, 0, 1)

	if con.Satisfied([]float64{0.5}) {
		t.Error("errored evaluation should be infeasible")
	}
}

func TestPenalized(t *testing.T) {
	eval := func(x []float64) float64 { return x[0] }
	con := NewNonlinearConstraint(unitRange, 0, 1)

	wrapped := Penalized(eval, con)

	if got := wrapped([]float64{0.5}); got != 0.5 {
		t.Errorf("feasible candidate cost = %v, want 0.5", got)
	}
	if got := wrapped([]float64{2}); !math.IsInf(got, 1) {
		t.Errorf("infeasible candidate cost = %v, want +Inf", got)
	}
}

func TestPenalizedNoConstraintsPassthrough(t *testing.T) {
	eval := func(x []float64) float64 { return 7 }
	if got := Penalized(eval)([]float64{-100}); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
}
