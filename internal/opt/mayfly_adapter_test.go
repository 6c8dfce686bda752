package opt

import (
	"math"
	"testing"
)

// Shifted sphere: f(x) = sum((x_i - c_i)^2), minimum at c
func shiftedSphere(center []float64) func([]float64) float64 {
	return func(x []float64) float64 {
		var sum float64
		for i, v := range x {
			d := v - center[i]
			sum += d * d
		}
		return sum
	}
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42) // maxIters, popSize, seed

	dim := 3
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lower[i] = -10
		upper[i] = 10
	}

	best, cost := optimizer.Run(shiftedSphere(make([]float64, dim)), lower, upper, dim)

	if len(best) != dim {
		t.Fatalf("Expected %d parameters, got %d", dim, len(best))
	}

	// Should converge close to zero
	if cost > 0.1 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}

	for i, v := range best {
		if math.Abs(v) > 1.0 {
			t.Errorf("Parameter %d = %f, expected near 0", i, v)
		}
	}
}

func TestMayflyAdapterAsymmetricBounds(t *testing.T) {
	// Each dimension has its own box; the minimum sits inside all of them.
	// Exercises the unit-cube mapping the external library's scalar bounds
	// require.
	center := []float64{50, -3, 0.25}
	lower := []float64{40, -5, 0}
	upper := []float64{60, 0, 1}

	optimizer := NewMayfly(150, 20, 42)
	best, cost := optimizer.Run(shiftedSphere(center), lower, upper, 3)

	if cost > 0.5 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}
	for i, v := range best {
		if v < lower[i] || v > upper[i] {
			t.Errorf("Parameter %d = %f outside [%f, %f]", i, v, lower[i], upper[i])
		}
		if math.Abs(v-center[i]) > 0.2*(upper[i]-lower[i]) {
			t.Errorf("Parameter %d = %f, expected near %f", i, v, center[i])
		}
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	dim := 2
	lower := []float64{-5, -5}
	upper := []float64{5, 5}
	sphere := shiftedSphere(make([]float64, dim))

	// Run twice with same seed (popSize must be >=20 for mayfly v0.1.0)
	optimizer1 := NewMayfly(50, 20, 123)
	_, cost1 := optimizer1.Run(sphere, lower, upper, dim)

	optimizer2 := NewMayfly(50, 20, 123)
	_, cost2 := optimizer2.Run(sphere, lower, upper, dim)

	if cost1 != cost2 {
		t.Errorf("Non-deterministic: cost1=%f, cost2=%f", cost1, cost2)
	}
}
