package main

import (
	"fmt"
	"math"

	"github.com/haydenrob/refnx/internal/fit"
)

// Built-in forward models for the fit command. Each maps a flat x vector and
// a full parameter vector to model values; none of them use auxiliary data.

// gaussianModel: p = [background, amplitude, center, sigma]
func gaussianModel(x, p []float64, _ *fit.Extra) ([]float64, error) {
	if len(p) != 4 {
		return nil, fmt.Errorf("gaussian model needs 4 parameters, got %d", len(p))
	}
	bkg, amp, center, sigma := p[0], p[1], p[2], p[3]
	out := make([]float64, len(x))
	for i, xi := range x {
		d := (xi - center) / sigma
		out[i] = bkg + amp*math.Exp(-0.5*d*d)
	}
	return out, nil
}

// lineModel: p = [intercept, slope]
func lineModel(x, p []float64, _ *fit.Extra) ([]float64, error) {
	if len(p) != 2 {
		return nil, fmt.Errorf("line model needs 2 parameters, got %d", len(p))
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = p[0] + p[1]*xi
	}
	return out, nil
}

// decayModel: p = [amplitude, lifetime, background]
func decayModel(x, p []float64, _ *fit.Extra) ([]float64, error) {
	if len(p) != 3 {
		return nil, fmt.Errorf("decay model needs 3 parameters, got %d", len(p))
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = p[0]*math.Exp(-xi/p[1]) + p[2]
	}
	return out, nil
}

func lookupModel(name string) (fit.ModelFunc, error) {
	switch name {
	case "gaussian":
		return gaussianModel, nil
	case "line":
		return lineModel, nil
	case "decay":
		return decayModel, nil
	default:
		return nil, fmt.Errorf("unknown model: %s", name)
	}
}
