package fit

import "gonum.org/v1/gonum/floats"

// CostFunc reduces model output and observations to a scalar cost.
// params is the full parameter vector, held and free alike.
type CostFunc func(model, ydata, edata, params []float64) float64

// Chi2 is the default cost: the sum of squared, error-normalized residuals.
// Zero entries in edata produce ±Inf/NaN, matching the literal definition;
// callers are expected to pre-validate their uncertainties.
func Chi2(model, ydata, edata []float64) float64 {
	resid := make([]float64, len(ydata))
	floats.SubTo(resid, ydata, model)
	floats.DivTo(resid, resid, edata)
	return floats.Dot(resid, resid)
}
