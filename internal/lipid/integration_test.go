package lipid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/internal/fit"
	"github.com/haydenrob/refnx/internal/lipid"
)

// lineSearch is a deterministic one-dimensional optimizer stub: it samples
// the box on a fine grid and returns the best candidate.
type lineSearch struct{ steps int }

func (g lineSearch) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	best := []float64{lower[0]}
	bestCost := eval(best)
	for s := 1; s <= g.steps; s++ {
		x := []float64{lower[0] + float64(s)/float64(g.steps)*(upper[0]-lower[0])}
		if cost := eval(x); cost < bestCost {
			bestCost = cost
			best = x
		}
	}
	return best, bestCost
}

// A leaflet's slab projection drives the forward model while the fitting
// layer varies the leaflet's parameters through the shared objects: the
// pattern a reflectivity fit uses, minus the reflectance kernel.
func TestFitLeafletAreaPerMolecule(t *testing.T) {
	l := lipid.NewLeaflet(lipid.LeafletConfig{
		APM:                40, // starting guess; the data below was made with 56
		BHeads:             lipid.RealB(6.01e-4),
		VMHeads:            320,
		ThicknessHeads:     9,
		BTails:             lipid.RealB(-2.92e-4),
		VMTails:            780,
		ThicknessTails:     15,
		RoughHeadTail:      3,
		RoughPrecedingMono: 5,
		Name:               "DMPC",
	})
	ps := l.Parameters()
	ps.At(0).SetVary(true) // fit apm only

	// Synthetic observable: each region's solvent volume fraction at
	// apm = 56, as a hosting structure would see them.
	y := []float64{1 - 320.0/(56*9), 1 - 780.0/(56*15)}
	e := []float64{0.001, 0.001}
	x := []float64{0, 1}

	model := func(_, params []float64, _ *fit.Extra) ([]float64, error) {
		if err := ps.Setp(params); err != nil {
			return nil, err
		}
		slabs := l.Slabs(nil)
		return []float64{slabs[0].VolFracSolvent, slabs[1].VolFracSolvent}, nil
	}

	problem, err := fit.New(x, y, e, model, []float64{40},
		fit.WithLimits([]float64{30}, []float64{80}))
	require.NoError(t, err)

	result, err := problem.Fit(lineSearch{steps: 500},
		fit.WithConstraints(l.MakeConstraint(ps)))
	require.NoError(t, err)

	assert.InDelta(t, 56.0, result.Params[0], 0.2)
	assert.Less(t, result.Cost, result.InitialCost)

	// The winning candidate is physical.
	if err := ps.Setp(result.Params); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0.0, l.LogP())
}
