// Package fit implements a generic curve-fitting core: it owns the observed
// data and the full parameter vector, partitions parameters into held and
// free subsets, and exposes the scalar energy that a derivative-free global
// optimizer minimizes over the free subset.
package fit

import "fmt"

// ModelFunc is a forward model: it maps the independent variable samples and
// a full parameter vector to model values with the same length as the
// observations. extra carries auxiliary, non-fitted data and may be nil.
type ModelFunc func(x, params []float64, extra *Extra) ([]float64, error)

// EnergyFunc is a fully custom cost evaluation over a full parameter vector.
// Supplying one replaces both the model and the cost function.
type EnergyFunc func(params []float64) (float64, error)

// Extra carries auxiliary data forwarded verbatim to the model on every
// evaluation. It is stored at construction and never modified afterwards.
type Extra struct {
	Args  []any
	Named map[string]any
}

// evaluation strategy, selected once at construction
type strategy int

const (
	modelChi2 strategy = iota // forward model, chi-squared cost
	modelCost                 // forward model, custom cost
	customEnergy              // fully custom energy
)

// Problem holds one curve-fitting problem: data, the full parameter vector,
// the held/free partition, per-parameter limits and the evaluation strategy.
//
// Energy never mutates shared state and is safe to call concurrently, e.g.
// from an optimizer that evaluates its population in parallel. Commit is the
// single write-back point and must not race with evaluations.
type Problem struct {
	x, y, e []float64

	params []float64
	hold   []bool
	fitted []int // indices of free parameters, in order

	lower, upper []float64 // limits for every parameter

	strat  strategy
	model  ModelFunc
	cost   CostFunc
	energy EnergyFunc
	extra  *Extra
}

// Option configures a Problem at construction time.
type Option func(*config)

type config struct {
	hold         []bool
	lower, upper []float64
	cost         CostFunc
	energy       EnergyFunc
	extra        *Extra
}

// WithHold marks parameters as held: held parameters keep their current value
// during a fit but still flow into the forward model. Length must equal the
// number of parameters.
func WithHold(hold []bool) Option {
	return func(c *config) { c.hold = hold }
}

// WithLimits sets explicit per-parameter bounds. Both slices must have one
// entry per parameter.
func WithLimits(lower, upper []float64) Option {
	return func(c *config) {
		c.lower = lower
		c.upper = upper
	}
}

// WithCost replaces the default chi-squared cost.
func WithCost(cost CostFunc) Option {
	return func(c *config) { c.cost = cost }
}

// WithEnergy replaces the whole model-plus-cost evaluation. The model
// function passed to New may then be nil.
func WithEnergy(energy EnergyFunc) Option {
	return func(c *config) { c.energy = energy }
}

// WithExtra attaches auxiliary data forwarded to the model on every call.
func WithExtra(extra *Extra) Option {
	return func(c *config) { c.extra = extra }
}

// New constructs a fitting problem. x, y and e must have equal lengths; all
// three are copied defensively. params holds every parameter the model needs,
// free and held. Bounds default to [0, 2×initial] per parameter; a zero or
// negative starting value therefore produces a degenerate default bound, and
// callers fitting such parameters should supply explicit limits.
func New(x, y, e []float64, model ModelFunc, params []float64, opts ...Option) (*Problem, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if len(y) != len(e) || len(x) != len(y) {
		return nil, fmt.Errorf("%w: x=%d y=%d e=%d", ErrDimensionMismatch, len(x), len(y), len(e))
	}
	n := len(params)
	if c.hold != nil && len(c.hold) != n {
		return nil, fmt.Errorf("%w: hold vector has %d entries for %d parameters", ErrDimensionMismatch, len(c.hold), n)
	}
	if (c.lower != nil || c.upper != nil) && (len(c.lower) != n || len(c.upper) != n) {
		return nil, fmt.Errorf("%w: limits have %d/%d entries for %d parameters", ErrDimensionMismatch, len(c.lower), len(c.upper), n)
	}
	if model == nil && c.energy == nil && c.cost != nil {
		return nil, fmt.Errorf("%w: a custom cost still needs a model", ErrMissingModel)
	}

	p := &Problem{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		e:      append([]float64(nil), e...),
		params: append([]float64(nil), params...),
		model:  model,
		cost:   c.cost,
		energy: c.energy,
		extra:  c.extra,
	}

	if c.hold != nil {
		p.hold = append([]bool(nil), c.hold...)
	} else {
		p.hold = make([]bool, n)
	}
	for i, held := range p.hold {
		if !held {
			p.fitted = append(p.fitted, i)
		}
	}

	if c.lower != nil {
		p.lower = append([]float64(nil), c.lower...)
		p.upper = append([]float64(nil), c.upper...)
	} else {
		p.lower = make([]float64, n)
		p.upper = make([]float64, n)
		for i, v := range p.params {
			p.upper[i] = 2 * v
		}
	}

	switch {
	case p.energy != nil:
		p.strat = customEnergy
	case p.cost != nil:
		p.strat = modelCost
	default:
		p.strat = modelChi2
	}

	return p, nil
}

// NumPoints returns the number of observations.
func (p *Problem) NumPoints() int { return len(p.y) }

// NumParams returns the length of the full parameter vector.
func (p *Problem) NumParams() int { return len(p.params) }

// Parameters returns a copy of the full parameter vector.
func (p *Problem) Parameters() []float64 {
	return append([]float64(nil), p.params...)
}

// FittedIndices returns the positions of the free parameters, in the order
// the optimizer sees them.
func (p *Problem) FittedIndices() []int {
	return append([]int(nil), p.fitted...)
}

// Limits returns copies of the per-parameter bounds.
func (p *Problem) Limits() (lower, upper []float64) {
	return append([]float64(nil), p.lower...), append([]float64(nil), p.upper...)
}

// FittedLimits projects the bounds onto the free parameters, column for
// column in FittedIndices order. This is what is handed to the optimizer.
func (p *Problem) FittedLimits() (lower, upper []float64) {
	lower = make([]float64, len(p.fitted))
	upper = make([]float64, len(p.fitted))
	for i, idx := range p.fitted {
		lower[i] = p.lower[idx]
		upper[i] = p.upper[idx]
	}
	return lower, upper
}

// scatter builds a test vector: a copy of the full parameters with free
// overwriting the positions named by the fitted indices.
func (p *Problem) scatter(free []float64) ([]float64, error) {
	if len(free) != len(p.fitted) {
		return nil, fmt.Errorf("%w: got %d free values for %d free parameters", ErrDimensionMismatch, len(free), len(p.fitted))
	}
	test := append([]float64(nil), p.params...)
	for i, idx := range p.fitted {
		test[idx] = free[i]
	}
	return test, nil
}

// Model evaluates the forward model at the given full parameter vector, or at
// the stored parameters when params is nil.
func (p *Problem) Model(params []float64) ([]float64, error) {
	if p.model == nil {
		return nil, ErrMissingModel
	}
	if params == nil {
		params = p.params
	}
	return p.model(p.x, params, p.extra)
}

// Energy evaluates the cost at a candidate free-parameter vector. The free
// values are scattered into a copy of the full vector, so held parameters
// flow into the model unchanged and stored state is never mutated. A nil
// argument evaluates at the stored parameters.
func (p *Problem) Energy(free []float64) (float64, error) {
	test := p.params
	if free != nil {
		var err error
		if test, err = p.scatter(free); err != nil {
			return 0, err
		}
	}

	if p.strat == customEnergy {
		return p.energy(test)
	}

	model, err := p.Model(test)
	if err != nil {
		return 0, err
	}
	if len(model) != len(p.y) {
		return 0, fmt.Errorf("%w: model returned %d values for %d observations", ErrDimensionMismatch, len(model), len(p.y))
	}

	if p.strat == modelCost {
		return p.cost(model, p.y, p.e, test), nil
	}
	return Chi2(model, p.y, p.e), nil
}

// Commit overwrites the stored full parameter vector. It is the only way
// shared state changes after construction; callers decide whether a fit
// result becomes the new starting point.
func (p *Problem) Commit(params []float64) error {
	if len(params) != len(p.params) {
		return fmt.Errorf("%w: got %d values for %d parameters", ErrDimensionMismatch, len(params), len(p.params))
	}
	copy(p.params, params)
	return nil
}
