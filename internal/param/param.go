// Package param provides the named-scalar parameter objects shared between
// model components and the fitting layer. Parameters are shared by pointer:
// two collections holding the same *Parameter see each other's updates.
package param

import "fmt"

// Parameter is a named scalar with optional bounds, a vary flag and a unit tag.
type Parameter struct {
	name  string
	units string
	value float64
	lower float64
	upper float64
	vary  bool
}

// Option configures a Parameter at construction time.
type Option func(*Parameter)

// WithUnits sets the physical unit tag.
func WithUnits(units string) Option {
	return func(p *Parameter) { p.units = units }
}

// WithBounds sets the lower and upper bounds.
func WithBounds(lower, upper float64) Option {
	return func(p *Parameter) {
		p.lower = lower
		p.upper = upper
	}
}

// WithVary marks the parameter as varying during a fit.
func WithVary(vary bool) Option {
	return func(p *Parameter) { p.vary = vary }
}

// New creates a parameter with the given name and starting value.
func New(name string, value float64, opts ...Option) *Parameter {
	p := &Parameter{name: name, value: value}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parameter) Name() string  { return p.name }
func (p *Parameter) Units() string { return p.units }
func (p *Parameter) Value() float64 {
	return p.value
}

// SetValue overwrites the current value. Not safe for concurrent use with
// readers; fits mutate parameters only between optimizer runs.
func (p *Parameter) SetValue(v float64) { p.value = v }

// Bounds returns the lower and upper bound.
func (p *Parameter) Bounds() (lower, upper float64) { return p.lower, p.upper }

func (p *Parameter) Vary() bool        { return p.vary }
func (p *Parameter) SetVary(vary bool) { p.vary = vary }

// Parameters is an ordered, named collection of *Parameter.
type Parameters struct {
	name   string
	params []*Parameter
}

// NewParameters creates an empty collection.
func NewParameters(name string) *Parameters {
	return &Parameters{name: name}
}

func (ps *Parameters) Name() string { return ps.name }
func (ps *Parameters) Len() int     { return len(ps.params) }

// At returns the i-th parameter.
func (ps *Parameters) At(i int) *Parameter { return ps.params[i] }

// Append adds parameters to the end of the collection.
func (ps *Parameters) Append(params ...*Parameter) {
	ps.params = append(ps.params, params...)
}

// Extend appends every parameter of another collection. The underlying
// *Parameter objects are shared, not copied.
func (ps *Parameters) Extend(other *Parameters) {
	ps.params = append(ps.params, other.params...)
}

// Values returns a snapshot of all current values, in order.
func (ps *Parameters) Values() []float64 {
	vals := make([]float64, len(ps.params))
	for i, p := range ps.params {
		vals[i] = p.Value()
	}
	return vals
}

// Varying returns the subset of parameters with the vary flag set, in order.
func (ps *Parameters) Varying() []*Parameter {
	var varying []*Parameter
	for _, p := range ps.params {
		if p.Vary() {
			varying = append(varying, p)
		}
	}
	return varying
}

// Setp assigns x to the varying parameters, in order. This is how a candidate
// vector from an optimizer is applied consistently to every component sharing
// these parameter objects.
func (ps *Parameters) Setp(x []float64) error {
	varying := ps.Varying()
	if len(x) != len(varying) {
		return fmt.Errorf("setp: got %d values for %d varying parameters", len(x), len(varying))
	}
	for i, p := range varying {
		p.SetValue(x[i])
	}
	return nil
}
