// Package lipid models a lipid-bilayer leaflet as two adjacent slabs (head
// and tail regions) whose scattering-length densities, roughnesses and
// solvent volume fractions are derived from physically meaningful
// parameters. The slab stack is the full contract with a reflectivity
// forward model; no reflectance computation lives here.
package lipid

import (
	"github.com/haydenrob/refnx/internal/param"
)

// SLD is a complex scattering-length density in the canonical 10⁻⁶ Å⁻²
// units, backed by two parameter objects so it can take part in a fit.
type SLD struct {
	Real *param.Parameter
	Imag *param.Parameter
	name string
}

// NewSLD creates an SLD from plain real and imaginary values.
func NewSLD(name string, re, im float64) *SLD {
	return &SLD{
		Real: param.New(name+" - sld_real", re, param.WithUnits("1e-6/Å²")),
		Imag: param.New(name+" - sld_imag", im, param.WithUnits("1e-6/Å²")),
		name: name,
	}
}

// SLDFromParams wraps existing parameter objects without re-creating them,
// so the SLD shares state with whatever else holds those parameters.
func SLDFromParams(name string, re, im *param.Parameter) *SLD {
	return &SLD{Real: re, Imag: im, name: name}
}

// Name returns the name the SLD was created with.
func (s *SLD) Name() string { return s.name }

// Complex returns the SLD value. A constant SLD ignores the wavelength; the
// argument exists so dispersive media can slot in behind the same accessor.
func (s *SLD) Complex(wavelength float64) complex128 {
	_ = wavelength
	return complex(s.Real.Value(), s.Imag.Value())
}

// Parameters returns the SLD's own parameter collection.
func (s *SLD) Parameters() *param.Parameters {
	p := param.NewParameters(s.name)
	p.Append(s.Real, s.Imag)
	return p
}
