package lipid

// Slab is one homogeneous layer in a multilayer stack. Rough describes the
// interface to the previous slab in stacking order, not a property of the
// material itself.
type Slab struct {
	Thick          float64 // thickness, Å
	SLDReal        float64 // 1e-6/Å²
	SLDImag        float64 // 1e-6/Å²
	Rough          float64 // roughness to the preceding slab, Å
	VolFracSolvent float64 // solvent volume fraction, [0, 1]
}

// Solvated blends the solvent SLD into the slab at the slab's stored solvent
// fraction, linearly and volume-weighted on both components. The stored
// fraction itself is left untouched.
func (s Slab) Solvated(solvent complex128) Slab {
	f := s.VolFracSolvent
	s.SLDReal = s.SLDReal*(1-f) + real(solvent)*f
	s.SLDImag = s.SLDImag*(1-f) + imag(solvent)*f
	return s
}
