package lipid

import (
	"math"

	"github.com/haydenrob/refnx/internal/opt"
	"github.com/haydenrob/refnx/internal/param"
)

// ScatteringLength is the sum of coherent scattering lengths of a head or
// tail group, in Å. It is a tagged value: a plain real sum, a complex sum,
// or a reference to an existing SLD whose parameter objects are reused
// rather than re-wrapped.
type ScatteringLength struct {
	re, im float64
	sld    *SLD
}

// RealB is a purely real scattering-length sum; the imaginary part is zero.
func RealB(re float64) ScatteringLength {
	return ScatteringLength{re: re}
}

// ComplexB is a scattering-length sum with an absorption (imaginary) part.
func ComplexB(re, im float64) ScatteringLength {
	return ScatteringLength{re: re, im: im}
}

// BFromSLD shares the SLD's real/imag parameter objects directly, so the
// leaflet and the SLD's other users always agree on the current values.
func BFromSLD(s *SLD) ScatteringLength {
	return ScatteringLength{sld: s}
}

// resolve produces the (real, imag) parameter pair, creating fresh
// parameters named "<name> - <field>" unless an SLD is shared.
func (b ScatteringLength) resolve(name, field string) (re, im *param.Parameter) {
	if b.sld != nil {
		return b.sld.Real, b.sld.Imag
	}
	re = param.New(name+" - "+field+"_real", b.re, param.WithUnits("Å"))
	im = param.New(name+" - "+field+"_imag", b.im, param.WithUnits("Å"))
	return re, im
}

// Host is the optional structure a leaflet sits in. It only supplies a probe
// wavelength for wavelength-dependent solvent SLDs.
type Host interface {
	Wavelength() float64
}

// LeafletConfig gathers the physical inputs of a leaflet.
//
// Scattering-length sums must be in Å and molecular volumes in Å³: region
// SLDs are computed as b/vm × 1e6 to land in the canonical 10⁻⁶ Å⁻² unit.
type LeafletConfig struct {
	// APM is the area per molecule (Å²), shared by both regions.
	APM float64

	BHeads         ScatteringLength
	VMHeads        float64 // molecular volume of the head group, Å³
	ThicknessHeads float64 // Å

	BTails         ScatteringLength
	VMTails        float64 // molecular volume of the tail group, Å³
	ThicknessTails float64 // Å

	RoughHeadTail      float64 // roughness of the head-tail interface, Å
	RoughPrecedingMono float64 // roughness to the preceding component, Å

	// HeadSolvent/TailSolvent solvate a region inside Slabs. When nil the
	// hosting structure performs the solvation instead, using the slab's
	// reported solvent fraction.
	HeadSolvent *SLD
	TailSolvent *SLD

	// ReverseMonolayer stacks tails before heads. The default has heads
	// closer to the fronting medium.
	ReverseMonolayer bool

	// Name prefixes every generated parameter name.
	Name string
}

// Leaflet is a two-region (head/tail) lipid leaflet component. Construction
// resolves all inputs into parameter objects once; every derived quantity is
// recomputed from the current parameter values on demand, so a leaflet stays
// live while an optimizer mutates its parameters.
type Leaflet struct {
	APM *param.Parameter

	BHeadsReal, BHeadsImag *param.Parameter
	VMHeads                *param.Parameter
	ThicknessHeads         *param.Parameter

	BTailsReal, BTailsImag *param.Parameter
	VMTails                *param.Parameter
	ThicknessTails         *param.Parameter

	RoughHeadTail      *param.Parameter
	RoughPrecedingMono *param.Parameter

	HeadSolvent *SLD
	TailSolvent *SLD

	Reverse bool

	name string
}

// NewLeaflet builds a leaflet from physical inputs.
func NewLeaflet(cfg LeafletConfig) *Leaflet {
	l := &Leaflet{
		APM:                param.New(cfg.Name+" - area_per_molecule", cfg.APM, param.WithUnits("Å²")),
		VMHeads:            param.New(cfg.Name+" - vm_heads", cfg.VMHeads, param.WithUnits("Å³")),
		ThicknessHeads:     param.New(cfg.Name+" - thickness_heads", cfg.ThicknessHeads, param.WithUnits("Å")),
		VMTails:            param.New(cfg.Name+" - vm_tails", cfg.VMTails, param.WithUnits("Å³")),
		ThicknessTails:     param.New(cfg.Name+" - thickness_tails", cfg.ThicknessTails, param.WithUnits("Å")),
		RoughHeadTail:      param.New(cfg.Name+" - rough_head_tail", cfg.RoughHeadTail, param.WithUnits("Å")),
		RoughPrecedingMono: param.New(cfg.Name+" - rough_fronting_mono", cfg.RoughPrecedingMono, param.WithUnits("Å")),
		HeadSolvent:        cfg.HeadSolvent,
		TailSolvent:        cfg.TailSolvent,
		Reverse:            cfg.ReverseMonolayer,
		name:               cfg.Name,
	}
	l.BHeadsReal, l.BHeadsImag = cfg.BHeads.resolve(cfg.Name, "b_heads")
	l.BTailsReal, l.BTailsImag = cfg.BTails.resolve(cfg.Name, "b_tails")
	return l
}

// Name returns the leaflet's name.
func (l *Leaflet) Name() string { return l.name }

// VolFracHeads is the packing fraction of head-group matter in the head
// region: vm / (apm × thickness).
func (l *Leaflet) VolFracHeads() float64 {
	return l.VMHeads.Value() / (l.APM.Value() * l.ThicknessHeads.Value())
}

// VolFracTails is the packing fraction of tail-group matter in the tail
// region.
func (l *Leaflet) VolFracTails() float64 {
	return l.VMTails.Value() / (l.APM.Value() * l.ThicknessTails.Value())
}

// Slabs projects the leaflet onto its two-slab representation using the
// current parameter values. It never mutates the leaflet. host may be nil;
// it is consulted only when a solvent SLD is wavelength-dependent.
func (l *Leaflet) Slabs(host Host) [2]Slab {
	wavelength := math.NaN()
	if host != nil {
		wavelength = host.Wavelength()
	}

	heads := Slab{
		Thick:          l.ThicknessHeads.Value(),
		SLDReal:        l.BHeadsReal.Value() / l.VMHeads.Value() * 1e6,
		SLDImag:        l.BHeadsImag.Value() / l.VMHeads.Value() * 1e6,
		Rough:          l.RoughPrecedingMono.Value(),
		VolFracSolvent: 1 - l.VolFracHeads(),
	}
	if l.HeadSolvent != nil {
		// Solvation happens here, so the host must not apply it again.
		heads = heads.Solvated(l.HeadSolvent.Complex(wavelength))
		heads.VolFracSolvent = 0
	}

	tails := Slab{
		Thick:          l.ThicknessTails.Value(),
		SLDReal:        l.BTailsReal.Value() / l.VMTails.Value() * 1e6,
		SLDImag:        l.BTailsImag.Value() / l.VMTails.Value() * 1e6,
		Rough:          l.RoughHeadTail.Value(),
		VolFracSolvent: 1 - l.VolFracTails(),
	}
	if l.TailSolvent != nil {
		tails = tails.Solvated(l.TailSolvent.Complex(wavelength))
		tails.VolFracSolvent = 0
	}

	layers := [2]Slab{heads, tails}
	if l.Reverse {
		// Roughness belongs to the interface with the previous slab, so a
		// plain row swap would carry each region's roughness to the wrong
		// interface; the roughness column is re-paired separately.
		layers[0], layers[1] = layers[1], layers[0]
		layers[0].Rough, layers[1].Rough = layers[1].Rough, layers[0].Rough
	}
	return layers
}

// Parameters publishes every parameter the leaflet owns, plus the solvents'
// collections when present, so a fitting layer can vary them without knowing
// leaflet internals.
func (l *Leaflet) Parameters() *param.Parameters {
	p := param.NewParameters(l.name)
	p.Append(
		l.APM,
		l.BHeadsReal, l.BHeadsImag, l.VMHeads, l.ThicknessHeads,
		l.BTailsReal, l.BTailsImag, l.VMTails, l.ThicknessTails,
		l.RoughHeadTail, l.RoughPrecedingMono,
	)
	if l.HeadSolvent != nil {
		p.Extend(l.HeadSolvent.Parameters())
	}
	if l.TailSolvent != nil {
		p.Extend(l.TailSolvent.Parameters())
	}
	return p
}

// LogP penalises unphysical packing: −Inf when either region holds more
// molecular matter than its stated volume, 0 otherwise.
func (l *Leaflet) LogP() float64 {
	if l.VolFracHeads() > 1 || l.VolFracTails() > 1 {
		return math.Inf(-1)
	}
	return 0
}

// Objective is the hosting fit objective a constraint binds to. Setp applies
// a candidate vector to the varying parameters, so every component sharing
// them updates consistently.
type Objective interface {
	Setp(x []float64) error
}

// MakeConstraint builds an inequality constraint keeping both volume
// fractions inside [0, 1], suitable for a constrained global optimizer.
// Each leaflet needs its own constraint object even when several leaflets
// share one objective: the evaluator closes over this leaflet's accessors.
func (l *Leaflet) MakeConstraint(objective Objective) opt.NonlinearConstraint {
	con := func(x []float64) ([]float64, error) {
		if err := objective.Setp(x); err != nil {
			return nil, err
		}
		return []float64{l.VolFracHeads(), l.VolFracTails()}, nil
	}
	return opt.NewNonlinearConstraint(con, 0, 1)
}
