package metrics

import (
	"math"

	"github.com/san-kum/stochlab/internal/stochastic"
)

// MassDrift tracks the worst relative deviation of total probability mass
// from its initial value. The explicit scheme with fixed boundaries does
// not conserve mass exactly, so some drift is expected; large values mean
// the discretization is too coarse for the fields.
type MassDrift struct {
	name        string
	dx          float64
	initialMass float64
	maxDrift    float64
	samples     int
}

func NewMassDrift(dx float64) *MassDrift {
	return &MassDrift{name: "mass_drift", dx: dx}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(row stochastic.Density, t float64) {
	mass := row.Mass(m.dx)
	if m.samples == 0 {
		m.initialMass = mass
	}
	m.samples++

	if m.initialMass != 0 {
		drift := math.Abs(mass-m.initialMass) / math.Abs(m.initialMass)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 {
	return m.maxDrift
}

func (m *MassDrift) Reset() {
	m.initialMass = 0
	m.maxDrift = 0
	m.samples = 0
}

// Positivity reports the fraction of time rows that stayed non-negative.
// A density going negative is the usual first symptom of instability.
type Positivity struct {
	name       string
	violations int
	samples    int
}

func NewPositivity() *Positivity {
	return &Positivity{name: "positivity"}
}

func (p *Positivity) Name() string { return p.name }

func (p *Positivity) Observe(row stochastic.Density, t float64) {
	p.samples++
	for _, v := range row {
		if v < 0 {
			p.violations++
			break
		}
	}
}

func (p *Positivity) Value() float64 {
	if p.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(p.violations)/float64(p.samples)
}

func (p *Positivity) Reset() {
	p.violations = 0
	p.samples = 0
}
