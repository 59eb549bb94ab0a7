// Package metrics provides drift observers for conserved quantities.
// A Metric samples a simulation after each step; its value is the worst
// deviation seen since the last Reset.
package metrics

import (
	"errors"
	"math"

	"github.com/san-kum/orbitlab/internal/nbody"
)

type Metric interface {
	Name() string
	Observe(sim *nbody.Simulation)
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from the first observed sample.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(sim *nbody.Simulation) {
	energy := sim.TotalEnergy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum absolute deviation of total linear
// momentum from the first observed sample.
type MomentumDrift struct {
	initial  nbody.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(sim *nbody.Simulation) {
	p := sim.LinearMomentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Norm())
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = nbody.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}

// CenterOfMassDrift tracks how far the center of mass wanders from its
// first observed sample. Empty systems are skipped.
type CenterOfMassDrift struct {
	initial  nbody.Vec3
	maxDrift float64
	samples  int
}

func NewCenterOfMassDrift() *CenterOfMassDrift {
	return &CenterOfMassDrift{}
}

func (c *CenterOfMassDrift) Name() string { return "com_drift" }

func (c *CenterOfMassDrift) Observe(sim *nbody.Simulation) {
	com, err := sim.CenterOfMass()
	if errors.Is(err, nbody.ErrEmptySystem) {
		return
	}
	if c.samples == 0 {
		c.initial = com
	}
	c.samples++

	c.maxDrift = math.Max(c.maxDrift, com.Sub(c.initial).Norm())
}

func (c *CenterOfMassDrift) Value() float64 { return c.maxDrift }

func (c *CenterOfMassDrift) Reset() {
	c.initial = nbody.Vec3{}
	c.maxDrift = 0
	c.samples = 0
}
