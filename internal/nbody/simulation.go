package nbody

import (
	"fmt"
	"math"
)

// DefaultG is the gravitational constant a new simulation starts with.
const DefaultG = 0.8

// Body is one simulated point mass. Position and velocity form the
// body's state block; every integrator advances them together.
type Body struct {
	Mass float64
	Pos  Vec3
	Vel  Vec3
}

// ReferenceFrame supplies the position/velocity pair angular momentum
// is measured against. The zero value is the origin at rest.
type ReferenceFrame struct {
	Pos Vec3
	Vel Vec3
}

// Simulation owns an ordered list of bodies and advances them in time.
// Body order is significant: the index is the body's identity for
// set/remove and for any external index-keyed state.
type Simulation struct {
	bodies  []Body
	g       float64
	t       float64
	running bool
	method  Method
}

// New returns an empty simulation with G = [DefaultG], the running flag
// set, and semi-implicit Euler selected.
func New() *Simulation {
	return &Simulation{
		g:       DefaultG,
		running: true,
		method:  SemiImplicitEuler,
	}
}

// AddBody appends a body. Mass must be positive.
func (s *Simulation) AddBody(mass float64, pos, vel Vec3) error {
	if mass <= 0 || math.IsNaN(mass) {
		return fmt.Errorf("%w: %g", ErrNonPositiveMass, mass)
	}
	s.bodies = append(s.bodies, Body{Mass: mass, Pos: pos, Vel: vel})
	return nil
}

// SetBody replaces the body at index in place. On error the body list
// is left untouched.
func (s *Simulation) SetBody(index int, mass float64, pos, vel Vec3) error {
	if index < 0 || index >= len(s.bodies) {
		return fmt.Errorf("%w: %d (have %d bodies)", ErrOutOfRange, index, len(s.bodies))
	}
	if mass <= 0 || math.IsNaN(mass) {
		return fmt.Errorf("%w: %g", ErrNonPositiveMass, mass)
	}
	s.bodies[index] = Body{Mass: mass, Pos: pos, Vel: vel}
	return nil
}

// RemoveBody deletes the body at index, shifting later indices down by
// one. Callers keeping index-keyed state of their own must re-key it.
func (s *Simulation) RemoveBody(index int) error {
	if index < 0 || index >= len(s.bodies) {
		return fmt.Errorf("%w: %d (have %d bodies)", ErrOutOfRange, index, len(s.bodies))
	}
	s.bodies = append(s.bodies[:index], s.bodies[index+1:]...)
	return nil
}

// Body returns the body at index.
func (s *Simulation) Body(index int) (Body, error) {
	if index < 0 || index >= len(s.bodies) {
		return Body{}, fmt.Errorf("%w: %d (have %d bodies)", ErrOutOfRange, index, len(s.bodies))
	}
	return s.bodies[index], nil
}

// Bodies returns a copy of the current body list.
func (s *Simulation) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Len reports the number of bodies.
func (s *Simulation) Len() int { return len(s.bodies) }

// Time reports accumulated simulation time.
func (s *Simulation) Time() float64 { return s.t }

// G reports the gravitational constant.
func (s *Simulation) G() float64 { return s.g }

// SetG changes the gravitational constant. Drivers may adjust it
// between steps.
func (s *Simulation) SetG(g float64) { s.g = g }

// Running reports the policy flag drivers check before stepping. The
// integrators themselves remain callable regardless.
func (s *Simulation) Running() bool { return s.running }

func (s *Simulation) SetRunning(running bool) { s.running = running }

// Method reports the selected integration method.
func (s *Simulation) Method() Method { return s.method }

func (s *Simulation) SetMethod(m Method) error {
	switch m {
	case Euler, SemiImplicitEuler, ModifiedEuler, RK4:
		s.method = m
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedStrategy, int(m))
}

// Acceleration computes the net gravitational acceleration on body i:
//
//	a_i = G * sum_{j != i} m_j * (p_j - p_i) / |p_j - p_i|^3
//
// Body i is evaluated at the candidate state b; all other bodies use
// their stored positions. Summation runs in ascending index order so
// results are reproducible. A zero pairwise distance reports
// ErrSingularConfiguration instead of propagating Inf/NaN.
func (s *Simulation) Acceleration(i int, b Body) (Vec3, error) {
	if i < 0 || i >= len(s.bodies) {
		return Vec3{}, fmt.Errorf("%w: %d (have %d bodies)", ErrOutOfRange, i, len(s.bodies))
	}
	return accelerate(s.g, i, b.Pos, s.bodies)
}

// Derivative returns the ODE right-hand side for body i at candidate
// state b: the derivative of position is b's velocity and the
// derivative of velocity is the gravitational acceleration.
func (s *Simulation) Derivative(i int, b Body) (dPos, dVel Vec3, err error) {
	dVel, err = s.Acceleration(i, b)
	return b.Vel, dVel, err
}

func accelerate(g float64, i int, pi Vec3, bodies []Body) (Vec3, error) {
	var a Vec3
	for j := range bodies {
		if j == i {
			continue
		}
		ox := bodies[j].Pos[0] - pi[0]
		oy := bodies[j].Pos[1] - pi[1]
		oz := bodies[j].Pos[2] - pi[2]
		d2 := ox*ox + oy*oy + oz*oz
		if d2 == 0 {
			return Vec3{}, fmt.Errorf("%w: bodies %d and %d", ErrSingularConfiguration, i, j)
		}
		d := math.Sqrt(d2)
		f := g * bodies[j].Mass / (d * d * d)
		a[0] += f * ox
		a[1] += f * oy
		a[2] += f * oz
	}
	return a, nil
}
