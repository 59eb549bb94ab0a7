package nbody

import "fmt"

// Method selects a time-stepping strategy. The set matches the
// algorithm list the driving shell offers.
type Method int

const (
	Euler Method = iota
	SemiImplicitEuler
	ModifiedEuler
	RK4
)

func (m Method) String() string {
	switch m {
	case Euler:
		return "euler"
	case SemiImplicitEuler:
		return "semi-implicit-euler"
	case ModifiedEuler:
		return "modified-euler"
	case RK4:
		return "runge-kutta"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod maps a method name to a Method. Unknown names report
// ErrUnsupportedStrategy.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "euler":
		return Euler, nil
	case "semi-implicit-euler", "sieuler":
		return SemiImplicitEuler, nil
	case "modified-euler", "heun":
		return ModifiedEuler, nil
	case "runge-kutta", "rk4":
		return RK4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// Step advances the simulation by dt with the selected method.
//
// Every stepper evaluates derivatives against a snapshot of the prior
// state and commits all bodies at once: a partially applied step is
// never observable, and a singular configuration aborts the step with
// the state left at the last committed values. Time advances by dt on
// success only.
func (s *Simulation) Step(dt float64) error {
	switch s.method {
	case Euler:
		return s.StepEuler(dt)
	case SemiImplicitEuler:
		return s.StepSemiImplicitEuler(dt)
	case ModifiedEuler:
		return s.StepModifiedEuler(dt)
	case RK4:
		return s.StepRK4(dt)
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedStrategy, int(s.method))
}

// StepEuler advances every body with one explicit (forward) Euler step.
func (s *Simulation) StepEuler(dt float64) error {
	next := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		a, err := accelerate(s.g, i, b.Pos, s.bodies)
		if err != nil {
			return err
		}
		next[i] = Body{
			Mass: b.Mass,
			Pos:  b.Pos.Add(b.Vel.Scale(dt)),
			Vel:  b.Vel.Add(a.Scale(dt)),
		}
	}
	s.commit(next, dt)
	return nil
}

// StepSemiImplicitEuler advances every body with a forward Euler step
// plus the symplectic-style position correction dt^2 * a, reusing the
// same acceleration sample (equivalent to feeding the updated velocity
// into the position update without a second force evaluation). The
// committed state is round-tripped through single precision; see
// [Vec3.Truncate].
func (s *Simulation) StepSemiImplicitEuler(dt float64) error {
	next := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		a, err := accelerate(s.g, i, b.Pos, s.bodies)
		if err != nil {
			return err
		}
		pos := b.Pos.Add(b.Vel.Scale(dt)).Add(a.Scale(dt * dt))
		vel := b.Vel.Add(a.Scale(dt))
		next[i] = Body{
			Mass: b.Mass,
			Pos:  pos.Truncate(),
			Vel:  vel.Truncate(),
		}
	}
	s.commit(next, dt)
	return nil
}

// StepModifiedEuler advances every body with Heun's two-stage method.
func (s *Simulation) StepModifiedEuler(dt float64) error {
	next := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		k1p, k1v, err := s.Derivative(i, b)
		if err != nil {
			return err
		}
		k2p, k2v, err := s.Derivative(i, stage(b, k1p, k1v, dt))
		if err != nil {
			return err
		}
		half := dt / 2
		next[i] = Body{
			Mass: b.Mass,
			Pos:  b.Pos.Add(k1p.Add(k2p).Scale(half)),
			Vel:  b.Vel.Add(k1v.Add(k2v).Scale(half)),
		}
	}
	s.commit(next, dt)
	return nil
}

// StepRK4 advances every body with the classical 4-stage Runge-Kutta
// method.
func (s *Simulation) StepRK4(dt float64) error {
	next := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		k1p, k1v, err := s.Derivative(i, b)
		if err != nil {
			return err
		}
		k2p, k2v, err := s.Derivative(i, stage(b, k1p, k1v, dt/2))
		if err != nil {
			return err
		}
		k3p, k3v, err := s.Derivative(i, stage(b, k2p, k2v, dt/2))
		if err != nil {
			return err
		}
		k4p, k4v, err := s.Derivative(i, stage(b, k3p, k3v, dt))
		if err != nil {
			return err
		}
		dt6 := dt / 6
		next[i] = Body{
			Mass: b.Mass,
			Pos:  b.Pos.Add(k1p.Add(k2p.Scale(2)).Add(k3p.Scale(2)).Add(k4p).Scale(dt6)),
			Vel:  b.Vel.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt6)),
		}
	}
	s.commit(next, dt)
	return nil
}

// stage builds the candidate body for an intermediate derivative
// evaluation: b advanced by h along the (dPos, dVel) slope.
func stage(b Body, dPos, dVel Vec3, h float64) Body {
	return Body{
		Mass: b.Mass,
		Pos:  b.Pos.Add(dPos.Scale(h)),
		Vel:  b.Vel.Add(dVel.Scale(h)),
	}
}

func (s *Simulation) commit(next []Body, dt float64) {
	s.bodies = next
	s.t += dt
}
