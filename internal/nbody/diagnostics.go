package nbody

// Diagnostics are pure queries over the current state; none of them
// mutate the simulation. Drivers use them to watch conservation of
// energy and momentum across integrators.

// TotalEnergy returns kinetic minus potential energy, with each
// unordered pair's potential counted once.
func (s *Simulation) TotalEnergy() float64 {
	e := 0.0
	for i := range s.bodies {
		bi := s.bodies[i]
		e += bi.Mass * bi.Vel.Dot(bi.Vel) / 2
		for j := i + 1; j < len(s.bodies); j++ {
			e -= s.g * bi.Mass * s.bodies[j].Mass / s.bodies[j].Pos.Sub(bi.Pos).Norm()
		}
	}
	return e
}

// CenterOfMass returns the mass-weighted average position. It reports
// ErrEmptySystem for zero bodies or zero total mass.
func (s *Simulation) CenterOfMass() (Vec3, error) {
	if len(s.bodies) == 0 {
		return Vec3{}, ErrEmptySystem
	}
	var weighted Vec3
	total := 0.0
	for _, b := range s.bodies {
		weighted = weighted.Add(b.Pos.Scale(b.Mass))
		total += b.Mass
	}
	if total == 0 {
		return Vec3{}, ErrEmptySystem
	}
	return weighted.Scale(1 / total), nil
}

// LinearMomentum returns the total momentum sum m_i * v_i.
func (s *Simulation) LinearMomentum() Vec3 {
	var p Vec3
	for _, b := range s.bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the component of the total angular momentum
// orthogonal to the orbital plane, measured against ref. Orbits here
// live in the xy plane embedded in 3-D, so only the z component is
// returned.
func (s *Simulation) AngularMomentum(ref ReferenceFrame) float64 {
	l := 0.0
	for _, b := range s.bodies {
		l += b.Mass * b.Pos.Sub(ref.Pos).Cross(b.Vel.Sub(ref.Vel))[2]
	}
	return l
}

// PositionsByAxis returns three parallel slices holding every body's
// x, y and z coordinate, in body order. This is the read path renderers
// and plotters consume.
func (s *Simulation) PositionsByAxis() (xs, ys, zs []float64) {
	xs = make([]float64, len(s.bodies))
	ys = make([]float64, len(s.bodies))
	zs = make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		xs[i] = b.Pos[0]
		ys[i] = b.Pos[1]
		zs[i] = b.Pos[2]
	}
	return xs, ys, zs
}
