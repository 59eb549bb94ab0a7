// Package nbody implements a gravitational N-body simulation core.
//
// The package owns the body list and its time evolution:
//
//   - [Simulation]: ordered set of point masses plus simulation time
//   - [Simulation.Acceleration]: pairwise Newtonian force evaluation
//   - [Simulation.Step]: advance by dt with the selected [Method]
//   - diagnostics: total energy, momenta, center of mass
//
// # Example
//
//	sim := nbody.New()
//	sim.AddBody(1, nbody.Vec3{1, 0, 0}, nbody.Vec3{0, 1, 0})
//	sim.AddBody(1, nbody.Vec3{-1, 0, 0}, nbody.Vec3{0, -1, 0})
//	for i := 0; i < 1000; i++ {
//		if err := sim.Step(0.01); err != nil {
//			break
//		}
//	}
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. A step runs to completion
// synchronously; drivers call Step once per tick and read positions
// back afterwards.
package nbody
