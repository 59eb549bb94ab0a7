// Package runner drives a simulation headlessly: fixed-dt stepping up
// to a duration, with context cancellation, dt clamping, and metric
// observation. Clamping dt is driver policy; the core tolerates any
// step size.
package runner

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitlab/internal/metrics"
	"github.com/san-kum/orbitlab/internal/nbody"
)

type Config struct {
	Dt       float64
	Duration float64
	// MaxDt caps the step size actually fed to the simulation. Zero
	// disables the clamp.
	MaxDt float64
}

func DefaultConfig() Config {
	return Config{
		Dt:       0.01,
		Duration: 10.0,
		MaxDt:    0.03,
	}
}

func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("runner: dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("runner: duration must be positive, got %f", c.Duration)
	}
	return nil
}

// Result accumulates one run's history for plotting and reporting.
type Result struct {
	Times      []float64
	Energy     []float64
	X, Y       [][]float64
	Metrics    map[string]float64
	StepsTaken int
}

type Runner struct {
	sim     *nbody.Simulation
	metrics []metrics.Metric
}

func New(sim *nbody.Simulation) *Runner {
	return &Runner{sim: sim}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }

// Run steps the simulation until the configured duration has elapsed,
// the context is canceled, the simulation pauses itself, or a step
// fails. On a step failure the partial result is returned alongside
// the error; the simulation stays at its last committed state.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dt := cfg.Dt
	if cfg.MaxDt > 0 && dt > cfg.MaxDt {
		dt = cfg.MaxDt
	}
	steps := int(cfg.Duration / dt)

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Energy:  make([]float64, 0, steps+1),
		X:       make([][]float64, 0, steps+1),
		Y:       make([][]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}
	r.sample(result)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !r.sim.Running() {
			break
		}

		if err := r.sim.Step(dt); err != nil {
			r.finish(result)
			return result, fmt.Errorf("step %d (t=%.4f): %w", i, r.sim.Time(), err)
		}
		result.StepsTaken++
		r.sample(result)
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) sample(result *Result) {
	result.Times = append(result.Times, r.sim.Time())
	result.Energy = append(result.Energy, r.sim.TotalEnergy())
	xs, ys, _ := r.sim.PositionsByAxis()
	result.X = append(result.X, xs)
	result.Y = append(result.Y, ys)
	for _, m := range r.metrics {
		m.Observe(r.sim)
	}
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
