// Package scenario defines initial conditions for simulations: yaml
// files for user-defined setups and a preset map covering the known
// analytic solutions.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/nbody"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
)

type BodySpec struct {
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

type Scenario struct {
	Name     string     `yaml:"name"`
	G        float64    `yaml:"g"`
	Method   string     `yaml:"method"`
	Dt       float64    `yaml:"dt"`
	Duration float64    `yaml:"duration"`
	Bodies   []BodySpec `yaml:"bodies"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{
		G:        nbody.DefaultG,
		Method:   nbody.SemiImplicitEuler.String(),
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewSimulation builds a fresh simulation seeded from the scenario.
// The scenario is validated before anything is constructed, so a bad
// file never yields a half-built system.
func (sc *Scenario) NewSimulation() (*nbody.Simulation, error) {
	method, err := nbody.ParseMethod(sc.Method)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	for i, b := range sc.Bodies {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("scenario %q body %d: %w", sc.Name, i, nbody.ErrNonPositiveMass)
		}
	}

	sim := nbody.New()
	sim.SetG(sc.G)
	if err := sim.SetMethod(method); err != nil {
		return nil, err
	}
	for _, b := range sc.Bodies {
		if err := sim.AddBody(b.Mass, nbody.Vec3(b.Position), nbody.Vec3(b.Velocity)); err != nil {
			return nil, err
		}
	}
	return sim, nil
}
