package scenario

import "sort"

// Preset scenarios. The rotating three-body solutions seed circular
// motion from the analytic speed relations: the collinear Euler
// configuration closes at v^2 = G/r * 5/4 and the equilateral Lagrange
// configuration at v^2 = G/r * 1/sqrt(3), both for unit masses. The
// figure-8 initial conditions follow the familiar approximate
// choreography values.
var Presets = map[string]*Scenario{
	"three-body": {
		Name: "three-body", G: 0.8, Method: "semi-implicit-euler", Dt: 0.01, Duration: 10.0,
		Bodies: []BodySpec{
			{Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}},
			{Mass: 1, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 1, 0}},
			{Mass: 1, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0, -1, 0}},
		},
	},
	"euler": {
		// v = sqrt(G * 5/4) at r=1, G=1
		Name: "euler", G: 1.0, Method: "semi-implicit-euler", Dt: 0.005, Duration: 20.0,
		Bodies: []BodySpec{
			{Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}},
			{Mass: 1, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 1.118033988749895, 0}},
			{Mass: 1, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0, -1.118033988749895, 0}},
		},
	},
	"lagrange": {
		// v = sqrt(G / sqrt(3)) at r=1, G=1; vertices 90, 210, 330 degrees
		Name: "lagrange", G: 1.0, Method: "semi-implicit-euler", Dt: 0.005, Duration: 20.0,
		Bodies: []BodySpec{
			{Mass: 1, Position: [3]float64{0, 1, 0}, Velocity: [3]float64{-0.7598356856515927, 0, 0}},
			{Mass: 1, Position: [3]float64{-0.8660254037844386, -0.5, 0}, Velocity: [3]float64{0.3799178428257963, -0.6580370064762463, 0}},
			{Mass: 1, Position: [3]float64{0.8660254037844386, -0.5, 0}, Velocity: [3]float64{0.3799178428257963, 0.6580370064762463, 0}},
		},
	},
	"figure-8": {
		Name: "figure-8", G: 1.0, Method: "runge-kutta", Dt: 0.005, Duration: 20.0,
		Bodies: []BodySpec{
			{Mass: 1, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0.347, 0.532, 0}},
			{Mass: 1, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0.347, 0.532, 0}},
			{Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{-0.694, -1.064, 0}},
		},
	},
	"binary": {
		// v = sqrt(G*m/(4r)) at r=1, m=1, G=1
		Name: "binary", G: 1.0, Method: "semi-implicit-euler", Dt: 0.01, Duration: 30.0,
		Bodies: []BodySpec{
			{Mass: 1, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 0.5, 0}},
			{Mass: 1, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0, -0.5, 0}},
		},
	},
}

// Get returns a deep copy of the named preset, or nil.
func Get(name string) *Scenario {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *sc
	out.Bodies = make([]BodySpec, len(sc.Bodies))
	copy(out.Bodies, sc.Bodies)
	return &out
}

// List returns preset names in sorted order.
func List() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
