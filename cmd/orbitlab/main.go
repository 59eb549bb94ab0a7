package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitlab/internal/metrics"
	"github.com/san-kum/orbitlab/internal/nbody"
	"github.com/san-kum/orbitlab/internal/runner"
	"github.com/san-kum/orbitlab/internal/scenario"
	"github.com/san-kum/orbitlab/internal/viz"
)

var (
	dt         float64
	duration   float64
	maxDt      float64
	grav       float64
	method     string
	configFile string
	plotEnergy bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "gravitational n-body simulation lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a simulation headlessly and report diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (0 = scenario value)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration (0 = scenario value)")
	runCmd.Flags().Float64Var(&maxDt, "max-dt", 0, "clamp applied to the timestep (0 = none)")
	runCmd.Flags().Float64Var(&grav, "g", -1, "gravitational constant (-1 = scenario value)")
	runCmd.Flags().StringVar(&method, "method", "", "integration method (empty = scenario value)")
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	runCmd.Flags().BoolVar(&plotEnergy, "plot", true, "plot total energy over time")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&grav, "g", -1, "gravitational constant (-1 = scenario value)")
	liveCmd.Flags().StringVar(&method, "method", "", "integration method (empty = scenario value)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if configFile != "" {
		return scenario.Load(configFile)
	}
	name := "three-body"
	if len(args) > 0 {
		name = args[0]
	}
	sc := scenario.Get(name)
	if sc == nil {
		return nil, fmt.Errorf("unknown preset %q (try: %v)", name, scenario.List())
	}
	return sc, nil
}

func applyOverrides(sc *scenario.Scenario) {
	if dt > 0 {
		sc.Dt = dt
	}
	if duration > 0 {
		sc.Duration = duration
	}
	if grav >= 0 {
		sc.G = grav
	}
	if method != "" {
		sc.Method = method
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	applyOverrides(sc)

	sim, err := sc.NewSimulation()
	if err != nil {
		return err
	}

	r := runner.New(sim)
	r.AddMetric(metrics.NewEnergyDrift())
	r.AddMetric(metrics.NewMomentumDrift())
	r.AddMetric(metrics.NewCenterOfMassDrift())

	result, err := r.Run(context.Background(), runner.Config{
		Dt:       sc.Dt,
		Duration: sc.Duration,
		MaxDt:    maxDt,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", sc.Name)
	fmt.Fprintf(w, "method\t%s\n", sim.Method())
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "time\t%.4f\n", sim.Time())
	fmt.Fprintf(w, "energy\t%.8f -> %.8f\n", result.Energy[0], result.Energy[len(result.Energy)-1])
	fmt.Fprintf(w, "|p|\t%.3e\n", sim.LinearMomentum().Norm())
	fmt.Fprintf(w, "L\t%+.6f\n", sim.AngularMomentum(nbody.ReferenceFrame{}))
	if com, err := sim.CenterOfMass(); err == nil {
		fmt.Fprintf(w, "com\t(%.4f, %.4f, %.4f)\n", com[0], com[1], com[2])
	}
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.3e\n", name, value)
	}
	w.Flush()

	if plotEnergy && len(result.Energy) > 2 {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(result.Energy,
			asciigraph.Height(10), asciigraph.Width(72),
			asciigraph.Caption("total energy")))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	applyOverrides(sc)
	return viz.Run(sc)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range scenario.List() {
		sc := scenario.Get(name)
		fmt.Fprintf(w, "%s\t%d bodies\tG=%.2f\t%s\n", name, len(sc.Bodies), sc.G, sc.Method)
	}
	return w.Flush()
}
