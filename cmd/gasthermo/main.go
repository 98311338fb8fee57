package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/gasthermo/internal/config"
	"github.com/san-kum/gasthermo/internal/speciesdb"
	"github.com/san-kum/gasthermo/internal/storage"
	"github.com/san-kum/gasthermo/internal/sweep"
	"github.com/san-kum/gasthermo/internal/thermo"
	"github.com/san-kum/gasthermo/internal/tui"
	"github.com/san-kum/gasthermo/internal/viz"
)

var (
	dataDir     string
	speciesFile string
	configFile  string

	preset      string
	temperature float64
	pressure    float64

	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	plotProp    string
	saveRun     bool

	pressureRatio float64
	efficiency    float64

	mixPreset string
	mixTemp   float64
	mixRatio  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gasthermo",
		Short: "ideal-gas thermodynamic property lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// default to the interactive explorer when no command given
			reg, err := registry()
			if err != nil {
				return err
			}
			return tui.Run(reg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gasthermo", "data directory")
	rootCmd.PersistentFlags().StringVar(&speciesFile, "species", "", "species data file (default: embedded set)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "run config file")

	propsCmd := &cobra.Command{
		Use:   "props",
		Short: "print the property readout of a gas state",
		RunE:  runProps,
	}
	addGasFlags(propsCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate properties over a temperature window",
		RunE:  runSweep,
	}
	addGasFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", config.DefaultSweepFrom, "start temperature [K]")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", config.DefaultSweepTo, "end temperature [K]")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", config.DefaultSweepPoints, "number of samples")
	sweepCmd.Flags().StringVar(&plotProp, "plot", "cp", "property to plot")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "persist the sweep under the data directory")

	compressCmd := &cobra.Command{
		Use:   "compress",
		Short: "polytropic compression to a pressure ratio",
		RunE:  runCompress,
	}
	addGasFlags(compressCmd)
	compressCmd.Flags().Float64Var(&pressureRatio, "pr", 10.0, "pressure ratio (>= 1)")
	compressCmd.Flags().Float64Var(&efficiency, "eta", config.DefaultEfficiency, "polytropic efficiency")

	expandCmd := &cobra.Command{
		Use:   "expand",
		Short: "polytropic expansion to a pressure ratio",
		RunE:  runExpand,
	}
	addGasFlags(expandCmd)
	expandCmd.Flags().Float64Var(&pressureRatio, "pr", 0.1, "pressure ratio (<= 1)")
	expandCmd.Flags().Float64Var(&efficiency, "eta", config.DefaultEfficiency, "polytropic efficiency")

	mixCmd := &cobra.Command{
		Use:   "mix",
		Short: "adiabatic mixing of two streams",
		RunE:  runMix,
	}
	addGasFlags(mixCmd)
	mixCmd.Flags().StringVar(&mixPreset, "with", "air", "second stream gas preset")
	mixCmd.Flags().Float64Var(&mixTemp, "with-temp", 894.45, "second stream temperature [K]")
	mixCmd.Flags().Float64Var(&mixRatio, "ratio", 1.0, "mass-flow ratio of second stream to first")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list the species table",
		RunE:  runSpecies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the named gas compositions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved sweeps",
		RunE:  runList,
	}

	rootCmd.AddCommand(propsCmd, sweepCmd, compressCmd, expandCmd, mixCmd, speciesCmd, presetsCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addGasFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "gas", "air", "gas preset")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "temperature [K]")
	cmd.Flags().Float64Var(&pressure, "pressure", config.DefaultPressure, "pressure [Pa]")
}

func registry() (*thermo.Registry, error) {
	if speciesFile != "" {
		return speciesdb.Load(speciesFile)
	}
	return speciesdb.Default(), nil
}

// buildGas resolves the working gas from the config file if given, else
// from the command flags. A config's process chain is applied, so the
// returned gas is the state downstream of the declared processes.
func buildGas() (*thermo.Gas, error) {
	reg, err := registry()
	if err != nil {
		return nil, err
	}

	gc := config.GasConfig{Preset: preset, Temperature: temperature, Pressure: pressure}
	var procs []config.ProcessConfig
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		gc = cfg.Gas
		procs = cfg.Processes
		if cfg.SpeciesFile != "" {
			if reg, err = speciesdb.Load(cfg.SpeciesFile); err != nil {
				return nil, err
			}
		}
		sweepFrom, sweepTo, sweepPoints = cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Points
	}

	gas, err := gasFromConfig(reg, gc)
	if err != nil {
		return nil, err
	}
	return applyProcesses(reg, gas, procs)
}

// applyProcesses runs a declared process chain on the gas in order,
// returning the final state. Mix replaces the working gas with the
// blended outlet.
func applyProcesses(reg *thermo.Registry, gas *thermo.Gas, procs []config.ProcessConfig) (*thermo.Gas, error) {
	for i, p := range procs {
		eta := p.Efficiency
		if eta == 0 {
			eta = config.DefaultEfficiency
		}
		var err error
		switch p.Kind {
		case "compress":
			_, err = thermo.Compress(gas, p.PressureRatio, eta)
		case "expand":
			_, err = thermo.Expand(gas, p.PressureRatio, eta)
		case "mix":
			var second *thermo.Gas
			if second, err = gasFromConfig(reg, *p.With); err == nil {
				gas, err = thermo.Mix(gas, second, p.Ratio)
			}
		default:
			err = fmt.Errorf("unknown kind %q", p.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("process %d (%s): %w", i, p.Kind, err)
		}
	}
	return gas, nil
}

func gasFromConfig(reg *thermo.Registry, gc config.GasConfig) (*thermo.Gas, error) {
	comp, mole, err := gc.Composition()
	if err != nil {
		return nil, err
	}

	var gas *thermo.Gas
	if mole {
		gas, err = thermo.NewGasXMap(reg, comp)
	} else {
		var Y []float64
		if Y, err = thermo.FromMap(reg, comp); err == nil {
			gas, err = thermo.NewGasY(reg, Y)
		}
	}
	if err != nil {
		return nil, err
	}

	T, P := gc.Temperature, gc.Pressure
	if T == 0 {
		T = config.DefaultTemperature
	}
	if P == 0 {
		P = config.DefaultPressure
	}
	gas.SetTP(T, P)
	return gas, nil
}

func runProps(cmd *cobra.Command, args []string) error {
	gas, err := buildGas()
	if err != nil {
		return err
	}
	fmt.Println(viz.PropertyTable(gas))
	fmt.Println(viz.CompositionTable(gas))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	gas, err := buildGas()
	if err != nil {
		return err
	}

	res, err := sweep.Run(gas, sweepFrom, sweepTo, sweepPoints)
	if err != nil {
		return err
	}

	graph, err := viz.PlotSweep(res, plotProp)
	if err != nil {
		return err
	}
	fmt.Println(graph)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(preset, res)
		if err != nil {
			return err
		}
		fmt.Println("saved run", runID)
	}
	return nil
}

func runCompress(cmd *cobra.Command, args []string) error {
	gas, err := buildGas()
	if err != nil {
		return err
	}

	T1, P1 := gas.Temperature(), gas.Pressure()
	if _, err := thermo.Compress(gas, pressureRatio, efficiency); err != nil {
		return err
	}
	printProcess("compression", T1, P1, gas)
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	gas, err := buildGas()
	if err != nil {
		return err
	}

	T1, P1 := gas.Temperature(), gas.Pressure()
	if _, err := thermo.Expand(gas, pressureRatio, efficiency); err != nil {
		return err
	}
	printProcess("expansion", T1, P1, gas)
	return nil
}

func runMix(cmd *cobra.Command, args []string) error {
	gas, err := buildGas()
	if err != nil {
		return err
	}

	second, err := gasFromConfig(gas.Registry(), config.GasConfig{
		Preset:      mixPreset,
		Temperature: mixTemp,
		Pressure:    gas.Pressure(),
	})
	if err != nil {
		return err
	}

	out, err := thermo.Mix(gas, second, mixRatio)
	if err != nil {
		return err
	}

	fmt.Printf("stream A: %.2f K   stream B: %.2f K   ratio %.3g\n\n",
		gas.Temperature(), second.Temperature(), mixRatio)
	fmt.Println(viz.PropertyTable(out))
	return nil
}

func runSpecies(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tMW [g/mol]\thf [J/mol]\trange [K]")
	for i := 0; i < reg.Len(); i++ {
		sp := reg.At(i)
		fmt.Fprintf(w, "%s\t%.4f\t%.1f\t%g..%g\n", sp.Name, sp.MW, sp.Hf, sp.Tmin, sp.Tmax)
	}
	return w.Flush()
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tlabel\tpoints\tpressure [Pa]\tsaved")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%s\n",
			r.ID, r.Label, r.Points, r.Pressure, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func printProcess(name string, T1, P1 float64, gas *thermo.Gas) {
	fmt.Printf("%s: %.2f K / %.0f Pa  ->  %.2f K / %.0f Pa  (eta=%.3g)\n\n",
		name, T1, P1, gas.Temperature(), gas.Pressure(), efficiency)
	fmt.Println(viz.PropertyTable(gas))
}
