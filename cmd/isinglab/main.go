package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"isinglab/internal/analysis"
	"isinglab/internal/config"
	"isinglab/internal/experiment"
	"isinglab/internal/export"
	"isinglab/internal/ising"
	"isinglab/internal/plot"
	"isinglab/internal/render"
	"isinglab/internal/storage"
	"isinglab/internal/tui"
)

var (
	dataDir    string
	rows       int
	cols       int
	coupling   float64
	field      float64
	boltzmann  float64
	temp       float64
	temps      []float64
	sweeps     int
	boundary   string
	initState  string
	seed       int64
	configFile string
	preset     string
	showGrid   bool
	frameRate  int
	pngPath    string
	svgPath    string
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "isinglab",
		Short: "Metropolis Monte Carlo lab for 2-D Ising lattices",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".isinglab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "average magnetization at one temperature",
		RunE:  runSingle,
	}
	addSimFlags(runCmd)
	runCmd.Flags().BoolVar(&showGrid, "grid", false, "print the final lattice")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final lattice as svg")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "magnetization across a set of temperatures, one worker per temperature",
		RunE:  runScan,
	}
	addSimFlags(scanCmd)
	scanCmd.Flags().Float64SliceVar(&temps, "temps", []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0}, "temperatures")

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "print a lattice summary and rendering",
		RunE:  describeLattice,
	}
	addSimFlags(describeCmd)
	describeCmd.Flags().StringVar(&svgPath, "svg", "", "also write the lattice as svg")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch sweeps in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "sweeps per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&pngPath, "png", "", "write an image chart instead of a terminal plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics of a stored magnetization series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath != "" {
				return storage.New(dataDir).ExportJSONFile(outPath, args[0])
			}
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "write to a file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, scanCmd, describeCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "lattice rows")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "lattice columns")
	cmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "exchange coupling J")
	cmd.Flags().Float64Var(&field, "field", 0, "external field")
	cmd.Flags().Float64Var(&boltzmann, "kb", config.DefaultBoltzmann, "Boltzmann constant")
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "temperature")
	cmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "number of sweeps")
	cmd.Flags().StringVar(&boundary, "bc", config.DefaultBoundary, "boundary condition (OBC or PBC)")
	cmd.Flags().StringVar(&initState, "init", config.DefaultInit, "initial lattice (up, down or random)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges, in increasing precedence: defaults, preset, config
// file, flags the user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("coupling") {
		cfg.Coupling = coupling
		cfg.CouplingDirs = nil
	}
	if cmd.Flags().Changed("field") {
		cfg.Field = field
	}
	if cmd.Flags().Changed("kb") {
		cfg.Boltzmann = boltzmann
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temp
	}
	if cmd.Flags().Changed("sweeps") {
		cfg.Sweeps = sweeps
	}
	if cmd.Flags().Changed("bc") {
		cfg.Boundary = boundary
	}
	if cmd.Flags().Changed("init") {
		cfg.Init = initState
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("temps") {
		cfg.Temperatures = temps
	}

	return cfg, nil
}

func saveResult(res *experiment.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(res.Meta, res.Data)
}

func runSingle(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("running %dx%d lattice, %d sweeps at T=%.4f (%s)...\n",
		cfg.Rows, cfg.Cols, cfg.Sweeps, cfg.Temperature, cfg.Boundary)
	start := time.Now()

	res, err := experiment.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	runID, err := saveResult(res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("average magnetization: %.6f\n", res.Meta.Averages[0])
	fmt.Println("\nmetrics:")
	for name, val := range res.Meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if showGrid {
		fmt.Println()
		fmt.Print(render.Grid(res.Final))
	}
	if svgPath != "" {
		if err := export.WriteLatticeSVG(svgPath, res.Final, 8); err != nil {
			return err
		}
		fmt.Printf("lattice written to %s\n", svgPath)
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Temperatures) == 0 {
		cfg.Temperatures = temps
	}

	fmt.Printf("scanning %d temperatures, %d sweeps each (%s)...\n",
		len(cfg.Temperatures), cfg.Sweeps, cfg.Boundary)
	start := time.Now()

	res, err := experiment.Scan(context.Background(), cfg)
	if err != nil {
		return err
	}

	runID, err := saveResult(res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n\n", runID)

	for i, t := range res.Meta.Temperatures {
		fmt.Printf("  T=%-8.4f M=%.6f\n", t, res.Meta.Averages[i])
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Meta.Averages,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("average magnetization vs temperature index"),
	))
	return nil
}

func describeLattice(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	lat, err := cfg.BuildLattice()
	if err != nil {
		return err
	}

	fmt.Print(render.Summary(lat))
	fmt.Println()
	fmt.Print(render.Grid(lat))

	if svgPath != "" {
		if err := export.WriteLatticeSVG(svgPath, lat, 8); err != nil {
			return err
		}
		fmt.Printf("lattice written to %s\n", svgPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	bc, err := ising.ParseBoundary(cfg.Boundary)
	if err != nil {
		return err
	}
	lat, err := cfg.BuildLattice()
	if err != nil {
		return err
	}
	return tui.Run(ising.New(lat, cfg.BuildParams()), bc, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%-24s %-6s %dx%d  %s  sweeps=%d  %s\n",
			r.ID, r.Kind, r.Rows, r.Cols, r.Boundary, r.Sweeps,
			r.Timestamp.Format(time.RFC3339))
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	data, err := st.LoadData(runID)
	if err != nil {
		return err
	}
	if len(data.Y) == 0 {
		return fmt.Errorf("run %s has no data", runID)
	}

	if pngPath != "" {
		if meta.Kind == storage.KindScan {
			return plot.MagnetizationCurve(pngPath, data.X, data.Y, runID)
		}
		return plot.SweepSeries(pngPath, data.X, data.Y, runID)
	}

	caption := "total spin per sweep"
	if meta.Kind == storage.KindScan {
		caption = "average magnetization per temperature"
	}
	fmt.Println(asciigraph.Plot(data.Y,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	data, err := st.LoadData(runID)
	if err != nil {
		return err
	}
	if len(data.Y) == 0 {
		return fmt.Errorf("run %s has no data", runID)
	}

	fmt.Printf("run %s (%s, %dx%d)\n\n", runID, meta.Kind, meta.Rows, meta.Cols)
	fmt.Printf("  samples:  %d\n", len(data.Y))
	fmt.Printf("  mean:     %.6f\n", analysis.Mean(data.Y))
	fmt.Printf("  variance: %.6f\n", analysis.Variance(data.Y))

	if meta.Kind == storage.KindSingle && len(meta.Temperatures) == 1 {
		sites := meta.Rows * meta.Cols
		chi := analysis.Susceptibility(data.Y, meta.Boltzmann, meta.Temperatures[0], sites)
		fmt.Printf("  susceptibility: %.6f\n", chi)
		fmt.Printf("  binder cumulant: %.6f\n", analysis.BinderCumulant(data.Y))
		fmt.Printf("  autocorrelation time: %.3f sweeps\n", analysis.IntegratedAutocorrelationTime(data.Y))
	}
	return nil
}
