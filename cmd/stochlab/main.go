package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/stochlab/internal/config"
	"github.com/san-kum/stochlab/internal/export"
	"github.com/san-kum/stochlab/internal/forward"
	"github.com/san-kum/stochlab/internal/metrics"
	"github.com/san-kum/stochlab/internal/passage"
	"github.com/san-kum/stochlab/internal/randvar"
	"github.com/san-kum/stochlab/internal/stochastic"
	"github.com/san-kum/stochlab/internal/store"
	"github.com/san-kum/stochlab/internal/viz"
	"github.com/san-kum/stochlab/internal/walk"
)

var (
	dataDir string

	// forward equation
	xMin          float64
	xMax          float64
	dx            float64
	dt            float64
	tMax          float64
	drift         float64
	diffusion     float64
	initialMu     float64
	initialSigma  float64
	allowUnstable bool

	// first passage
	matrixSpec string
	fromState  int
	toState    int

	// walks
	process  string
	x0       float64
	duration float64
	mu       float64
	sigma    float64
	theta    float64
	level    float64
	trials   int
	sampler  string
	seed     int64

	configFile string
	preset     string
	frameRate  int

	svgOut    string
	svgWidth  int
	svgHeight int
	svgColor  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stochlab",
		Short: "stochastic process numerics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stochlab", "data directory")

	forwardCmd := &cobra.Command{
		Use:   "forward",
		Short: "solve the Kolmogorov forward equation",
		RunE:  runForward,
	}
	addForwardFlags(forwardCmd)

	fptCmd := &cobra.Command{
		Use:   "fpt",
		Short: "first-passage times for a rate matrix",
		RunE:  runFirstPassage,
	}
	fptCmd.Flags().StringVar(&matrixSpec, "matrix", "", "rate matrix, rows separated by ';', entries by ',' (required)")
	fptCmd.Flags().IntVar(&fromState, "from", 0, "initial state")
	fptCmd.Flags().IntVar(&toState, "to", 0, "target state")
	_ = fptCmd.MarkFlagRequired("matrix")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "query the explicit-scheme stability bound",
		RunE:  runStability,
	}
	stabilityCmd.Flags().Float64Var(&xMin, "x-min", config.DefaultXMin, "left boundary")
	stabilityCmd.Flags().Float64Var(&xMax, "x-max", config.DefaultXMax, "right boundary")
	stabilityCmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "spatial step")
	stabilityCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep to check")
	stabilityCmd.Flags().Float64Var(&diffusion, "diffusion", config.DefaultDiff, "constant diffusion")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "simulate a sample path",
		RunE:  runWalk,
	}
	addWalkFlags(walkCmd)

	hitCmd := &cobra.Command{
		Use:   "hit",
		Short: "estimate a hitting time by simulation",
		RunE:  runHit,
	}
	addWalkFlags(hitCmd)
	hitCmd.Flags().Float64Var(&level, "level", 1.0, "level to hit")
	hitCmd.Flags().IntVar(&trials, "trials", config.DefaultTrials, "number of trials")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "solve the forward equation and replay it in the terminal",
		RunE:  runLive,
	}
	addForwardFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "run.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	exportSVGCmd.Flags().StringVar(&svgColor, "color", "#00ff88", "stroke color")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(forwardCmd, fptCmd, stabilityCmd, walkCmd, hitCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addForwardFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xMin, "x-min", config.DefaultXMin, "left boundary")
	cmd.Flags().Float64Var(&xMax, "x-max", config.DefaultXMax, "right boundary")
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "spatial step")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tMax, "t-max", config.DefaultTMax, "time horizon")
	cmd.Flags().Float64Var(&drift, "drift", config.DefaultDrift, "constant drift")
	cmd.Flags().Float64Var(&diffusion, "diffusion", config.DefaultDiff, "constant diffusion")
	cmd.Flags().Float64Var(&initialMu, "mu", 0.0, "initial bump center")
	cmd.Flags().Float64Var(&initialSigma, "sigma", config.DefaultSigma, "initial bump width")
	cmd.Flags().BoolVar(&allowUnstable, "allow-unstable", false, "proceed past the stability bound with a warning")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&process, "process", "brownian", "process: brownian or ou")
	cmd.Flags().Float64Var(&x0, "x0", 0.0, "initial position")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&mu, "mu", 0.0, "drift (brownian) or long-run mean (ou)")
	cmd.Flags().Float64Var(&sigma, "sigma", 1.0, "volatility")
	cmd.Flags().Float64Var(&theta, "theta", 1.0, "mean-reversion speed (ou)")
	cmd.Flags().StringVar(&sampler, "sampler", "box_muller", "normal sampler: box_muller or polar")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func applyForwardConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyForward(cmd, &cfg.Forward)
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyForward(cmd, &cfg.Forward)
	}
	return nil
}

func applyForward(cmd *cobra.Command, fc *config.ForwardConfig) {
	// CLI flags override preset/config values.
	if !cmd.Flags().Changed("x-min") {
		xMin = fc.XMin
	}
	if !cmd.Flags().Changed("x-max") {
		xMax = fc.XMax
	}
	if !cmd.Flags().Changed("dx") && fc.Dx != 0 {
		dx = fc.Dx
	}
	if !cmd.Flags().Changed("dt") && fc.Dt != 0 {
		dt = fc.Dt
	}
	if !cmd.Flags().Changed("t-max") && fc.TMax != 0 {
		tMax = fc.TMax
	}
	if !cmd.Flags().Changed("drift") {
		drift = fc.Drift
	}
	if !cmd.Flags().Changed("diffusion") {
		diffusion = fc.Diffusion
	}
	if !cmd.Flags().Changed("mu") {
		initialMu = fc.InitialMu
	}
	if !cmd.Flags().Changed("sigma") && fc.InitialSigma != 0 {
		initialSigma = fc.InitialSigma
	}
	if !cmd.Flags().Changed("allow-unstable") {
		allowUnstable = fc.AllowUnstable
	}
}

func solveForward(ctx context.Context) (*forward.Result, forward.Config, error) {
	cfg := forward.Config{
		XMin: xMin, XMax: xMax, TMax: tMax,
		Dx: dx, Dt: dt,
		AllowUnstable: allowUnstable,
	}

	grid, err := forward.NewGrid(cfg)
	if err != nil {
		return nil, cfg, err
	}

	initial := stochastic.SampleField(stochastic.Gaussian(initialMu, initialSigma), grid.X)
	res, err := forward.Solve(ctx, stochastic.Const(drift), stochastic.Const(diffusion), initial, cfg)
	return res, cfg, err
}

func runForward(cmd *cobra.Command, args []string) error {
	if err := applyForwardConfig(cmd); err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	res, cfg, err := solveForward(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, w := range res.Warnings {
		fmt.Println(viz.Warn("warning: " + w.Error()))
	}

	params := map[string]float64{
		"x_min": cfg.XMin, "x_max": cfg.XMax,
		"dx": cfg.Dx, "dt": cfg.Dt, "t_max": cfg.TMax,
		"drift": drift, "diffusion": diffusion,
	}
	final := res.Final()
	ms := []metrics.Metric{metrics.NewMassDrift(cfg.Dx), metrics.NewPositivity()}
	metrics.Observe(ms, res.Grid.T, res.Density)
	collected := metrics.Collect(ms)
	collected["final_mass"] = final.Mass(cfg.Dx)
	collected["final_peak"] = final.Max()

	rows := make([][]float64, len(res.Density))
	for i, d := range res.Density {
		rows[i] = d
	}
	runID, err := st.Save("forward", 0, params, collected, res.Grid.T, rows)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header("forward equation"))
	fmt.Println(viz.Stat("run id", runID))
	fmt.Println(viz.Stat("grid", fmt.Sprintf("%d x %d", len(res.Grid.T), len(res.Grid.X))))
	fmt.Println(viz.Stat("elapsed", elapsed.String()))
	for name, val := range collected {
		fmt.Println(viz.Stat(name, strconv.FormatFloat(val, 'f', 6, 64)))
	}
	fmt.Println()
	fmt.Println(viz.PlotDensity(res.Grid.X, final, res.Grid.T[len(res.Grid.T)-1]))

	return nil
}

func runFirstPassage(cmd *cobra.Command, args []string) error {
	m, err := parseMatrix(matrixSpec)
	if err != nil {
		return err
	}

	t, err := passage.Solve(m, fromState, toState)
	if err != nil {
		return err
	}

	times, err := passage.Times(m, toState)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header("first-passage times"))
	if passage.IsUnreachable(t) {
		fmt.Println(viz.Stat(fmt.Sprintf("%d -> %d", fromState, toState), "unreachable"))
	} else {
		fmt.Println(viz.Stat(fmt.Sprintf("%d -> %d", fromState, toState), strconv.FormatFloat(t, 'f', 6, 64)))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tTIME")
	for s, ts := range times {
		if passage.IsUnreachable(ts) {
			fmt.Fprintf(w, "%d\tunreachable\n", s)
		} else {
			fmt.Fprintf(w, "%d\t%.6f\n", s, ts)
		}
	}
	return w.Flush()
}

func runStability(cmd *cobra.Command, args []string) error {
	cfg := forward.Config{XMin: xMin, XMax: xMax, TMax: 1, Dx: dx, Dt: dt}
	grid, err := forward.NewGrid(cfg)
	if err != nil {
		return err
	}

	bound, ok := forward.StabilityBound(stochastic.Const(diffusion), grid)
	if !ok {
		fmt.Println("no diffusion constraint: any timestep is stable")
		return nil
	}

	fmt.Println(viz.Header("stability"))
	fmt.Println(viz.Stat("bound", strconv.FormatFloat(bound, 'g', -1, 64)))
	fmt.Println(viz.Stat("dt", strconv.FormatFloat(dt, 'g', -1, 64)))
	if dt > bound {
		fmt.Println(viz.Warn(fmt.Sprintf("unstable: dt exceeds the bound by a factor of %.2f", dt/bound)))
	} else {
		fmt.Println(viz.Stat("verdict", "stable"))
	}
	return nil
}

func applyWalkConfig(cmd *cobra.Command) error {
	var wc *config.WalkConfig
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		wc = &cfg.Walk
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		wc = &cfg.Walk
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}
	if wc == nil {
		return nil
	}

	if !cmd.Flags().Changed("process") && wc.Process != "" {
		process = wc.Process
	}
	if !cmd.Flags().Changed("x0") {
		x0 = wc.X0
	}
	if !cmd.Flags().Changed("dt") && wc.Dt != 0 {
		dt = wc.Dt
	}
	if !cmd.Flags().Changed("time") && wc.Duration != 0 {
		duration = wc.Duration
	}
	if !cmd.Flags().Changed("mu") {
		mu = wc.Mu
	}
	if !cmd.Flags().Changed("sigma") && wc.Sigma != 0 {
		sigma = wc.Sigma
	}
	if !cmd.Flags().Changed("theta") && wc.Theta != 0 {
		theta = wc.Theta
	}
	if !cmd.Flags().Changed("sampler") && wc.Sampler != "" {
		sampler = wc.Sampler
	}
	if cmd.Flags().Lookup("level") != nil && !cmd.Flags().Changed("level") && wc.Level != 0 {
		level = wc.Level
	}
	if cmd.Flags().Lookup("trials") != nil && !cmd.Flags().Changed("trials") && wc.Trials != 0 {
		trials = wc.Trials
	}
	return nil
}

func buildProcess() (walk.Process, error) {
	switch process {
	case "brownian":
		return &walk.Brownian{Mu: mu, Sigma: sigma}, nil
	case "ou":
		return &walk.OrnsteinUhlenbeck{Theta: theta, Mu: mu, Sigma: sigma}, nil
	default:
		return nil, fmt.Errorf("unknown process: %s", process)
	}
}

func buildSampler() (randvar.Source, error) {
	switch sampler {
	case "box_muller":
		return randvar.NewBoxMuller(seed), nil
	case "polar":
		return randvar.NewPolar(seed), nil
	default:
		return nil, fmt.Errorf("unknown sampler: %s", sampler)
	}
}

func runWalk(cmd *cobra.Command, args []string) error {
	if err := applyWalkConfig(cmd); err != nil {
		return err
	}

	p, err := buildProcess()
	if err != nil {
		return err
	}
	src, err := buildSampler()
	if err != nil {
		return err
	}

	path, err := walk.Simulate(p, src, x0, dt, duration)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := map[string]float64{"x0": x0, "dt": dt, "duration": duration, "mu": mu, "sigma": sigma}
	walkMetrics := map[string]float64{"final": path.Final()}
	rows := make([][]float64, len(path.X))
	for i, v := range path.X {
		rows[i] = []float64{v}
	}
	runID, err := st.Save(process, seed, params, walkMetrics, path.T, rows)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header(process + " walk"))
	fmt.Println(viz.Stat("run id", runID))
	fmt.Println(viz.Stat("seed", strconv.FormatInt(seed, 10)))
	fmt.Println(viz.Stat("final", strconv.FormatFloat(path.Final(), 'f', 6, 64)))
	fmt.Println()
	fmt.Println(viz.PlotPath(path.T, path.X, process))
	return nil
}

func runHit(cmd *cobra.Command, args []string) error {
	if err := applyWalkConfig(cmd); err != nil {
		return err
	}

	p, err := buildProcess()
	if err != nil {
		return err
	}
	src, err := buildSampler()
	if err != nil {
		return err
	}

	start := time.Now()
	est, err := walk.EstimateHittingTime(p, src, x0, level, dt, duration, trials)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.Header("hitting time"))
	fmt.Println(viz.Stat("level", strconv.FormatFloat(level, 'f', 4, 64)))
	fmt.Println(viz.Stat("trials", strconv.Itoa(est.Trials)))
	fmt.Println(viz.Stat("hit rate", fmt.Sprintf("%.1f%%", 100*est.HitRate())))
	if est.Hits > 0 {
		fmt.Println(viz.Stat("mean time", strconv.FormatFloat(est.Mean, 'f', 6, 64)))
	} else {
		fmt.Println(viz.Stat("mean time", "no trial hit the level"))
	}
	fmt.Println(viz.Stat("elapsed", elapsed.String()))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := applyForwardConfig(cmd); err != nil {
		return err
	}

	res, _, err := solveForward(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]float64, len(res.Density))
	for i, d := range res.Density {
		rows[i] = d
	}

	m := viz.NewModel(res.Grid.X, res.Grid.T, rows, frameRate)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Header(meta.Kind + " run " + meta.ID))

	if meta.Kind == "forward" {
		// Snapshot the density at the start, middle, and end.
		for _, i := range []int{0, len(rows) / 2, len(rows) - 1} {
			fmt.Println(viz.PlotSeries(rows[i], fmt.Sprintf("t=%.4f", times[i])))
			fmt.Println()
		}
		return nil
	}

	series := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			series[i] = row[0]
		}
	}
	fmt.Println(viz.PlotPath(times, series, meta.Kind))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	times, rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta, times, rows)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	times, rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range rows[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range rows {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range rows[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	times, rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	var xs, ys []float64
	if meta.Kind == "forward" {
		// Render the final density over its spatial axis, rebuilt from
		// the saved grid parameters.
		last := rows[len(rows)-1]
		xs = make([]float64, len(last))
		for j := range xs {
			xs[j] = meta.Params["x_min"] + float64(j)*meta.Params["dx"]
		}
		ys = last
	} else {
		xs = times
		ys = make([]float64, len(rows))
		for i, row := range rows {
			if len(row) > 0 {
				ys[i] = row[0]
			}
		}
	}

	if err := export.WriteSeriesSVG(svgOut, xs, ys, svgWidth, svgHeight, svgColor); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

// parseMatrix reads a rate matrix from "a,b;c,d" form.
func parseMatrix(s string) (passage.Matrix, error) {
	rows := strings.Split(strings.TrimSpace(s), ";")
	m := make(passage.Matrix, 0, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, ",")
		vals := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad entry %q: %w", i, f, err)
			}
			vals = append(vals, v)
		}
		m = append(m, vals)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
