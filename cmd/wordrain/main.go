package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wordrain/internal/automation"
	"github.com/san-kum/wordrain/internal/config"
	"github.com/san-kum/wordrain/internal/experiment"
	"github.com/san-kum/wordrain/internal/export"
	"github.com/san-kum/wordrain/internal/metrics"
	"github.com/san-kum/wordrain/internal/optim"
	"github.com/san-kum/wordrain/internal/rain"
	"github.com/san-kum/wordrain/internal/sim"
	"github.com/san-kum/wordrain/internal/storage"
	"github.com/san-kum/wordrain/internal/store"
	"github.com/san-kum/wordrain/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	// Field overrides
	words         string
	wordsFile     string
	columns       int
	fontSize      float64
	trails        int
	gap           int
	trailLength   int
	fall          float64
	variance      float64
	spawn         float64
	brightness    float64
	colorMode     string
	solid         string
	rainbowPeriod float64
	policy        string
	respawnDelay  float64
	// Headless runs
	duration   float64
	stepMS     float64
	viewWidth  float64
	viewHeight float64
	numRuns    int
	noSave     bool
	outPath    string
	svgPath    string
	// Sweeps and search
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	gridAxes   []string
	metricName string
	maximize   bool
	// Live view
	frameRate int
	menu      bool
	force     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "wordrain",
		Short:        "falling word rain for the terminal",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".wordrain", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.StringVar(&words, "words", "", "whitespace separated word list")
	pf.StringVar(&wordsFile, "words-file", "", "read the word list from a file")
	pf.IntVar(&columns, "columns", config.DefaultColumns, "number of columns")
	pf.Float64Var(&fontSize, "font-size", config.DefaultFontSize, "font size in pixels")
	pf.IntVar(&trails, "trails", config.DefaultTrails, "concurrent trails per column")
	pf.IntVar(&gap, "gap", config.DefaultGapWords, "gap between trails in words")
	pf.IntVar(&trailLength, "trail-length", config.DefaultTrailLength, "trail length in words")
	pf.Float64Var(&fall, "fall", config.DefaultFallSeconds, "seconds to fall through the viewport")
	pf.Float64Var(&variance, "variance", config.DefaultVariance, "fall time variance in seconds")
	pf.Float64Var(&spawn, "spawn", config.DefaultSpawnSeconds, "seconds between words")
	pf.Float64Var(&brightness, "brightness", config.DefaultBrightness, "brightness (0, 1]")
	pf.StringVar(&colorMode, "color", "classic", "color mode: classic, solid, rainbow")
	pf.StringVar(&solid, "solid", config.DefaultSolid, "hex color for solid mode")
	pf.Float64Var(&rainbowPeriod, "rainbow-period", config.DefaultRainbowPeriod, "seconds per hue cycle")
	pf.StringVar(&policy, "policy", "gap", "spawn policy: gap, cooldown")
	pf.Float64Var(&respawnDelay, "respawn-delay", config.DefaultRespawnDelay, "cooldown respawn delay in seconds")

	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	rootCmd.Flags().BoolVar(&menu, "menu", false, "pick a preset before starting")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "full-screen animated rain",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().BoolVar(&menu, "menu", false, "pick a preset before starting")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addHeadlessFlags(runCmd)
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "number of seeds to run in parallel")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and dump the final frame",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	addHeadlessFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "-", "json output path, - for stdout")
	snapshotCmd.Flags().StringVar(&svgPath, "svg", "", "also render the frame as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write the drop series as svg")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark field updates",
		Args:  cobra.NoArgs,
		RunE:  benchField,
	}
	addHeadlessFlags(benchCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of headless steps",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one numeric parameter and compare metrics",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addHeadlessFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "gap_words", "config key to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 8, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters against a metric",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	addHeadlessFlags(tuneCmd)
	tuneCmd.Flags().StringArrayVar(&gridAxes, "grid", []string{"trails=1,2,3", "gap=0,2,4,6"}, "grid axis as key=v1,v2 (repeatable)")
	tuneCmd.Flags().StringVar(&metricName, "metric", "overlap", "metric to optimize")
	tuneCmd.Flags().BoolVar(&maximize, "maximize", false, "keep the largest value instead of the smallest")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.PresetSummary(name))
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(liveCmd, runCmd, snapshotCmd, listCmd, plotCmd, benchCmd, scenarioCmd, sweepCmd, tuneCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "time", 30.0, "simulated duration in seconds")
	cmd.Flags().Float64Var(&stepMS, "step", 16, "frame step in milliseconds")
	cmd.Flags().Float64Var(&viewWidth, "width", 1280, "viewport width in pixels")
	cmd.Flags().Float64Var(&viewHeight, "height", 720, "viewport height in pixels")
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order. The returned name labels the run.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, name := config.DefaultConfig(), "classic"

	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, "", err
		}
		cfg, name = p, preset
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if preset == "" {
			name = "custom"
		}
	}

	f := cmd.Flags()
	if f.Changed("words") {
		cfg.Words = config.ParseWords(words)
	}
	if f.Changed("words-file") {
		data, err := os.ReadFile(wordsFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read words: %w", err)
		}
		cfg.Words = config.ParseWords(string(data))
	}
	if f.Changed("columns") {
		cfg.Columns = columns
	}
	if f.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if f.Changed("trails") {
		cfg.TrailsPerColumn = trails
	}
	if f.Changed("gap") {
		cfg.GapWords = gap
	}
	if f.Changed("trail-length") {
		cfg.TrailLength = trailLength
	}
	if f.Changed("fall") {
		cfg.FallSeconds = fall
	}
	if f.Changed("variance") {
		cfg.SpeedVariance = variance
	}
	if f.Changed("spawn") {
		cfg.SpawnSeconds = spawn
	}
	if f.Changed("brightness") {
		cfg.Brightness = brightness
	}
	if f.Changed("color") {
		cfg.Color.Mode = colorMode
	}
	if f.Changed("solid") {
		cfg.Color.Solid = solid
		if !f.Changed("color") {
			cfg.Color.Mode = "solid"
		}
	}
	if f.Changed("rainbow-period") {
		cfg.Color.RainbowPeriod = rainbowPeriod
	}
	if f.Changed("policy") {
		cfg.Policy = policy
	}
	if f.Changed("respawn-delay") {
		cfg.RespawnDelay = respawnDelay
	}

	if f.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

// resolveRunConfig is resolveConfig with a seed picked when none is set.
func resolveRunConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, name, nil
}

func headlessConfig(s int64) (sim.Config, rain.Viewport) {
	cfg := sim.Config{
		Step:     time.Duration(stepMS * float64(time.Millisecond)),
		Duration: time.Duration(duration * float64(time.Second)),
		Seed:     s,
	}
	return cfg, rain.Viewport{Width: viewWidth, Height: viewHeight}
}

func newExperiment(name string, cfg *config.Config) *experiment.Experiment {
	simCfg, vp := headlessConfig(cfg.Seed)
	return experiment.New(experiment.Config{
		Name:     name,
		Field:    cfg,
		Step:     simCfg.Step,
		Duration: simCfg.Duration,
		Viewport: vp,
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	if menu {
		entries := make([]viz.Entry, 0, len(config.Presets))
		for _, n := range config.ListPresets() {
			p, err := config.GetPreset(n).Params()
			if err != nil {
				return fmt.Errorf("preset %s: %w", n, err)
			}
			entries = append(entries, viz.Entry{Name: n, Summary: config.PresetSummary(n), Params: p})
		}
		return viz.RunMenu(entries, cfg.Seed, frameRate)
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	return viz.Run(params, cfg.Seed, frameRate, name)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	simCfg, vp := headlessConfig(cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if numRuns > 1 {
		return runEnsemble(ctx, params, vp, simCfg)
	}

	exp := newExperiment(name, cfg)
	if err := exp.Setup(metrics.Defaults()); err != nil {
		return err
	}

	fmt.Printf("running %s for %.1fs (seed %d)...\n", name, duration, cfg.Seed)
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		fmt.Println("interrupted, reporting partial run")
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Println("\nmetrics:")
	if err := printMetrics(result.Metrics); err != nil {
		return err
	}

	if result.Frames > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(toFloats(result.Drops),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live drops per frame"),
		))
	}

	if noSave {
		return nil
	}

	runID, err := saveRun("", name, cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func saveRun(id, name string, cfg *config.Config, result *sim.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	var step time.Duration
	if len(result.Times) > 1 {
		step = result.Times[1] - result.Times[0]
	}
	var total time.Duration
	if n := len(result.Times); n > 0 {
		total = result.Times[n-1]
	}
	return st.Save(storage.RunMetadata{
		ID:       id,
		Preset:   name,
		Seed:     cfg.Seed,
		StepMS:   float64(step) / float64(time.Millisecond),
		Duration: total.Seconds(),
		Columns:  cfg.Columns,
		Policy:   cfg.Policy,
	}, result)
}

func runEnsemble(ctx context.Context, params rain.Params, vp rain.Viewport, simCfg sim.Config) error {
	e := sim.NewEnsemble(params, vp, metrics.Defaults, numRuns, simCfg.Seed)

	fmt.Printf("running %d seeds from %d...\n", numRuns, simCfg.Seed)
	start := time.Now()
	results, err := e.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	names := metricNames(results[0].Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SEED\tFRAMES")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d", r.Seed, r.Frames)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", r.Metrics[n])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	exp := newExperiment(name, cfg)
	if err := exp.Setup(metrics.Defaults()); err != nil {
		return err
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	snap := store.NewSnapshot(name, exp.Params().Palette.Mode, result)
	if outPath == "-" {
		if err := store.WriteJSON(os.Stdout, snap); err != nil {
			return err
		}
	} else {
		if err := store.ExportJSON(outPath, snap); err != nil {
			return err
		}
		fmt.Printf("wrote %d glyphs to %s\n", len(snap.Glyphs), outPath)
	}

	if svgPath != "" {
		svg := export.GlyphsToSVG(result.Final, result.Viewport, cfg.FontSize, "#000000")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgPath)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tSTEP\tSEED\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.0fms\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.StepMS,
			run.Seed,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Drops) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(series.Drops))

	drops, trailCounts := toFloats(series.Drops), toFloats(series.Trails)
	for _, p := range []struct {
		data    []float64
		caption string
	}{
		{drops, "live drops"},
		{trailCounts, "trails"},
	} {
		fmt.Println(asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		))
		fmt.Println()
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(drops, 800, 300, "#00ff41")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func benchField(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %.1fs at %.0fms steps\n\n", duration, stepMS)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMNS\tTRAILS\tFRAMES\tTIME\tFRAMES/SEC")

	for _, cols := range []int{14, 28, 56, 112} {
		for _, tr := range []int{1, 2, 4} {
			c := cfg.Clone()
			c.Columns, c.TrailsPerColumn = cols, tr
			exp := newExperiment("bench", c)
			if err := exp.Setup(nil); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
				cols, tr, result.Frames, elapsed, float64(result.Frames)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if scenario.Description != "" {
		fmt.Printf("%s: %s\n", scenario.Name, scenario.Description)
	}
	results, err := automation.RunScenario(ctx, scenario, metrics.Defaults, os.Stdout)
	if err != nil {
		return err
	}

	names := metricNames(results[0].Result.Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "\nSTEP\tFRAMES")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d", i+1, r.Result.Frames)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", r.Result.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range results {
		if r.Step.SaveAs == "" {
			continue
		}
		cfg, err := r.Step.FieldConfig()
		if err != nil {
			return err
		}
		cfg.Seed = r.Result.Seed
		label := r.Step.Preset
		if label == "" {
			label = "custom"
		}
		runID, err := saveRun(r.Step.SaveAs, label, cfg, r.Result)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	simCfg, _ := headlessConfig(cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Duration:  simCfg.Duration,
		Step:      simCfg.Step,
	}, metrics.Defaults, os.Stdout)
	if err != nil {
		return err
	}

	names := metricNames(results[0].Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s", strings.ToUpper(sweepParam))
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)
	for _, r := range results {
		fmt.Fprintf(w, "%.4g", r.ParamValue)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", r.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(gridAxes))
	ranges := make([][]float64, 0, len(gridAxes))
	for _, axis := range gridAxes {
		name, values, err := optim.ParseAxis(axis)
		if err != nil {
			return err
		}
		if err := cfg.Clone().SetNumeric(name, values[0]); err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	g := optim.NewGridSearch(names, ranges)
	if maximize {
		g.Maximize()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	build := func(params map[string]float64) (*experiment.Experiment, error) {
		c := cfg.Clone()
		for k, v := range params {
			if err := c.SetNumeric(k, v); err != nil {
				return nil, err
			}
		}
		exp := newExperiment("tune", c)
		if err := exp.Setup(metrics.Defaults()); err != nil {
			return nil, err
		}
		return exp, nil
	}

	best, value, trials, err := g.Search(ctx, build, metricName)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), metricName)
	for _, tr := range trials {
		for _, n := range names {
			fmt.Fprintf(w, "%.4g\t", tr.Params[n])
		}
		if tr.Err != nil {
			fmt.Fprintf(w, "error: %v\n", tr.Err)
		} else {
			fmt.Fprintf(w, "%.4f\n", tr.Value)
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nbest %s = %.4f at", metricName, value)
	for _, n := range names {
		fmt.Printf(" %s=%.4g", n, best[n])
	}
	fmt.Println()
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "wordrain.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func printMetrics(values map[string]float64) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range metricNames(values) {
		fmt.Fprintf(w, "  %s\t%.6f\n", name, values[name])
	}
	return w.Flush()
}

func metricNames(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
