package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/accelplot/internal/analysis"
	"github.com/san-kum/accelplot/internal/chart"
	"github.com/san-kum/accelplot/internal/config"
	"github.com/san-kum/accelplot/internal/export"
	"github.com/san-kum/accelplot/internal/gui"
	"github.com/san-kum/accelplot/internal/logging"
	"github.com/san-kum/accelplot/internal/recording"
	"github.com/san-kum/accelplot/internal/shell"
	"github.com/san-kum/accelplot/internal/tui"
	"github.com/san-kum/accelplot/internal/viz"
)

var (
	configFile      string
	dataFile        string
	keepInvalidTime bool
	logLevel        string
	logFile         string

	outPath   string
	outFormat string
	width     float64
	height    float64
	noColor   bool
	sparkLen  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "accelplot",
		Short:         "accelerometer data processor",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runGUI,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataFile, "file", config.DefaultFile, "accelerometer csv export")
	pf.BoolVar(&keepInvalidTime, "keep-invalid-time", false, "keep rows whose timestamp does not parse")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to a rotating file instead of stderr")

	guiCmd := &cobra.Command{
		Use:   "gui [file]",
		Short: "open the chart window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "chart shell in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&noColor, "no-color", false, "draw graphs without colors")

	plotCmd := &cobra.Command{
		Use:   "plot <kind> [file]",
		Short: "render one chart (x, y, z, all, fft-z)",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the chart to a .png, .svg, .csv or .json file (- for stdout)")
	plotCmd.Flags().StringVar(&outFormat, "format", "png", "format used with --out -")
	plotCmd.Flags().Float64Var(&width, "width", config.DefaultChartWidth, "image width in inches")
	plotCmd.Flags().Float64Var(&height, "height", config.DefaultChartHeight, "image height in inches")
	plotCmd.Flags().BoolVar(&noColor, "no-color", false, "draw terminal graphs without colors")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarize a recording",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInfo,
	}
	infoCmd.Flags().IntVar(&sparkLen, "spark", 40, "sparkline width")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list chart kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tBUTTON")
			for _, k := range chart.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, k.Label())
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config-init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "accelplot.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, plotCmd, infoCmd, kindsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "accelplot: %v\n", err)
		os.Exit(1)
	}
}

// overrides collects the persistent flags the user actually set.
func overrides(cmd *cobra.Command, args []string) config.Overrides {
	flags := cmd.Flags()
	o := config.Overrides{Args: args}
	if flags.Changed("file") {
		o.File = &dataFile
	}
	if flags.Changed("keep-invalid-time") {
		o.KeepInvalidTime = &keepInvalidTime
	}
	if flags.Changed("log-level") {
		o.LogLevel = &logLevel
	}
	if flags.Changed("log-file") {
		o.LogFile = &logFile
	}
	return o
}

// setup resolves the configuration, installs the logger and loads the
// recording.
func setup(cmd *cobra.Command, fileArg []string) (*config.Config, *recording.Recording, func() error, error) {
	cfg, err := config.Resolve(configFile, overrides(cmd, fileArg))
	if err != nil {
		return nil, nil, nil, err
	}

	log, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	rec, err := recording.Load(cfg.File,
		recording.WithKeepInvalidTime(cfg.KeepInvalidTime),
		recording.WithLogger(log),
	)
	if err != nil {
		closeLog()
		return nil, nil, nil, fmt.Errorf("load %s: %w", cfg.File, err)
	}
	log.Info("loaded recording", "path", cfg.File, "rows", rec.Len(), "dropped", rec.Dropped)
	return cfg, rec, closeLog, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, rec, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	gui.Run(shell.New(rec), cfg.Window)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, rec, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.RunInteractive(shell.New(rec), tui.Options{
		Title:   cfg.Window.Title,
		Width:   cfg.Terminal.Width,
		Height:  cfg.Terminal.Height,
		Colored: !noColor,
	})
}

func runPlot(cmd *cobra.Command, args []string) error {
	kind, err := chart.ParseKind(args[0])
	if err != nil {
		return err
	}
	format := outFormat
	switch {
	case outPath == "-":
		if format, err = export.Format("out." + outFormat); err != nil {
			return err
		}
	case outPath != "":
		if format, err = export.Format(outPath); err != nil {
			return err
		}
	}

	cfg, rec, closeLog, err := setup(cmd, args[1:])
	if err != nil {
		return err
	}
	defer closeLog()

	c, err := chart.Render(kind, rec)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(viz.Graph(c, cfg.Terminal.Width, cfg.Terminal.Height, !noColor))
		return nil
	}

	w, h := cfg.Export.Width, cfg.Export.Height
	if cmd.Flags().Changed("width") {
		w = width
	}
	if cmd.Flags().Changed("height") {
		h = height
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("image size must be positive, got %gx%g", w, h)
	}
	if outPath == "-" {
		return export.Write(c, os.Stdout, format, vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch)
	}
	if err := export.Save(c, outPath, vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%s)\n", outPath, c.Title)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, rec, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	s := analysis.Summarize(rec)

	fmt.Println(viz.TitleStyle.Render(cfg.File))
	fmt.Println(viz.Separator(50))

	row := func(label, value string) {
		fmt.Printf("  %s %s\n", viz.MetricLabel.Render(fmt.Sprintf("%-12s", label)), viz.MetricValue.Render(value))
	}
	row("samples", fmt.Sprintf("%d", s.Samples))
	row("dropped", fmt.Sprintf("%d", s.Dropped))
	if !rec.Start.IsZero() {
		row("start", rec.Start.Format(recording.TimeLayout))
	}
	row("duration", fmt.Sprintf("%.3f s", s.Duration))
	row("sample rate", fmt.Sprintf("%.2f Hz", s.SampleRate))
	row("z peak", fmt.Sprintf("%.3f Hz (%.4g G)", s.PeakFreq, s.PeakAmp))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  AXIS\tMIN\tMAX\tMEAN\tRMS\t")
	axes := []struct {
		name  string
		stats analysis.AxisStats
	}{
		{"x", s.X},
		{"y", s.Y},
		{"z", s.Z},
	}
	for _, a := range axes {
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			a.name, a.stats.Min, a.stats.Max, a.stats.Mean, a.stats.RMS,
			viz.SparklineChart(rec.Axis(a.name), sparkLen))
	}
	return w.Flush()
}
