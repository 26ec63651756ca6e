// Package cli implements the hue-invert command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/hue-invert/internal/config"
	"github.com/ironsheep/hue-invert/internal/display"
	"github.com/ironsheep/hue-invert/internal/imaging"
	"github.com/ironsheep/hue-invert/internal/logger"
)

// Version information, set by main from ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// newViewer creates the viewer used when no output path is given.
var newViewer = display.New

// SetVersionInfo records build metadata for the version command and the MCP
// handshake.
func SetVersionInfo(v, built, commit string) {
	version, buildTime, gitCommit = v, built, commit
}

// app carries state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config

	// root command flags
	saveAnim bool
	output   string
	radius   float64
	step     float64
	interval time.Duration
	wrap     bool
	encoding string
	workers  int
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hue-invert IMAGE [CENTER RADIUS | --save-anim [OUTPUT]]",
		Short: "Invert a range of hues in an image",
		Long: `hue-invert rotates by 180 degrees every hue within RADIUS degrees of CENTER,
leaving saturation and value untouched, and shows the original and the result
side by side.

With --save-anim it instead renders an animation that slides a fixed-radius
window across the whole hue circle. The animation is written to OUTPUT as a
GIF, or displayed when OUTPUT is omitted.`,
		Example: `  hue-invert flower.png 0 30
  hue-invert flower.png 120 20 -o comparison.png
  hue-invert flower.png --save-anim sweep.gif
  hue-invert flower.png -a --radius 30 --step 5 --wrap`,
		Args:              a.rootArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $HOME/.hue-invert/config.toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	f := rootCmd.Flags()
	f.BoolVarP(&a.saveAnim, "save-anim", "a", false, "render the hue sweep animation")
	f.StringVarP(&a.output, "output", "o", "", "write the side-by-side comparison to this file instead of displaying it")
	f.Float64Var(&a.radius, "radius", imaging.DefaultSweepRadius, "sweep window radius in degrees")
	f.Float64Var(&a.step, "step", imaging.DefaultSweepStep, "sweep center advance per frame in degrees")
	f.DurationVar(&a.interval, "interval", imaging.DefaultFrameInterval, "sweep frame interval")
	f.BoolVar(&a.wrap, "wrap", false, "wrap hue windows across 0/360 instead of clamping them")
	f.StringVar(&a.encoding, "encoding", "", "source sample encoding: 8bit or 16bit (default from config)")
	f.IntVar(&a.workers, "workers", 0, "frames rendered in parallel (0 = one per CPU)")

	rootCmd.AddCommand(
		newSampleCmd(),
		newHuesCmd(),
		newInfoCmd(),
		newMCPCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup applies --verbose and loads the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		logger.SetVerbose(true)
	}

	path := a.configPath
	load := config.Load
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		load = config.LoadOptional
	}

	cfg, err := load(path)
	if err != nil {
		return err
	}
	logger.Debug("config: %s", path)
	a.cfg = cfg
	return nil
}

func (a *app) rootArgs(cmd *cobra.Command, args []string) error {
	if a.saveAnim {
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: usage: %s IMAGE --save-anim [OUTPUT]", imaging.ErrInvalidArguments, cmd.Root().Name())
		}
		return nil
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: %s IMAGE CENTER RADIUS (got %d arguments)", imaging.ErrInvalidArguments, cmd.Root().Name(), len(args))
	}
	return nil
}

// windowMode returns WindowWrap if --wrap was given, otherwise the configured mode.
func (a *app) windowMode(cmd *cobra.Command) (imaging.WindowMode, error) {
	if cmd.Flags().Changed("wrap") {
		if a.wrap {
			return imaging.WindowWrap, nil
		}
		return imaging.WindowClamp, nil
	}
	return a.cfg.WindowMode()
}

// sampleEncoding returns --encoding if given, otherwise the configured encoding.
func (a *app) sampleEncoding(cmd *cobra.Command) (imaging.SampleEncoding, error) {
	if cmd.Flags().Changed("encoding") {
		return imaging.ParseSampleEncoding(a.encoding)
	}
	return a.cfg.SampleEncoding()
}

// sweep builds the configured sweep with command line overrides applied.
func (a *app) sweep(cmd *cobra.Command) (imaging.Sweep, error) {
	s, err := a.cfg.SweepSpec()
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		s.Radius = a.radius
	}
	if flags.Changed("step") {
		s.Step = a.step
	}
	if flags.Changed("interval") {
		s.Interval = a.interval
	}
	if s.Mode, err = a.windowMode(cmd); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (a *app) workerCount(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("workers") {
		return a.cfg.Render.Workers, nil
	}
	if a.workers < 0 {
		return 0, fmt.Errorf("%w: --workers must not be negative", imaging.ErrInvalidArguments)
	}
	return a.workers, nil
}
