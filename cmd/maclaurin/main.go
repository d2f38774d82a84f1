package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/maclaurin/internal/cliconfig"
	"github.com/bft-labs/maclaurin/internal/menu"
	"github.com/bft-labs/maclaurin/internal/metrics"
	"github.com/bft-labs/maclaurin/internal/watch"
	mlog "github.com/bft-labs/maclaurin/pkg/log"
)

const longHelp = `Approximate cos(x), e^x - 1 and sqrt(1 - x) with truncated Maclaurin series.

Without a subcommand an interactive menu is started. Settings are read from
$HOME/.maclaurin/config.toml (or --config), then MACLAURIN_* environment
variables, then flags.

Domains:
  cos(x)        any real x
  e^x - 1       -1 < x < 1
  sqrt(1 - x)   -1 < x <= 1`

var exampleUsage = strings.TrimSpace(`
  maclaurin
  maclaurin --iterations 20 --trace
  maclaurin eval cos 3.14159
  maclaurin eval -n 5 expm1 0.5
  maclaurin eval cos -1
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries what every command needs after configuration is resolved.
type app struct {
	cfg     cliconfig.Config
	base    cliconfig.Config
	cfgPath string
	changed map[string]bool
	logger  *mlog.ZerologAdapter
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "maclaurin",
		Short:         "Approximate elementary functions with Maclaurin series",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context(), stdin, stdout)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.maclaurin/config.toml)")
	pf.IntVarP(&a.cfg.Iterations, "iterations", "n", a.cfg.Iterations, "number of series terms to sum")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.cfg.Trace, "trace", a.cfg.Trace, "print every term and partial sum")

	root.Flags().BoolVar(&a.cfg.Watch, "watch", a.cfg.Watch, "reload iterations when the config file changes")
	root.Flags().BoolVar(&a.cfg.Stats, "stats", a.cfg.Stats, "print session statistics on exit")

	root.AddCommand(newEvalCmd(a))
	return root
}

func (a *app) configure(cmd *cobra.Command, stderr io.Writer) error {
	if a.cfgPath == "" {
		a.cfgPath = cliconfig.DefaultConfigPath()
	}

	a.changed = map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { a.changed[f.Name] = true })

	// Flag values are already in cfg; keep them as the layering base for reloads.
	a.base = a.cfg
	if err := cliconfig.Load(&a.cfg, a.cfgPath, a.changed); err != nil {
		return err
	}

	lvl, err := mlog.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = mlog.NewZerologAdapter(stderr, lvl)
	a.logger.Debug("configuration", mlog.Any("config", a.cfg), mlog.String("path", a.cfgPath))
	return nil
}

func (a *app) runMenu(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	iterations := watch.NewIterations(a.cfg.Iterations)
	if a.cfg.Watch {
		if err := a.startWatcher(ctx, iterations); err != nil {
			a.logger.Warn("config watching disabled", mlog.Err(err))
		}
	}

	collector := metrics.New()
	m := menu.New(stdin, stdout,
		menu.WithIterations(iterations),
		menu.WithLogger(a.logger),
		menu.WithRecorder(collector),
		menu.WithTrace(a.cfg.Trace),
	)

	runErr := m.Run(ctx)

	if a.cfg.Stats {
		if err := collector.WriteSummary(stdout); err != nil {
			a.logger.Error("write statistics", mlog.Err(err))
		}
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}

func (a *app) startWatcher(ctx context.Context, iterations *watch.Iterations) error {
	if a.cfgPath == "" {
		return errors.New("no config path")
	}
	w, err := watch.New(a.cfgPath, a.base, a.changed, iterations, a.logger)
	if err != nil {
		return err
	}
	go w.Run(ctx)
	a.logger.Info("watching config", mlog.String("path", a.cfgPath))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("maclaurin")
		stop()
		os.Exit(1)
	}
}
