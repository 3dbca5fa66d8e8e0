package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/joeycumines/behaviorkit/internal/blackboard"
	"github.com/joeycumines/behaviorkit/internal/clock"
	"github.com/joeycumines/behaviorkit/internal/config"
	"github.com/joeycumines/behaviorkit/internal/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath  string
	interval    time.Duration
	maxTicks    int
	clockScale  float64
	logLevel    string
	logFormat   string
	logFile     string
	metricsAddr string
}

func newRunCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo patrol tree",
		Long: `Run drives the demo patrol tree: a guard that walks its waypoints, scans at
each one and chases any intruder it spots. The tree never finishes by itself;
it runs until --max-ticks is reached or the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPatrol(ctx, cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or ~/.behaviorkit/config.yaml)")
	flags.DurationVar(&opts.interval, "interval", 0, "tick interval (overrides tick.interval)")
	flags.IntVar(&opts.maxTicks, "max-ticks", 0, "stop after this many ticks, 0 for no limit (overrides tick.max)")
	flags.Float64Var(&opts.clockScale, "clock-scale", 0, "tree time speed relative to wall time (overrides clock.scale)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides log.format)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides log.file)")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides metrics.addr)")
	return cmd
}

// resolve loads the config file and applies explicitly set flags on top.
func (o *runOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFromPath(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Tick.Interval = o.interval
	}
	if flags.Changed("max-ticks") {
		cfg.Tick.Max = o.maxTicks
	}
	if flags.Changed("clock-scale") {
		cfg.Clock.Scale = o.clockScale
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPatrol(ctx context.Context, cfg *config.Config, opts runOptions, stdout, stderr io.Writer) error {
	lc, err := resolveLogConfig(opts.logFile, opts.logLevel, opts.logFormat, cfg)
	if err != nil {
		return err
	}
	if lc.logFile != nil {
		defer lc.logFile.Close()
	}
	logger := lc.logger(stderr)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := driver.NewMetrics(registry)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		srv, err := startMetricsServer(cfg.Metrics.Addr, registry, logger)
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		defer func() {
			if err := srv.shutdown(); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	bb := new(blackboard.Blackboard)
	treeClock := clock.Scaled(clock.Wall(), cfg.Clock.Scale)
	root := patrolTree(bb, treeClock, defaultPatrolSettings(), logger)

	runner, err := driver.New(root,
		driver.WithLogger(logger),
		driver.WithMetrics(metrics),
		driver.WithMaxTicks(cfg.Tick.Max),
	)
	if err != nil {
		return err
	}

	status, err := runner.Run(ctx, cfg.Tick.Interval)
	switch {
	case err == nil, errors.Is(err, driver.ErrMaxTicks), errors.Is(err, context.Canceled):
	default:
		return err
	}

	return writeSummary(stdout, runner, status.String(), bb)
}

func writeSummary(w io.Writer, runner *driver.Runner, status string, bb *blackboard.Blackboard) error {
	if _, err := fmt.Fprintf(w, "run %s: outcome=%s status=%s ticks=%d\n",
		runner.ID(), runner.Outcome(), status, runner.Ticks()); err != nil {
		return err
	}
	snapshot := bb.Snapshot()
	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		if _, err := fmt.Fprintf(w, "  %s: %v\n", k, snapshot[k]); err != nil {
			return err
		}
	}
	return nil
}
