package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/walletlog/internal/benchmark"
	"github.com/fyrsmithlabs/walletlog/internal/config"
	"github.com/fyrsmithlabs/walletlog/internal/logging"
)

const levelBenchmark = "benchmark"

// emitOptions holds flags for the emit command.
type emitOptions struct {
	root *rootOptions

	level            string
	module           string
	message          string
	data             string
	durationMs       float64
	errText          string
	benchmarkDisplay bool
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	opts := &emitOptions{root: root}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Push one record through the logging facade",
		Long: `Push one record through a facade built from configuration.

The console line goes to the configured output. Records forwarded to the
error reporter are printed to stderr as JSON lines. When metrics are
enabled the counters are printed to stderr afterwards.

Examples:
  # Info with structured data
  walletlog emit --level info --module Auth --message "login ok" --data '{"user":"bob","password":"x"}'

  # Error with a cause, during a benchmark window
  walletlog emit --level error --module Net --message timeout --error "dial failed" --benchmark-display

  # Benchmark result
  walletlog emit --level benchmark --module Sync --message batch --duration 12.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmit(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.level, "level", "info", "debug, info, warn, error or benchmark")
	flags.StringVar(&opts.module, "module", "", "module name")
	flags.StringVar(&opts.message, "message", "", "log message")
	flags.StringVar(&opts.data, "data", "", "structured data as JSON")
	flags.Float64Var(&opts.durationMs, "duration", 0, "duration in milliseconds (benchmark only)")
	flags.StringVar(&opts.errText, "error", "", "error text (error only)")
	flags.BoolVar(&opts.benchmarkDisplay, "benchmark-display", false, "simulate an active benchmark display")
	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func runEmit(cmd *cobra.Command, opts *emitOptions) error {
	cfg, err := config.LoadWithFile(opts.root.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var data logging.Value
	if opts.data != "" {
		data, err = logging.ParseJSON([]byte(opts.data))
		if err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
	}

	level := strings.ToLower(strings.TrimSpace(opts.level))
	var parsed logging.Level
	if level != levelBenchmark {
		parsed, err = logging.ParseLevel(level)
		if err != nil || parsed == logging.LevelNone {
			return fmt.Errorf("invalid --level %q: must be debug, info, warn, error or benchmark", opts.level)
		}
	}

	logCfg := logging.FromAppConfig(cfg)
	out := cmd.OutOrStdout()
	if logCfg.Output == "stderr" {
		out = cmd.ErrOrStderr()
	}

	var registry *prometheus.Registry
	options := []logging.Option{
		logging.WithConsole(logging.NewConsole(logCfg, out)),
		logging.WithReporter(newZapReporter(zapcore.AddSync(cmd.ErrOrStderr()))),
		logging.WithBenchmarkMode(benchmark.NewDisplay(opts.benchmarkDisplay)),
	}
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		options = append(options, logging.WithMetrics(logging.NewMetrics(registry, cfg.Metrics.Namespace)))
	}

	logger, err := logging.NewLogger(logCfg, options...)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	mod := logger.Module(opts.module)
	switch {
	case level == levelBenchmark:
		mod.Benchmark(opts.message, opts.durationMs, data)
	case parsed == logging.LevelDebug:
		mod.Debug(opts.message, data)
	case parsed == logging.LevelInfo:
		mod.Info(opts.message, data)
	case parsed == logging.LevelWarn:
		mod.Warn(opts.message, data)
	case parsed == logging.LevelError:
		var cause error
		if opts.errText != "" {
			cause = errors.New(opts.errText)
		}
		mod.Error(opts.message, cause, data)
	}

	if err := logger.Sync(); err != nil {
		return fmt.Errorf("failed to flush console: %w", err)
	}

	if registry != nil {
		return writeMetrics(cmd.ErrOrStderr(), registry)
	}
	return nil
}

// writeMetrics prints gathered counters in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
