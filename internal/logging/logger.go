// internal/logging/logger.go
package logging

import (
	"fmt"
	"time"
)

// BenchmarkMode reports whether a performance-measurement window is active.
// It is queried on every call, never cached.
type BenchmarkMode interface {
	IsOnScreenDisplayEnabled() bool
}

type benchmarkOff struct{}

func (benchmarkOff) IsOnScreenDisplayEnabled() bool { return false }

// Logger is the logging facade. It gates, formats, sanitizes and forwards.
// It holds no mutable state and is safe for concurrent use.
type Logger struct {
	console   Console
	reporter  Reporter
	bench     BenchmarkMode
	threshold Level
	now       func() time.Time
	metrics   *Metrics
}

// Option configures a Logger.
type Option func(*Logger)

// WithConsole replaces the zap console built from config.
func WithConsole(c Console) Option {
	return func(l *Logger) {
		if c != nil {
			l.console = c
		}
	}
}

// WithReporter sets the external error-reporting collaborator.
func WithReporter(r Reporter) Option {
	return func(l *Logger) {
		if r != nil {
			l.reporter = r
		}
	}
}

// WithBenchmarkMode sets the benchmark-display collaborator.
func WithBenchmarkMode(b BenchmarkMode) Option {
	return func(l *Logger) {
		if b != nil {
			l.bench = b
		}
	}
}

// WithThreshold overrides the environment-derived console threshold.
func WithThreshold(level Level) Option {
	return func(l *Logger) {
		l.threshold = level
	}
}

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithMetrics records gating and forwarding counters.
func WithMetrics(m *Metrics) Option {
	return func(l *Logger) {
		l.metrics = m
	}
}

// NewLogger creates a logger from config. A nil cfg uses NewDefaultConfig.
func NewLogger(cfg *Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	env, _ := cfg.environment()

	l := &Logger{
		reporter:  NopReporter{},
		bench:     benchmarkOff{},
		threshold: ThresholdFor(env),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.console == nil {
		l.console = NewConsole(cfg, cfg.writer())
	}
	l.reporter = guardedReporter{next: l.reporter, metrics: l.metrics}

	return l, nil
}

// Debug logs development detail. Data is written unsanitized and never forwarded.
func (l *Logger) Debug(module, message string, data Value) {
	if l.benchmarking("debug") {
		return
	}
	if l.admit(LevelDebug, "debug") {
		l.console.Debug(l.format(LevelDebug.String(), module, message), data)
	}
}

// Info logs general information and leaves an "info" breadcrumb.
func (l *Logger) Info(module, message string, data Value) {
	if l.benchmarking("info") {
		return
	}
	sanitized := Sanitize(data)
	if l.admit(LevelInfo, "info") {
		l.console.Info(l.format(LevelInfo.String(), module, message), sanitized)
	}
	l.breadcrumb(ReportLevelInfo, message, Metadata{Module: module, Data: sanitized})
}

// Warn logs a non-breaking problem and leaves a "warning" breadcrumb.
func (l *Logger) Warn(module, message string, data Value) {
	if l.benchmarking("warn") {
		return
	}
	sanitized := Sanitize(data)
	if l.admit(LevelWarn, "warn") {
		l.console.Warn(l.format(LevelWarn.String(), module, message), sanitized)
	}
	l.breadcrumb(ReportLevelWarning, message, Metadata{Module: module, Data: sanitized})
}

// Error logs a failure. Unlike the other levels it ignores the benchmark
// window: real errors surface even while measuring. With a non-nil err the
// error is reported; otherwise an "error" breadcrumb is left.
func (l *Logger) Error(module, message string, err error, data Value) {
	sanitized := Sanitize(data)
	if l.admit(LevelError, "error") {
		l.console.Error(l.format(LevelError.String(), module, message), err, sanitized)
	}

	if err != nil {
		l.reporter.ReportError(err, Metadata{Module: module, Message: message, Data: sanitized})
		l.metrics.report(kindError)
		return
	}
	l.breadcrumb(ReportLevelError, message, Metadata{Module: module, Data: sanitized})
}

// Benchmark logs a timing result at info severity.
func (l *Logger) Benchmark(module, message string, durationMs float64, data Value) {
	if l.benchmarking("benchmark") {
		return
	}
	sanitized := Sanitize(data)
	if l.admit(LevelInfo, "benchmark") {
		l.console.Info(l.format(benchmarkLabel, module, BenchmarkMessage(message, durationMs)), sanitized)
	}
	l.breadcrumb(ReportLevelInfo, benchmarkReportPrefix+message, Metadata{
		Module:   module,
		Data:     sanitized,
		Duration: &durationMs,
	})
}

// Measure runs fn and logs its duration through Benchmark.
func (l *Logger) Measure(module, message string, data Value, fn func()) {
	start := l.now()
	fn()
	elapsed := l.now().Sub(start)
	l.Benchmark(module, message, float64(elapsed)/float64(time.Millisecond), data)
}

// Module returns a logger bound to one module name.
func (l *Logger) Module(name string) *ModuleLogger {
	return &ModuleLogger{logger: l, module: name}
}

// Enabled reports whether level reaches the console under the threshold.
// The benchmark window is not considered.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.threshold
}

// Threshold returns the minimum console level.
func (l *Logger) Threshold() Level {
	return l.threshold
}

// Sync flushes the console if it buffers.
func (l *Logger) Sync() error {
	if s, ok := l.console.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (l *Logger) benchmarking(label string) bool {
	if l.bench.IsOnScreenDisplayEnabled() {
		l.metrics.suppressed(label, reasonBenchmark)
		return true
	}
	return false
}

func (l *Logger) admit(level Level, label string) bool {
	if l.Enabled(level) {
		l.metrics.entry(label)
		return true
	}
	l.metrics.suppressed(label, reasonThreshold)
	return false
}

func (l *Logger) breadcrumb(level, message string, md Metadata) {
	l.reporter.Report(level, message, md)
	l.metrics.report(kindBreadcrumb)
}

func (l *Logger) format(label, module, message string) string {
	return FormatMessage(l.now(), label, module, message)
}

// ModuleLogger is a Logger with the module argument bound.
type ModuleLogger struct {
	logger *Logger
	module string
}

func (m *ModuleLogger) Debug(message string, data Value) {
	m.logger.Debug(m.module, message, data)
}

func (m *ModuleLogger) Info(message string, data Value) {
	m.logger.Info(m.module, message, data)
}

func (m *ModuleLogger) Warn(message string, data Value) {
	m.logger.Warn(m.module, message, data)
}

func (m *ModuleLogger) Error(message string, err error, data Value) {
	m.logger.Error(m.module, message, err, data)
}

func (m *ModuleLogger) Benchmark(message string, durationMs float64, data Value) {
	m.logger.Benchmark(m.module, message, durationMs, data)
}

func (m *ModuleLogger) Measure(message string, data Value, fn func()) {
	m.logger.Measure(m.module, message, data, fn)
}

// Name returns the bound module name.
func (m *ModuleLogger) Name() string {
	return m.module
}
