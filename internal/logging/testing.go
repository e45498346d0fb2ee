// internal/logging/testing.go
package logging

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fyrsmithlabs/walletlog/internal/benchmark"
)

// TestTime is the fixed clock reading used by NewTestLogger.
var TestTime = time.Date(2024, time.January, 2, 3, 4, 5, 678_000_000, time.UTC)

// TestLogger wraps Logger with test observation capabilities.
//
// Defaults: development threshold, fixed clock at TestTime, benchmark display
// off, every console write observed, every forwarded record recorded.
type TestLogger struct {
	*Logger
	observed *observer.ObservedLogs

	Reporter *RecordingReporter
	Display  *benchmark.Display
}

// NewTestLogger creates a logger for testing with full observation.
// opts are applied after the defaults and may override them.
func NewTestLogger(opts ...Option) *TestLogger {
	core, observed := observer.New(zapcore.DebugLevel)
	rec := &RecordingReporter{}
	display := benchmark.NewDisplay(false)

	base := []Option{
		WithConsole(NewZapConsole(zap.New(core))),
		WithReporter(rec),
		WithBenchmarkMode(display),
		WithThreshold(LevelDebug),
		WithClock(func() time.Time { return TestTime }),
	}

	l, err := NewLogger(NewDefaultConfig(), append(base, opts...)...)
	if err != nil {
		// NewDefaultConfig always validates.
		panic("logging: " + err.Error())
	}

	return &TestLogger{
		Logger:   l,
		observed: observed,
		Reporter: rec,
		Display:  display,
	}
}

// All returns all console entries.
func (t *TestLogger) All() []observer.LoggedEntry {
	return t.observed.All()
}

// FilterMessage returns console entries matching message substring.
func (t *TestLogger) FilterMessage(msg string) *observer.ObservedLogs {
	return t.observed.FilterMessageSnippet(msg)
}

// Reset clears console entries and recorded reports.
func (t *TestLogger) Reset() {
	t.observed.TakeAll()
	t.Reporter.Reset()
}

// AssertLogged verifies a console entry at level containing message was written.
func (t *TestLogger) AssertLogged(tb testing.TB, level zapcore.Level, msgContains string) {
	tb.Helper()
	for _, entry := range t.observed.All() {
		if entry.Level == level && strings.Contains(entry.Message, msgContains) {
			return
		}
	}
	tb.Errorf("expected log at %v containing %q, logs: %+v", level, msgContains, t.observed.All())
}

// AssertNotLogged verifies no console entry at level containing message was written.
func (t *TestLogger) AssertNotLogged(tb testing.TB, level zapcore.Level, msgContains string) {
	tb.Helper()
	for _, entry := range t.observed.All() {
		if entry.Level == level && strings.Contains(entry.Message, msgContains) {
			tb.Errorf("unexpected log at %v containing %q", level, msgContains)
		}
	}
}

// AssertSilent verifies nothing reached the console or the reporter.
func (t *TestLogger) AssertSilent(tb testing.TB) {
	tb.Helper()
	if n := t.observed.Len(); n != 0 {
		tb.Errorf("expected no console writes, got %d: %+v", n, t.observed.All())
	}
	if reports := t.Reporter.Reports(); len(reports) != 0 {
		tb.Errorf("expected no reports, got %d: %+v", len(reports), reports)
	}
}

// AssertNoSecrets verifies no sensitive map entry reached the console unredacted.
// Debug entries are skipped: debug data is deliberately written as given.
func (t *TestLogger) AssertNoSecrets(tb testing.TB) {
	tb.Helper()
	for _, entry := range t.observed.All() {
		if entry.Level == zapcore.DebugLevel {
			continue
		}
		if path, ok := findSecret(DataOf(entry), "data"); ok {
			tb.Errorf("sensitive value not redacted at %s in %q", path, entry.Message)
		}
	}
}

func findSecret(v Value, path string) (string, bool) {
	switch x := v.(type) {
	case Map:
		for k, e := range x {
			if IsSensitiveKey(k) && e != String(Redacted) {
				return path + "." + k, true
			}
			if p, ok := findSecret(e, path+"."+k); ok {
				return p, true
			}
		}
	case List:
		for _, e := range x {
			if p, ok := findSecret(e, path+"[]"); ok {
				return p, true
			}
		}
	}
	return "", false
}

// DataOf extracts the "data" field of a console entry, or nil if absent.
func DataOf(entry observer.LoggedEntry) Value {
	for _, f := range entry.Context {
		if f.Key != "data" {
			continue
		}
		switch f.Type {
		case zapcore.ObjectMarshalerType, zapcore.ArrayMarshalerType:
			if v, ok := f.Interface.(Value); ok {
				return v
			}
		case zapcore.StringType:
			return String(f.String)
		case zapcore.BoolType:
			return Bool(f.Integer == 1)
		case zapcore.Float64Type:
			return Number(math.Float64frombits(uint64(f.Integer)))
		case zapcore.ReflectType:
			return Null{}
		}
	}
	return nil
}

// ErrorOf extracts the "error" field of a console entry, or nil if absent.
func ErrorOf(entry observer.LoggedEntry) error {
	for _, f := range entry.Context {
		if f.Type == zapcore.ErrorType {
			if err, ok := f.Interface.(error); ok {
				return err
			}
		}
	}
	return nil
}

// Report is one call recorded by RecordingReporter.
type Report struct {
	// Level is empty for ReportError calls.
	Level    string
	Message  string
	Err      error
	Metadata Metadata
}

// RecordingReporter records every call. Safe for concurrent use.
type RecordingReporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report implements Reporter.
func (r *RecordingReporter) Report(level, message string, md Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Level: level, Message: message, Metadata: md})
}

// ReportError implements Reporter.
func (r *RecordingReporter) ReportError(err error, md Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Message: md.Message, Err: err, Metadata: md})
}

// Reports returns a copy of the recorded calls.
func (r *RecordingReporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Reset clears recorded calls.
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = nil
}

var _ Reporter = (*RecordingReporter)(nil)
