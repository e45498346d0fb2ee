// internal/logging/reporter.go
package logging

// Reporter levels passed to Reporter.Report.
const (
	ReportLevelInfo    = "info"
	ReportLevelWarning = "warning"
	ReportLevelError   = "error"
)

// benchmarkReportPrefix marks benchmark breadcrumbs.
const benchmarkReportPrefix = "BENCHMARK: "

// Metadata accompanies every forwarded record. Data is always sanitized.
type Metadata struct {
	Module   string   `json:"module"`
	Message  string   `json:"message,omitempty"`
	Data     Value    `json:"data"`
	Duration *float64 `json:"duration,omitempty"`
}

// Reporter forwards records to an external error-reporting backend.
//
// Calls are fire-and-forget: implementations must return promptly and must not
// retain Data for mutation. A panic inside a Reporter is recovered by Logger.
type Reporter interface {
	// Report leaves a breadcrumb.
	Report(level, message string, md Metadata)
	// ReportError reports a real error.
	ReportError(err error, md Metadata)
}

// NopReporter discards everything. It is the default until a backend is wired in.
type NopReporter struct{}

func (NopReporter) Report(string, string, Metadata) {}
func (NopReporter) ReportError(error, Metadata)     {}

// guardedReporter keeps reporter panics from reaching the caller.
type guardedReporter struct {
	next    Reporter
	metrics *Metrics
}

func (g guardedReporter) Report(level, message string, md Metadata) {
	defer g.absorb()
	g.next.Report(level, message, md)
}

func (g guardedReporter) ReportError(err error, md Metadata) {
	defer g.absorb()
	g.next.ReportError(err, md)
}

func (g guardedReporter) absorb() {
	if r := recover(); r != nil {
		g.metrics.reporterPanic()
	}
}

var (
	_ Reporter = NopReporter{}
	_ Reporter = guardedReporter{}
)
