// Package logging provides the wallet's logging facade.
//
// # Overview
//
// Every log call goes through Logger, which:
//   - Suppresses Debug, Info, Warn and Benchmark while a benchmark display is active
//   - Gates console output by an environment-derived threshold (production is silent)
//   - Formats lines as "[<ISO-8601 UTC>] [<LEVEL>] [<module>] <message>"
//   - Redacts sensitive keys and key=value fragments before anything leaves the process
//   - Forwards breadcrumbs and errors to a Reporter regardless of the threshold
//
// # Usage
//
// Create logger from config:
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg,
//	    logging.WithReporter(reporter),
//	    logging.WithBenchmarkMode(display))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
// Log with structured data:
//
//	logger.Info("Wallet", "unlocked", logging.FromAny(map[string]any{
//	    "account": "0xabc",
//	    "apiKey":  "sk-123",
//	}))
//
// Console output (production threshold permitting):
//
//	[2024-01-02T03:04:05.678Z] [INFO] [Wallet] unlocked	{"data": {"account": "0xabc", "apiKey": "[REDACTED]"}}
//
// # Levels
//
// Severity order is DEBUG < INFO < WARN < ERROR. BENCHMARK is an info-severity
// label. Development builds show everything; production builds show nothing on
// the console. The environment is fixed by the "production" build tag and may be
// overridden once at startup through configuration.
//
// Error is the only level that ignores the benchmark window.
//
// # Sanitization
//
// A map entry is redacted when its key contains token, password, secret or key,
// case-insensitively. Strings are scanned for "<keyword>: value" and
// "<keyword>=value" fragments. Sanitize never mutates its input and is
// idempotent. Debug data is written unsanitized and never forwarded.
//
// # Testing
//
// Use TestLogger for test assertions:
//
//	tl := logging.NewTestLogger()
//	tl.Info("Wallet", "test message", logging.Map{"password": logging.String("x")})
//	tl.AssertLogged(t, zapcore.InfoLevel, "test message")
//	tl.AssertNoSecrets(t)
//	reports := tl.Reporter.Reports()
//
// # Concurrency Safety
//
// Logger holds no mutable state; concurrency safety of the Console and
// Reporter is up to their implementations. ZapConsole is safe for concurrent use.
package logging
