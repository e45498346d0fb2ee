// internal/logging/levels.go
package logging

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/walletlog/internal/config"
)

// Level is a log severity. Higher values are more severe.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LevelNone sits above every real level. As a threshold it silences the console.
const LevelNone = LevelError + 1

// String returns the upper-case level name used in formatted messages.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	}
	return fmt.Sprintf("Level(%d)", int8(l))
}

// ParseLevel parses a level name, case-insensitively. "warning" is accepted for warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none":
		return LevelNone, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ThresholdFor returns the minimum console level for an environment:
// everything in development, nothing in production.
func ThresholdFor(env config.Environment) Level {
	if env.IsProduction() {
		return LevelNone
	}
	return LevelDebug
}
