// internal/logging/console.go
package logging

import (
	"errors"
	"io"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Console is the sink formatted messages are written to.
type Console interface {
	Debug(msg string, data Value)
	Info(msg string, data Value)
	Warn(msg string, data Value)
	Error(msg string, err error, data Value)
}

// ZapConsole writes to a zap logger. Data is attached as the "data" field and
// errors as the "error" field.
type ZapConsole struct {
	zap *zap.Logger
}

// NewZapConsole wraps an existing zap logger.
func NewZapConsole(z *zap.Logger) *ZapConsole {
	return &ZapConsole{zap: z}
}

// NewConsole builds the sink described by cfg, writing to w.
// The core admits every level; gating belongs to Logger.
func NewConsole(cfg *Config, w io.Writer) *ZapConsole {
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), zapcore.DebugLevel)
	return NewZapConsole(zap.New(core))
}

// newEncoder creates a JSON or console encoder carrying only the message and
// fields; timestamp and level are already part of the formatted message.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = zapcore.OmitKey
	encoderCfg.LevelKey = zapcore.OmitKey
	encoderCfg.NameKey = zapcore.OmitKey
	encoderCfg.CallerKey = zapcore.OmitKey
	encoderCfg.StacktraceKey = zapcore.OmitKey

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}

func (c *ZapConsole) Debug(msg string, data Value) {
	c.zap.Debug(msg, Field("data", data))
}

func (c *ZapConsole) Info(msg string, data Value) {
	c.zap.Info(msg, Field("data", data))
}

func (c *ZapConsole) Warn(msg string, data Value) {
	c.zap.Warn(msg, Field("data", data))
}

func (c *ZapConsole) Error(msg string, err error, data Value) {
	c.zap.Error(msg, zap.Error(err), Field("data", data))
}

// Sync flushes buffered entries. Harmless stdout/stderr sync errors are ignored.
func (c *ZapConsole) Sync() error {
	err := c.zap.Sync()
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

// Underlying returns the underlying zap.Logger.
func (c *ZapConsole) Underlying() *zap.Logger {
	return c.zap
}

// isStdoutSyncError checks if error is harmless stdout/stderr sync error.
// On Linux, syncing stdout/stderr returns EINVAL or ENOTTY which are safe to ignore.
func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}

var _ Console = (*ZapConsole)(nil)
