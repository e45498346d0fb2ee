package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/walletlog/internal/logging"
)

// zapReporter prints forwarded records as JSON lines so the reporter side of
// the facade is visible from a terminal.
type zapReporter struct {
	zap *zap.Logger
}

func newZapReporter(w zapcore.WriteSyncer) *zapReporter {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = zapcore.OmitKey
	encoderCfg.CallerKey = zapcore.OmitKey
	encoderCfg.StacktraceKey = zapcore.OmitKey
	encoderCfg.MessageKey = "kind"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), w, zapcore.DebugLevel)
	return &zapReporter{zap: zap.New(core).Named("reporter")}
}

func (r *zapReporter) Report(level, message string, md logging.Metadata) {
	fields := append([]zap.Field{
		zap.String("report_level", level),
		zap.String("message", message),
	}, metadataFields(md)...)
	r.zap.Info("breadcrumb", fields...)
}

func (r *zapReporter) ReportError(err error, md logging.Metadata) {
	fields := append([]zap.Field{
		zap.Error(err),
		zap.String("message", md.Message),
	}, metadataFields(md)...)
	r.zap.Error("error", fields...)
}

func metadataFields(md logging.Metadata) []zap.Field {
	fields := []zap.Field{
		zap.String("module", md.Module),
		logging.Field("data", md.Data),
	}
	if md.Duration != nil {
		fields = append(fields, zap.Float64("duration", *md.Duration))
	}
	return fields
}

var _ logging.Reporter = (*zapReporter)(nil)
