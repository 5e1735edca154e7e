package observability

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapObserver emits events to a zap.Logger with the event type as message.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver falls back to zap.NewNop when logger is nil.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) OnEvent(_ context.Context, event Event) {
	ce := o.logger.Check(zapLevel(event.Level), string(event.Type))
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(event.Data)+1)
	fields = append(fields, zap.String("source", event.Source))
	for _, k := range sortedKeys(event.Data) {
		fields = append(fields, zap.Any(k, event.Data[k]))
	}
	ce.Write(fields...)
}

// Sync flushes buffered log entries.
func (o *ZapObserver) Sync() error {
	return o.logger.Sync()
}

func zapLevel(l Level) zapcore.Level {
	switch {
	case l <= 8:
		return zapcore.DebugLevel
	case l <= 12:
		return zapcore.InfoLevel
	case l <= 16:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// NewZapLogger builds a production JSON logger at the named level
// ("debug", "info", "warn", "error"; anything else is info).
func NewZapLogger(level string) (*zap.Logger, error) {
	var zl zapcore.Level
	switch level {
	case "debug":
		zl = zapcore.DebugLevel
	case "warn":
		zl = zapcore.WarnLevel
	case "error":
		zl = zapcore.ErrorLevel
	default:
		zl = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}
