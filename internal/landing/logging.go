package landing

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

// newLogger builds a production zap logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("zap init: %w", err)
	}
	return logger, nil
}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

func loggerFromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok && logger != nil {
			return logger
		}
	}
	return fallback
}

// zapValidationLogger reports rejected payment links as warnings; they are
// recoverable and never shown to the visitor.
type zapValidationLogger struct {
	logger *zap.Logger
}

func (validationLogger zapValidationLogger) LogValidation(ctx context.Context, entry checkout.ValidationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("subject", entry.Subject),
		zap.String("raw", entry.Raw),
		zap.Error(entry.Error),
	}
	var operationErr checkout.OperationError
	if errors.As(entry.Error, &operationErr) {
		fields = append(fields,
			zap.String("error_subject", operationErr.Subject()),
			zap.String("error_code", operationErr.Code()),
		)
	}
	loggerFromContext(ctx, validationLogger.logger).Warn("payment request rejected", fields...)
}

// validationLoggers fans one validation event out to several sinks.
type validationLoggers []checkout.ValidationLogger

func (loggers validationLoggers) LogValidation(ctx context.Context, entry checkout.ValidationLog) {
	for _, logger := range loggers {
		if logger != nil {
			logger.LogValidation(ctx, entry)
		}
	}
}
