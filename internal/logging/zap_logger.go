package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

// ZapLogger adapts zap.SugaredLogger to the gircheck.Logger interface.
// Verbose maps to zap's debug level.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger wraps an existing sugared logger. A nil logger yields a NullLogger.
func NewZapLogger(logger *zap.SugaredLogger) gircheck.Logger {
	if logger == nil {
		return NewNullLogger()
	}
	return &ZapLogger{logger: logger}
}

// NewJSONLogger builds a zap production logger writing JSON to stderr.
// The returned func flushes buffered entries.
func NewJSONLogger(verbose bool) (gircheck.Logger, func(), error) {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true

	zapLogger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}
	sync := func() { _ = zapLogger.Sync() }
	return &ZapLogger{logger: zapLogger.Sugar()}, sync, nil
}

// Verbose implements gircheck.Logger.Verbose using zap's Debugf.
func (z *ZapLogger) Verbose(format string, args ...interface{}) {
	z.logger.Debugf(format, args...)
}

// Info implements gircheck.Logger.Info using zap's Infof.
func (z *ZapLogger) Info(format string, args ...interface{}) {
	z.logger.Infof(format, args...)
}

// Warn implements gircheck.Logger.Warn using zap's Warnf.
func (z *ZapLogger) Warn(format string, args ...interface{}) {
	z.logger.Warnf(format, args...)
}

// Error implements gircheck.Logger.Error using zap's Errorf.
func (z *ZapLogger) Error(format string, args ...interface{}) {
	z.logger.Errorf(format, args...)
}
