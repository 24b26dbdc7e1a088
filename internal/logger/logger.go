package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quotebook/internal/errors"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

// NewLogger creates a production logger writing JSON to stderr at the given
// level. An empty level means info.
func NewLogger(level string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "invalid log level %q", level)
		}
		lvl = parsed
	}

	config := zap.NewProductionConfig()
	// stdout carries the quotes themselves
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: zapLogger}, nil
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}
	return nil
}
