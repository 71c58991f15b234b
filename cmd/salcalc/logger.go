package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/salcalc/internal/calculation"
)

// newLogger builds a zap logger writing to stderr so that reports on stdout
// stay machine readable
func newLogger(level, format string) (*zap.Logger, error) {
	if level == "" {
		level = "warn"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// zapLogger adapts a zap logger to calculation.Logger
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newCalculationLogger(l *zap.Logger) calculation.Logger {
	return zapLogger{sugar: l.Sugar()}
}

func (z zapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }
