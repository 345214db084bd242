// Package logger wraps the global zap logger used across themectl. Output
// defaults to a quiet console logger; file output rotates via lumberjack.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logging configuration.
type Config struct {
	Level  string     `mapstructure:"level" toml:"level,omitempty"`
	Output string     `mapstructure:"output" toml:"output,omitempty"`
	File   FileConfig `mapstructure:"file" toml:"file,omitempty"`
}

// FileConfig holds file-specific logging configuration.
type FileConfig struct {
	Path       string `mapstructure:"path" toml:"path,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb,omitempty"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups,omitempty"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days,omitempty"`
}

var logger *zap.Logger

func init() {
	// Replaced when Initialize is called; errors-only so library use of
	// the CLI stays quiet by default.
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	logger, _ = cfg.Build()
}

// Initialize sets up the global logger with the provided configuration.
func Initialize(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var cores []zapcore.Core
	switch cfg.Output {
	case "", "stdout", "console":
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))

	case "file":
		fileWriter, err := newFileWriter(cfg.File)
		if err != nil {
			// Fall back to stderr rather than failing the whole run.
			fmt.Fprintf(os.Stderr, "WARNING: failed to open log file, using stderr: %v\n", err)
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
		} else {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileWriter), level))
		}

	case "both":
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
		fileWriter, err := newFileWriter(cfg.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: failed to open log file, using stderr only: %v\n", err)
		} else {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileWriter), level))
		}

	default:
		return fmt.Errorf("invalid log output %q (must be 'stdout', 'file', or 'both')", cfg.Output)
	}

	logger = zap.New(zapcore.NewTee(cores...))
	return nil
}

func newFileWriter(cfg FileConfig) (*lumberjack.Logger, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("logging.file.path is required for file output")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown level: %s", level)
}

// Sync flushes any buffered log entries.
func Sync() error {
	if logger != nil {
		return logger.Sync()
	}
	return nil
}

// Debug logs a debug message with structured fields.
func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

// Info logs an info message with structured fields.
func Info(msg string, fields ...zap.Field) { logger.Info(msg, fields...) }

// Warn logs a warning message with structured fields.
func Warn(msg string, fields ...zap.Field) { logger.Warn(msg, fields...) }

// Error logs an error message with structured fields.
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// Field helpers re-exported from zap so callers need only this package.

// String creates a string field.
func String(key, val string) zap.Field { return zap.String(key, val) }

// Int creates an int field.
func Int(key string, val int) zap.Field { return zap.Int(key, val) }

// Float64 creates a float64 field.
func Float64(key string, val float64) zap.Field { return zap.Float64(key, val) }

// Bool creates a bool field.
func Bool(key string, val bool) zap.Field { return zap.Bool(key, val) }

// Err creates an error field.
func Err(err error) zap.Field { return zap.Error(err) }
