// Package logging provides structured logging for the curvebootstrap CLI.
//
// The bootstrap core itself stays silent per its error-handling policy (no
// logging of numeric issues); this package is wired only at the CLI
// boundary to report which silent fallbacks fired.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       false,
		FilePath:   filepath.Join(home, ".config", "curvebootstrap", "logs", "curvebootstrap.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		if logDir := filepath.Dir(cfg.FilePath); logDir != "" {
			if err := os.MkdirAll(logDir, 0o755); err == nil {
				writers = append(writers, &lumberjack.Logger{
					Filename:   cfg.FilePath,
					MaxSize:    cfg.MaxSize,
					MaxBackups: cfg.MaxBackups,
					MaxAge:     cfg.MaxAge,
					Compress:   true,
				})
			}
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFallback records that the core silently applied one of its fallback
// policies (unknown currency -> USD, unknown method -> linear). The core
// itself never emits this; only the CLI, which knows what the caller asked
// for before the fallback took effect.
func LogFallback(logger zerolog.Logger, kind, requested, used string) {
	logger.Debug().
		Str("event", "fallback").
		Str("kind", kind).
		Str("requested", requested).
		Str("used", used).
		Msg("core applied a silent fallback")
}
