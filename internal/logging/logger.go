//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Portions copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package logging provides structured logging for retail-dashboard.
// Pipeline packages stay log-free; the CLI, server, exporter, and
// generator log stage progress through the event helpers here.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

// Config holds logging configuration. Pretty selects zerolog's console
// writer; otherwise events are emitted as JSON lines.
type Config struct {
	Level  string
	Pretty bool
}

// Init replaces the package logger. An unknown level falls back to
// info.
func Init(cfg Config) {
	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Debug returns a debug level event.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info returns an info level event.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn returns a warning level event.
func Warn() *zerolog.Event {
	return logger.Warn()
}

// Error returns an error level event.
func Error() *zerolog.Event {
	return logger.Error()
}

func init() {
	Init(Config{Level: "info", Pretty: true})
}
