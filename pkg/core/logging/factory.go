// File: factory.go
// Title: Logger Factory
// Description: Builds the run logger from the run configuration: threshold,
//              format, output and the run id as correlation id.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-18
//
// Change History:
// - 2025-12-06 v0.1.0: Factory functions with remote log forwarding
// - 2026-10-18 v0.2.0: Configuration driven factory for template runs

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the logger
	Name string

	// Threshold (off, fatal, error, warn, info, debug or 0..5)
	Level string

	// Output format (plain, text, console, json)
	Format string

	// Output defaults to stderr
	Output io.Writer

	// RunID is attached as correlation id if not empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatPlain.String(),
	}
}

// NewLogger creates a logger. Invalid level or format values fall back to
// the defaults; config.Validate reports them beforehand.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatPlain
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
	if cfg.RunID != "" {
		logger = logger.WithCorrelationID(cfg.RunID)
	}
	return logger
}

// FromConfig creates the logger of a run described by cfg
func FromConfig(cfg *config.Config, output io.Writer, runID string) *mdwlog.Logger {
	return NewLogger(LoggerConfig{
		Name:   cfg.General.Application,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Output: output,
		RunID:  runID,
	})
}
