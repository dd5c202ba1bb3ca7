// File: level.go
// Title: Log Level Definitions
// Description: Defines the verbosity levels OFF, FATAL, ERROR, WARN, INFO and
//              DEBUG with their integer codes and an explicit rank table used
//              for threshold comparisons.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Verbosity ordering with explicit rank table and integer codes

package log

import (
	"strconv"
	"strings"
)

// Level represents the verbosity level of a log message or of a threshold.
// The numeric value is the level's integer code (0..5).
type Level int

const (
	// LevelOff disables all output when used as threshold
	LevelOff Level = 0

	// LevelFatal is for conditions that end the run
	LevelFatal Level = 1

	// LevelError is for errors; the run continues but fails
	LevelError Level = 2

	// LevelWarn is for tolerated problems
	LevelWarn Level = 3

	// LevelInfo is for informative output (default threshold)
	LevelInfo Level = 4

	// LevelDebug is the most verbose level
	LevelDebug Level = 5
)

type levelSpec struct {
	rank   int
	name   string
	short  string
	prefix string
}

// levels is the rank table. Ordering decisions use rank only, never the
// numeric value of the constant.
var levels = map[Level]levelSpec{
	LevelOff:   {rank: 0, name: "off", short: "OFF"},
	LevelFatal: {rank: 1, name: "fatal", short: "FTL", prefix: "FATAL: "},
	LevelError: {rank: 2, name: "error", short: "ERR", prefix: "ERROR: "},
	LevelWarn:  {rank: 3, name: "warn", short: "WRN", prefix: "WARN: "},
	LevelInfo:  {rank: 4, name: "info", short: "INF"},
	LevelDebug: {rank: 5, name: "debug", short: "DBG", prefix: "DEBUG: "},
}

// String returns the string representation of the log level
func (l Level) String() string {
	if spec, ok := levels[l]; ok {
		return spec.name
	}
	return "unknown"
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	if spec, ok := levels[l]; ok {
		return spec.short
	}
	return "???"
}

// Prefix returns the message prefix of the plain console format
func (l Level) Prefix() string {
	return levels[l].prefix
}

// Code returns the integer code of the level (0..5)
func (l Level) Code() int {
	return int(l)
}

// Rank returns the verbosity rank; higher is more verbose. Unknown levels
// rank below OFF.
func (l Level) Rank() int {
	if spec, ok := levels[l]; ok {
		return spec.rank
	}
	return -1
}

// IsValid reports whether l is one of the defined levels
func (l Level) IsValid() bool {
	_, ok := levels[l]
	return ok
}

// ShouldLog returns true if a message of this level passes the threshold:
// the threshold must be at least as verbose as the message. OFF messages
// never pass.
func (l Level) ShouldLog(threshold Level) bool {
	if l == LevelOff || !l.IsValid() {
		return false
	}
	return threshold.Rank() >= l.Rank()
}

// ParseLevel parses a level name or an integer code 0..5
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if n, err := strconv.Atoi(s); err == nil {
		return LevelFromCode(n)
	}
	switch s {
	case "off", "none":
		return LevelOff, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "error", "err":
		return LevelError, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "debug", "dbg":
		return LevelDebug, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// LevelFromCode converts an integer code 0..5 into a level
func LevelFromCode(code int) (Level, error) {
	for l := range levels {
		if l.Code() == code {
			return l, nil
		}
	}
	return LevelInfo, &ParseError{
		Input: strconv.Itoa(code),
		Type:  "level",
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all levels ordered by rank
func AllLevels() []Level {
	return []Level{
		LevelOff,
		LevelFatal,
		LevelError,
		LevelWarn,
		LevelInfo,
		LevelDebug,
	}
}

// DefaultLevel returns the default threshold
func DefaultLevel() Level {
	return LevelInfo
}
