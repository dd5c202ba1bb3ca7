// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The severity decides the
//              log level an error is reported with.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity table for calculator and host codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem the run can ignore
	SeverityLow Severity = iota

	// SeverityMedium indicates a problem that is worth a warning
	SeverityMedium

	// SeverityHigh indicates an error that fails the run but not the expansion
	SeverityHigh

	// SeverityCritical indicates an error that ends the run immediately
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// IsFatal returns true if this severity ends the run
func (s Severity) IsFatal() bool {
	return s >= SeverityCritical
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeIO, CodeInternal:
		return SeverityCritical

	case CodeParse, CodeReference, CodeUsage, CodeApplication, CodeDivisionByZero,
		CodeInvalidConfig, CodeTemplate:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound:
		return SeverityMedium

	default:
		return SeverityMedium
	}
}
