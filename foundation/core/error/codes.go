// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the calculator, the command
//              protocol and the host. Codes group into the taxonomy classes
//              reported by Category.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with calculator and host codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Calculator and command protocol
	CodeParse          Code = "PARSE"
	CodeReference      Code = "REFERENCE"
	CodeUsage          Code = "USAGE"
	CodeApplication    Code = "APPLICATION"
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// Host
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeIO            Code = "IO"
	CodeTemplate      Code = "TEMPLATE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeParse, CodeReference, CodeUsage, CodeApplication, CodeDivisionByZero,
		CodeInvalidConfig, CodeInvalidInput, CodeIO, CodeTemplate:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code.
// Division by zero is an application error: the key was well formed and the
// operand resolved, only the arithmetic could not be carried out.
func (c Code) Category() string {
	switch c {
	case CodeParse:
		return "parse"
	case CodeReference:
		return "reference"
	case CodeUsage:
		return "usage"
	case CodeApplication, CodeDivisionByZero:
		return "application"
	case CodeInvalidConfig, CodeInvalidInput:
		return "configuration"
	case CodeIO, CodeTemplate:
		return "host"
	default:
		return "generic"
	}
}

// IsRecoverable reports whether an error with this code is reported and the
// template expansion continues. Host errors end the run.
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeParse, CodeReference, CodeUsage, CodeApplication, CodeDivisionByZero:
		return true
	default:
		return false
	}
}
