// File: counter.go
// Title: Error and Warning Counters
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package command

import "fmt"

// Counter counts the errors and warnings of a run
type Counter interface {
	IncrementError()
	IncrementWarning()
}

// ErrorCounter is the Counter read by the host after a run. The zero value
// is ready to use.
type ErrorCounter struct {
	errors   int
	warnings int
}

// NewErrorCounter creates a counter with both counts at zero
func NewErrorCounter() *ErrorCounter {
	return &ErrorCounter{}
}

// IncrementError counts one error
func (c *ErrorCounter) IncrementError() {
	c.errors++
}

// IncrementWarning counts one warning
func (c *ErrorCounter) IncrementWarning() {
	c.warnings++
}

// Errors returns the number of counted errors
func (c *ErrorCounter) Errors() int {
	return c.errors
}

// Warnings returns the number of counted warnings
func (c *ErrorCounter) Warnings() int {
	return c.warnings
}

// Failed reports whether at least one error was counted
func (c *ErrorCounter) Failed() bool {
	return c.errors > 0
}

// Reset sets both counts back to zero, for hosts that reuse the counter
// between runs
func (c *ErrorCounter) Reset() {
	c.errors = 0
	c.warnings = 0
}

// String returns a summary like "2 errors, 1 warning"
func (c *ErrorCounter) String() string {
	return fmt.Sprintf("%s, %s", plural(c.errors, "error"), plural(c.warnings, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
