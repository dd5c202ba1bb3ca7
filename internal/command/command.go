// File: command.go
// Title: Severity Commands and Dispatcher
// Description: Commands bound to a fixed severity, the listener capability
//              they call and the dispatcher that routes invocations to the
//              log sink and the counters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package command

import (
	mdwlog "github.com/msto63/st4info/foundation/core/log"
)

// Listener interprets a command invocation: the severity the command is
// bound to and the message it was invoked with.
type Listener interface {
	Interpret(level mdwlog.Level, message string)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(level mdwlog.Level, message string)

// Interpret calls f(level, message)
func (f ListenerFunc) Interpret(level mdwlog.Level, message string) {
	f(level, message)
}

// Command is a command endpoint bound to one severity
type Command struct {
	level    mdwlog.Level
	listener Listener
}

// New binds a command to level and listener
func New(level mdwlog.Level, listener Listener) *Command {
	return &Command{level: level, listener: listener}
}

// Level returns the severity the command is bound to
func (c *Command) Level() mdwlog.Level {
	return c.level
}

// Invoke hands message to the listener. It always returns nil; a template
// lookup of a command expands to nothing.
func (c *Command) Invoke(message string) any {
	if c.listener != nil {
		c.listener.Interpret(c.level, message)
	}
	return nil
}

// Sink is the log sink the dispatcher writes to
type Sink interface {
	Write(message string, level mdwlog.Level)
}

// Dispatcher writes invocations to the sink and counts errors and warnings.
// The sink applies its own threshold; the counters are incremented whether
// or not the message was written.
type Dispatcher struct {
	sink    Sink
	counter Counter
}

// NewDispatcher creates a dispatcher. sink and counter may be nil.
func NewDispatcher(sink Sink, counter Counter) *Dispatcher {
	return &Dispatcher{sink: sink, counter: counter}
}

// Interpret implements Listener
func (d *Dispatcher) Interpret(level mdwlog.Level, message string) {
	if d.sink != nil {
		d.sink.Write(message, level)
	}

	if d.counter == nil {
		return
	}
	switch level {
	case mdwlog.LevelError, mdwlog.LevelFatal:
		d.counter.IncrementError()
	case mdwlog.LevelWarn:
		d.counter.IncrementWarning()
	}
}

// Set holds the four commands exposed to templates
type Set struct {
	Error *Command
	Warn  *Command
	Info  *Command
	Debug *Command
}

// NewSet binds one command per template severity to listener
func NewSet(listener Listener) Set {
	return Set{
		Error: New(mdwlog.LevelError, listener),
		Warn:  New(mdwlog.LevelWarn, listener),
		Info:  New(mdwlog.LevelInfo, listener),
		Debug: New(mdwlog.LevelDebug, listener),
	}
}
