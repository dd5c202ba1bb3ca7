// Package command implements the severity command protocol of the template
// info object.
//
// A Command is bound at construction to a severity and a Listener. Invoking
// it with a message hands level and message to the listener and produces no
// value, so the template lookup that triggered it expands to nothing. The
// Dispatcher is the standard listener: it writes the message to the log sink
// if the sink's threshold lets it pass and counts errors and warnings
// regardless of the threshold. The host reads the counters after the run to
// decide whether it failed.
package command
