// Package log provides the leveled log sink used by st4info.
//
// Package: log
// Title: st4info Structured Logging
// Description: A structured logger gated by a settable verbosity threshold.
//              Levels form the ordered enumeration OFF < FATAL < ERROR < WARN
//              < INFO < DEBUG with the integer codes 0..5; a message is
//              written iff the threshold's rank is at least the message's
//              rank. Output formats are the plain console style of the
//              template host, text, colored console and JSON.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Verbosity threshold levels, plain format, synchronous output only
//
// Usage:
//   import mdwlog "github.com/msto63/st4info/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelWarn,
//     Format: mdwlog.FormatPlain,
//     Output: os.Stdout,
//   })
//
//   logger.Write("There are no frames defined!", mdwlog.LevelError) // ERROR: There are ...
//   logger.Debug("Process frame", mdwlog.Field("frame", name))      // suppressed
//
//   timer := logger.StartTimer("render")
//   // ... expand the template
//   timer.Stop()
package log
