// Package error provides the structured error type used across st4info.
//
// Package: error
// Title: st4info Error Handling
// Description: Coded errors with severity, operation and detail metadata. The
//              codes mirror the error taxonomy of the template info object:
//              parse, reference, usage and application errors are reported
//              through the severity command channel instead of aborting a
//              template expansion; configuration and I/O errors belong to the
//              host.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the calculator and host taxonomy, dropped stack traces
//
// Usage:
//   import mdwerror "github.com/msto63/st4info/foundation/core/error"
//
//   err := mdwerror.New("unknown operation").
//     WithCode(mdwerror.CodeParse).
//     WithOperation("calc.ParseKey").
//     WithDetail("key", key)
//
//   if mdwerror.HasCode(err, mdwerror.CodeReference) {
//     // operand named a number that does not exist yet
//   }
package error
