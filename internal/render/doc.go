// Package render expands text templates against a data model that carries
// the info object.
//
// Package: render
// Title: Template Host
// Description: Hosts Go text/template as the expansion engine. The info object
//              is exposed under its configured argument name and the
//              functions calc, error, warn, info and debug route to the
//              scratch pad and the severity commands. Lookups that produce
//              nothing expand to empty text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Template functions:
//   {{calc "idx"}}                      read idx, counter semantics
//   {{calc "n_set_" .frames.count}}     arguments are concatenated to the key
//   {{if calc "n_isG_0"}}...{{end}}     comparisons yield a bool
//   {{error "no frames defined"}}       log and count an error, expands to ""
//   {{warn "only " .n " frames"}}       arguments are concatenated to the message
package render
