// Package info provides the data object that a template expansion run hands
// to its templates.
//
// Package: info
// Title: Template Info Object
// Description: Most of the object is passive metadata: application name and
//              version, the data model version, creation time, the template
//              and output files and a few environment variables. The active
//              parts are the scratch pad calculator Calc and the commands
//              Error, Warn, Info and Debug, which write a message to the run's
//              log and count errors and warnings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Usage:
//   counter := command.NewErrorCounter()
//   inf := info.New(info.Options{Sink: logger, Counter: counter})
//   inf.SetTemplateInfo("frames.tmpl", "frames", "info", 0)
//
//   inf.Calc.Evaluate("idx")         // int64(0), idx counts up from now on
//   inf.Warn.Invoke("only one frame") // logged, counter.Warnings() == 1
package info
