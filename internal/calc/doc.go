// Package calc implements the scratch pad calculator of the template info
// object.
//
// Package: calc
// Title: Scratch Pad Calculator
// Description: A string-keyed map of signed 64 bit numbers that a template
//              drives through pseudo keys of the form
//              name[_operation[_operand]]. A lookup of the bare name reads the
//              number and then reapplies its sticky operation, which is how
//              linear counters are built. Other operations modify the number
//              and produce no value, comparisons produce a Boolean and leave
//              the number alone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//   pad := calc.New(info.Error, "<info.calc>: ")
//
//   pad.Evaluate("idx_set_0")  // nil
//   pad.Evaluate("idx_sadd_3") // nil, idx is 3 and counts up by 3
//   pad.Evaluate("idx")        // int64(3)
//   pad.Evaluate("idx")        // int64(6)
//   pad.Evaluate("idx_isG_5")  // true
//   pad.Evaluate("y_set_0xff") // nil, y is 255
//   pad.Evaluate("y_mul_2n")   // nil, y is -510
package calc
