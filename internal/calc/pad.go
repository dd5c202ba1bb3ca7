// File: pad.go
// Title: Scratch Pad
// Description: The name to number map of one template expansion run and the
//              evaluation of pseudo keys against it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package calc

import (
	"fmt"
	"sort"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

// Reporter receives error messages. The error command of the info object
// satisfies it.
type Reporter interface {
	Invoke(message string) any
}

// sticky is an operation reapplied after every plain read
type sticky struct {
	op      Op
	operand int64
}

// Number is a scratch pad entry
type Number struct {
	value  int64
	sticky *sticky
}

// Value returns the stored value
func (n *Number) Value() int64 {
	return n.value
}

// Sticky returns the installed sticky operation and its captured operand
func (n *Number) Sticky() (op Op, operand int64, ok bool) {
	if n.sticky == nil {
		return OpRead, 0, false
	}
	return n.sticky.op, n.sticky.operand, true
}

// Pad is the scratch pad of one expansion run. It is not safe for
// concurrent use; a run evaluates its lookups sequentially.
type Pad struct {
	numbers    map[string]*Number
	reporter   Reporter
	logContext string
}

// New creates an empty scratch pad. Errors found by Evaluate are sent to
// reporter, prefixed with logContext. reporter may be nil.
func New(reporter Reporter, logContext string) *Pad {
	return &Pad{
		numbers:    make(map[string]*Number),
		reporter:   reporter,
		logContext: logContext,
	}
}

// Evaluate is the lookup entry point used by the template engine. It
// returns an int64 for reads, a bool for comparisons and nil for all other
// operations. Malformed keys and unresolved operands are reported and
// yield nil.
func (p *Pad) Evaluate(key string) any {
	result, err := p.Exec(key)
	if err != nil {
		if p.reporter != nil {
			p.reporter.Invoke(p.logContext + err.Error())
		}
		return nil
	}
	return result
}

// Exec evaluates a pseudo key and returns the error instead of reporting
// it. On error the addressed number is left as it was.
func (p *Pad) Exec(raw string) (any, error) {
	key, err := ParseKey(raw)
	if err != nil {
		return nil, err
	}

	operand, err := p.resolve(key)
	if err != nil {
		return nil, err
	}

	if key.Op == OpDiv && operand == 0 {
		return nil, mdwerror.New(fmt.Sprintf("%q: division by zero", raw)).
			WithCode(mdwerror.CodeDivisionByZero).
			WithOperation("calc.div").
			WithDetail("key", raw)
	}

	number := p.getOrCreate(key.Name, key.Op, operand)

	switch key.Op.class() {
	case classRead:
		value := number.value
		if s := number.sticky; s != nil {
			number.value = s.op.apply(number.value, s.operand)
		}
		return value, nil

	case classGet:
		return number.value, nil

	case classSet:
		number.value = operand
		return nil, nil

	case classSticky:
		number.value = key.Op.apply(number.value, operand)
		number.sticky = &sticky{op: key.Op, operand: operand}
		return nil, nil

	case classArithmetic, classBitwise, classNot:
		number.value = key.Op.apply(number.value, operand)
		number.sticky = nil
		return nil, nil

	case classCompare:
		return key.Op.compare(number.value, operand), nil

	default:
		return nil, mdwerror.New(fmt.Sprintf("%q: operation %s not implemented", raw, key.Op)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("calc.Exec")
	}
}

// getOrCreate returns the named number, creating it with the default of
// the operation: the operand for set, zero otherwise. A number created by a
// plain read is a zero based linear counter.
func (p *Pad) getOrCreate(name string, op Op, operand int64) *Number {
	if number, ok := p.numbers[name]; ok {
		return number
	}

	number := &Number{}
	switch op {
	case OpSet:
		number.value = operand
	case OpRead:
		number.sticky = &sticky{op: OpSadd, operand: 1}
	}

	p.numbers[name] = number
	return number
}

// Peek returns a number's value without side effects
func (p *Pad) Peek(name string) (int64, bool) {
	number, ok := p.numbers[name]
	if !ok {
		return 0, false
	}
	return number.value, true
}

// Lookup returns the named number without side effects
func (p *Pad) Lookup(name string) (*Number, bool) {
	number, ok := p.numbers[name]
	return number, ok
}

// Len returns the number of numbers in the pad
func (p *Pad) Len() int {
	return len(p.numbers)
}

// Names returns the names of all numbers in sorted order
func (p *Pad) Names() []string {
	names := make([]string, 0, len(p.numbers))
	for name := range p.numbers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
