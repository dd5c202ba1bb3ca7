// File: op.go
// Title: Calculator Operations
// Description: The fixed set of pseudo key operations with their class,
//              arity and default operand, and the 64 bit arithmetic behind
//              them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package calc

// Op is an operation encoded in a pseudo key
type Op int

const (
	// OpRead is the plain read of a bare name
	OpRead Op = iota
	OpSet
	OpGet
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpSadd
	OpSsub
	OpSmul
	OpAnd
	OpOr
	OpXor
	OpNot
	OpSr
	OpAsr
	OpSl
	OpIsGE
	OpIsLE
	OpIsG
	OpIsL
	OpIsE
	OpIsNE
)

type opClass int

const (
	classRead opClass = iota
	classGet
	classSet
	classArithmetic
	classSticky
	classBitwise
	classNot
	classCompare
)

type opSpec struct {
	name  string
	class opClass

	// unary operations must not carry an operand
	unary bool

	// defaultOperand is used when the key has no operand token
	defaultOperand int64
}

var opSpecs = map[Op]opSpec{
	OpRead: {name: "", class: classRead, unary: true},
	OpGet:  {name: "get", class: classGet, unary: true},
	OpSet:  {name: "set", class: classSet, defaultOperand: 0},

	OpAdd: {name: "add", class: classArithmetic, defaultOperand: 1},
	OpSub: {name: "sub", class: classArithmetic, defaultOperand: 1},
	OpMul: {name: "mul", class: classArithmetic, defaultOperand: 1},
	OpDiv: {name: "div", class: classArithmetic, defaultOperand: 1},

	OpSadd: {name: "sadd", class: classSticky, defaultOperand: 1},
	OpSsub: {name: "ssub", class: classSticky, defaultOperand: 1},
	OpSmul: {name: "smul", class: classSticky, defaultOperand: 1},

	OpAnd: {name: "and", class: classBitwise, defaultOperand: 1},
	OpOr:  {name: "or", class: classBitwise, defaultOperand: 1},
	OpXor: {name: "xor", class: classBitwise, defaultOperand: 1},
	OpSr:  {name: "sr", class: classBitwise, defaultOperand: 1},
	OpAsr: {name: "asr", class: classBitwise, defaultOperand: 1},
	OpSl:  {name: "sl", class: classBitwise, defaultOperand: 1},
	OpNot: {name: "not", class: classNot, unary: true},

	OpIsGE: {name: "isGE", class: classCompare, defaultOperand: 0},
	OpIsLE: {name: "isLE", class: classCompare, defaultOperand: 0},
	OpIsG:  {name: "isG", class: classCompare, defaultOperand: 0},
	OpIsL:  {name: "isL", class: classCompare, defaultOperand: 0},
	OpIsE:  {name: "isE", class: classCompare, defaultOperand: 0},
	OpIsNE: {name: "isNE", class: classCompare, defaultOperand: 0},
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opSpecs))
	for op, spec := range opSpecs {
		if spec.name != "" {
			m[spec.name] = op
		}
	}
	return m
}()

// LookupOp returns the operation with the given pseudo key name. Names are
// case sensitive.
func LookupOp(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// String returns the pseudo key name of the operation, "read" for OpRead
func (o Op) String() string {
	spec, ok := opSpecs[o]
	if !ok {
		return "unknown"
	}
	if o == OpRead {
		return "read"
	}
	return spec.name
}

// IsUnary reports whether the operation must not carry an operand
func (o Op) IsUnary() bool {
	return opSpecs[o].unary
}

// IsComparison reports whether the operation yields a Boolean
func (o Op) IsComparison() bool {
	return opSpecs[o].class == classCompare
}

// IsSticky reports whether the operation installs itself as sticky operation
func (o Op) IsSticky() bool {
	return opSpecs[o].class == classSticky
}

// DefaultOperand returns the operand used when a key carries none
func (o Op) DefaultOperand() int64 {
	return opSpecs[o].defaultOperand
}

func (o Op) class() opClass {
	return opSpecs[o].class
}

// apply computes the binary arithmetic, bitwise or shift operation with Go's
// two's complement wraparound. Shift counts are taken modulo 64. The caller
// rules out division by zero.
func (o Op) apply(value, operand int64) int64 {
	shift := uint64(operand) & 63

	switch o {
	case OpAdd, OpSadd:
		return value + operand
	case OpSub, OpSsub:
		return value - operand
	case OpMul, OpSmul:
		return value * operand
	case OpDiv:
		// math.MinInt64 / -1 wraps to math.MinInt64
		return value / operand
	case OpAnd:
		return value & operand
	case OpOr:
		return value | operand
	case OpXor:
		return value ^ operand
	case OpSr:
		return int64(uint64(value) >> shift)
	case OpAsr:
		return value >> shift
	case OpSl:
		return value << shift
	case OpNot:
		return ^value
	default:
		return value
	}
}

// compare evaluates a comparison operation
func (o Op) compare(value, operand int64) bool {
	switch o {
	case OpIsGE:
		return value >= operand
	case OpIsLE:
		return value <= operand
	case OpIsG:
		return value > operand
	case OpIsL:
		return value < operand
	case OpIsE:
		return value == operand
	case OpIsNE:
		return value != operand
	default:
		return false
	}
}
