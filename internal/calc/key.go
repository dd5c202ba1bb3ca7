// File: key.go
// Title: Pseudo Key Parser
// Description: Splits a pseudo key name[_operation[_operand]] into its parts
//              and validates operation and arity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package calc

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

// Separator separates name, operation and operand in a pseudo key
const Separator = "_"

// Key is a decoded pseudo key
type Key struct {
	// Raw is the key as it was looked up
	Raw string

	Name string
	Op   Op

	// Operand is the operand token; empty if HasOperand is false
	Operand    string
	HasOperand bool
}

// ParseKey decodes a pseudo key. The key is split at the first two
// separators, so an operand token may itself contain separators.
func ParseKey(raw string) (Key, error) {
	parts := strings.SplitN(raw, Separator, 3)
	key := Key{Raw: raw, Name: parts[0], Op: OpRead}

	if key.Name == "" {
		return key, keyError(raw, mdwerror.CodeParse, "number name is empty")
	}

	if len(parts) == 1 {
		return key, nil
	}

	op, ok := LookupOp(parts[1])
	if !ok {
		return key, keyError(raw, mdwerror.CodeParse,
			fmt.Sprintf("unknown operation %q", parts[1]))
	}
	key.Op = op

	if len(parts) == 3 {
		if parts[2] == "" {
			return key, keyError(raw, mdwerror.CodeParse, "operand is empty")
		}
		if op.IsUnary() {
			return key, keyError(raw, mdwerror.CodeUsage,
				fmt.Sprintf("operation %s must not have an operand", op))
		}
		key.Operand = parts[2]
		key.HasOperand = true
	}

	return key, nil
}

// String returns the canonical form of the key
func (k Key) String() string {
	s := k.Name
	if k.Op != OpRead {
		s += Separator + k.Op.String()
	}
	if k.HasOperand {
		s += Separator + k.Operand
	}
	return s
}

func keyError(raw string, code mdwerror.Code, reason string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid pseudo key %q: %s", raw, reason)).
		WithCode(code).
		WithOperation("calc.ParseKey").
		WithDetail("key", raw)
}
