// File: operand.go
// Title: Operand Resolver
// Description: Turns an operand token into a signed 64 bit value, either by
//              parsing a literal or by peeking at another number of the
//              scratch pad.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package calc

import (
	"fmt"
	"regexp"
	"strconv"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

var (
	hexLiteral     = regexp.MustCompile(`^0x([0-9a-fA-F]+)$`)
	decimalLiteral = regexp.MustCompile(`^(-?[0-9]+)(n?)$`)
)

// Boolean literals; with -1 for true the bitwise operations act as Boolean
// operations.
const (
	True  int64 = -1
	False int64 = 0
)

// ParseLiteral parses an operand token as literal. ok is false if the token
// is not a literal and has to be taken as a number name. A token that looks
// like a literal but does not fit into 64 bit is a parse error.
//
// Accepted literals are non-negative hexadecimal numbers 0x..., signed
// decimal numbers with an optional negation suffix n (123n is -123, -5n is
// 5) and the Boolean constants true and false.
func ParseLiteral(token string) (value int64, ok bool, err error) {
	switch token {
	case "true":
		return True, true, nil
	case "false":
		return False, true, nil
	}

	if m := hexLiteral.FindStringSubmatch(token); m != nil {
		u, perr := strconv.ParseUint(m[1], 16, 64)
		if perr != nil {
			return 0, true, literalError(token, perr)
		}
		return int64(u), true, nil
	}

	if m := decimalLiteral.FindStringSubmatch(token); m != nil {
		v, perr := strconv.ParseInt(m[1], 10, 64)
		if perr != nil {
			return 0, true, literalError(token, perr)
		}
		if m[2] == "n" {
			v = -v
		}
		return v, true, nil
	}

	return 0, false, nil
}

// resolve returns the value of the operand token. Number references are a
// raw peek: the referenced number's sticky operation is not applied and the
// number is not created.
func (p *Pad) resolve(key Key) (int64, error) {
	if !key.HasOperand {
		return key.Op.DefaultOperand(), nil
	}

	value, ok, err := ParseLiteral(key.Operand)
	if err != nil {
		return 0, mdwerror.Wrap(err, fmt.Sprintf("invalid pseudo key %q", key.Raw)).
			WithOperation("calc.resolve").
			WithDetail("key", key.Raw)
	}
	if ok {
		return value, nil
	}

	number, exists := p.numbers[key.Operand]
	if !exists {
		return 0, mdwerror.New(fmt.Sprintf("cannot resolve operand of %q: no number %s in the scratch pad", key.Raw, key.Operand)).
			WithCode(mdwerror.CodeReference).
			WithOperation("calc.resolve").
			WithDetail("key", key.Raw).
			WithDetail("reference", key.Operand)
	}
	return number.value, nil
}

func literalError(token string, cause error) *mdwerror.Error {
	return mdwerror.Wrap(cause, fmt.Sprintf("literal %s does not fit into 64 bit", token)).
		WithCode(mdwerror.CodeParse).
		WithOperation("calc.ParseLiteral").
		WithDetail("literal", token)
}
