// Package value implements the tagged literal-or-symbol operand that flows
// through the assembler until symbol resolution replaces every Symbol with
// a Literal.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes the two cases of Value.
type Kind int

const (
	// Literal holds a resolved, immediately-usable 32-bit word.
	Literal Kind = iota
	// Symbol holds a label reference awaiting resolution.
	Symbol
)

// Value is a tagged union: either a literal 32-bit word, or a symbol name
// that must be resolved to one before it reaches the encoder.
type Value struct {
	Kind    Kind
	Literal uint32
	Name    string
}

// NewLiteral wraps a resolved word.
func NewLiteral(v uint32) Value {
	return Value{Kind: Literal, Literal: v}
}

// NewSymbol wraps an unresolved label reference.
func NewSymbol(name string) Value {
	return Value{Kind: Symbol, Name: name}
}

// IsSymbol reports whether this value still needs resolution.
func (v Value) IsSymbol() bool {
	return v.Kind == Symbol
}

// String renders the value for diagnostics.
func (v Value) String() string {
	if v.Kind == Symbol {
		return v.Name
	}
	return fmt.Sprintf("0x%X", v.Literal)
}

// Parse converts an operand token to a Value. A 0x-prefixed token is parsed
// as hex; otherwise it tries unsigned decimal, then signed decimal (stored
// two's-complement). Anything else becomes a Symbol reference.
func Parse(tok string) Value {
	tok = strings.TrimSpace(tok)

	if strings.HasPrefix(strings.ToLower(tok), "0x") {
		if n, err := strconv.ParseUint(tok[2:], 16, 32); err == nil {
			return NewLiteral(uint32(n))
		}
		return NewSymbol(tok)
	}

	if n, err := strconv.ParseUint(tok, 10, 32); err == nil {
		return NewLiteral(uint32(n))
	}

	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return NewLiteral(uint32(n))
	}

	return NewSymbol(tok)
}

// Mask16 masks a literal to the low 16 bits, as required for 16-bit
// immediate operand contexts (lw/sw offsets, beq/bne displacements).
func Mask16(v uint32) uint16 {
	return uint16(v & 0xFFFF)
}
