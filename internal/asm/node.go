package asm

import "mips32/internal/inst"

// Line is one parsed source line: its original text, zero or more labels
// that prefixed it, and exactly one instruction (Noop if the line carried
// none). A line contributes 4 bytes to the program image iff its
// instruction is not inst.Noop.
type Line struct {
	Text        string
	Labels      []string
	Instruction inst.Instruction

	// SymbolOperand, when non-empty, names the unresolved label this
	// line's immediate/address operand refers to. It is cleared by the
	// resolver's second pass once the instruction's literal operand has
	// been patched in.
	SymbolOperand string
}
