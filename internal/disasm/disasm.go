// Package disasm implements the inverse of the assembler, built on
// internal/inst.Decode: a raw big-endian word stream back to one mnemonic
// line per word. Every word
// is exactly one instruction, so rendering is a plain linear sweep with
// no control-flow tracing needed.
package disasm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"mips32/internal/inst"
)

// Disassemble renders one line of text per 32-bit big-endian word in
// code. Anything Decode can't classify renders as a raw .word line.
func Disassemble(code []byte) (string, error) {
	if len(code)%4 != 0 {
		return "", fmt.Errorf("disassemble: code length %d is not a multiple of 4", len(code))
	}

	var b strings.Builder
	for off := 0; off+4 <= len(code); off += 4 {
		word := binary.BigEndian.Uint32(code[off:])
		decoded := inst.Decode(word)
		fmt.Fprintf(&b, "0x%08X: %s\n", off, render(decoded))
	}
	return b.String(), nil
}

// render formats one decoded instruction the way its source form would
// have read, using $N register syntax.
func render(i inst.Instruction) string {
	switch i.Op {
	case inst.Add, inst.Sub, inst.Slt, inst.Sltu:
		return fmt.Sprintf("%s $%d,$%d,$%d", i.Mnemonic(), i.D, i.S, i.T)
	case inst.Mult, inst.Multu, inst.Div, inst.Divu:
		return fmt.Sprintf("%s $%d,$%d", i.Mnemonic(), i.S, i.T)
	case inst.Mfhi, inst.Mflo, inst.Lis:
		return fmt.Sprintf("%s $%d", i.Mnemonic(), i.D)
	case inst.Lw, inst.Sw:
		return fmt.Sprintf("%s $%d,%d($%d)", i.Mnemonic(), i.T, int16(i.Imm), i.S)
	case inst.Beq, inst.Bne:
		return fmt.Sprintf("%s $%d,$%d,%d", i.Mnemonic(), i.S, i.T, int16(i.Imm))
	case inst.Jr, inst.Jalr:
		return fmt.Sprintf("%s $%d", i.Mnemonic(), i.S)
	case inst.Word:
		return fmt.Sprintf(".word 0x%08X", i.Word)
	default:
		return "???"
	}
}
