package asm

import (
	"fmt"

	"mips32/internal/inst"
)

// symbolTable maps label name to word-aligned byte address. Every
// instruction here is a fixed 4 bytes, so both passes run as straight
// linear sweeps rather than iterating to a fixed point.
type symbolTable map[string]uint32

// resolve runs the two address-assignment/substitution passes and
// returns the lines with every instruction's operands fully resolved to
// literals. noop lines are dropped from the returned slice.
func resolve(lines []Line) ([]Line, error) {
	syms, err := addressingPass(lines)
	if err != nil {
		return nil, err
	}
	return substitutionPass(lines, syms)
}

// addressingPass is pass 1: bind each label to the address the next
// emitted instruction will occupy, then advance addr by 4 for every
// non-noop instruction.
func addressingPass(lines []Line) (symbolTable, error) {
	syms := make(symbolTable)
	var addr uint32
	for _, l := range lines {
		for _, label := range l.Labels {
			if _, dup := syms[label]; dup {
				return nil, fmt.Errorf("duplicate label %q", label)
			}
			syms[label] = addr
		}
		if l.Instruction.Op != inst.Noop {
			addr += 4
		}
	}
	return syms, nil
}

// substitutionPass is pass 2: recompute addr identically to pass 1, but
// advance it *before* processing each non-noop line (so addr is the PC the
// interpreter will have after fetching that instruction), then patch any
// symbol operand into a resolved literal.
func substitutionPass(lines []Line, syms symbolTable) ([]Line, error) {
	out := make([]Line, 0, len(lines))
	var addr uint32
	for _, l := range lines {
		if l.Instruction.Op == inst.Noop {
			continue
		}
		addr += 4

		if l.SymbolOperand != "" {
			target, ok := syms[l.SymbolOperand]
			if !ok {
				return nil, fmt.Errorf("undefined label %q", l.SymbolOperand)
			}
			switch l.Instruction.Op {
			case inst.Lw, inst.Sw, inst.Word:
				if l.Instruction.Op == inst.Word {
					l.Instruction.Word = target
				} else {
					l.Instruction.Imm = uint16(target & 0xFFFF)
				}
			case inst.Beq, inst.Bne:
				offset := (int32(target) - int32(addr)) / 4
				l.Instruction.Imm = uint16(uint32(offset) & 0xFFFF)
			default:
				return nil, fmt.Errorf("label operand not valid for %s", l.Instruction.Mnemonic())
			}
			l.SymbolOperand = ""
		}

		out = append(out, l)
	}
	return out, nil
}
