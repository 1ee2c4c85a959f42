// Package inst implements the tagged instruction model: one variant per
// supported mnemonic, plus the pure Encode/Decode functions that convert
// between that model and the 32-bit big-endian machine word.
//
// Decode dispatches on bits [31:26] first (the opcode field); when that
// field is zero it dispatches again on bits [5:0] (the funct field).
package inst

import "fmt"

// Op identifies which instruction variant a value holds.
type Op int

const (
	Add Op = iota
	Sub
	Slt
	Sltu
	Mult
	Multu
	Div
	Divu
	Mfhi
	Mflo
	Lis
	Lw
	Sw
	Beq
	Bne
	Jr
	Jalr
	Word
	Noop
)

// Funct codes for the R-type (opcode 0) instructions.
const (
	functAdd  = 0x20
	functSub  = 0x22
	functSlt  = 0x2A
	functSltu = 0x2B
	functMult = 0x18
	functMultu = 0x19
	functDiv  = 0x1A
	functDivu = 0x1B
	functMfhi = 0x10
	functMflo = 0x12
	functLis  = 0x14
	functJr   = 0x08
	functJalr = 0x09
)

// Opcodes for the I-type instructions.
const (
	opcodeLw  = 0x23
	opcodeSw  = 0x2B
	opcodeBeq = 0x04
	opcodeBne = 0x05
)

// Instruction is a tagged variant over every supported mnemonic. Only the
// fields relevant to Op are meaningful; D/S/T are register indices in
// [0,31], Imm is the resolved 16-bit immediate (lw/sw offset, beq/bne
// word-offset), and Word carries the full 32-bit payload for `.word`.
type Instruction struct {
	Op   Op
	D, S, T uint16
	Imm  uint16
	Word uint32
}

// Encode turns a resolved instruction into its 32-bit big-endian word. It
// is a pure function: every field must already be a literal (no symbol
// reaches this layer — see internal/value and internal/asm's resolver).
// Noop must never be encoded; callers drop Noop lines before this point.
func Encode(i Instruction) (uint32, error) {
	switch i.Op {
	case Add:
		return rtype(i.S, i.T, i.D, functAdd), nil
	case Sub:
		return rtype(i.S, i.T, i.D, functSub), nil
	case Slt:
		return rtype(i.S, i.T, i.D, functSlt), nil
	case Sltu:
		return rtype(i.S, i.T, i.D, functSltu), nil
	case Mult:
		return rtype(i.S, i.T, 0, functMult), nil
	case Multu:
		return rtype(i.S, i.T, 0, functMultu), nil
	case Div:
		return rtype(i.S, i.T, 0, functDiv), nil
	case Divu:
		return rtype(i.S, i.T, 0, functDivu), nil
	case Mfhi:
		return rtype(0, 0, i.D, functMfhi), nil
	case Mflo:
		return rtype(0, 0, i.D, functMflo), nil
	case Lis:
		return rtype(0, 0, i.D, functLis), nil
	case Lw:
		return itype(opcodeLw, i.S, i.T, i.Imm), nil
	case Sw:
		return itype(opcodeSw, i.S, i.T, i.Imm), nil
	case Beq:
		return itype(opcodeBeq, i.S, i.T, i.Imm), nil
	case Bne:
		return itype(opcodeBne, i.S, i.T, i.Imm), nil
	case Jr:
		return rtype(i.S, 0, 0, functJr), nil
	case Jalr:
		return rtype(i.S, 0, 0, functJalr), nil
	case Word:
		return i.Word, nil
	case Noop:
		return 0, fmt.Errorf("encode: noop produces no output word")
	default:
		return 0, fmt.Errorf("encode: unknown instruction op %d", i.Op)
	}
}

// rtype assembles an R-type word: 000000 sssss ttttt ddddd 00000 funct.
func rtype(s, t, d uint16, funct uint32) uint32 {
	return (uint32(s&0x1F) << 21) | (uint32(t&0x1F) << 16) | (uint32(d&0x1F) << 11) | (funct & 0x3F)
}

// itype assembles an I-type word: opcode sssss ttttt iiiiiiiiiiiiiiii.
func itype(opcode uint32, s, t, imm uint16) uint32 {
	return ((opcode & 0x3F) << 26) | (uint32(s&0x1F) << 21) | (uint32(t&0x1F) << 16) | uint32(imm)
}

// Decode inverts Encode. An unrecognized bit pattern becomes a Word
// instruction carrying the raw value, matching the spec's "any
// unrecognized pattern becomes .word <raw>" fallback.
func Decode(w uint32) Instruction {
	opcode := (w >> 26) & 0x3F
	s := uint16((w >> 21) & 0x1F)
	t := uint16((w >> 16) & 0x1F)
	d := uint16((w >> 11) & 0x1F)
	imm := uint16(w & 0xFFFF)

	if opcode == 0 {
		funct := w & 0x3F
		switch funct {
		case functAdd:
			return Instruction{Op: Add, D: d, S: s, T: t}
		case functSub:
			return Instruction{Op: Sub, D: d, S: s, T: t}
		case functSlt:
			return Instruction{Op: Slt, D: d, S: s, T: t}
		case functSltu:
			return Instruction{Op: Sltu, D: d, S: s, T: t}
		case functMult:
			return Instruction{Op: Mult, S: s, T: t}
		case functMultu:
			return Instruction{Op: Multu, S: s, T: t}
		case functDiv:
			return Instruction{Op: Div, S: s, T: t}
		case functDivu:
			return Instruction{Op: Divu, S: s, T: t}
		case functMfhi:
			return Instruction{Op: Mfhi, D: d}
		case functMflo:
			return Instruction{Op: Mflo, D: d}
		case functLis:
			return Instruction{Op: Lis, D: d}
		case functJr:
			return Instruction{Op: Jr, S: s}
		case functJalr:
			return Instruction{Op: Jalr, S: s}
		}
		return Instruction{Op: Word, Word: w}
	}

	switch opcode {
	case opcodeLw:
		return Instruction{Op: Lw, S: s, T: t, Imm: imm}
	case opcodeSw:
		return Instruction{Op: Sw, S: s, T: t, Imm: imm}
	case opcodeBeq:
		return Instruction{Op: Beq, S: s, T: t, Imm: imm}
	case opcodeBne:
		return Instruction{Op: Bne, S: s, T: t, Imm: imm}
	}

	return Instruction{Op: Word, Word: w}
}

// Mnemonic returns the canonical lowercase mnemonic for an Op, used by the
// disassembler and by diagnostics.
func (i Instruction) Mnemonic() string {
	switch i.Op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Slt:
		return "slt"
	case Sltu:
		return "sltu"
	case Mult:
		return "mult"
	case Multu:
		return "multu"
	case Div:
		return "div"
	case Divu:
		return "divu"
	case Mfhi:
		return "mfhi"
	case Mflo:
		return "mflo"
	case Lis:
		return "lis"
	case Lw:
		return "lw"
	case Sw:
		return "sw"
	case Beq:
		return "beq"
	case Bne:
		return "bne"
	case Jr:
		return "jr"
	case Jalr:
		return "jalr"
	case Word:
		return ".word"
	case Noop:
		return "noop"
	default:
		return "???"
	}
}
