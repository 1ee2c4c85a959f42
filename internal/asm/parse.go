package asm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mips32/internal/inst"
	"mips32/internal/value"
)

// reLabel matches one label definition, trailing colon included, the same
// pattern the spec names: an identifier starting with a letter, followed
// by letters/digits, immediately followed by ':'.
var reLabel = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*:`)

// parseLine turns one source line into a Line record. It is single-line
// and context-free: it never consults the symbol table or any other line.
func parseLine(text string) (Line, error) {
	line := text
	if i := strings.IndexByte(line, ';'); i != -1 {
		line = line[:i]
	}

	labelsPart := ""
	instrPart := line
	if i := strings.LastIndexByte(line, ':'); i != -1 {
		labelsPart = line[:i+1]
		instrPart = line[i+1:]
	}

	labels := reLabel.FindAllString(labelsPart, -1)
	for i, l := range labels {
		labels[i] = strings.TrimSuffix(l, ":")
	}

	tokens := tokenize(instrPart)
	instruction, symOperand, err := parseInstruction(tokens)
	if err != nil {
		return Line{}, fmt.Errorf("parse %q: %w", text, err)
	}

	return Line{
		Text:          text,
		Labels:        labels,
		Instruction:   instruction,
		SymbolOperand: symOperand,
	}, nil
}

// tokenize splits on any of the delimiter characters ` ,()`, trims
// whitespace, and drops empty tokens.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '(' || r == ')' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// parseReg parses a `$N` register token.
func parseReg(tok string) (uint16, error) {
	if !strings.HasPrefix(tok, "$") {
		return 0, fmt.Errorf("expected register, got %q", tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || n > 31 {
		return 0, fmt.Errorf("invalid register %q", tok)
	}
	return uint16(n), nil
}

// parseInstruction builds an Instruction from already-tokenized operands.
// When an immediate/address operand is a symbol reference rather than a
// literal, the symbol name is returned separately for the resolver to
// patch in during pass 2 — no Symbol value ever reaches inst.Instruction.
func parseInstruction(tokens []string) (inst.Instruction, string, error) {
	if len(tokens) == 0 {
		return inst.Instruction{Op: inst.Noop}, "", nil
	}

	mnemonic := strings.ToLower(tokens[0])
	args := tokens[1:]

	regs := func(n int) ([]uint16, error) {
		if len(args) != n {
			return nil, fmt.Errorf("%s: expected %d register operand(s), got %d", mnemonic, n, len(args))
		}
		out := make([]uint16, n)
		for i, a := range args {
			r, err := parseReg(a)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", mnemonic, err)
			}
			out[i] = r
		}
		return out, nil
	}

	switch mnemonic {
	case "add", "sub", "slt", "sltu":
		r, err := regs(3)
		if err != nil {
			return inst.Instruction{}, "", err
		}
		op := map[string]inst.Op{"add": inst.Add, "sub": inst.Sub, "slt": inst.Slt, "sltu": inst.Sltu}[mnemonic]
		return inst.Instruction{Op: op, D: r[0], S: r[1], T: r[2]}, "", nil

	case "mult", "multu", "div", "divu":
		r, err := regs(2)
		if err != nil {
			return inst.Instruction{}, "", err
		}
		op := map[string]inst.Op{"mult": inst.Mult, "multu": inst.Multu, "div": inst.Div, "divu": inst.Divu}[mnemonic]
		return inst.Instruction{Op: op, S: r[0], T: r[1]}, "", nil

	case "mfhi", "mflo", "lis":
		r, err := regs(1)
		if err != nil {
			return inst.Instruction{}, "", err
		}
		op := map[string]inst.Op{"mfhi": inst.Mfhi, "mflo": inst.Mflo, "lis": inst.Lis}[mnemonic]
		return inst.Instruction{Op: op, D: r[0]}, "", nil

	case "jr", "jalr":
		r, err := regs(1)
		if err != nil {
			return inst.Instruction{}, "", err
		}
		op := inst.Jr
		if mnemonic == "jalr" {
			op = inst.Jalr
		}
		return inst.Instruction{Op: op, S: r[0]}, "", nil

	case "lw", "sw":
		if len(args) != 3 {
			return inst.Instruction{}, "", fmt.Errorf("%s: expected t, i, s operands, got %d", mnemonic, len(args))
		}
		t, err := parseReg(args[0])
		if err != nil {
			return inst.Instruction{}, "", fmt.Errorf("%s: %w", mnemonic, err)
		}
		s, err := parseReg(args[2])
		if err != nil {
			return inst.Instruction{}, "", fmt.Errorf("%s: %w", mnemonic, err)
		}
		op := inst.Lw
		if mnemonic == "sw" {
			op = inst.Sw
		}
		v := value.Parse(args[1])
		if v.IsSymbol() {
			return inst.Instruction{Op: op, S: s, T: t}, v.Name, nil
		}
		return inst.Instruction{Op: op, S: s, T: t, Imm: value.Mask16(v.Literal)}, "", nil

	case "beq", "bne":
		if len(args) != 3 {
			return inst.Instruction{}, "", fmt.Errorf("%s: expected s, t, i operands, got %d", mnemonic, len(args))
		}
		s, err := parseReg(args[0])
		if err != nil {
			return inst.Instruction{}, "", fmt.Errorf("%s: %w", mnemonic, err)
		}
		t, err := parseReg(args[1])
		if err != nil {
			return inst.Instruction{}, "", fmt.Errorf("%s: %w", mnemonic, err)
		}
		op := inst.Beq
		if mnemonic == "bne" {
			op = inst.Bne
		}
		v := value.Parse(args[2])
		if v.IsSymbol() {
			return inst.Instruction{Op: op, S: s, T: t}, v.Name, nil
		}
		return inst.Instruction{Op: op, S: s, T: t, Imm: value.Mask16(v.Literal)}, "", nil

	case ".word":
		if len(args) != 1 {
			return inst.Instruction{}, "", fmt.Errorf(".word: expected one operand, got %d", len(args))
		}
		v := value.Parse(args[0])
		if v.IsSymbol() {
			return inst.Instruction{Op: inst.Word}, v.Name, nil
		}
		return inst.Instruction{Op: inst.Word, Word: v.Literal}, "", nil

	default:
		return inst.Instruction{}, "", fmt.Errorf("unknown mnemonic %q", tokens[0])
	}
}
