package disasm_test

import (
	"strings"
	"testing"

	"mips32/internal/asm"
	"mips32/internal/disasm"
)

func TestDisassembleAdd(t *testing.T) {
	code, err := asm.Assemble("add $3, $1, $2\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text, err := disasm.Disassemble(code)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	want := "0x00000000: add $3,$1,$2\n"
	if text != want {
		t.Errorf("Disassemble = %q, want %q", text, want)
	}
}

func TestDisassembleMultipleWordsAreOffsetCorrectly(t *testing.T) {
	code, err := asm.Assemble("jr $31\njr $31\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text, err := disasm.Disassemble(code)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0x00000000:") || !strings.HasPrefix(lines[1], "0x00000004:") {
		t.Errorf("unexpected offsets: %v", lines)
	}
}

func TestDisassembleRejectsMisalignedInput(t *testing.T) {
	_, err := disasm.Disassemble([]byte{0x00, 0x00, 0x00})
	if err == nil {
		t.Fatal("expected error for non-multiple-of-4 input, got nil")
	}
}

func TestDisassembleUnknownWordFallsBackToWordDirective(t *testing.T) {
	text, err := disasm.Disassemble([]byte{0xFC, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	want := "0x00000000: .word 0xFC000000\n"
	if text != want {
		t.Errorf("Disassemble = %q, want %q", text, want)
	}
}
