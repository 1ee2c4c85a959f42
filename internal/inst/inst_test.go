package inst_test

import (
	"testing"

	"mips32/internal/inst"
)

// TestRoundTrip checks decode(encode(x)) == x for every instruction in the
// spec's table except noop, which is never encoded.
func TestRoundTrip(t *testing.T) {
	cases := []inst.Instruction{
		{Op: inst.Add, D: 3, S: 1, T: 2},
		{Op: inst.Sub, D: 31, S: 0, T: 15},
		{Op: inst.Slt, D: 4, S: 5, T: 6},
		{Op: inst.Sltu, D: 7, S: 8, T: 9},
		{Op: inst.Mult, S: 10, T: 11},
		{Op: inst.Multu, S: 12, T: 13},
		{Op: inst.Div, S: 14, T: 15},
		{Op: inst.Divu, S: 16, T: 17},
		{Op: inst.Mfhi, D: 18},
		{Op: inst.Mflo, D: 19},
		{Op: inst.Lis, D: 20},
		{Op: inst.Lw, T: 21, S: 22, Imm: 0x1234},
		{Op: inst.Sw, T: 23, S: 24, Imm: 0xFFFF},
		{Op: inst.Beq, S: 25, T: 26, Imm: 0x0010},
		{Op: inst.Bne, S: 27, T: 28, Imm: 0x8000},
		{Op: inst.Jr, S: 29},
		{Op: inst.Jalr, S: 30},
	}

	for _, want := range cases {
		word, err := inst.Encode(want)
		if err != nil {
			t.Fatalf("encode(%+v): %v", want, err)
		}
		got := inst.Decode(word)
		if got != want {
			t.Errorf("decode(encode(%+v)) = %+v, want %+v (word=0x%08X)", want, got, want, word)
		}
	}
}

// TestNoopNeverEncoded confirms the spec's invariant that noop is never
// encoded.
func TestNoopNeverEncoded(t *testing.T) {
	_, err := inst.Encode(inst.Instruction{Op: inst.Noop})
	if err == nil {
		t.Fatal("expected error encoding noop, got nil")
	}
}

// TestEncodeExactBits pins down the exact bit layout from the spec's
// table for a representative instruction of each encoding shape.
func TestEncodeExactBits(t *testing.T) {
	tests := []struct {
		name string
		in   inst.Instruction
		want uint32
	}{
		{"add", inst.Instruction{Op: inst.Add, D: 3, S: 1, T: 2}, 0x00221820},
		{"jr_31", inst.Instruction{Op: inst.Jr, S: 31}, 0x03E00008},
		{"lw", inst.Instruction{Op: inst.Lw, T: 1, S: 2, Imm: 4}, 0x8C410004},
		{"beq", inst.Instruction{Op: inst.Beq, S: 1, T: 2, Imm: 0xFFFE}, 0x1022FFFE},
		{"word", inst.Instruction{Op: inst.Word, Word: 0xDEADBEEF}, 0xDEADBEEF},
	}
	for _, tc := range tests {
		got, err := inst.Encode(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: encode() = 0x%08X, want 0x%08X", tc.name, got, tc.want)
		}
	}
}

// TestDecodeUnknownFallsBackToWord checks the spec's "any unrecognized
// pattern becomes .word <raw>" rule.
func TestDecodeUnknownFallsBackToWord(t *testing.T) {
	raw := uint32(0xFC000000) // opcode 0x3F, unused by this ISA subset
	got := inst.Decode(raw)
	if got.Op != inst.Word || got.Word != raw {
		t.Errorf("decode(0x%08X) = %+v, want Word{%08X}", raw, got, raw)
	}
}
