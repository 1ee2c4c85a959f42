package value_test

import (
	"testing"

	"mips32/internal/value"
)

func TestParseHex(t *testing.T) {
	v := value.Parse("0xCAFEBABE")
	if v.IsSymbol() || v.Literal != 0xCAFEBABE {
		t.Errorf("Parse(0xCAFEBABE) = %+v", v)
	}
}

func TestParseUnsignedDecimal(t *testing.T) {
	v := value.Parse("42")
	if v.IsSymbol() || v.Literal != 42 {
		t.Errorf("Parse(42) = %+v", v)
	}
}

func TestParseSignedDecimal(t *testing.T) {
	v := value.Parse("-1")
	if v.IsSymbol() || v.Literal != 0xFFFFFFFF {
		t.Errorf("Parse(-1) = %+v, want 0xFFFFFFFF", v)
	}
}

func TestParseSymbol(t *testing.T) {
	v := value.Parse("mylabel")
	if !v.IsSymbol() || v.Name != "mylabel" {
		t.Errorf("Parse(mylabel) = %+v", v)
	}
}

func TestMask16(t *testing.T) {
	if got := value.Mask16(0x0001FFFF); got != 0xFFFF {
		t.Errorf("Mask16(0x0001FFFF) = 0x%X, want 0xFFFF", got)
	}
}
