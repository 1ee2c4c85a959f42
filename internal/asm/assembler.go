// Package asm implements the two-pass assembler: parsing, symbol
// resolution, and the driver that encodes resolved lines into a
// big-endian byte stream.
package asm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"mips32/internal/inst"
)

// Assemble translates MIPS assembly source into a big-endian machine word
// stream. It is pure: it has no side effects beyond returning either the
// image or the first fatal error encountered.
func Assemble(src string) ([]byte, error) {
	lines, err := parseLines(src)
	if err != nil {
		return nil, err
	}

	resolved, err := resolve(lines)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	out := make([]byte, 0, len(resolved)*4)
	for _, l := range resolved {
		word, err := inst.Encode(l.Instruction)
		if err != nil {
			return nil, fmt.Errorf("assemble %q: %w", l.Text, err)
		}
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], word)
		out = append(out, buf[:]...)
	}
	return out, nil
}

// parseLines splits source text into lines and parses each independently.
func parseLines(src string) ([]Line, error) {
	rawLines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, text := range rawLines {
		l, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}
