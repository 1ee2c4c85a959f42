package cpu

import (
	"bufio"
	"fmt"
	"io"
)

// MMIO byte addresses, fixed by the spec.
const (
	mmioReadAddr  = 0xFFFF_0004
	mmioWriteAddr = 0xFFFF_000C
)

// Memory is the sparse, word-addressed memory model: a map keyed by word
// address (byte address / 4), sufficient since real programs touch only
// a tiny fraction of the address space. Two special byte addresses
// bypass the map entirely and perform blocking I/O on the borrowed
// stdin/stdout handles.
type Memory struct {
	words map[uint32]uint32
	in    *bufio.Reader
	out   io.Writer
}

// NewMemory returns an empty memory bound to the given I/O streams. in
// is taken as a *bufio.Reader, rather than wrapping one internally, so a
// caller that also reads other input from the same underlying stream
// (an interactive prompt, say) can share the identical buffer instead of
// racing two independent readers over it.
func NewMemory(in *bufio.Reader, out io.Writer) *Memory {
	return &Memory{
		words: make(map[uint32]uint32),
		in:    in,
		out:   out,
	}
}

// LoadImage writes a big-endian program image starting at word address 0,
// the layout the assembler and loader both produce.
func (m *Memory) LoadImage(image []byte) {
	for i := 0; i+3 < len(image); i += 4 {
		word := uint32(image[i])<<24 | uint32(image[i+1])<<16 | uint32(image[i+2])<<8 | uint32(image[i+3])
		m.words[uint32(i/4)] = word
	}
}

// Read returns the word at the given byte address. Reads of the stdin
// MMIO port consume exactly one byte, zero-extended, returning 0xFF on
// EOF or error rather than failing. Reads of any other uninitialized
// word address are fatal.
func (m *Memory) Read(byteAddr uint32) (uint32, error) {
	if byteAddr == mmioReadAddr {
		b, err := m.in.ReadByte()
		if err != nil {
			return 0x000000FF, nil
		}
		return uint32(b), nil
	}

	key := byteAddr / 4
	w, ok := m.words[key]
	if !ok {
		return 0, fmt.Errorf("read from uninitialized memory at 0x%08X", byteAddr)
	}
	return w, nil
}

// Write stores a word at the given byte address. Writes to the stdout
// MMIO port emit the low byte and do not mutate the memory map.
func (m *Memory) Write(byteAddr uint32, value uint32) error {
	if byteAddr == mmioWriteAddr {
		_, err := m.out.Write([]byte{byte(value)})
		return err
	}

	m.words[byteAddr/4] = value
	return nil
}
