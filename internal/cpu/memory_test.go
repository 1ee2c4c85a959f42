package cpu_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mips32/internal/cpu"
)

func TestMemoryLoadImageAndRead(t *testing.T) {
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	mem.LoadImage([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00, 0x00, 0x01})

	w0, err := mem.Read(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), w0)

	w1, err := mem.Read(4)
	require.NoError(t, err)
	require.Equal(t, uint32(1), w1)
}

func TestMemoryReadUninitializedIsFatal(t *testing.T) {
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	_, err := mem.Read(0x1000)
	require.Error(t, err)
}

func TestMemoryWriteThenRead(t *testing.T) {
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	require.NoError(t, mem.Write(40, 0x12345678))
	w, err := mem.Read(40)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), w)
}

func TestMemoryMMIOReadConsumesOneByteZeroExtended(t *testing.T) {
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("A")), &bytes.Buffer{})
	w, err := mem.Read(0xFFFF_0004)
	require.NoError(t, err)
	require.Equal(t, uint32(0x41), w)
}

func TestMemoryMMIOReadAtEOFReturns0xFF(t *testing.T) {
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	w, err := mem.Read(0xFFFF_0004)
	require.NoError(t, err, "EOF on the input port must not be a fatal error")
	require.Equal(t, uint32(0xFF), w)
}

func TestMemoryMMIOWriteEmitsLowByteAndSkipsBackingMap(t *testing.T) {
	var out bytes.Buffer
	mem := cpu.NewMemory(bufio.NewReader(strings.NewReader("")), &out)
	require.NoError(t, mem.Write(0xFFFF_000C, 0x00000041))
	require.Equal(t, "A", out.String())

	_, err := mem.Read(0xFFFF_000C)
	require.Error(t, err, "the MMIO write port must not become a readable memory word")
}
