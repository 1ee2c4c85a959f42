package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mips32/internal/cpu"
)

func TestNewInitialState(t *testing.T) {
	c := cpu.New()
	require.Equal(t, uint32(cpu.StackBase), c.R[30])
	require.Equal(t, uint32(cpu.SentinelReturn), c.R[31])
	require.Equal(t, uint32(0), c.PC)
	for r := 0; r < 30; r++ {
		require.Equalf(t, uint32(0), c.R[r], "r%d should start at zero", r)
	}
}

func TestHalted(t *testing.T) {
	c := cpu.New()
	require.False(t, c.Halted())
	c.PC = cpu.SentinelReturn
	require.True(t, c.Halted())
}

func TestRegisterZeroIsWritable(t *testing.T) {
	c := cpu.New()
	c.R[0] = 99
	require.Equal(t, uint32(99), c.R[0], "register 0 is not hardwired in this model")
}
