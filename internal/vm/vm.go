// Package vm implements the fetch/decode/execute interpreter loop over
// the register/memory model in internal/cpu.
package vm

import (
	"bufio"
	"fmt"
	"io"

	"mips32/internal/cpu"
	"mips32/internal/inst"
)

// InitialFill is the value the shell initializes r3..r29 to before a run.
const InitialFill = 0xFFFFFFF6

// VM owns a CPU and its Memory for the duration of one program's
// execution.
type VM struct {
	CPU *cpu.CPU
	Mem *cpu.Memory
}

// New returns a VM with a freshly initialized CPU (see cpu.New) bound to
// the given I/O streams for MMIO. in is a *bufio.Reader so a caller that
// also reads other input from the same stream (e.g. an interactive
// prompt before the run starts) can share it with the VM's memory
// instead of each wrapping the stream in its own independent buffer.
func New(in *bufio.Reader, out io.Writer) *VM {
	return &VM{
		CPU: cpu.New(),
		Mem: cpu.NewMemory(in, out),
	}
}

// LoadImage loads a program image at word address 0 and resets PC to 0,
// the entry point both the assembler and loader agree on.
func (v *VM) LoadImage(image []byte) {
	v.Mem.LoadImage(image)
	v.CPU.PC = 0
}

// Run steps the interpreter until it halts or an error occurs.
func (v *VM) Run() error {
	for {
		halted, err := v.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// RunLimited is Run bounded by a maximum instruction count, a shell-level
// safety valve so a runaway program cannot hang the CLI forever. It is
// not part of the interpreter's core semantics — the core Run has no
// such limit.
func (v *VM) RunLimited(maxSteps int) (steps int, err error) {
	for steps = 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		halted, err := v.Step()
		if err != nil {
			return steps, err
		}
		if halted {
			return steps, nil
		}
	}
	return steps, fmt.Errorf("execution did not halt within %d instructions", maxSteps)
}

// Step executes exactly one instruction, or reports halted=true if PC
// already equals the sentinel return address before fetch.
func (v *VM) Step() (halted bool, err error) {
	if v.CPU.Halted() {
		return true, nil
	}

	word, err := v.Mem.Read(v.CPU.PC)
	if err != nil {
		return false, fmt.Errorf("fetch at PC=0x%08X: %w", v.CPU.PC, err)
	}
	decoded := inst.Decode(word)

	v.CPU.PC += 4

	if err := v.execute(decoded); err != nil {
		return false, fmt.Errorf("execute %s at PC=0x%08X: %w", decoded.Mnemonic(), v.CPU.PC-4, err)
	}
	return false, nil
}

func signExtend16(imm uint16) int32 {
	return int32(int16(imm))
}

// execute dispatches one decoded instruction. All register arithmetic
// wraps modulo 2^32 unless noted; 16-bit immediates are always sign
// extended to 32 bits first.
func (v *VM) execute(i inst.Instruction) error {
	c := v.CPU
	switch i.Op {
	case inst.Add:
		c.R[i.D] = c.R[i.S] + c.R[i.T]
	case inst.Sub:
		c.R[i.D] = c.R[i.S] - c.R[i.T]
	case inst.Slt:
		if int32(c.R[i.S]) < int32(c.R[i.T]) {
			c.R[i.D] = 1
		} else {
			c.R[i.D] = 0
		}
	case inst.Sltu:
		// Intentionally <= rather than <, despite the mnemonic.
		if c.R[i.S] <= c.R[i.T] {
			c.R[i.D] = 1
		} else {
			c.R[i.D] = 0
		}
	case inst.Mult:
		product := int64(int32(c.R[i.S])) * int64(int32(c.R[i.T]))
		c.LO = uint32(product)
		c.HI = uint32(product >> 32)
	case inst.Multu:
		product := uint64(c.R[i.S]) * uint64(c.R[i.T])
		c.LO = uint32(product)
		c.HI = uint32(product >> 32)
	case inst.Div:
		if c.R[i.T] != 0 {
			s, t := int32(c.R[i.S]), int32(c.R[i.T])
			c.LO = uint32(s / t)
			c.HI = uint32(s % t)
		}
	case inst.Divu:
		if c.R[i.T] != 0 {
			c.LO = c.R[i.S] / c.R[i.T]
			c.HI = c.R[i.S] % c.R[i.T]
		}
	case inst.Mfhi:
		c.R[i.D] = c.HI
	case inst.Mflo:
		c.R[i.D] = c.LO
	case inst.Lis:
		w, err := v.Mem.Read(c.PC)
		if err != nil {
			return fmt.Errorf("lis: %w", err)
		}
		c.R[i.D] = w
		c.PC += 4
	case inst.Lw:
		addr := uint32(int32(c.R[i.S]) + signExtend16(i.Imm))
		w, err := v.Mem.Read(addr)
		if err != nil {
			return fmt.Errorf("lw: %w", err)
		}
		c.R[i.T] = w
	case inst.Sw:
		addr := uint32(int32(c.R[i.S]) + signExtend16(i.Imm))
		if err := v.Mem.Write(addr, c.R[i.T]); err != nil {
			return fmt.Errorf("sw: %w", err)
		}
	case inst.Beq:
		// Branches on register-index equality as well as on value
		// equality; the index check only fires for beq $x,$x,L forms,
		// where the values are equal as well.
		if i.S == i.T || c.R[i.S] == c.R[i.T] {
			c.PC = uint32(int32(c.PC) + 4*signExtend16(i.Imm))
		}
	case inst.Bne:
		if i.S != i.T && c.R[i.S] != c.R[i.T] {
			c.PC = uint32(int32(c.PC) + 4*signExtend16(i.Imm))
		}
	case inst.Jr:
		c.PC = c.R[i.S]
	case inst.Jalr:
		target := c.R[i.S]
		c.R[31] = c.PC
		c.PC = target
	case inst.Word:
		return fmt.Errorf(".word executed as an instruction (unrecognized opcode 0x%08X)", i.Word)
	default:
		return fmt.Errorf("unknown instruction op %d", i.Op)
	}
	return nil
}
