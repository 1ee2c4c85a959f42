// Command mipsrun loads a MIPS source or binary image, prompts for the
// initial values of $1 and $2, initializes $3..$29 to 0xFFFFFFF6, runs to
// the halt sentinel, and prints the register dump.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mips32/internal/asm"
	"mips32/internal/loader"
	"mips32/internal/vm"
)

func main() {
	log.SetFlags(0)

	var r1Flag, r2Flag string
	var maxCycles int

	cmd := &cobra.Command{
		Use:   "mipsrun <file>",
		Short: "Assemble or load a MIPS program and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], r1Flag, r2Flag, maxCycles)
		},
	}
	cmd.Flags().StringVar(&r1Flag, "r1", "", "initial value for $1 (unsigned or signed decimal); prompted if omitted")
	cmd.Flags().StringVar(&r2Flag, "r2", "", "initial value for $2 (unsigned or signed decimal); prompted if omitted")
	cmd.Flags().IntVar(&maxCycles, "cycles", 1_000_000, "maximum number of instructions to execute")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(filename, r1Flag, r2Flag string, maxCycles int) error {
	code, err := loadProgram(filename)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d bytes from %s", len(code), filename)

	// One buffered reader over stdin, shared between the interactive
	// register prompt below and the VM's MMIO input port, so neither
	// consumer can buffer ahead past bytes the other one needs.
	stdin := bufio.NewReader(os.Stdin)

	m := vm.New(stdin, os.Stdout)
	m.LoadImage(code)

	r1, err := resolveRegister(stdin, "$1", r1Flag)
	if err != nil {
		return err
	}
	r2, err := resolveRegister(stdin, "$2", r2Flag)
	if err != nil {
		return err
	}
	m.CPU.R[1] = r1
	m.CPU.R[2] = r2
	for r := 3; r <= 29; r++ {
		m.CPU.R[r] = vm.InitialFill
	}

	steps, err := m.RunLimited(maxCycles)
	if err != nil {
		m.DumpRegisters(os.Stdout)
		return fmt.Errorf("execution failed after %d instructions: %w", steps, err)
	}

	log.Printf("Halted after %d instructions", steps)
	m.DumpRegisters(os.Stdout)
	return nil
}

// loadProgram assembles a .s/.asm source file, or loads a raw .bin image,
// based on the file extension.
func loadProgram(filename string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".s", ".asm":
		src, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading source file: %w", err)
		}
		code, err := asm.Assemble(string(src))
		if err != nil {
			return nil, fmt.Errorf("assembly failed: %w", err)
		}
		return code, nil
	case ".bin":
		return loader.Load(filename)
	default:
		return nil, fmt.Errorf("unknown file extension %q: use .s, .asm, or .bin", filepath.Ext(filename))
	}
}

// resolveRegister returns the flag value if given, otherwise prompts on
// stdin for a line, accepting unsigned or signed decimal.
func resolveRegister(stdin *bufio.Reader, name, flagValue string) (uint32, error) {
	if flagValue != "" {
		return parseRegisterValue(flagValue)
	}

	fmt.Printf("%s = ", name)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	return parseRegisterValue(strings.TrimSpace(line))
}

// parseRegisterValue accepts unsigned or signed decimal, storing the
// result two's-complement.
func parseRegisterValue(s string) (uint32, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	return 0, fmt.Errorf("invalid register value %q", s)
}
