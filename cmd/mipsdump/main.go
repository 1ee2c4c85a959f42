// Command mipsdump disassembles a raw big-endian word stream back to text.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mips32/internal/disasm"
)

func main() {
	log.SetFlags(0)

	cmd := &cobra.Command{
		Use:   "mipsdump <input-file> [output-file]",
		Short: "Disassemble a raw MIPS word stream into text",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	text, err := disasm.Disassemble(code)
	if err != nil {
		return fmt.Errorf("disassembly failed: %w", err)
	}

	if len(args) == 1 {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(args[1], []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	log.Printf("Disassembly written to %s", args[1])
	return nil
}
