// Command mipsasm assembles a MIPS source file into a raw big-endian word
// stream, or prints a hex dump when no output path is given.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mips32/internal/asm"
)

func main() {
	log.SetFlags(0)

	cmd := &cobra.Command{
		Use:   "mipsasm <source-file> [output-file]",
		Short: "Assemble a MIPS source file into a big-endian word stream",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	code, err := asm.Assemble(string(src))
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	if len(args) == 1 {
		for i, b := range code {
			fmt.Printf("%02X ", b)
			if (i+1)%16 == 0 {
				fmt.Println()
			}
		}
		fmt.Println()
		return nil
	}

	if err := os.WriteFile(args[1], code, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	log.Printf("Assembled %d bytes to %s", len(code), args[1])
	return nil
}
