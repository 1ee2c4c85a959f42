// Package loader reads a previously-assembled raw big-endian word stream
// off disk, independent of the assembler, so a VM can run a .bin image
// directly.
package loader

import (
	"fmt"
	"os"
)

// Load reads path and validates it is a whole number of 32-bit
// big-endian words (no header, no trailing padding).
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("load %s: length %d is not a multiple of 4 bytes", path, len(data))
	}
	return data, nil
}
