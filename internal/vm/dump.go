package vm

import (
	"fmt"
	"io"
)

// DumpRegisters prints the register file as 8 rows of 4 columns, each
// column "$NN : 0xHHHHHHHH", then a final line with HI/LO/PC.
func (v *VM) DumpRegisters(w io.Writer) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 4; col++ {
			r := row*4 + col
			if col > 0 {
				fmt.Fprint(w, "    ")
			}
			fmt.Fprintf(w, "$%02d : 0x%08X", r, v.CPU.R[r])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, " hi : 0x%08X    lo : 0x%08X    pc : 0x%08X\n", v.CPU.HI, v.CPU.LO, v.CPU.PC)
}
