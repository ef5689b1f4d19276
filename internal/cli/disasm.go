/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/glassyeyedfish/chip-8/chip8"
)

// PrintDisassembly writes a listing of program to w, one instruction per
// line with its address, raw data, mnemonic, printable ascii and description.
func PrintDisassembly(w io.Writer, program []byte) error {
	tw := new(tabwriter.Writer)
	tw.Init(w, 8, 8, 0, '\t', 0)
	fmt.Fprintln(tw, "addr\topcode\tpseudo-code\tascii\tdescription\t")

	for _, i := range chip8.Disassemble(program) {
		asciitext := ""
		if ascii := i.ASCII(); len(ascii) != 0 {
			asciitext = fmt.Sprintf("`%s`", ascii)
		}

		opcodeFormatter := "%04X"
		if i.Size() == 1 {
			opcodeFormatter = "%02X"
		}

		fmt.Fprintf(tw, "%04X\t"+opcodeFormatter+"\t%v\t%s\t%s\n",
			i.Address, i.Opcode(), i, asciitext, i.Description)
	}

	return tw.Flush()
}
