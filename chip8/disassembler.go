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

package chip8

import "fmt"

// An Instruction is one decoded word (or a trailing odd byte) of a program.
type Instruction struct {
	// Address the instruction is loaded at.
	Address uint16
	// 1 or 2 bytes of raw data.
	Data []byte
	// Pseudo-asm representation.
	Mnemonic string
	// Detailed description of what the instruction does.
	Description string
}

func (i Instruction) String() string { return i.Mnemonic }

// Opcode returns the data as a 16-bit integer. A 1-byte instruction returns
// its only byte.
func (i Instruction) Opcode() (res uint16) {
	res = uint16(i.Data[0])
	if len(i.Data) == 2 {
		res = res<<8 | uint16(i.Data[1])
	}
	return
}

// Size returns the size of the instruction in bytes.
func (i Instruction) Size() int { return len(i.Data) }

// ASCII returns the ASCII representation of the raw data for this
// instruction, or an empty string if the data is not printable ascii.
func (i Instruction) ASCII() (res string) {
	if isPrintableASCII(i.Data) {
		res = string(i.Data)
	}
	return
}

type disasmFunc func(op Opcode) (mnemonic, description string)

const ignored = " Ignored by this interpreter."

var disasmFamilies = [16]disasmFunc{
	0x0: disasmSys,
	0x1: func(op Opcode) (string, string) {
		return fmt.Sprintf("JP %03X", op.Addr()), "1NNN: Jumps to address NNN."
	},
	0x2: func(op Opcode) (string, string) {
		return fmt.Sprintf("CALL %03X", op.Addr()),
			"2NNN: Calls subroutine at NNN."
	},
	0x3: func(op Opcode) (string, string) {
		return fmt.Sprintf("SE V%1X,%02X", op.X(), op.Byte()),
			"3XNN: Skips the next instruction if VX equals NN."
	},
	0x4: func(op Opcode) (string, string) {
		return fmt.Sprintf("SNE V%1X,%02X", op.X(), op.Byte()),
			"4XNN: Skips the next instruction if VX doesn't equal NN."
	},
	0x5: func(op Opcode) (string, string) {
		return fmt.Sprintf("SE V%1X,V%1X", op.X(), op.Y()),
			"5XY0: Skips the next instruction if VX equals VY."
	},
	0x6: func(op Opcode) (string, string) {
		return fmt.Sprintf("LD V%1X,%02X", op.X(), op.Byte()),
			"6XNN: Sets VX to NN."
	},
	0x7: func(op Opcode) (string, string) {
		return fmt.Sprintf("ADD V%1X,%02X", op.X(), op.Byte()),
			"7XNN: Adds NN to VX, VF is not affected."
	},
	0x8: disasmALU,
	0x9: func(op Opcode) (string, string) {
		return fmt.Sprintf("SNE V%1X,V%1X", op.X(), op.Y()),
			"9XY0: Skips the next instruction if VX doesn't equal VY."
	},
	0xA: func(op Opcode) (string, string) {
		return fmt.Sprintf("LD I,%03X", op.Addr()),
			"ANNN: Sets I to NNN." + ignored
	},
	0xB: func(op Opcode) (string, string) {
		return fmt.Sprintf("JP V0,%03X", op.Addr()),
			"BNNN: Jumps to NNN plus V0." + ignored
	},
	0xC: func(op Opcode) (string, string) {
		return fmt.Sprintf("RND V%1X,%02X", op.X(), op.Byte()),
			"CXNN: Sets VX to a random number masked by NN." + ignored
	},
	0xD: func(op Opcode) (string, string) {
		return fmt.Sprintf("DRW V%1X,V%1X,%1X", op.X(), op.Y(), op.Z()),
			"DXYN: Draws an 8xN sprite from I at VX,VY." + ignored
	},
	0xE: func(op Opcode) (string, string) {
		return fmt.Sprintf("KEY V%1X,%02X", op.X(), op.Byte()),
			"EXNN: Keyboard conditional skip." + ignored
	},
	0xF: func(op Opcode) (string, string) {
		return fmt.Sprintf("MISC V%1X,%02X", op.X(), op.Byte()),
			"FXNN: Timers, font, BCD and block load/store." + ignored
	},
}

var disasmALUOps = map[uint8]struct{ name, desc string }{
	0x0: {"LD", "8XY0: Sets VX to the value of VY."},
	0x1: {"OR", "8XY1: Sets VX to VX | VY (bit-wise OR)."},
	0x2: {"AND", "8XY2: Sets VX to VX & VY (bit-wise AND)."},
	0x3: {"XOR", "8XY3: Sets VX to VX ^ VY (bit-wise XOR)."},
	0x4: {"ADD", "8XY4: Adds VY to VX. VF is set to 1 on carry."},
	0x5: {"SUB", "8XY5: Subtracts VY from VX. VF is set to 1 if VX > VY."},
	0x6: {"SHR", "8XY6: Sets VX to VY >> 1. VF is set to the shifted out bit."},
	0x7: {"SUBN", "8XY7: Sets VX to VY - VX. VF is set to 1 if VY > VX."},
	0xE: {"SHL", "8XYE: Sets VX to VY << 1. VF is set to the shifted out bit."},
}

func disasmSys(op Opcode) (string, string) {
	switch op.Addr() {
	case 0x0E0:
		return "CLS", "00E0: Clears the screen."
	case 0x0EE:
		return "RET", "00EE: Returns from a subroutine."
	}
	return fmt.Sprintf("SYS %03X", op.Addr()),
		"0NNN: Calls native code at NNN." + ignored
}

func disasmALU(op Opcode) (string, string) {
	alu, ok := disasmALUOps[op.Z()]
	if !ok {
		return fmt.Sprintf("DW %04X", uint16(op)), "Unknown / Raw Data"
	}
	return fmt.Sprintf("%s V%1X,V%1X", alu.name, op.X(), op.Y()), alu.desc
}

// Disassemble decodes program as a sequence of 2-byte instructions loaded at
// ProgramStart. An odd trailing byte is returned as raw data.
func Disassemble(program []byte) []Instruction {
	res := make([]Instruction, 0, (len(program)+1)/2)

	for i := 0; i < len(program); i += 2 {
		addr := uint16(ProgramStart + i)

		if i+1 >= len(program) {
			res = append(res, Instruction{
				Address:     addr,
				Data:        program[i : i+1],
				Mnemonic:    fmt.Sprintf("DB %02X", program[i]),
				Description: "Unknown / Raw Data",
			})
			break
		}

		op := Decode(program[i], program[i+1])
		mnemonic, desc := disasmFamilies[op.Family()](op)
		res = append(res, Instruction{
			Address:     addr,
			Data:        program[i : i+2],
			Mnemonic:    mnemonic,
			Description: desc,
		})
	}

	return res
}
