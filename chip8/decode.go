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

// An Opcode is a 16-bit instruction word, stored big-endian in memory.
//
//	F X Y Z
//	  N N N  addr
//	    N N  byte
type Opcode uint16

// Family is the top nibble, selecting the operation category.
func (op Opcode) Family() uint8 { return uint8(op >> 12) }

// X is the second nibble, a general register index.
func (op Opcode) X() uint8 { return uint8(op>>8) & 0x0F }

// Y is the third nibble, a general register index.
func (op Opcode) Y() uint8 { return uint8(op>>4) & 0x0F }

// Z is the bottom nibble.
func (op Opcode) Z() uint8 { return uint8(op) & 0x0F }

// Addr is the bottom 12 bits.
func (op Opcode) Addr() uint16 { return uint16(op) & 0x0FFF }

// Byte is the bottom 8 bits, the immediate operand.
func (op Opcode) Byte() uint8 { return uint8(op) }

// Bytes returns the opcode as it is laid out in memory.
func (op Opcode) Bytes() [2]byte { return [2]byte{byte(op >> 8), byte(op)} }

func (op Opcode) String() string { return fmt.Sprintf("%04X", uint16(op)) }

// Decode combines two bytes into an opcode.
func Decode(hi, lo byte) Opcode { return Opcode(uint16(hi)<<8 | uint16(lo)) }

// fetch reads the opcode at the program counter.
func (c *Chip8) fetch() (Opcode, error) {
	w, err := c.Memory.Word(c.PC)
	return Opcode(w), err
}
