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

// Memory layout.
const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	// MaxProgramSize is the space between ProgramStart and the top of memory.
	MaxProgramSize = MemorySize - ProgramStart
	FontSize       = 16 * 5
)

// the 16 hex digit glyphs, 5 rows of 4 pixels each, stored at 0x000
var font = [FontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4k address space programs are loaded into and executed from.
// The first 512 bytes used to hold the original interpreter; only the font
// lives there now.
type Memory [MemorySize]byte

// Reset zeroes memory and copies the font table into low memory.
func (m *Memory) Reset() {
	*m = Memory{}
	copy(m[:], font[:])
}

// Load copies a program image to ProgramStart.
func (m *Memory) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return &RomTooLargeErr{len(program), MaxProgramSize}
	}
	copy(m[ProgramStart:], program)
	return nil
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= len(m) {
		return 0, &AccessErr{addr}
	}
	return m[addr], nil
}

// Word returns the big-endian 16-bit value stored at addr and addr+1.
func (m *Memory) Word(addr uint16) (uint16, error) {
	hi, err := m.Read(addr)
	if err != nil {
		return 0, err
	}
	lo, err := m.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
