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

// A Trace describes one executed instruction and the register file right
// after it ran.
type Trace struct {
	// Address the instruction was fetched from.
	PC     uint16    `json:"pc"`
	Opcode Opcode    `json:"opcode"`
	V      [16]uint8 `json:"v"`
	I      uint16    `json:"i"`
	Depth  int       `json:"depth"`
}

// A Tracer receives a Trace after every successful cycle. Implementations
// must not modify the machine.
type Tracer interface {
	Trace(t Trace)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(t Trace)

func (f TracerFunc) Trace(t Trace) { f(t) }

func (c *Chip8) trace(pc uint16, op Opcode) Trace {
	return Trace{
		PC:     pc,
		Opcode: op,
		V:      c.V,
		I:      c.I,
		Depth:  c.Stack.Depth(),
	}
}
