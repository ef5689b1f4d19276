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

// flag is the register receiving carry, borrow and shift-out bits.
const flag = 0xF

type handler func(c *Chip8, op Opcode) error

// handlers indexed by opcode family. Families without an instruction in this
// interpreter are no-ops.
var families = [16]handler{
	0x0: execSys,
	0x1: execJp,
	0x2: execCall,
	0x3: execSeByte,
	0x4: execSneByte,
	0x5: execSeReg,
	0x6: execLdByte,
	0x7: execAddByte,
	0x8: execALU,
	0x9: execSneReg,
	0xA: nop,
	0xB: nop,
	0xC: nop,
	0xD: nop,
	0xE: nop,
	0xF: nop,
}

// 0NNN, dispatched on NNN
var sysOps = map[uint16]handler{
	0x0E0: execCls,
	0x0EE: execRet,
}

// 8XYZ, dispatched on Z
var aluOps = [16]handler{
	0x0: aluOp(func(x, y uint8) uint8 { return y }),
	0x1: aluOp(func(x, y uint8) uint8 { return x | y }),
	0x2: aluOp(func(x, y uint8) uint8 { return x & y }),
	0x3: aluOp(func(x, y uint8) uint8 { return x ^ y }),
	0x4: aluFlagOp(func(x, y uint8) (uint8, bool) {
		sum := uint16(x) + uint16(y)
		return uint8(sum), sum > 0xFF
	}),
	// strictly greater: equal operands clear the flag
	0x5: aluFlagOp(func(x, y uint8) (uint8, bool) { return x - y, x > y }),
	0x6: aluFlagOp(func(x, y uint8) (uint8, bool) { return y >> 1, y&0x01 != 0 }),
	0x7: aluFlagOp(func(x, y uint8) (uint8, bool) { return y - x, y > x }),
	0x8: nop,
	0x9: nop,
	0xA: nop,
	0xB: nop,
	0xC: nop,
	0xD: nop,
	0xE: aluFlagOp(func(x, y uint8) (uint8, bool) { return y << 1, y&0x80 != 0 }),
	0xF: nop,
}

// Step runs one fetch-decode-execute cycle. Every cycle advances the program
// counter by 2 after the instruction ran, so jumps and calls store their
// target minus 2 and skips add an extra 2.
//
// Errors are fatal: the machine can't meaningfully continue past them.
func (c *Chip8) Step() error {
	if c.PC >= MemorySize {
		return &PCOutOfRangeErr{c.PC}
	}

	pc := c.PC
	op, err := c.fetch()
	if err != nil {
		return err
	}

	err = c.execute(op)
	if err != nil {
		return err
	}
	c.PC += 2

	if c.Tracer != nil {
		c.Tracer.Trace(c.trace(pc, op))
	}

	if c.PC >= MemorySize {
		return &PCOutOfRangeErr{c.PC}
	}
	return nil
}

func (c *Chip8) execute(op Opcode) error {
	return families[op.Family()](c, op)
}

func nop(c *Chip8, op Opcode) error { return nil }

func execSys(c *Chip8, op Opcode) error {
	if h, ok := sysOps[op.Addr()]; ok {
		return h(c, op)
	}
	// SYS NNN would call native code on the original machine
	return nil
}

// CLS
func execCls(c *Chip8, op Opcode) error {
	c.Screen.Clear()
	return nil
}

// RET
func execRet(c *Chip8, op Opcode) error {
	addr, err := c.Stack.Pop()
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

// JP NNN
func execJp(c *Chip8, op Opcode) error {
	c.PC = op.Addr() - 2
	return nil
}

// CALL NNN
func execCall(c *Chip8, op Opcode) error {
	// push the address of the call itself, the +2 at the end of the cycle
	// that executes RET moves past it
	err := c.Stack.Push(c.PC)
	if err != nil {
		return err
	}
	c.PC = op.Addr() - 2
	return nil
}

func (c *Chip8) skipIf(cond bool) {
	if cond {
		c.PC += 2
	}
}

// SE VX,NN
func execSeByte(c *Chip8, op Opcode) error {
	c.skipIf(c.V[op.X()] == op.Byte())
	return nil
}

// SNE VX,NN
func execSneByte(c *Chip8, op Opcode) error {
	c.skipIf(c.V[op.X()] != op.Byte())
	return nil
}

// SE VX,VY
func execSeReg(c *Chip8, op Opcode) error {
	c.skipIf(c.V[op.X()] == c.V[op.Y()])
	return nil
}

// SNE VX,VY
func execSneReg(c *Chip8, op Opcode) error {
	c.skipIf(c.V[op.X()] != c.V[op.Y()])
	return nil
}

// LD VX,NN
func execLdByte(c *Chip8, op Opcode) error {
	c.V[op.X()] = op.Byte()
	return nil
}

// ADD VX,NN (wraps around, VF untouched)
func execAddByte(c *Chip8, op Opcode) error {
	c.V[op.X()] += op.Byte()
	return nil
}

func execALU(c *Chip8, op Opcode) error {
	return aluOps[op.Z()](c, op)
}

func aluOp(f func(x, y uint8) uint8) handler {
	return func(c *Chip8, op Opcode) error {
		c.V[op.X()] = f(c.V[op.X()], c.V[op.Y()])
		return nil
	}
}

// operands are read before VF is written and VX is written last, so with
// X = F the result wins over the flag
func aluFlagOp(f func(x, y uint8) (uint8, bool)) handler {
	return func(c *Chip8, op Opcode) error {
		res, set := f(c.V[op.X()], c.V[op.Y()])
		c.V[flag] = 0
		if set {
			c.V[flag] = 1
		}
		c.V[op.X()] = res
		return nil
	}
}
