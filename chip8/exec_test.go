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

package chip8_test

import (
	"fmt"
	"testing"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/retroenv/retrogolib/assert"
)

type testRegisters struct {
	V  map[uint8]uint8
	PC uint16
}

type testCase struct {
	Name   string
	Op     uint16
	Input  testRegisters
	Output testRegisters
}

func testExecSuccess(t *testing.T, test *testCase) {
	c := newMachine(t)
	for r, v := range test.Input.V {
		c.V[r] = v
	}
	if test.Input.PC != 0 {
		c.PC = test.Input.PC
	}

	assert.NoError(t, exec(c, test.Op))

	// registers not named in Output keep their value
	for i := 0; i < 16; i++ {
		expected, ok := test.Output.V[uint8(i)]
		if !ok {
			expected = test.Input.V[uint8(i)]
		}
		if c.V[i] != expected {
			t.Errorf("Register mismatch\nwant:%#02x (V%X)\nhave:%#02x",
				expected, i, c.V[i])
		}
	}

	if c.PC != test.Output.PC {
		t.Errorf("Program counter mismatch\nwant:%#04x\nhave:%#04x",
			test.Output.PC, c.PC)
	}
}

func TestExec(t *testing.T) {
	tests := []testCase{
		{
			Name:   "SE VX,NN taken",
			Op:     0x3A42,
			Input:  testRegisters{V: map[uint8]uint8{0xA: 0x42}},
			Output: testRegisters{PC: 0x204},
		},
		{
			Name:   "SE VX,NN not taken",
			Op:     0x3A42,
			Input:  testRegisters{V: map[uint8]uint8{0xA: 0x41}},
			Output: testRegisters{PC: 0x202},
		},
		{
			Name:   "SNE VX,NN taken",
			Op:     0x4A42,
			Input:  testRegisters{V: map[uint8]uint8{0xA: 0x41}},
			Output: testRegisters{PC: 0x204},
		},
		{
			Name:   "SNE VX,NN not taken",
			Op:     0x4A42,
			Input:  testRegisters{V: map[uint8]uint8{0xA: 0x42}},
			Output: testRegisters{PC: 0x202},
		},
		{
			Name:   "SE VX,VY taken",
			Op:     0x5120,
			Input:  testRegisters{V: map[uint8]uint8{1: 7, 2: 7}},
			Output: testRegisters{PC: 0x204},
		},
		{
			Name:   "SE VX,VY not taken",
			Op:     0x5120,
			Input:  testRegisters{V: map[uint8]uint8{1: 7, 2: 8}},
			Output: testRegisters{PC: 0x202},
		},
		{
			Name:   "SNE VX,VY taken",
			Op:     0x9120,
			Input:  testRegisters{V: map[uint8]uint8{1: 7, 2: 8}},
			Output: testRegisters{PC: 0x204},
		},
		{
			Name:   "SNE VX,VY not taken",
			Op:     0x9120,
			Input:  testRegisters{V: map[uint8]uint8{1: 7, 2: 7}},
			Output: testRegisters{PC: 0x202},
		},
		{
			Name:   "skip from a non-default PC",
			Op:     0x3000,
			Input:  testRegisters{PC: 0x300},
			Output: testRegisters{PC: 0x304},
		},
		{
			Name:   "LD VX,NN",
			Op:     0x6EAB,
			Output: testRegisters{V: map[uint8]uint8{0xE: 0xAB}, PC: 0x202},
		},
		{
			Name:   "ADD VX,NN wraps without flag",
			Op:     0x7310,
			Input:  testRegisters{V: map[uint8]uint8{3: 0xF8, 0xF: 0x55}},
			Output: testRegisters{V: map[uint8]uint8{3: 0x08}, PC: 0x202},
		},
		{
			Name:   "LD VX,VY",
			Op:     0x8120,
			Input:  testRegisters{V: map[uint8]uint8{1: 0x11, 2: 0x22}},
			Output: testRegisters{V: map[uint8]uint8{1: 0x22}, PC: 0x202},
		},
		{
			Name:   "OR VX,VY",
			Op:     0x8121,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xF0, 2: 0x0C}},
			Output: testRegisters{V: map[uint8]uint8{1: 0xFC}, PC: 0x202},
		},
		{
			Name:   "AND VX,VY",
			Op:     0x8122,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xF0, 2: 0x3C}},
			Output: testRegisters{V: map[uint8]uint8{1: 0x30}, PC: 0x202},
		},
		{
			Name:   "XOR VX,VY",
			Op:     0x8123,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xF0, 2: 0x3C}},
			Output: testRegisters{V: map[uint8]uint8{1: 0xCC}, PC: 0x202},
		},
		{
			Name:   "SUB VX,VY equal operands clear the flag",
			Op:     0x8125,
			Input:  testRegisters{V: map[uint8]uint8{1: 0x10, 2: 0x10, 0xF: 1}},
			Output: testRegisters{V: map[uint8]uint8{1: 0, 0xF: 0}, PC: 0x202},
		},
		{
			Name:   "SHR VX,VY shifts VY",
			Op:     0x8126,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xFF, 2: 0x05}},
			Output: testRegisters{V: map[uint8]uint8{1: 0x02, 0xF: 1}, PC: 0x202},
		},
		{
			Name:   "SHL VX,VY shifts VY",
			Op:     0x812E,
			Input:  testRegisters{V: map[uint8]uint8{1: 0x00, 2: 0x81}},
			Output: testRegisters{V: map[uint8]uint8{1: 0x02, 0xF: 1}, PC: 0x202},
		},
		{
			Name:   "ADD VF,VY result overwrites the carry",
			Op:     0x8F14,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xFF, 0xF: 0x02}},
			Output: testRegisters{V: map[uint8]uint8{0xF: 0x01}, PC: 0x202},
		},
		{
			Name:   "ADD VX,VF uses VF before the carry is written",
			Op:     0x81F4,
			Input:  testRegisters{V: map[uint8]uint8{1: 0xFF, 0xF: 0x02}},
			Output: testRegisters{V: map[uint8]uint8{1: 0x01, 0xF: 1}, PC: 0x202},
		},
	}

	for i := range tests {
		test := &tests[i]
		t.Run(test.Name, func(t *testing.T) {
			testExecSuccess(t, test)
		})
	}
}

func runALU(t *testing.T, op uint16, check func(a, b, res, flag uint8) error) {
	t.Helper()
	c := newMachine(t)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c.PC = chip8.ProgramStart
			c.V[1] = uint8(a)
			c.V[2] = uint8(b)
			c.V[0xF] = 0xAA
			if err := exec(c, op); err != nil {
				t.Fatal(err)
			}
			if err := check(uint8(a), uint8(b), c.V[1], c.V[0xF]); err != nil {
				t.Fatalf("%04X with V1=%02X V2=%02X: %v", op, a, b, err)
			}
		}
	}
}

func boolFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func expect(res, wantRes, flag, wantFlag uint8) error {
	if res != wantRes || flag != wantFlag {
		return fmt.Errorf("want %02X flag %d, have %02X flag %d",
			wantRes, wantFlag, res, flag)
	}
	return nil
}

func TestAddCarryAll(t *testing.T) {
	runALU(t, 0x8124, func(a, b, res, flag uint8) error {
		sum := int(a) + int(b)
		return expect(res, uint8(sum%256), flag, boolFlag(sum > 255))
	})
}

func TestSubBorrowAll(t *testing.T) {
	runALU(t, 0x8125, func(a, b, res, flag uint8) error {
		return expect(res, uint8((int(a)-int(b)+256)%256), flag, boolFlag(a > b))
	})
}

func TestSubnBorrowAll(t *testing.T) {
	runALU(t, 0x8127, func(a, b, res, flag uint8) error {
		return expect(res, uint8((int(b)-int(a)+256)%256), flag, boolFlag(b > a))
	})
}

func TestShiftAll(t *testing.T) {
	runALU(t, 0x8126, func(a, b, res, flag uint8) error {
		return expect(res, b/2, flag, b%2)
	})
	runALU(t, 0x812E, func(a, b, res, flag uint8) error {
		return expect(res, uint8(int(b)*2%256), flag, b/128)
	})
}
