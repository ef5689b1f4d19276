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

// Package chip8 implements a CHIP-8 interpreter: the machine state, the
// fetch-decode-execute engine, a frame runner driving it through pluggable
// platform drivers, a ROM loader and a disassembler.
package chip8

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Registers is the register file.
type Registers struct {
	// V[0x0]~V[0xF] are 8-bit registers. V[0xF] doubles as the carry,
	// borrow and shift-out flag.
	V [16]uint8
	// 16-bit address register.
	I uint16
	// Program counter. Holds the address of the next instruction to fetch.
	PC uint16
}

// Chip8 holds the state of one virtual machine. Nothing in it is shared:
// any number of instances can run side by side.
type Chip8 struct {
	Memory Memory
	Registers
	Stack  *Stack
	Timers Timers
	Screen Display
	// Tracer, when set, is called after every executed instruction.
	Tracer Tracer

	settings Settings
	driver   string
	drv      Driver
	logger   *log.Logger

	lastTimerUpdate time.Time
	// step key state on the previous frame, for StepEdge
	stepWasHeld bool
	romSize     int
	checksum    uint64
}

// New initializes a new instance of Chip8 with the given settings. If settings
// is nil, DefaultSettings will be used.
// driver is the name of the platform driver that will be used.
func New(driver string, s *Settings, logger *log.Logger) (c *Chip8, err error) {
	factory := drivers[driver]
	if factory == nil {
		err = fmt.Errorf("driver %s not found", driver)
		return
	}

	if s == nil {
		s = DefaultSettings
	}

	err = s.Validate()
	if err != nil {
		return
	}

	drv := factory()
	c = &Chip8{
		Stack:    NewStack(s.StackSize),
		settings: *s,
		driver:   driver,
		drv:      drv,
		logger:   logger,
	}
	c.Reset()

	err = drv.OnInit(c)
	if err != nil {
		return nil, err
	}
	logger.Info("Machine created",
		log.String("driver", driver),
		log.Int("stack", s.StackSize),
		log.String("step", s.StepMode.String()))
	return
}

// Reset puts the machine back into its start-up state: memory zeroed with
// the font in low memory, registers cleared, PC at ProgramStart, empty stack,
// stopped timers and a blank screen.
func (c *Chip8) Reset() {
	c.Memory.Reset()
	c.Registers = Registers{PC: ProgramStart}
	c.Stack.Reset()
	c.Timers = Timers{}
	c.Screen.Clear()
	c.lastTimerUpdate = time.Time{}
	c.stepWasHeld = false
	c.romSize = 0
	c.checksum = 0
}

// String returns formatted information about the instance of the emulator.
func (c *Chip8) String() string {
	top := "-"
	if addr, ok := c.Stack.Top(); ok {
		top = fmt.Sprintf("%04X", addr)
	}
	return fmt.Sprintf("Chip8{Registers: [% 02X] I: %04X, "+
		"Stack: %v/%v (top: %s), PC: %04X, DT: %02X, ST: %02X, Screen: %v*%v}",
		c.V, c.I, c.Stack.Depth(), c.Stack.Cap(), top, c.PC,
		c.Timers.Delay, c.Timers.Sound, Width, Height)
}

// Driver returns the name of the platform driver in use by the emulator.
func (c *Chip8) Driver() string { return c.driver }

// Settings returns a copy of the settings the machine was created with.
func (c *Chip8) Settings() Settings { return c.settings }

// GetDriverData gets custom data from the driver in use.
// Returns nil if the data key is not found.
func (c *Chip8) GetDriverData(key string) interface{} {
	return c.drv.GetData(key)
}

// SetDriverData sets custom data on the driver in use.
func (c *Chip8) SetDriverData(key string, value interface{}) error {
	return c.drv.SetData(key, value)
}

// Close releases the driver's resources.
func (c *Chip8) Close() error {
	c.logger.Debug("Closing driver", log.String("driver", c.driver))
	return c.drv.Close()
}
