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

// A StackOverflowErr is returned when a call is made with the call stack
// already holding Capacity return addresses.
type StackOverflowErr struct {
	Capacity int
}

func (e *StackOverflowErr) Error() string {
	return fmt.Sprintf("stack overflow (capacity: %v)", e.Capacity)
}

// A StackUnderflowErr is returned when a return is executed with an empty
// call stack.
type StackUnderflowErr struct{}

func (e *StackUnderflowErr) Error() string {
	return "stack underflow"
}

// A PCOutOfRangeErr is returned when the program counter reaches or exceeds
// the top of memory.
type PCOutOfRangeErr struct {
	PC uint16
}

func (e *PCOutOfRangeErr) Error() string {
	return fmt.Sprintf("program counter above allocated memory (PC: %04X)",
		e.PC)
}

// An AccessErr is returned when a read falls outside of memory.
type AccessErr struct {
	Addr uint16
}

func (e *AccessErr) Error() string {
	return fmt.Sprintf("tried to access invalid memory at %04X", e.Addr)
}

// A RomTooLargeErr is returned upon attempting to load a program that
// exceeds the program space.
type RomTooLargeErr struct {
	Size int
	Free int
}

func (e *RomTooLargeErr) Error() string {
	return fmt.Sprintf("ROM too large (program size: %v, free memory: %v)",
		e.Size, e.Free)
}

// A RomNotFoundErr is returned when the program image can't be read.
type RomNotFoundErr struct {
	Path string
	Err  error
}

func (e *RomNotFoundErr) Error() string {
	return fmt.Sprintf("could not load '%s': %v", e.Path, e.Err)
}

func (e *RomNotFoundErr) Unwrap() error { return e.Err }

// A SettingsErr is returned by Settings.Validate.
type SettingsErr struct {
	Field  string
	Reason string
}

func (e *SettingsErr) Error() string {
	return fmt.Sprintf("invalid settings: %s %s", e.Field, e.Reason)
}
