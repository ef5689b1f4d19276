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

// Stack is a fixed-capacity call stack of return addresses.
type Stack struct {
	frames []uint16
	// index of the next free slot
	sp int
}

// NewStack returns an empty stack with room for capacity frames.
func NewStack(capacity int) *Stack {
	return &Stack{frames: make([]uint16, capacity)}
}

// Push saves a return address.
func (s *Stack) Push(addr uint16) error {
	if s.sp >= len(s.frames) {
		return &StackOverflowErr{len(s.frames)}
	}
	s.frames[s.sp] = addr
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp <= 0 {
		return 0, &StackUnderflowErr{}
	}
	s.sp--
	return s.frames[s.sp], nil
}

// Top returns the most recently pushed address without removing it. ok is
// false when the stack is empty.
func (s *Stack) Top() (addr uint16, ok bool) {
	if s.sp == 0 {
		return 0, false
	}
	return s.frames[s.sp-1], true
}

// Depth returns the number of saved addresses.
func (s *Stack) Depth() int { return s.sp }

// Cap returns the maximum depth.
func (s *Stack) Cap() int { return len(s.frames) }

// Reset empties the stack.
func (s *Stack) Reset() { s.sp = 0 }

// Frames returns the saved addresses, oldest first. The slice aliases the
// stack and is only valid until the next Push or Pop.
func (s *Stack) Frames() []uint16 { return s.frames[:s.sp] }
