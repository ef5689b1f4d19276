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

import "time"

// StepMode selects how the frame runner gates instruction execution.
type StepMode int

const (
	// StepOff executes one instruction on every frame.
	StepOff StepMode = iota
	// StepLevel executes one instruction on every frame the driver's step
	// key is held down.
	StepLevel
	// StepEdge executes one instruction per press of the step key.
	StepEdge
)

func (m StepMode) String() string {
	switch m {
	case StepOff:
		return "off"
	case StepLevel:
		return "level"
	case StepEdge:
		return "edge"
	}
	return "unknown"
}

// Settings holds the configuration parameters for a Chip8 instance.
type Settings struct {
	// Maximum amount of nested calls.
	StackSize int
	// Instruction gating, see StepMode.
	StepMode StepMode
	// Delay between two frames of the runner. One instruction at most is
	// executed per frame.
	FrameInterval time.Duration
	// The interval between each timer tick. 60hz = time.Second / 60.
	TimerInterval time.Duration
}

// Validate validates the settings.
// Returns an error when the settings aren't valid.
func (s *Settings) Validate() error {
	if s.StackSize <= 0 {
		return &SettingsErr{"StackSize", "must be > 0"}
	}
	if s.StepMode < StepOff || s.StepMode > StepEdge {
		return &SettingsErr{"StepMode", "is not a known step mode"}
	}
	if s.FrameInterval <= 0 {
		return &SettingsErr{"FrameInterval", "must be > 0"}
	}
	if s.TimerInterval <= 0 {
		return &SettingsErr{"TimerInterval", "must be > 0"}
	}
	return nil
}

// DefaultSettings runs one instruction per ~60fps frame with room for 256
// nested calls.
var DefaultSettings = &Settings{
	StackSize:     0x100,
	StepMode:      StepOff,
	FrameInterval: 16 * time.Millisecond,
	TimerInterval: time.Second / 60,
}
