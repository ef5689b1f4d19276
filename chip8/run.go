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

import (
	"context"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Run hands the machine over to its driver, which calls Frame once per host
// frame until the user quits, ctx is cancelled or an instruction fails.
// Returns the instruction error, if any.
func (c *Chip8) Run(ctx context.Context) error {
	c.logger.Debug("Starting driver loop",
		log.String("driver", c.driver),
		log.String("frame", c.settings.FrameInterval.String()))

	err := c.drv.Loop(ctx, c, c.Frame)
	if err != nil {
		c.logger.Error("Machine halted", nil, log.Err(err))
		return err
	}
	c.logger.Debug("Driver loop ended", log.String("driver", c.driver))
	return nil
}

// Frame executes at most one instruction, depending on the step mode, then
// counts the timers down by one for every TimerInterval elapsed since the
// previous frame.
func (c *Chip8) Frame() error {
	if c.shouldStep() {
		err := c.Step()
		if err != nil {
			return err
		}
	}
	c.updateTimers(time.Now())
	return nil
}

func (c *Chip8) shouldStep() (run bool) {
	if c.settings.StepMode == StepOff {
		return true
	}

	held := c.drv.StepHeld()
	switch c.settings.StepMode {
	case StepLevel:
		// one instruction per frame for as long as the key is held
		run = held
	case StepEdge:
		run = held && !c.stepWasHeld
	}
	c.stepWasHeld = held
	return
}

func (c *Chip8) updateTimers(now time.Time) {
	if c.lastTimerUpdate.IsZero() {
		c.lastTimerUpdate = now
	}

	for now.Sub(c.lastTimerUpdate) >= c.settings.TimerInterval {
		c.Timers.Tick()
		c.lastTimerUpdate = c.lastTimerUpdate.Add(c.settings.TimerInterval)
	}
}
