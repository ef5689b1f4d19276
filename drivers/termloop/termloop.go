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

// Package termloop implements a terminal driver for chip8.
//
// The driver owns the termloop game loop: an entity attached to the screen
// calls the frame function on every Draw. Space is the step key. Since
// termbox only reports key presses, a held key is emulated by releasing it
// automatically 100ms after the last press (the terminal's key repeat keeps
// it held).
//
// The underlying game can be retrieved from GetDriverData("ctx").
package termloop

import (
	"context"
	"fmt"
	"time"

	tl "github.com/JoelOtter/termloop"
	"github.com/glassyeyedfish/chip-8/chip8"
)

const (
	stackRows   = 16
	screenLeft  = 20
	screenTop   = 5
	releaseTime = 100 * time.Millisecond
)

// A TermloopDriver is a terminal-based driver that uses the termloop library.
// It shows the current machine state in real time next to the screen.
type TermloopDriver struct {
	g          *tl.Game
	registers  *tl.Text
	pointers   *tl.Text
	program    *tl.Text
	status     *tl.Text
	stack      [stackRows]*tl.Text
	screen     [chip8.Width][chip8.Height]*tl.Rectangle
	lastScreen chip8.Display

	lastPress time.Time
	err       error
}

// machine is the entity that runs the frames and handles input
type machine struct {
	ctx   context.Context
	c     *chip8.Chip8
	d     *TermloopDriver
	frame func() error
}

func (m *machine) Draw(s *tl.Screen) {
	if m.d.err != nil {
		return
	}

	select {
	case <-m.ctx.Done():
		m.d.status.SetText("Interrupted. Press Ctrl+C to quit.")
		return
	default:
	}

	if err := m.frame(); err != nil {
		m.d.err = err
		m.d.status.SetText(fmt.Sprintf("Halted: %v. Press Ctrl+C to quit.", err))
	}
	m.d.update(m.c)
}

func (m *machine) Tick(ev tl.Event) {
	if ev.Type == tl.EventKey && ev.Key == tl.KeySpace {
		m.d.lastPress = time.Now()
	}
}

func (d *TermloopDriver) OnInit(c *chip8.Chip8) error {
	d.g = tl.NewGame()
	d.err = nil
	d.lastPress = time.Time{}
	d.lastScreen = chip8.Display{}
	scr := d.g.Screen()

	interval := c.Settings().FrameInterval
	scr.SetFps(float64(time.Second) / float64(interval))

	scr.AddEntity(tl.NewText(0, 0, "Stack", tl.ColorDefault, tl.ColorDefault))
	for i := range d.stack {
		d.stack[i] = tl.NewText(0, i+1, "", tl.ColorDefault, tl.ColorDefault)
		scr.AddEntity(d.stack[i])
	}

	d.registers = tl.NewText(screenLeft, 0, "", tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.registers)
	d.pointers = tl.NewText(screenLeft, 1, "", tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.pointers)
	d.program = tl.NewText(screenLeft, 2,
		fmt.Sprintf("Step: %v, Screen: %v*%v",
			c.Settings().StepMode, chip8.Width, chip8.Height),
		tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.program)
	d.status = tl.NewText(screenLeft, 3, "Running.",
		tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.status)

	// pixels are only attached to the screen while they are lit
	for x := 0; x < chip8.Width; x++ {
		for y := 0; y < chip8.Height; y++ {
			d.screen[x][y] = tl.NewRectangle(screenLeft+x, screenTop+y,
				1, 1, tl.ColorWhite)
		}
	}
	return nil
}

func (d *TermloopDriver) Loop(ctx context.Context, c *chip8.Chip8,
	frame func() error) error {

	d.g.Screen().AddEntity(&machine{ctx, c, d, frame})
	d.update(c)

	// blocks until Ctrl+C
	d.g.Start()
	return d.err
}

func (d *TermloopDriver) update(c *chip8.Chip8) {
	d.registers.SetText(fmt.Sprintf("Registers: % 02X", c.V))
	d.pointers.SetText(
		fmt.Sprintf("I: %04X Depth: %v/%v, PC: %04X, DT: %02X, ST: %02X",
			c.I, c.Stack.Depth(), c.Stack.Cap(), c.PC,
			c.Timers.Delay, c.Timers.Sound))

	// most recent frame on top
	frames := c.Stack.Frames()
	for i := range d.stack {
		if i < len(frames) {
			d.stack[i].SetText(fmt.Sprintf("%04X", frames[len(frames)-1-i]))
		} else {
			d.stack[i].SetText("")
		}
	}

	d.updateScreen(&c.Screen)
}

func (d *TermloopDriver) updateScreen(s *chip8.Display) {
	if *s == d.lastScreen {
		return
	}

	scr := d.g.Screen()
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			now, before := s.Pixel(x, y), d.lastScreen.Pixel(x, y)
			switch {
			case now && !before:
				scr.AddEntity(d.screen[x][y])
			case !now && before:
				scr.RemoveEntity(d.screen[x][y])
			}
		}
	}
	d.lastScreen = *s
}

func (d *TermloopDriver) StepHeld() bool {
	return time.Since(d.lastPress) < releaseTime
}

func (d *TermloopDriver) Close() error { return nil }

func (d *TermloopDriver) GetData(key string) interface{} {
	if key == "ctx" {
		return d.g
	}
	return nil
}

func (d *TermloopDriver) SetData(key string, value interface{}) error {
	return fmt.Errorf("Unknown data key '%s'.", key)
}

// -----------------------------------------------------------------------------

func init() {
	err := chip8.RegisterDriver("termloop", func() chip8.Driver {
		return &TermloopDriver{}
	})
	if err != nil {
		panic(err)
	}
}
