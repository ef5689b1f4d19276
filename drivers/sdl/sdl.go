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

// Package sdl implements a windowed driver for chip8 on top of SDL2.
//
// Every machine pixel is drawn as a 10x10 block. Space is the step key,
// closing the window ends the loop.
package sdl

import (
	"context"
	"fmt"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const scale = 10

// An SDLDriver presents the screen in an SDL window.
type SDLDriver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	title    string
	delay    uint32
}

func (d *SDLDriver) OnInit(c *chip8.Chip8) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing sdl: %w", err)
	}

	if d.title == "" {
		d.title = "Chip-8"
	}
	window, err := sdl.CreateWindow(d.title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		chip8.Width*scale, chip8.Height*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, 0)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	if err = renderer.SetScale(scale, scale); err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		sdl.Quit()
		return fmt.Errorf("scaling renderer: %w", err)
	}

	d.window, d.renderer = window, renderer
	d.delay = uint32(c.Settings().FrameInterval.Milliseconds())
	return nil
}

func (d *SDLDriver) Loop(ctx context.Context, c *chip8.Chip8,
	frame func() error) error {

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := frame(); err != nil {
			return err
		}
		if err := d.present(&c.Screen); err != nil {
			return err
		}
		sdl.Delay(d.delay)
	}
}

func (d *SDLDriver) present(s *chip8.Display) error {
	if err := d.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := d.renderer.Clear(); err != nil {
		return err
	}
	if err := d.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}

	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if !s.Pixel(x, y) {
				continue
			}
			if err := d.renderer.DrawPoint(int32(x), int32(y)); err != nil {
				return err
			}
		}
	}

	d.renderer.Present()
	return nil
}

func (d *SDLDriver) StepHeld() bool {
	return sdl.GetKeyboardState()[sdl.SCANCODE_SPACE] != 0
}

func (d *SDLDriver) Close() error {
	var err error
	if d.renderer != nil {
		err = d.renderer.Destroy()
		d.renderer = nil
	}
	if d.window != nil {
		if werr := d.window.Destroy(); err == nil {
			err = werr
		}
		d.window = nil
	}
	sdl.Quit()
	return err
}

func (d *SDLDriver) GetData(key string) interface{} {
	switch key {
	case "window":
		return d.window
	case "title":
		return d.title
	}
	return nil
}

// SetData accepts "title" (string), the window title.
func (d *SDLDriver) SetData(key string, value interface{}) error {
	if key != "title" {
		return fmt.Errorf("Unknown data key '%s'.", key)
	}
	title, ok := value.(string)
	if !ok {
		return fmt.Errorf("Invalid type %T for title.", value)
	}
	d.title = title
	if d.window != nil {
		d.window.SetTitle(title)
	}
	return nil
}

// -----------------------------------------------------------------------------

func init() {
	err := chip8.RegisterDriver("sdl", func() chip8.Driver {
		return &SDLDriver{}
	})
	if err != nil {
		panic(err)
	}
}
