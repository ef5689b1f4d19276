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
	"fmt"
	"time"
)

// A Driver is an interface through which the emulator performs platform
// specific calls: presenting the screen, reading the step key and pacing
// frames.
// Drivers should be registered by the RegisterDriver function in init().
type Driver interface {
	// Called once by New, after the machine state is initialized.
	OnInit(c *Chip8) error
	// Drives the frame cadence. frame must be called once per host frame
	// and the screen presented after it. Returns nil once the user closes
	// the window or ctx is done, or the first error returned by frame.
	Loop(ctx context.Context, c *Chip8, frame func() error) error
	// Reports whether the step key is currently held down.
	StepHeld() bool
	// Releases the resources acquired in OnInit.
	Close() error
	// Returns custom data that can be retrieved through the emulator by
	// calling GetDriverData()
	GetData(key string) interface{}
	// Sets custom data that can be set through the emulator by
	// calling SetDriverData()
	SetData(key string, value interface{}) error
}

// -----------------------------------------------------------------------------

// A DriverFactory returns a new driver. New calls it once per machine, so
// drivers never share state between machines.
type DriverFactory func() Driver

var drivers = map[string]DriverFactory{}

// RegisterDriver registers a driver factory to a name. The driver can then
// be used by passing its name to New.
// This is not thread-safe, so don't call it concurrently to the emulator's
// execution.
func RegisterDriver(name string, f DriverFactory) error {
	if drivers[name] != nil {
		return fmt.Errorf("Driver %s already exists.", name)
	}
	drivers[name] = f
	return nil
}

// UnregisterDriver unloads a previously registered driver.
// This is not thread-safe, so don't call it concurrently to the emulator's
// execution.
func UnregisterDriver(name string) error {
	if drivers[name] == nil {
		return fmt.Errorf("Driver %s does not exists.", name)
	}
	delete(drivers, name)
	return nil
}

// Drivers returns the names of the registered drivers.
func Drivers() (names []string) {
	for name := range drivers {
		names = append(names, name)
	}
	return
}

// -----------------------------------------------------------------------------

// A NullDriver is always registered, as "null". It presents nothing and
// paces frames with a ticker. The step key state is set through
// SetData("step_held", bool).
type NullDriver struct {
	held bool
}

func (d *NullDriver) OnInit(c *Chip8) error { return nil }
func (d *NullDriver) StepHeld() bool        { return d.held }
func (d *NullDriver) Close() error          { return nil }

func (d *NullDriver) Loop(ctx context.Context, c *Chip8,
	frame func() error) error {

	t := time.NewTicker(c.settings.FrameInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := frame(); err != nil {
				return err
			}
		}
	}
}

func (d *NullDriver) GetData(key string) interface{} {
	if key == "step_held" {
		return d.held
	}
	return nil
}

func (d *NullDriver) SetData(key string, value interface{}) error {
	if key != "step_held" {
		return fmt.Errorf("Unknown data key '%s'.", key)
	}
	held, ok := value.(bool)
	if !ok {
		return fmt.Errorf("Invalid type %T for step_held.", value)
	}
	d.held = held
	return nil
}

// -----------------------------------------------------------------------------

func init() {
	err := RegisterDriver("null", func() Driver { return &NullDriver{} })
	if err != nil {
		panic(err)
	}
}
