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

package cli

import (
	"context"
	"io"
	"path/filepath"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/glassyeyedfish/chip-8/trace"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM named by opts and runs it on the selected driver until
// the user quits, ctx is done or an instruction fails. With -d it only
// prints the disassembly. Console output goes to stdout.
func Run(ctx context.Context, opts Options, logger *log.Logger, stdout io.Writer) error {
	if opts.Disasm {
		program, err := chip8.ReadROM(opts.ROM)
		if err != nil {
			return err
		}
		return PrintDisassembly(stdout, program)
	}

	c, err := chip8.New(opts.Driver, opts.Settings(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("Closing driver failed", nil, log.Err(err))
		}
	}()

	if _, err = c.Load(opts.ROM); err != nil {
		return err
	}
	if err := c.SetDriverData("title", "c8 - "+filepath.Base(opts.ROM)); err != nil {
		logger.Debug("Driver has no title", log.String("driver", c.Driver()))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tracers []chip8.Tracer
	if opts.Trace {
		tracers = append(tracers, trace.NewWriter(stdout))
	}
	if opts.TraceAddr != "" {
		hub := trace.NewHub(logger)
		go func() {
			if err := hub.ListenAndServe(ctx, opts.TraceAddr); err != nil {
				logger.Error("Trace server failed", nil, log.Err(err))
			}
		}()
		tracers = append(tracers, hub)
	}
	c.Tracer = trace.Multi(tracers...)

	if err = c.Run(ctx); err != nil {
		logger.Debug("Machine state", log.String("state", c.String()))
		return err
	}
	return nil
}
