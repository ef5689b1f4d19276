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

// Package cli implements the c8 command: flag parsing, logger set-up and
// wiring the machine to its driver and trace sinks.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/glassyeyedfish/chip-8/chip8"
)

const usage = "usage: c8 [options] <rom>"

// Options holds the parsed command line.
type Options struct {
	Step    bool
	Edge    bool
	Help    bool
	Version bool

	Driver    string
	Trace     bool
	TraceAddr string
	Disasm    bool

	Debug bool
	Quiet bool

	ROM string
}

// UsageError is returned by ParseFlags when the command line is malformed.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	showUsage(w, e.flags)
}

func showUsage(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintf(w, "%s\n\n", usage)
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
}

func newFlagSet(opts *Options) *flag.FlagSet {
	flags := flag.NewFlagSet("c8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.BoolVar(&opts.Step, "s", false, "step through one instruction at a time while the step key is held")
	flags.BoolVar(&opts.Edge, "e", false, "step through one instruction per press of the step key (implies -s)")
	flags.BoolVar(&opts.Help, "h", false, "print this list and exit")
	flags.BoolVar(&opts.Version, "V", false, "print the version number and exit")
	flags.StringVar(&opts.Driver, "driver", "sdl", "front-end driver to use (sdl, termloop, null)")
	flags.BoolVar(&opts.Trace, "trace", false, "print every executed instruction and the registers on the console")
	flags.StringVar(&opts.TraceAddr, "trace-addr", "", "serve executed instructions as JSON over websocket on this address, for example :8090")
	flags.BoolVar(&opts.Disasm, "d", false, "print a disassembly of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	return flags
}

// ParseFlags parses args, the command line without the program name.
// -h and -V are reported through Options and need no positional argument;
// anything else requires exactly one ROM path.
func ParseFlags(args []string) (Options, error) {
	var opts Options
	flags := newFlagSet(&opts)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.Help = true
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Help {
		return opts, &UsageError{flags: flags}
	}
	if opts.Version {
		return opts, nil
	}

	rest := flags.Args()
	switch {
	case len(rest) == 0:
		return opts, &UsageError{flags: flags, msg: "failed to parse arguments, use '-h' for usage"}
	case len(rest) > 1:
		return opts, &UsageError{flags: flags,
			msg: fmt.Sprintf("unexpected argument %s after the ROM path", rest[1])}
	}
	opts.ROM = rest[0]
	return opts, nil
}

// Settings returns the machine settings selected by the options.
func (o Options) Settings() *chip8.Settings {
	s := *chip8.DefaultSettings
	switch {
	case o.Edge:
		s.StepMode = chip8.StepEdge
	case o.Step:
		s.StepMode = chip8.StepLevel
	}
	return &s
}
