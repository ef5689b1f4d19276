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

// Command c8 runs a CHIP-8 program.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/glassyeyedfish/chip-8/drivers"
	"github.com/glassyeyedfish/chip-8/internal/cli"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

func c8() int {
	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stdout)
			if opts.Help {
				return 0
			}
			fmt.Printf("Error: %v\n", err)
		}
		return 1
	}

	if opts.Version {
		fmt.Printf("c8: v%s\n", buildinfo.Version(version, commit, date))
		return 0
	}

	logger := cli.CreateLogger(opts.Debug, opts.Quiet)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Run(ctx, opts, logger, os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(c8())
}
