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

// Package trace implements chip8.Tracer sinks: a plain text writer, a
// websocket broadcaster and a fan-out combinator.
package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/glassyeyedfish/chip-8/chip8"
)

// A Writer prints every executed instruction as two lines: the opcode bytes
// in lowercase hex, then the register file.
//
//	6005
//	V0 = 5 V1 = 0 V2 = 0 ... Vf = 0
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer printing to w. Output is flushed after every
// instruction.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (t *Writer) Trace(tr chip8.Trace) {
	if t.err != nil {
		return
	}

	b := tr.Opcode.Bytes()
	fmt.Fprintf(t.w, "%02x%02x\n", b[0], b[1])
	for i, v := range tr.V {
		fmt.Fprintf(t.w, "V%x = %x ", i, v)
	}
	t.w.WriteByte('\n')
	t.err = t.w.Flush()
}

// Err returns the first write error. Once an error occurred the Writer
// discards everything.
func (t *Writer) Err() error { return t.err }

type multi []chip8.Tracer

func (m multi) Trace(tr chip8.Trace) {
	for _, t := range m {
		t.Trace(tr)
	}
}

// Multi returns a Tracer passing every trace to each of tracers in order.
// nil tracers are skipped. Returns nil when nothing is left.
func Multi(tracers ...chip8.Tracer) chip8.Tracer {
	var m multi
	for _, t := range tracers {
		if t != nil {
			m = append(m, t)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}
