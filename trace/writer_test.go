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

package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	tr := chip8.Trace{PC: 0x200, Opcode: 0x600A}
	tr.V[0] = 0x0A
	tr.V[0xF] = 0x1
	w.Trace(tr)

	assert.Equal(t, "600a\n"+
		"V0 = a V1 = 0 V2 = 0 V3 = 0 V4 = 0 V5 = 0 V6 = 0 V7 = 0 "+
		"V8 = 0 V9 = 0 Va = 0 Vb = 0 Vc = 0 Vd = 0 Ve = 0 Vf = 1 \n",
		buf.String())
	assert.NoError(t, w.Err())
}

func TestWriterMachine(t *testing.T) {
	var buf bytes.Buffer
	c := newMachine(t, 0x60, 0x05, 0x70, 0x10)
	c.Tracer = NewWriter(&buf)

	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())

	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	assert.Len(t, lines, 5)
	assert.Equal(t, "6005", string(lines[0]))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("V0 = 5 V1 = 0 ")))
	assert.Equal(t, "7010", string(lines[2]))
	assert.True(t, bytes.HasPrefix(lines[3], []byte("V0 = 15 V1 = 0 ")))
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriterStopsOnError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)
	w.Trace(chip8.Trace{})
	w.Trace(chip8.Trace{})
	assert.Error(t, w.Err())
	assert.Equal(t, 1, fw.n)
}

func TestMulti(t *testing.T) {
	assert.Nil(t, Multi())
	assert.Nil(t, Multi(nil, nil))

	var a, b []uint16
	ta := chip8.TracerFunc(func(tr chip8.Trace) { a = append(a, tr.PC) })
	tb := chip8.TracerFunc(func(tr chip8.Trace) { b = append(b, tr.PC) })

	Multi(ta, nil, tb).Trace(chip8.Trace{PC: 0x204})
	assert.Equal(t, []uint16{0x204}, a)
	assert.Equal(t, []uint16{0x204}, b)

	Multi(nil, ta).Trace(chip8.Trace{PC: 0x206})
	assert.Equal(t, []uint16{0x204, 0x206}, a)
	assert.Equal(t, []uint16{0x204}, b)
}
