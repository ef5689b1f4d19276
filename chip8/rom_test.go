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

package chip8_test

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/retroenv/retrogolib/assert"
)

var romImage = []byte{0x60, 0x05, 0x70, 0x10, 0x12, 0x02}

func writeGzip(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	w := gzip.NewWriter(f)
	_, err = w.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}

func writeZip(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	fw, err := w.Create("game.ch8")
	assert.NoError(t, err)
	_, err = fw.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestReadROM(t *testing.T) {
	dir := t.TempDir()

	raw := filepath.Join(dir, "game.ch8")
	assert.NoError(t, os.WriteFile(raw, romImage, 0o644))
	gz := filepath.Join(dir, "game.ch8.gz")
	writeGzip(t, gz, romImage)
	zp := filepath.Join(dir, "game.ZIP")
	writeZip(t, zp, romImage)

	for _, path := range []string{raw, gz, zp, filepath.Join("testdata", "game.7z")} {
		data, err := chip8.ReadROM(path)
		assert.NoError(t, err)
		assert.Equal(t, romImage, data)
	}
}

func TestReadROMErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := chip8.ReadROM(filepath.Join(dir, "missing.ch8"))
	var nf *chip8.RomNotFoundErr
	assert.True(t, errors.As(err, &nf))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.gz")
	assert.NoError(t, os.WriteFile(bad, romImage, 0o644))
	_, err = chip8.ReadROM(bad)
	assert.Error(t, err)
	assert.False(t, errors.As(err, &nf))

	empty := filepath.Join(dir, "empty.zip")
	f, err := os.Create(empty)
	assert.NoError(t, err)
	assert.NoError(t, zip.NewWriter(f).Close())
	assert.NoError(t, f.Close())
	_, err = chip8.ReadROM(empty)
	assert.Error(t, err)

	_, err = chip8.ReadROM(filepath.Join("testdata", "empty.7z"))
	assert.Error(t, err)
	assert.False(t, errors.As(err, &nf))
}

func TestReadROMLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomb.ch8.gz")
	writeGzip(t, path, make([]byte, 1<<20))

	data, err := chip8.ReadROM(path)
	assert.NoError(t, err)
	assert.Equal(t, chip8.MaxProgramSize+1, len(data))

	c := newMachine(t)
	_, err = c.Load(path)
	var tl *chip8.RomTooLargeErr
	assert.True(t, errors.As(err, &tl))
	assert.Equal(t, chip8.MaxProgramSize+1, tl.Size)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.ch8.gz")
	writeGzip(t, path, romImage)

	c := newMachine(t)
	size, err := c.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, len(romImage), size)
	assert.Equal(t, romImage, c.Program())

	step(t, c, 3)
	assert.Equal(t, uint8(0x15), c.V[0])
	assert.Equal(t, uint16(0x202), c.PC)
}

func TestLoadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.ch8")
	assert.NoError(t, os.WriteFile(path, make([]byte, 0x1000), 0o644))

	c := newMachine(t)
	_, err := c.Load(path)
	var tl *chip8.RomTooLargeErr
	assert.True(t, errors.As(err, &tl))
}
