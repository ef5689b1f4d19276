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
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
	"github.com/retroenv/retrogolib/log"
)

// ReadROM reads a program image from disk, decompressing it if its extension
// says so (.gz, .zip or .7z; the first file of an archive is used).
func ReadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &RomNotFoundErr{path, err}
	}

	var rc io.ReadCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		rc, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var zr *zip.Reader
		zr, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(zr.File) == 0 {
				return nil, fmt.Errorf("%s: archive is empty", path)
			}
			rc, err = zr.File[0].Open()
		}
	case ".7z":
		var sr *sevenzip.Reader
		sr, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(sr.File) == 0 {
				return nil, fmt.Errorf("%s: archive is empty", path)
			}
			rc, err = sr.File[0].Open()
		}
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer rc.Close()

	// one byte past the limit is enough for Memory.Load to reject the image
	data, err = io.ReadAll(io.LimitReader(rc, MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Load reads a CHIP-8 binary file (see ReadROM) and loads it into memory.
// Returns the size, in bytes, of the program and an error if any.
func (c *Chip8) Load(path string) (size int, err error) {
	program, err := ReadROM(path)
	if err != nil {
		return
	}
	err = c.load(program, path)
	if err != nil {
		return
	}
	return len(program), nil
}

// LoadRaw loads a byte array as a CHIP-8 binary into memory at ProgramStart.
func (c *Chip8) LoadRaw(program []byte) error {
	return c.load(program, "")
}

// load logs one line per program, naming the file when there is one.
func (c *Chip8) load(program []byte, path string) error {
	err := c.Memory.Load(program)
	if err != nil {
		return err
	}
	c.romSize = len(program)
	c.checksum = xxhash.Sum64(program)

	sum := fmt.Sprintf("%016x", c.checksum)
	if path == "" {
		c.logger.Info("Loaded program",
			log.Int("size", len(program)), log.String("xxhash", sum))
	} else {
		c.logger.Info("Loaded program", log.String("path", path),
			log.Int("size", len(program)), log.String("xxhash", sum))
	}
	return nil
}

// Program returns the loaded program image as it currently sits in memory.
func (c *Chip8) Program() []byte {
	return c.Memory[ProgramStart : ProgramStart+c.romSize]
}

// Checksum returns the xxhash64 of the program image passed to LoadRaw.
func (c *Chip8) Checksum() uint64 { return c.checksum }
