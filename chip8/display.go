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

// Display resolution.
const (
	Width  = 64
	Height = 32
)

// Display is a monochrome 64x32 screen buffer. Each bit is a pixel which can
// be either on or off, packed 8 pixels per byte, row after row, most
// significant bit on the left:
//
//	  x ->
//	  00000000 01000000 ...
//	y ...
//
// The pixel above is at 9, 0: byte 9/8 = 1, mask 0x80 >> 9%8.
type Display [Width * Height / 8]byte

func displayIndex(x, y int) (int, byte) {
	x = (x%Width + Width) % Width
	y = (y%Height + Height) % Height
	return y*Width/8 + x/8, 0x80 >> uint(x%8)
}

// Pixel reports whether the pixel at x, y is on. Coordinates wrap around.
func (d *Display) Pixel(x, y int) bool {
	i, mask := displayIndex(x, y)
	return d[i]&mask != 0
}

// Set turns the pixel at x, y on or off. Coordinates wrap around.
func (d *Display) Set(x, y int, on bool) {
	i, mask := displayIndex(x, y)
	if on {
		d[i] |= mask
	} else {
		d[i] &^= mask
	}
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	for i := range d {
		d[i] = 0
	}
}

// Lit returns the number of pixels that are on.
func (d *Display) Lit() (n int) {
	for _, b := range d {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return
}
