// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package swatch renders palettes to images, one cell per color.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
)

// Cell dimensions in pixels, and maximum number of cells per row
type Layout struct {
	CellWidth  int
	CellHeight int
	Columns    int
}

func NewLayoutDefault() *Layout {
	return &Layout{CellWidth: 64, CellHeight: 64, Columns: 16}
}

// Returns the number of columns and rows for n cells
func (l *Layout) Grid(n int) (cols, rows int) {
	cols = n
	if l.Columns > 0 && cols > l.Columns {
		cols = l.Columns
	}
	rows = (n + cols - 1) / cols
	return cols, rows
}

func (l *Layout) check(n int) error {
	if n == 0 {
		return errors.New("cannot render an empty palette")
	}
	if l.CellWidth < 1 || l.CellHeight < 1 {
		return errors.New(fmt.Sprintf("invalid cell size %dx%d", l.CellWidth, l.CellHeight))
	}
	return nil
}

// Converts a channel to 16 bits. NaNs and out of range values are clamped here,
// as this is where colors leave the unbounded working space
func channel16(v float64) uint16 {
	return uint16(clampChannel(v)*65535 + 0.5)
}

func channel8(v float64) uint8 {
	return uint8(clampChannel(v)*255 + 0.5)
}

func clampChannel(v float64) float64 {
	if v != v || v < 0 { // NaN
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Renders the palette into a 16-bit image. Alpha is ignored, cells are opaque
func Render(p *palette.Palette, l *Layout) (*image.RGBA64, error) {
	if err := l.check(len(p.Entries)); err != nil {
		return nil, err
	}
	cols, rows := l.Grid(len(p.Entries))
	img := image.NewRGBA64(image.Rect(0, 0, cols*l.CellWidth, rows*l.CellHeight))
	fill(len(p.Entries), cols, l, func(i, x, y int) {
		img.SetRGBA64(x, y, rgba64(p.Entries[i].Color))
	})
	return img, nil
}

// Renders the palette into an 8-bit image. Alpha is ignored, cells are opaque
func Render8(p *palette.Palette, l *Layout) (*image.RGBA, error) {
	if err := l.check(len(p.Entries)); err != nil {
		return nil, err
	}
	cols, rows := l.Grid(len(p.Entries))
	img := image.NewRGBA(image.Rect(0, 0, cols*l.CellWidth, rows*l.CellHeight))
	fill(len(p.Entries), cols, l, func(i, x, y int) {
		c := p.Entries[i].Color
		img.SetRGBA(x, y, color.RGBA{channel8(c.R), channel8(c.G), channel8(c.B), 255})
	})
	return img, nil
}

func rgba64(c colorspace.RGB) color.RGBA64 {
	return color.RGBA64{channel16(c.R), channel16(c.G), channel16(c.B), 65535}
}

// Calls set for every pixel of every cell, with the index of the color
func fill(n, cols int, l *Layout, set func(i, x, y int)) {
	for i := 0; i < n; i++ {
		x0, y0 := (i%cols)*l.CellWidth, (i/cols)*l.CellHeight
		for y := y0; y < y0+l.CellHeight; y++ {
			for x := x0; x < x0+l.CellWidth; x++ {
				set(i, x, y)
			}
		}
	}
}
