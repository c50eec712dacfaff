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

package palette

import (
	"math"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
)

// Bisection depth used when accents leave the sRGB gamut
const gamutIterations = 32

// Converts an adjusted LCH color back to RGB, with lightness clamped to
// [0,100] and chroma reduced until it fits sRGB
func fromLCHInGamut(lch colorspace.LCH) colorspace.RGB {
	return lch.MapToGamut(gamutIterations).ToRGB().Clamped()
}

// Returns a color that is lighter by the given absolute LCH lightness amount (0-100, ranges enforced)
func Lighten(c colorspace.RGB, amount float64) colorspace.RGB {
	lch := c.ToLCH()
	lch.L += amount
	return fromLCHInGamut(lch)
}

// Returns a color that is darker by the given absolute LCH lightness amount (0-100, ranges enforced)
func Darken(c colorspace.RGB, amount float64) colorspace.RGB {
	return Lighten(c, -amount)
}

// Returns a color that is more saturated by the given absolute LCH chroma amount
func Saturate(c colorspace.RGB, amount float64) colorspace.RGB {
	lch := c.ToLCH()
	lch.C = math.Max(0, lch.C+amount)
	return fromLCHInGamut(lch)
}

func Desaturate(c colorspace.RGB, amount float64) colorspace.RGB {
	return Saturate(c, -amount)
}

// Returns a color with the hue rotated by the given angle in degrees
func Spin(c colorspace.RGB, degrees float64) colorspace.RGB {
	return fromLCHInGamut(c.ToLCH().Rotate(degrees))
}

// Returns the color on the opposite side of the LCH hue circle
func Complement(c colorspace.RGB) colorspace.RGB {
	return Spin(c, 180)
}

// Returns whether the color has an LCH lightness of at least 50
func IsLight(c colorspace.RGB) bool {
	return c.ToLAB().L >= 50
}

// Returns a color that is darker if c is light and lighter otherwise, by the
// given absolute LCH lightness amount
func Highlight(c colorspace.RGB, amount float64) colorspace.RGB {
	if IsLight(c) {
		return Darken(c, amount)
	}
	return Lighten(c, amount)
}

// Derives a small set of accent colors from a base color, all within sRGB
func Accents(id int, base colorspace.RGB, amount float64) *Palette {
	p := &Palette{ID: id, Name: "accents " + base.Hex()}
	p.Entries = []Entry{
		{"base", base},
		{"light", Lighten(base, amount)},
		{"dark", Darken(base, amount)},
		{"saturated", Saturate(base, amount)},
		{"muted", Desaturate(base, amount)},
		{"highlight", Highlight(base, amount)},
		{"complement", Complement(base)},
	}
	return p
}
