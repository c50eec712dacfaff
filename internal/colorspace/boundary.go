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

package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Parses #rgb, #rrggbb or #rrggbbaa hex notation. The leading # is optional
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := 1.0
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return RGB{}, errors.New(fmt.Sprintf("invalid alpha in hex color '%s'", s))
		}
		alpha = float64(a) / 255
		h = h[:6]
	}
	if len(h) != 3 && len(h) != 6 {
		return RGB{}, errors.New(fmt.Sprintf("invalid hex color '%s'", s))
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return RGB{}, errors.New(fmt.Sprintf("invalid hex color '%s': %s", s, err.Error()))
	}
	return FromColorful(c, alpha), nil
}

// Formats the color as #rrggbb, or #rrggbbaa if not fully opaque.
// Channels are clamped to [0,1] first.
func (c RGB) Hex() string {
	cl := c.Clamped()
	h := cl.Colorful().Hex()
	if cl.Alpha < 1 {
		h += fmt.Sprintf("%02x", uint8(cl.Alpha*255+0.5))
	}
	return h
}

// Wraps a go-colorful color, which carries no alpha
func FromColorful(c colorful.Color, alpha float64) RGB {
	return RGB{c.R, c.G, c.B, alpha}
}

// Returns the color channels as go-colorful color, dropping alpha
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Converts any image/color value. Premultiplied inputs are un-premultiplied
func FromColor(c color.Color) RGB {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGB{float64(n.R) / 0xffff, float64(n.G) / 0xffff, float64(n.B) / 0xffff, float64(n.A) / 0xffff}
}

// Implements image/color.Color with alpha-premultiplied 16 bit channels.
// Out-of-gamut channels are clamped.
func (c RGB) RGBA() (r, g, b, a uint32) {
	cl := c.Clamped()
	a = uint32(math.Round(cl.Alpha * 0xffff))
	r = uint32(math.Round(cl.R * cl.Alpha * 0xffff))
	g = uint32(math.Round(cl.G * cl.Alpha * 0xffff))
	b = uint32(math.Round(cl.B * cl.Alpha * 0xffff))
	return r, g, b, a
}

var _ color.Color = RGB{} // Compile time assertion: type implements the interface

// CIEDE2000 perceptual color difference in CIE units (L on 0..100), ignoring alpha.
// go-colorful works with L on 0..1 and returns a hundredth of that.
func (c RGB) DistanceCIEDE2000(other RGB) float64 {
	return 100 * c.Colorful().DistanceCIEDE2000(other.Colorful())
}
