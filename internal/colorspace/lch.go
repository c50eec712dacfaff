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
	"fmt"
	"math"
)

// A CIE LCh(ab) color: lightness in [0,100], chroma in [0,~128] and hue angle
// in degrees [0,360). Convenient for changing one perceptual attribute while
// keeping the others.
type LCH struct {
	L     float64 `json:"l"`
	C     float64 `json:"c"`
	H     float64 `json:"h"`
	Alpha float64 `json:"alpha"`
}

func NewLCH(l, c, h, alpha float64) LCH {
	return LCH{l, c, h, alpha}
}

func (c LCH) String() string {
	return fmt.Sprintf("LCH(%.2f, %.2f, %.2f°, %.2f%%)", c.L, c.C, c.H, c.Alpha*100)
}

func (c LCH) ToLAB() LAB {
	rad := c.H / radToDeg
	return LAB{
		L:     c.L,
		A:     math.Cos(rad) * c.C,
		B:     math.Sin(rad) * c.C,
		Alpha: c.Alpha,
	}
}

func (c LCH) ToXYZ() XYZ { return c.ToLAB().ToXYZ() }
func (c LCH) ToRGB() RGB { return c.ToLAB().ToRGB() }

// Returns the signed hue difference from a to b along the shorter arc, in [-180,180)
func HueDelta(a, b float64) float64 {
	return mod360(mod360(b-a)+540) - 180
}

// Interpolates lightness, chroma and alpha linearly, and hue along the
// shorter arc of the hue circle. The resulting hue is in [0,360)
func (c LCH) Lerp(other LCH, t float64) LCH {
	angle := HueDelta(c.H, other.H) * t
	return LCH{
		L:     lerp(c.L, other.L, t),
		C:     lerp(c.C, other.C, t),
		H:     mod360(c.H + angle + 360),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}

// Returns a copy with the hue rotated by the given offset in degrees, wrapped into [0,360)
func (c LCH) Rotate(offset float64) LCH {
	c.H = mod360(c.H + offset)
	return c
}
