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

// A CIE L*a*b* color. L in [0,100] from black to white, A from green (<0)
// to red (>0), B from blue (<0) to yellow (>0), both roughly in [-128,128]
type LAB struct {
	L     float64 `json:"l"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Alpha float64 `json:"alpha"`
}

func NewLAB(l, a, b, alpha float64) LAB {
	return LAB{l, a, b, alpha}
}

func (c LAB) String() string {
	return fmt.Sprintf("LAB(%.2f, %.2f, %.2f, %.2f%%)", c.L, c.A, c.B, c.Alpha*100)
}

// Inverse of labCompand
func xyzCompand(v float64) float64 {
	v3 := v * v * v
	if v3 > labEpsilon {
		return v3
	}
	return (v - lab16_116) / labKappa
}

func (c LAB) ToXYZ() XYZ {
	y := (c.L + 16) / 116
	x := y + c.A/500
	z := y - c.B/200
	return XYZ{
		X:     xyzCompand(x) * RefX,
		Y:     xyzCompand(y) * RefY,
		Z:     xyzCompand(z) * RefZ,
		Alpha: c.Alpha,
	}
}

// Converts to polar form. The hue of an achromatic color is 0
func (c LAB) ToLCH() LCH {
	h := math.Atan2(c.B, c.A) * radToDeg
	if h < 0 {
		h += 360
	}
	return LCH{
		L:     c.L,
		C:     math.Sqrt(c.A*c.A + c.B*c.B),
		H:     h,
		Alpha: c.Alpha,
	}
}

func (c LAB) ToRGB() RGB { return c.ToXYZ().ToRGB() }

// Interpolates along a straight line in L*a*b*. Hue is not treated specially
func (c LAB) Lerp(other LAB, t float64) LAB {
	return LAB{
		L:     lerp(c.L, other.L, t),
		A:     lerp(c.A, other.A, t),
		B:     lerp(c.B, other.B, t),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}

// CIE76 color difference, i.e. euclidean distance in L*a*b*
func (c LAB) DeltaE76(other LAB) float64 {
	dl, da, db := c.L-other.L, c.A-other.A, c.B-other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
