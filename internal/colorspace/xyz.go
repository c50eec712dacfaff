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

// A CIE 1931 XYZ tristimulus color relative to the D65 white point, Y in [0,1]
type XYZ struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Alpha float64 `json:"alpha"`
}

func NewXYZ(x, y, z, alpha float64) XYZ {
	return XYZ{x, y, z, alpha}
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%.4f, %.4f, %.4f, %.2f%%)", c.X, c.Y, c.Z, c.Alpha*100)
}

// Converts a linear light component to gamma-encoded sRGB.
// Defined on the whole real line by mirroring at zero.
func encodeGamma(v float64) float64 {
	absV := math.Abs(v)
	var out float64
	if absV > 0.0031308 {
		out = 1.055*math.Pow(absV, 1/2.4) - 0.055
	} else {
		out = absV * 12.92
	}
	if v > 0 {
		return out
	}
	return -out
}

// CIE L*a*b* forward nonlinearity, applied to a component divided by its reference white
func labCompand(v float64) float64 {
	if v > labEpsilon {
		return math.Cbrt(v)
	}
	return labKappa*v + lab16_116
}

func (c XYZ) ToRGB() RGB {
	r := 3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z
	g := -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z
	b := 0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z
	return RGB{encodeGamma(r), encodeGamma(g), encodeGamma(b), c.Alpha}
}

func (c XYZ) ToLAB() LAB {
	fx := labCompand(c.X / RefX)
	fy := labCompand(c.Y / RefY)
	fz := labCompand(c.Z / RefZ)
	return LAB{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.Alpha,
	}
}

func (c XYZ) ToLCH() LCH { return c.ToLAB().ToLCH() }

func (c XYZ) Lerp(other XYZ, t float64) XYZ {
	return XYZ{
		X:     lerp(c.X, other.X, t),
		Y:     lerp(c.Y, other.Y, t),
		Z:     lerp(c.Z, other.Z, t),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}
