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
	"math"
)

// From https://bottosson.github.io/posts/oklab/ (MIT License / heavily adapted)

// An Oklab color. L in [0,1], A and B roughly in [-0.4,0.4]
type OkLab struct {
	L     float64 `json:"l"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Alpha float64 `json:"alpha"`
}

// Polar form of Oklab, hue in degrees [0,360)
type OkLCH struct {
	L     float64 `json:"l"`
	C     float64 `json:"c"`
	H     float64 `json:"h"`
	Alpha float64 `json:"alpha"`
}

func (c RGB) ToOkLab() OkLab {
	r, g, b := c.Linear()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l3 := math.Cbrt(l)
	m3 := math.Cbrt(m)
	s3 := math.Cbrt(s)

	return OkLab{
		L:     0.2104542553*l3 + 0.7936177850*m3 - 0.0040720468*s3,
		A:     1.9779984951*l3 - 2.4285922050*m3 + 0.4505937099*s3,
		B:     0.0259040371*l3 + 0.7827717662*m3 - 0.8086757660*s3,
		Alpha: c.Alpha,
	}
}

func (c OkLab) ToRGB() RGB {
	l3 := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m3 := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s3 := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := l3 * l3 * l3
	m := m3 * m3 * m3
	s := s3 * s3 * s3

	return RGB{
		R:     encodeGamma(+4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G:     encodeGamma(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B:     encodeGamma(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
		Alpha: c.Alpha,
	}
}

func (c OkLab) ToOkLCH() OkLCH {
	h := math.Atan2(c.B, c.A) * radToDeg
	if h < 0 {
		h += 360
	}
	return OkLCH{c.L, math.Sqrt(c.A*c.A + c.B*c.B), h, c.Alpha}
}

func (c OkLCH) ToOkLab() OkLab {
	rad := c.H / radToDeg
	return OkLab{c.L, c.C * math.Cos(rad), c.C * math.Sin(rad), c.Alpha}
}

func (c RGB) ToOkLCH() OkLCH { return c.ToOkLab().ToOkLCH() }
func (c OkLCH) ToRGB() RGB   { return c.ToOkLab().ToRGB() }

func (c OkLab) Lerp(other OkLab, t float64) OkLab {
	return OkLab{
		L:     lerp(c.L, other.L, t),
		A:     lerp(c.A, other.A, t),
		B:     lerp(c.B, other.B, t),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}

// Interpolates hue along the shorter arc, like LCH.Lerp
func (c OkLCH) Lerp(other OkLCH, t float64) OkLCH {
	angle := HueDelta(c.H, other.H) * t
	return OkLCH{
		L:     lerp(c.L, other.L, t),
		C:     lerp(c.C, other.C, t),
		H:     mod360(c.H + angle + 360),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}
