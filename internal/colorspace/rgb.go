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

// A gamma-encoded sRGB color with straight (non-premultiplied) alpha.
// Components are nominally in [0,1].
type RGB struct {
	R     float64 `json:"r"`
	G     float64 `json:"g"`
	B     float64 `json:"b"`
	Alpha float64 `json:"alpha"`
}

func NewRGB(r, g, b, alpha float64) RGB {
	return RGB{r, g, b, alpha}
}

// Print RGB color as a human-readable string
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%.2f%%, %.2f%%, %.2f%%, %.2f%%)", c.R*100, c.G*100, c.B*100, c.Alpha*100)
}

// Converts a gamma-encoded sRGB component to linear light.
// Defined on the whole real line by mirroring at zero.
func decodeGamma(v float64) float64 {
	absV := math.Abs(v)
	var out float64
	if absV > 0.04045 {
		out = math.Pow((absV+0.055)/1.055, 2.4)
	} else {
		out = absV / 12.92
	}
	if v > 0 {
		return out
	}
	return -out
}

// Returns the linear light components of the color
func (c RGB) Linear() (r, g, b float64) {
	return decodeGamma(c.R), decodeGamma(c.G), decodeGamma(c.B)
}

func (c RGB) ToXYZ() XYZ {
	r, g, b := c.Linear()
	return XYZ{
		X:     0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y:     0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z:     0.0193339*r + 0.1191920*g + 0.9503041*b,
		Alpha: c.Alpha,
	}
}

func (c RGB) ToLAB() LAB { return c.ToXYZ().ToLAB() }
func (c RGB) ToLCH() LCH { return c.ToXYZ().ToLCH() }

// Interpolates componentwise between c and other. t=0 yields c, t=1 yields other
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R:     lerp(c.R, other.R, t),
		G:     lerp(c.G, other.G, t),
		B:     lerp(c.B, other.B, t),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}

// Returns true if all color channels are within [0,1], allowing for the
// given tolerance
func (c RGB) InGamut(tolerance float64) bool {
	return c.R >= -tolerance && c.R <= 1+tolerance &&
		c.G >= -tolerance && c.G <= 1+tolerance &&
		c.B >= -tolerance && c.B <= 1+tolerance
}

// Returns a copy with all channels including alpha clamped to [0,1].
// NaNs become zero.
func (c RGB) Clamped() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.Alpha)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
