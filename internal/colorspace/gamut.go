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

// Tolerance for gamut checks, absorbs the rounding of the conversion matrices
const GamutTolerance = 1e-6

// Returns true if the color maps to sRGB channels within [0,1]
func (c LCH) InGamut() bool {
	return c.ToRGB().InGamut(GamutTolerance)
}

// Reduces chroma until the color fits into the sRGB gamut, keeping lightness
// and hue. Lightness itself is clamped to [0,100] first, as no chroma
// reduction can bring those colors into gamut. Bisects for the given number
// of iterations.
func (c LCH) MapToGamut(iterations int) LCH {
	if c.L < 0 {
		c.L = 0
	} else if c.L > 100 {
		c.L = 100
	}
	if c.C < 0 {
		c.C = 0
	}
	if c.InGamut() {
		return c
	}
	lo, hi := 0.0, c.C
	for i := 0; i < iterations; i++ {
		mid := 0.5 * (lo + hi)
		trial := c
		trial.C = mid
		if trial.InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	c.C = lo
	return c
}

// Relative luminance in [0,1] as used by WCAG, i.e. the Y tristimulus value
func (c RGB) Luminance() float64 {
	return c.ToXYZ().Y
}

// WCAG contrast ratio between two colors, in [1,21]. Symmetric in its arguments
func ContrastRatio(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
