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

// Package colorspace converts colors between gamma-encoded sRGB, CIE XYZ,
// CIE L*a*b* and its polar form LCH. All color types are immutable values;
// every conversion and interpolation returns a new value. Components are
// never validated or clamped, so out-of-gamut inputs and extrapolating
// interpolation factors propagate mathematically.
package colorspace

import (
	"math"
)

// D65 reference white, as tristimulus values with Y normalized to 1
const (
	RefX = 0.95047
	RefY = 1.0
	RefZ = 1.08883
)

// Constants of the CIE L*a*b* companding function
const (
	labEpsilon = 0.008856  // (6/29)^3, cutoff of the linear segment near black
	labKappa   = 7.787036  // slope of the linear segment
	lab16_116  = 0.1379310 // 16/116, offset of the linear segment
)

const radToDeg = 180.0 / math.Pi

// Euclidean modulo into [0,360). math.Mod truncates towards zero, so negative
// angles are shifted once more after the first reduction.
func mod360(v float64) float64 {
	return math.Mod(math.Mod(v, 360)+360, 360)
}

// Linear interpolation, extrapolating for t outside [0,1]
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
