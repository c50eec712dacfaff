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
	"errors"
	"fmt"
	"math"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"gonum.org/v1/gonum/optimize"
)

// Contrast ratios closer than this to the target count as reached
const contrastTolerance = 0.01

// Finds the LCH lightness for color c which yields the target WCAG contrast
// ratio against the background, keeping hue and as much chroma as fits sRGB.
// Searches on the far side of the background's lightness, i.e. darker for light
// backgrounds. If the target cannot be reached, returns the closest color along
// with an error.
func SolveLightnessForContrast(c, background colorspace.RGB, target float64) (colorspace.RGB, error) {
	lch := c.ToLCH()
	bgL := background.ToLAB().L
	lo, hi := bgL, 100.0
	if bgL >= 50 {
		lo, hi = 0, bgL
	}

	at := func(l float64) colorspace.RGB {
		trial := lch
		trial.L = math.Max(lo, math.Min(hi, l))
		return fromLCHInGamut(trial)
	}

	// minimize the squared distance between achieved and target ratio
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			d := colorspace.ContrastRatio(at(x[0]), background) - target
			return d * d
		},
	}
	x0 := []float64{0.5 * (lo + hi)}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if result == nil {
		return c, err
	}

	best := at(result.X[0])
	best.Alpha = c.Alpha
	achieved := colorspace.ContrastRatio(best, background)
	if math.Abs(achieved-target) > contrastTolerance {
		return best, errors.New(fmt.Sprintf("contrast ratio %.2f not reachable against %s, best is %.2f", target, background.Hex(), achieved))
	}
	return best, nil
}
