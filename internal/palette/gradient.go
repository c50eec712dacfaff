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

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
)

// Samples n colors evenly along the piecewise path through the given stops,
// interpolating in the given color space. The first and last samples are the
// first and last stops
func Gradient(stops []colorspace.RGB, n int, space colorspace.Space) ([]colorspace.RGB, error) {
	if len(stops) == 0 {
		return nil, errors.New("gradient needs at least one stop")
	}
	if n < 1 {
		return nil, errors.New(fmt.Sprintf("gradient needs at least one step, got %d", n))
	}
	out := make([]colorspace.RGB, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out, nil
	}

	segments := len(stops) - 1
	for i := range out {
		pos := float64(i) * float64(segments) / float64(n-1)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		t := pos - float64(seg)
		if t == 0 {
			out[i] = stops[seg]
			continue
		}
		out[i] = space.Lerp(stops[seg], stops[seg+1], t)
	}
	out[n-1] = stops[segments]
	return out, nil
}

// Number of samples when each of the len(stops)-1 segments is divided into the given steps
func SamplesForSteps(stops, steps int) int {
	if stops < 2 {
		return 1
	}
	return (stops-1)*steps + 1
}

// Replaces the palette colors with a gradient of n samples through them
func (p *Palette) Gradient(n int, space colorspace.Space) error {
	cs, err := Gradient(p.Colors(), n, space)
	if err != nil {
		return err
	}
	p.Entries = make([]Entry, len(cs))
	for i, c := range cs {
		p.Entries[i] = Entry{Color: c}
	}
	return nil
}
