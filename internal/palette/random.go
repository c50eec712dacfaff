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
	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/valyala/fastrand"
)

// Returns a uniform random number in [lo,hi)
func randRange(rng *fastrand.RNG, lo, hi float64) float64 {
	return lo + (hi-lo)*float64(rng.Uint32n(1<<24))/float64(1<<24)
}

// Generates n random opaque colors with LCH lightness in minL..maxL, chroma up to maxC
// and uniformly distributed hue, pulled into the sRGB gamut
func Random(id, n int, rng *fastrand.RNG, minL, maxL, maxC float64) *Palette {
	p := &Palette{ID: id, Name: "random", Entries: make([]Entry, n)}
	for i := range p.Entries {
		lch := colorspace.LCH{
			L:     randRange(rng, minL, maxL),
			C:     randRange(rng, 0, maxC),
			H:     randRange(rng, 0, 360),
			Alpha: 1,
		}
		p.Entries[i].Color = fromLCHInGamut(lch)
	}
	return p
}
