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
	"sort"
)

// Sort keys for palettes
const (
	SortByHue       = "hue"
	SortByLightness = "lightness"
	SortByChroma    = "chroma"
)

// Sorts the palette by the given LCH attribute, ascending. Stable for equal keys
func (p *Palette) Sort(key string) error {
	keys := make([]float64, len(p.Entries))
	for i, e := range p.Entries {
		lch := e.Color.ToLCH()
		switch key {
		case SortByHue:
			keys[i] = lch.H
		case SortByLightness:
			keys[i] = lch.L
		case SortByChroma:
			keys[i] = lch.C
		default:
			return errors.New(fmt.Sprintf("unknown sort key '%s'", key))
		}
	}
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	sorted := make([]Entry, len(idx))
	for i, j := range idx {
		sorted[i] = p.Entries[j]
	}
	p.Entries = sorted
	return nil
}

// Removes colors closer than the given CIEDE2000 difference to an earlier color.
// Returns the number of removed colors
func (p *Palette) Dedupe(minDeltaE float64) int {
	kept := p.Entries[:0]
	removed := 0
	for _, e := range p.Entries {
		dup := false
		for _, k := range kept {
			if e.Color.DistanceCIEDE2000(k.Color) < minDeltaE {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(p.Entries); i++ {
		p.Entries[i] = Entry{}
	}
	p.Entries = kept
	return removed
}
