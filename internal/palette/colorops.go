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
	"math"
	"runtime"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/klauspost/cpuid"
)

// A color function. Operates in-place on a slice of palette entries. For parallelization across CPUs.
type ColorFunction func(entries []Entry, params interface{})

// Palettes smaller than this are processed on the calling goroutine
const minParallelEntries = 4096

// Number of worker goroutines for bulk color operations
func NumWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Apply given color function to the palette. Uses thread parallelism across all available CPUs for
// large palettes. Operates in-place.
func (p *Palette) ApplyColorFunction(cf ColorFunction, args interface{}) {
	data := p.Entries
	if len(data) < minParallelEntries {
		cf(data, args)
		return
	}

	// split into 8*workers packages, limit parallelism to workers
	workers := NumWorkers()
	numBatches := 8 * workers
	batchSize := (len(data) + numBatches - 1) / numBatches
	sem := make(chan bool, workers)
	for lower := 0; lower < len(data); lower += batchSize {
		upper := lower + batchSize
		if upper > len(data) {
			upper = len(data)
		}

		sem <- true
		go func(data []Entry) {
			cf(data, args)
			<-sem
		}(data[lower:upper])
	}

	for i := 0; i < cap(sem); i++ { // wait for goroutines to finish
		sem <- true
	}
}

// Color function to offset LCH lightness. 2nd parameter must be a float64
func cfLighten(entries []Entry, params interface{}) {
	offset := params.(float64)
	for i, e := range entries {
		entries[i].Color = Lighten(e.Color, offset)
	}
}

// Offsets LCH lightness of all colors, keeping chroma and hue. Operates in-place
func (p *Palette) Lighten(offset float64) {
	p.ApplyColorFunction(cfLighten, offset)
}

type cfScaleChromaArgs struct {
	From   float64
	To     float64
	Factor float64
}

// Returns true if hue h lies in the range from..to, which wraps around 360
// if from>to (e.g. purples 295..30). The full circle is selected if from==to
func HueInRange(h, from, to float64) bool {
	if from == to {
		return true
	}
	if from < to {
		return h >= from && h <= to
	}
	return h >= from || h <= to
}

// Color function to scale LCH chroma for a range of hues. 2nd parameter must be a cfScaleChromaArgs
func cfScaleChroma(entries []Entry, params interface{}) {
	args := params.(cfScaleChromaArgs)
	for i, e := range entries {
		lch := e.Color.ToLCH()
		if !HueInRange(lch.H, args.From, args.To) {
			continue
		}
		lch.C = math.Max(0, lch.C*args.Factor)
		entries[i].Color = lch.ToRGB()
	}
}

// Multiplies LCH chroma by the given factor for hues in from..to. Operates in-place
func (p *Palette) ScaleChroma(from, to, factor float64) {
	p.ApplyColorFunction(cfScaleChroma, cfScaleChromaArgs{from, to, factor})
}

type cfRotateHuesArgs struct {
	From   float64
	To     float64
	Offset float64
}

// Color function to rotate LCH hues within a range. 2nd parameter must be a cfRotateHuesArgs
func cfRotateHues(entries []Entry, params interface{}) {
	args := params.(cfRotateHuesArgs)
	for i, e := range entries {
		lch := e.Color.ToLCH()
		if lch.C == 0 || !HueInRange(lch.H, args.From, args.To) {
			continue
		}
		entries[i].Color = lch.Rotate(args.Offset).ToRGB()
	}
}

// Rotates LCH hues in from..to by the given offset in degrees. Achromatic colors are
// left alone. Operates in-place
func (p *Palette) RotateHues(from, to, offset float64) {
	p.ApplyColorFunction(cfRotateHues, cfRotateHuesArgs{from, to, offset})
}

// Color function to pull colors into the sRGB gamut. 2nd parameter must be an int with the bisection depth
func cfMapToGamut(entries []Entry, params interface{}) {
	iterations := params.(int)
	for i, e := range entries {
		if e.Color.InGamut(colorspace.GamutTolerance) {
			continue
		}
		entries[i].Color = e.Color.ToLCH().MapToGamut(iterations).ToRGB().Clamped()
	}
}

// Reduces chroma of out-of-gamut colors until they fit sRGB, keeping lightness and hue. Operates in-place
func (p *Palette) MapToGamut(iterations int) {
	p.ApplyColorFunction(cfMapToGamut, iterations)
}

type cfNeutralizeArgs struct {
	Low  float64
	High float64
}

// Color function to scale LCH chroma by 0 below lightness low, by 1 above high, and linearly in between.
// 2nd parameter must be a cfNeutralizeArgs
func cfNeutralize(entries []Entry, params interface{}) {
	low, high := params.(cfNeutralizeArgs).Low, params.(cfNeutralizeArgs).High
	scaler := 0.0
	if high > low {
		scaler = 1.0 / (high - low)
	}
	for i, e := range entries {
		lch := e.Color.ToLCH()
		if lch.L >= high {
			continue
		}
		if lch.L < low {
			lch.C = 0
		} else {
			lch.C *= (lch.L - low) * scaler
		}
		entries[i].Color = lch.ToRGB()
	}
}

// Desaturates dark colors: chroma becomes zero below lightness low, is kept above high,
// and is faded linearly in between. Operates in-place
func (p *Palette) Neutralize(low, high float64) {
	p.ApplyColorFunction(cfNeutralize, cfNeutralizeArgs{low, high})
}
