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

// Package stats bins color channel values into histograms.
package stats

import (
	"math"
)

// Calculate weighted histogram of data between min and max into given bins.
// Values outside [min,max] count towards the first or last bin, NaNs are skipped.
// Nil weights count every value once
func Histogram(data, weights []float64, min, max float64, bins []float64) {
	for i := range bins {
		bins[i] = 0
	}
	scale := float64(len(bins)) / (max - min)
	last := len(bins) - 1
	for i, d := range data {
		if math.IsNaN(d) {
			continue
		}
		index := int((d - min) * scale)
		if index < 0 {
			index = 0
		} else if index > last {
			index = last
		}
		bins[index] += weight(weights, i)
	}
}

// Calculate weighted histogram of angles in degrees into equal sized bins
// covering [0,360). Angles wrap around
func CircularHistogram(degrees, weights []float64, bins []float64) {
	for i := range bins {
		bins[i] = 0
	}
	scale := float64(len(bins)) / 360
	for i, d := range degrees {
		if math.IsNaN(d) {
			continue
		}
		a := math.Mod(math.Mod(d, 360)+360, 360)
		index := int(a*scale) % len(bins)
		bins[index] += weight(weights, i)
	}
}

func weight(weights []float64, i int) float64 {
	if weights == nil {
		return 1
	}
	return weights[i]
}

// Returns the center location and the value of the histogram peak.
// The first bin wins ties
func GetPeak(bins []float64, min, max float64) (x, y float64) {
	maxIndex, maxValue := -1, math.Inf(-1)
	for i, v := range bins {
		if v > maxValue {
			maxIndex, maxValue = i, v
		}
	}
	x = min + (float64(maxIndex)+0.5)*(max-min)/float64(len(bins))
	return x, maxValue
}
