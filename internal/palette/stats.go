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

	"github.com/FlineDev/HandySwiftUI-sub000/internal/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	hueBins       = 12
	lightnessBins = 10
)

// Perceptual statistics of a palette, computed in LCH
type Stats struct {
	Count      int     `json:"count"`
	MinL       float64 `json:"minL"`
	MaxL       float64 `json:"maxL"`
	MeanL      float64 `json:"meanL"`
	StdDevL    float64 `json:"stdDevL"`
	MeanC      float64 `json:"meanC"`
	StdDevC    float64 `json:"stdDevC"`
	MeanH      float64 `json:"meanH"`      // chroma-weighted circular mean, NaN if all colors are achromatic
	PeakH      float64 `json:"peakH"`      // center of the most chroma-weighted 30 degree hue bin, NaN if achromatic
	PeakL      float64 `json:"peakL"`      // center of the most populated lightness bin of width 10
	MinDeltaE  float64 `json:"minDeltaE"`  // smallest CIEDE2000 difference between any two colors
	OutOfGamut int     `json:"outOfGamut"` // number of colors outside sRGB
}

// Calculates palette statistics. Fails on an empty palette
func (p *Palette) Stats() (*Stats, error) {
	n := len(p.Entries)
	if n == 0 {
		return nil, errors.New("cannot calculate statistics of an empty palette")
	}
	ls, cs, hs := make([]float64, n), make([]float64, n), make([]float64, n)
	s := &Stats{Count: n, MinDeltaE: math.Inf(1)}
	for i, e := range p.Entries {
		lch := e.Color.ToLCH()
		ls[i], cs[i], hs[i] = lch.L, lch.C, lch.H*math.Pi/180
		if !e.Color.InGamut(1e-6) {
			s.OutOfGamut++
		}
		for _, o := range p.Entries[:i] {
			if d := e.Color.DistanceCIEDE2000(o.Color); d < s.MinDeltaE {
				s.MinDeltaE = d
			}
		}
	}
	if n == 1 {
		s.MinDeltaE = 0
	}

	s.MinL, s.MaxL = floats.Min(ls), floats.Max(ls)
	s.MeanL, s.StdDevL = meanStdDev(ls)
	s.MeanC, s.StdDevC = meanStdDev(cs)
	if floats.Sum(cs) > 0 {
		h := stat.CircularMean(hs, cs) * 180 / math.Pi
		s.MeanH = math.Mod(h+360, 360)
		degrees := make([]float64, n)
		floats.ScaleTo(degrees, 180/math.Pi, hs)
		bins := make([]float64, hueBins)
		stats.CircularHistogram(degrees, cs, bins)
		s.PeakH, _ = stats.GetPeak(bins, 0, 360)
	} else {
		s.MeanH, s.PeakH = math.NaN(), math.NaN()
	}
	bins := make([]float64, lightnessBins)
	stats.Histogram(ls, nil, 0, 100, bins)
	s.PeakL, _ = stats.GetPeak(bins, 0, 100)
	return s, nil
}

// Sample standard deviation is undefined for a single value, report zero instead
func meanStdDev(x []float64) (mean, std float64) {
	if len(x) < 2 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// Print statistics as a human-readable string
func (s *Stats) String() string {
	return fmt.Sprintf("n %d L %.2f..%.2f mean %.2f sd %.2f peak %.0f C mean %.2f sd %.2f H mean %.1f peak %.0f minDeltaE %.4f outOfGamut %d",
		s.Count, s.MinL, s.MaxL, s.MeanL, s.StdDevL, s.PeakL, s.MeanC, s.StdDevC, s.MeanH, s.PeakH, s.MinDeltaE, s.OutOfGamut)
}
