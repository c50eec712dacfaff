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
	"encoding/json"
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestConversionMatricesAreInverse(t *testing.T) {
	toXYZ := mat.NewDense(3, 3, nil)
	toRGB := mat.NewDense(3, 3, nil)
	for i, e := range []RGB{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}} {
		x := e.ToXYZ()
		toXYZ.SetCol(i, []float64{x.X, x.Y, x.Z})
	}
	for i, e := range []XYZ{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}} {
		r, g, b := e.ToRGB().Linear()
		toRGB.SetCol(i, []float64{r, g, b})
	}

	var prod mat.Dense
	prod.Mul(toRGB, toXYZ)
	assert.True(t, mat.EqualApprox(&prod, identity3(), 1e-6), "product %v", mat.Formatted(&prod))

	var inv mat.Dense
	require.NoError(t, inv.Inverse(toXYZ))
	assert.True(t, mat.EqualApprox(&inv, toRGB, 1e-5), "inverse %v", mat.Formatted(&inv))
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func TestAgreesWithColorful(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#336699", "#c0ffee", "#808080", "#123456"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		l, a, b := c.Colorful().Lab()
		lab := c.ToLAB()
		assert.InDelta(t, l*100, lab.L, 0.05, hex)
		assert.InDelta(t, a*100, lab.A, 0.1, hex)
		assert.InDelta(t, b*100, lab.B, 0.1, hex)

		x, y, z := c.Colorful().Xyz()
		xyz := c.ToXYZ()
		assert.InDelta(t, x, xyz.X, 1e-3, hex)
		assert.InDelta(t, y, xyz.Y, 1e-3, hex)
		assert.InDelta(t, z, xyz.Z, 1e-3, hex)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)
	assert.Equal(t, 1.0, c.Alpha)

	c, err = ParseHex("f80")
	require.NoError(t, err)
	assert.InDelta(t, 0x88/255.0, c.G, 1e-9)

	c, err = ParseHex("#33669980")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.Alpha, 1e-9)
	assert.Equal(t, "#33669980", c.Hex())

	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "#123456zz"} {
		_, err = ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexClampsOutOfGamut(t *testing.T) {
	assert.Equal(t, "#ff0000", RGB{1.3, -0.2, 0, 1}.Hex())
	assert.Equal(t, "#000000", RGB{0, 0, 0, 1}.Hex())
}

func TestImageColorBridge(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 128})
	assert.InDelta(t, 1.0, c.R, 1e-4)
	assert.InDelta(t, 128.0/255, c.G, 1e-4)
	assert.InDelta(t, 128.0/255, c.Alpha, 1e-4)

	r, g, b, a := RGB{1, 0.5, 0, 0.5}.RGBA()
	assert.Equal(t, uint32(0x8000), a)
	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0x4000), g)
	assert.Equal(t, uint32(0), b)

	back := FromColor(RGB{0.2, 0.4, 0.6, 1})
	assert.InDelta(t, 0.2, back.R, 1e-4)
	assert.InDelta(t, 0.6, back.B, 1e-4)
}

func TestDistanceCIEDE2000(t *testing.T) {
	red, _ := ParseHex("#ff0000")
	red2, _ := ParseHex("#fe0000")
	blue, _ := ParseHex("#0000ff")
	assert.InDelta(t, 0.0, red.DistanceCIEDE2000(red), 1e-12)
	assert.Less(t, red.DistanceCIEDE2000(red2), 1.0)
	assert.Greater(t, red.DistanceCIEDE2000(red2), 0.0)
	assert.InDelta(t, 52.88, red.DistanceCIEDE2000(blue), 0.5)
	assert.InDelta(t, red.DistanceCIEDE2000(blue), blue.DistanceCIEDE2000(red), 1e-9)
	assert.InDelta(t, 100*colorful.Color{R: 1}.DistanceCIEDE2000(colorful.Color{B: 1}), red.DistanceCIEDE2000(blue), 1e-9)
}

func TestSpace(t *testing.T) {
	for _, name := range []string{"rgb", "XYZ", " lab ", "lch", "oklab", "OkLCH"} {
		s, err := ParseSpace(name)
		require.NoError(t, err)
		from, to := RGB{1, 0, 0, 1}, RGB{0, 0, 1, 0.5}
		assert.True(t, rgbClose(s.Lerp(from, to, 0), from, roundTripEpsilon), "%s t=0", s)
		assert.True(t, rgbClose(s.Lerp(from, to, 1), to, roundTripEpsilon), "%s t=1", s)
		assert.True(t, rgbClose(s.FromComponents(s.Components(to)), to, roundTripEpsilon), "%s components", s)
	}
	_, err := ParseSpace("hsv")
	assert.Error(t, err)

	var cfg struct {
		Space Space `json:"space"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"space":"lch"}`), &cfg))
	assert.Equal(t, SpaceLCH, cfg.Space)
	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"space":"lch"}`, string(out))
}

func TestLCHMidpointKeepsHue(t *testing.T) {
	// red to blue through LCH passes magenta hues, never the green half of the circle
	mid := SpaceLCH.Lerp(RGB{1, 0, 0, 1}, RGB{0, 0, 1, 1}, 0.5).ToLCH()
	assert.True(t, mid.H > 306 || mid.H < 40, "hue %f", mid.H)
}

func TestMapToGamut(t *testing.T) {
	c := LCH{60, 150, 140, 1}
	assert.False(t, c.InGamut())
	m := c.MapToGamut(40)
	assert.True(t, m.InGamut())
	assert.Equal(t, c.L, m.L)
	assert.Equal(t, c.H, m.H)
	assert.Less(t, m.C, c.C)
	assert.Greater(t, m.C, 10.0)

	pushed := m
	pushed.C += 1
	assert.False(t, pushed.InGamut(), "mapped chroma %f should be near the boundary", m.C)

	in := LCH{50, 10, 200, 1}
	assert.Equal(t, in, in.MapToGamut(40))

	bright := LCH{120, 0, 0, 1}.MapToGamut(40)
	assert.Equal(t, 100.0, bright.L)
	assert.True(t, bright.InGamut())
}

func TestContrastRatio(t *testing.T) {
	white, black := RGB{1, 1, 1, 1}, RGB{0, 0, 0, 1}
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-3)
	assert.InDelta(t, 21.0, ContrastRatio(black, white), 1e-3)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 1e-12)
}
