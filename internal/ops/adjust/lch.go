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

// Package adjust holds unary palette operators working in LCH space.
package adjust

import (
	"encoding/json"
	"fmt"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/ops"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
)

// Shifts LCH lightness of all colors by an offset. Takes one input, produces one output
type OpLighten struct {
	ops.OpUnaryBase
	Offset float64 `json:"offset"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpLightenDefault() }) } // register the operator for JSON decoding

func NewOpLightenDefault() *OpLighten { return NewOpLighten(0) }

func NewOpLighten(offset float64) *OpLighten {
	op := &OpLighten{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "lighten", Active: true}},
		Offset:      offset,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpLighten) UnmarshalJSON(data []byte) error {
	type defaults OpLighten
	def := defaults(*NewOpLightenDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpLighten(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpLighten) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.Offset == 0 {
		return p, nil
	}
	fmt.Fprintf(c.Log, "%d: Shifting lightness of %d colors by %.2f\n", p.ID, len(p.Entries), op.Offset)
	p.Lighten(op.Offset)
	return p, nil
}

// Scales LCH chroma of colors with hues in [From, To] by a factor. Takes one input, produces one output
type OpSaturate struct {
	ops.OpUnaryBase
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Factor float64 `json:"factor"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpSaturateDefault() }) } // register the operator for JSON decoding

func NewOpSaturateDefault() *OpSaturate { return NewOpSaturate(0, 0, 1) }

func NewOpSaturate(from, to, factor float64) *OpSaturate {
	op := &OpSaturate{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "saturate", Active: true}},
		From:        from,
		To:          to,
		Factor:      factor,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpSaturate) UnmarshalJSON(data []byte) error {
	type defaults OpSaturate
	def := defaults(*NewOpSaturateDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpSaturate(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpSaturate) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.Factor == 1 {
		return p, nil
	}
	fmt.Fprintf(c.Log, "%d: Scaling chroma by %.3f for hues %.0f..%.0f\n", p.ID, op.Factor, op.From, op.To)
	p.ScaleChroma(op.From, op.To, op.Factor)
	return p, nil
}

// Rotates LCH hues in [From, To] by an offset in degrees. Takes one input, produces one output
type OpRotateHue struct {
	ops.OpUnaryBase
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Offset float64 `json:"offset"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpRotateHueDefault() }) } // register the operator for JSON decoding

func NewOpRotateHueDefault() *OpRotateHue { return NewOpRotateHue(0, 0, 0) }

func NewOpRotateHue(from, to, offset float64) *OpRotateHue {
	op := &OpRotateHue{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "rotateHue", Active: true}},
		From:        from,
		To:          to,
		Offset:      offset,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpRotateHue) UnmarshalJSON(data []byte) error {
	type defaults OpRotateHue
	def := defaults(*NewOpRotateHueDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpRotateHue(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpRotateHue) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.Offset == 0 {
		return p, nil
	}
	fmt.Fprintf(c.Log, "%d: Rotating hues %.0f..%.0f by %.1f degrees\n", p.ID, op.From, op.To, op.Offset)
	p.RotateHues(op.From, op.To, op.Offset)
	return p, nil
}

// Reduces chroma of dark colors, linearly from full chroma at High to none at Low.
// Takes one input, produces one output
type OpNeutralize struct {
	ops.OpUnaryBase
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpNeutralizeDefault() }) } // register the operator for JSON decoding

func NewOpNeutralizeDefault() *OpNeutralize { return NewOpNeutralize(0, 0) }

func NewOpNeutralize(low, high float64) *OpNeutralize {
	op := &OpNeutralize{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "neutralize", Active: true}},
		Low:         low,
		High:        high,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpNeutralize) UnmarshalJSON(data []byte) error {
	type defaults OpNeutralize
	def := defaults(*NewOpNeutralizeDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpNeutralize(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpNeutralize) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.High <= 0 {
		return p, nil
	}
	fmt.Fprintf(c.Log, "%d: Neutralizing colors below lightness %.1f..%.1f\n", p.ID, op.Low, op.High)
	p.Neutralize(op.Low, op.High)
	return p, nil
}

// Brings all colors into the sRGB gamut by reducing chroma at constant lightness and hue.
// Takes one input, produces one output
type OpGamutMap struct {
	ops.OpUnaryBase
	Iterations int `json:"iterations"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpGamutMapDefault() }) } // register the operator for JSON decoding

func NewOpGamutMapDefault() *OpGamutMap { return NewOpGamutMap(32) }

func NewOpGamutMap(iterations int) *OpGamutMap {
	op := &OpGamutMap{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "gamutMap", Active: true}},
		Iterations:  iterations,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpGamutMap) UnmarshalJSON(data []byte) error {
	type defaults OpGamutMap
	def := defaults(*NewOpGamutMapDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpGamutMap(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpGamutMap) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	outside := 0
	for _, e := range p.Entries {
		if !e.Color.InGamut(colorspace.GamutTolerance) {
			outside++
		}
	}
	if outside == 0 {
		return p, nil
	}
	fmt.Fprintf(c.Log, "%d: Mapping %d of %d colors into gamut\n", p.ID, outside, len(p.Entries))
	p.MapToGamut(op.Iterations)
	return p, nil
}
