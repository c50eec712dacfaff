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

package adjust

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/ops"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
)

// Adjusts lightness of each color to reach a target WCAG contrast ratio against a background.
// Takes one input, produces one output
type OpContrast struct {
	ops.OpUnaryBase
	Background string  `json:"background"` // hex color
	Target     float64 `json:"target"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpContrastDefault() }) } // register the operator for JSON decoding

func NewOpContrastDefault() *OpContrast { return NewOpContrast("#ffffff", 4.5) }

func NewOpContrast(background string, target float64) *OpContrast {
	op := &OpContrast{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "contrast", Active: true}},
		Background:  background,
		Target:      target,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpContrast) UnmarshalJSON(data []byte) error {
	type defaults OpContrast
	def := defaults(*NewOpContrastDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpContrast(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

// Colors which cannot reach the target keep the closest achievable lightness, with a warning
func (op *OpContrast) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.Target < 1 || op.Target > 21 {
		return nil, errors.New(fmt.Sprintf("%d: contrast ratio %g outside [1,21]", p.ID, op.Target))
	}
	bg, err := colorspace.ParseHex(op.Background)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(c.Log, "%d: Solving lightness for contrast %.2f against %s\n", p.ID, op.Target, bg.Hex())
	for i, e := range p.Entries {
		best, err := palette.SolveLightnessForContrast(e.Color, bg, op.Target)
		if err != nil {
			fmt.Fprintf(c.Log, "%d: WARNING color %d %s: %s\n", p.ID, i, e.Color.Hex(), err.Error())
		}
		p.Entries[i].Color = best
	}
	return p, nil
}

// Expands each pair of consecutive colors into Steps interpolated colors.
// Takes one input, produces one output
type OpGradient struct {
	ops.OpUnaryBase
	Steps int              `json:"steps"`
	Space colorspace.Space `json:"space"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpGradientDefault() }) } // register the operator for JSON decoding

func NewOpGradientDefault() *OpGradient { return NewOpGradient(4, colorspace.SpaceLCH) }

func NewOpGradient(steps int, space colorspace.Space) *OpGradient {
	op := &OpGradient{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "gradient", Active: true}},
		Steps:       steps,
		Space:       space,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpGradient) UnmarshalJSON(data []byte) error {
	type defaults OpGradient
	def := defaults(*NewOpGradientDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpGradient(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpGradient) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.Steps < 1 {
		return nil, errors.New(fmt.Sprintf("%d: gradient needs at least one step, got %d", p.ID, op.Steps))
	}
	if len(p.Entries) < 2 || op.Steps == 1 {
		return p, nil
	}
	n := palette.SamplesForSteps(len(p.Entries), op.Steps)
	fmt.Fprintf(c.Log, "%d: Expanding %d stops into %d colors in %s\n", p.ID, len(p.Entries), n, op.Space)
	if err := p.Gradient(n, op.Space); err != nil {
		return nil, err
	}
	return p, nil
}

// Sorts colors by LCH hue, lightness or chroma. Takes one input, produces one output
type OpSort struct {
	ops.OpUnaryBase
	Key string `json:"key"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpSortDefault() }) } // register the operator for JSON decoding

func NewOpSortDefault() *OpSort { return NewOpSort(palette.SortByHue) }

func NewOpSort(key string) *OpSort {
	op := &OpSort{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "sort", Active: true}},
		Key:         key,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpSort) UnmarshalJSON(data []byte) error {
	type defaults OpSort
	def := defaults(*NewOpSortDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpSort(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpSort) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	fmt.Fprintf(c.Log, "%d: Sorting %d colors by %s\n", p.ID, len(p.Entries), op.Key)
	if err := p.Sort(op.Key); err != nil {
		return nil, err
	}
	return p, nil
}

// Drops colors closer than MinDeltaE (CIEDE2000) to an earlier color. Takes one input, produces one output
type OpDedupe struct {
	ops.OpUnaryBase
	MinDeltaE float64 `json:"minDeltaE"`
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpDedupeDefault() }) } // register the operator for JSON decoding

func NewOpDedupeDefault() *OpDedupe { return NewOpDedupe(1) }

func NewOpDedupe(minDeltaE float64) *OpDedupe {
	op := &OpDedupe{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "dedupe", Active: true}},
		MinDeltaE:   minDeltaE,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpDedupe) UnmarshalJSON(data []byte) error {
	type defaults OpDedupe
	def := defaults(*NewOpDedupeDefault())
	err := json.Unmarshal(data, &def)
	if err != nil {
		return err
	}
	*op = OpDedupe(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpDedupe) Apply(p *palette.Palette, c *ops.Context) (pOut *palette.Palette, err error) {
	if op.MinDeltaE <= 0 {
		return p, nil
	}
	removed := p.Dedupe(op.MinDeltaE)
	fmt.Fprintf(c.Log, "%d: Removed %d colors closer than deltaE %.2f, %d remain\n", p.ID, removed, op.MinDeltaE, len(p.Entries))
	return p, nil
}
