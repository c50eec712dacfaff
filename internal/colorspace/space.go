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
	"errors"
	"fmt"
	"strings"
)

// A color space in which RGB colors can be interpolated or inspected
type Space int

const (
	SpaceRGB Space = iota
	SpaceXYZ
	SpaceLAB
	SpaceLCH
	SpaceOkLab
	SpaceOkLCH
)

var spaceNames = []string{"rgb", "xyz", "lab", "lch", "oklab", "oklch"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// Parses a case-insensitive color space name
func ParseSpace(name string) (Space, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range spaceNames {
		if sn == n {
			return Space(i), nil
		}
	}
	return SpaceRGB, errors.New(fmt.Sprintf("unknown color space '%s', want one of %s", name, strings.Join(spaceNames, ", ")))
}

func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Space) UnmarshalText(b []byte) error {
	parsed, err := ParseSpace(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Interpolates between two RGB colors within the given color space,
// and converts the result back to RGB
func (s Space) Lerp(from, to RGB, t float64) RGB {
	switch s {
	case SpaceXYZ:
		return from.ToXYZ().Lerp(to.ToXYZ(), t).ToRGB()
	case SpaceLAB:
		return from.ToLAB().Lerp(to.ToLAB(), t).ToRGB()
	case SpaceLCH:
		return from.ToLCH().Lerp(to.ToLCH(), t).ToRGB()
	case SpaceOkLab:
		return from.ToOkLab().Lerp(to.ToOkLab(), t).ToRGB()
	case SpaceOkLCH:
		return from.ToOkLCH().Lerp(to.ToOkLCH(), t).ToRGB()
	default:
		return from.Lerp(to, t)
	}
}

// Returns the components of c in the given space, alpha last
func (s Space) Components(c RGB) [4]float64 {
	switch s {
	case SpaceXYZ:
		x := c.ToXYZ()
		return [4]float64{x.X, x.Y, x.Z, x.Alpha}
	case SpaceLAB:
		l := c.ToLAB()
		return [4]float64{l.L, l.A, l.B, l.Alpha}
	case SpaceLCH:
		l := c.ToLCH()
		return [4]float64{l.L, l.C, l.H, l.Alpha}
	case SpaceOkLab:
		l := c.ToOkLab()
		return [4]float64{l.L, l.A, l.B, l.Alpha}
	case SpaceOkLCH:
		l := c.ToOkLCH()
		return [4]float64{l.L, l.C, l.H, l.Alpha}
	default:
		return [4]float64{c.R, c.G, c.B, c.Alpha}
	}
}

// Builds an RGB color from components in the given space, alpha last
func (s Space) FromComponents(v [4]float64) RGB {
	switch s {
	case SpaceXYZ:
		return XYZ{v[0], v[1], v[2], v[3]}.ToRGB()
	case SpaceLAB:
		return LAB{v[0], v[1], v[2], v[3]}.ToRGB()
	case SpaceLCH:
		return LCH{v[0], v[1], v[2], v[3]}.ToRGB()
	case SpaceOkLab:
		return OkLab{v[0], v[1], v[2], v[3]}.ToRGB()
	case SpaceOkLCH:
		return OkLCH{v[0], v[1], v[2], v[3]}.ToRGB()
	default:
		return RGB{v[0], v[1], v[2], v[3]}
	}
}
