// seehuhn.de/go/colorconv - convert colour values between colour spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package colorconv

import (
	"fmt"
	"strings"

	"seehuhn.de/go/colorconv/internal/float"
)

// Color is a colour value, tagged with the name of its colour space.
type Color struct {
	Space  string
	Values []float64
}

func (c Color) String() string {
	parts := make([]string, len(c.Values))
	for i, x := range c.Values {
		parts[i] = float.Format(x, 6)
	}
	return fmt.Sprintf("%s(%s)", c.Space, strings.Join(parts, ", "))
}

// Convert converts a colour value to the colour space with the given name.
func Convert(c Color, to string, opts ...Option) (Color, error) {
	out, err := ConvertValues(c.Values, c.Space, to, opts...)
	if err != nil {
		return Color{}, err
	}
	return Color{Space: to, Values: out}, nil
}

// ConvertValues converts the components of a colour value between the
// colour spaces with the given names.
func ConvertValues(values []float64, from, to string, opts ...Option) ([]float64, error) {
	p, err := cachedPath(from, to, opts)
	if err != nil {
		return nil, err
	}
	return p.Apply(values)
}
