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

// Package illuminant provides reference white points and chromatic
// adaptation transforms.
package illuminant

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorconv/mat3"
)

// WhitePoint is the chromaticity of a reference illuminant.
// WhitePoint values are comparable.
type WhitePoint struct {
	Name string
	XY   vec.Vec2
}

// XYZ returns the tristimulus value of the white point, normalized to Y=1.
func (w WhitePoint) XYZ() mat3.Vector {
	return mat3.Chromaticity(w.XY)
}

// Valid reports whether w is the chromaticity of a physically meaningful
// white, with positive x, y and z = 1 - x - y.
func (w WhitePoint) Valid() bool {
	x, y := w.XY.X, w.XY.Y
	return x > 0 && y > 0 && x+y < 1
}

func (w WhitePoint) String() string {
	if w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("(%g, %g)", w.XY.X, w.XY.Y)
}

// Chromaticities of the CIE standard illuminants for the 2° observer,
// together with the white points used by the ACES and DCI standards.
var (
	A   = WhitePoint{"A", vec.Vec2{X: 0.44758, Y: 0.40745}}
	B   = WhitePoint{"B", vec.Vec2{X: 0.34842, Y: 0.35161}}
	C   = WhitePoint{"C", vec.Vec2{X: 0.31006, Y: 0.31616}}
	D50 = WhitePoint{"D50", vec.Vec2{X: 0.3457, Y: 0.3585}}
	D55 = WhitePoint{"D55", vec.Vec2{X: 0.33243, Y: 0.34744}}
	D65 = WhitePoint{"D65", vec.Vec2{X: 0.3127, Y: 0.3290}}
	D75 = WhitePoint{"D75", vec.Vec2{X: 0.29903, Y: 0.31488}}
	E   = WhitePoint{"E", vec.Vec2{X: 1.0 / 3, Y: 1.0 / 3}}

	ACES = WhitePoint{"ACES", vec.Vec2{X: 0.32168, Y: 0.33767}}
	DCI  = WhitePoint{"DCI", vec.Vec2{X: 0.314, Y: 0.351}}
)

// All lists the predefined white points.
var All = []WhitePoint{A, B, C, D50, D55, D65, D75, E, ACES, DCI}

// ByName returns the predefined white point with the given name.
func ByName(name string) (WhitePoint, bool) {
	for _, w := range All {
		if w.Name == name {
			return w, true
		}
	}
	return WhitePoint{}, false
}
