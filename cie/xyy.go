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

package cie

import (
	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
)

// XYZToxyY converts a CIE XYZ value to chromaticity coordinates and
// luminance.  Black has no chromaticity; it is mapped to the chromaticity
// of the reference white with Y=0.
func XYZToxyY(v mat3.Vector, white illuminant.WhitePoint) mat3.Vector {
	s := v[0] + v[1] + v[2]
	if s == 0 {
		return mat3.Vector{white.XY.X, white.XY.Y, 0}
	}
	return mat3.Vector{v[0] / s, v[1] / s, v[1]}
}

// XyYToXYZ converts chromaticity coordinates and luminance to CIE XYZ.
func XyYToXYZ(v mat3.Vector) mat3.Vector {
	x, y, Y := v[0], v[1], v[2]
	if y == 0 {
		return mat3.Vector{}
	}
	return mat3.Vector{x * Y / y, Y, (1 - x - y) * Y / y}
}
