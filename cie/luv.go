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
	"math"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
)

// XYZToLuv converts a CIE XYZ value to CIE L*u*v*, relative to the given
// reference white.
// Black maps to (0, 0, 0).
func XYZToLuv(v mat3.Vector, white illuminant.WhitePoint) mat3.Vector {
	w := white.XYZ()
	up, vp := uvPrime(v)
	upw, vpw := uvPrime(w)

	yr := v[1] / w[1]
	var L float64
	if yr > epsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = kappa * yr
	}
	return mat3.Vector{L, 13 * L * (up - upw), 13 * L * (vp - vpw)}
}

// LuvToXYZ converts a CIE L*u*v* value to CIE XYZ, relative to the given
// reference white.
func LuvToXYZ(v mat3.Vector, white illuminant.WhitePoint) mat3.Vector {
	L := v[0]
	if L == 0 {
		return mat3.Vector{}
	}

	w := white.XYZ()
	upw, vpw := uvPrime(w)

	var y float64
	if L > kappa*epsilon {
		y = (L + 16) / 116
		y = y * y * y
	} else {
		y = L / kappa
	}
	y *= w[1]

	up := v[1]/(13*L) + upw
	vp := v[2]/(13*L) + vpw
	if vp == 0 {
		return mat3.Vector{0, y, 0}
	}
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return mat3.Vector{x, y, z}
}

// uvPrime returns the CIE 1976 UCS chromaticity of an XYZ value.
// The chromaticity of black is taken to be (0, 0).
func uvPrime(v mat3.Vector) (float64, float64) {
	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * v[0] / d, 9 * v[1] / d
}
