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

// Package oklab implements the Oklab colour space by Björn Ottosson.
//
// Oklab is defined relative to CIE XYZ with the D65 white point, scaled so
// that the white point has Y=1.  White maps to L=1.
package oklab

import (
	"math"

	"seehuhn.de/go/colorconv/mat3"
)

var (
	xyzToLMS = mat3.Matrix{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	lmsToLab = mat3.Matrix{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}

	lmsToXYZ = xyzToLMS.MustInv()
	labToLMS = lmsToLab.MustInv()
)

// FromXYZ converts a CIE XYZ value (D65) to Oklab.
func FromXYZ(v mat3.Vector) mat3.Vector {
	lms := xyzToLMS.Apply(v)
	for i, x := range lms {
		lms[i] = math.Cbrt(x)
	}
	return lmsToLab.Apply(lms)
}

// ToXYZ converts an Oklab value to CIE XYZ (D65).
func ToXYZ(v mat3.Vector) mat3.Vector {
	lms := labToLMS.Apply(v)
	for i, x := range lms {
		lms[i] = x * x * x
	}
	return lmsToXYZ.Apply(lms)
}
