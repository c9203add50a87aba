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

// Package jzazbz implements the JzAzBz colour space of Safdar et al.
// (Optics Express 25, 2017).
//
// The input is absolute CIE XYZ with the D65 white point:
// Y=1 corresponds to a luminance of 1 cd/m².
package jzazbz

import (
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/transfer"
)

const (
	b  = 1.15
	g  = 0.66
	d  = -0.56
	d0 = 1.6295499532821566e-11
)

// pq is the ST 2084 curve with the exponent m2 scaled by 1.7.
var pq = transfer.PQ{
	M1:   2610.0 / 16384,
	M2:   1.7 * 2523 / 32,
	C1:   3424.0 / 4096,
	C2:   2413.0 / 128,
	C3:   2392.0 / 128,
	Peak: 10000,
}

var (
	xyzToLMS = mat3.Matrix{
		0.41478972, 0.579999, 0.0146480,
		-0.2015100, 1.120649, 0.0531008,
		-0.0166008, 0.264800, 0.6684799,
	}
	lmsToIab = mat3.Matrix{
		0.5, 0.5, 0,
		3.524000, -4.066708, 0.542708,
		0.199076, 1.096799, -1.295875,
	}

	lmsToXYZ = xyzToLMS.MustInv()
	iabToLMS = lmsToIab.MustInv()
)

// FromXYZ converts an absolute CIE XYZ value to JzAzBz.
func FromXYZ(v mat3.Vector) mat3.Vector {
	X, Y, Z := v[0], v[1], v[2]
	biased := mat3.Vector{
		b*X - (b-1)*Z,
		g*Y - (g-1)*X,
		Z,
	}

	lms := xyzToLMS.Apply(biased)
	for i, x := range lms {
		lms[i] = pq.Encode(x)
	}
	iab := lmsToIab.Apply(lms)

	iz := iab[0]
	jz := (1+d)*iz/(1+d*iz) - d0
	return mat3.Vector{jz, iab[1], iab[2]}
}

// ToXYZ converts a JzAzBz value to absolute CIE XYZ.
func ToXYZ(v mat3.Vector) mat3.Vector {
	jz := v[0] + d0
	iz := jz / (1 + d - d*jz)

	lms := iabToLMS.Apply(mat3.Vector{iz, v[1], v[2]})
	for i, x := range lms {
		lms[i] = pq.Decode(x)
	}
	biased := lmsToXYZ.Apply(lms)

	X := (biased[0] + (b-1)*biased[2]) / b
	Y := (biased[1] + (g-1)*X) / g
	return mat3.Vector{X, Y, biased[2]}
}
