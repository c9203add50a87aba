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

// Package cie implements the CIE 1976 L*a*b* and L*u*v* colour spaces and
// the xyY chromaticity representation of CIE XYZ.
//
// XYZ values are normalized so that the reference white has Y=1.  The
// lightness L* ranges from 0 to 100.
package cie

import (
	"math"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
)

const (
	delta = 6.0 / 29.0

	// epsilon = delta^3 and kappa = 116 / (3 delta^2) are the constants
	// used in the Luv formulas.
	epsilon = 216.0 / 24389.0
	kappa   = 24389.0 / 27.0
)

// XYZToLab converts a CIE XYZ value to CIE L*a*b*, relative to the given
// reference white.
func XYZToLab(v mat3.Vector, white illuminant.WhitePoint) mat3.Vector {
	w := white.XYZ()
	fx := labF(v[0] / w[0])
	fy := labF(v[1] / w[1])
	fz := labF(v[2] / w[2])
	return mat3.Vector{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZ converts a CIE L*a*b* value to CIE XYZ, relative to the given
// reference white.
func LabToXYZ(v mat3.Vector, white illuminant.WhitePoint) mat3.Vector {
	w := white.XYZ()
	fy := (v[0] + 16) / 116
	fx := v[1]/500 + fy
	fz := fy - v[2]/200
	return mat3.Vector{
		labFInv(fx) * w[0],
		labFInv(fy) * w[1],
		labFInv(fz) * w[2],
	}
}

func labF(t float64) float64 {
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}
