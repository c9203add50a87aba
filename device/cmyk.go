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

package device

import "seehuhn.de/go/colorconv/mat3"

// CMYK is a colour in the CMYK model.
type CMYK [4]float64

// RGBToCMY converts an RGB value to the subtractive CMY model.
func RGBToCMY(v mat3.Vector) mat3.Vector {
	return mat3.Vector{1 - v[0], 1 - v[1], 1 - v[2]}
}

// CMYToRGB converts a CMY value to RGB.
func CMYToRGB(v mat3.Vector) mat3.Vector {
	return mat3.Vector{1 - v[0], 1 - v[1], 1 - v[2]}
}

// CMYToCMYK moves the common part of the three inks into the black
// channel.
//
// For pure black (K=1) the remaining inks are set to 0.  All CMY values
// with K=1 map to the same CMYK value, so that this conversion cannot be
// inverted there.
func CMYToCMYK(v mat3.Vector) CMYK {
	k := min(v[0], v[1], v[2])
	if k >= 1 {
		return CMYK{0, 0, 0, k}
	}
	return CMYK{
		(v[0] - k) / (1 - k),
		(v[1] - k) / (1 - k),
		(v[2] - k) / (1 - k),
		k,
	}
}

// CMYKToCMY folds the black channel into the three inks.
func CMYKToCMY(v CMYK) mat3.Vector {
	k := v[3]
	return mat3.Vector{
		v[0]*(1-k) + k,
		v[1]*(1-k) + k,
		v[2]*(1-k) + k,
	}
}

// RGBToCMYK converts an RGB value to CMYK.
func RGBToCMYK(v mat3.Vector) CMYK {
	return CMYToCMYK(RGBToCMY(v))
}

// CMYKToRGB converts a CMYK value to RGB.
// The result is (1-C)(1-K), (1-M)(1-K), (1-Y)(1-K).
func CMYKToRGB(v CMYK) mat3.Vector {
	return CMYToRGB(CMYKToCMY(v))
}
