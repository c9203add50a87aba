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

// Package device implements the cylindrical and subtractive colour models
// which are defined directly on encoded RGB values: HSL, HSV, HWB, CMY and
// CMYK.
//
// RGB, saturation, lightness, value, whiteness, blackness and the ink
// components all use the range [0, 1].  Hue is given in degrees in the
// range [0, 360) and is 0 for achromatic colours.
package device

import (
	"math"

	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/polar"
)

// RGBToHSL converts an RGB value to hue, saturation and lightness.
func RGBToHSL(v mat3.Vector) mat3.Vector {
	lo, hi := min(v[0], v[1], v[2]), max(v[0], v[1], v[2])
	c := hi - lo
	l := (hi + lo) / 2

	var s float64
	if c > 0 && l > 0 && l < 1 {
		s = c / (1 - math.Abs(2*l-1))
	}
	return mat3.Vector{hue(v, hi, c), s, l}
}

// HSLToRGB converts hue, saturation and lightness to an RGB value.
func HSLToRGB(v mat3.Vector) mat3.Vector {
	h, s, l := v[0], v[1], v[2]
	c := (1 - math.Abs(2*l-1)) * s
	return fromHue(h, c, l-c/2)
}

// RGBToHSV converts an RGB value to hue, saturation and value.
func RGBToHSV(v mat3.Vector) mat3.Vector {
	lo, hi := min(v[0], v[1], v[2]), max(v[0], v[1], v[2])
	c := hi - lo

	var s float64
	if hi != 0 {
		s = c / hi
	}
	return mat3.Vector{hue(v, hi, c), s, hi}
}

// HSVToRGB converts hue, saturation and value to an RGB value.
func HSVToRGB(v mat3.Vector) mat3.Vector {
	h, s, val := v[0], v[1], v[2]
	c := val * s
	return fromHue(h, c, val-c)
}

// RGBToHWB converts an RGB value to hue, whiteness and blackness.
func RGBToHWB(v mat3.Vector) mat3.Vector {
	lo, hi := min(v[0], v[1], v[2]), max(v[0], v[1], v[2])
	return mat3.Vector{hue(v, hi, hi-lo), lo, 1 - hi}
}

// HWBToRGB converts hue, whiteness and blackness to an RGB value.
// If whiteness and blackness add up to more than 1, they are scaled
// proportionally, giving a shade of grey.
func HWBToRGB(v mat3.Vector) mat3.Vector {
	h, w, b := v[0], v[1], v[2]
	if sum := w + b; sum > 1 {
		w /= sum
		b /= sum
	}
	return fromHue(h, 1-w-b, w)
}

// hue computes the hexagonal hue of an RGB value in degrees,
// given the largest component and the chroma.
func hue(v mat3.Vector, hi, c float64) float64 {
	if c == 0 {
		return 0
	}
	var h float64
	switch hi {
	case v[0]:
		h = math.Mod((v[1]-v[2])/c, 6)
	case v[1]:
		h = (v[2]-v[0])/c + 2
	default:
		h = (v[0]-v[1])/c + 4
	}
	return polar.NormalizeHue(60 * h)
}

// fromHue reconstructs an RGB value from hue, chroma and the value of the
// smallest component, using the six sectors of the hue hexagon.
func fromHue(h, c, m float64) mat3.Vector {
	hp := polar.NormalizeHue(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return mat3.Vector{r + m, g + m, b + m}
}
