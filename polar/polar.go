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

// Package polar converts between rectangular chromatic coordinates, like
// the a and b components of CIE Lab, and chroma/hue pairs.
package polar

import "math"

// achromatic is the chroma below which the hue is reported as 0.
const achromatic = 1e-8

// FromRect converts a rectangular chromatic pair (a, b) to chroma and hue.
// The hue is given in degrees, in the range [0, 360).
// For achromatic values the hue is 0.
func FromRect(a, b float64) (c, h float64) {
	c = math.Hypot(a, b)
	if c < achromatic {
		return c, 0
	}
	h = math.Atan2(b, a) * 180 / math.Pi
	return c, NormalizeHue(h)
}

// ToRect converts chroma and hue (in degrees) to a rectangular chromatic
// pair.
func ToRect(c, h float64) (a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return c * co, c * s
}

// NormalizeHue maps an angle in degrees to the range [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -1e-17 + 360 rounds to 360
		h = 0
	}
	return h
}
