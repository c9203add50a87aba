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

package transfer

import "math"

// ACEScc is the logarithmic encoding of Academy document S-2014-003.
//
// Linear values at or below zero all encode to the same signal value, so
// that Encode is only invertible for positive inputs.  Unlike the
// document, Decode does not limit its output to the largest half-float
// value.
var ACEScc Curve = acesCC{}

// ACEScct is the logarithmic encoding with a linear toe, from Academy
// document S-2016-001.  Unlike ACEScc, it is invertible on the whole
// real line.
var ACEScct Curve = acesCCT{}

const (
	acesLogScale  = 17.52
	acesLogOffset = 9.72

	acesCCTToeSlope  = 10.5402377416545
	acesCCTToeOffset = 0.0729055341958355
	acesCCTLinBreak  = 0.0078125
	acesCCTLogBreak  = 0.155251141552511
)

type acesCC struct{}

// Decode implements the [Curve] interface.
func (acesCC) Decode(v float64) float64 {
	if v < (acesLogOffset-15)/acesLogScale {
		return (math.Exp2(v*acesLogScale-acesLogOffset) - 0x1p-16) * 2
	}
	return math.Exp2(v*acesLogScale - acesLogOffset)
}

// Encode implements the [Curve] interface.
func (acesCC) Encode(l float64) float64 {
	switch {
	case l <= 0:
		return (-16 + acesLogOffset) / acesLogScale
	case l < 0x1p-15:
		return (math.Log2(0x1p-16+l*0.5) + acesLogOffset) / acesLogScale
	default:
		return (math.Log2(l) + acesLogOffset) / acesLogScale
	}
}

type acesCCT struct{}

// Decode implements the [Curve] interface.
func (acesCCT) Decode(v float64) float64 {
	if v <= acesCCTLogBreak {
		return (v - acesCCTToeOffset) / acesCCTToeSlope
	}
	return math.Exp2(v*acesLogScale - acesLogOffset)
}

// Encode implements the [Curve] interface.
func (acesCCT) Encode(l float64) float64 {
	if l <= acesCCTLinBreak {
		return acesCCTToeSlope*l + acesCCTToeOffset
	}
	return (math.Log2(l) + acesLogOffset) / acesLogScale
}
