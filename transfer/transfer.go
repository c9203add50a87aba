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

// Package transfer implements colour component transfer functions.
//
// A transfer function relates linear light to the non-linear signal stored
// for an RGB colour space.  Decode maps signal values to linear values,
// Encode maps linear values to signal values.  Transfer functions are
// defined on the whole real line: no clamping is performed, and values
// outside [0, 1] are mapped using the natural extension of each curve.
package transfer

import "math"

// Curve is a transfer function.
type Curve interface {
	// Decode maps a non-linear signal value to linear light.
	Decode(v float64) float64

	// Encode maps linear light to a non-linear signal value.
	Encode(l float64) float64
}

// DepthCurve is implemented by transfer functions which use different
// published constants for different bit depths.
type DepthCurve interface {
	Curve
	AtDepth(d BitDepth) Curve
}

// ForDepth returns the variant of c for bit depth d.
// Curves which do not depend on the bit depth are returned unchanged.
func ForDepth(c Curve, d BitDepth) Curve {
	if dc, ok := c.(DepthCurve); ok {
		return dc.AtDepth(d)
	}
	return c
}

// The following types implement the Curve interface:
var (
	_ Curve      = identity{}
	_ Curve      = Gamma{}
	_ Curve      = Parametric{}
	_ DepthCurve = BT2020(0)
	_ Curve      = acesCC{}
	_ Curve      = acesCCT{}
	_ Curve      = PQ{}
)

type identity struct{}

// Identity is the transfer function of scene-linear colour spaces.
var Identity Curve = identity{}

func (identity) Decode(v float64) float64 { return v }
func (identity) Encode(l float64) float64 { return l }

// Gamma is a pure power law.  Negative values are mapped to the negative
// of the value for the absolute value.
type Gamma struct {
	Exponent float64
}

// Decode implements the [Curve] interface.
func (g Gamma) Decode(v float64) float64 {
	return spow(v, g.Exponent)
}

// Encode implements the [Curve] interface.
func (g Gamma) Encode(l float64) float64 {
	return spow(l, 1/g.Exponent)
}

// spow is the sign-preserving power function.
func spow(x, p float64) float64 {
	if x < 0 {
		return -math.Pow(-x, p)
	}
	return math.Pow(x, p)
}
