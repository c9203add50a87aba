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

// Parametric is a power law with a linear segment near zero.
// This is the form of the ICC parametric curve type 4:
//
//	Decode(v) = (A·v + B)^Gamma + E   for v >= D
//	Decode(v) = C·v + F               for v < D
//
// The linear segment is used for all values below D, including negative
// values.
type Parametric struct {
	A, B, C, D, E, F float64
	Gamma            float64
}

// Decode implements the [Curve] interface.
func (p Parametric) Decode(v float64) float64 {
	if v >= p.D {
		return math.Pow(p.A*v+p.B, p.Gamma) + p.E
	}
	return p.C*v + p.F
}

// Encode implements the [Curve] interface.
func (p Parametric) Encode(l float64) float64 {
	if l >= p.threshold() {
		return (math.Pow(l-p.E, 1/p.Gamma) - p.B) / p.A
	}
	return (l - p.F) / p.C
}

// threshold returns the linear value at which the two segments meet.
func (p Parametric) threshold() float64 {
	return math.Pow(p.A*p.D+p.B, p.Gamma) + p.E
}

// SRGB is the transfer function of IEC 61966-2-1 (sRGB).
// Display P3 uses the same curve.
var SRGB = Parametric{
	A:     1 / 1.055,
	B:     0.055 / 1.055,
	C:     1 / 12.92,
	D:     0.04045,
	Gamma: 2.4,
}

// ROMM is the transfer function of ROMM RGB (ProPhoto RGB),
// as defined in ISO 22028-2.
var ROMM = Parametric{
	A:     1,
	C:     1.0 / 16,
	D:     16.0 / 512,
	Gamma: 1.8,
}

// BT709 is the inverse of the ITU-R BT.709 opto-electronic transfer
// function.
var BT709 = recOETF(1.099, 0.018)

// recOETF returns the curve V = α·L^0.45 - (α-1) for L >= β,
// V = 4.5·L otherwise, used by ITU-R BT.709 and BT.2020.
func recOETF(alpha, beta float64) Parametric {
	return Parametric{
		A:     1 / alpha,
		B:     (alpha - 1) / alpha,
		C:     1 / 4.5,
		D:     4.5 * beta,
		Gamma: 1 / 0.45,
	}
}

var (
	bt2020Curve10 = recOETF(1.099, 0.018)
	bt2020Curve12 = recOETF(1.0993, 0.0181)
)

// BT2020 is the ITU-R BT.2020 transfer function for the given bit depth.
// Recommendation BT.2020 publishes the constants α and β to higher
// precision for 12-bit systems than for 8- and 10-bit systems.
type BT2020 BitDepth

func (b BT2020) curve() Parametric {
	if BitDepth(b) == Depth12 || b == 0 {
		return bt2020Curve12
	}
	return bt2020Curve10
}

// Decode implements the [Curve] interface.
func (b BT2020) Decode(v float64) float64 {
	return b.curve().Decode(v)
}

// Encode implements the [Curve] interface.
func (b BT2020) Encode(l float64) float64 {
	return b.curve().Encode(l)
}

// AtDepth implements the [DepthCurve] interface.
func (b BT2020) AtDepth(d BitDepth) Curve {
	return BT2020(d)
}
