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

import (
	"fmt"

	"fortio.org/safecast"
)

// BitDepth is the number of bits per component of an encoded signal.
type BitDepth int

// Supported bit depths.
const (
	Depth8  BitDepth = 8
	Depth10 BitDepth = 10
	Depth12 BitDepth = 12
)

// Valid reports whether d is one of the supported bit depths.
func (d BitDepth) Valid() bool {
	return d == Depth8 || d == Depth10 || d == Depth12
}

// MaxCode returns the largest code value for the bit depth.
func (d BitDepth) MaxCode() uint16 {
	return uint16(1)<<d - 1
}

func (d BitDepth) String() string {
	return fmt.Sprintf("%d-bit", int(d))
}

// Quantize converts an encoded signal value in the range [0, 1] to the
// nearest code value.  Values outside the range are clipped.
func Quantize(v float64, d BitDepth) uint16 {
	if !(v >= 0) { // also catches NaN
		v = 0
	} else if v > 1 {
		v = 1
	}
	return safecast.MustRound[uint16](v * float64(d.MaxCode()))
}

// Dequantize converts a code value back to a signal value in the range
// [0, 1].
func Dequantize(code uint16, d BitDepth) float64 {
	return float64(code) / float64(d.MaxCode())
}
