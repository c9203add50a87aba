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

// Package ictcp implements the ICtCp colour representation of
// ITU-R BT.2100, using the PQ transfer function.
//
// Linear BT.2020 values are absolute: a value of 1 corresponds to a
// luminance of 1 cd/m².
package ictcp

import (
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/rgbspace"
	"seehuhn.de/go/colorconv/transfer"
)

var (
	rgbToLMS = mat3.Matrix{
		1688, 2146, 262,
		683, 2951, 462,
		99, 309, 3688,
	}.Scale(1.0 / 4096)

	lmsToICtCp = mat3.Matrix{
		2048, 2048, 0,
		6610, -13613, 7003,
		17933, -17390, -543,
	}.Scale(1.0 / 4096)

	lmsToRGB   = rgbToLMS.MustInv()
	ictcpToLMS = lmsToICtCp.MustInv()
)

// FromLinearBT2020 converts linear BT.2020 RGB to ICtCp.
func FromLinearBT2020(v mat3.Vector) mat3.Vector {
	lms := rgbToLMS.Apply(v)
	for i, x := range lms {
		lms[i] = transfer.ST2084.Encode(x)
	}
	return lmsToICtCp.Apply(lms)
}

// ToLinearBT2020 converts ICtCp to linear BT.2020 RGB.
func ToLinearBT2020(v mat3.Vector) mat3.Vector {
	lms := ictcpToLMS.Apply(v)
	for i, x := range lms {
		lms[i] = transfer.ST2084.Decode(x)
	}
	return lmsToRGB.Apply(lms)
}

// FromBT2020 converts BT.2020 RGB, encoded with the BT.2020 transfer
// function for the given bit depth, to ICtCp.
func FromBT2020(v mat3.Vector, depth transfer.BitDepth) mat3.Vector {
	return FromLinearBT2020(rgbspace.BT2020.Decode(v, depth))
}

// ToBT2020 converts ICtCp to BT.2020 RGB, encoded with the BT.2020
// transfer function for the given bit depth.
func ToBT2020(v mat3.Vector, depth transfer.BitDepth) mat3.Vector {
	return rgbspace.BT2020.Encode(ToLinearBT2020(v), depth)
}
