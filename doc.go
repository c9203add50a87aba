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

// Package colorconv converts colour values between colour spaces.
//
// Colour spaces are identified by name, for example "RGB" (sRGB), "XYZ",
// "LAB", "ACEScg" or "ICtCp".  [SpaceNames] lists all registered spaces
// and [LookupSpace] returns the descriptor of a space.
//
// A conversion is a chain of elementary steps, such as decoding a
// transfer function, multiplying by a matrix, or converting from
// rectangular to polar coordinates.  [Resolve] finds the shortest chain
// between two spaces and returns it as a [Path], which can be applied to
// many colour values:
//
//	p, err := colorconv.Resolve("RGB", "LAB")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lab, err := p.Apply([]float64{0.2, 0.4, 0.6})
//
// For single values, [Convert] and [ConvertValues] resolve the path and
// apply it in one call.  Resolved paths are cached, so repeated
// conversions between the same spaces are cheap.
//
// CIE XYZ serves as the hub between the families of colour spaces.  By
// default XYZ values are relative to the D65 white point, normalised so
// that the white point has Y=1.  [WithIlluminant] changes the reference
// white of the XYZ, xyY, LAB, LUV, LCH and HCL spaces; conversions to and
// from other spaces then include a chromatic adaptation step.  HSLuv and
// HPLuv measure saturation against the sRGB gamut and are always relative
// to D65.
//
// RGB input is assumed to be encoded with the transfer function of its
// colour space, and RGB output is encoded the same way.  [WithoutDecoding]
// and [WithoutEncoding] switch this off for the two ends of the path.
// Values outside the gamut of a space are never clamped.
//
// All functions in this package are safe for concurrent use.
package colorconv
