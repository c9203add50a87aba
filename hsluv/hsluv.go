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

// Package hsluv implements HSLuv and HPLuv, two reparametrisations of CIE
// LCh(uv) in which the saturation is measured relative to the boundary of
// the sRGB gamut.
//
// Both models use the component order (H, S, L) of the HCL space, with
// the hue in degrees and saturation and lightness in the range [0, 100].
// HSLuv saturation 100 is the most saturated sRGB colour of the given
// hue and lightness.  HPLuv saturation 100 is the largest chroma which
// stays inside the sRGB gamut for every hue, so that HPLuv covers only
// pastel colours but does not distort chroma.
//
// See https://www.hsluv.org/ for details.
package hsluv

import (
	"math"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/rgbspace"
)

const (
	epsilon = 216.0 / 24389.0
	kappa   = 24389.0 / 27.0

	// Lightness values outside (minL, maxL) are treated as black or white.
	minL = 0.00001
	maxL = 99.9999
)

// fromXYZ maps D65 XYZ values to linear sRGB.
var fromXYZ = must(rgbspace.SRGB.FromXYZ(illuminant.D65, illuminant.CAT02))

func must(M mat3.Matrix, err error) mat3.Matrix {
	if err != nil {
		panic(err)
	}
	return M
}

// line is the line v = slope·u + intercept in the (u, v) chromaticity
// plane of CIE Luv.
type line struct {
	slope, intercept float64
}

// bounds returns the six lines in the (u, v) plane where one of the sRGB
// components reaches 0 or 1, for the given lightness.
func bounds(L float64) [6]line {
	sub1 := (L + 16) * (L + 16) * (L + 16) / 1560896
	sub2 := sub1
	if sub1 <= epsilon {
		sub2 = L / kappa
	}

	var res [6]line
	for c := range 3 {
		m1, m2, m3 := fromXYZ[3*c], fromXYZ[3*c+1], fromXYZ[3*c+2]
		for t := range 2 {
			top1 := (284517*m1 - 94839*m3) * sub2
			top2 := (838422*m3+769860*m2+731718*m1)*L*sub2 - 769860*float64(t)*L
			bottom := (632260*m3-126452*m2)*sub2 + 126452*float64(t)
			res[2*c+t] = line{top1 / bottom, top2 / bottom}
		}
	}
	return res
}

// MaxChroma returns the largest chroma of an sRGB colour with the given
// lightness and hue (in degrees).
func MaxChroma(L, h float64) float64 {
	sin, cos := math.Sincos(h * math.Pi / 180)
	res := math.Inf(1)
	for _, b := range bounds(L) {
		length := b.intercept / (sin - b.slope*cos)
		if length >= 0 {
			res = min(res, length)
		}
	}
	return res
}

// MaxSafeChroma returns the largest chroma for which colours of the given
// lightness are inside the sRGB gamut for all hues.
func MaxSafeChroma(L float64) float64 {
	res := math.Inf(1)
	for _, b := range bounds(L) {
		// closest point of the line to the origin
		u := b.intercept / (-1/b.slope - b.slope)
		res = min(res, math.Hypot(u, b.intercept+u*b.slope))
	}
	return res
}

// FromHCL converts an HCL value (H, C, L) to HSLuv.
func FromHCL(v mat3.Vector) mat3.Vector {
	return fromHCL(v, MaxChroma(v[2], v[0]))
}

// ToHCL converts an HSLuv value to HCL.
func ToHCL(v mat3.Vector) mat3.Vector {
	return toHCL(v, MaxChroma(v[2], v[0]))
}

// PastelFromHCL converts an HCL value (H, C, L) to HPLuv.
func PastelFromHCL(v mat3.Vector) mat3.Vector {
	return fromHCL(v, MaxSafeChroma(v[2]))
}

// PastelToHCL converts an HPLuv value to HCL.
func PastelToHCL(v mat3.Vector) mat3.Vector {
	return toHCL(v, MaxSafeChroma(v[2]))
}

func fromHCL(v mat3.Vector, maxC float64) mat3.Vector {
	h, c, L := v[0], v[1], v[2]
	switch {
	case L > maxL:
		return mat3.Vector{h, 0, 100}
	case L < minL:
		return mat3.Vector{h, 0, 0}
	}
	return mat3.Vector{h, c / maxC * 100, L}
}

func toHCL(v mat3.Vector, maxC float64) mat3.Vector {
	h, s, L := v[0], v[1], v[2]
	switch {
	case L > maxL:
		return mat3.Vector{h, 0, 100}
	case L < minL:
		return mat3.Vector{h, 0, 0}
	}
	return mat3.Vector{h, maxC / 100 * s, L}
}
