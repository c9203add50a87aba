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

package rgbspace

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/transfer"
)

var (
	primariesSRGB = [3]vec.Vec2{{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06}}
	primariesAP0  = [3]vec.Vec2{{X: 0.7347, Y: 0.2653}, {X: 0.0, Y: 1.0}, {X: 0.0001, Y: -0.0770}}
	primariesAP1  = [3]vec.Vec2{{X: 0.713, Y: 0.293}, {X: 0.165, Y: 0.830}, {X: 0.128, Y: 0.044}}
	primariesP3   = [3]vec.Vec2{{X: 0.680, Y: 0.320}, {X: 0.265, Y: 0.690}, {X: 0.150, Y: 0.060}}
)

// Predefined RGB spaces.
var (
	// SRGB is the sRGB space of IEC 61966-2-1.
	SRGB = must(New("sRGB", primariesSRGB, illuminant.D65, transfer.SRGB))

	// LinearSRGB uses the sRGB primaries with a linear transfer function.
	LinearSRGB = must(New("Linear sRGB", primariesSRGB, illuminant.D65, transfer.Identity))

	// ACES2065 is the ACES2065-1 interchange space (AP0 primaries).
	ACES2065 = must(New("ACES2065-1", primariesAP0, illuminant.ACES, transfer.Identity))

	// ACEScg is the scene-linear ACES working space (AP1 primaries).
	ACEScg = must(New("ACEScg", primariesAP1, illuminant.ACES, transfer.Identity))

	ACEScc = must(New("ACEScc", primariesAP1, illuminant.ACES, transfer.ACEScc))

	ACEScct = must(New("ACEScct", primariesAP1, illuminant.ACES, transfer.ACEScct))

	AdobeRGB = must(New("Adobe RGB (1998)",
		[3]vec.Vec2{{X: 0.64, Y: 0.33}, {X: 0.21, Y: 0.71}, {X: 0.15, Y: 0.06}},
		illuminant.D65, transfer.Gamma{Exponent: 563.0 / 256}))

	BT2020 = must(New("ITU-R BT.2020",
		[3]vec.Vec2{{X: 0.708, Y: 0.292}, {X: 0.170, Y: 0.797}, {X: 0.131, Y: 0.046}},
		illuminant.D65, transfer.BT2020(transfer.Depth12)))

	BT709 = must(New("ITU-R BT.709", primariesSRGB, illuminant.D65, transfer.BT709))

	// DCIP3 is the SMPTE RP 431-2 cinema space, with the DCI white point.
	DCIP3 = must(New("DCI-P3", primariesP3, illuminant.DCI, transfer.Gamma{Exponent: 2.6}))

	// DisplayP3 uses the P3 primaries with the D65 white point and the sRGB
	// transfer function.
	DisplayP3 = must(New("Display P3", primariesP3, illuminant.D65, transfer.SRGB))

	// ROMM is ROMM RGB (ProPhoto RGB), defined in ISO 22028-2.
	ROMM = must(New("ROMM RGB",
		[3]vec.Vec2{{X: 0.7347, Y: 0.2653}, {X: 0.1596, Y: 0.8404}, {X: 0.0366, Y: 0.0001}},
		illuminant.D50, transfer.ROMM))
)

// All lists the predefined RGB spaces.
var All = []*Space{
	SRGB, LinearSRGB,
	ACES2065, ACEScc, ACEScct, ACEScg,
	AdobeRGB, BT2020, BT709, DCIP3, DisplayP3, ROMM,
}
