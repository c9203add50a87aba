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

// PQ is a perceptual quantizer curve in the form of SMPTE ST 2084.
// Linear values are measured in units where Peak corresponds to the
// signal value 1.
//
// PQ is used as the non-linearity of the ICtCp and JzAzBz colour spaces.
type PQ struct {
	M1, M2     float64
	C1, C2, C3 float64
	Peak       float64
}

// ST2084 is the SMPTE ST 2084 curve, with linear values in cd/m².
var ST2084 = PQ{
	M1:   2610.0 / 16384,
	M2:   2523.0 / 4096 * 128,
	C1:   3424.0 / 4096,
	C2:   2413.0 / 4096 * 32,
	C3:   2392.0 / 4096 * 32,
	Peak: 10000,
}

// Decode implements the [Curve] interface.
func (p PQ) Decode(v float64) float64 {
	vp := spow(v, 1/p.M2)
	n := max(vp-p.C1, 0)
	return p.Peak * spow(n/(p.C2-p.C3*vp), 1/p.M1)
}

// Encode implements the [Curve] interface.
func (p PQ) Encode(l float64) float64 {
	yp := spow(l/p.Peak, p.M1)
	return spow((p.C1+p.C2*yp)/(1+p.C3*yp), p.M2)
}
