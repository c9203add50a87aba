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

package illuminant

import (
	"fmt"

	"seehuhn.de/go/colorconv/mat3"
)

// Adaptation is a von Kries-type chromatic adaptation transform.  The
// matrix M maps XYZ values to the cone response domain in which the
// adaptation is performed.
type Adaptation struct {
	Name string
	M    mat3.Matrix
}

// Chromatic adaptation transforms in common use.
var (
	// CAT02 is the transform from the CIECAM02 colour appearance model.
	CAT02 = Adaptation{"CAT02", mat3.Matrix{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	}}

	Bradford = Adaptation{"Bradford", mat3.Matrix{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}}

	VonKries = Adaptation{"von Kries", mat3.Matrix{
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0, 0, 0.91822,
	}}

	// XYZScaling scales the XYZ components directly.
	XYZScaling = Adaptation{"XYZ scaling", mat3.Identity}
)

// Adaptations lists the predefined chromatic adaptation transforms.
var Adaptations = []Adaptation{CAT02, Bradford, VonKries, XYZScaling}

// Matrix returns the matrix which maps XYZ values relative to the white
// point from to XYZ values relative to the white point to.
func (a Adaptation) Matrix(from, to WhitePoint) (mat3.Matrix, error) {
	if from.XY == to.XY {
		return mat3.Identity, nil
	}
	Minv, err := a.M.Inv()
	if err != nil {
		return mat3.Matrix{}, fmt.Errorf("adaptation %q: %w", a.Name, err)
	}

	src := a.M.Apply(from.XYZ())
	dst := a.M.Apply(to.XYZ())
	D := mat3.Diag(dst[0]/src[0], dst[1]/src[1], dst[2]/src[2])

	// first map to the cone response domain, then scale, then map back
	return a.M.Mul(D).Mul(Minv), nil
}
