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

package mat3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestIdentity(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			if d := cmp.Diff(A, A.Mul(Identity)); d != "" {
				t.Error(d)
			}
			if d := cmp.Diff(A, Identity.Mul(A)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestMulOrder checks that M.Mul(B) corresponds to first applying M and
// then B.
func TestMulOrder(t *testing.T) {
	A := testMatrices[1]
	B := testMatrices[2]
	v := Vector{0.25, -0.5, 2}

	got := A.Mul(B).Apply(v)
	want := B.Apply(A.Apply(v))
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 1e-12)); d != "" {
		t.Error(d)
	}
}

// TestInverse1 checks that a matrix multiplied by its inverse is the
// identity matrix.
func TestInverse1(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv, err := A.Inv()
			if err != nil {
				t.Fatal(err)
			}

			B := Ainv.Mul(A)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
			B = A.Mul(Ainv)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestInverse2 checks that the inverse of the inverse of a matrix is the
// original matrix.
func TestInverse2(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			B := A.MustInv().MustInv()
			if d := cmp.Diff(A, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestSingular(t *testing.T) {
	cases := []Matrix{
		{},
		{1, 2, 3, 2, 4, 6, 0, 0, 1},
		{1, 0, 0, 0, 1, 0, 0, 0, 1e-15},
	}
	for i, A := range cases {
		_, err := A.Inv()
		if !errors.Is(err, ErrSingular) {
			t.Errorf("%d: expected ErrSingular, got %v", i, err)
		}
	}
}

func TestFromPrimaries(t *testing.T) {
	// sRGB primaries with the D65 white point
	M, err := FromPrimaries(
		vec.Vec2{X: 0.64, Y: 0.33},
		vec.Vec2{X: 0.30, Y: 0.60},
		vec.Vec2{X: 0.15, Y: 0.06},
		vec.Vec2{X: 0.3127, Y: 0.3290},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := Matrix{
		0.4123907992659593, 0.357584339383878, 0.1804807884018343,
		0.21263900587151024, 0.715168678767756, 0.07219231536073371,
		0.01933081871559182, 0.11919477979462598, 0.9505321522496607,
	}
	if d := cmp.Diff(want, M, cmpopts.EquateApprox(1e-12, 1e-14)); d != "" {
		t.Error(d)
	}

	white := M.Apply(Vector{1, 1, 1})
	if d := cmp.Diff(Chromaticity(vec.Vec2{X: 0.3127, Y: 0.3290}), white, cmpopts.EquateApprox(1e-12, 0)); d != "" {
		t.Error(d)
	}
}

func TestFromPrimariesDegenerate(t *testing.T) {
	r := vec.Vec2{X: 0.6, Y: 0.3}
	g := vec.Vec2{X: 0.4, Y: 0.35}
	b := vec.Vec2{X: 0.2, Y: 0.4} // on the line through r and g
	w := vec.Vec2{X: 0.3127, Y: 0.3290}

	_, err := FromPrimaries(r, g, b, w)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}

	_, err = FromPrimaries(r, g, vec.Vec2{X: 0.1, Y: 0}, w)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

var testMatrices = []Matrix{
	Identity,
	{2, 3, 4, 5, 6, 7, 8, 9, 11},
	Diag(0.5, 2, -1),
	{0.7328, 0.4296, -0.1624, -0.7036, 1.6975, 0.0061, 0.0030, 0.0136, 0.9834},
}
