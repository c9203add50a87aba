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

package ictcp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/transfer"
)

func TestToBT2020(t *testing.T) {
	cases := []struct {
		in, out mat3.Vector
	}{
		{mat3.Vector{0.08, 0, 0}, mat3.Vector{0.41300407, 0.41300407, 0.41300407}},
		{mat3.Vector{0.10, 0.01, -0.01}, mat3.Vector{0.51900627, 0.57112792, 0.64131823}},
		{mat3.Vector{0.15, 0, 0}, mat3.Vector{1.00052666, 1.00052666, 1.00052666}},
	}
	for _, test := range cases {
		got := ToBT2020(test.in, transfer.Depth12)
		if d := cmp.Diff(test.out, got, cmpopts.EquateApprox(0, 1e-7)); d != "" {
			t.Errorf("%v: %s", test.in, d)
		}
	}
}

func TestBlack(t *testing.T) {
	lin := ToLinearBT2020(FromLinearBT2020(mat3.Vector{}))
	if d := cmp.Diff(mat3.Vector{}, lin, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestAchromatic(t *testing.T) {
	// neutral values have no chroma
	for _, y := range []float64{0.01, 0.18, 1, 100} {
		v := FromLinearBT2020(mat3.Vector{y, y, y})
		if d := cmp.Diff(0.0, v[1], cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("Ct(%g): %s", y, d)
		}
		if d := cmp.Diff(0.0, v[2], cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("Cp(%g): %s", y, d)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []mat3.Vector{
		{0.18, 0.18, 0.18},
		{0.4, 0.5, 0.6},
		{1, 1, 1},
		{0.9, 0.05, 0.3},
	}
	for _, depth := range []transfer.BitDepth{transfer.Depth10, transfer.Depth12} {
		for _, v := range values {
			got := ToBT2020(FromBT2020(v, depth), depth)
			if d := cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("%s %v: %s", depth, v, d)
			}
		}
	}
}
