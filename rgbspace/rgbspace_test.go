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
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/transfer"
)

// Reference values computed with colour-science, using derived matrices
// and CAT02 chromatic adaptation.
var convertTests = []struct {
	src, dst *Space
	in, out  mat3.Vector
}{
	{SRGB, ACES2065, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.02721178, 0.02721178, 0.02721178}},
	{SRGB, ACES2065, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{0.19676816, 0.22893858, 0.4807652}},
	{ACES2065, SRGB, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.46135613, 0.46135613, 0.46135613}},
	{ACES2065, SRGB, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{-2.92911117, 0.76442919, 0.90379292}},
	{SRGB, ACEScc, mat3.Vector{0, 0, 0}, mat3.Vector{-0.35844749, -0.35844749, -0.35844749}},
	{SRGB, ACEScc, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.25801228, 0.25801228, 0.25801228}},
	{SRGB, ACEScc, mat3.Vector{1, 1, 1}, mat3.Vector{0.55479452, 0.55479452, 0.55479452}},
	{ACEScc, SRGB, mat3.Vector{0, 0, 0}, mat3.Vector{0.01531972, 0.01531972, 0.01531972}},
	{ACEScc, SRGB, mat3.Vector{1, 1, 1}, mat3.Vector{9.98190805, 9.98190805, 9.98190805}},
	{SRGB, ACEScct, mat3.Vector{0, 0, 0}, mat3.Vector{0.07290553, 0.07290553, 0.07290553}},
	{ACEScct, SRGB, mat3.Vector{0, 0, 0}, mat3.Vector{-0.08936606, -0.08936606, -0.08936606}},
	{SRGB, ACEScg, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{0.12812043, 0.2063003, 0.47992257}},
	{SRGB, AdobeRGB, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.1942107, 0.1942107, 0.1942107}},
	{AdobeRGB, SRGB, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.16419367, 0.16419367, 0.16419367}},
	{SRGB, BT2020, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.11784851, 0.11784851, 0.11784851}},
	{BT2020, SRGB, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.24167749, 0.24167749, 0.24167749}},
	{SRGB, BT709, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.11808925, 0.11808925, 0.11808925}},
	{SRGB, BT709, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{0.18869271, 0.45018853, 0.7216247}},
	{SRGB, DCIP3, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.25002501, 0.25002501, 0.25002501}},
	{SRGB, DisplayP3, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.18, 0.18, 0.18}},
	{SRGB, DisplayP3, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{0.31300491, 0.49410464, 0.7301505}},
	{SRGB, ROMM, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.13502697, 0.13502697, 0.13502697}},
	{ROMM, SRGB, mat3.Vector{0.18, 0.18, 0.18}, mat3.Vector{0.23654583, 0.23654583, 0.23654583}},
	{SRGB, LinearSRGB, mat3.Vector{0.25, 0.5, 0.75}, mat3.Vector{0.05087609, 0.21404114, 0.52252155}},
}

func TestConvertReference(t *testing.T) {
	for _, test := range convertTests {
		t.Run(test.src.Name+"-"+test.dst.Name, func(t *testing.T) {
			c, err := NewConverter(test.src, test.dst, illuminant.CAT02)
			if err != nil {
				t.Fatal(err)
			}
			got := c.Convert(test.in, Options{})
			if d := cmp.Diff(test.out, got, cmpopts.EquateApprox(0, 2e-7)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestRoundTrip converts values to every space and back.
func TestRoundTrip(t *testing.T) {
	values := []mat3.Vector{
		{0, 0, 0},
		{0.18, 0.18, 0.18},
		{0.4, 0.5, 0.6},
		{1, 1, 1},
		{0.05, 0.9, 0.3},
	}
	for _, dst := range All {
		if dst == ACEScc {
			// ACEScc cannot represent the negative linear values which
			// occur for saturated sRGB colours.
			continue
		}
		t.Run(dst.Name, func(t *testing.T) {
			fwd, err := NewConverter(SRGB, dst, illuminant.CAT02)
			if err != nil {
				t.Fatal(err)
			}
			back, err := NewConverter(dst, SRGB, illuminant.CAT02)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range values {
				got := back.Convert(fwd.Convert(v, Options{}), Options{})
				if d := cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
					t.Errorf("%v: %s", v, d)
				}
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	c, err := NewConverter(SRGB, SRGB, illuminant.Bradford)
	if err != nil {
		t.Fatal(err)
	}
	if c.Matrix() != mat3.Identity {
		t.Errorf("expected identity matrix, got %v", c.Matrix())
	}
	v := mat3.Vector{0.1, 1.2, -0.3}
	if got := c.Convert(v, Options{}); cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-12)) != "" {
		t.Errorf("got %v", got)
	}
}

func TestBlackAndWhite(t *testing.T) {
	for _, s := range All {
		M, err := s.ToXYZ(illuminant.D65, illuminant.CAT02)
		if err != nil {
			t.Fatal(err)
		}
		// the log encodings do not map linear black to the signal 0
		zero := s.Encode(mat3.Vector{}, transfer.Depth12)
		black := M.Apply(s.Decode(zero, transfer.Depth12))
		if d := cmp.Diff(mat3.Vector{}, black, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%s black: %s", s.Name, d)
		}
		white := M.Apply(mat3.Vector{1, 1, 1})
		if d := cmp.Diff(illuminant.D65.XYZ(), white, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%s white: %s", s.Name, d)
		}
	}
}

func TestSkipDecodeEncode(t *testing.T) {
	c, err := NewConverter(SRGB, BT2020, illuminant.CAT02)
	if err != nil {
		t.Fatal(err)
	}
	v := mat3.Vector{0.25, 0.5, 0.75}

	lin := SRGB.Decode(v, transfer.Depth12)
	got := c.Convert(lin, Options{SkipDecode: true, SkipEncode: true})
	want := c.Matrix().Apply(lin)
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	full := c.Convert(v, Options{})
	if d := cmp.Diff(full, BT2020.Encode(got, transfer.Depth12)); d != "" {
		t.Error(d)
	}
}

func TestQuantize(t *testing.T) {
	c, err := NewConverter(SRGB, BT2020, illuminant.CAT02)
	if err != nil {
		t.Fatal(err)
	}
	got := c.Convert(mat3.Vector{0.25, 0.5, 0.75}, Options{Depth: transfer.Depth10, Quantize: true})
	for i, x := range got {
		code := x * 1023
		if math.Abs(code-math.Round(code)) > 1e-9 {
			t.Errorf("component %d: %g is not a 10-bit code value", i, x)
		}
	}
}

// TestPublishedMatrix checks that the derived ACES2065-1 matrix agrees with
// the matrix published in SMPTE ST 2065-1.
func TestPublishedMatrix(t *testing.T) {
	published := mat3.Matrix{
		0.9525523959, 0, 0.0000936786,
		0.3439664498, 0.7281660966, -0.0721325464,
		0, 0, 1.0088251844,
	}
	if !ACES2065.DeriveMatrices() {
		t.Error("ACES2065-1 should use derived matrices")
	}
	if d := cmp.Diff(published, ACES2065.Basis().ToXYZ, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	s, err := New("ACES (published)", primariesAP0, illuminant.ACES, transfer.Identity,
		WithPublishedMatrix(published))
	if err != nil {
		t.Fatal(err)
	}
	if s.DeriveMatrices() {
		t.Error("published matrix not used")
	}
	if s.Basis().ToXYZ != published {
		t.Error("wrong basis matrix")
	}
}

func TestDegenerate(t *testing.T) {
	primaries := [3]vec.Vec2{{X: 0.6, Y: 0.3}, {X: 0.4, Y: 0.35}, {X: 0.2, Y: 0.4}}
	_, err := New("broken", primaries, illuminant.D65, transfer.Identity)

	var dbErr *DegenerateBasisError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DegenerateBasisError, got %v", err)
	}
	if dbErr.Space != "broken" || !errors.Is(err, mat3.ErrSingular) {
		t.Errorf("unexpected error %v", err)
	}

	_, err = New("zero", [3]vec.Vec2{}, illuminant.D65, transfer.Identity,
		WithPublishedMatrix(mat3.Matrix{}))
	if !errors.As(err, &dbErr) {
		t.Errorf("expected DegenerateBasisError, got %v", err)
	}
}

func TestConcurrentFill(t *testing.T) {
	var wg sync.WaitGroup
	res := make([]mat3.Matrix, 16)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := NewConverter(ROMM, DCIP3, illuminant.VonKries)
			if err != nil {
				t.Error(err)
				return
			}
			res[i] = c.Matrix()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(res); i++ {
		if res[i] != res[0] {
			t.Fatal("inconsistent matrices")
		}
	}
}

func TestMemoBounded(t *testing.T) {
	count := func() int {
		n := 0
		memo.Range(func(_, _ any) bool {
			n++
			return true
		})
		return n
	}

	_, err := SRGB.ToXYZ(illuminant.D50, illuminant.Bradford)
	if err != nil {
		t.Fatal(err)
	}
	before := count()

	custom, err := New("custom", SRGB.Primaries, illuminant.D65, transfer.Identity)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 50 {
		w := illuminant.WhitePoint{XY: vec.Vec2{X: 0.30 + float64(i)/1000, Y: 0.33}}
		M1, err := SRGB.ToXYZ(w, illuminant.Bradford)
		if err != nil {
			t.Fatal(err)
		}
		M2, err := SRGB.ToXYZ(w, illuminant.Bradford)
		if err != nil {
			t.Fatal(err)
		}
		if M1 != M2 {
			t.Fatal("results differ")
		}
		if _, err := custom.FromXYZ(illuminant.D65, illuminant.CAT02); err != nil {
			t.Fatal(err)
		}
		if _, err := NewConverter(custom, SRGB, illuminant.CAT02); err != nil {
			t.Fatal(err)
		}
	}
	if after := count(); after != before {
		t.Errorf("memo grew from %d to %d entries", before, after)
	}
}
