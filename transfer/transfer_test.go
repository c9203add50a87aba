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
	"math"
	"testing"
)

var testCurves = []struct {
	name  string
	curve Curve

	// encoded values of 0.001 and 0.18
	at001, at18 float64
}{
	{"sRGB", SRGB, 0.01292, 0.46135612950044164},
	{"Adobe RGB", Gamma{563.0 / 256}, 0.043239356144868332, 0.45852946567989455},
	{"BT.2020", BT2020(Depth12), 0.0045, 0.40884640249350368},
	{"BT.709", BT709, 0.0045, 0.409007728864150},
	{"DCI-P3", Gamma{2.6}, 0.070170382867038292, 0.5170902489415321},
	{"ROMM", ROMM, 0.016, 0.385711424751138},
	{"ACEScc", ACEScc, -0.01402878337112365, 0.413588402492442},
	{"ACEScct", ACEScct, 0.08344577193748999, 0.413588402492442},
	{"linear", Identity, 0.001, 0.18},
}

func TestEncodeReference(t *testing.T) {
	for _, c := range testCurves {
		t.Run(c.name, func(t *testing.T) {
			if got := c.curve.Encode(0.001); !near(got, c.at001, 1e-9) {
				t.Errorf("Encode(0.001) = %.15g, want %.15g", got, c.at001)
			}
			if got := c.curve.Encode(0.18); !near(got, c.at18, 1e-9) {
				t.Errorf("Encode(0.18) = %.15g, want %.15g", got, c.at18)
			}
		})
	}
}

func TestACESccEndpoints(t *testing.T) {
	if got := ACEScc.Encode(0); !near(got, -0.358447488584475, 1e-12) {
		t.Errorf("ACEScc.Encode(0) = %g", got)
	}
	if got := ACEScc.Encode(1); !near(got, 0.554794520547945, 1e-12) {
		t.Errorf("ACEScc.Encode(1) = %g", got)
	}
	if got := ACEScct.Encode(0); !near(got, 0.072905534195835495, 1e-12) {
		t.Errorf("ACEScct.Encode(0) = %g", got)
	}
}

// TestRoundTrip checks that Decode inverts Encode, including values outside
// the nominal range [0, 1].
func TestRoundTrip(t *testing.T) {
	values := []float64{-0.5, -0.01, 0, 1e-5, 0.001, 0.0031308, 0.018, 0.18, 0.5, 1, 2.5, 100}
	for _, c := range testCurves {
		for _, l := range values {
			if c.curve == ACEScc && l <= 0 {
				// ACEScc maps all non-positive values to the same code
				continue
			}
			t.Run(fmt.Sprintf("%s/%g", c.name, l), func(t *testing.T) {
				got := c.curve.Decode(c.curve.Encode(l))
				if !near(got, l, 1e-9) {
					t.Errorf("Decode(Encode(%g)) = %.15g", l, got)
				}
			})
		}
	}
}

func TestMonotonic(t *testing.T) {
	for _, c := range testCurves {
		t.Run(c.name, func(t *testing.T) {
			prev := c.curve.Encode(0)
			for i := 1; i <= 1000; i++ {
				x := c.curve.Encode(float64(i) / 1000)
				if x <= prev {
					t.Fatalf("not increasing at %g", float64(i)/1000)
				}
				prev = x
			}
		})
	}
}

func TestBT2020Depth(t *testing.T) {
	c10 := ForDepth(BT2020(Depth12), Depth10)
	c12 := ForDepth(BT2020(Depth10), Depth12)

	// 1.099 * 0.18^0.45 - 0.099
	if got := c10.Encode(0.18); !near(got, 0.409007728864150, 1e-9) {
		t.Errorf("10-bit Encode(0.18) = %.15g", got)
	}
	if got := c12.Encode(0.18); !near(got, 0.40884640249350368, 1e-9) {
		t.Errorf("12-bit Encode(0.18) = %.15g", got)
	}

	if ForDepth(SRGB, Depth10) != Curve(SRGB) {
		t.Error("sRGB curve should not depend on the bit depth")
	}
}

func TestPQ(t *testing.T) {
	if got := ST2084.Encode(10000); !near(got, 1, 1e-12) {
		t.Errorf("Encode(10000) = %g", got)
	}
	if got := ST2084.Encode(0); !near(got, 7.309559025783966e-07, 1e-9) {
		t.Errorf("Encode(0) = %g", got)
	}
	for _, l := range []float64{0, 0.01, 1, 100, 1000, 10000, 20000} {
		got := ST2084.Decode(ST2084.Encode(l))
		if !near(got, l, 1e-9) {
			t.Errorf("Decode(Encode(%g)) = %g", l, got)
		}
	}
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		v     float64
		depth BitDepth
		want  uint16
	}{
		{0, Depth8, 0},
		{1, Depth8, 255},
		{0.5, Depth8, 128},
		{1, Depth10, 1023},
		{1, Depth12, 4095},
		{0.18, Depth12, 737},
		{-0.2, Depth10, 0},
		{1.5, Depth10, 1023},
		{math.NaN(), Depth8, 0},
		{math.Inf(1), Depth12, 4095},
		{math.Inf(-1), Depth12, 0},
		{0.9999, Depth8, 255},
	}
	for _, c := range cases {
		got := Quantize(c.v, c.depth)
		if got != c.want {
			t.Errorf("Quantize(%g, %s) = %d, want %d", c.v, c.depth, got, c.want)
		}
	}

	for _, d := range []BitDepth{Depth8, Depth10, Depth12} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
		for code := uint16(0); code <= d.MaxCode(); code += 7 {
			if got := Quantize(Dequantize(code, d), d); got != code {
				t.Errorf("%s: %d -> %d", d, code, got)
			}
		}
	}
	if BitDepth(16).Valid() {
		t.Error("16-bit should not be valid")
	}
}

func near(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol*max(1, math.Abs(y))
}
