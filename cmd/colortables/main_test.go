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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/colorconv"
	"seehuhn.de/go/colorconv/illuminant"
)

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"RGB":              "SRGB",
		"ACES2065-1":       "ACES",
		"ACEScc":           "ACEScc",
		"Oklab":            "Oklab",
		"Adobe RGB (1998)": "ADOBE_RGB_1998",
		"ITU-R BT.2020":    "ITU_R_BT_2020",
		"DCI-P3":           "DCI_P3",
		"Display P3":       "DISPLAY_P3",
		"ROMM RGB":         "ROMM_RGB",
	}
	for in, want := range cases {
		if got := identifier(in); got != want {
			t.Errorf("identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	err := writeGroup(buf, pair{from: "RGB", to: "XYZ"}, 8)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	want := []string{
		"SRGB(0.00, 0.00, 0.00) to XYZ(0.0, 0.0, 0.0),",
		"SRGB(0.18, 0.18, 0.18) to XYZ(0.0258636, 0.02721178, 0.0296352),",
		"SRGB(0.40, 0.50, 0.60) to XYZ(0.18882301, 0.20432514, 0.33086999),",
	}
	for i, w := range want {
		if got := strings.TrimSpace(lines[i]); got != w {
			t.Errorf("line %d: got %q, want %q", i, got, w)
		}
	}
}

func TestInputs(t *testing.T) {
	lch, err := colorconv.LookupSpace("LCH")
	require.NoError(t, err)
	in := inputs(lch)
	require.InDeltaSlice(t, []float64{40, 50, 216}, in[2], 1e-9)

	hsluv, err := colorconv.LookupSpace("HSLuv")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{144, 50, 60}, inputs(hsluv)[2], 1e-9)

	cmyk, err := colorconv.LookupSpace("CMYK")
	require.NoError(t, err)
	require.Len(t, inputs(cmyk)[0], 4)
}

func TestDefaultPairs(t *testing.T) {
	buf := &bytes.Buffer{}
	for _, p := range defaultPairs() {
		require.NoError(t, writeGroup(buf, p, 8), "%s -> %s", p.from, p.to)
	}

	d50 := illuminant.D50
	buf.Reset()
	require.NoError(t, writeGroup(buf, pair{from: "LAB", to: "XYZ", white: &d50}, 8))
	if !strings.Contains(buf.String(), "LAB50(") || !strings.Contains(buf.String(), "XYZ50(") {
		t.Errorf("missing illuminant label: %s", buf.String())
	}
}
