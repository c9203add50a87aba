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
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/colorconv"
	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/internal/float"
)

var testCases = [][]float64{
	{0, 0, 0},
	{0.18, 0.18, 0.18},
	{0.4, 0.5, 0.6},
	{1, 1, 1},
}

var cmykTestCases = [][]float64{
	{0, 0, 0, 0},
	{0.18, 0.18, 0.18, 0.18},
	{0.4, 0.5, 0.6, 0.7},
	{1, 1, 1, 1},
}

// pair is one group of rows in the output.
type pair struct {
	from, to string
	white    *illuminant.WhitePoint
}

// rgbGamuts are the named RGB spaces which are tested against sRGB.
var rgbGamuts = []string{
	"ACES2065-1",
	"ACEScc",
	"ACEScct",
	"ACEScg",
	"Adobe RGB (1998)",
	"ITU-R BT.2020",
	"ITU-R BT.709",
	"DCI-P3",
	"Display P3",
	"ROMM RGB",
}

func defaultPairs() []pair {
	var res []pair
	for _, name := range rgbGamuts {
		res = append(res, pair{from: "RGB", to: name}, pair{from: name, to: "RGB"})
	}
	d50 := illuminant.D50
	for _, p := range [][2]string{
		{"XYZ", "JzAzBz"},
		{"XYZ", "Oklab"},
		{"XYZ", "LUV"},
		{"XYZ", "LAB"},
		{"XYZ", "RGB"},
		{"RGB", "HSV"},
		{"RGB", "HSL"},
		{"RGB", "XYZ"},
		{"RGB", "LAB"},
		{"RGB", "LUV"},
		{"RGB", "CMYK"},
		{"RGB", "Oklab"},
		{"CMYK", "RGB"},
		{"HCL", "LUV"},
		{"HSL", "RGB"},
		{"HSL", "HSV"},
		{"HSV", "RGB"},
		{"HSV", "HSL"},
		{"JzCzHz", "JzAzBz"},
		{"LAB", "XYZ"},
		{"LAB", "LCH"},
		{"LCH", "LAB"},
		{"LUV", "XYZ"},
		{"LUV", "HCL"},
		{"Oklab", "XYZ"},
		{"Oklab", "RGB"},
		{"ICtCp", "RGB"},
	} {
		res = append(res, pair{from: p[0], to: p[1]})
	}
	res = append(res, pair{from: "LAB", to: "XYZ", white: &d50})
	return res
}

// inputs returns the test inputs for a source space.  Hue components are
// scaled to degrees, and the components of the CIE spaces to their
// customary range.
func inputs(space *colorconv.Space) [][]float64 {
	base := testCases
	if space.NumChannels() == 4 {
		base = cmykTestCases
	}

	scale := make([]float64, space.NumChannels())
	for i := range scale {
		scale[i] = 1
		switch {
		case i == space.Hue:
			scale[i] = 360
		case space.Kind == colorconv.KindLab, space.Kind == colorconv.KindLuv,
			space.Kind == colorconv.KindLCh, space.Kind == colorconv.KindHCL,
			space.Kind == colorconv.KindHSLuv, space.Kind == colorconv.KindHPLuv:
			scale[i] = 100
		}
	}

	res := make([][]float64, len(base))
	for k, v := range base {
		w := make([]float64, len(v))
		for i, x := range v {
			w[i] = x * scale[i]
		}
		res[k] = w
	}
	return res
}

// writeGroup writes the rows for one pair of spaces.
func writeGroup(w io.Writer, p pair, precision int) error {
	src, err := colorconv.LookupSpace(p.from)
	if err != nil {
		return err
	}
	var opts []colorconv.Option
	label := ""
	if p.white != nil {
		opts = append(opts, colorconv.WithIlluminant(*p.white))
		label = strings.TrimPrefix(p.white.Name, "D")
	}
	path, err := colorconv.Resolve(p.from, p.to, opts...)
	if err != nil {
		return err
	}

	for _, v := range inputs(src) {
		out, err := path.Apply(v)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		_, err = fmt.Fprintf(w, "        %s(%s) to %s(%s),\n",
			identifier(p.from)+label, join(v, func(x float64) string {
				return fmt.Sprintf("%.2f", x)
			}),
			identifier(p.to)+label, join(out, func(x float64) string {
				return float.Format(x, precision)
			}))
		if err != nil {
			return err
		}
	}
	return nil
}

func join(v []float64, f func(float64) string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = f(x)
	}
	return strings.Join(parts, ", ")
}

var upper = cases.Upper(language.Und)

// identifier turns a colour space name into the name used in the
// generated rows.  sRGB is written as SRGB and ACES2065-1 as ACES; names
// which are not valid identifiers are upper-cased, with runs of other
// characters replaced by underscores.
func identifier(name string) string {
	switch name {
	case "RGB":
		return "SRGB"
	case "ACES2065-1":
		return "ACES"
	}

	valid := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			valid = false
			break
		}
	}
	if valid {
		return name
	}

	b := &strings.Builder{}
	sep := false
	for _, r := range upper.String(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			sep = false
		} else {
			sep = true
		}
	}
	return b.String()
}
