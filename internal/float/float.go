// seehuhn.de/go/colorconv - convert colour values between colour spaces
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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

// Package float formats floating point numbers for tables and fixtures.
package float

import (
	"regexp"
	"strconv"
)

// Format formats x with the given number of fractional digits.  Trailing
// zeros are removed, but at least one fractional digit is kept.  Negative
// zero is written as "0.0" and NaN as "NaN".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0.0" {
		out = "0.0"
	}
	return out
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|\.0(0+))$`)
)
