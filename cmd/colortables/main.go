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

// Colortables prints tables of colour conversions, for use as test
// fixtures.  Each row gives an input value and the converted value, with
// the output rounded to a fixed number of fractional digits.
//
// Usage:
//
//	colortables [-from space -to space] [-illuminant name] [-precision n]
//
// Without -from and -to, a fixed selection of conversions is printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/colorconv"
	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/internal/buildinfo"
)

func main() {
	from := flag.String("from", "", "source colour space")
	to := flag.String("to", "", "destination colour space")
	white := flag.String("illuminant", "", "reference white for the CIE spaces (e.g. D50)")
	precision := flag.Int("precision", 8, "number of fractional digits")
	list := flag.Bool("list", false, "list the colour space names and exit")
	version := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("colortables"))
		return
	}
	if *list {
		for _, name := range colorconv.SpaceNames() {
			fmt.Println(name)
		}
		return
	}

	var pairs []pair
	switch {
	case *from != "" && *to != "":
		p := pair{from: *from, to: *to}
		if *white != "" {
			w, ok := illuminant.ByName(*white)
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown illuminant %q\n", *white)
				os.Exit(1)
			}
			p.white = &w
		}
		pairs = []pair{p}
	case *from != "" || *to != "":
		fmt.Fprintln(os.Stderr, "-from and -to must be used together")
		flag.PrintDefaults()
		os.Exit(1)
	default:
		pairs = defaultPairs()
	}

	err := run(pairs, *precision, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(pairs []pair, precision int, interactive bool) error {
	w := bufio.NewWriter(os.Stdout)

	if !interactive {
		fmt.Fprintf(w, "// generated by %s, DO NOT EDIT\n\n", buildinfo.Short("colortables"))
	}
	for i, p := range pairs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if interactive {
			fmt.Fprintf(w, "%s -> %s\n", p.from, p.to)
		}
		err := writeGroup(w, p, precision)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
