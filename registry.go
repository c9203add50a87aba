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

package colorconv

import (
	"sync"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/rgbspace"
)

// Kind classifies colour spaces by the conversions they take part in.
type Kind int

// These are the supported kinds of colour spaces.
const (
	KindXYZ Kind = iota
	KindXyY
	KindRGB
	KindLab
	KindLCh
	KindLuv
	KindHCL
	KindOklab
	KindOklch
	KindJzAzBz
	KindJzCzHz
	KindICtCp
	KindHSL
	KindHSV
	KindHWB
	KindCMY
	KindCMYK
	KindHSLuv
	KindHPLuv
)

// Space describes a registered colour space.
type Space struct {
	Name string
	Kind Kind

	// Channels lists the component names, in order.
	Channels []string

	// Hue is the index of the hue component, or -1 if the space has none.
	// Hue values are measured in degrees.
	Hue int

	// White is the white point the space is defined relative to.
	// For XYZ, xyY, LAB, LUV, LCH and HCL this is only the default; see
	// [WithIlluminant].
	White illuminant.WhitePoint

	// RGB is set for spaces of kind KindRGB.
	RGB *rgbspace.Space
}

// NumChannels returns the number of components of a colour value.
func (s *Space) NumChannels() int {
	return len(s.Channels)
}

func (s *Space) String() string {
	return s.Name
}

func (s *Space) clone() *Space {
	c := *s
	c.Channels = slices.Clone(s.Channels)
	return &c
}

// registry is the table of all colour spaces, together with the
// conversions between them.  It is never modified after construction.
type registry struct {
	spaces []*Space // sorted by name
	index  map[string]int
	edges  map[[2]int]edgeFunc
}

var theRegistry = sync.OnceValue(func() *registry {
	return newRegistry(builtinSpaces(), builtinEdges())
})

func newRegistry(spaces []*Space, edges []edge) *registry {
	spaces = slices.Clone(spaces)
	slices.SortFunc(spaces, func(a, b *Space) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	r := &registry{
		spaces: spaces,
		index:  make(map[string]int, len(spaces)),
		edges:  make(map[[2]int]edgeFunc, len(edges)),
	}
	for i, s := range spaces {
		if _, dup := r.index[s.Name]; dup {
			panic("colorconv: duplicate colour space " + s.Name)
		}
		r.index[s.Name] = i
	}
	for _, e := range edges {
		i, ok1 := r.index[e.from]
		j, ok2 := r.index[e.to]
		if !ok1 || !ok2 {
			panic("colorconv: conversion " + e.from + " -> " + e.to + " uses an unregistered space")
		}
		r.edges[[2]int{i, j}] = e.build
	}
	return r
}

func (r *registry) lookup(name string) (*Space, int, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, -1, &UnknownSpaceError{Name: name}
	}
	return r.spaces[i], i, nil
}

// LookupSpace returns the descriptor of the colour space with the given
// name.  Names are case-sensitive.  The result is a copy, changes to it
// do not affect the registry.
func LookupSpace(name string) (*Space, error) {
	s, _, err := theRegistry().lookup(name)
	if err != nil {
		return nil, err
	}
	return s.clone(), nil
}

// SpaceNames returns the names of all registered colour spaces, in
// sorted order.
func SpaceNames() []string {
	r := theRegistry()
	res := make([]string, len(r.spaces))
	for i, s := range r.spaces {
		res[i] = s.Name
	}
	return res
}

// Names of the colour spaces which are not RGB spaces.
const (
	nameXYZ    = "XYZ"
	namexyY    = "xyY"
	nameRGB    = "RGB"
	nameLab    = "LAB"
	nameLCh    = "LCH"
	nameLuv    = "LUV"
	nameHCL    = "HCL"
	nameHSL    = "HSL"
	nameHSV    = "HSV"
	nameHWB    = "HWB"
	nameCMY    = "CMY"
	nameCMYK   = "CMYK"
	nameOklab  = "Oklab"
	nameOklch  = "Oklch"
	nameJzAzBz = "JzAzBz"
	nameJzCzHz = "JzCzHz"
	nameICtCp  = "ICtCp"
	nameHSLuv  = "HSLuv"
	nameHPLuv  = "HPLuv"
)

// rgbNames maps the registered names of the RGB spaces to their
// descriptors.  The generic name "RGB" refers to sRGB.
var rgbNames = []struct {
	name  string
	space *rgbspace.Space
}{
	{nameRGB, rgbspace.SRGB},
	{"Linear sRGB", rgbspace.LinearSRGB},
	{"ACES2065-1", rgbspace.ACES2065},
	{"ACEScc", rgbspace.ACEScc},
	{"ACEScct", rgbspace.ACEScct},
	{"ACEScg", rgbspace.ACEScg},
	{"Adobe RGB (1998)", rgbspace.AdobeRGB},
	{"ITU-R BT.2020", rgbspace.BT2020},
	{"ITU-R BT.709", rgbspace.BT709},
	{"DCI-P3", rgbspace.DCIP3},
	{"Display P3", rgbspace.DisplayP3},
	{"ROMM RGB", rgbspace.ROMM},
}

func builtinSpaces() []*Space {
	d65 := illuminant.D65
	res := []*Space{
		{Name: nameXYZ, Kind: KindXYZ, Channels: []string{"X", "Y", "Z"}, Hue: -1, White: d65},
		{Name: namexyY, Kind: KindXyY, Channels: []string{"x", "y", "Y"}, Hue: -1, White: d65},
		{Name: nameLab, Kind: KindLab, Channels: []string{"L", "a", "b"}, Hue: -1, White: d65},
		{Name: nameLCh, Kind: KindLCh, Channels: []string{"L", "C", "H"}, Hue: 2, White: d65},
		{Name: nameLuv, Kind: KindLuv, Channels: []string{"L", "u", "v"}, Hue: -1, White: d65},
		{Name: nameHCL, Kind: KindHCL, Channels: []string{"H", "C", "L"}, Hue: 0, White: d65},
		{Name: nameOklab, Kind: KindOklab, Channels: []string{"L", "a", "b"}, Hue: -1, White: d65},
		{Name: nameOklch, Kind: KindOklch, Channels: []string{"L", "C", "h"}, Hue: 2, White: d65},
		{Name: nameJzAzBz, Kind: KindJzAzBz, Channels: []string{"Jz", "az", "bz"}, Hue: -1, White: d65},
		{Name: nameJzCzHz, Kind: KindJzCzHz, Channels: []string{"Jz", "Cz", "hz"}, Hue: 2, White: d65},
		{Name: nameICtCp, Kind: KindICtCp, Channels: []string{"I", "Ct", "Cp"}, Hue: -1, White: d65},
		{Name: nameHSL, Kind: KindHSL, Channels: []string{"H", "S", "L"}, Hue: 0, White: d65},
		{Name: nameHSV, Kind: KindHSV, Channels: []string{"H", "S", "V"}, Hue: 0, White: d65},
		{Name: nameHWB, Kind: KindHWB, Channels: []string{"H", "W", "B"}, Hue: 0, White: d65},
		{Name: nameCMY, Kind: KindCMY, Channels: []string{"C", "M", "Y"}, Hue: -1, White: d65},
		{Name: nameCMYK, Kind: KindCMYK, Channels: []string{"C", "M", "Y", "K"}, Hue: -1, White: d65},
		{Name: nameHSLuv, Kind: KindHSLuv, Channels: []string{"H", "S", "L"}, Hue: 0, White: d65},
		{Name: nameHPLuv, Kind: KindHPLuv, Channels: []string{"H", "P", "L"}, Hue: 0, White: d65},
	}
	for _, r := range rgbNames {
		res = append(res, &Space{
			Name:     r.name,
			Kind:     KindRGB,
			Channels: []string{"R", "G", "B"},
			Hue:      -1,
			White:    r.space.White,
			RGB:      r.space,
		})
	}
	return res
}
