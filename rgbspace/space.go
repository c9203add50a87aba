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

// Package rgbspace describes RGB working spaces and converts values
// between them.
//
// An RGB space is given by the chromaticities of its primaries, its
// reference white and its transfer function.  The 3x3 basis matrix which
// maps linear RGB values to CIE XYZ is fixed when the space is
// constructed, either derived from the primaries or taken from a
// published matrix.  Spaces are immutable after construction and can be
// shared between goroutines.
package rgbspace

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/transfer"
)

// Space is an RGB working space.
type Space struct {
	Name      string
	Primaries [3]vec.Vec2
	White     illuminant.WhitePoint
	Curve     transfer.Curve

	derived bool
	basis   Basis
}

// Basis holds the matrices which map linear RGB values of a space to CIE
// XYZ (relative to the space's own white point) and back.
type Basis struct {
	ToXYZ   mat3.Matrix
	FromXYZ mat3.Matrix
}

type config struct {
	published *mat3.Matrix
}

// Option configures the construction of a [Space].
type Option func(*config)

// WithPublishedMatrix makes [New] use the given RGB to XYZ matrix instead
// of deriving the matrix from the primaries and the white point.
func WithPublishedMatrix(toXYZ mat3.Matrix) Option {
	return func(c *config) {
		c.published = &toXYZ
	}
}

// New constructs a new RGB space.
//
// By default the basis matrix is derived from the primaries and the white
// point.  If the matrix is singular, a [*DegenerateBasisError] is
// returned.
func New(name string, primaries [3]vec.Vec2, white illuminant.WhitePoint, curve transfer.Curve, opts ...Option) (*Space, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Space{
		Name:      name,
		Primaries: primaries,
		White:     white,
		Curve:     curve,
	}

	var err error
	if cfg.published != nil {
		s.basis.ToXYZ = *cfg.published
	} else {
		s.derived = true
		s.basis.ToXYZ, err = mat3.FromPrimaries(primaries[0], primaries[1], primaries[2], white.XY)
		if err != nil {
			return nil, &DegenerateBasisError{Space: name, Err: err}
		}
	}
	s.basis.FromXYZ, err = s.basis.ToXYZ.Inv()
	if err != nil {
		return nil, &DegenerateBasisError{Space: name, Err: err}
	}
	return s, nil
}

// Basis returns the basis matrices of the space.
func (s *Space) Basis() Basis {
	return s.basis
}

// DeriveMatrices reports whether the basis matrix was derived from the
// primaries and the white point.
func (s *Space) DeriveMatrices() bool {
	return s.derived
}

// Decode applies the decoding transfer function to every component.
func (s *Space) Decode(v mat3.Vector, depth transfer.BitDepth) mat3.Vector {
	c := transfer.ForDepth(s.Curve, depth)
	return mat3.Vector{c.Decode(v[0]), c.Decode(v[1]), c.Decode(v[2])}
}

// Encode applies the encoding transfer function to every component.
func (s *Space) Encode(v mat3.Vector, depth transfer.BitDepth) mat3.Vector {
	c := transfer.ForDepth(s.Curve, depth)
	return mat3.Vector{c.Encode(v[0]), c.Encode(v[1]), c.Encode(v[2])}
}

func (s *Space) String() string {
	return s.Name
}

// DegenerateBasisError is returned when the primaries of a space do not
// give an invertible basis matrix.
type DegenerateBasisError struct {
	Space string
	Err   error
}

func (err *DegenerateBasisError) Error() string {
	return fmt.Sprintf("RGB space %q: degenerate basis: %v", err.Space, err.Err)
}

func (err *DegenerateBasisError) Unwrap() error {
	return err.Err
}

func must(s *Space, err error) *Space {
	if err != nil {
		panic(err)
	}
	return s
}
