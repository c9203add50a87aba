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
	"sync"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/transfer"
)

// Options controls the transfer functions applied by [Converter.Convert].
// The zero value decodes the source, encodes the destination and uses
// the 12-bit variants of the transfer functions.
type Options struct {
	// SkipDecode indicates that the input values are already linear.
	SkipDecode bool

	// SkipEncode indicates that the output values should be left linear.
	SkipEncode bool

	// Depth selects the bit depth variant of the transfer functions.
	// The zero value means 12 bits.
	Depth transfer.BitDepth

	// Quantize rounds the encoded output values to the code values
	// of Depth.  This has no effect when SkipEncode is set.
	Quantize bool
}

func (o Options) depth() transfer.BitDepth {
	if o.Depth == 0 {
		return transfer.Depth12
	}
	return o.Depth
}

// Converter converts values from one RGB space to another.
type Converter struct {
	Src, Dst *Space
	m        mat3.Matrix
}

// NewConverter returns a converter from src to dst.  If the two spaces
// have different white points, the given chromatic adaptation transform is
// used to map between them.
func NewConverter(src, dst *Space, cat illuminant.Adaptation) (*Converter, error) {
	M, err := combined(src, dst, cat)
	if err != nil {
		return nil, err
	}
	return &Converter{Src: src, Dst: dst, m: M}, nil
}

// Matrix returns the matrix which maps linear values of the source space
// to linear values of the destination space.
func (c *Converter) Matrix() mat3.Matrix {
	return c.m
}

// Convert converts a single value.
// Results outside the destination gamut are returned unclamped.
func (c *Converter) Convert(v mat3.Vector, opt Options) mat3.Vector {
	depth := opt.depth()
	if !opt.SkipDecode {
		v = c.Src.Decode(v, depth)
	}
	v = c.m.Apply(v)
	if !opt.SkipEncode {
		v = c.Dst.Encode(v, depth)
		if opt.Quantize {
			for i, x := range v {
				v[i] = transfer.Dequantize(transfer.Quantize(x, depth), depth)
			}
		}
	}
	return v
}

// ToXYZ returns the matrix which maps linear values of s to XYZ values
// relative to the given white point.
func (s *Space) ToXYZ(white illuminant.WhitePoint, cat illuminant.Adaptation) (mat3.Matrix, error) {
	key := memoKey{kind: memoToXYZ, src: s, white: white, cat: cat}
	return memoized(key, func() (mat3.Matrix, error) {
		A, err := cat.Matrix(s.White, white)
		if err != nil {
			return mat3.Matrix{}, err
		}
		return s.basis.ToXYZ.Mul(A), nil
	})
}

// FromXYZ returns the matrix which maps XYZ values relative to the given
// white point to linear values of s.
func (s *Space) FromXYZ(white illuminant.WhitePoint, cat illuminant.Adaptation) (mat3.Matrix, error) {
	key := memoKey{kind: memoFromXYZ, src: s, white: white, cat: cat}
	return memoized(key, func() (mat3.Matrix, error) {
		A, err := cat.Matrix(white, s.White)
		if err != nil {
			return mat3.Matrix{}, err
		}
		return A.Mul(s.basis.FromXYZ), nil
	})
}

func combined(src, dst *Space, cat illuminant.Adaptation) (mat3.Matrix, error) {
	key := memoKey{kind: memoRGB, src: src, dst: dst, cat: cat}
	return memoized(key, func() (mat3.Matrix, error) {
		if src == dst {
			return mat3.Identity, nil
		}
		A, err := cat.Matrix(src.White, dst.White)
		if err != nil {
			return mat3.Matrix{}, err
		}
		return src.basis.ToXYZ.Mul(A).Mul(dst.basis.FromXYZ), nil
	})
}

// memo caches derived matrices.  Concurrent first fills compute the same
// value, so a lost Store is harmless.  Only matrices between predefined
// spaces, white points and adaptations are stored, which keeps the memo
// bounded.
var memo sync.Map

type memoKey struct {
	kind     memoKind
	src, dst *Space
	white    illuminant.WhitePoint
	cat      illuminant.Adaptation
}

type memoKind uint8

const (
	memoRGB memoKind = iota
	memoToXYZ
	memoFromXYZ
)

func memoized(key memoKey, compute func() (mat3.Matrix, error)) (mat3.Matrix, error) {
	if M, ok := memo.Load(key); ok {
		return M.(mat3.Matrix), nil
	}
	M, err := compute()
	if err != nil {
		return mat3.Matrix{}, err
	}
	if key.predefined() {
		memo.Store(key, M)
	}
	return M, nil
}

func (k memoKey) predefined() bool {
	if !slices.Contains(All, k.src) || !slices.Contains(illuminant.Adaptations, k.cat) {
		return false
	}
	if k.kind == memoRGB {
		return slices.Contains(All, k.dst)
	}
	return slices.Contains(illuminant.All, k.white)
}
