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

// Package mat3 implements the 3x3 linear algebra used for colour space
// conversions.
//
// Matrices act on column vectors: if M is a [Matrix] and v a [Vector], then
// M.Apply(v) computes the product M·v.  Elements are stored in row-major
// order.
package mat3

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// Matrix is a 3x3 matrix, stored in row-major order.
type Matrix f64.Mat3

// Vector is a column vector with three components.
type Vector = f64.Vec3

// Identity is the 3x3 identity matrix.
var Identity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// ErrSingular is returned by [Matrix.Inv] and [FromPrimaries] when a matrix
// cannot be inverted reliably.
var ErrSingular = errors.New("singular matrix")

// maxCondition is the largest condition number for which a matrix is
// considered invertible.
const maxCondition = 1e12

// Diag returns the diagonal matrix with the given diagonal entries.
func Diag(a, b, c float64) Matrix {
	return Matrix{a, 0, 0, 0, b, 0, 0, 0, c}
}

// Columns returns the matrix which has the given vectors as its columns.
func Columns(c0, c1, c2 Vector) Matrix {
	return Matrix{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}
}

// Apply returns the product M·v.
func (M Matrix) Apply(v Vector) Vector {
	return Vector{
		M[0]*v[0] + M[1]*v[1] + M[2]*v[2],
		M[3]*v[0] + M[4]*v[1] + M[5]*v[2],
		M[6]*v[0] + M[7]*v[1] + M[8]*v[2],
	}
}

// Mul multiplies two matrices and returns the result.
// The result is equivalent to first applying M and then B,
// that is the result is the matrix product B·M.
func (M Matrix) Mul(B Matrix) Matrix {
	var C Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[3*i+j] = B[3*i]*M[j] + B[3*i+1]*M[3+j] + B[3*i+2]*M[6+j]
		}
	}
	return C
}

// Scale multiplies every element of M by s.
func (M Matrix) Scale(s float64) Matrix {
	for i := range M {
		M[i] *= s
	}
	return M
}

// Inv computes the inverse of M.
// If M is singular or too badly conditioned to be inverted reliably,
// [ErrSingular] is returned.
func (M Matrix) Inv() (Matrix, error) {
	for _, x := range M {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Matrix{}, ErrSingular
		}
	}

	data := M
	a := mat.NewDense(3, 3, data[:])
	if c := mat.Cond(a, 1); math.IsInf(c, 0) || c > maxCondition {
		return Matrix{}, ErrSingular
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Matrix{}, ErrSingular
	}

	var res Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[3*i+j] = inv.At(i, j)
		}
	}
	return res, nil
}

// MustInv is like [Matrix.Inv], but panics if M is singular.
// This is intended for the fixed coefficient matrices of the
// perceptual colour spaces.
func (M Matrix) MustInv() Matrix {
	inv, err := M.Inv()
	if err != nil {
		panic(err)
	}
	return inv
}

// Chromaticity converts a chromaticity (x, y) to the tristimulus value
// with luminance Y=1.
//
// The y coordinate must be non-zero.
func Chromaticity(xy vec.Vec2) Vector {
	return Vector{xy.X / xy.Y, 1, (1 - xy.X - xy.Y) / xy.Y}
}

// FromPrimaries returns the matrix which maps linear RGB values to CIE XYZ
// for a colour space with the given primaries and white point.
// The resulting matrix maps RGB (1, 1, 1) to the white point,
// normalized to Y=1.
//
// If the primaries are collinear, or if one of the chromaticities has y=0,
// [ErrSingular] is returned.
func FromPrimaries(r, g, b, white vec.Vec2) (Matrix, error) {
	for _, p := range []vec.Vec2{r, g, b, white} {
		if p.Y == 0 {
			return Matrix{}, ErrSingular
		}
	}

	P := Columns(Chromaticity(r), Chromaticity(g), Chromaticity(b))
	Pinv, err := P.Inv()
	if err != nil {
		return Matrix{}, err
	}
	S := Pinv.Apply(Chromaticity(white))
	// scale the columns of P, so that RGB (1, 1, 1) maps to the white point
	return Diag(S[0], S[1], S[2]).Mul(P), nil
}
