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
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/polar"
	"seehuhn.de/go/colorconv/transfer"
)

// StepKind classifies the elementary steps of a conversion path.
type StepKind int

// These are the kinds of steps which make up a conversion path.
const (
	StepDecode      StepKind = iota // apply the decoding transfer function
	StepEncode                      // apply the encoding transfer function
	StepMatrix                      // multiply by a 3x3 matrix
	StepPolar                       // rectangular to chroma/hue
	StepRect                        // chroma/hue to rectangular
	StepKernel                      // non-linear perceptual transform
	StepCylindrical                 // HSL, HSV, HWB, CMY and CMYK
)

func (k StepKind) String() string {
	switch k {
	case StepDecode:
		return "decode"
	case StepEncode:
		return "encode"
	case StepMatrix:
		return "matrix"
	case StepPolar:
		return "polar"
	case StepRect:
		return "rect"
	case StepKernel:
		return "kernel"
	case StepCylindrical:
		return "cylindrical"
	default:
		return "StepKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Step is an elementary conversion.  Steps operate on up to four
// components; all steps except for the CMY/CMYK conversions only use the
// first three.
type Step struct {
	Kind  StepKind
	Label string

	// Matrix is the matrix used by StepMatrix steps.
	Matrix mat3.Matrix

	// Curve is the transfer function used by StepDecode and StepEncode
	// steps.
	Curve transfer.Curve

	quantize bool
	depth    transfer.BitDepth
	fn       func(v *[4]float64)
}

func (s *Step) apply(v *[4]float64) {
	switch s.Kind {
	case StepDecode:
		for i := range 3 {
			v[i] = s.Curve.Decode(v[i])
		}
	case StepEncode:
		for i := range 3 {
			x := s.Curve.Encode(v[i])
			if s.quantize {
				x = transfer.Dequantize(transfer.Quantize(x, s.depth), s.depth)
			}
			v[i] = x
		}
	case StepMatrix:
		w := s.Matrix.Apply(mat3.Vector{v[0], v[1], v[2]})
		v[0], v[1], v[2] = w[0], w[1], w[2]
	default:
		s.fn(v)
	}
}

// Path is a resolved conversion between two colour spaces.
// A Path is immutable and can be used concurrently.
type Path struct {
	From, To *Space
	Steps    []Step
}

// Apply converts a colour value.  The number of input values must match
// the arity of the source space.  Results outside the gamut of the
// destination space are returned unclamped.
func (p *Path) Apply(values []float64) ([]float64, error) {
	if n := p.From.NumChannels(); len(values) != n {
		return nil, &DimensionMismatchError{Space: p.From.Name, Want: n, Got: len(values)}
	}

	var v [4]float64
	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &NumericDomainError{Space: p.From.Name, Index: i, Value: x}
		}
		v[i] = x
	}

	for i := range p.Steps {
		p.Steps[i].apply(&v)
	}

	res := make([]float64, p.To.NumChannels())
	for i := range res {
		x := v[i]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &NumericDomainError{Space: p.To.Name, Index: i, Value: x}
		}
		res[i] = x
	}
	return res, nil
}

// String returns a one-line description of the path.
func (p *Path) String() string {
	b := &strings.Builder{}
	b.WriteString(p.From.Name)
	b.WriteString(" -> ")
	b.WriteString(p.To.Name)
	b.WriteString(":")
	if len(p.Steps) == 0 {
		b.WriteString(" identity")
	}
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(s.Label)
	}
	return b.String()
}

// clone returns a deep copy of p.  Steps share their curves and kernel
// functions, which are immutable.
func (p *Path) clone() *Path {
	return &Path{
		From:  p.From.clone(),
		To:    p.To.clone(),
		Steps: slices.Clone(p.Steps),
	}
}

// Kinds returns the kinds of the steps along the path.
func (p *Path) Kinds() []StepKind {
	res := make([]StepKind, len(p.Steps))
	for i, s := range p.Steps {
		res[i] = s.Kind
	}
	return res
}

// mergeMatrices replaces runs of consecutive matrix steps by their
// product.
func mergeMatrices(steps []Step) []Step {
	res := steps[:0:0]
	for _, s := range steps {
		if n := len(res); n > 0 && s.Kind == StepMatrix && res[n-1].Kind == StepMatrix {
			prev := &res[n-1]
			prev.Matrix = prev.Matrix.Mul(s.Matrix)
			prev.Label += "; " + s.Label
			continue
		}
		res = append(res, s)
	}
	return res
}

func kernelStep(label string, f func(mat3.Vector) mat3.Vector) Step {
	return Step{
		Kind:  StepKernel,
		Label: label,
		fn: func(v *[4]float64) {
			w := f(mat3.Vector{v[0], v[1], v[2]})
			v[0], v[1], v[2] = w[0], w[1], w[2]
		},
	}
}

func cylindricalStep(label string, f func(mat3.Vector) mat3.Vector) Step {
	s := kernelStep(label, f)
	s.Kind = StepCylindrical
	return s
}

// polarStep converts (L, a, b) to (L, C, h).  If hueFirst is set, the
// result is stored as (h, C, L) instead.
func polarStep(label string, hueFirst bool) Step {
	return Step{
		Kind:  StepPolar,
		Label: label,
		fn: func(v *[4]float64) {
			c, h := polar.FromRect(v[1], v[2])
			if hueFirst {
				v[0], v[1], v[2] = h, c, v[0]
			} else {
				v[1], v[2] = c, h
			}
		},
	}
}

// rectStep is the inverse of polarStep.
func rectStep(label string, hueFirst bool) Step {
	return Step{
		Kind:  StepRect,
		Label: label,
		fn: func(v *[4]float64) {
			if hueFirst {
				a, b := polar.ToRect(v[1], v[0])
				v[0], v[1], v[2] = v[2], a, b
			} else {
				v[1], v[2] = polar.ToRect(v[1], v[2])
			}
		},
	}
}

// hueStep maps the hue component into the range [0, 360).
func hueStep(idx int) Step {
	return Step{
		Kind:  StepCylindrical,
		Label: "normalize hue",
		fn: func(v *[4]float64) {
			v[idx] = polar.NormalizeHue(v[idx])
		},
	}
}
