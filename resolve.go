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
	"errors"

	"seehuhn.de/go/colorconv/cie"
	"seehuhn.de/go/colorconv/device"
	"seehuhn.de/go/colorconv/hsluv"
	"seehuhn.de/go/colorconv/ictcp"
	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/internal/dijkstra"
	"seehuhn.de/go/colorconv/jzazbz"
	"seehuhn.de/go/colorconv/mat3"
	"seehuhn.de/go/colorconv/oklab"
	"seehuhn.de/go/colorconv/rgbspace"
	"seehuhn.de/go/colorconv/transfer"
)

// Resolve finds the conversion path between two colour spaces.  The path
// is the shortest chain of elementary conversions, measured in number of
// steps.  Resolved paths are cached; the returned Path is a private copy
// which the caller may modify.
func Resolve(from, to string, opts ...Option) (*Path, error) {
	p, err := cachedPath(from, to, opts)
	if err != nil {
		return nil, err
	}
	return p.clone(), nil
}

// cachedPath returns the shared, cached path between two colour spaces.
// The result must not be modified.
func cachedPath(from, to string, opts []Option) (*Path, error) {
	o, err := makeOptions(opts)
	if err != nil {
		return nil, err
	}

	key := pathKey{from: from, to: to, opt: o}
	if p, ok := paths.Get(key); ok {
		return p, nil
	}

	p, err := theRegistry().resolve(from, to, &o)
	if err != nil {
		return nil, err
	}
	Logger().Debug("resolved conversion path",
		"from", from,
		"to", to,
		"steps", len(p.Steps),
		"path", p)
	paths.Put(key, p)
	return p, nil
}

func (r *registry) resolve(from, to string, o *options) (*Path, error) {
	src, i, err := r.lookup(from)
	if err != nil {
		return nil, err
	}
	dst, j, err := r.lookup(to)
	if err != nil {
		return nil, err
	}

	if i == j {
		return &Path{From: src, To: dst, Steps: identitySteps(src, o)}, nil
	}

	built := make(map[[2]int][]Step)
	failed := make(map[[2]int]bool)
	var buildErr error
	cost := func(a, b int) int {
		key := [2]int{a, b}
		if steps, ok := built[key]; ok {
			return len(steps)
		}
		build, ok := r.edges[key]
		if !ok || failed[key] {
			return -1
		}
		steps, err := build(o)
		if err != nil {
			failed[key] = true
			if buildErr == nil {
				buildErr = err
			}
			return -1
		}
		built[key] = steps
		return len(steps)
	}

	_, nodes, ok := dijkstra.ShortestPath(cost, len(r.spaces), i, j)
	if !ok {
		return nil, &NoPathError{From: from, To: to, Err: buildErr}
	}

	var steps []Step
	for k := 1; k < len(nodes); k++ {
		steps = append(steps, built[[2]int{nodes[k-1], nodes[k]}]...)
	}
	return &Path{From: src, To: dst, Steps: finishSteps(steps, o)}, nil
}

// finishSteps applies the decoding and encoding options to the ends of a
// path.  Transfer functions in the middle of the path are kept.
func finishSteps(steps []Step, o *options) []Step {
	if !o.decode && len(steps) > 0 && steps[0].Kind == StepDecode {
		steps = steps[1:]
	}
	n := len(steps)
	if n > 0 && steps[n-1].Kind == StepEncode {
		switch {
		case !o.encode:
			steps = steps[:n-1]
		case o.quantize:
			steps[n-1].quantize = true
			steps[n-1].depth = o.depth
		}
	}
	return mergeMatrices(steps)
}

func identitySteps(s *Space, o *options) []Step {
	switch {
	case s.Kind == KindRGB:
		if o.decode == o.encode && !o.quantize {
			return nil
		}
		var steps []Step
		steps = append(steps, decodeStep(s.Name, s.RGB, o)...)
		steps = append(steps, encodeStep(s.Name, s.RGB, o)...)
		return finishSteps(steps, o)
	case s.Hue >= 0:
		return []Step{hueStep(s.Hue)}
	}
	return nil
}

var errNotD65 = errors.New("HSLuv and HPLuv need a D65 reference white")

// edgeFunc constructs the steps of an elementary conversion for the given
// options.
type edgeFunc func(o *options) ([]Step, error)

type edge struct {
	from, to string
	build    edgeFunc
}

func decodeStep(name string, sp *rgbspace.Space, o *options) []Step {
	if sp.Curve == transfer.Identity {
		return nil
	}
	return []Step{{
		Kind:  StepDecode,
		Label: "decode " + name,
		Curve: transfer.ForDepth(sp.Curve, o.depth),
	}}
}

func encodeStep(name string, sp *rgbspace.Space, o *options) []Step {
	if sp.Curve == transfer.Identity {
		return nil
	}
	return []Step{{
		Kind:  StepEncode,
		Label: "encode " + name,
		Curve: transfer.ForDepth(sp.Curve, o.depth),
	}}
}

func matrixStep(label string, M mat3.Matrix) []Step {
	if M == mat3.Identity {
		return nil
	}
	return []Step{{Kind: StepMatrix, Label: label, Matrix: M}}
}

// adaptStep maps XYZ values relative to from to XYZ values relative to to.
func adaptStep(from, to illuminant.WhitePoint, o *options) ([]Step, error) {
	M, err := o.adaptation.Matrix(from, to)
	if err != nil {
		return nil, err
	}
	return matrixStep("adapt "+from.Name+" to "+to.Name, M), nil
}

func concat(parts ...[]Step) []Step {
	var res []Step
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}

func builtinEdges() []edge {
	var res []edge
	add := func(from, to string, build edgeFunc) {
		res = append(res, edge{from: from, to: to, build: build})
	}
	static := func(from, to string, steps ...Step) {
		add(from, to, func(*options) ([]Step, error) {
			return steps, nil
		})
	}

	// RGB spaces are connected to XYZ and directly to each other.
	for _, src := range rgbNames {
		add(src.name, nameXYZ, func(o *options) ([]Step, error) {
			M, err := src.space.ToXYZ(o.white, o.adaptation)
			if err != nil {
				return nil, err
			}
			return concat(
				decodeStep(src.name, src.space, o),
				matrixStep(src.name+" to XYZ", M),
			), nil
		})
		add(nameXYZ, src.name, func(o *options) ([]Step, error) {
			M, err := src.space.FromXYZ(o.white, o.adaptation)
			if err != nil {
				return nil, err
			}
			return concat(
				matrixStep("XYZ to "+src.name, M),
				encodeStep(src.name, src.space, o),
			), nil
		})

		for _, dst := range rgbNames {
			if dst.name == src.name {
				continue
			}
			add(src.name, dst.name, func(o *options) ([]Step, error) {
				c, err := rgbspace.NewConverter(src.space, dst.space, o.adaptation)
				if err != nil {
					return nil, err
				}
				return concat(
					decodeStep(src.name, src.space, o),
					matrixStep(src.name+" to "+dst.name, c.Matrix()),
					encodeStep(dst.name, dst.space, o),
				), nil
			})
		}
	}

	// CIE spaces use the reference white from the options.
	add(nameXYZ, namexyY, func(o *options) ([]Step, error) {
		white := o.white
		return []Step{kernelStep("XYZ to xyY", func(v mat3.Vector) mat3.Vector {
			return cie.XYZToxyY(v, white)
		})}, nil
	})
	static(namexyY, nameXYZ, kernelStep("xyY to XYZ", cie.XyYToXYZ))
	add(nameXYZ, nameLab, func(o *options) ([]Step, error) {
		white := o.white
		return []Step{kernelStep("XYZ to LAB ("+white.Name+")", func(v mat3.Vector) mat3.Vector {
			return cie.XYZToLab(v, white)
		})}, nil
	})
	add(nameLab, nameXYZ, func(o *options) ([]Step, error) {
		white := o.white
		return []Step{kernelStep("LAB to XYZ ("+white.Name+")", func(v mat3.Vector) mat3.Vector {
			return cie.LabToXYZ(v, white)
		})}, nil
	})
	add(nameXYZ, nameLuv, func(o *options) ([]Step, error) {
		white := o.white
		return []Step{kernelStep("XYZ to LUV ("+white.Name+")", func(v mat3.Vector) mat3.Vector {
			return cie.XYZToLuv(v, white)
		})}, nil
	})
	add(nameLuv, nameXYZ, func(o *options) ([]Step, error) {
		white := o.white
		return []Step{kernelStep("LUV to XYZ ("+white.Name+")", func(v mat3.Vector) mat3.Vector {
			return cie.LuvToXYZ(v, white)
		})}, nil
	})
	static(nameLab, nameLCh, polarStep("LAB to LCH", false))
	static(nameLCh, nameLab, rectStep("LCH to LAB", false))
	static(nameLuv, nameHCL, polarStep("LUV to HCL", true))
	static(nameHCL, nameLuv, rectStep("HCL to LUV", true))

	// Oklab and JzAzBz are defined relative to D65.
	d65 := illuminant.D65
	add(nameXYZ, nameOklab, func(o *options) ([]Step, error) {
		A, err := adaptStep(o.white, d65, o)
		if err != nil {
			return nil, err
		}
		return concat(A, []Step{kernelStep("XYZ to Oklab", oklab.FromXYZ)}), nil
	})
	add(nameOklab, nameXYZ, func(o *options) ([]Step, error) {
		A, err := adaptStep(d65, o.white, o)
		if err != nil {
			return nil, err
		}
		return concat([]Step{kernelStep("Oklab to XYZ", oklab.ToXYZ)}, A), nil
	})
	static(nameOklab, nameOklch, polarStep("Oklab to Oklch", false))
	static(nameOklch, nameOklab, rectStep("Oklch to Oklab", false))

	add(nameXYZ, nameJzAzBz, func(o *options) ([]Step, error) {
		A, err := adaptStep(o.white, d65, o)
		if err != nil {
			return nil, err
		}
		return concat(A, []Step{kernelStep("XYZ to JzAzBz", jzazbz.FromXYZ)}), nil
	})
	add(nameJzAzBz, nameXYZ, func(o *options) ([]Step, error) {
		A, err := adaptStep(d65, o.white, o)
		if err != nil {
			return nil, err
		}
		return concat([]Step{kernelStep("JzAzBz to XYZ", jzazbz.ToXYZ)}, A), nil
	})
	static(nameJzAzBz, nameJzCzHz, polarStep("JzAzBz to JzCzHz", false))
	static(nameJzCzHz, nameJzAzBz, rectStep("JzCzHz to JzAzBz", false))

	// ICtCp is reached through linear BT.2020.
	bt2020 := rgbspace.BT2020
	const nameBT2020 = "ITU-R BT.2020"
	add(nameXYZ, nameICtCp, func(o *options) ([]Step, error) {
		M, err := bt2020.FromXYZ(o.white, o.adaptation)
		if err != nil {
			return nil, err
		}
		return concat(
			matrixStep("XYZ to linear "+nameBT2020, M),
			[]Step{kernelStep("linear BT.2020 to ICtCp", ictcp.FromLinearBT2020)},
		), nil
	})
	add(nameICtCp, nameXYZ, func(o *options) ([]Step, error) {
		M, err := bt2020.ToXYZ(o.white, o.adaptation)
		if err != nil {
			return nil, err
		}
		return concat(
			[]Step{kernelStep("ICtCp to linear BT.2020", ictcp.ToLinearBT2020)},
			matrixStep("linear "+nameBT2020+" to XYZ", M),
		), nil
	})
	add(nameBT2020, nameICtCp, func(o *options) ([]Step, error) {
		return concat(
			decodeStep(nameBT2020, bt2020, o),
			[]Step{kernelStep("linear BT.2020 to ICtCp", ictcp.FromLinearBT2020)},
		), nil
	})
	add(nameICtCp, nameBT2020, func(o *options) ([]Step, error) {
		return concat(
			[]Step{kernelStep("ICtCp to linear BT.2020", ictcp.ToLinearBT2020)},
			encodeStep(nameBT2020, bt2020, o),
		), nil
	})

	// HSLuv and HPLuv are defined on top of the D65 HCL space.  The
	// direct edges are only usable if HCL is relative to D65.
	for _, lu := range []struct {
		name     string
		from, to func(mat3.Vector) mat3.Vector
	}{
		{nameHSLuv, hsluv.FromHCL, hsluv.ToHCL},
		{nameHPLuv, hsluv.PastelFromHCL, hsluv.PastelToHCL},
	} {
		fromHCL := kernelStep("HCL to "+lu.name, lu.from)
		toHCL := kernelStep(lu.name+" to HCL", lu.to)
		add(nameHCL, lu.name, func(o *options) ([]Step, error) {
			if o.white.XY != d65.XY {
				return nil, errNotD65
			}
			return []Step{fromHCL}, nil
		})
		add(lu.name, nameHCL, func(o *options) ([]Step, error) {
			if o.white.XY != d65.XY {
				return nil, errNotD65
			}
			return []Step{toHCL}, nil
		})
		add(nameXYZ, lu.name, func(o *options) ([]Step, error) {
			A, err := adaptStep(o.white, d65, o)
			if err != nil {
				return nil, err
			}
			return concat(A, []Step{
				kernelStep("XYZ to LUV (D65)", func(v mat3.Vector) mat3.Vector {
					return cie.XYZToLuv(v, d65)
				}),
				polarStep("LUV to HCL", true),
				fromHCL,
			}), nil
		})
		add(lu.name, nameXYZ, func(o *options) ([]Step, error) {
			A, err := adaptStep(d65, o.white, o)
			if err != nil {
				return nil, err
			}
			return concat([]Step{
				toHCL,
				rectStep("HCL to LUV", true),
				kernelStep("LUV to XYZ (D65)", func(v mat3.Vector) mat3.Vector {
					return cie.LuvToXYZ(v, d65)
				}),
			}, A), nil
		})
	}

	// Device spaces operate on encoded sRGB values.
	static(nameRGB, nameHSL, cylindricalStep("RGB to HSL", device.RGBToHSL))
	static(nameHSL, nameRGB, cylindricalStep("HSL to RGB", device.HSLToRGB))
	static(nameRGB, nameHSV, cylindricalStep("RGB to HSV", device.RGBToHSV))
	static(nameHSV, nameRGB, cylindricalStep("HSV to RGB", device.HSVToRGB))
	static(nameRGB, nameHWB, cylindricalStep("RGB to HWB", device.RGBToHWB))
	static(nameHWB, nameRGB, cylindricalStep("HWB to RGB", device.HWBToRGB))
	static(nameRGB, nameCMY, cylindricalStep("RGB to CMY", device.RGBToCMY))
	static(nameCMY, nameRGB, cylindricalStep("CMY to RGB", device.CMYToRGB))
	static(nameCMY, nameCMYK, Step{
		Kind:  StepCylindrical,
		Label: "CMY to CMYK",
		fn: func(v *[4]float64) {
			*v = device.CMYToCMYK(mat3.Vector{v[0], v[1], v[2]})
		},
	})
	static(nameCMYK, nameCMY, Step{
		Kind:  StepCylindrical,
		Label: "CMYK to CMY",
		fn: func(v *[4]float64) {
			w := device.CMYKToCMY(device.CMYK(*v))
			*v = [4]float64{w[0], w[1], w[2], 0}
		},
	})

	return res
}
