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
	"fmt"

	"seehuhn.de/go/colorconv/illuminant"
	"seehuhn.de/go/colorconv/transfer"
)

// An Option modifies how a conversion is performed.
type Option func(*options)

// options must stay comparable, since it is part of the path cache key.
type options struct {
	decode     bool
	encode     bool
	depth      transfer.BitDepth
	white      illuminant.WhitePoint
	adaptation illuminant.Adaptation
	quantize   bool
}

func defaultOptions() options {
	return options{
		decode:     true,
		encode:     true,
		depth:      transfer.Depth12,
		white:      illuminant.D65,
		adaptation: illuminant.CAT02,
	}
}

func makeOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.depth.Valid() {
		return o, fmt.Errorf("unsupported bit depth %d", int(o.depth))
	}
	if !o.white.Valid() {
		return o, fmt.Errorf("invalid white point %s", o.white)
	}
	return o, nil
}

// WithoutDecoding indicates that RGB input values are already linear,
// so that the transfer function of the source space is not applied.
// Transfer functions of intermediate spaces are still applied.
func WithoutDecoding() Option {
	return func(o *options) {
		o.decode = false
	}
}

// WithoutEncoding leaves RGB output values linear, instead of applying
// the transfer function of the destination space.
func WithoutEncoding() Option {
	return func(o *options) {
		o.encode = false
	}
}

// WithBitDepth selects the bit depth variant of transfer functions which
// depend on it, and the code values used by [WithQuantization].
// The default is 12 bits.
func WithBitDepth(d transfer.BitDepth) Option {
	return func(o *options) {
		o.depth = d
	}
}

// WithIlluminant sets the reference white of the XYZ, xyY, LAB, LUV, LCH
// and HCL spaces.  The default is D65.
func WithIlluminant(w illuminant.WhitePoint) Option {
	return func(o *options) {
		o.white = w
	}
}

// WithAdaptation sets the chromatic adaptation transform used between
// different white points.  The default is [illuminant.CAT02].
func WithAdaptation(a illuminant.Adaptation) Option {
	return func(o *options) {
		o.adaptation = a
	}
}

// WithQuantization rounds encoded RGB output to the code values of the
// selected bit depth.  Values outside [0, 1] are clipped to the code range.
func WithQuantization() Option {
	return func(o *options) {
		o.quantize = true
	}
}
