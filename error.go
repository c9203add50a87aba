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
	"strconv"

	"seehuhn.de/go/colorconv/rgbspace"
)

// UnknownSpaceError is returned when a colour space name is not registered.
type UnknownSpaceError struct {
	Name string
}

func (err *UnknownSpaceError) Error() string {
	return "unknown colour space " + strconv.Quote(err.Name)
}

// DimensionMismatchError is returned when the number of components of a
// colour value does not match the arity of its colour space.
type DimensionMismatchError struct {
	Space string
	Want  int
	Got   int
}

func (err *DimensionMismatchError) Error() string {
	return err.Space + ": expected " + strconv.Itoa(err.Want) +
		" components, got " + strconv.Itoa(err.Got)
}

// NoPathError is returned when no chain of conversions connects two
// colour spaces.  If some conversion step could not be constructed, Err
// gives the reason.
type NoPathError struct {
	From, To string
	Err      error
}

func (err *NoPathError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "no conversion from " + strconv.Quote(err.From) +
		" to " + strconv.Quote(err.To) + middle
}

func (err *NoPathError) Unwrap() error {
	return err.Err
}

// NumericDomainError is returned when a component is NaN or infinite,
// either in the input or after a conversion step.
type NumericDomainError struct {
	Space string
	Index int
	Value float64
}

func (err *NumericDomainError) Error() string {
	return err.Space + ": component " + strconv.Itoa(err.Index) +
		" is not finite (" + strconv.FormatFloat(err.Value, 'g', -1, 64) + ")"
}

// DegenerateBasisError is returned when the primaries and white point of an
// RGB space do not determine an invertible matrix.
type DegenerateBasisError = rgbspace.DegenerateBasisError
