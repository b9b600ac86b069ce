/*
Copyright © 2017 the Floc authors.
This file is part of Floc.

Floc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Floc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Floc.  If not, see <http://www.gnu.org/licenses/>.
*/

package floc

import (
	"fmt"

	"github.com/ctessum/unit"
)

// DimensionError is returned when an argument carries physical
// dimensions different from the ones the function requires, or is nil.
type DimensionError struct {
	Param string          // the name of the offending parameter
	Have  unit.Dimensions // the dimensions received; nil if the argument was nil
	Want  unit.Dimensions // the dimensions required
}

func (e *DimensionError) Error() string {
	switch {
	case e.Have == nil && e.Want == nil:
		return fmt.Sprintf("floc: %s is nil", e.Param)
	case e.Have == nil:
		return fmt.Sprintf("floc: %s is nil, want dimensions %s", e.Param, e.Want)
	default:
		return fmt.Sprintf("floc: %s has dimensions %s, want %s", e.Param, e.Have, e.Want)
	}
}

// UndefinedPrecipitateError is returned when a precipitate-dependent
// computation is invoked on a Chemical whose precipitate attributes
// were never defined.
type UndefinedPrecipitateError struct {
	Chemical    string // the name of the species
	Precipitate string // the name of its undefined precipitate
}

func (e *UndefinedPrecipitateError) Error() string {
	return fmt.Sprintf("floc: precipitate %s of %s has no defined attributes",
		e.Precipitate, e.Chemical)
}

// DomainError is returned when an input lies outside the physically
// valid domain of a formula.
type DomainError struct {
	Param  string  // the name of the offending parameter
	Value  float64 // the value received
	Reason string  // the constraint that was violated
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("floc: %s (%g) %s", e.Param, e.Value, e.Reason)
}

// checkDims validates that q is non-nil and carries dimensions want.
func checkDims(q *unit.Unit, name string, want unit.Dimensions) error {
	if q == nil {
		return &DimensionError{Param: name, Want: want}
	}
	if !q.Dimensions().Matches(want) {
		return &DimensionError{Param: name, Have: q.Dimensions(), Want: want}
	}
	return nil
}

// checkNonNegative validates that q carries dimensions want and a value
// that is not negative.
func checkNonNegative(q *unit.Unit, name string, want unit.Dimensions) error {
	if err := checkDims(q, name, want); err != nil {
		return err
	}
	if q.Value() < 0 {
		return &DomainError{Param: name, Value: q.Value(), Reason: "must not be negative"}
	}
	return nil
}

// checkPositive validates that q carries dimensions want and a strictly
// positive value.
func checkPositive(q *unit.Unit, name string, want unit.Dimensions) error {
	if err := checkDims(q, name, want); err != nil {
		return err
	}
	if q.Value() <= 0 {
		return &DomainError{Param: name, Value: q.Value(), Reason: "must be positive"}
	}
	return nil
}

// checkPositiveScalar validates that a dimensionless value is strictly
// positive.
func checkPositiveScalar(v float64, name string) error {
	if v <= 0 {
		return &DomainError{Param: name, Value: v, Reason: "must be positive"}
	}
	return nil
}
