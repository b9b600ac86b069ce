/*
Copyright © 2018 the Floc authors.
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

// Package pipe provides the dimensions of commercially available
// pipe. Nominal pipe sizes are names, not measurements; this package
// maps them to the outer diameters pipe is actually sold with.
package pipe

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Inch is the length of one inch [m].
const Inch = 0.0254

// OD returns the outer diameter [m] of the commercially available
// pipe whose nominal diameter is nearest to nominal [m].
func OD(nominal *unit.Unit) (*unit.Unit, error) {
	if nominal == nil {
		return nil, fmt.Errorf("pipe: nominal diameter is nil")
	}
	if err := nominal.Check(unit.Meter); err != nil {
		return nil, fmt.Errorf("pipe: nominal diameter: %v", err)
	}
	nd := nominal.Value() / Inch
	if nd <= 0 {
		return nil, fmt.Errorf("pipe: nominal diameter (%g m) must be positive", nominal.Value())
	}
	best := 0
	for i := range ndInch {
		if math.Abs(ndInch[i]-nd) < math.Abs(ndInch[best]-nd) {
			best = i
		}
	}
	return unit.New(odInch[best]*Inch, unit.Meter), nil
}
