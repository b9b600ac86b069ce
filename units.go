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

import "github.com/ctessum/unit"

// moleDim is the amount-of-substance dimension. The unit package
// reserves the SI symbol "mol", so it is registered as "mole". It is
// created during package variable initialization so the dimension
// tables below and the chemical registry can be built from it.
var moleDim = unit.NewDimension("mole")

// Dimensions of quantities used by the model that the unit package
// does not predefine. Callers can use these to tag input magnitudes
// and to check the dimensions of results.
var (
	// Mole is an amount of substance.
	Mole = unit.Dimensions{moleDim: 1}

	// MolePerMeter3 is a molar concentration.
	MolePerMeter3 = unit.Dimensions{moleDim: 1, unit.LengthDim: -3}

	// KilogramPerMole is a molar mass.
	KilogramPerMole = unit.Dimensions{unit.MassDim: 1, moleDim: -1}

	// PerMeter3 is a number concentration.
	PerMeter3 = unit.Dimensions{unit.LengthDim: -3}

	// PerSecond is a rate, such as a velocity gradient.
	PerSecond = unit.Dimensions{unit.TimeDim: -1}

	// Meter2PerSecond is a kinematic viscosity.
	Meter2PerSecond = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}

	// WattPerKilogram is a specific power, such as a turbulent energy
	// dissipation rate.
	WattPerKilogram = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -3}
)
