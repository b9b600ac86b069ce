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
	"math"

	"github.com/ctessum/unit"

	"github.com/watermodel/floc/physchem"
)

// VelocityGradientStraight returns the average velocity gradient [1/s]
// for laminar flow of flow [m3/s] through a straight tube of inner
// diameter tubeID [m].
func VelocityGradientStraight(flow, tubeID *unit.Unit) (*unit.Unit, error) {
	if err := checkNonNegative(flow, "flow", unit.Meter3PerSecond); err != nil {
		return nil, err
	}
	if err := checkPositive(tubeID, "tubeID", unit.Meter); err != nil {
		return nil, err
	}
	g := 64 * flow.Value() / (3 * math.Pi * math.Pow(tubeID.Value(), 3))
	return unit.New(g, PerSecond), nil
}

// ReynoldsRapidMix returns the Reynolds number for flow [m3/s] through
// a tube of inner diameter tubeID [m] at temperature temp [K].
func ReynoldsRapidMix(flow, tubeID, temp *unit.Unit) (float64, error) {
	if err := checkNonNegative(flow, "flow", unit.Meter3PerSecond); err != nil {
		return math.NaN(), err
	}
	if err := checkPositive(tubeID, "tubeID", unit.Meter); err != nil {
		return math.NaN(), err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return math.NaN(), err
	}
	return 4 * flow.Value() / (math.Pi * tubeID.Value() * nu.Value()), nil
}

// DeanNumber returns the Dean number, an unfortunate combination of
// the Reynolds number and the square root of the tube curvature, for
// flow through a coiled tube of inner diameter tubeID [m] wound at
// radius coilRadius [m].
func DeanNumber(flow, tubeID, coilRadius, temp *unit.Unit) (float64, error) {
	if err := checkPositive(coilRadius, "coilRadius", unit.Meter); err != nil {
		return math.NaN(), err
	}
	re, err := ReynoldsRapidMix(flow, tubeID, temp)
	if err != nil {
		return math.NaN(), err
	}
	return re * math.Pow(tubeID.Value()/(2*coilRadius.Value()), 1./2.), nil
}

// VelocityGradientCoiled returns the average velocity gradient [1/s]
// for laminar flow through a coiled tube, the straight-tube gradient
// increased by a Dean-number correction for the secondary flow.
//
// We need a reference for this equation; Karen Swetland's thesis
// likely has it.
func VelocityGradientCoiled(flow, tubeID, coilRadius, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(flow, "flow", unit.Meter3PerSecond); err != nil {
		return nil, err
	}
	g, err := VelocityGradientStraight(flow, tubeID)
	if err != nil {
		return nil, err
	}
	de, err := DeanNumber(flow, tubeID, coilRadius, temp)
	if err != nil {
		return nil, err
	}
	gc := g.Value() * math.Pow(1+0.033*math.Pow(math.Log10(de), 4), 1./2.)
	return unit.New(gc, PerSecond), nil
}

// TubeResidenceTime returns the hydraulic residence time [s] of a tube
// of inner diameter tubeID [m] and length tubeLength [m] carrying
// flow [m3/s].
func TubeResidenceTime(tubeID, tubeLength, flow *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(tubeID, "tubeID", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(tubeLength, "tubeLength", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(flow, "flow", unit.Meter3PerSecond); err != nil {
		return nil, err
	}
	t := tubeLength.Value() * math.Pi * (math.Pow(tubeID.Value(), 2) / 4) / flow.Value()
	return unit.New(t, unit.Second), nil
}

// GResidenceTime returns the collision potential Gt, the product of
// the coiled-tube velocity gradient and the residence time.
func GResidenceTime(flow, tubeID, coilRadius, tubeLength, temp *unit.Unit) (float64, error) {
	g, err := VelocityGradientCoiled(flow, tubeID, coilRadius, temp)
	if err != nil {
		return math.NaN(), err
	}
	t, err := TubeResidenceTime(tubeID, tubeLength, flow)
	if err != nil {
		return math.NaN(), err
	}
	return g.Value() * t.Value(), nil
}
