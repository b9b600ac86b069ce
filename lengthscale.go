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

package floc

import (
	"math"

	"github.com/ctessum/unit"

	"github.com/watermodel/floc/physchem"
)

// KolmogorovLength returns the Kolmogorov length scale [m] at energy
// dissipation rate energyDis [W/kg] and temperature temp [K].
func KolmogorovLength(energyDis, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(energyDis, "energyDis", WattPerKilogram); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return nil, err
	}
	eta := math.Pow(math.Pow(nu.Value(), 3)/energyDis.Value(), 1./4.)
	return unit.New(eta, unit.Meter), nil
}

// InnerViscousLength returns the inner viscous length scale [m], the
// Kolmogorov length multiplied by the fixed KolmogorovRatio.
func InnerViscousLength(energyDis, temp *unit.Unit) (*unit.Unit, error) {
	eta, err := KolmogorovLength(energyDis, temp)
	if err != nil {
		return nil, err
	}
	return unit.New(KolmogorovRatio*eta.Value(), unit.Meter), nil
}

// KolmogorovFlocDiameter returns the diameter [m] of the floc whose
// separation distance equals the Kolmogorov length scale.
func KolmogorovFlocDiameter(alConc, clayConc *unit.Unit, coag *Chemical, d0 *unit.Unit, fractalDim float64, energyDis, temp *unit.Unit) (*unit.Unit, error) {
	eta, err := KolmogorovLength(energyDis, temp)
	if err != nil {
		return nil, err
	}
	return flocDiameterAtSeparation(alConc, clayConc, coag, d0, fractalDim, eta)
}

// ViscousFlocDiameter returns the diameter [m] of the floc whose
// separation distance equals the inner viscous length scale.
func ViscousFlocDiameter(alConc, clayConc *unit.Unit, coag *Chemical, d0 *unit.Unit, fractalDim float64, energyDis, temp *unit.Unit) (*unit.Unit, error) {
	lambda, err := InnerViscousLength(energyDis, temp)
	if err != nil {
		return nil, err
	}
	return flocDiameterAtSeparation(alConc, clayConc, coag, d0, fractalDim, lambda)
}

// flocDiameterAtSeparation inverts the floc separation relation,
// returning the diameter of the floc whose separation distance equals
// length.
func flocDiameterAtSeparation(alConc, clayConc *unit.Unit, coag *Chemical, d0 *unit.Unit, fractalDim float64, length *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	phi0, err := InitialFlocVolFraction(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	d := d0.Value() * math.Pow(
		(length.Value()/d0.Value())*math.Pow((6*phi0)/math.Pi, 1./3.),
		3/fractalDim)
	return unit.New(d, unit.Meter), nil
}

// MaxFlocDiameter returns the equilibrium floc diameter [m] at the
// given maximum energy dissipation rate [W/kg].
//
// Based on Ian Tse's work with floc size as a function of energy
// dissipation rate in laminar tube flocculators. The factor of 95 um
// assumes the ratio of maximum to average energy dissipation rate for
// laminar flow is approximately 2. How to transfer this to turbulent
// flow is not clear; if floc breakup is controlled by viscous shear,
// as some authors hold, the laminar result should carry over once the
// variability of the turbulent dissipation rate is accounted for.
func MaxFlocDiameter(energyDis *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(energyDis, "energyDis", WattPerKilogram); err != nil {
		return nil, err
	}
	d := 9.5e-5 * (1 / math.Pow(energyDis.Value(), 1./3.))
	return unit.New(d, unit.Meter), nil
}

// MaxEnergyDissipation returns the maximum energy dissipation rate
// [W/kg] that flocs of the given diameter [m] can withstand. It is
// the inverse of MaxFlocDiameter. This equation is under suspicion.
func MaxEnergyDissipation(diam *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(diam, "diam", unit.Meter); err != nil {
		return nil, err
	}
	e := math.Pow(9.5e-5/diam.Value(), 3)
	return unit.New(e, WattPerKilogram), nil
}
