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

// FlocDiameter returns the diameter [m] of a floc that started at
// diameter d0 [m] and has undergone numCollisions doubling collisions
// under fractal dimension fractalDim. It is strictly increasing in
// numCollisions.
func FlocDiameter(fractalDim float64, d0 *unit.Unit, numCollisions float64) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	return unit.New(d0.Value()*math.Pow(2, numCollisions/fractalDim), unit.Meter), nil
}

// CollisionsToDiameter returns the number of doubling collisions
// required to grow a floc from diameter d0 [m] to diameter dTarget
// [m]. It is the exact inverse of FlocDiameter.
func CollisionsToDiameter(fractalDim float64, d0, dTarget *unit.Unit) (float64, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return 0, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return 0, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return 0, err
	}
	return fractalDim * math.Log2(dTarget.Value()/d0.Value()), nil
}

// FlocSeparation returns the mean separation distance [m] between
// flocs of diameter dTarget [m], rescaling the initial separation
// distance with the fractal exponent.
func FlocSeparation(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, dTarget *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return nil, err
	}
	phi0, err := initialFlocVolFractionPositive(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	s := d0.Value() * math.Pow(math.Pi/(6*phi0), 1./3.) *
		math.Pow(dTarget.Value()/d0.Value(), fractalDim/3)
	return unit.New(s, unit.Meter), nil
}

// FlocVolFraction returns the volume fraction occupied by flocs of
// diameter dTarget [m], rescaling the initial volume fraction with the
// fractal exponent.
func FlocVolFraction(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, dTarget *unit.Unit) (float64, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return 0, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return 0, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return 0, err
	}
	phi0, err := InitialFlocVolFraction(alConc, clayConc, coag)
	if err != nil {
		return 0, err
	}
	return phi0 * math.Pow(dTarget.Value()/d0.Value(), 3-fractalDim), nil
}

// InitialFlocDensity returns the density [kg/m3] of newly formed
// flocs, which are made primarily of the primary colloid and
// nanoglobs.
func InitialFlocDensity(alConc, clayConc *unit.Unit, coag *Chemical) (*unit.Unit, error) {
	conc, err := FlocConc(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	phi0, err := initialFlocVolFractionPositive(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	return unit.New(conc.Value()/phi0, unit.KilogramPerMeter3), nil
}

// FlocDensity returns the density [kg/m3] of a floc of diameter
// dTarget [m]. Floc excess density decays toward neutral buoyancy as
// the floc grows and incorporates more entrained water.
func FlocDensity(alConc, clayConc *unit.Unit, fractalDim float64, d0, dTarget *unit.Unit, coag *Chemical, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	rhoWater, err := physchem.WaterDensity(temp)
	if err != nil {
		return nil, err
	}
	rho0, err := InitialFlocDensity(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	rho := (rho0.Value()-rhoWater.Value())*
		math.Pow(d0.Value()/dTarget.Value(), 3-fractalDim) + rhoWater.Value()
	return unit.New(rho, unit.KilogramPerMeter3), nil
}

// TerminalVelocity returns the terminal sedimentation velocity [m/s]
// of a floc of diameter dTarget [m], scaling the Stokes velocity of
// the initial floc with the fractal exponent.
func TerminalVelocity(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, dTarget, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	rhoWater, err := physchem.WaterDensity(temp)
	if err != nil {
		return nil, err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return nil, err
	}
	rho0, err := InitialFlocDensity(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	d := d0.Value()
	v := ((physchem.Gravity().Value() * d * d) / (18 * FlocShapeFactor * nu.Value())) *
		((rho0.Value() - rhoWater.Value()) / rhoWater.Value()) *
		math.Pow(dTarget.Value()/d, fractalDim-1)
	return unit.New(v, unit.MeterPerSecond), nil
}

// DiameterFromVelocity returns the diameter [m] of the floc whose
// terminal sedimentation velocity is velTerm [m/s]. It is the exact
// inverse of TerminalVelocity; the inversion divides by fractalDim-1,
// so a fractal dimension of exactly 1 is outside its domain.
func DiameterFromVelocity(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, velTerm, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if fractalDim == 1 {
		return nil, &DomainError{Param: "fractalDim", Value: fractalDim,
			Reason: "must not equal 1 when inverting the terminal velocity relation"}
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(velTerm, "velTerm", unit.MeterPerSecond); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	rhoWater, err := physchem.WaterDensity(temp)
	if err != nil {
		return nil, err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return nil, err
	}
	rho0, err := InitialFlocDensity(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	if rho0.Value() <= rhoWater.Value() {
		return nil, &DomainError{Param: "initial floc density", Value: rho0.Value(),
			Reason: "must exceed the water density"}
	}
	d := d0.Value()
	dt := d * math.Pow(((18*velTerm.Value()*FlocShapeFactor*nu.Value())/
		(physchem.Gravity().Value()*d*d))*
		(rhoWater.Value()/(rho0.Value()-rhoWater.Value())),
		1/(fractalDim-1))
	return unit.New(dt, unit.Meter), nil
}

// initialFlocVolFractionPositive is InitialFlocVolFraction for callers
// that divide by the result.
func initialFlocVolFractionPositive(alConc, clayConc *unit.Unit, coag *Chemical) (float64, error) {
	phi0, err := InitialFlocVolFraction(alConc, clayConc, coag)
	if err != nil {
		return 0, err
	}
	if phi0 <= 0 {
		return 0, &DomainError{Param: "initial floc volume fraction", Value: phi0,
			Reason: "must be positive; increase alConc or clayConc"}
	}
	return phi0, nil
}
