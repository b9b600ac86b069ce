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

// ClayShapeFactor returns the surface area to volume ratio for a
// disk-shaped clay platelet with the given height to diameter ratio,
// normalized by the surface area to volume ratio for a sphere of equal
// volume.
func ClayShapeFactor(aspectRatio float64) (float64, error) {
	if err := checkPositiveScalar(aspectRatio, "aspectRatio"); err != nil {
		return 0, err
	}
	return (0.5 + aspectRatio) * math.Pow(2/(3*aspectRatio), 2./3.), nil
}

// ClayAreaFraction returns the surface area of clay normalized by the
// total surface area available to the coagulant, which combines the
// clay and the reactor wall. It estimates how much coagulant actually
// goes to the clay rather than being lost to the tube wall. clayConc
// is the clay concentration [kg/m3], clayDiam the clay particle
// diameter [m], tubeDiam the flocculator tube diameter [m], and
// clayDensity the clay density [kg/m3].
func ClayAreaFraction(clayConc, clayDiam, tubeDiam, clayDensity *unit.Unit, aspectRatio float64) (float64, error) {
	if err := checkPositive(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	if err := checkPositive(clayDiam, "clayDiam", unit.Meter); err != nil {
		return 0, err
	}
	if err := checkPositive(tubeDiam, "tubeDiam", unit.Meter); err != nil {
		return 0, err
	}
	if err := checkPositive(clayDensity, "clayDensity", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	shape, err := ClayShapeFactor(aspectRatio)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + (2 * clayDiam.Value() /
		(3 * tubeDiam.Value() * shape * (clayConc.Value() / clayDensity.Value())))), nil
}

// CoagulantCoverage returns the fraction of clay surface covered with
// coagulant nanoglobs. It accounts for coagulant loss to the tube
// flocculator walls and for a Poisson distribution on the clay given
// random hits by the nanoglobs, so the coverage only gradually
// approaches full coverage as the dose increases.
func CoagulantCoverage(clayConc, alConc *unit.Unit, coag *Chemical, tubeDiam, clayDiam, clayDensity *unit.Unit, aspectRatio float64) (float64, error) {
	if err := checkNonNegative(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	if err := checkPositive(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	if err := checkPositive(clayDiam, "clayDiam", unit.Meter); err != nil {
		return 0, err
	}
	phiCoag, err := InitialFlocVolFraction(alConc, unit.New(0, unit.KilogramPerMeter3), coag)
	if err != nil {
		return 0, err
	}
	phiClay, err := InitialFlocVolFraction(unit.New(0, unit.KilogramPerMeter3), clayConc, coag)
	if err != nil {
		return 0, err
	}
	areaFrac, err := ClayAreaFraction(clayConc, clayDiam, tubeDiam, clayDensity, aspectRatio)
	if err != nil {
		return 0, err
	}
	shape, err := ClayShapeFactor(aspectRatio)
	if err != nil {
		return 0, err
	}
	return 1 - math.Exp(
		((-phiCoag*clayDiam.Value())/(phiClay*coag.diameter.Value()))*
			(1/math.Pi)*
			(areaFrac/shape)), nil
}

// OrganicMatterFraction returns the fraction of coagulant surface
// occupied by adsorbed natural organic matter, given the aluminum dose
// alConc [kg/m3] and the organic matter concentration nomConc [kg/m3].
// The fraction cannot exceed full coverage, so it is clamped at 1.
func OrganicMatterFraction(alConc, nomConc *unit.Unit, nom, coag *Chemical) (float64, error) {
	if err := checkPositive(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	if err := checkNonNegative(nomConc, "nomConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	precip, err := PrecipitateConc(alConc, coag)
	if err != nil {
		return 0, err
	}
	return math.Min(
		(nomConc.Value()/precip.Value())*
			(coag.density.Value()/nom.density.Value())*
			(coag.diameter.Value()/(4*nom.diameter.Value())),
		1), nil
}

// CollisionEfficiency holds the efficiency coefficients for the three
// collision pairings that can lead to attachment when a coagulant dose
// is applied to clay in the presence of natural organic matter. Only
// specific pairings of covered and uncovered surfaces aggregate, so
// the overall efficiency decomposes by pairing.
type CollisionEfficiency struct {
	// CoagClay is the efficiency of collisions between coagulant and
	// clay surfaces.
	CoagClay float64

	// CoagCoag is the efficiency of collisions between two
	// coagulant-coated surfaces.
	CoagCoag float64

	// CoagNOM is the efficiency of collisions between coagulant and
	// adsorbed natural organic matter.
	CoagNOM float64
}

// Total returns the overall collision efficiency, the sum of the three
// pairing coefficients.
func (ce CollisionEfficiency) Total() float64 {
	return ce.CoagNOM + ce.CoagCoag + ce.CoagClay
}

// NewCollisionEfficiency computes the collision efficiency
// coefficients for clay at concentration clayConc [kg/m3] dosed with
// alConc [kg/m3] of aluminum as coag, in the presence of nomConc
// [kg/m3] of the organic matter species nom. The shared attachment
// term, coverage times the organic-matter-free fraction, is computed
// once and reused across the three coefficients.
func NewCollisionEfficiency(tubeDiam, clayDiam, clayDensity, clayConc, alConc, nomConc *unit.Unit, nom, coag *Chemical, aspectRatio float64) (CollisionEfficiency, error) {
	gamma, err := CoagulantCoverage(clayConc, alConc, coag, tubeDiam, clayDiam, clayDensity, aspectRatio)
	if err != nil {
		return CollisionEfficiency{}, err
	}
	gammaNOM, err := OrganicMatterFraction(alConc, nomConc, nom, coag)
	if err != nil {
		return CollisionEfficiency{}, err
	}
	paclTerm := gamma * (1 - gammaNOM)
	return CollisionEfficiency{
		CoagClay: 2 * (paclTerm * (1 - gamma)),
		CoagCoag: paclTerm * paclTerm,
		CoagNOM:  2 * paclTerm * gamma * gammaNOM,
	}, nil
}

// CollisionTimeLaminar returns the single collision time [s] for
// laminar flow mediated collisions as a function of floc size, for
// flocs grown from diameter d0 [m] to diameter dTarget [m] at energy
// dissipation rate energyDis [W/kg]. The coagulant coverage in the
// denominator is evaluated at the initial floc diameter.
func CollisionTimeLaminar(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, dTarget, energyDis, temp, tubeDiam *unit.Unit, aspectRatio float64, clayDensity *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(energyDis, "energyDis", WattPerKilogram); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	phi0, err := initialFlocVolFractionPositive(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return nil, err
	}
	gamma, err := CoagulantCoverage(clayConc, alConc, coag, tubeDiam, d0, clayDensity, aspectRatio)
	if err != nil {
		return nil, err
	}
	t := ((1. / 6.) * math.Pow(6/math.Pi, 1./3.) *
		math.Pow(phi0, -2./3.) *
		math.Sqrt(nu.Value()/energyDis.Value()) *
		math.Pow(dTarget.Value()/d0.Value(), 2*fractalDim/3-2)) /
		gamma
	return unit.New(t, unit.Second), nil
}

// CollisionTimeTurbulent returns the single collision time [s] for
// turbulent flow mediated collisions as a function of floc size, for
// flocs grown from diameter d0 [m] to diameter dTarget [m] at energy
// dissipation rate energyDis [W/kg].
func CollisionTimeTurbulent(alConc, clayConc *unit.Unit, coag *Chemical, fractalDim float64, d0, dTarget, energyDis *unit.Unit) (*unit.Unit, error) {
	if err := checkPositiveScalar(fractalDim, "fractalDim"); err != nil {
		return nil, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(dTarget, "dTarget", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(energyDis, "energyDis", WattPerKilogram); err != nil {
		return nil, err
	}
	phi0, err := initialFlocVolFractionPositive(alConc, clayConc, coag)
	if err != nil {
		return nil, err
	}
	t := (1. / 6.) * math.Pow(6/math.Pi, 1./9.) *
		math.Pow(energyDis.Value(), -1./3.) *
		math.Pow(dTarget.Value(), 2./3.) *
		math.Pow(phi0, -8./9.) *
		math.Pow(dTarget.Value()/d0.Value(), (8*(fractalDim-3))/9)
	return unit.New(t, unit.Second), nil
}

// ViscousPerformance predicts flocculation performance as pC*, the
// negative log of the fraction of primary particles remaining, for
// flocculation time t [s] in the viscous regime at energy dissipation
// rate energyDis [W/kg]. d0 is the initial floc diameter [m] and
// fittingParam the empirical collision fitting constant.
func ViscousPerformance(energyDis, temp, t, d0, tubeDiam, clayDiam, clayDensity, clayConc, alConc, nomConc *unit.Unit, nom, coag *Chemical, fittingParam, aspectRatio float64) (float64, error) {
	if err := checkPositive(energyDis, "energyDis", WattPerKilogram); err != nil {
		return 0, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return 0, err
	}
	if err := checkNonNegative(t, "t", unit.Second); err != nil {
		return 0, err
	}
	if err := checkPositive(d0, "d0", unit.Meter); err != nil {
		return 0, err
	}
	if err := checkPositiveScalar(fittingParam, "fittingParam"); err != nil {
		return 0, err
	}
	nu, err := physchem.KinematicViscosity(temp)
	if err != nil {
		return 0, err
	}
	eff, err := NewCollisionEfficiency(tubeDiam, clayDiam, clayDensity, clayConc, alConc, nomConc, nom, coag, aspectRatio)
	if err != nil {
		return 0, err
	}
	// The separation distance between clay particles is evaluated at
	// the initial floc diameter.
	sep, err := ClaySeparation(clayConc, d0)
	if err != nil {
		return 0, err
	}
	r := d0.Value() / sep.Value()
	return (3. / 2.) * math.Log10(
		(2./3.)*math.Pi*fittingParam*t.Value()*
			math.Sqrt(energyDis.Value()/nu.Value())*
			eff.Total()*
			(r*r)+1), nil
}
