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
	"math"

	"github.com/ctessum/unit"

	"github.com/watermodel/floc/physchem"
)

// AluminumNanoclusterDensity returns the density of aluminum in the
// nanoclusters formed by coag [kg/m3]. This is useful for determining
// the volume of nanoclusters given a concentration of aluminum.
func AluminumNanoclusterDensity(coag *Chemical) (*unit.Unit, error) {
	p, err := aluminumPrecipitate(coag)
	if err != nil {
		return nil, err
	}
	d := p.Density.Value() * AluminumMolarMass * p.AluminumMPM / p.MolecWeight.Value()
	return unit.New(d, unit.KilogramPerMeter3), nil
}

// aluminumPrecipitate returns the precipitate of coag, which must
// carry a molar mass and aluminum content.
func aluminumPrecipitate(coag *Chemical) (*Precipitate, error) {
	p, err := coag.Precipitate()
	if err != nil {
		return nil, err
	}
	if p.MolecWeight == nil || p.AluminumMPM == 0 {
		return nil, fmt.Errorf("floc: %s does not precipitate aluminum", coag.Name())
	}
	return p, nil
}

// CoagulantSolutionDensity returns the density of a PACl stock
// solution [kg/m3] given the dissolved aluminum concentration alConc
// [kg/m3] and temperature temp [K].
//
// From Stock Tank Mixing report Fall 2013:
// https://confluence.cornell.edu/download/attachments/137953883/20131213_Research_Report.pdf
func CoagulantSolutionDensity(alConc, temp *unit.Unit) (*unit.Unit, error) {
	if err := checkNonNegative(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if err := checkDims(temp, "temp", unit.Kelvin); err != nil {
		return nil, err
	}
	rho, err := physchem.WaterDensity(temp)
	if err != nil {
		return nil, err
	}
	d := 0.492*alConc.Value()*PACl.molecWeight.Value()/
		(PACl.aluminumMPM*AluminumMolarMass) + rho.Value()
	return unit.New(d, unit.KilogramPerMeter3), nil
}

// PrecipitateConc returns the concentration of coagulant precipitate
// [kg/m3] given the aluminum dose alConc [kg/m3].
//
// Note that PrecipitateConc returns a value that varies from the
// equivalent legacy MathCAD function beginning at the third decimal
// place. Most functions in this package ultimately call
// PrecipitateConc at some point and will not return the same value as
// their MathCAD equivalents. This is known.
func PrecipitateConc(alConc *unit.Unit, coag *Chemical) (*unit.Unit, error) {
	if err := checkNonNegative(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	p, err := aluminumPrecipitate(coag)
	if err != nil {
		return nil, err
	}
	c := (alConc.Value() / AluminumMolarMass) * (p.MolecWeight.Value() / p.AluminumMPM)
	return unit.New(c, unit.KilogramPerMeter3), nil
}

// FlocConc returns the total floc solids concentration [kg/m3] given
// the aluminum dose alConc [kg/m3], the clay concentration clayConc
// [kg/m3], and the coagulant species.
func FlocConc(alConc, clayConc *unit.Unit, coag *Chemical) (*unit.Unit, error) {
	if err := checkNonNegative(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	precip, err := PrecipitateConc(alConc, coag)
	if err != nil {
		return nil, err
	}
	return unit.New(precip.Value()+clayConc.Value(), unit.KilogramPerMeter3), nil
}

// AluminumMolarConc returns the molar concentration of aluminum
// [mol/m3] given the aluminum mass concentration alConc [kg/m3].
func AluminumMolarConc(alConc *unit.Unit) (*unit.Unit, error) {
	if err := checkNonNegative(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	return unit.New(alConc.Value()/AluminumMolarMass, MolePerMeter3), nil
}

// AluminumSeparation returns the mean separation distance [m] between
// aluminum molecules given the aluminum concentration alConc [kg/m3],
// assuming a uniform random distribution.
func AluminumSeparation(alConc *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	molar := alConc.Value() / AluminumMolarMass
	return unit.New(math.Pow(1/(Avogadro*molar), 1./3.), unit.Meter), nil
}

// ClayNumberConc returns the number concentration of clay particles
// [1/m3] given the clay mass concentration clayConc [kg/m3] and the
// clay particle diameter clayDiam [m].
func ClayNumberConc(clayConc, clayDiam *unit.Unit) (*unit.Unit, error) {
	if err := checkNonNegative(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if err := checkPositive(clayDiam, "clayDiam", unit.Meter); err != nil {
		return nil, err
	}
	d := clayDiam.Value()
	n := clayConc.Value() / ((ClayDensity * math.Pi * math.Pow(d, 3)) / 6)
	return unit.New(n, PerMeter3), nil
}

// ClaySeparation returns the mean separation distance [m] between clay
// particles given the clay mass concentration clayConc [kg/m3] and the
// clay particle diameter clayDiam [m], assuming a uniform random
// distribution.
func ClaySeparation(clayConc, clayDiam *unit.Unit) (*unit.Unit, error) {
	if err := checkPositive(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if err := checkPositive(clayDiam, "clayDiam", unit.Meter); err != nil {
		return nil, err
	}
	d := clayDiam.Value()
	s := math.Pow((ClayDensity/clayConc.Value())*((math.Pi*math.Pow(d, 3))/6), 1./3.)
	return unit.New(s, unit.Meter), nil
}

// NanoclusterNumberConc returns the number concentration of coagulant
// nanoclusters [1/m3] given the aluminum dose alConc [kg/m3].
func NanoclusterNumberConc(alConc *unit.Unit, coag *Chemical) (*unit.Unit, error) {
	if err := checkNonNegative(alConc, "alConc", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	dens, err := AluminumNanoclusterDensity(coag)
	if err != nil {
		return nil, err
	}
	n := alConc.Value() / (dens.Value() * math.Pi * math.Pow(coag.diameter.Value(), 3))
	return unit.New(n, PerMeter3), nil
}

// InitialFlocVolFraction returns the volume fraction occupied by
// newly formed flocs, the sum of the precipitate and clay volume
// fractions, given the aluminum dose alConc [kg/m3] and the clay
// concentration clayConc [kg/m3]. It is the seed for the fractal
// growth relations.
func InitialFlocVolFraction(alConc, clayConc *unit.Unit, coag *Chemical) (float64, error) {
	if err := checkNonNegative(clayConc, "clayConc", unit.KilogramPerMeter3); err != nil {
		return 0, err
	}
	precip, err := PrecipitateConc(alConc, coag)
	if err != nil {
		return 0, err
	}
	p, err := coag.Precipitate()
	if err != nil {
		return 0, err
	}
	return precip.Value()/p.Density.Value() + clayConc.Value()/ClayDensity, nil
}

// P returns the negative base-10 logarithm of the ratio of conc to the
// reference concentration ref, the p notation of water chemistry. conc
// and ref must be positive and carry the same dimensions.
func P(conc, ref *unit.Unit) (float64, error) {
	if ref == nil {
		return 0, &DimensionError{Param: "ref"}
	}
	if err := checkPositive(conc, "conc", ref.Dimensions()); err != nil {
		return 0, err
	}
	if ref.Value() <= 0 {
		return 0, &DomainError{Param: "ref", Value: ref.Value(), Reason: "must be positive"}
	}
	// The ratio is taken as ref over conc so that whole logs of
	// removal come out exact.
	return math.Log10(ref.Value() / conc.Value()), nil
}

// InvP inverts P: it returns the concentration whose p value relative
// to the reference concentration ref is pC. The result carries the
// dimensions of ref.
func InvP(pC float64, ref *unit.Unit) (*unit.Unit, error) {
	if ref == nil {
		return nil, &DimensionError{Param: "ref"}
	}
	if ref.Value() <= 0 {
		return nil, &DomainError{Param: "ref", Value: ref.Value(), Reason: "must be positive"}
	}
	return unit.New(ref.Value()*math.Pow(10, -pC), ref.Dimensions()), nil
}
