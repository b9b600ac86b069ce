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

// Package physchem supplies empirical physical properties of water as
// functions of temperature. The correlations are valid for liquid
// water at atmospheric pressure, 273.15 K to 373.15 K.
package physchem

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/interp"
)

const (
	// gravity is the standard acceleration due to gravity [m/s2].
	gravity = 9.80665

	tempMin = 273.15 // [K]
	tempMax = 373.15 // [K]
)

// Density of liquid water [kg/m3] at atmospheric pressure against
// temperature [K], from the standard property tables.
var (
	densityTemp = []float64{273.15, 278.15, 283.15, 293.15, 303.15,
		313.15, 323.15, 333.15, 343.15, 353.15, 363.15, 373.15}
	densityWater = []float64{999.9, 1000, 999.7, 998.2, 995.7,
		992.2, 988.1, 983.2, 977.8, 971.8, 965.3, 958.4}

	densitySpline interp.NaturalCubic
)

func init() {
	if err := densitySpline.Fit(densityTemp, densityWater); err != nil {
		panic(err)
	}
}

// Some unit dimensions the unit package does not predefine.
var (
	pascalSecond    = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -1}
	meter2PerSecond = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
)

// TemperatureRangeError is returned when a temperature lies outside
// the valid range of the water property correlations.
type TemperatureRangeError struct {
	Temp     float64 // the temperature received [K]
	Min, Max float64 // the valid range [K]
}

func (e *TemperatureRangeError) Error() string {
	return fmt.Sprintf("physchem: temperature %g K is outside the valid range [%g, %g] K",
		e.Temp, e.Min, e.Max)
}

// checkTemp validates that temp is a temperature within the range of
// the water property correlations and returns its magnitude [K].
func checkTemp(temp *unit.Unit) (float64, error) {
	if temp == nil {
		return 0, fmt.Errorf("physchem: temperature is nil")
	}
	if err := temp.Check(unit.Kelvin); err != nil {
		return 0, fmt.Errorf("physchem: temperature: %v", err)
	}
	T := temp.Value()
	if T < tempMin || T > tempMax {
		return 0, &TemperatureRangeError{Temp: T, Min: tempMin, Max: tempMax}
	}
	return T, nil
}

// WaterDensity returns the density of water [kg/m3] at temperature
// temp [K], interpolated from the property table with a cubic spline.
func WaterDensity(temp *unit.Unit) (*unit.Unit, error) {
	T, err := checkTemp(temp)
	if err != nil {
		return nil, err
	}
	return unit.New(waterDensity(T), unit.KilogramPerMeter3), nil
}

func waterDensity(T float64) float64 {
	return densitySpline.Predict(T)
}

// DynamicViscosity returns the dynamic viscosity of water [Pa s] at
// temperature temp [K], from the correlation of Al-Shemmeri (2012).
func DynamicViscosity(temp *unit.Unit) (*unit.Unit, error) {
	T, err := checkTemp(temp)
	if err != nil {
		return nil, err
	}
	return unit.New(dynamicViscosity(T), pascalSecond), nil
}

func dynamicViscosity(T float64) float64 {
	return 2.414e-5 * math.Pow(10, 247.8/(T-140))
}

// KinematicViscosity returns the kinematic viscosity of water [m2/s]
// at temperature temp [K].
func KinematicViscosity(temp *unit.Unit) (*unit.Unit, error) {
	T, err := checkTemp(temp)
	if err != nil {
		return nil, err
	}
	return unit.New(kinematicViscosity(T), meter2PerSecond), nil
}

func kinematicViscosity(T float64) float64 {
	return dynamicViscosity(T) / waterDensity(T)
}

// Gravity returns the standard acceleration due to gravity [m/s2].
func Gravity() *unit.Unit {
	return unit.New(gravity, unit.MeterPerSecond2)
}
