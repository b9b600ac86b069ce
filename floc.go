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

// Package floc models the physics of flocculation in drinking-water
// treatment: the aggregation of clay particles and coagulant
// nanoclusters into fractal flocs, the surface coverage and collision
// efficiency that control aggregation, and the hydraulics of the
// laminar tube flocculators used to study it.
//
// Quantities that carry physical dimensions are represented as
// *unit.Unit values in SI base units. Every function checks the
// dimensions of its arguments and returns a *DimensionError on
// mismatch, so results can be composed through the model without
// losing dimensional consistency. Dimensionless quantities (fractal
// dimensions, collision counts, coverage fractions, flow numbers, and
// pC values) are plain float64 values. Inputs outside the physically
// valid domain of a formula cause a *DomainError.
//
// The floc growth functions are driven by the species descriptions in
// the chemical registry (PACl, Alum, and HumicAcid) together with the
// water properties supplied by the physchem package.
package floc

// Physical constants of the model, in SI base units.
const (
	// DefaultFractalDimension is the fractal dimension of flocs, based
	// on data from Adachi.
	DefaultFractalDimension = 2.3

	// ClayDiameter is the diameter of a clay particle [m].
	ClayDiameter = 7e-6

	// ClayAspectRatio is the ratio of clay platelet height to diameter.
	ClayAspectRatio = 0.1

	// ClayDensity is the density of clay [kg/m3].
	ClayDensity = 2650.

	// KolmogorovRatio is the ratio between the inner viscous length
	// scale and the Kolmogorov length scale.
	KolmogorovRatio = 50.

	// FlocShapeFactor is the shape factor for drag on flocs used in the
	// terminal velocity equation.
	FlocShapeFactor = 45. / 24.

	// Avogadro is the Avogadro constant [1/mol].
	Avogadro = 6.0221415e23

	// AluminumMolarMass is the molar mass of aluminum [kg/mol].
	AluminumMolarMass = 0.027
)
