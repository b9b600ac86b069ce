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
	"errors"
	"fmt"
	"testing"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

// The tube flocculator the kinetics tests run in: a half-inch tube
// dosing 1 mg/L of humic acid alongside the benchtop clay and
// coagulant concentrations.
var (
	testTube     = unit.New(0.0127, unit.Meter)
	testClayDiam = unit.New(ClayDiameter, unit.Meter)
	testClayDens = unit.New(ClayDensity, unit.KilogramPerMeter3)
	testNOM      = unit.New(1e-3, unit.KilogramPerMeter3)
)

func TestClayShapeFactor(t *testing.T) {
	shape, err := ClayShapeFactor(ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	want := 2.125317138365222
	if !scalar.EqualWithinAbsOrRel(shape, want, tol, tol) {
		t.Errorf("shape factor = %g, want %g", shape, want)
	}

	// A platelet as tall as it is wide has the least surface per
	// volume; squatter plates have more.
	taller, err := ClayShapeFactor(1)
	if err != nil {
		t.Fatal(err)
	}
	if taller >= shape {
		t.Errorf("shape factor %g for equidimensional plate not below %g", taller, shape)
	}

	var domErr *DomainError
	if _, err := ClayShapeFactor(0); !errors.As(err, &domErr) {
		t.Errorf("zero aspect ratio: got %v, want DomainError", err)
	}
}

func TestClayAreaFraction(t *testing.T) {
	frac, err := ClayAreaFraction(testClay, testClayDiam, testTube, testClayDens, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.1791573819025625
	if !scalar.EqualWithinAbsOrRel(frac, want, tol, tol) {
		t.Errorf("area fraction = %g, want %g", frac, want)
	}

	// A bigger tube has less wall per volume, leaving more of the
	// total area on the clay.
	bigger, err := ClayAreaFraction(testClay, testClayDiam,
		unit.New(0.0254, unit.Meter), testClayDens, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	if bigger <= frac {
		t.Errorf("area fraction %g in doubled tube not above %g", bigger, frac)
	}
}

func TestCoagulantCoverage(t *testing.T) {
	gamma, err := CoagulantCoverage(testClay, testAl, PACl,
		testTube, testClayDiam, testClayDens, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.2500227849122446
	if !scalar.EqualWithinAbsOrRel(gamma, want, tol, tol) {
		t.Errorf("coverage = %g, want %g", gamma, want)
	}
}

func TestCoagulantCoverageBounds(t *testing.T) {
	// Poisson statistics keep the coverage inside [0, 1) at any
	// dose, approaching full coverage only asymptotically, and more
	// coagulant always covers more. Doses much beyond 0.1 kg/m3 push
	// the exponent past what float64 can resolve and the coverage
	// rounds to exactly 1.
	prev := -1.
	for _, dose := range []float64{0, 1e-4, 1e-3, 1e-2, 0.1} {
		t.Run(fmt.Sprint(dose), func(t *testing.T) {
			gamma, err := CoagulantCoverage(testClay, unit.New(dose, unit.KilogramPerMeter3),
				PACl, testTube, testClayDiam, testClayDens, ClayAspectRatio)
			if err != nil {
				t.Fatal(err)
			}
			if gamma < 0 || gamma >= 1 {
				t.Errorf("coverage = %g, want within [0, 1)", gamma)
			}
			if gamma <= prev {
				t.Errorf("coverage = %g at dose %g, want above %g", gamma, dose, prev)
			}
			prev = gamma
		})
	}
}

func TestCoagulantCoverageErrors(t *testing.T) {
	// A species with no aluminum precipitate cannot cover anything.
	if _, err := CoagulantCoverage(testClay, testAl, HumicAcid,
		testTube, testClayDiam, testClayDens, ClayAspectRatio); err == nil {
		t.Error("expected error dosing humic acid as the coagulant")
	}
	var domErr *DomainError
	if _, err := CoagulantCoverage(unit.New(0, unit.KilogramPerMeter3), testAl, PACl,
		testTube, testClayDiam, testClayDens, ClayAspectRatio); !errors.As(err, &domErr) {
		t.Errorf("no clay: got %v, want DomainError", err)
	}
}

func TestOrganicMatterFraction(t *testing.T) {
	gamma, err := OrganicMatterFraction(testAl, testNOM, HumicAcid, PACl)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.03374689767602817
	if !scalar.EqualWithinAbsOrRel(gamma, want, tol, tol) {
		t.Errorf("organic matter fraction = %g, want %g", gamma, want)
	}

	// The coagulant surface cannot be more than fully coated.
	gamma, err = OrganicMatterFraction(testAl, unit.New(1, unit.KilogramPerMeter3), HumicAcid, PACl)
	if err != nil {
		t.Fatal(err)
	}
	if gamma != 1 {
		t.Errorf("organic matter fraction at overwhelming dose = %g, want 1", gamma)
	}

	var domErr *DomainError
	if _, err := OrganicMatterFraction(unit.New(0, unit.KilogramPerMeter3), testNOM, HumicAcid, PACl); !errors.As(err, &domErr) {
		t.Errorf("no aluminum: got %v, want DomainError", err)
	}
}

func TestCollisionEfficiency(t *testing.T) {
	eff, err := NewCollisionEfficiency(testTube, testClayDiam, testClayDens,
		testClay, testAl, testNOM, HumicAcid, PACl, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		name string
		have float64
		want float64
	}{
		{
			name: "CoagClay",
			have: eff.CoagClay,
			want: 0.36236692836036705,
		},
		{
			name: "CoagCoag",
			have: eff.CoagCoag,
			want: 0.05836345310447689,
		},
		{
			name: "CoagNOM",
			have: eff.CoagNOM,
			want: 0.00407674857695013,
		},
		{
			name: "Total",
			have: eff.Total(),
			want: 0.42480713004179405,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !scalar.EqualWithinAbsOrRel(test.have, test.want, tol, tol) {
				t.Errorf("%s = %g, want %g", test.name, test.have, test.want)
			}
		})
	}

	// Without organic matter there are no coagulant-NOM collisions
	// and the other pairings pick up the efficiency.
	dry, err := NewCollisionEfficiency(testTube, testClayDiam, testClayDens,
		testClay, testAl, unit.New(0, unit.KilogramPerMeter3), HumicAcid, PACl, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	if dry.CoagNOM != 0 {
		t.Errorf("CoagNOM without organic matter = %g, want 0", dry.CoagNOM)
	}
	if dry.Total() <= eff.Total() {
		t.Errorf("efficiency without organic matter = %g, want above %g",
			dry.Total(), eff.Total())
	}
}

func TestCollisionTimeLaminar(t *testing.T) {
	tc, err := CollisionTimeLaminar(testAl, testClay, PACl, DefaultFractalDimension,
		unit.New(1e-6, unit.Meter), unit.New(8e-6, unit.Meter),
		unit.New(6e-3, WattPerKilogram), testTemp,
		testTube, ClayAspectRatio, testClayDens)
	if err != nil {
		t.Fatal(err)
	}
	want := 6.382873410919471
	if !scalar.EqualWithinAbsOrRel(tc.Value(), want, tol, tol) {
		t.Errorf("collision time = %g, want %g", tc.Value(), want)
	}
	if err := tc.Check(unit.Second); err != nil {
		t.Error(err)
	}
}

func TestCollisionTimeTurbulent(t *testing.T) {
	tc, err := CollisionTimeTurbulent(testAl, testClay, PACl, DefaultFractalDimension,
		unit.New(1e-6, unit.Meter), unit.New(8e-6, unit.Meter),
		unit.New(6e-3, WattPerKilogram))
	if err != nil {
		t.Fatal(err)
	}
	want := 0.8236480488371886
	if !scalar.EqualWithinAbsOrRel(tc.Value(), want, tol, tol) {
		t.Errorf("collision time = %g, want %g", tc.Value(), want)
	}

	// Stirring harder shortens the time between successful
	// collisions.
	faster, err := CollisionTimeTurbulent(testAl, testClay, PACl, DefaultFractalDimension,
		unit.New(1e-6, unit.Meter), unit.New(8e-6, unit.Meter),
		unit.New(6e-2, WattPerKilogram))
	if err != nil {
		t.Fatal(err)
	}
	if faster.Value() >= tc.Value() {
		t.Errorf("collision time %g at tenfold dissipation not below %g",
			faster.Value(), tc.Value())
	}
}

func TestViscousPerformance(t *testing.T) {
	pC, err := ViscousPerformance(unit.New(6e-3, WattPerKilogram), testTemp,
		unit.New(302, unit.Second), testClayDiam, testTube, testClayDiam,
		testClayDens, testClay, testAl, testNOM, HumicAcid, PACl, 1, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	want := 2.351957461119463
	if !scalar.EqualWithinAbsOrRel(pC, want, tol, tol) {
		t.Errorf("pC = %g, want %g", pC, want)
	}

	// No flocculation time, no performance.
	pC, err = ViscousPerformance(unit.New(6e-3, WattPerKilogram), testTemp,
		unit.New(0, unit.Second), testClayDiam, testTube, testClayDiam,
		testClayDens, testClay, testAl, testNOM, HumicAcid, PACl, 1, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	if pC != 0 {
		t.Errorf("pC with no time = %g, want 0", pC)
	}

	// Longer flocculation removes more particles.
	longer, err := ViscousPerformance(unit.New(6e-3, WattPerKilogram), testTemp,
		unit.New(604, unit.Second), testClayDiam, testTube, testClayDiam,
		testClayDens, testClay, testAl, testNOM, HumicAcid, PACl, 1, ClayAspectRatio)
	if err != nil {
		t.Fatal(err)
	}
	if longer <= want {
		t.Errorf("pC after doubled time = %g, want above %g", longer, want)
	}
}
