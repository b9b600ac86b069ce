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
	"testing"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

// The bench-scale coiled tube flocculator the hydraulics tests model:
// 6 mL/s through 25 m of 9.52 mm tube coiled at 15 cm.
var (
	testFlow   = unit.New(6e-6, unit.Meter3PerSecond)
	testTubeID = unit.New(9.52e-3, unit.Meter)
	testCoil   = unit.New(0.15, unit.Meter)
	testLength = unit.New(25, unit.Meter)
)

func TestVelocityGradientStraight(t *testing.T) {
	g, err := VelocityGradientStraight(testFlow, testTubeID)
	if err != nil {
		t.Fatal(err)
	}
	want := 47.222530067458116
	if !scalar.EqualWithinAbsOrRel(g.Value(), want, tol, tol) {
		t.Errorf("velocity gradient = %g, want %g", g.Value(), want)
	}
	if err := g.Check(PerSecond); err != nil {
		t.Error(err)
	}

	// Still water shears nothing.
	g, err = VelocityGradientStraight(unit.New(0, unit.Meter3PerSecond), testTubeID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Value() != 0 {
		t.Errorf("velocity gradient without flow = %g, want 0", g.Value())
	}
}

func TestReynoldsRapidMix(t *testing.T) {
	re, err := ReynoldsRapidMix(testFlow, testTubeID, testTemp)
	if err != nil {
		t.Fatal(err)
	}
	want := 799.6191250575106
	if !scalar.EqualWithinAbsOrRel(re, want, tol, tol) {
		t.Errorf("Reynolds number = %g, want %g", re, want)
	}
}

func TestDeanNumber(t *testing.T) {
	de, err := DeanNumber(testFlow, testTubeID, testCoil, testTemp)
	if err != nil {
		t.Fatal(err)
	}
	want := 142.44296980314232
	if !scalar.EqualWithinAbsOrRel(de, want, tol, tol) {
		t.Errorf("Dean number = %g, want %g", de, want)
	}

	// Winding the tube tighter strengthens the secondary flow.
	tighter, err := DeanNumber(testFlow, testTubeID, unit.New(0.075, unit.Meter), testTemp)
	if err != nil {
		t.Fatal(err)
	}
	if tighter <= de {
		t.Errorf("Dean number %g at halved coil radius not above %g", tighter, de)
	}
}

func TestVelocityGradientCoiled(t *testing.T) {
	g, err := VelocityGradientCoiled(testFlow, testTubeID, testCoil, testTemp)
	if err != nil {
		t.Fatal(err)
	}
	want := 61.7499610971289
	if !scalar.EqualWithinAbsOrRel(g.Value(), want, tol, tol) {
		t.Errorf("velocity gradient = %g, want %g", g.Value(), want)
	}

	// The secondary flow in a coiled tube only ever adds shear.
	straight, err := VelocityGradientStraight(testFlow, testTubeID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Value() <= straight.Value() {
		t.Errorf("coiled gradient %g not above straight %g", g.Value(), straight.Value())
	}
}

func TestTubeResidenceTime(t *testing.T) {
	tres, err := TubeResidenceTime(testTubeID, testLength, testFlow)
	if err != nil {
		t.Fatal(err)
	}
	want := 296.5872904499005
	if !scalar.EqualWithinAbsOrRel(tres.Value(), want, tol, tol) {
		t.Errorf("residence time = %g, want %g", tres.Value(), want)
	}
	if err := tres.Check(unit.Second); err != nil {
		t.Error(err)
	}

	// Doubling the tube length exactly doubles the time spent in
	// it, and doubling the flow rate exactly halves it.
	doubleLength, err := TubeResidenceTime(testTubeID, unit.New(50, unit.Meter), testFlow)
	if err != nil {
		t.Fatal(err)
	}
	if doubleLength.Value() != 2*tres.Value() {
		t.Errorf("residence time at doubled length = %g, want %g",
			doubleLength.Value(), 2*tres.Value())
	}
	doubleFlow, err := TubeResidenceTime(testTubeID, testLength, unit.New(1.2e-5, unit.Meter3PerSecond))
	if err != nil {
		t.Fatal(err)
	}
	if doubleFlow.Value() != tres.Value()/2 {
		t.Errorf("residence time at doubled flow = %g, want %g",
			doubleFlow.Value(), tres.Value()/2)
	}
}

func TestGResidenceTime(t *testing.T) {
	gt, err := GResidenceTime(testFlow, testTubeID, testCoil, testLength, testTemp)
	if err != nil {
		t.Fatal(err)
	}
	want := 18314.253647184225
	if !scalar.EqualWithinAbsOrRel(gt, want, tol, tol) {
		t.Errorf("collision potential = %g, want %g", gt, want)
	}

	// Gt is exactly the product of its two factors.
	g, err := VelocityGradientCoiled(testFlow, testTubeID, testCoil, testTemp)
	if err != nil {
		t.Fatal(err)
	}
	tres, err := TubeResidenceTime(testTubeID, testLength, testFlow)
	if err != nil {
		t.Fatal(err)
	}
	if gt != g.Value()*tres.Value() {
		t.Errorf("collision potential = %g, want %g", gt, g.Value()*tres.Value())
	}
}

func TestTubeFlowValidation(t *testing.T) {
	var domErr *DomainError
	if _, err := VelocityGradientStraight(unit.New(-6e-6, unit.Meter3PerSecond), testTubeID); !errors.As(err, &domErr) {
		t.Errorf("negative flow: got %v, want DomainError", err)
	}
	if _, err := VelocityGradientCoiled(unit.New(0, unit.Meter3PerSecond), testTubeID, testCoil, testTemp); !errors.As(err, &domErr) {
		t.Errorf("coiled gradient without flow: got %v, want DomainError", err)
	}
	if _, err := TubeResidenceTime(testTubeID, testLength, unit.New(0, unit.Meter3PerSecond)); !errors.As(err, &domErr) {
		t.Errorf("residence time without flow: got %v, want DomainError", err)
	}
	if _, err := DeanNumber(testFlow, testTubeID, unit.New(0, unit.Meter), testTemp); !errors.As(err, &domErr) {
		t.Errorf("zero coil radius: got %v, want DomainError", err)
	}

	var dimErr *DimensionError
	if _, err := VelocityGradientStraight(testTubeID, testTubeID); !errors.As(err, &dimErr) {
		t.Errorf("length as flow: got %v, want DimensionError", err)
	}
	if _, err := TubeResidenceTime(nil, testLength, testFlow); !errors.As(err, &dimErr) {
		t.Errorf("nil diameter: got %v, want DimensionError", err)
	}
}
