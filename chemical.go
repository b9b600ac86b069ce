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

	"github.com/ctessum/unit"
)

// Chemical describes a coagulant or particle species: the geometry and
// density of its primary particles and, for coagulants, its aluminum
// stoichiometry and the solid precipitate it forms in water.
//
// A Chemical is immutable once constructed. Species whose precipitate
// is a different substance than the species itself are built in two
// stages: NewChemical names the precipitate, and DefinePrecipitate
// produces a new value carrying the precipitate attributes. A Chemical
// is only fit for precipitate-dependent computations after the second
// stage; see Precipitate.
type Chemical struct {
	name string

	diameter    *unit.Unit // primary particle diameter [m]
	density     *unit.Unit // [kg/m3]
	molecWeight *unit.Unit // [kg/mol]; nil if not chemically meaningful
	aluminumMPM float64    // moles of aluminum per mole of species; 0 if none

	precipName string
	precip     *Precipitate // nil until defined
}

// Precipitate holds the attributes of the solid phase a coagulant
// forms in water.
type Precipitate struct {
	Name        string
	Diameter    *unit.Unit // [m]
	Density     *unit.Unit // [kg/m3]
	MolecWeight *unit.Unit // [kg/mol]; nil if not chemically meaningful
	AluminumMPM float64    // moles of aluminum per mole of precipitate
}

func (p *Precipitate) clone() *Precipitate {
	o := &Precipitate{
		Name:        p.Name,
		Diameter:    p.Diameter.Clone(),
		Density:     p.Density.Clone(),
		AluminumMPM: p.AluminumMPM,
	}
	if p.MolecWeight != nil {
		o.MolecWeight = p.MolecWeight.Clone()
	}
	return o
}

// NewChemical creates a species descriptor. diameter is the primary
// particle diameter [m], density is the particle density [kg/m3],
// molecWeight is the molar mass [kg/mol] or nil if not chemically
// meaningful, aluminumMPM is the number of moles of aluminum per mole
// of species (zero if the species contains no aluminum), and
// precipitateName names the solid the species forms in water. When
// precipitateName equals name the species precipitates as itself and
// the precipitate attributes are copied from the parent; otherwise they
// must be supplied through DefinePrecipitate before the Chemical is
// used in precipitate-dependent computations.
func NewChemical(name string, diameter, density, molecWeight *unit.Unit, aluminumMPM float64, precipitateName string) (*Chemical, error) {
	if err := checkPositive(diameter, "diameter", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(density, "density", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if molecWeight != nil {
		if err := checkPositive(molecWeight, "molecWeight", KilogramPerMole); err != nil {
			return nil, err
		}
	}
	if aluminumMPM < 0 {
		return nil, &DomainError{Param: "aluminumMPM", Value: aluminumMPM, Reason: "must not be negative"}
	}
	c := &Chemical{
		name:        name,
		diameter:    diameter.Clone(),
		density:     density.Clone(),
		aluminumMPM: aluminumMPM,
		precipName:  precipitateName,
	}
	if molecWeight != nil {
		c.molecWeight = molecWeight.Clone()
	}
	if precipitateName == name {
		c.precip = &Precipitate{
			Name:        name,
			Diameter:    c.diameter,
			Density:     c.density,
			MolecWeight: c.molecWeight,
			AluminumMPM: aluminumMPM,
		}
	}
	return c, nil
}

// DefinePrecipitate returns a copy of c whose precipitate attributes
// are set to the given values. It fails if the precipitate attributes
// are already defined, so a published Chemical can never change.
func (c *Chemical) DefinePrecipitate(diameter, density, molecWeight *unit.Unit, aluminumMPM float64) (*Chemical, error) {
	if c.precip != nil {
		return nil, fmt.Errorf("floc: precipitate %s of %s is already defined", c.precipName, c.name)
	}
	if err := checkPositive(diameter, "diameter", unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive(density, "density", unit.KilogramPerMeter3); err != nil {
		return nil, err
	}
	if molecWeight != nil {
		if err := checkPositive(molecWeight, "molecWeight", KilogramPerMole); err != nil {
			return nil, err
		}
	}
	if aluminumMPM < 0 {
		return nil, &DomainError{Param: "aluminumMPM", Value: aluminumMPM, Reason: "must not be negative"}
	}
	o := &Chemical{
		name:        c.name,
		diameter:    c.diameter.Clone(),
		density:     c.density.Clone(),
		aluminumMPM: c.aluminumMPM,
		precipName:  c.precipName,
		precip: &Precipitate{
			Name:        c.precipName,
			Diameter:    diameter.Clone(),
			Density:     density.Clone(),
			AluminumMPM: aluminumMPM,
		},
	}
	if c.molecWeight != nil {
		o.molecWeight = c.molecWeight.Clone()
	}
	if molecWeight != nil {
		o.precip.MolecWeight = molecWeight.Clone()
	}
	return o, nil
}

// Name returns the name of the species.
func (c *Chemical) Name() string { return c.name }

// Diameter returns the primary particle diameter [m].
func (c *Chemical) Diameter() *unit.Unit { return c.diameter.Clone() }

// Density returns the particle density [kg/m3].
func (c *Chemical) Density() *unit.Unit { return c.density.Clone() }

// MolecularWeight returns the molar mass [kg/mol], or nil if the
// species has no chemically meaningful molar mass.
func (c *Chemical) MolecularWeight() *unit.Unit {
	if c.molecWeight == nil {
		return nil
	}
	return c.molecWeight.Clone()
}

// AluminumMolesPerMole returns the number of moles of aluminum per
// mole of species, or zero if the species contains no aluminum.
func (c *Chemical) AluminumMolesPerMole() float64 { return c.aluminumMPM }

// PrecipitateName returns the name of the solid the species forms in
// water.
func (c *Chemical) PrecipitateName() string { return c.precipName }

// Precipitate returns the attributes of the solid phase c forms in
// water. It returns an *UndefinedPrecipitateError if the precipitate
// is a distinct species whose attributes were never defined.
func (c *Chemical) Precipitate() (*Precipitate, error) {
	if c.precip == nil {
		return nil, &UndefinedPrecipitateError{Chemical: c.name, Precipitate: c.precipName}
	}
	return c.precip.clone(), nil
}

// The species registry. Each entry is created once during package
// initialization and never changed afterward.
// Diameters are in m, densities in kg/m3, molar masses in kg/mol.
var (
	// PACl is polyaluminum chloride. Its nanoglobs precipitate as the
	// coagulant itself.
	PACl *Chemical

	// Alum is aluminum sulfate. Its hydrolysis precipitate is aluminum
	// hydroxide, a distinct species.
	Alum *Chemical

	// HumicAcid is a natural organic matter reference species. It has
	// no meaningful molar mass and contains no aluminum.
	HumicAcid *Chemical
)

func init() {
	var err error
	PACl, err = NewChemical("PACl",
		unit.New(90e-9, unit.Meter),
		unit.New(1138, unit.KilogramPerMeter3),
		unit.New(1.039, KilogramPerMole),
		13, "PACl")
	if err != nil {
		panic(err)
	}

	alum, err := NewChemical("Alum",
		unit.New(70e-9, unit.Meter),
		unit.New(2420, unit.KilogramPerMeter3),
		unit.New(0.59921, KilogramPerMole),
		2, "AlOH3")
	if err != nil {
		panic(err)
	}
	Alum, err = alum.DefinePrecipitate(
		unit.New(70e-9, unit.Meter),
		unit.New(2420, unit.KilogramPerMeter3),
		unit.New(0.078, KilogramPerMole),
		1)
	if err != nil {
		panic(err)
	}

	HumicAcid, err = NewChemical("Humic Acid",
		unit.New(72e-9, unit.Meter),
		unit.New(1780, unit.KilogramPerMeter3),
		nil, 0, "Humic Acid")
	if err != nil {
		panic(err)
	}
}
