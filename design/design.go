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

// Package design evaluates the flocculation performance of laminar
// tube flocculator designs.
package design

import (
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"

	"github.com/watermodel/floc"
	"github.com/watermodel/floc/physchem"
)

// Config describes a tube flocculator experiment. All fields are in
// SI units.
type Config struct {
	// FlowRate is the plant flow rate [m3/s].
	FlowRate float64

	// TubeID is the inner diameter of the flocculator tube [m].
	TubeID float64

	// CoilRadius is the radius the tube is coiled at [m].
	CoilRadius float64

	// TubeLength is the length of the flocculator tube [m].
	TubeLength float64

	// Temperature is the water temperature [K].
	Temperature float64

	// AluminumDose is the aluminum concentration the coagulant
	// dose adds to the raw water [kg/m3].
	AluminumDose float64

	// ClayConc is the clay concentration of the raw water [kg/m3].
	ClayConc float64

	// NOMConc is the natural organic matter (humic acid)
	// concentration of the raw water [kg/m3].
	NOMConc float64

	// EnergyDissipation is the energy dissipation rate [W/kg].
	// Zero means derive it from the coiled-tube velocity gradient
	// as nu*G^2.
	EnergyDissipation float64

	// TargetFlocDiameter is the floc diameter performance is
	// evaluated at [m]. Zero means use the maximum diameter flocs
	// can grow to at the energy dissipation rate.
	TargetFlocDiameter float64

	// FittingConstant is the fitting parameter of the performance
	// model. Zero means one.
	FittingConstant float64

	// Coagulant is the name of the coagulant to dose: "PACl" or
	// "Alum". Empty means PACl.
	Coagulant string
}

// LoadConfig reads and validates a TOML experiment description.
func LoadConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("design: parsing configuration: %v", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) check() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"FlowRate", c.FlowRate},
		{"TubeID", c.TubeID},
		{"CoilRadius", c.CoilRadius},
		{"TubeLength", c.TubeLength},
		{"Temperature", c.Temperature},
		{"AluminumDose", c.AluminumDose},
		{"ClayConc", c.ClayConc},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("design: %s (%g) must be positive", p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"NOMConc", c.NOMConc},
		{"EnergyDissipation", c.EnergyDissipation},
		{"TargetFlocDiameter", c.TargetFlocDiameter},
		{"FittingConstant", c.FittingConstant},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("design: %s (%g) must not be negative", p.name, p.v)
		}
	}
	_, err := c.coagulant()
	return err
}

func (c *Config) coagulant() (*floc.Chemical, error) {
	switch c.Coagulant {
	case "", "PACl":
		return floc.PACl, nil
	case "Alum":
		return floc.Alum, nil
	}
	return nil, fmt.Errorf("design: unknown coagulant %q (valid: PACl, Alum)", c.Coagulant)
}

// Evaluator evaluates flocculator designs.
type Evaluator struct {
	Config *Config

	Log logrus.FieldLogger
}

func (e *Evaluator) logger() logrus.FieldLogger {
	if e.Log != nil {
		return e.Log
	}
	return logrus.StandardLogger()
}

// Report holds the results of evaluating one flocculator design. All
// fields are in SI units.
type Report struct {
	// VelocityGradient is the coiled-tube average velocity
	// gradient [1/s].
	VelocityGradient float64

	// Reynolds and Dean are the tube flow Reynolds and Dean
	// numbers.
	Reynolds float64
	Dean     float64

	// ResidenceTime is the hydraulic residence time [s], and GT
	// the collision potential, its product with the velocity
	// gradient.
	ResidenceTime float64
	GT            float64

	// EnergyDissipation is the energy dissipation rate the design
	// was evaluated at [W/kg], either configured or derived.
	EnergyDissipation float64

	// MaxFlocDiameter is the equilibrium floc diameter at the
	// energy dissipation rate [m], and TargetDiameter the diameter
	// performance was evaluated at [m].
	MaxFlocDiameter float64
	TargetDiameter  float64

	// Coverage is the fraction of the clay surface coated with
	// coagulant.
	Coverage float64

	// Efficiency decomposes the collision efficiency by collision
	// type.
	Efficiency floc.CollisionEfficiency

	// CollisionTimeLaminar and CollisionTimeTurbulent are the
	// successful collision timescales [s] at the target diameter.
	CollisionTimeLaminar   float64
	CollisionTimeTurbulent float64

	// TerminalVelocity is the sedimentation velocity of flocs at
	// the target diameter [m/s].
	TerminalVelocity float64

	// PredictedPC is the predicted flocculation performance,
	// pC*.
	PredictedPC float64

	// Warnings lists conditions under which the model relations
	// are suspect.
	Warnings []string
}

// Evaluate runs the flocculation model over the configured design,
// seeding floc growth at the clay particle diameter and using the
// default fractal dimension.
func (e *Evaluator) Evaluate() (*Report, error) {
	c := e.Config
	if c == nil {
		return nil, fmt.Errorf("design: nil configuration")
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	log := e.logger()
	coag, err := c.coagulant()
	if err != nil {
		return nil, err
	}

	flow := unit.New(c.FlowRate, unit.Meter3PerSecond)
	tubeID := unit.New(c.TubeID, unit.Meter)
	coilRadius := unit.New(c.CoilRadius, unit.Meter)
	tubeLength := unit.New(c.TubeLength, unit.Meter)
	temp := unit.New(c.Temperature, unit.Kelvin)
	alConc := unit.New(c.AluminumDose, unit.KilogramPerMeter3)
	clayConc := unit.New(c.ClayConc, unit.KilogramPerMeter3)
	nomConc := unit.New(c.NOMConc, unit.KilogramPerMeter3)
	clayDiam := unit.New(floc.ClayDiameter, unit.Meter)
	clayDens := unit.New(floc.ClayDensity, unit.KilogramPerMeter3)

	r := new(Report)

	g, err := floc.VelocityGradientCoiled(flow, tubeID, coilRadius, temp)
	if err != nil {
		return nil, fmt.Errorf("design: velocity gradient: %w", err)
	}
	r.VelocityGradient = g.Value()
	r.Reynolds, err = floc.ReynoldsRapidMix(flow, tubeID, temp)
	if err != nil {
		return nil, fmt.Errorf("design: Reynolds number: %w", err)
	}
	if r.Reynolds > 2100 {
		w := fmt.Sprintf("Reynolds number %.0f is beyond the laminar range; the straight-tube velocity gradient relation does not apply", r.Reynolds)
		r.Warnings = append(r.Warnings, w)
		log.Warn(w)
	}
	r.Dean, err = floc.DeanNumber(flow, tubeID, coilRadius, temp)
	if err != nil {
		return nil, fmt.Errorf("design: Dean number: %w", err)
	}
	tres, err := floc.TubeResidenceTime(tubeID, tubeLength, flow)
	if err != nil {
		return nil, fmt.Errorf("design: residence time: %w", err)
	}
	r.ResidenceTime = tres.Value()
	r.GT, err = floc.GResidenceTime(flow, tubeID, coilRadius, tubeLength, temp)
	if err != nil {
		return nil, fmt.Errorf("design: collision potential: %w", err)
	}
	log.WithFields(logrus.Fields{
		"G":    r.VelocityGradient,
		"Re":   r.Reynolds,
		"De":   r.Dean,
		"tres": r.ResidenceTime,
		"Gt":   r.GT,
	}).Info("design: tube hydraulics")

	var eps *unit.Unit
	if c.EnergyDissipation > 0 {
		eps = unit.New(c.EnergyDissipation, floc.WattPerKilogram)
	} else {
		nu, err := physchem.KinematicViscosity(temp)
		if err != nil {
			return nil, fmt.Errorf("design: kinematic viscosity: %w", err)
		}
		eps = unit.New(nu.Value()*math.Pow(g.Value(), 2), floc.WattPerKilogram)
	}
	r.EnergyDissipation = eps.Value()
	dmax, err := floc.MaxFlocDiameter(eps)
	if err != nil {
		return nil, fmt.Errorf("design: maximum floc diameter: %w", err)
	}
	r.MaxFlocDiameter = dmax.Value()
	dTarget := dmax
	if c.TargetFlocDiameter > 0 {
		dTarget = unit.New(c.TargetFlocDiameter, unit.Meter)
	}
	r.TargetDiameter = dTarget.Value()
	log.WithFields(logrus.Fields{
		"eps":     r.EnergyDissipation,
		"dmax":    r.MaxFlocDiameter,
		"dtarget": r.TargetDiameter,
	}).Info("design: floc size limits")

	r.Coverage, err = floc.CoagulantCoverage(clayConc, alConc, coag, tubeID, clayDiam, clayDens, floc.ClayAspectRatio)
	if err != nil {
		return nil, fmt.Errorf("design: coagulant coverage: %w", err)
	}
	r.Efficiency, err = floc.NewCollisionEfficiency(tubeID, clayDiam, clayDens, clayConc, alConc, nomConc, floc.HumicAcid, coag, floc.ClayAspectRatio)
	if err != nil {
		return nil, fmt.Errorf("design: collision efficiency: %w", err)
	}
	log.WithFields(logrus.Fields{
		"gamma": r.Coverage,
		"alpha": r.Efficiency.Total(),
	}).Info("design: collision efficiency")

	fd := floc.DefaultFractalDimension
	tLam, err := floc.CollisionTimeLaminar(alConc, clayConc, coag, fd, clayDiam, dTarget, eps, temp, tubeID, floc.ClayAspectRatio, clayDens)
	if err != nil {
		return nil, fmt.Errorf("design: laminar collision time: %w", err)
	}
	r.CollisionTimeLaminar = tLam.Value()
	tTurb, err := floc.CollisionTimeTurbulent(alConc, clayConc, coag, fd, clayDiam, dTarget, eps)
	if err != nil {
		return nil, fmt.Errorf("design: turbulent collision time: %w", err)
	}
	r.CollisionTimeTurbulent = tTurb.Value()
	vt, err := floc.TerminalVelocity(alConc, clayConc, coag, fd, clayDiam, dTarget, temp)
	if err != nil {
		return nil, fmt.Errorf("design: terminal velocity: %w", err)
	}
	r.TerminalVelocity = vt.Value()

	fitting := c.FittingConstant
	if fitting == 0 {
		fitting = 1
	}
	r.PredictedPC, err = floc.ViscousPerformance(eps, temp, tres, clayDiam, tubeID, clayDiam, clayDens, clayConc, alConc, nomConc, floc.HumicAcid, coag, fitting, floc.ClayAspectRatio)
	if err != nil {
		return nil, fmt.Errorf("design: performance: %w", err)
	}
	log.WithFields(logrus.Fields{
		"tLaminar":   r.CollisionTimeLaminar,
		"tTurbulent": r.CollisionTimeTurbulent,
		"vTerminal":  r.TerminalVelocity,
		"pC":         r.PredictedPC,
	}).Info("design: flocculation performance")

	return r, nil
}
