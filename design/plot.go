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

package design

import (
	"fmt"
	"io"

	"github.com/ctessum/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/watermodel/floc"
)

// VelocityPlot writes a PNG plot of floc terminal velocity against
// floc diameter for the configured water chemistry, evaluated at n
// diameters from dMin to dMax [m].
func (e *Evaluator) VelocityPlot(w io.Writer, dMin, dMax float64, n int) error {
	c := e.Config
	if c == nil {
		return fmt.Errorf("design: nil configuration")
	}
	if err := c.check(); err != nil {
		return err
	}
	if !(dMin > 0) || !(dMax > dMin) {
		return fmt.Errorf("design: invalid diameter range [%g, %g]", dMin, dMax)
	}
	if n < 2 {
		return fmt.Errorf("design: a plot needs at least 2 points, not %d", n)
	}
	coag, err := c.coagulant()
	if err != nil {
		return err
	}

	temp := unit.New(c.Temperature, unit.Kelvin)
	alConc := unit.New(c.AluminumDose, unit.KilogramPerMeter3)
	clayConc := unit.New(c.ClayConc, unit.KilogramPerMeter3)
	clayDiam := unit.New(floc.ClayDiameter, unit.Meter)

	pts := make(plotter.XYs, n)
	for i := range pts {
		d := dMin + float64(i)*(dMax-dMin)/float64(n-1)
		v, err := floc.TerminalVelocity(alConc, clayConc, coag, floc.DefaultFractalDimension,
			clayDiam, unit.New(d, unit.Meter), temp)
		if err != nil {
			return fmt.Errorf("design: terminal velocity at %g m: %w", d, err)
		}
		pts[i].X = d
		pts[i].Y = v.Value()
	}

	p := plot.New()
	p.Title.Text = "Floc terminal velocity"
	p.X.Label.Text = "Floc diameter (m)"
	p.Y.Label.Text = "Terminal velocity (m/s)"
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}
	p.Add(plotter.NewGrid(), l)

	wt, err := p.WriterTo(4*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("design: rendering plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("design: writing plot: %w", err)
	}
	return nil
}
