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

package pipe

// Nominal and outer diameters [inches] of commercially available
// pipe, from ASME B36.10M. The outer diameters also apply to SDR
// series PVC pipe, which shares the steel-pipe outside dimensions.
var (
	ndInch = []float64{0.125, 0.25, 0.375, 0.5, 0.75, 1, 1.25, 1.5,
		2, 2.5, 3, 3.5, 4, 5, 6, 8, 10, 12}

	odInch = []float64{0.405, 0.54, 0.675, 0.84, 1.05, 1.315, 1.66, 1.9,
		2.375, 2.875, 3.5, 4, 4.5, 5.563, 6.625, 8.625, 10.75, 12.75}
)
