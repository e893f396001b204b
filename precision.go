/*
Copyright © 2019 the planar authors.
This file is part of planar.

planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with planar.  If not, see <http://www.gnu.org/licenses/>.
*/

package planar

import (
	"fmt"
	"math"
)

// PrecisionModel specifies the grid that computed coordinates are snapped
// to. The zero value is a floating precision model, which leaves
// coordinates unchanged.
type PrecisionModel struct {
	// Scale is the number of grid cells per unit. A Scale of zero or less
	// means floating precision.
	Scale float64
}

// NewFixedPrecision returns a precision model that rounds coordinates to
// 1/scale.
func NewFixedPrecision(scale float64) (*PrecisionModel, error) {
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("planar: invalid precision scale %g", scale)
	}
	return &PrecisionModel{Scale: scale}, nil
}

// IsFloating returns whether pm leaves coordinates unchanged.
func (pm *PrecisionModel) IsFloating() bool {
	return pm == nil || pm.Scale <= 0
}

// MakePreciseValue rounds v to the grid. Halves round up.
func (pm *PrecisionModel) MakePreciseValue(v float64) float64 {
	if pm.IsFloating() || math.IsNaN(v) {
		return v
	}
	return math.Floor(v*pm.Scale+0.5) / pm.Scale
}

// MakePrecise rounds the X and Y ordinates of c to the grid.
func (pm *PrecisionModel) MakePrecise(c Coordinate) Coordinate {
	c.X = pm.MakePreciseValue(c.X)
	c.Y = pm.MakePreciseValue(c.Y)
	return c
}
