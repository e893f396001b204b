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

package noding

import (
	"fmt"
	"math"

	"github.com/spatialmodel/planar"
)

// OctantOf returns the octant of the direction vector (dx, dy). Octants
// are numbered counter-clockwise from 0, starting at the positive X axis:
//
//	 \2|1/
//	 3\|/0
//	---+---
//	 4/|\7
//	 /5|6\
//
// A zero vector has no octant.
func OctantOf(dx, dy float64) (int, error) {
	if dx == 0 && dy == 0 {
		return 0, fmt.Errorf("noding: cannot compute the octant of the zero vector (%g, %g)", dx, dy)
	}
	adx, ady := math.Abs(dx), math.Abs(dy)
	if dx >= 0 {
		if dy >= 0 {
			if adx >= ady {
				return 0, nil
			}
			return 1, nil
		}
		if adx >= ady {
			return 7, nil
		}
		return 6, nil
	}
	if dy >= 0 {
		if adx >= ady {
			return 3, nil
		}
		return 2, nil
	}
	if adx >= ady {
		return 4, nil
	}
	return 5, nil
}

// OctantOfPoints returns the octant of the direction from p0 to p1.
func OctantOfPoints(p0, p1 planar.Coordinate) (int, error) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if dx == 0 && dy == 0 {
		return 0, fmt.Errorf("noding: cannot compute the octant of the repeated point %v", p0)
	}
	return OctantOf(dx, dy)
}

// ComparePoints orders two points lying on a segment with the given
// octant by their position along the segment, returning -1, 0 or 1.
// Within an octant the order along a segment is decided by the ordinate
// comparisons alone, without computing distances.
func ComparePoints(octant int, p0, p1 planar.Coordinate) int {
	if p0.Equals2D(p1) {
		return 0
	}
	xSign := relativeSign(p0.X, p1.X)
	ySign := relativeSign(p0.Y, p1.Y)
	switch octant {
	case 0:
		return compareValue(xSign, ySign)
	case 1:
		return compareValue(ySign, xSign)
	case 2:
		return compareValue(ySign, -xSign)
	case 3:
		return compareValue(-xSign, ySign)
	case 4:
		return compareValue(-xSign, -ySign)
	case 5:
		return compareValue(-ySign, -xSign)
	case 6:
		return compareValue(-ySign, xSign)
	case 7:
		return compareValue(xSign, -ySign)
	}
	panic(fmt.Sprintf("noding: invalid octant value %d", octant))
}

func relativeSign(x0, x1 float64) int {
	switch {
	case x0 < x1:
		return -1
	case x0 > x1:
		return 1
	}
	return 0
}

func compareValue(c0, c1 int) int {
	switch {
	case c0 < 0:
		return -1
	case c0 > 0:
		return 1
	case c1 < 0:
		return -1
	case c1 > 0:
		return 1
	}
	return 0
}
