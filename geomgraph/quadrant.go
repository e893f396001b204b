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

package geomgraph

import (
	"fmt"

	"github.com/spatialmodel/planar"
)

// Quadrant is one of the four quadrants of the plane around the origin,
// numbered counter-clockwise:
//
//	1 | 0
//	--+--
//	2 | 3
type Quadrant int

// Quadrants.
const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// QuadrantOf returns the quadrant of the direction vector (dx, dy). A
// vector on an axis belongs to the quadrant counter-clockwise from it.
func QuadrantOf(dx, dy float64) (Quadrant, error) {
	if dx == 0 && dy == 0 {
		return 0, fmt.Errorf("geomgraph: cannot compute the quadrant of the zero vector")
	}
	if dx >= 0 {
		if dy >= 0 {
			return NE, nil
		}
		return SE, nil
	}
	if dy >= 0 {
		return NW, nil
	}
	return SW, nil
}

// QuadrantOfPoints returns the quadrant of the direction from p0 to p1.
func QuadrantOfPoints(p0, p1 planar.Coordinate) (Quadrant, error) {
	if p0.Equals2D(p1) {
		return 0, fmt.Errorf("geomgraph: cannot compute the quadrant of the repeated point %v", p0)
	}
	return QuadrantOf(p1.X-p0.X, p1.Y-p0.Y)
}

// IsOpposite returns whether q and o are diagonally opposite.
func (q Quadrant) IsOpposite(o Quadrant) bool {
	if q == o {
		return false
	}
	return (q-o+4)%4 == 2
}

// CommonHalfPlane returns the half-plane shared by q and o, identified by
// its first quadrant counter-clockwise. Opposite quadrants have no common
// half-plane. The same quadrant is its own half-plane.
func (q Quadrant) CommonHalfPlane(o Quadrant) (Quadrant, bool) {
	if q == o {
		return q, true
	}
	if q.IsOpposite(o) {
		return 0, false
	}
	lo, hi := q, o
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == NE && hi == SE {
		return SE, true
	}
	return lo, true
}

// IsInHalfPlane returns whether q lies in the half-plane starting at
// halfPlane.
func (q Quadrant) IsInHalfPlane(halfPlane Quadrant) bool {
	if halfPlane == SE {
		return q == SE || q == SW
	}
	return q == halfPlane || q == halfPlane+1
}

// IsNorthern returns whether q is above the X axis.
func (q Quadrant) IsNorthern() bool { return q == NE || q == NW }

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}
