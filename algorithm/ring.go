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

package algorithm

import "github.com/spatialmodel/planar"

// RayCrossingCounter counts the crossings of a horizontal ray running from
// a test point in the positive X direction with a set of segments. The
// segments can be supplied in any order, which lets indexed locators feed
// only the candidates whose envelopes touch the ray.
type RayCrossingCounter struct {
	p             planar.Coordinate
	crossingCount int
	onSegment     bool
}

// NewRayCrossingCounter returns a counter for the test point p.
func NewRayCrossingCounter(p planar.Coordinate) *RayCrossingCounter {
	return &RayCrossingCounter{p: p}
}

// CountSegment counts the segment p1-p2.
func (c *RayCrossingCounter) CountSegment(p1, p2 planar.Coordinate) {
	p := c.p
	if p1.X < p.X && p2.X < p.X {
		return
	}
	if p.Equals2D(p2) {
		c.onSegment = true
		return
	}

	// Horizontal segments are only checked for containing the point.
	if p1.Y == p.Y && p2.Y == p.Y {
		minX, maxX := p1.X, p2.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if p.X >= minX && p.X <= maxX {
			c.onSegment = true
		}
		return
	}

	// An upward segment includes its start and excludes its end; a
	// downward segment excludes its start and includes its end.
	if (p1.Y > p.Y && p2.Y <= p.Y) || (p2.Y > p.Y && p1.Y <= p.Y) {
		x1, y1 := p1.X-p.X, p1.Y-p.Y
		x2, y2 := p2.X-p.X, p2.Y-p.Y
		sign := SignOfDet2x2(x1, y1, x2, y2)
		if sign == 0 {
			c.onSegment = true
			return
		}
		if y2 < y1 {
			sign = -sign
		}
		if sign > 0 {
			c.crossingCount++
		}
	}
}

// IsOnSegment reports whether the point lies on one of the counted
// segments. Once true, further counting cannot change the result.
func (c *RayCrossingCounter) IsOnSegment() bool { return c.onSegment }

// Location returns the location of the point relative to the ring formed
// by the counted segments.
func (c *RayCrossingCounter) Location() planar.Location {
	if c.onSegment {
		return planar.Boundary
	}
	if c.crossingCount%2 == 1 {
		return planar.Interior
	}
	return planar.Exterior
}

// LocatePointInRing returns the location of p relative to the closed ring.
func LocatePointInRing(p planar.Coordinate, ring []planar.Coordinate) planar.Location {
	c := NewRayCrossingCounter(p)
	for i := 1; i < len(ring); i++ {
		c.CountSegment(ring[i], ring[i-1])
		if c.IsOnSegment() {
			break
		}
	}
	return c.Location()
}

// IsPointInRing returns whether p lies strictly inside the ring. Points on
// the ring itself are not inside.
func IsPointInRing(p planar.Coordinate, ring []planar.Coordinate) bool {
	return LocatePointInRing(p, ring) == planar.Interior
}

// IsOnLine returns whether p lies on one of the segments of line.
func IsOnLine(p planar.Coordinate, line []planar.Coordinate) bool {
	var li LineIntersector
	for i := 1; i < len(line); i++ {
		li.ComputePointIntersection(p, line[i-1], line[i])
		if li.HasIntersection() {
			return true
		}
	}
	return false
}
