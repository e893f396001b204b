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

import (
	"fmt"
	"math"

	"github.com/spatialmodel/planar"
)

// NotRepresentableError is returned when a homogeneous coordinate
// computation produces a point that cannot be represented, usually because
// the input lines are parallel or nearly so.
type NotRepresentableError struct {
	P1, P2, Q1, Q2 planar.Coordinate
}

func (e *NotRepresentableError) Error() string {
	return fmt.Sprintf("algorithm: intersection of %v-%v and %v-%v is not representable", e.P1, e.P2, e.Q1, e.Q2)
}

// HCoordinateIntersection computes the intersection point of the lines
// through p1-p2 and q1-q2 using homogeneous coordinates. The computation
// is not numerically stable; inputs should be translated close to the
// origin first.
func HCoordinateIntersection(p1, p2, q1, q2 planar.Coordinate) (planar.Coordinate, error) {
	px := p1.Y - p2.Y
	py := p2.X - p1.X
	pw := p1.X*p2.Y - p2.X*p1.Y

	qx := q1.Y - q2.Y
	qy := q2.X - q1.X
	qw := q1.X*q2.Y - q2.X*q1.Y

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	xInt := x / w
	yInt := y / w
	if math.IsNaN(xInt) || math.IsNaN(yInt) || math.IsInf(xInt, 0) || math.IsInf(yInt, 0) {
		return planar.Coordinate{}, &NotRepresentableError{P1: p1, P2: p2, Q1: q1, Q2: q2}
	}
	return planar.XY(xInt, yInt), nil
}

// normalizedIntersection translates the segments so that the centre of
// the intersection of their envelopes lies at the origin, which removes
// common significant digits before the homogeneous computation.
func normalizedIntersection(p1, p2, q1, q2 planar.Coordinate) (planar.Coordinate, error) {
	minX := math.Max(math.Min(p1.X, p2.X), math.Min(q1.X, q2.X))
	maxX := math.Min(math.Max(p1.X, p2.X), math.Max(q1.X, q2.X))
	minY := math.Max(math.Min(p1.Y, p2.Y), math.Min(q1.Y, q2.Y))
	maxY := math.Min(math.Max(p1.Y, p2.Y), math.Max(q1.Y, q2.Y))
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	shift := func(c planar.Coordinate) planar.Coordinate {
		return planar.XY(c.X-midX, c.Y-midY)
	}
	c, err := HCoordinateIntersection(shift(p1), shift(p2), shift(q1), shift(q2))
	if err != nil {
		return c, err
	}
	c.X += midX
	c.Y += midY
	return c, nil
}
