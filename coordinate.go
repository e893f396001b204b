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

// Package planar holds the value types shared by the planar topology engine:
// coordinates, topological locations and positions, dimensions, the DE-9IM
// intersection matrix, precision models and boundary node rules.
//
// Geometries themselves are github.com/ctessum/geom values; the helpers in
// this package convert them into coordinate sequences.
package planar

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Coordinate is a location in the plane with optional Z and M ordinates.
// Missing ordinates are represented by NaN.
type Coordinate struct {
	X, Y, Z, M float64
}

// XY returns a two-dimensional coordinate.
func XY(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN(), M: math.NaN()}
}

// XYZ returns a three-dimensional coordinate.
func XYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, M: math.NaN()}
}

// FromPoint converts a geom.Point into a two-dimensional coordinate.
func FromPoint(p geom.Point) Coordinate {
	return XY(p.X, p.Y)
}

// Point converts c into a geom.Point, dropping Z and M.
func (c Coordinate) Point() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// Equals2D returns whether c and o have the same X and Y values.
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equals is the same as Equals2D. Z and M never take part in topology.
func (c Coordinate) Equals(o Coordinate) bool {
	return c.Equals2D(o)
}

// Equals3D returns whether c and o have the same X, Y and Z values,
// where two missing Z values are considered equal.
func (c Coordinate) Equals3D(o Coordinate) bool {
	return c.Equals2D(o) && (c.Z == o.Z || (math.IsNaN(c.Z) && math.IsNaN(o.Z)))
}

// Distance returns the planar distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// Compare orders coordinates by X and then by Y. It returns -1, 0 or 1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	}
	return 0
}

// IsValid returns false if X or Y is NaN or infinite.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0)
}

func (c Coordinate) String() string {
	if math.IsNaN(c.Z) {
		return fmt.Sprintf("(%g, %g)", c.X, c.Y)
	}
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
}

// Bounds returns the envelope of a sequence of coordinates.
func Bounds(pts []Coordinate) *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range pts {
		b.Extend(geom.NewBoundsPoint(p.Point()))
	}
	return b
}

// SegmentBounds returns the envelope of the segment p0-p1.
func SegmentBounds(p0, p1 Coordinate) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: geom.Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// BoundsContains returns whether p lies inside or on the boundary of b.
func BoundsContains(b *geom.Bounds, p Coordinate) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ExpandBy returns a copy of b grown by distance on every side.
func ExpandBy(b *geom.Bounds, distance float64) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: b.Min.X - distance, Y: b.Min.Y - distance},
		Max: geom.Point{X: b.Max.X + distance, Y: b.Max.Y + distance},
	}
}
