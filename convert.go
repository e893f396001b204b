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

	"github.com/ctessum/geom"
)

// Coordinates converts a path of geom.Points into coordinates.
func Coordinates(pts []geom.Point) []Coordinate {
	c := make([]Coordinate, len(pts))
	for i, p := range pts {
		c[i] = FromPoint(p)
	}
	return c
}

// RingCoordinates converts a polygon ring into coordinates, closing it if
// its last point does not repeat its first.
func RingCoordinates(ring []geom.Point) []Coordinate {
	c := Coordinates(ring)
	if len(c) > 0 && !c[0].Equals2D(c[len(c)-1]) {
		c = append(c, c[0])
	}
	return c
}

// Points converts coordinates into a geom.LineString.
func Points(c []Coordinate) geom.LineString {
	l := make(geom.LineString, len(c))
	for i, p := range c {
		l[i] = p.Point()
	}
	return l
}

// RemoveRepeatedPoints returns c without consecutive duplicate
// coordinates. c itself is returned if it has no repeated points.
func RemoveRepeatedPoints(c []Coordinate) []Coordinate {
	repeated := false
	for i := 1; i < len(c); i++ {
		if c[i-1].Equals2D(c[i]) {
			repeated = true
			break
		}
	}
	if !repeated {
		return c
	}
	o := make([]Coordinate, 0, len(c))
	for i, p := range c {
		if i > 0 && p.Equals2D(o[len(o)-1]) {
			continue
		}
		o = append(o, p)
	}
	return o
}

// Reverse returns a reversed copy of c.
func Reverse(c []Coordinate) []Coordinate {
	o := make([]Coordinate, len(c))
	for i, p := range c {
		o[len(c)-1-i] = p
	}
	return o
}

// IsEmpty returns whether g contains no coordinates.
func IsEmpty(g geom.Geom) bool {
	switch t := g.(type) {
	case nil:
		return true
	case geom.Point:
		return false
	case *geom.Point:
		return t == nil
	case geom.MultiPoint:
		return len(t) == 0
	case geom.LineString:
		return len(t) == 0
	case geom.MultiLineString:
		for _, l := range t {
			if len(l) > 0 {
				return false
			}
		}
		return true
	case geom.Polygon:
		return len(t) == 0 || len(t[0]) == 0
	case geom.MultiPolygon:
		for _, p := range t {
			if !IsEmpty(p) {
				return false
			}
		}
		return true
	case geom.GeometryCollection:
		for _, gg := range t {
			if !IsEmpty(gg) {
				return false
			}
		}
		return true
	}
	return false
}

// Linework returns the coordinate sequences of every linear component of
// g: linestrings as they are, polygon rings closed. Points contribute
// nothing.
func Linework(g geom.Geom) ([][]Coordinate, error) {
	var o [][]Coordinate
	switch t := g.(type) {
	case geom.Point, *geom.Point, geom.MultiPoint:
	case geom.LineString:
		if len(t) > 0 {
			o = append(o, Coordinates(t))
		}
	case geom.MultiLineString:
		for _, l := range t {
			if len(l) > 0 {
				o = append(o, Coordinates(l))
			}
		}
	case geom.Polygon:
		for _, r := range t {
			if len(r) > 0 {
				o = append(o, RingCoordinates(r))
			}
		}
	case geom.MultiPolygon:
		for _, p := range t {
			for _, r := range p {
				if len(r) > 0 {
					o = append(o, RingCoordinates(r))
				}
			}
		}
	case geom.GeometryCollection:
		for _, gg := range t {
			l, err := Linework(gg)
			if err != nil {
				return nil, err
			}
			o = append(o, l...)
		}
	default:
		return nil, fmt.Errorf("planar: unsupported geometry type %T", g)
	}
	return o, nil
}
