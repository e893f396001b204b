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

// Package locate classifies points as lying in the interior, on the
// boundary or in the exterior of a geometry.
package locate

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// A PointOnGeometryLocator returns the location of a point relative to a
// fixed geometry.
type PointOnGeometryLocator interface {
	Locate(p planar.Coordinate) planar.Location
}

// PointLocator computes the location of points relative to arbitrary
// geometries. Boundaries of multi-component geometries follow Rule, so a
// point shared by the boundaries of several components lies on the
// boundary of the whole only if the rule says so. The zero value uses the
// mod-2 rule.
type PointLocator struct {
	Rule planar.BoundaryNodeRule

	// Log receives a warning for each geometry of an unsupported type,
	// which is treated as empty. A nil Log means the standard logger.
	Log logrus.FieldLogger
}

func (pl *PointLocator) log() logrus.FieldLogger {
	if pl.Log == nil {
		return logrus.StandardLogger()
	}
	return pl.Log
}

// Intersects returns whether p lies in the interior or on the boundary of
// g.
func (pl *PointLocator) Intersects(p planar.Coordinate, g geom.Geom) bool {
	return pl.Locate(p, g) != planar.Exterior
}

// Locate returns the location of p relative to g.
func (pl *PointLocator) Locate(p planar.Coordinate, g geom.Geom) planar.Location {
	if planar.IsEmpty(g) {
		return planar.Exterior
	}
	switch t := g.(type) {
	case geom.LineString:
		return locateOnLineString(p, t)
	case geom.Polygon:
		return LocateInPolygon(p, t)
	}

	s := locationSummary{log: pl.log()}
	s.compute(p, g)
	rule := pl.Rule
	if rule == nil {
		rule = planar.Mod2
	}
	if rule.IsInBoundary(s.numBoundaries) {
		return planar.Boundary
	}
	if s.numBoundaries > 0 || s.isIn {
		return planar.Interior
	}
	return planar.Exterior
}

// locationSummary accumulates component locations of a collection.
type locationSummary struct {
	isIn          bool
	numBoundaries int
	log           logrus.FieldLogger
}

func (s *locationSummary) update(loc planar.Location) {
	switch loc {
	case planar.Interior:
		s.isIn = true
	case planar.Boundary:
		s.numBoundaries++
	}
}

func (s *locationSummary) compute(p planar.Coordinate, g geom.Geom) {
	switch t := g.(type) {
	case geom.Point:
		s.update(locateOnPoint(p, t))
	case *geom.Point:
		s.update(locateOnPoint(p, *t))
	case geom.MultiPoint:
		for _, pt := range t {
			s.update(locateOnPoint(p, pt))
		}
	case geom.LineString:
		s.update(locateOnLineString(p, t))
	case geom.MultiLineString:
		for _, l := range t {
			s.update(locateOnLineString(p, l))
		}
	case geom.Polygon:
		s.update(LocateInPolygon(p, t))
	case geom.MultiPolygon:
		for _, poly := range t {
			s.update(LocateInPolygon(p, poly))
		}
	case geom.GeometryCollection:
		for _, gg := range t {
			s.compute(p, gg)
		}
	default:
		s.log.WithField("type", fmt.Sprintf("%T", g)).Warn("locate: ignoring unsupported geometry type")
	}
}

func locateOnPoint(p planar.Coordinate, pt geom.Point) planar.Location {
	if p.Equals2D(planar.FromPoint(pt)) {
		return planar.Interior
	}
	return planar.Exterior
}

func locateOnLineString(p planar.Coordinate, l geom.LineString) planar.Location {
	if len(l) == 0 || !planar.BoundsContains(l.Bounds(), p) {
		return planar.Exterior
	}
	pts := planar.Coordinates(l)
	first, last := pts[0], pts[len(pts)-1]
	if !first.Equals2D(last) && (p.Equals2D(first) || p.Equals2D(last)) {
		return planar.Boundary
	}
	if algorithm.IsOnLine(p, pts) {
		return planar.Interior
	}
	return planar.Exterior
}

func locateInRing(p planar.Coordinate, ring []geom.Point) planar.Location {
	if len(ring) == 0 {
		return planar.Exterior
	}
	pts := planar.RingCoordinates(ring)
	if !planar.BoundsContains(planar.Bounds(pts), p) {
		return planar.Exterior
	}
	return algorithm.LocatePointInRing(p, pts)
}

// LocateInPolygon returns the location of p relative to the polygon. The
// first ring is the shell and the rest are holes.
func LocateInPolygon(p planar.Coordinate, poly geom.Polygon) planar.Location {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return planar.Exterior
	}
	switch locateInRing(p, poly[0]) {
	case planar.Exterior:
		return planar.Exterior
	case planar.Boundary:
		return planar.Boundary
	}
	for _, hole := range poly[1:] {
		switch locateInRing(p, hole) {
		case planar.Interior:
			return planar.Exterior
		case planar.Boundary:
			return planar.Boundary
		}
	}
	return planar.Interior
}

// LocateInArea returns the location of p relative to the polygonal
// components of g. Lines and points are ignored.
func LocateInArea(p planar.Coordinate, g geom.Geom) planar.Location {
	switch t := g.(type) {
	case geom.Polygon:
		return LocateInPolygon(p, t)
	case geom.MultiPolygon:
		for _, poly := range t {
			if loc := LocateInPolygon(p, poly); loc != planar.Exterior {
				return loc
			}
		}
	case geom.GeometryCollection:
		for _, gg := range t {
			if loc := LocateInArea(p, gg); loc != planar.Exterior {
				return loc
			}
		}
	}
	return planar.Exterior
}

// SimplePointInAreaLocator locates points in a polygonal geometry by
// testing every ring. It suits geometries with few vertices or one-off
// queries.
type SimplePointInAreaLocator struct {
	g geom.Geom
}

// NewSimplePointInAreaLocator returns a locator for the polygonal
// components of g.
func NewSimplePointInAreaLocator(g geom.Geom) *SimplePointInAreaLocator {
	return &SimplePointInAreaLocator{g: g}
}

// Locate returns the location of p.
func (l *SimplePointInAreaLocator) Locate(p planar.Coordinate) planar.Location {
	return LocateInArea(p, l.g)
}
