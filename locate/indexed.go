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

package locate

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// segment is a ring segment stored in the index. Each entry owns a copy of
// its envelope.
type segment struct {
	geom.Geom
	p0, p1 planar.Coordinate
}

// IndexedPointInAreaLocator locates points in a polygonal geometry using
// an R-tree of its ring segments, so only the segments that can cross the
// horizontal ray from the point are tested. It is safe for concurrent use
// once constructed.
type IndexedPointInAreaLocator struct {
	tree   *rtree.Rtree
	bounds *geom.Bounds
}

// NewIndexedPointInAreaLocator indexes the rings of g, which must be
// polygonal.
func NewIndexedPointInAreaLocator(g geom.Geom) (*IndexedPointInAreaLocator, error) {
	switch g.(type) {
	case geom.Polygon, geom.MultiPolygon:
	default:
		return nil, fmt.Errorf("locate: indexed locator requires a polygonal geometry, have %T", g)
	}
	rings, err := planar.Linework(g)
	if err != nil {
		return nil, err
	}
	l := &IndexedPointInAreaLocator{
		tree:   rtree.NewTree(25, 50),
		bounds: geom.NewBounds(),
	}
	for _, ring := range rings {
		for i := 1; i < len(ring); i++ {
			b := planar.SegmentBounds(ring[i-1], ring[i])
			l.bounds.Extend(b)
			l.tree.Insert(&segment{Geom: b, p0: ring[i-1], p1: ring[i]})
		}
	}
	return l, nil
}

// Locate returns the location of p.
func (l *IndexedPointInAreaLocator) Locate(p planar.Coordinate) planar.Location {
	if l.bounds.Empty() || !planar.BoundsContains(l.bounds, p) {
		return planar.Exterior
	}
	ray := &geom.Bounds{
		Min: geom.Point{X: p.X, Y: p.Y},
		Max: geom.Point{X: l.bounds.Max.X, Y: p.Y},
	}
	c := algorithm.NewRayCrossingCounter(p)
	for _, item := range l.tree.SearchIntersect(ray) {
		s := item.(*segment)
		c.CountSegment(s.p0, s.p1)
		if c.IsOnSegment() {
			break
		}
	}
	return c.Location()
}
