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
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// SegmentIntersector computes the intersections between pairs of edge
// segments and records them in the edges' intersection lists.
type SegmentIntersector struct {
	li             *algorithm.LineIntersector
	includeProper  bool
	recordIsolated bool
	bdyNodes       [2][]*Node

	hasIntersection   bool
	hasProper         bool
	hasProperInterior bool
	properPoint       planar.Coordinate

	// NumIntersections is the number of segment pairs found to intersect.
	NumIntersections int
	// NumTests is the number of segment pairs tested.
	NumTests int
}

// NewSegmentIntersector returns a SegmentIntersector using li. Proper
// intersections are added to the edges only if includeProper is true. If
// recordIsolated is true, intersecting edges are marked as not isolated.
func NewSegmentIntersector(li *algorithm.LineIntersector, includeProper, recordIsolated bool) *SegmentIntersector {
	return &SegmentIntersector{li: li, includeProper: includeProper, recordIsolated: recordIsolated}
}

// SetBoundaryNodes sets the boundary nodes of the two geometries, used to
// tell proper intersections in the interiors from those on the boundary.
func (si *SegmentIntersector) SetBoundaryNodes(bdyNodes0, bdyNodes1 []*Node) {
	si.bdyNodes = [2][]*Node{bdyNodes0, bdyNodes1}
}

// HasIntersection returns whether a non-trivial intersection was found.
func (si *SegmentIntersector) HasIntersection() bool { return si.hasIntersection }

// HasProperIntersection returns whether a proper intersection was found.
func (si *SegmentIntersector) HasProperIntersection() bool { return si.hasProper }

// HasProperInteriorIntersection returns whether a proper intersection was
// found that is not at a boundary node.
func (si *SegmentIntersector) HasProperInteriorIntersection() bool { return si.hasProperInterior }

// ProperIntersectionPoint returns the last proper intersection found.
func (si *SegmentIntersector) ProperIntersectionPoint() (planar.Coordinate, bool) {
	return si.properPoint, si.hasProper
}

// isTrivialIntersection returns whether a single intersection point is
// the shared vertex of adjacent segments of the same edge.
func (si *SegmentIntersector) isTrivialIntersection(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}
	if d := segIndex0 - segIndex1; d == 1 || d == -1 {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := len(e0.pts) - 2
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) || (segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}
	return false
}

// AddIntersections tests segment segIndex0 of e0 against segment segIndex1
// of e1, adding any intersection to both edges. e0 belongs to geometry 0
// and e1 to geometry 1 of the intersection.
func (si *SegmentIntersector) AddIntersections(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	si.NumTests++
	si.li.ComputeIntersection(e0.pts[segIndex0], e0.pts[segIndex0+1], e1.pts[segIndex1], e1.pts[segIndex1+1])
	if !si.li.HasIntersection() {
		return
	}
	if si.recordIsolated {
		e0.SetIsolated(false)
		e1.SetIsolated(false)
	}
	si.NumIntersections++
	if si.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}
	si.hasIntersection = true
	if si.includeProper || !si.li.IsProper() {
		e0.AddIntersections(si.li, segIndex0, 0)
		e1.AddIntersections(si.li, segIndex1, 1)
	}
	if si.li.IsProper() {
		si.properPoint = si.li.Intersection(0)
		si.hasProper = true
		if !si.isBoundaryPoint() {
			si.hasProperInterior = true
		}
	}
}

func (si *SegmentIntersector) isBoundaryPoint() bool {
	for _, nodes := range si.bdyNodes {
		for _, n := range nodes {
			if si.li.IsIntersection(n.Coord) {
				return true
			}
		}
	}
	return false
}
