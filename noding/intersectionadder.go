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
	"github.com/spatialmodel/planar/algorithm"
)

// SegmentIntersector processes pairs of segments found by a noder or an
// intersection search.
type SegmentIntersector interface {
	// ProcessIntersections is called with segment segIndex0 of e0 and
	// segment segIndex1 of e1.
	ProcessIntersections(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int)
	// IsDone reports whether the search can stop early.
	IsDone() bool
}

// IntersectionAdder computes the intersections between segments and adds
// them as nodes to both NodedSegmentStrings. Intersections that are
// trivially implied by the structure of a string, such as the shared
// vertex of adjacent segments, are not added.
type IntersectionAdder struct {
	li *algorithm.LineIntersector

	hasIntersection          bool
	hasProper                bool
	hasProperInterior        bool
	hasInterior              bool
	NumIntersections         int
	NumInteriorIntersections int
	NumProperIntersections   int
	NumTests                 int
}

// NewIntersectionAdder returns an adder that uses li, or a new
// LineIntersector if li is nil.
func NewIntersectionAdder(li *algorithm.LineIntersector) *IntersectionAdder {
	if li == nil {
		li = new(algorithm.LineIntersector)
	}
	return &IntersectionAdder{li: li}
}

// LineIntersector returns the intersector used by a.
func (a *IntersectionAdder) LineIntersector() *algorithm.LineIntersector { return a.li }

// HasIntersection returns whether a non-trivial intersection was found.
func (a *IntersectionAdder) HasIntersection() bool { return a.hasIntersection }

// HasProperIntersection returns whether a proper intersection was found.
func (a *IntersectionAdder) HasProperIntersection() bool { return a.hasProper }

// HasProperInteriorIntersection returns whether a proper intersection was
// found that lies in the interior of both strings.
func (a *IntersectionAdder) HasProperInteriorIntersection() bool { return a.hasProperInterior }

// HasInteriorIntersection returns whether an intersection was found that is
// not at an endpoint of one of the segments.
func (a *IntersectionAdder) HasInteriorIntersection() bool { return a.hasInterior }

// isTrivialIntersection reports whether the intersection is just the
// shared vertex of adjacent segments of one string, including the first
// and last segments of a closed string.
func (a *IntersectionAdder) isTrivialIntersection(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int) bool {
	if e0 != e1 || a.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.Size() - 2
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) || (segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i1, i2 int) bool {
	return i1-i2 == 1 || i2-i1 == 1
}

// ProcessIntersections implements SegmentIntersector. Both strings must be
// NodedSegmentStrings.
func (a *IntersectionAdder) ProcessIntersections(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	a.NumTests++
	pts0, pts1 := e0.Coordinates(), e1.Coordinates()
	a.li.ComputeIntersection(pts0[segIndex0], pts0[segIndex0+1], pts1[segIndex1], pts1[segIndex1+1])
	if !a.li.HasIntersection() {
		return
	}
	a.NumIntersections++
	if a.li.IsInteriorIntersection() {
		a.NumInteriorIntersections++
		a.hasInterior = true
	}
	if a.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}
	a.hasIntersection = true
	e0.(*NodedSegmentString).AddIntersections(a.li, segIndex0, 0)
	e1.(*NodedSegmentString).AddIntersections(a.li, segIndex1, 1)
	if a.li.IsProper() {
		a.NumProperIntersections++
		a.hasProper = true
		a.hasProperInterior = true
	}
}

// IsDone implements SegmentIntersector. All intersections are always
// processed.
func (a *IntersectionAdder) IsDone() bool { return false }
