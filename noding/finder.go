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
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// InteriorIntersectionFinderAdder finds the interior intersections of
// segments, records them as nodes on both strings and keeps a list of
// them.
type InteriorIntersectionFinderAdder struct {
	li            *algorithm.LineIntersector
	intersections []planar.Coordinate
}

// NewInteriorIntersectionFinderAdder returns a finder using li.
func NewInteriorIntersectionFinderAdder(li *algorithm.LineIntersector) *InteriorIntersectionFinderAdder {
	return &InteriorIntersectionFinderAdder{li: li}
}

// InteriorIntersections returns the interior intersection points found.
func (f *InteriorIntersectionFinderAdder) InteriorIntersections() []planar.Coordinate {
	return f.intersections
}

// ProcessIntersections implements SegmentIntersector.
func (f *InteriorIntersectionFinderAdder) ProcessIntersections(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	pts0, pts1 := e0.Coordinates(), e1.Coordinates()
	f.li.ComputeIntersection(pts0[segIndex0], pts0[segIndex0+1], pts1[segIndex1], pts1[segIndex1+1])
	if !f.li.HasIntersection() || !f.li.IsInteriorIntersection() {
		return
	}
	for i := 0; i < f.li.IntersectionNum(); i++ {
		f.intersections = append(f.intersections, f.li.Intersection(i))
	}
	e0.(*NodedSegmentString).AddIntersections(f.li, segIndex0, 0)
	e1.(*NodedSegmentString).AddIntersections(f.li, segIndex1, 1)
}

// IsDone implements SegmentIntersector.
func (f *InteriorIntersectionFinderAdder) IsDone() bool { return false }

// NodingIntersectionFinder finds intersections that show a set of segment
// strings is not fully noded: interior intersections between segments,
// and vertices of one string that touch the interior vertices of
// another. It can stop at the first one or find them all.
type NodingIntersectionFinder struct {
	// FindAllIntersections keeps the search going after the first
	// intersection.
	FindAllIntersections bool
	// CheckEndSegmentsOnly limits the search to pairs involving the first
	// or last segment of a string.
	CheckEndSegmentsOnly bool
	// InteriorIntersectionsOnly ignores vertex intersections.
	InteriorIntersectionsOnly bool
	// KeepIntersections records every intersection found.
	KeepIntersections bool

	li              *algorithm.LineIntersector
	interiorPt      planar.Coordinate
	hasIntersection bool
	intSegments     [4]planar.Coordinate
	intersections   []planar.Coordinate
	count           int
}

// NewNodingIntersectionFinder returns a finder that stops at the first
// intersection.
func NewNodingIntersectionFinder(li *algorithm.LineIntersector) *NodingIntersectionFinder {
	if li == nil {
		li = new(algorithm.LineIntersector)
	}
	return &NodingIntersectionFinder{li: li, KeepIntersections: true}
}

// NewAllIntersectionsFinder returns a finder that records every
// intersection.
func NewAllIntersectionsFinder(li *algorithm.LineIntersector) *NodingIntersectionFinder {
	f := NewNodingIntersectionFinder(li)
	f.FindAllIntersections = true
	return f
}

// NewIntersectionCounter returns a finder that counts every intersection
// without keeping them.
func NewIntersectionCounter(li *algorithm.LineIntersector) *NodingIntersectionFinder {
	f := NewAllIntersectionsFinder(li)
	f.KeepIntersections = false
	return f
}

// HasIntersection returns whether an intersection was found.
func (f *NodingIntersectionFinder) HasIntersection() bool { return f.hasIntersection }

// Intersections returns the intersections found, if KeepIntersections is
// set.
func (f *NodingIntersectionFinder) Intersections() []planar.Coordinate { return f.intersections }

// Count returns the number of intersections found.
func (f *NodingIntersectionFinder) Count() int { return f.count }

// Intersection returns the last intersection found.
func (f *NodingIntersectionFinder) Intersection() planar.Coordinate { return f.interiorPt }

// IntersectionSegments returns the endpoints of the two segments of the
// last intersection found.
func (f *NodingIntersectionFinder) IntersectionSegments() [4]planar.Coordinate { return f.intSegments }

// ProcessIntersections implements SegmentIntersector.
func (f *NodingIntersectionFinder) ProcessIntersections(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int) {
	if !f.FindAllIntersections && f.hasIntersection {
		return
	}
	sameString := e0 == e1
	if sameString && segIndex0 == segIndex1 {
		return
	}
	if f.CheckEndSegmentsOnly && !isEndSegment(e0, segIndex0) && !isEndSegment(e1, segIndex1) {
		return
	}

	pts0, pts1 := e0.Coordinates(), e1.Coordinates()
	p00, p01 := pts0[segIndex0], pts0[segIndex0+1]
	p10, p11 := pts1[segIndex1], pts1[segIndex1+1]
	isEnd00 := segIndex0 == 0
	isEnd01 := segIndex0+2 == e0.Size()
	isEnd10 := segIndex1 == 0
	isEnd11 := segIndex1+2 == e1.Size()

	f.li.ComputeIntersection(p00, p01, p10, p11)
	isInteriorInt := f.li.HasIntersection() && f.li.IsInteriorIntersection()

	isInteriorVertexInt := false
	if !f.InteriorIntersectionsOnly {
		adjacent := sameString && (segIndex1-segIndex0 <= 1 && segIndex0-segIndex1 <= 1)
		isInteriorVertexInt = !adjacent &&
			(isInteriorVertexIntersection(p00, p10, isEnd00, isEnd10) ||
				isInteriorVertexIntersection(p00, p11, isEnd00, isEnd11) ||
				isInteriorVertexIntersection(p01, p10, isEnd01, isEnd10) ||
				isInteriorVertexIntersection(p01, p11, isEnd01, isEnd11))
	}

	if isInteriorInt || isInteriorVertexInt {
		f.intSegments = [4]planar.Coordinate{p00, p01, p10, p11}
		f.interiorPt = f.li.Intersection(0)
		f.hasIntersection = true
		if f.KeepIntersections {
			f.intersections = append(f.intersections, f.interiorPt)
		}
		f.count++
	}
}

// isInteriorVertexIntersection reports whether two segment vertices
// coincide where at least one of them is not a string endpoint.
func isInteriorVertexIntersection(p0, p1 planar.Coordinate, isEnd0, isEnd1 bool) bool {
	if isEnd0 && isEnd1 {
		return false
	}
	return p0.Equals2D(p1)
}

func isEndSegment(ss SegmentString, index int) bool {
	return index == 0 || index >= ss.Size()-2
}

// IsDone implements SegmentIntersector.
func (f *NodingIntersectionFinder) IsDone() bool {
	return !f.FindAllIntersections && f.hasIntersection
}
