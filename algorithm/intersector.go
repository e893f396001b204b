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

// IntersectionType classifies the result of intersecting two segments.
// Its value is also the number of intersection points.
type IntersectionType int

const (
	// NoIntersection means the segments do not intersect.
	NoIntersection IntersectionType = iota
	// PointIntersection means the segments intersect in a single point.
	PointIntersection
	// CollinearIntersection means the segments are collinear and overlap
	// in a segment, described by two intersection points.
	CollinearIntersection
)

func (t IntersectionType) String() string {
	switch t {
	case NoIntersection:
		return "NoIntersection"
	case PointIntersection:
		return "PointIntersection"
	case CollinearIntersection:
		return "CollinearIntersection"
	}
	return fmt.Sprintf("IntersectionType(%d)", int(t))
}

// LineIntersector computes the intersection of line segments and records
// the details of the most recent computation. Orientation decisions are
// made with OrientationIndex only, so the classification is exact even
// for ill-conditioned input.
//
// The zero value is ready to use. A LineIntersector is not safe for
// concurrent use.
type LineIntersector struct {
	// PrecisionModel, if non-nil and fixed, is applied to computed
	// intersection points. Points copied from the input are not rounded.
	PrecisionModel *planar.PrecisionModel

	result     IntersectionType
	inputLines [2][2]planar.Coordinate
	intPt      [2]planar.Coordinate
	isProper   bool

	intLineIndex [2][2]int
	indexed      bool
}

// ComputePointIntersection computes whether p lies on the segment p1-p2.
// The intersection is proper if p is not one of the endpoints.
func (li *LineIntersector) ComputePointIntersection(p, p1, p2 planar.Coordinate) {
	li.isProper = false
	li.indexed = false
	if envelopeContains(p1, p2, p) &&
		OrientationIndex(p1, p2, p) == Collinear &&
		OrientationIndex(p2, p1, p) == Collinear {
		li.isProper = !(p.Equals2D(p1) || p.Equals2D(p2))
		li.intPt[0] = p
		li.result = PointIntersection
		return
	}
	li.result = NoIntersection
}

// ComputeIntersection computes the intersection of the segments p1-p2 and
// q1-q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 planar.Coordinate) IntersectionType {
	li.inputLines[0] = [2]planar.Coordinate{p1, p2}
	li.inputLines[1] = [2]planar.Coordinate{q1, q2}
	li.indexed = false
	li.result = li.computeIntersect(p1, p2, q1, q2)
	return li.result
}

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 planar.Coordinate) IntersectionType {
	li.isProper = false

	if !envelopesIntersect(p1, p2, q1, q2) {
		return NoIntersection
	}

	// Both q endpoints on the same side of p means no intersection.
	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}
	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return li.computeCollinearIntersection(p1, p2, q1, q2)
	}

	// At least one endpoint lies on the other segment. The endpoint is
	// copied exactly rather than computed, since computation may not
	// reproduce it.
	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		switch {
		case p1.Equals2D(q1) || p1.Equals2D(q2):
			li.intPt[0] = p1
		case p2.Equals2D(q1) || p2.Equals2D(q2):
			li.intPt[0] = p2
		case pq1 == 0:
			li.intPt[0] = q1
		case pq2 == 0:
			li.intPt[0] = q2
		case qp1 == 0:
			li.intPt[0] = p1
		case qp2 == 0:
			li.intPt[0] = p2
		}
		return PointIntersection
	}

	li.isProper = true
	li.intPt[0] = li.intersection(p1, p2, q1, q2)
	return PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 planar.Coordinate) IntersectionType {
	p1q1p2 := envelopeContains(p1, p2, q1)
	p1q2p2 := envelopeContains(p1, p2, q2)
	q1p1q2 := envelopeContains(q1, q2, p1)
	q1p2q2 := envelopeContains(q1, q2, p2)

	set := func(a, b planar.Coordinate) {
		li.intPt[0], li.intPt[1] = a, b
	}
	switch {
	case p1q1p2 && p1q2p2:
		set(q1, q2)
		return CollinearIntersection
	case q1p1q2 && q1p2q2:
		set(p1, p2)
		return CollinearIntersection
	case p1q1p2 && q1p1q2:
		set(q1, p1)
		if q1.Equals2D(p1) && !p1q2p2 && !q1p2q2 {
			return PointIntersection
		}
		return CollinearIntersection
	case p1q1p2 && q1p2q2:
		set(q1, p2)
		if q1.Equals2D(p2) && !p1q2p2 && !q1p1q2 {
			return PointIntersection
		}
		return CollinearIntersection
	case p1q2p2 && q1p1q2:
		set(q2, p1)
		if q2.Equals2D(p1) && !p1q1p2 && !q1p2q2 {
			return PointIntersection
		}
		return CollinearIntersection
	case p1q2p2 && q1p2q2:
		set(q2, p2)
		if q2.Equals2D(p2) && !p1q1p2 && !q1p1q2 {
			return PointIntersection
		}
		return CollinearIntersection
	}
	return NoIntersection
}

// intersection computes the proper intersection point of two segments.
// Floating point error can put the computed point outside the segments,
// in which case the input endpoint nearest to the other segment is used.
func (li *LineIntersector) intersection(p1, p2, q1, q2 planar.Coordinate) planar.Coordinate {
	pt, err := normalizedIntersection(p1, p2, q1, q2)
	if err != nil || !li.isInSegmentEnvelopes(pt) {
		pt = nearestEndpoint(p1, p2, q1, q2)
	}
	if !li.PrecisionModel.IsFloating() {
		pt = li.PrecisionModel.MakePrecise(pt)
	}
	return pt
}

func (li *LineIntersector) isInSegmentEnvelopes(pt planar.Coordinate) bool {
	return envelopeContains(li.inputLines[0][0], li.inputLines[0][1], pt) &&
		envelopeContains(li.inputLines[1][0], li.inputLines[1][1], pt)
}

// nearestEndpoint returns the endpoint of one segment that is closest to
// the other segment.
func nearestEndpoint(p1, p2, q1, q2 planar.Coordinate) planar.Coordinate {
	nearest := p1
	minDist := PointToSegmentDistance(p1, q1, q2)
	if d := PointToSegmentDistance(p2, q1, q2); d < minDist {
		minDist, nearest = d, p2
	}
	if d := PointToSegmentDistance(q1, p1, p2); d < minDist {
		minDist, nearest = d, q1
	}
	if d := PointToSegmentDistance(q2, p1, p2); d < minDist {
		nearest = q2
	}
	return nearest
}

// HasIntersection returns whether the last computation found an
// intersection.
func (li *LineIntersector) HasIntersection() bool { return li.result != NoIntersection }

// Result returns the classification of the last computation.
func (li *LineIntersector) Result() IntersectionType { return li.result }

// IntersectionNum returns the number of intersection points found: 0, 1
// or 2.
func (li *LineIntersector) IntersectionNum() int { return int(li.result) }

// Intersection returns the intIndex'th intersection point.
func (li *LineIntersector) Intersection(intIndex int) planar.Coordinate {
	return li.intPt[intIndex]
}

// IsProper returns whether the intersection is a single point in the
// interior of both segments. Collinear intersections are never proper.
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProper
}

// IsIntersection returns whether pt is one of the intersection points.
func (li *LineIntersector) IsIntersection(pt planar.Coordinate) bool {
	for i := 0; i < int(li.result); i++ {
		if li.intPt[i].Equals2D(pt) {
			return true
		}
	}
	return false
}

// IsInteriorIntersection returns whether some intersection point is not
// an endpoint of one of the input segments.
func (li *LineIntersector) IsInteriorIntersection() bool {
	return li.IsInteriorIntersectionOf(0) || li.IsInteriorIntersectionOf(1)
}

// IsInteriorIntersectionOf returns whether some intersection point lies
// in the interior of input segment inputLineIndex.
func (li *LineIntersector) IsInteriorIntersectionOf(inputLineIndex int) bool {
	for i := 0; i < int(li.result); i++ {
		if !(li.intPt[i].Equals2D(li.inputLines[inputLineIndex][0]) ||
			li.intPt[i].Equals2D(li.inputLines[inputLineIndex][1])) {
			return true
		}
	}
	return false
}

// InputLine returns an endpoint of one of the segments of the last
// ComputeIntersection call.
func (li *LineIntersector) InputLine(segmentIndex, ptIndex int) planar.Coordinate {
	return li.inputLines[segmentIndex][ptIndex]
}

// EdgeDistance returns the edge distance of intersection point intIndex
// along input segment segmentIndex.
func (li *LineIntersector) EdgeDistance(segmentIndex, intIndex int) float64 {
	return ComputeEdgeDistance(li.intPt[intIndex],
		li.inputLines[segmentIndex][0], li.inputLines[segmentIndex][1])
}

// IntersectionAlongSegment returns the intIndex'th intersection point in
// the direction of input segment segmentIndex.
func (li *LineIntersector) IntersectionAlongSegment(segmentIndex, intIndex int) planar.Coordinate {
	return li.intPt[li.IndexAlongSegment(segmentIndex, intIndex)]
}

// IndexAlongSegment returns the index of the intIndex'th intersection
// point in the direction of input segment segmentIndex.
func (li *LineIntersector) IndexAlongSegment(segmentIndex, intIndex int) int {
	if !li.indexed {
		li.computeIntLineIndex(0)
		li.computeIntLineIndex(1)
		li.indexed = true
	}
	return li.intLineIndex[segmentIndex][intIndex]
}

func (li *LineIntersector) computeIntLineIndex(segmentIndex int) {
	if li.result != CollinearIntersection {
		li.intLineIndex[segmentIndex] = [2]int{0, 1}
		return
	}
	if li.EdgeDistance(segmentIndex, 0) <= li.EdgeDistance(segmentIndex, 1) {
		li.intLineIndex[segmentIndex] = [2]int{0, 1}
	} else {
		li.intLineIndex[segmentIndex] = [2]int{1, 0}
	}
}

func (li *LineIntersector) String() string {
	s := fmt.Sprintf("%v_%v %v_%v : ", li.inputLines[0][0], li.inputLines[0][1],
		li.inputLines[1][0], li.inputLines[1][1])
	switch li.result {
	case NoIntersection:
		s += "no intersection"
	case PointIntersection:
		s += "point " + li.intPt[0].String()
	case CollinearIntersection:
		s += "collinear " + li.intPt[0].String() + " " + li.intPt[1].String()
	}
	if li.isProper {
		s += " proper"
	}
	return s
}

// ComputeEdgeDistance returns a distance-like value for p along the
// segment p0-p1. The value is measured along the axis in which the
// segment has the larger extent, so it is exact for points computed on
// the segment and preserves their order. It is zero only if p equals p0.
func ComputeEdgeDistance(p, p0, p1 planar.Coordinate) float64 {
	dx := math.Abs(p1.X - p0.X)
	dy := math.Abs(p1.Y - p0.Y)

	var dist float64
	switch {
	case p.Equals2D(p0):
		return 0
	case p.Equals2D(p1):
		dist = math.Max(dx, dy)
	default:
		pdx := math.Abs(p.X - p0.X)
		pdy := math.Abs(p.Y - p0.Y)
		if dx > dy {
			dist = pdx
		} else {
			dist = pdy
		}
		// Points off the segment can be displaced along the other axis.
		if dist == 0 {
			dist = math.Max(pdx, pdy)
		}
	}
	if dist == 0 {
		panic(fmt.Sprintf("algorithm: bad edge distance for %v on %v-%v", p, p0, p1))
	}
	return dist
}

func envelopeContains(p1, p2, q planar.Coordinate) bool {
	return q.X >= math.Min(p1.X, p2.X) && q.X <= math.Max(p1.X, p2.X) &&
		q.Y >= math.Min(p1.Y, p2.Y) && q.Y <= math.Max(p1.Y, p2.Y)
}

func envelopesIntersect(p1, p2, q1, q2 planar.Coordinate) bool {
	return math.Min(q1.X, q2.X) <= math.Max(p1.X, p2.X) &&
		math.Max(q1.X, q2.X) >= math.Min(p1.X, p2.X) &&
		math.Min(q1.Y, q2.Y) <= math.Max(p1.Y, p2.Y) &&
		math.Max(q1.Y, q2.Y) >= math.Min(p1.Y, p2.Y)
}
