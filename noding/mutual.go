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
	"github.com/spatialmodel/planar/index/chain"
)

// MCIndexSegmentSetMutualIntersector finds the intersections between a
// fixed base set of segment strings and other sets. The base set is
// indexed once; Process may then be called any number of times, including
// concurrently from several goroutines, provided each call uses its own
// SegmentIntersector.
type MCIndexSegmentSetMutualIntersector struct {
	index     *chain.Index
	tolerance float64
}

// NewMCIndexSegmentSetMutualIntersector indexes baseSegStrings. Chain
// envelopes are grown by tolerance.
func NewMCIndexSegmentSetMutualIntersector(baseSegStrings []SegmentString, tolerance float64) *MCIndexSegmentSetMutualIntersector {
	m := &MCIndexSegmentSetMutualIntersector{
		index:     chain.NewIndex(tolerance),
		tolerance: tolerance,
	}
	id := 0
	for _, ss := range baseSegStrings {
		for _, mc := range chain.Build(ss.Coordinates(), ss) {
			mc.ID = id
			id++
			m.index.Insert(mc)
		}
	}
	return m
}

// Process reports to si every pair of segments, one from segStrings and
// one from the base set, whose envelopes overlap. The first string passed
// to si is from segStrings.
func (m *MCIndexSegmentSetMutualIntersector) Process(segStrings []SegmentString, si SegmentIntersector) {
	overlap := func(mc1 *chain.MonotoneChain, start1 int, mc2 *chain.MonotoneChain, start2 int) {
		si.ProcessIntersections(mc1.Context.(SegmentString), start1, mc2.Context.(SegmentString), start2)
	}
	for _, ss := range segStrings {
		for _, queryChain := range chain.Build(ss.Coordinates(), ss) {
			for _, testChain := range m.index.Query(queryChain.Bounds()) {
				queryChain.ComputeOverlaps(testChain, m.tolerance, overlap)
				if si.IsDone() {
					return
				}
			}
		}
	}
}

// SegmentIntersectionDetector detects whether any segments intersect, and
// optionally whether any intersection is proper or improper.
type SegmentIntersectionDetector struct {
	// FindProper keeps searching until a proper intersection is found and
	// prefers its location.
	FindProper bool
	// FindAllTypes keeps searching until both a proper and an improper
	// intersection are found.
	FindAllTypes bool

	li                       *algorithm.LineIntersector
	hasIntersection          bool
	hasProperIntersection    bool
	hasNonProperIntersection bool
	hasIntPt                 bool
	intPt                    planar.Coordinate
	intSegments              [4]planar.Coordinate
}

// NewSegmentIntersectionDetector returns a detector using li, or a new
// LineIntersector if li is nil.
func NewSegmentIntersectionDetector(li *algorithm.LineIntersector) *SegmentIntersectionDetector {
	if li == nil {
		li = new(algorithm.LineIntersector)
	}
	return &SegmentIntersectionDetector{li: li}
}

// HasIntersection returns whether any intersection was found.
func (d *SegmentIntersectionDetector) HasIntersection() bool { return d.hasIntersection }

// HasProperIntersection returns whether a proper intersection was found.
func (d *SegmentIntersectionDetector) HasProperIntersection() bool { return d.hasProperIntersection }

// HasNonProperIntersection returns whether an intersection that is not
// proper was found.
func (d *SegmentIntersectionDetector) HasNonProperIntersection() bool {
	return d.hasNonProperIntersection
}

// Intersection returns the location of the intersection that was kept.
func (d *SegmentIntersectionDetector) Intersection() planar.Coordinate { return d.intPt }

// IntersectionSegments returns the endpoints of the segments of the
// intersection that was kept.
func (d *SegmentIntersectionDetector) IntersectionSegments() [4]planar.Coordinate {
	return d.intSegments
}

// ProcessIntersections implements SegmentIntersector.
func (d *SegmentIntersectionDetector) ProcessIntersections(e0 SegmentString, segIndex0 int, e1 SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	pts0, pts1 := e0.Coordinates(), e1.Coordinates()
	p00, p01 := pts0[segIndex0], pts0[segIndex0+1]
	p10, p11 := pts1[segIndex1], pts1[segIndex1+1]
	d.li.ComputeIntersection(p00, p01, p10, p11)
	if !d.li.HasIntersection() {
		return
	}
	d.hasIntersection = true
	isProper := d.li.IsProper()
	if isProper {
		d.hasProperIntersection = true
	} else {
		d.hasNonProperIntersection = true
	}
	save := !(d.FindProper && !isProper)
	if !d.hasIntPt || save {
		d.intPt = d.li.Intersection(0)
		d.intSegments = [4]planar.Coordinate{p00, p01, p10, p11}
		d.hasIntPt = true
	}
}

// IsDone implements SegmentIntersector.
func (d *SegmentIntersectionDetector) IsDone() bool {
	if d.FindAllTypes {
		return d.hasProperIntersection && d.hasNonProperIntersection
	}
	if d.FindProper {
		return d.hasProperIntersection
	}
	return d.hasIntersection
}
