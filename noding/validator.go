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
	"fmt"

	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// NodingValidator checks by brute force that a set of segment strings is
// correctly noded. It is quadratic in the number of segments; prefer
// FastNodingValidator for large inputs.
type NodingValidator struct {
	li         algorithm.LineIntersector
	segStrings []SegmentString
}

// NewNodingValidator returns a validator for segStrings.
func NewNodingValidator(segStrings []SegmentString) *NodingValidator {
	return &NodingValidator{segStrings: segStrings}
}

// CheckValid returns a *planar.TopologyError describing the first problem
// found: an endpoint of one string at an interior vertex of another, an
// interior intersection between segments, or an A-B-A collapse.
func (v *NodingValidator) CheckValid() error {
	if err := v.checkEndPtVertexIntersections(); err != nil {
		return err
	}
	if err := v.checkInteriorIntersections(); err != nil {
		return err
	}
	return v.checkCollapses()
}

func (v *NodingValidator) checkCollapses() error {
	for _, ss := range v.segStrings {
		pts := ss.Coordinates()
		for i := 0; i < len(pts)-2; i++ {
			if pts[i].Equals2D(pts[i+2]) {
				return planar.NewTopologyError(
					fmt.Sprintf("found non-noded collapse %v-%v-%v", pts[i], pts[i+1], pts[i+2]), pts[i])
			}
		}
	}
	return nil
}

func (v *NodingValidator) checkInteriorIntersections() error {
	for _, ss0 := range v.segStrings {
		for _, ss1 := range v.segStrings {
			pts0, pts1 := ss0.Coordinates(), ss1.Coordinates()
			for i0 := 0; i0 < len(pts0)-1; i0++ {
				for i1 := 0; i1 < len(pts1)-1; i1++ {
					if ss0 == ss1 && i0 == i1 {
						continue
					}
					if err := v.checkSegmentPair(pts0[i0], pts0[i0+1], pts1[i1], pts1[i1+1]); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (v *NodingValidator) checkSegmentPair(p00, p01, p10, p11 planar.Coordinate) error {
	v.li.ComputeIntersection(p00, p01, p10, p11)
	if !v.li.HasIntersection() {
		return nil
	}
	if v.li.IsProper() || hasInteriorIntersection(&v.li, p00, p01) || hasInteriorIntersection(&v.li, p10, p11) {
		return planar.NewTopologyError(
			fmt.Sprintf("found non-noded intersection between %v-%v and %v-%v", p00, p01, p10, p11),
			v.li.Intersection(0))
	}
	return nil
}

// hasInteriorIntersection returns whether an intersection point of li is
// not an endpoint of p0-p1.
func hasInteriorIntersection(li *algorithm.LineIntersector, p0, p1 planar.Coordinate) bool {
	for i := 0; i < li.IntersectionNum(); i++ {
		pt := li.Intersection(i)
		if !(pt.Equals2D(p0) || pt.Equals2D(p1)) {
			return true
		}
	}
	return false
}

func (v *NodingValidator) checkEndPtVertexIntersections() error {
	for _, ss := range v.segStrings {
		pts := ss.Coordinates()
		if len(pts) == 0 {
			continue
		}
		for _, end := range []planar.Coordinate{pts[0], pts[len(pts)-1]} {
			for _, other := range v.segStrings {
				opts := other.Coordinates()
				for j := 1; j < len(opts)-1; j++ {
					if opts[j].Equals2D(end) {
						return planar.NewTopologyError(
							fmt.Sprintf("found endpoint/interior vertex intersection at index %d", j), end)
					}
				}
			}
		}
	}
	return nil
}

// FastNodingValidator checks that a set of segment strings is correctly
// noded, using a monotone chain index to find candidate segment pairs. It
// detects interior intersections between segments and vertices touching
// interior vertices of other segments. Unlike NodingValidator it does not
// report A-B-A collapses.
type FastNodingValidator struct {
	// FindAllIntersections collects every intersection instead of stopping
	// at the first one.
	FindAllIntersections bool

	li         algorithm.LineIntersector
	segStrings []SegmentString
	finder     *NodingIntersectionFinder
	isValid    bool
	err        error
}

// NewFastNodingValidator returns a validator for segStrings.
func NewFastNodingValidator(segStrings []SegmentString) *FastNodingValidator {
	return &FastNodingValidator{segStrings: segStrings, isValid: true}
}

// ComputeIntersections returns all the intersections showing that
// segStrings are not fully noded.
func ComputeIntersections(segStrings []SegmentString) []planar.Coordinate {
	v := NewFastNodingValidator(segStrings)
	v.FindAllIntersections = true
	v.IsValid()
	return v.Intersections()
}

// Intersections returns the intersections found.
func (v *FastNodingValidator) Intersections() []planar.Coordinate {
	v.execute()
	return v.finder.Intersections()
}

// IsValid returns whether the strings are correctly noded. Strings that
// could not be noded are not valid.
func (v *FastNodingValidator) IsValid() bool {
	v.execute()
	return v.isValid
}

// ErrorMessage describes the first intersection found.
func (v *FastNodingValidator) ErrorMessage() string {
	if v.IsValid() {
		return "no intersections found"
	}
	if v.err != nil {
		return v.err.Error()
	}
	s := v.finder.IntersectionSegments()
	return fmt.Sprintf("found non-noded intersection between LINESTRING (%g %g, %g %g) and LINESTRING (%g %g, %g %g)",
		s[0].X, s[0].Y, s[1].X, s[1].Y, s[2].X, s[2].Y, s[3].X, s[3].Y)
}

// CheckValid returns a *planar.TopologyError if the strings are not
// correctly noded, or the error that stopped them being noded.
func (v *FastNodingValidator) CheckValid() error {
	if v.IsValid() {
		return nil
	}
	if v.err != nil {
		return v.err
	}
	return planar.NewTopologyError(v.ErrorMessage(), v.finder.Intersection())
}

func (v *FastNodingValidator) execute() {
	if v.finder != nil {
		return
	}
	v.finder = NewNodingIntersectionFinder(&v.li)
	v.finder.FindAllIntersections = v.FindAllIntersections
	noder := NewMCIndexNoder(v.finder)
	noder.Log = nil
	if v.err = noder.ComputeNodes(v.segStrings); v.err != nil {
		v.isValid = false
		return
	}
	v.isValid = !v.finder.HasIntersection()
}
