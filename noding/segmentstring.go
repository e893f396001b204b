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

// Package noding computes the nodes of a set of segment strings: it finds
// every intersection between their segments, inserts the intersection
// points as nodes and splits the strings at the nodes, so that the
// resulting substrings only meet at their endpoints.
//
// Noders run in three stages. ComputeNodes searches segment pairs (by
// brute force or through a monotone chain index) and records nodes on
// each NodedSegmentString. NodedSubstrings then splits every string at its
// nodes. Validators re-check a noded set for intersections that were
// missed.
package noding

import (
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// SegmentString is a sequence of coordinates forming a chain of segments,
// together with an opaque data value, typically the parent edge.
type SegmentString interface {
	Coordinates() []planar.Coordinate
	Data() interface{}
	Size() int
	IsClosed() bool
}

// BasicSegmentString is a SegmentString that does not record nodes.
type BasicSegmentString struct {
	pts  []planar.Coordinate
	data interface{}
}

// NewBasicSegmentString returns a segment string over pts.
func NewBasicSegmentString(pts []planar.Coordinate, data interface{}) *BasicSegmentString {
	return &BasicSegmentString{pts: pts, data: data}
}

// Coordinates returns the vertices of s.
func (s *BasicSegmentString) Coordinates() []planar.Coordinate { return s.pts }

// Data returns the data value of s.
func (s *BasicSegmentString) Data() interface{} { return s.data }

// Size returns the number of vertices of s.
func (s *BasicSegmentString) Size() int { return len(s.pts) }

// IsClosed returns whether the first and last vertices of s are equal.
func (s *BasicSegmentString) IsClosed() bool { return isClosed(s.pts) }

func isClosed(pts []planar.Coordinate) bool {
	return len(pts) > 0 && pts[0].Equals2D(pts[len(pts)-1])
}

// NodedSegmentString is a SegmentString that records the nodes added to
// it during noding.
type NodedSegmentString struct {
	pts      []planar.Coordinate
	data     interface{}
	nodeList *SegmentNodeList
}

// NewNodedSegmentString returns a segment string over pts with no nodes.
func NewNodedSegmentString(pts []planar.Coordinate, data interface{}) *NodedSegmentString {
	s := &NodedSegmentString{pts: pts, data: data}
	s.nodeList = newSegmentNodeList(s)
	return s
}

// Coordinates returns the vertices of s.
func (s *NodedSegmentString) Coordinates() []planar.Coordinate { return s.pts }

// Coordinate returns vertex i.
func (s *NodedSegmentString) Coordinate(i int) planar.Coordinate { return s.pts[i] }

// Data returns the data value of s.
func (s *NodedSegmentString) Data() interface{} { return s.data }

// SetData replaces the data value of s.
func (s *NodedSegmentString) SetData(data interface{}) { s.data = data }

// Size returns the number of vertices of s.
func (s *NodedSegmentString) Size() int { return len(s.pts) }

// IsClosed returns whether the first and last vertices of s are equal.
func (s *NodedSegmentString) IsClosed() bool { return isClosed(s.pts) }

// NodeList returns the nodes recorded on s.
func (s *NodedSegmentString) NodeList() *SegmentNodeList { return s.nodeList }

// SegmentOctant returns the octant of segment index. The last vertex has
// no segment and reports -1; zero-length segments report 0.
func (s *NodedSegmentString) SegmentOctant(index int) int {
	if index == len(s.pts)-1 {
		return -1
	}
	return safeOctant(s.pts[index], s.pts[index+1])
}

func safeOctant(p0, p1 planar.Coordinate) int {
	if p0.Equals2D(p1) {
		return 0
	}
	o, err := OctantOfPoints(p0, p1)
	if err != nil {
		panic(err)
	}
	return o
}

// AddIntersections adds the intersection points computed by li as nodes
// on segment segmentIndex. geomIndex is the index of s among the two
// segments li intersected.
func (s *NodedSegmentString) AddIntersections(li *algorithm.LineIntersector, segmentIndex, geomIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		s.AddIntersection(li.Intersection(i), segmentIndex)
	}
}

// AddIntersection adds intPt as a node on segment segmentIndex.
func (s *NodedSegmentString) AddIntersection(intPt planar.Coordinate, segmentIndex int) {
	s.AddIntersectionNode(intPt, segmentIndex)
}

// AddIntersectionNode adds intPt as a node on segment segmentIndex and
// returns the node, which may be an existing one. A point equal to the
// next vertex is recorded against the next segment, so every node has a
// unique segment index.
func (s *NodedSegmentString) AddIntersectionNode(intPt planar.Coordinate, segmentIndex int) *SegmentNode {
	normalized := segmentIndex
	if next := segmentIndex + 1; next < len(s.pts) && intPt.Equals2D(s.pts[next]) {
		normalized = next
	}
	return s.nodeList.Add(intPt, normalized)
}

// NodedSubstrings splits each string at its nodes and returns the
// substrings of all of them, in order.
func NodedSubstrings(segStrings []*NodedSegmentString) ([]SegmentString, error) {
	var o []SegmentString
	for _, ss := range segStrings {
		split, err := ss.NodeList().AddSplitEdges(nil)
		if err != nil {
			return nil, err
		}
		o = append(o, split...)
	}
	return o, nil
}

// toNoded returns the NodedSegmentStrings underlying segStrings, wrapping
// strings of other types.
func toNoded(segStrings []SegmentString) []*NodedSegmentString {
	o := make([]*NodedSegmentString, len(segStrings))
	for i, ss := range segStrings {
		if ns, ok := ss.(*NodedSegmentString); ok {
			o[i] = ns
		} else {
			o[i] = NewNodedSegmentString(ss.Coordinates(), ss.Data())
		}
	}
	return o
}
