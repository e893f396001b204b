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
	"fmt"

	"github.com/google/btree"
	"github.com/spatialmodel/planar"
)

// EdgeIntersection is a point where an edge is intersected by another.
type EdgeIntersection struct {
	Coord planar.Coordinate
	// SegmentIndex is the index of the segment containing the point.
	SegmentIndex int
	// Dist is the edge distance of the point along its segment.
	Dist float64
}

// Compare orders intersections by segment index and then by distance
// along the segment.
func (ei *EdgeIntersection) Compare(o *EdgeIntersection) int {
	switch {
	case ei.SegmentIndex < o.SegmentIndex:
		return -1
	case ei.SegmentIndex > o.SegmentIndex:
		return 1
	case ei.Dist < o.Dist:
		return -1
	case ei.Dist > o.Dist:
		return 1
	}
	return 0
}

// Less implements btree.Item.
func (ei *EdgeIntersection) Less(than btree.Item) bool {
	return ei.Compare(than.(*EdgeIntersection)) < 0
}

// IsEndPoint returns whether ei is at the first or last vertex of an edge
// whose last segment index is maxSegmentIndex.
func (ei *EdgeIntersection) IsEndPoint(maxSegmentIndex int) bool {
	return (ei.SegmentIndex == 0 && ei.Dist == 0) || ei.SegmentIndex == maxSegmentIndex
}

func (ei *EdgeIntersection) String() string {
	return fmt.Sprintf("%v seg # = %d dist = %g", ei.Coord, ei.SegmentIndex, ei.Dist)
}

// EdgeIntersectionList is the ordered set of intersections of an edge.
type EdgeIntersectionList struct {
	nodes *btree.BTree
	edge  *Edge
}

func newEdgeIntersectionList(e *Edge) *EdgeIntersectionList {
	return &EdgeIntersectionList{nodes: btree.New(8), edge: e}
}

// Add records an intersection, unless an equal one exists already, and
// returns the intersection in the list.
func (l *EdgeIntersectionList) Add(intPt planar.Coordinate, segmentIndex int, dist float64) *EdgeIntersection {
	ei := &EdgeIntersection{Coord: intPt, SegmentIndex: segmentIndex, Dist: dist}
	if existing := l.nodes.Get(ei); existing != nil {
		return existing.(*EdgeIntersection)
	}
	l.nodes.ReplaceOrInsert(ei)
	return ei
}

// Len returns the number of intersections.
func (l *EdgeIntersectionList) Len() int { return l.nodes.Len() }

// Intersections returns the intersections in order along the edge.
func (l *EdgeIntersectionList) Intersections() []*EdgeIntersection {
	o := make([]*EdgeIntersection, 0, l.nodes.Len())
	l.nodes.Ascend(func(i btree.Item) bool {
		o = append(o, i.(*EdgeIntersection))
		return true
	})
	return o
}

// IsIntersection returns whether pt is one of the intersections.
func (l *EdgeIntersectionList) IsIntersection(pt planar.Coordinate) bool {
	found := false
	l.nodes.Ascend(func(i btree.Item) bool {
		found = i.(*EdgeIntersection).Coord.Equals2D(pt)
		return !found
	})
	return found
}

// AddEndpoints records the first and last vertices of the edge as
// intersections.
func (l *EdgeIntersectionList) AddEndpoints() {
	maxSeg := len(l.edge.pts) - 1
	l.Add(l.edge.pts[0], 0, 0)
	l.Add(l.edge.pts[maxSeg], maxSeg, 0)
}

// AddSplitEdges splits the edge at its intersections and appends the
// pieces to edges, which it returns. Each piece has the label of the
// edge.
func (l *EdgeIntersectionList) AddSplitEdges(edges []*Edge) []*Edge {
	l.AddEndpoints()
	eis := l.Intersections()
	for i := 1; i < len(eis); i++ {
		edges = append(edges, l.createSplitEdge(eis[i-1], eis[i]))
	}
	return edges
}

func (l *EdgeIntersectionList) createSplitEdge(ei0, ei1 *EdgeIntersection) *Edge {
	pts := l.edge.pts
	lastSegStart := pts[ei1.SegmentIndex]
	// An intersection at a vertex is that vertex, so it is not repeated.
	useIntPt1 := ei1.Dist > 0 || !ei1.Coord.Equals2D(lastSegStart)

	o := make([]planar.Coordinate, 0, ei1.SegmentIndex-ei0.SegmentIndex+2)
	o = append(o, ei0.Coord)
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		o = append(o, pts[i])
	}
	if useIntPt1 {
		o = append(o, ei1.Coord)
	}
	return NewEdge(o, l.edge.Label)
}

func (l *EdgeIntersectionList) String() string {
	s := "Intersections:"
	for _, ei := range l.Intersections() {
		s += fmt.Sprintf(" [%v]", ei)
	}
	return s
}
