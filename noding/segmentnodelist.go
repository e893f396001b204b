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

	"github.com/google/btree"
	"github.com/spatialmodel/planar"
)

// SegmentNodeList is the ordered set of nodes of a NodedSegmentString.
type SegmentNodeList struct {
	nodes *btree.BTree
	edge  *NodedSegmentString
}

func newSegmentNodeList(edge *NodedSegmentString) *SegmentNodeList {
	return &SegmentNodeList{nodes: btree.New(8), edge: edge}
}

// Edge returns the string the nodes belong to.
func (l *SegmentNodeList) Edge() *NodedSegmentString { return l.edge }

// Add adds a node at intPt on segment segmentIndex, unless an equal node
// exists already. It returns the node in the list.
func (l *SegmentNodeList) Add(intPt planar.Coordinate, segmentIndex int) *SegmentNode {
	n := newSegmentNode(l.edge, intPt, segmentIndex, l.edge.SegmentOctant(segmentIndex))
	if existing := l.nodes.Get(n); existing != nil {
		return existing.(*SegmentNode)
	}
	l.nodes.ReplaceOrInsert(n)
	return n
}

// Len returns the number of nodes.
func (l *SegmentNodeList) Len() int { return l.nodes.Len() }

// Nodes returns the nodes in order along the string.
func (l *SegmentNodeList) Nodes() []*SegmentNode {
	o := make([]*SegmentNode, 0, l.nodes.Len())
	l.nodes.Ascend(func(i btree.Item) bool {
		o = append(o, i.(*SegmentNode))
		return true
	})
	return o
}

// addEndpoints adds nodes for the first and last vertices.
func (l *SegmentNodeList) addEndpoints() {
	last := l.edge.Size() - 1
	l.Add(l.edge.Coordinate(0), 0)
	l.Add(l.edge.Coordinate(last), last)
}

// addCollapsedNodes adds nodes at the middle vertex of every A-B-A
// collapse, whether formed by vertices or by inserted nodes, so that the
// split substrings do not contain collapses.
func (l *SegmentNodeList) addCollapsedNodes() {
	var collapsed []int
	collapsed = l.findCollapsesFromInsertedNodes(collapsed)
	collapsed = l.findCollapsesFromExistingVertices(collapsed)
	for _, i := range collapsed {
		l.Add(l.edge.Coordinate(i), i)
	}
}

func (l *SegmentNodeList) findCollapsesFromExistingVertices(collapsed []int) []int {
	pts := l.edge.Coordinates()
	for i := 0; i < len(pts)-2; i++ {
		if pts[i].Equals2D(pts[i+2]) {
			collapsed = append(collapsed, i+1)
		}
	}
	return collapsed
}

// findCollapsesFromInsertedNodes finds pairs of consecutive nodes at the
// same point with a single vertex between them.
func (l *SegmentNodeList) findCollapsesFromInsertedNodes(collapsed []int) []int {
	nodes := l.Nodes()
	for i := 1; i < len(nodes); i++ {
		if idx, ok := findCollapseIndex(nodes[i-1], nodes[i]); ok {
			collapsed = append(collapsed, idx)
		}
	}
	return collapsed
}

func findCollapseIndex(n0, n1 *SegmentNode) (int, bool) {
	if !n0.Coord.Equals2D(n1.Coord) {
		return 0, false
	}
	between := n1.SegmentIndex - n0.SegmentIndex
	if !n1.IsInterior() {
		between--
	}
	if between == 1 {
		return n0.SegmentIndex + 1, true
	}
	return 0, false
}

// AddSplitEdges splits the string at its nodes and appends the resulting
// substrings to edges, which it returns. The first and last vertices are
// always nodes. A string with fewer than two vertices has no substrings.
func (l *SegmentNodeList) AddSplitEdges(edges []SegmentString) ([]SegmentString, error) {
	if l.edge.Size() < 2 {
		return edges, nil
	}
	l.addEndpoints()
	l.addCollapsedNodes()

	first := len(edges)
	nodes := l.Nodes()
	for i := 1; i < len(nodes); i++ {
		pts := l.createSplitEdgePts(nodes[i-1], nodes[i])
		edges = append(edges, NewNodedSegmentString(pts, l.edge.Data()))
	}
	if err := l.checkSplitEdgesCorrectness(edges[first:]); err != nil {
		return nil, err
	}
	return edges, nil
}

func (l *SegmentNodeList) checkSplitEdgesCorrectness(split []SegmentString) error {
	pts := l.edge.Coordinates()
	p0 := split[0].Coordinates()[0]
	if !p0.Equals2D(pts[0]) {
		return planar.NewTopologyError("bad split edge start point", p0)
	}
	lastPts := split[len(split)-1].Coordinates()
	pn := lastPts[len(lastPts)-1]
	if !pn.Equals2D(pts[len(pts)-1]) {
		return planar.NewTopologyError("bad split edge end point", pn)
	}
	return nil
}

// createSplitEdgePts returns the vertices between two consecutive nodes,
// starting and ending at the node points.
func (l *SegmentNodeList) createSplitEdgePts(n0, n1 *SegmentNode) []planar.Coordinate {
	if n0.SegmentIndex == n1.SegmentIndex {
		return []planar.Coordinate{n0.Coord, n1.Coord}
	}
	lastSegStart := l.edge.Coordinate(n1.SegmentIndex)
	// A node at a vertex is that vertex, so it is not repeated.
	useIntPt1 := n1.IsInterior() || !n1.Coord.Equals2D(lastSegStart)

	pts := make([]planar.Coordinate, 0, n1.SegmentIndex-n0.SegmentIndex+2)
	pts = append(pts, n0.Coord)
	for i := n0.SegmentIndex + 1; i <= n1.SegmentIndex; i++ {
		pts = append(pts, l.edge.Coordinate(i))
	}
	if useIntPt1 {
		pts = append(pts, n1.Coord)
	}
	return pts
}

// SplitCoordinates returns the vertices of the string with all nodes
// inserted, without repeated points.
func (l *SegmentNodeList) SplitCoordinates() []planar.Coordinate {
	if l.edge.Size() < 2 {
		return l.edge.Coordinates()
	}
	l.addEndpoints()
	nodes := l.Nodes()
	var o []planar.Coordinate
	for i := 1; i < len(nodes); i++ {
		for _, p := range l.createSplitEdgePts(nodes[i-1], nodes[i]) {
			if len(o) > 0 && o[len(o)-1].Equals2D(p) {
				continue
			}
			o = append(o, p)
		}
	}
	return o
}

func (l *SegmentNodeList) String() string {
	s := "Intersections:"
	for _, n := range l.Nodes() {
		s += fmt.Sprintf(" [%v]", n)
	}
	return s
}
