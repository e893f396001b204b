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

// SegmentNode is an intersection point recorded on a NodedSegmentString.
type SegmentNode struct {
	Coord planar.Coordinate
	// SegmentIndex is the index of the segment containing the node. A node
	// at a vertex has the index of the segment starting there.
	SegmentIndex int

	segmentOctant int
	isInterior    bool
}

func newSegmentNode(ss *NodedSegmentString, coord planar.Coordinate, segmentIndex, segmentOctant int) *SegmentNode {
	return &SegmentNode{
		Coord:         coord,
		SegmentIndex:  segmentIndex,
		segmentOctant: segmentOctant,
		isInterior:    !coord.Equals2D(ss.Coordinate(segmentIndex)),
	}
}

// IsInterior returns whether the node lies in the interior of its segment
// rather than at its start vertex.
func (n *SegmentNode) IsInterior() bool { return n.isInterior }

// IsEndPoint returns whether the node is at the first or last vertex of
// its string, given the index of the last vertex.
func (n *SegmentNode) IsEndPoint(maxSegmentIndex int) bool {
	return (n.SegmentIndex == 0 && !n.isInterior) || n.SegmentIndex == maxSegmentIndex
}

// Compare orders nodes by segment index and then by position along the
// segment. It returns -1, 0 or 1.
func (n *SegmentNode) Compare(o *SegmentNode) int {
	switch {
	case n.SegmentIndex < o.SegmentIndex:
		return -1
	case n.SegmentIndex > o.SegmentIndex:
		return 1
	case n.Coord.Equals2D(o.Coord):
		return 0
	case !n.isInterior:
		return -1
	case !o.isInterior:
		return 1
	}
	return ComparePoints(n.segmentOctant, n.Coord, o.Coord)
}

// Less implements btree.Item.
func (n *SegmentNode) Less(than btree.Item) bool {
	return n.Compare(than.(*SegmentNode)) < 0
}

func (n *SegmentNode) String() string {
	return fmt.Sprintf("%v seg # = %d", n.Coord, n.SegmentIndex)
}
