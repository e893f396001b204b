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
	"math"

	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// EdgeEnd is the end of an edge incident on a node: the node coordinate,
// the direction of the edge leaving it and a label.
type EdgeEnd struct {
	Edge  EdgeID
	Node  NodeID
	Label Label

	p0, p1   planar.Coordinate
	dx, dy   float64
	quadrant Quadrant
}

func newEdgeEnd(edge EdgeID, p0, p1 planar.Coordinate, label Label) EdgeEnd {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	q, err := QuadrantOf(dx, dy)
	if err != nil {
		panic(fmt.Sprintf("geomgraph: edge end at %v has no direction", p0))
	}
	return EdgeEnd{
		Edge:     edge,
		Node:     NoNode,
		Label:    label,
		p0:       p0,
		p1:       p1,
		dx:       dx,
		dy:       dy,
		quadrant: q,
	}
}

// Coordinate returns the node coordinate of the end.
func (ee *EdgeEnd) Coordinate() planar.Coordinate { return ee.p0 }

// DirectedCoordinate returns the next vertex along the edge.
func (ee *EdgeEnd) DirectedCoordinate() planar.Coordinate { return ee.p1 }

// Dx returns the X component of the end's direction.
func (ee *EdgeEnd) Dx() float64 { return ee.dx }

// Dy returns the Y component of the end's direction.
func (ee *EdgeEnd) Dy() float64 { return ee.dy }

// Quadrant returns the quadrant of the end's direction.
func (ee *EdgeEnd) Quadrant() Quadrant { return ee.quadrant }

// CompareDirection orders edge ends by the angle of their direction,
// counter-clockwise from the positive X axis. It returns -1, 0 or 1.
func (ee *EdgeEnd) CompareDirection(o *EdgeEnd) int {
	if ee.dx == o.dx && ee.dy == o.dy {
		return 0
	}
	if ee.quadrant > o.quadrant {
		return 1
	}
	if ee.quadrant < o.quadrant {
		return -1
	}
	// Same quadrant: the orientation of the two vectors decides.
	return algorithm.OrientationIndex(o.p0, o.p1, ee.p1)
}

const unsetDepth = -999

// DirectedEdge is one of the two traversals of an Edge. The traversal in
// the direction of the edge's vertices is forward. The Label of a
// directed edge is the edge label as seen in its direction.
type DirectedEdge struct {
	EdgeEnd

	ID        DirEdgeID
	IsForward bool
	InResult  bool
	Visited   bool

	// Next and NextMin link directed edges into maximal and minimal edge
	// rings.
	Next, NextMin DirEdgeID
	// EdgeRing and MinEdgeRing are the rings the directed edge belongs to.
	EdgeRing, MinEdgeRing RingID

	edge  *Edge
	depth [3]int
}

func newDirectedEdge(id DirEdgeID, edgeID EdgeID, e *Edge, isForward bool) *DirectedEdge {
	n := len(e.pts)
	var end EdgeEnd
	if isForward {
		end = newEdgeEnd(edgeID, e.pts[0], e.pts[1], e.Label)
	} else {
		end = newEdgeEnd(edgeID, e.pts[n-1], e.pts[n-2], e.Label.Flip())
	}
	return &DirectedEdge{
		EdgeEnd:     end,
		ID:          id,
		IsForward:   isForward,
		Next:        NoDirEdge,
		NextMin:     NoDirEdge,
		EdgeRing:    NoRing,
		MinEdgeRing: NoRing,
		edge:        e,
		depth:       [3]int{0, unsetDepth, unsetDepth},
	}
}

// Sym returns the handle of the opposite traversal of the same edge.
func (de *DirectedEdge) Sym() DirEdgeID { return de.ID ^ 1 }

// Depth returns the depth of the area at pos, or a negative value if it
// has not been set.
func (de *DirectedEdge) Depth(pos planar.Position) int { return de.depth[pos] }

// IsDepthSet returns whether the depth at pos has been set.
func (de *DirectedEdge) IsDepthSet(pos planar.Position) bool { return de.depth[pos] != unsetDepth }

// SetDepth sets the depth at pos. A depth that is already set cannot be
// changed to a different value.
func (de *DirectedEdge) SetDepth(pos planar.Position, depth int) error {
	if de.depth[pos] != unsetDepth && de.depth[pos] != depth {
		return planar.NewTopologyError(
			fmt.Sprintf("assigned depths do not match: %s depth %d, have %d", pos, depth, de.depth[pos]),
			de.Coordinate())
	}
	de.depth[pos] = depth
	return nil
}

// SetEdgeDepths sets the depth on side pos and derives the depth on the
// other side from the depth delta of the underlying edge.
func (de *DirectedEdge) SetEdgeDepths(pos planar.Position, depth int) error {
	delta := de.edge.depthDelta
	if !de.IsForward {
		delta = -delta
	}
	if pos == planar.Left {
		delta = -delta
	}
	if err := de.SetDepth(pos, depth); err != nil {
		return err
	}
	return de.SetDepth(pos.Opposite(), depth+delta)
}

// UnderlyingEdge returns the edge the directed edge traverses.
func (de *DirectedEdge) UnderlyingEdge() *Edge { return de.edge }

// IsLineEdge returns whether the directed edge is a line in at least one
// geometry and in the exterior of any area geometry.
func (de *DirectedEdge) IsLineEdge() bool {
	isLine := de.Label.IsLine(0) || de.Label.IsLine(1)
	isExteriorIfArea0 := !de.Label.IsAreaAt(0) || de.Label.AllPositionsEqual(0, planar.Exterior)
	isExteriorIfArea1 := !de.Label.IsAreaAt(1) || de.Label.AllPositionsEqual(1, planar.Exterior)
	return isLine && isExteriorIfArea0 && isExteriorIfArea1
}

// IsInteriorAreaEdge returns whether the directed edge has the interior of
// both area geometries on both sides. Such edges lie inside a result area.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for i := 0; i < 2; i++ {
		if !(de.Label.IsAreaAt(i) &&
			de.Label.Location(i, planar.Left) == planar.Interior &&
			de.Label.Location(i, planar.Right) == planar.Interior) {
			return false
		}
	}
	return true
}

func (de *DirectedEdge) String() string {
	return fmt.Sprintf("  %d: %v - %v %v:%g %v Depths: [%d, %d]",
		de.ID, de.p0, de.p1, de.quadrant, math.Atan2(de.dy, de.dx), de.Label,
		de.depth[planar.Left], de.depth[planar.Right])
}
