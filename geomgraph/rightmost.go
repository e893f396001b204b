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

// RightmostEdgeFinder finds the directed edge of a connected set of edges
// that has the exterior of the set on its right. It is the starting point
// for depth propagation.
type RightmostEdgeFinder struct {
	g *Graph

	minIndex int
	minCoord planar.Coordinate
	minDe    DirEdgeID
}

// NewRightmostEdgeFinder returns a finder over the directed edges of g.
func NewRightmostEdgeFinder(g *Graph) *RightmostEdgeFinder {
	return &RightmostEdgeFinder{g: g, minIndex: -1, minDe: NoDirEdge}
}

// Coordinate returns the rightmost coordinate found by FindEdge.
func (f *RightmostEdgeFinder) Coordinate() planar.Coordinate { return f.minCoord }

// FindEdge returns the directed edge, among dirEdges, that touches the
// rightmost coordinate and is oriented with the exterior on its right.
func (f *RightmostEdgeFinder) FindEdge(dirEdges []DirEdgeID) (DirEdgeID, error) {
	f.minIndex, f.minDe = -1, NoDirEdge
	f.minCoord = planar.XY(math.Inf(-1), math.Inf(-1))
	for _, id := range dirEdges {
		if f.g.dirEdges[id].IsForward {
			f.checkForRightmostCoordinate(id)
		}
	}
	if f.minDe == NoDirEdge {
		return NoDirEdge, fmt.Errorf("geomgraph: no forward directed edges to search")
	}

	if f.minIndex == 0 {
		if err := f.findRightmostEdgeAtNode(); err != nil {
			return NoDirEdge, err
		}
	} else {
		f.findRightmostEdgeAtVertex()
	}

	side, err := f.rightmostSide(f.minDe, f.minIndex)
	if err != nil {
		return NoDirEdge, err
	}
	if side == planar.Left {
		return f.minDe ^ 1, nil
	}
	return f.minDe, nil
}

func (f *RightmostEdgeFinder) findRightmostEdgeAtNode() error {
	star := f.g.nodes[f.g.dirEdges[f.minDe].Node].Star
	id, err := star.RightmostEdge()
	if err != nil {
		return err
	}
	f.minDe = id
	if de := f.g.dirEdges[id]; !de.IsForward {
		f.minDe = id ^ 1
		f.minIndex = len(de.edge.pts) - 1
	}
	return nil
}

// findRightmostEdgeAtVertex picks the segment before or after an interior
// rightmost vertex, whichever is the rightmost of the two.
func (f *RightmostEdgeFinder) findRightmostEdgeAtVertex() {
	pts := f.g.dirEdges[f.minDe].edge.pts
	pPrev, pNext := pts[f.minIndex-1], pts[f.minIndex+1]
	orientation := algorithm.OrientationIndex(f.minCoord, pNext, pPrev)
	usePrev := false
	switch {
	case pPrev.Y < f.minCoord.Y && pNext.Y < f.minCoord.Y && orientation == algorithm.CounterClockwise:
		usePrev = true
	case pPrev.Y > f.minCoord.Y && pNext.Y > f.minCoord.Y && orientation == algorithm.Clockwise:
		usePrev = true
	}
	if usePrev {
		f.minIndex--
	}
}

func (f *RightmostEdgeFinder) checkForRightmostCoordinate(id DirEdgeID) {
	pts := f.g.dirEdges[id].edge.pts
	for i := 0; i < len(pts)-1; i++ {
		if f.minDe == NoDirEdge || pts[i].X > f.minCoord.X {
			f.minDe = id
			f.minIndex = i
			f.minCoord = pts[i]
		}
	}
}

func (f *RightmostEdgeFinder) rightmostSide(id DirEdgeID, index int) (planar.Position, error) {
	if side, ok := f.rightmostSideOfSegment(id, index); ok {
		return side, nil
	}
	if side, ok := f.rightmostSideOfSegment(id, index-1); ok {
		return side, nil
	}
	return planar.On, planar.NewTopologyError("unable to find rightmost side", f.minCoord)
}

// rightmostSideOfSegment returns the side of segment i of the edge that
// faces the exterior, or false for a horizontal or missing segment.
func (f *RightmostEdgeFinder) rightmostSideOfSegment(id DirEdgeID, i int) (planar.Position, bool) {
	pts := f.g.dirEdges[id].edge.pts
	if i < 0 || i+1 >= len(pts) {
		return planar.On, false
	}
	if pts[i].Y == pts[i+1].Y {
		return planar.On, false
	}
	if pts[i].Y < pts[i+1].Y {
		return planar.Right, true
	}
	return planar.Left, true
}
