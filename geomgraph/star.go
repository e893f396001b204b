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
	"sort"
	"strings"

	"github.com/spatialmodel/planar"
)

// EdgeEndStar is the set of directed edges leaving a node, in
// counter-clockwise order starting from the positive X axis.
type EdgeEndStar struct {
	g     *Graph
	node  NodeID
	ends  []DirEdgeID
	label Label

	ptInAreaLocation [2]planar.Location
}

func newEdgeEndStar(g *Graph, node NodeID) *EdgeEndStar {
	return &EdgeEndStar{
		g:                g,
		node:             node,
		label:            NewLabel(planar.None),
		ptInAreaLocation: [2]planar.Location{planar.None, planar.None},
	}
}

// Insert adds a directed edge to the star. An edge with the same direction
// as one already in the star replaces it.
func (s *EdgeEndStar) Insert(id DirEdgeID) {
	de := s.g.dirEdges[id]
	i := sort.Search(len(s.ends), func(i int) bool {
		return s.g.dirEdges[s.ends[i]].CompareDirection(&de.EdgeEnd) >= 0
	})
	if i < len(s.ends) && s.g.dirEdges[s.ends[i]].CompareDirection(&de.EdgeEnd) == 0 {
		s.ends[i] = id
		return
	}
	s.ends = append(s.ends, 0)
	copy(s.ends[i+1:], s.ends[i:])
	s.ends[i] = id
}

// Edges returns the directed edges of the star in counter-clockwise order.
// The returned slice must not be modified.
func (s *EdgeEndStar) Edges() []DirEdgeID { return s.ends }

// Degree returns the number of directed edges in the star.
func (s *EdgeEndStar) Degree() int { return len(s.ends) }

// Coordinate returns the location of the star's node.
func (s *EdgeEndStar) Coordinate() planar.Coordinate { return s.g.nodes[s.node].Coord }

// Label returns the node label computed by ComputeLabelling.
func (s *EdgeEndStar) Label() Label { return s.label }

// FindIndex returns the position of id in the star, or -1.
func (s *EdgeEndStar) FindIndex(id DirEdgeID) int {
	for i, e := range s.ends {
		if e == id {
			return i
		}
	}
	return -1
}

// NextCW returns the directed edge clockwise from id.
func (s *EdgeEndStar) NextCW(id DirEdgeID) DirEdgeID {
	i := s.FindIndex(id)
	if i < 0 {
		return NoDirEdge
	}
	if i == 0 {
		return s.ends[len(s.ends)-1]
	}
	return s.ends[i-1]
}

// ComputeLabelling completes the labels of the star's directed edges.
// Side locations of area edges are propagated around the star; locations
// that are still unknown are found by locating the node in the geometries.
// It then computes the node label of the star. graphs holds the
// geometries of the graph, indexed by geometry.
func (s *EdgeEndStar) ComputeLabelling(graphs []*GeometryGraph) error {
	for geomIndex := 0; geomIndex < 2; geomIndex++ {
		if err := s.PropagateSideLabels(geomIndex); err != nil {
			return err
		}
	}

	// A line edge on the boundary of an area shows the area has collapsed
	// to a line at this node; the remaining edges lie outside it.
	var hasDimensionalCollapseEdge [2]bool
	for _, id := range s.ends {
		l := s.g.dirEdges[id].Label
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if l.IsLine(geomIndex) && l.LocationOn(geomIndex) == planar.Boundary {
				hasDimensionalCollapseEdge[geomIndex] = true
			}
		}
	}

	for _, id := range s.ends {
		de := s.g.dirEdges[id]
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if !de.Label.IsAnyNull(geomIndex) {
				continue
			}
			loc := planar.Exterior
			if !hasDimensionalCollapseEdge[geomIndex] {
				loc = s.location(geomIndex, de.Coordinate(), graphs)
			}
			de.Label = de.Label.WithAllLocationsIfNull(geomIndex, loc)
		}
	}

	s.label = s.ComputeNodeLabel()
	return nil
}

// ComputeNodeLabel returns the label of the star's node implied by its
// edges: Interior in each geometry where some edge is in the interior or
// on the boundary of it.
func (s *EdgeEndStar) ComputeNodeLabel() Label {
	label := NewLabel(planar.None)
	for _, id := range s.ends {
		l := s.g.dirEdges[id].Label
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			switch l.LocationOn(geomIndex) {
			case planar.Interior, planar.Boundary:
				label = label.WithLocationOn(geomIndex, planar.Interior)
			}
		}
	}
	return label
}

// location returns the location of p in the area of geometry geomIndex.
// It is computed once per star, since every edge end shares the node
// point.
func (s *EdgeEndStar) location(geomIndex int, p planar.Coordinate, graphs []*GeometryGraph) planar.Location {
	if s.ptInAreaLocation[geomIndex] == planar.None {
		loc := planar.Exterior
		if geomIndex < len(graphs) && graphs[geomIndex] != nil {
			loc = graphs[geomIndex].LocateInArea(p)
		}
		s.ptInAreaLocation[geomIndex] = loc
	}
	return s.ptInAreaLocation[geomIndex]
}

// PropagateSideLabels walks counter-clockwise around the star, filling in
// the unknown side locations of geometry geomIndex from the known side
// locations of its neighbours. Inconsistent side locations mean the input
// geometry is not valid, and are reported as a *planar.TopologyError.
func (s *EdgeEndStar) PropagateSideLabels(geomIndex int) error {
	startLoc := planar.None
	for _, id := range s.ends {
		l := s.g.dirEdges[id].Label
		if l.IsAreaAt(geomIndex) && l.Location(geomIndex, planar.Left) != planar.None {
			startLoc = l.Location(geomIndex, planar.Left)
		}
	}
	if startLoc == planar.None {
		return nil
	}

	currLoc := startLoc
	for _, id := range s.ends {
		de := s.g.dirEdges[id]
		l := de.Label
		if l.LocationOn(geomIndex) == planar.None {
			l = l.WithLocationOn(geomIndex, currLoc)
		}
		if l.IsAreaAt(geomIndex) {
			leftLoc := l.Location(geomIndex, planar.Left)
			rightLoc := l.Location(geomIndex, planar.Right)
			switch {
			case rightLoc != planar.None:
				if rightLoc != currLoc {
					return planar.NewTopologyError("side location conflict", de.Coordinate())
				}
				if leftLoc == planar.None {
					return planar.NewTopologyError("found single null side", de.Coordinate())
				}
				currLoc = leftLoc
			case leftLoc != planar.None:
				return planar.NewTopologyError("found single null side", de.Coordinate())
			default:
				l = l.WithLocation(geomIndex, planar.Right, currLoc)
				l = l.WithLocation(geomIndex, planar.Left, currLoc)
			}
		}
		de.Label = l
	}
	return nil
}

// IsAreaLabelsConsistent returns whether the side locations of geometry
// geomIndex agree all the way around the star.
func (s *EdgeEndStar) IsAreaLabelsConsistent(geomIndex int) bool {
	if len(s.ends) == 0 {
		return true
	}
	currLoc := s.g.dirEdges[s.ends[len(s.ends)-1]].Label.Location(geomIndex, planar.Left)
	if currLoc == planar.None {
		return false
	}
	for _, id := range s.ends {
		l := s.g.dirEdges[id].Label
		if !l.IsAreaAt(geomIndex) {
			return false
		}
		leftLoc := l.Location(geomIndex, planar.Left)
		rightLoc := l.Location(geomIndex, planar.Right)
		if leftLoc == rightLoc || rightLoc != currLoc {
			return false
		}
		currLoc = leftLoc
	}
	return true
}

// MergeSymLabels merges the label of each directed edge with the label of
// its opposite, so both traversals know the locations found at either
// end.
func (s *EdgeEndStar) MergeSymLabels() {
	for _, id := range s.ends {
		de := s.g.dirEdges[id]
		de.Label = de.Label.Merge(s.g.dirEdges[de.Sym()].Label)
	}
}

// UpdateLabelling fills the unknown locations of every directed edge with
// the node label.
func (s *EdgeEndStar) UpdateLabelling(nodeLabel Label) {
	for _, id := range s.ends {
		de := s.g.dirEdges[id]
		de.Label = de.Label.
			WithAllLocationsIfNull(0, nodeLabel.LocationOn(0)).
			WithAllLocationsIfNull(1, nodeLabel.LocationOn(1))
	}
}

// OutgoingDegree returns the number of directed edges in the result.
func (s *EdgeEndStar) OutgoingDegree() int {
	n := 0
	for _, id := range s.ends {
		if s.g.dirEdges[id].InResult {
			n++
		}
	}
	return n
}

// OutgoingDegreeOf returns the number of directed edges in ring.
func (s *EdgeEndStar) OutgoingDegreeOf(ring RingID) int {
	n := 0
	for _, id := range s.ends {
		if s.g.dirEdges[id].EdgeRing == ring {
			n++
		}
	}
	return n
}

// RightmostEdge returns the directed edge of the star with the rightmost
// direction, or NoDirEdge for an empty star.
func (s *EdgeEndStar) RightmostEdge() (DirEdgeID, error) {
	switch len(s.ends) {
	case 0:
		return NoDirEdge, nil
	case 1:
		return s.ends[0], nil
	}
	de0 := s.g.dirEdges[s.ends[0]]
	deLast := s.g.dirEdges[s.ends[len(s.ends)-1]]
	q0, q1 := de0.Quadrant(), deLast.Quadrant()
	switch {
	case q0.IsNorthern() && q1.IsNorthern():
		return de0.ID, nil
	case !q0.IsNorthern() && !q1.IsNorthern():
		return deLast.ID, nil
	case de0.Dy() != 0:
		return de0.ID, nil
	case deLast.Dy() != 0:
		return deLast.ID, nil
	}
	return NoDirEdge, planar.NewTopologyError("found two horizontal edges incident on node", s.Coordinate())
}

// resultAreaEdges returns the directed edges that are in the result or
// whose opposite is.
func (s *EdgeEndStar) resultAreaEdges() []DirEdgeID {
	var o []DirEdgeID
	for _, id := range s.ends {
		de := s.g.dirEdges[id]
		if de.InResult || s.g.dirEdges[de.Sym()].InResult {
			o = append(o, id)
		}
	}
	return o
}

const (
	scanningForIncoming = iota
	linkingToOutgoing
)

// LinkResultDirectedEdges links each incoming result edge at the node to
// the next outgoing result edge counter-clockwise, forming the maximal
// edge rings of the result.
func (s *EdgeEndStar) LinkResultDirectedEdges() error {
	firstOut, incoming := NoDirEdge, NoDirEdge
	state := scanningForIncoming
	for _, id := range s.resultAreaEdges() {
		nextOut := s.g.dirEdges[id]
		nextIn := s.g.dirEdges[nextOut.Sym()]
		if !nextOut.Label.IsArea() {
			continue
		}
		if firstOut == NoDirEdge && nextOut.InResult {
			firstOut = nextOut.ID
		}
		switch state {
		case scanningForIncoming:
			if !nextIn.InResult {
				continue
			}
			incoming = nextIn.ID
			state = linkingToOutgoing
		case linkingToOutgoing:
			if !nextOut.InResult {
				continue
			}
			s.g.dirEdges[incoming].Next = nextOut.ID
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == NoDirEdge {
			return planar.NewTopologyError("no outgoing dirEdge found", s.Coordinate())
		}
		s.g.dirEdges[incoming].Next = firstOut
	}
	return nil
}

// LinkMinimalDirectedEdges links the edges of the maximal ring ring at the
// node into minimal rings, pairing each incoming edge with the next
// outgoing edge clockwise.
func (s *EdgeEndStar) LinkMinimalDirectedEdges(ring RingID) error {
	firstOut, incoming := NoDirEdge, NoDirEdge
	state := scanningForIncoming
	edges := s.resultAreaEdges()
	for i := len(edges) - 1; i >= 0; i-- {
		nextOut := s.g.dirEdges[edges[i]]
		nextIn := s.g.dirEdges[nextOut.Sym()]
		if firstOut == NoDirEdge && nextOut.EdgeRing == ring {
			firstOut = nextOut.ID
		}
		switch state {
		case scanningForIncoming:
			if nextIn.EdgeRing != ring {
				continue
			}
			incoming = nextIn.ID
			state = linkingToOutgoing
		case linkingToOutgoing:
			if nextOut.EdgeRing != ring {
				continue
			}
			s.g.dirEdges[incoming].NextMin = nextOut.ID
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == NoDirEdge {
			return planar.NewTopologyError("found null for first outgoing dirEdge", s.Coordinate())
		}
		s.g.dirEdges[incoming].NextMin = firstOut
	}
	return nil
}

// LinkAllDirectedEdges links every incoming edge to the next outgoing edge
// clockwise, regardless of whether it is in the result.
func (s *EdgeEndStar) LinkAllDirectedEdges() {
	prevOut, firstIn := NoDirEdge, NoDirEdge
	for i := len(s.ends) - 1; i >= 0; i-- {
		nextOut := s.g.dirEdges[s.ends[i]]
		nextIn := s.g.dirEdges[nextOut.Sym()]
		if firstIn == NoDirEdge {
			firstIn = nextIn.ID
		}
		if prevOut != NoDirEdge {
			nextIn.Next = prevOut
		}
		prevOut = nextOut.ID
	}
	if firstIn != NoDirEdge {
		s.g.dirEdges[firstIn].Next = prevOut
	}
}

// ComputeDepths propagates side depths counter-clockwise around the star
// starting from de, whose depths must be set. Going all the way around
// must arrive back at the right depth of de.
func (s *EdgeEndStar) ComputeDepths(id DirEdgeID) error {
	i := s.FindIndex(id)
	if i < 0 {
		return fmt.Errorf("geomgraph: directed edge %d is not incident on node %d", id, s.node)
	}
	de := s.g.dirEdges[id]
	startDepth := de.Depth(planar.Left)
	targetLastDepth := de.Depth(planar.Right)
	nextDepth, err := s.computeDepths(i+1, len(s.ends), startDepth)
	if err != nil {
		return err
	}
	lastDepth, err := s.computeDepths(0, i, nextDepth)
	if err != nil {
		return err
	}
	if lastDepth != targetLastDepth {
		return planar.NewTopologyError(
			fmt.Sprintf("depth mismatch: have %d, want %d", lastDepth, targetLastDepth), de.Coordinate())
	}
	return nil
}

func (s *EdgeEndStar) computeDepths(start, end, startDepth int) (int, error) {
	currDepth := startDepth
	for i := start; i < end; i++ {
		id := s.ends[i]
		if err := s.g.SetEdgeDepths(id, planar.Right, currDepth); err != nil {
			return 0, err
		}
		currDepth = s.g.dirEdges[id].Depth(planar.Left)
	}
	return currDepth, nil
}

func (s *EdgeEndStar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "EdgeEndStar: %v\n", s.Coordinate())
	for _, id := range s.ends {
		fmt.Fprintln(&b, s.g.dirEdges[id])
	}
	return b.String()
}
