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


// Package geomgraph holds the topology graph of one or two geometries:
// the edges of their linework, the nodes where edges meet, and the
// directed edges and edge rings used to label and traverse the graph.
//
// The graph is an arena. Edges, directed edges, nodes and edge rings are
// owned by a Graph and refer to each other by integer handles. The two
// directed edges of an edge are stored next to each other so that the
// handle of the opposite directed edge is id^1.
package geomgraph

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
)

// Handles into a Graph.
type (
	EdgeID    int
	DirEdgeID int
	NodeID    int
	RingID    int
)

// Handle values meaning "none".
const (
	NoEdge    EdgeID    = -1
	NoDirEdge DirEdgeID = -1
	NoNode    NodeID    = -1
	NoRing    RingID    = -1
)

// Graph is a planar graph of edges and nodes.
type Graph struct {
	// Log receives statistics about the graph. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger

	edges    []*Edge
	dirEdges []*DirectedEdge
	nodes    []*Node
	nodeMap  *NodeMap
	rings    []*EdgeRing
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	g := &Graph{}
	g.nodeMap = newNodeMap(g)
	return g
}

func (g *Graph) log() logrus.FieldLogger {
	if g.Log == nil {
		return logrus.StandardLogger()
	}
	return g.Log
}

// Edge returns the edge with handle id.
func (g *Graph) Edge(id EdgeID) *Edge { return g.edges[id] }

// Edges returns the edges of the graph, indexed by EdgeID.
func (g *Graph) Edges() []*Edge { return g.edges }

// DirectedEdge returns the directed edge with handle id.
func (g *Graph) DirectedEdge(id DirEdgeID) *DirectedEdge { return g.dirEdges[id] }

// DirectedEdges returns the directed edges of the graph, indexed by
// DirEdgeID.
func (g *Graph) DirectedEdges() []*DirectedEdge { return g.dirEdges }

// Node returns the node with handle id.
func (g *Graph) Node(id NodeID) *Node { return g.nodes[id] }

// Nodes returns the nodes of the graph ordered by coordinate.
func (g *Graph) Nodes() []*Node { return g.nodeMap.Nodes() }

// NodeMap returns the node index of the graph.
func (g *Graph) NodeMap() *NodeMap { return g.nodeMap }

// Ring returns the edge ring with handle id.
func (g *Graph) Ring(id RingID) *EdgeRing { return g.rings[id] }

// Rings returns the edge rings built so far, indexed by RingID.
func (g *Graph) Rings() []*EdgeRing { return g.rings }

// AddNode returns the node at p, creating it if needed.
func (g *Graph) AddNode(p planar.Coordinate) *Node { return g.nodeMap.AddNode(p) }

// Find returns the node at p, or nil.
func (g *Graph) Find(p planar.Coordinate) *Node { return g.nodeMap.Find(p) }

// InsertEdge adds e to the graph without creating its directed edges.
func (g *Graph) InsertEdge(e *Edge) EdgeID {
	g.edges = append(g.edges, e)
	return EdgeID(len(g.edges) - 1)
}

// AddEdges adds edges to the graph, creating a pair of directed edges for
// each and inserting them into the stars of their nodes.
func (g *Graph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		id := g.InsertEdge(e)
		fwd := newDirectedEdge(DirEdgeID(len(g.dirEdges)), id, e, true)
		g.dirEdges = append(g.dirEdges, fwd)
		bwd := newDirectedEdge(DirEdgeID(len(g.dirEdges)), id, e, false)
		g.dirEdges = append(g.dirEdges, bwd)
		g.nodeMap.Add(fwd)
		g.nodeMap.Add(bwd)
	}
	g.log().WithFields(logrus.Fields{
		"edges":          len(g.edges),
		"directed_edges": len(g.dirEdges),
		"nodes":          len(g.nodes),
	}).Debug("geomgraph: added edges")
}

// IsBoundaryNode returns whether there is a node at p that is on the
// boundary of geometry geomIndex.
func (g *Graph) IsBoundaryNode(geomIndex int, p planar.Coordinate) bool {
	n := g.nodeMap.Find(p)
	if n == nil {
		return false
	}
	return n.Label.LocationOn(geomIndex) == planar.Boundary
}

// LinkResultDirectedEdges links the result directed edges at every node.
func (g *Graph) LinkResultDirectedEdges() error {
	for _, n := range g.nodes {
		if err := n.Star.LinkResultDirectedEdges(); err != nil {
			return err
		}
	}
	return nil
}

// LinkAllDirectedEdges links all directed edges at every node.
func (g *Graph) LinkAllDirectedEdges() {
	for _, n := range g.nodes {
		n.Star.LinkAllDirectedEdges()
	}
}

// FindEdge returns the edge whose first segment runs from p0 to p1, or
// NoEdge.
func (g *Graph) FindEdge(p0, p1 planar.Coordinate) EdgeID {
	for i, e := range g.edges {
		if p0.Equals2D(e.pts[0]) && p1.Equals2D(e.pts[1]) {
			return EdgeID(i)
		}
	}
	return NoEdge
}

// FindEdgeInSameDirection returns the edge that contains the segment p0-p1
// as its first or last segment and is traversed from p0 to p1 in that
// direction, or NoEdge.
func (g *Graph) FindEdgeInSameDirection(p0, p1 planar.Coordinate) EdgeID {
	for i, e := range g.edges {
		n := len(e.pts)
		if p0.Equals2D(e.pts[0]) && p1.Equals2D(e.pts[1]) {
			return EdgeID(i)
		}
		if p0.Equals2D(e.pts[n-1]) && p1.Equals2D(e.pts[n-2]) {
			return EdgeID(i)
		}
	}
	return NoEdge
}

// FindEdgeEnd returns the forward directed edge of e, or NoDirEdge if e has
// not been added with AddEdges.
func (g *Graph) FindEdgeEnd(e EdgeID) DirEdgeID {
	for _, de := range g.dirEdges {
		if de.Edge == e && de.IsForward {
			return de.ID
		}
	}
	return NoDirEdge
}

// SetVisitedEdge marks both directions of the directed edge id.
func (g *Graph) SetVisitedEdge(id DirEdgeID, visited bool) {
	g.dirEdges[id].Visited = visited
	g.dirEdges[id^1].Visited = visited
}

// SetEdgeDepths sets the depths of directed edge id, starting from side pos.
func (g *Graph) SetEdgeDepths(id DirEdgeID, pos planar.Position, depth int) error {
	return g.dirEdges[id].SetEdgeDepths(pos, depth)
}

// copySymDepths gives the opposite of id the depths of id with the sides
// swapped.
func (g *Graph) copySymDepths(id DirEdgeID) error {
	de := g.dirEdges[id]
	sym := g.dirEdges[de.Sym()]
	if err := sym.SetDepth(planar.Left, de.Depth(planar.Right)); err != nil {
		return err
	}
	return sym.SetDepth(planar.Right, de.Depth(planar.Left))
}

// ComputeDepths assigns side depths to every directed edge. Each connected
// component is treated separately: its rightmost directed edge is given
// outsideDepth on its right side, and depths are propagated from node to
// node through the component. The depth delta of each edge must be set
// before calling ComputeDepths.
func (g *Graph) ComputeDepths(outsideDepth int) error {
	for _, de := range g.dirEdges {
		de.Visited = false
	}
	done := make([]bool, len(g.nodes))
	for _, n := range g.nodes {
		if done[n.ID] || n.Star.Degree() == 0 {
			continue
		}
		component := g.component(n.ID, done)
		start, err := NewRightmostEdgeFinder(g).FindEdge(component)
		if err != nil {
			return err
		}
		if err := g.SetEdgeDepths(start, planar.Right, outsideDepth); err != nil {
			return err
		}
		if err := g.copySymDepths(start); err != nil {
			return err
		}
		if err := g.computeDepths(start); err != nil {
			return err
		}
	}
	return nil
}

// component returns the directed edges of the connected component
// containing node start, marking its nodes in done.
func (g *Graph) component(start NodeID, done []bool) []DirEdgeID {
	var o []DirEdgeID
	queue := []NodeID{start}
	done[start] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, id := range g.nodes[n].Star.Edges() {
			o = append(o, id)
			adj := g.dirEdges[id^1].Node
			if !done[adj] {
				done[adj] = true
				queue = append(queue, adj)
			}
		}
	}
	return o
}

// computeDepths visits the nodes of the component of start breadth first,
// propagating depths around each node's star from an edge whose depths
// are already known.
func (g *Graph) computeDepths(start DirEdgeID) error {
	visited := map[NodeID]bool{}
	startNode := g.dirEdges[start].Node
	queue := []NodeID{startNode}
	visited[startNode] = true
	g.dirEdges[start].Visited = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := g.computeNodeDepth(n); err != nil {
			return err
		}
		for _, id := range g.nodes[n].Star.Edges() {
			sym := g.dirEdges[id^1]
			if sym.Visited {
				continue
			}
			if !visited[sym.Node] {
				visited[sym.Node] = true
				queue = append(queue, sym.Node)
			}
		}
	}
	return nil
}

func (g *Graph) computeNodeDepth(n NodeID) error {
	star := g.nodes[n].Star
	start := NoDirEdge
	for _, id := range star.Edges() {
		if g.dirEdges[id].Visited || g.dirEdges[id^1].Visited {
			start = id
			break
		}
	}
	if start == NoDirEdge {
		return planar.NewTopologyError("unable to find edge to compute depths", g.nodes[n].Coord)
	}
	if err := star.ComputeDepths(start); err != nil {
		return err
	}
	for _, id := range star.Edges() {
		g.dirEdges[id].Visited = true
		if err := g.copySymDepths(id); err != nil {
			return err
		}
	}
	return nil
}

// UpdateIM adds the contribution of every edge and node to im.
func (g *Graph) UpdateIM(im *planar.IntersectionMatrix) {
	for _, e := range g.edges {
		e.UpdateIM(im)
	}
	for _, n := range g.nodes {
		n.UpdateIM(im)
	}
}

func (g *Graph) String() string {
	s := fmt.Sprintf("Graph: %d edges, %d nodes\n", len(g.edges), len(g.nodes))
	for i, e := range g.edges {
		s += fmt.Sprintf("%d: %v\n", i, e)
	}
	return s
}
