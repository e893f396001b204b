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

// Node is a point in a graph where edges meet, or an isolated point.
type Node struct {
	ID    NodeID
	Coord planar.Coordinate
	// Label gives the location of the node in each geometry.
	Label Label
	// Star holds the directed edges leaving the node.
	Star *EdgeEndStar
}

// IsIsolated returns whether the node belongs to only one geometry.
func (n *Node) IsIsolated() bool { return n.Label.GeometryCount() == 1 }

// SetLabelAt sets the location of the node in geometry geomIndex.
func (n *Node) SetLabelAt(geomIndex int, loc planar.Location) {
	n.Label = n.Label.WithLocationOn(geomIndex, loc)
}

// MergeLabel fills the unknown locations of the node label from l. A
// Boundary location already on the node is kept.
func (n *Node) MergeLabel(l Label) {
	for i := 0; i < 2; i++ {
		loc := n.Label.LocationOn(i)
		if !l.IsNull(i) && loc != planar.Boundary {
			loc = l.LocationOn(i)
		}
		if n.Label.LocationOn(i) == planar.None {
			n.Label = n.Label.WithLocationOn(i, loc)
		}
	}
}

// UpdateIM adds the point contribution of the node to im.
func (n *Node) UpdateIM(im *planar.IntersectionMatrix) {
	im.SetAtLeastIfValid(n.Label.LocationOn(0), n.Label.LocationOn(1), planar.P)
}

func (n *Node) String() string {
	return fmt.Sprintf("node %v lbl: %v", n.Coord, n.Label)
}

type nodeItem struct {
	p  planar.Coordinate
	id NodeID
}

func (ni nodeItem) Less(than btree.Item) bool {
	return ni.p.Compare(than.(nodeItem).p) < 0
}

// NodeMap indexes the nodes of a graph by coordinate.
type NodeMap struct {
	g     *Graph
	index *btree.BTree
}

func newNodeMap(g *Graph) *NodeMap {
	return &NodeMap{g: g, index: btree.New(8)}
}

// AddNode returns the node at p, creating it if needed. The Z of a new
// node is taken from p; an existing node without Z takes the Z of p.
func (m *NodeMap) AddNode(p planar.Coordinate) *Node {
	if n := m.Find(p); n != nil {
		if n.Coord.Z != n.Coord.Z {
			n.Coord.Z = p.Z
		}
		return n
	}
	id := NodeID(len(m.g.nodes))
	n := &Node{ID: id, Coord: p, Label: NewLabel(planar.None)}
	n.Star = newEdgeEndStar(m.g, id)
	m.g.nodes = append(m.g.nodes, n)
	m.index.ReplaceOrInsert(nodeItem{p: p, id: id})
	return n
}

// Add inserts the directed edge into the star of the node at its start,
// creating the node if needed.
func (m *NodeMap) Add(de *DirectedEdge) *Node {
	n := m.AddNode(de.Coordinate())
	n.Star.Insert(de.ID)
	de.Node = n.ID
	return n
}

// Find returns the node at p, or nil.
func (m *NodeMap) Find(p planar.Coordinate) *Node {
	i := m.index.Get(nodeItem{p: p})
	if i == nil {
		return nil
	}
	return m.g.nodes[i.(nodeItem).id]
}

// Nodes returns the nodes ordered by coordinate.
func (m *NodeMap) Nodes() []*Node {
	o := make([]*Node, 0, m.index.Len())
	m.index.Ascend(func(i btree.Item) bool {
		o = append(o, m.g.nodes[i.(nodeItem).id])
		return true
	})
	return o
}

// BoundaryNodes returns the nodes on the boundary of geometry geomIndex,
// ordered by coordinate.
func (m *NodeMap) BoundaryNodes(geomIndex int) []*Node {
	var o []*Node
	for _, n := range m.Nodes() {
		if n.Label.LocationOn(geomIndex) == planar.Boundary {
			o = append(o, n)
		}
	}
	return o
}

// Len returns the number of nodes.
func (m *NodeMap) Len() int { return m.index.Len() }
