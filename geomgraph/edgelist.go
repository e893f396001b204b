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
	"github.com/spatialmodel/planar/internal/hash"
)

// EdgeList is a list of edges indexed so that an edge equal to a given
// edge, in either direction, can be found quickly.
type EdgeList struct {
	edges []*Edge
	index map[string][]int
}

// NewEdgeList returns an empty list.
func NewEdgeList() *EdgeList {
	return &EdgeList{index: make(map[string][]int)}
}

// Add appends e to the list.
func (l *EdgeList) Add(e *Edge) {
	k := hash.EdgeKey(e.pts)
	l.index[k] = append(l.index[k], len(l.edges))
	l.edges = append(l.edges, e)
}

// AddAll appends edges to the list.
func (l *EdgeList) AddAll(edges []*Edge) {
	for _, e := range edges {
		l.Add(e)
	}
}

// Edges returns the edges in insertion order.
func (l *EdgeList) Edges() []*Edge { return l.edges }

// Len returns the number of edges.
func (l *EdgeList) Len() int { return len(l.edges) }

// Get returns edge i.
func (l *EdgeList) Get(i int) *Edge { return l.edges[i] }

// FindEqualEdge returns an edge in the list with the same points as e, in
// the same or opposite order, or nil.
func (l *EdgeList) FindEqualEdge(e *Edge) *Edge {
	for _, i := range l.index[hash.EdgeKey(e.pts)] {
		if l.edges[i].Equals(e) {
			return l.edges[i]
		}
	}
	return nil
}

// FindEdgeIndex returns the position of e in the list, or -1.
func (l *EdgeList) FindEdgeIndex(e *Edge) int {
	for i, o := range l.edges {
		if o == e {
			return i
		}
	}
	return -1
}
