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

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
	"github.com/spatialmodel/planar/locate"
	"github.com/spatialmodel/planar/noding"
)

// Topology is the fully labelled graph of two geometries: their linework
// noded against each other, duplicate edges merged, and every edge and
// node labelled with its location in both geometries. It is the input to
// relate and overlay operations.
type Topology struct {
	*Graph

	// Args are the graphs of the two input geometries.
	Args [2]*GeometryGraph

	// Validate requests a check that the split edges are fully noded
	// before they are added to the graph.
	Validate bool

	li        *algorithm.LineIntersector
	edgeList  *EdgeList
	ptLocator locate.PointLocator
}

// NewTopology returns an unbuilt topology of g0 and g1. pm, if non-nil, is
// applied to computed intersection points.
func NewTopology(g0, g1 geom.Geom, rule planar.BoundaryNodeRule, pm *planar.PrecisionModel) (*Topology, error) {
	t := &Topology{
		Graph:     NewGraph(),
		Validate:  true,
		li:        &algorithm.LineIntersector{PrecisionModel: pm},
		edgeList:  NewEdgeList(),
		ptLocator: locate.PointLocator{Rule: rule},
	}
	for i, g := range []geom.Geom{g0, g1} {
		gg, err := NewGeometryGraph(i, g, rule)
		if err != nil {
			return nil, err
		}
		t.Args[i] = gg
	}
	return t, nil
}

// Build nodes the linework of the two geometries and labels the result.
func (t *Topology) Build() error {
	for i := range t.Args {
		t.Args[i].Log = t.Log
	}

	t.Args[0].ComputeSelfNodes(t.li, false)
	t.Args[1].ComputeSelfNodes(t.li, false)
	t.Args[0].ComputeEdgeIntersections(t.Args[1], t.li, true)

	// The nodes of each argument graph are copied last, so their labels
	// replace the ones inferred from the edges.
	for i := range t.Args {
		t.computeIntersectionNodes(i)
	}
	for i := range t.Args {
		t.copyPoints(i)
	}

	var splitEdges []*Edge
	splitEdges = t.Args[0].ComputeSplitEdges(splitEdges)
	splitEdges = t.Args[1].ComputeSplitEdges(splitEdges)
	for _, e := range splitEdges {
		t.InsertUniqueEdge(e)
	}

	t.computeLabelsFromDepths()
	t.replaceCollapsedEdges()

	if t.Validate {
		if err := t.checkNoding(); err != nil {
			return err
		}
	}

	t.AddEdges(t.edgeList.Edges())
	if err := t.computeLabelling(); err != nil {
		return err
	}
	t.labelIncompleteNodes()
	t.updateEdgeLabels()

	t.log().WithFields(logrus.Fields{
		"split_edges": len(splitEdges),
		"edges":       len(t.edges),
		"nodes":       len(t.nodes),
	}).Debug("geomgraph: built topology")
	return nil
}

// IntersectionMatrix returns the matrix of the labelled graph. Build must
// have been called.
func (t *Topology) IntersectionMatrix() *planar.IntersectionMatrix {
	im := planar.NewIntersectionMatrix()
	im.Set(planar.Exterior, planar.Exterior, planar.A)
	t.UpdateIM(im)
	return im
}

// copyPoints copies the nodes of argument i into the graph, so that
// isolated points and line endpoints are kept.
func (t *Topology) copyPoints(i int) {
	for _, n := range t.Args[i].Nodes() {
		t.AddNode(n.Coord).SetLabelAt(i, n.Label.LocationOn(i))
	}
}

// computeIntersectionNodes adds a node at every intersection recorded on
// the edges of argument i. A point on an area edge is on the boundary of
// argument i; any other point is in its interior unless already labelled.
func (t *Topology) computeIntersectionNodes(i int) {
	for _, e := range t.Args[i].Edges() {
		onBoundary := e.Label.LocationOn(i) == planar.Boundary
		for _, ei := range e.Intersections().Intersections() {
			n := t.AddNode(ei.Coord)
			switch {
			case onBoundary:
				n.SetLabelAt(i, planar.Boundary)
			case n.Label.IsNull(i):
				n.SetLabelAt(i, planar.Interior)
			}
		}
	}
}

// InsertUniqueEdge adds e to the edge list unless an equal edge is in it
// already, in which case the label and depths of e are merged into the
// existing edge.
func (t *Topology) InsertUniqueEdge(e *Edge) {
	existing := t.edgeList.FindEqualEdge(e)
	if existing == nil {
		t.edgeList.Add(e)
		return
	}
	toMerge := e.Label
	if !existing.IsPointwiseEqual(e) {
		toMerge = toMerge.Flip()
	}
	depth := existing.Depth()
	if depth.IsNull() {
		depth.AddLabel(existing.Label)
	}
	depth.AddLabel(toMerge)
	existing.Label = existing.Label.Merge(toMerge)
}

// computeLabelsFromDepths relabels merged area edges from their depths. An
// edge with equal depth on both sides is a collapsed area boundary and
// becomes a line.
func (t *Topology) computeLabelsFromDepths() {
	for _, e := range t.edgeList.Edges() {
		depth := e.Depth()
		if depth.IsNull() {
			continue
		}
		depth.Normalize()
		for i := 0; i < 2; i++ {
			if e.Label.IsNull(i) || !e.Label.IsArea() || depth.IsNullAt(i) {
				continue
			}
			if depth.Delta(i) == 0 {
				e.Label = e.Label.ToLine(i)
				continue
			}
			e.Label = e.Label.
				WithLocation(i, planar.Left, depth.Location(i, planar.Left)).
				WithLocation(i, planar.Right, depth.Location(i, planar.Right))
		}
	}
}

// replaceCollapsedEdges replaces area edges that collapsed to A-B-A with
// line edges.
func (t *Topology) replaceCollapsedEdges() {
	edges := t.edgeList.Edges()
	for i, e := range edges {
		if e.IsCollapsed() {
			edges[i] = e.CollapsedEdge()
		}
	}
}

func (t *Topology) checkNoding() error {
	ss := make([]noding.SegmentString, len(t.edgeList.Edges()))
	for i, e := range t.edgeList.Edges() {
		ss[i] = noding.NewBasicSegmentString(e.pts, e)
	}
	if err := noding.NewFastNodingValidator(ss).CheckValid(); err != nil {
		return fmt.Errorf("geomgraph: split edges are not noded: %w", err)
	}
	return nil
}

func (t *Topology) computeLabelling() error {
	graphs := t.Args[:]
	for _, n := range t.nodes {
		if err := n.Star.ComputeLabelling(graphs); err != nil {
			return err
		}
	}
	for _, n := range t.nodes {
		n.Star.MergeSymLabels()
	}
	for _, n := range t.nodes {
		n.Label = n.Label.Merge(n.Star.Label())
	}
	return nil
}

// labelIncompleteNodes locates the isolated nodes, which belong to only
// one geometry, in the other geometry, and then labels the edges of every
// node whose locations are still unknown.
func (t *Topology) labelIncompleteNodes() {
	for _, n := range t.nodes {
		if n.IsIsolated() {
			target := 1
			if n.Label.IsNull(0) {
				target = 0
			}
			n.SetLabelAt(target, t.ptLocator.Locate(n.Coord, t.Args[target].Geom))
		}
		n.Star.UpdateLabelling(n.Label)
	}
}

// updateEdgeLabels copies the completed labels of the directed edges back
// to their edges, in the direction of the edge.
func (t *Topology) updateEdgeLabels() {
	for _, de := range t.dirEdges {
		e := t.edges[de.Edge]
		if de.IsForward {
			e.Label = e.Label.Merge(de.Label)
		} else {
			e.Label = e.Label.Merge(de.Label.Flip())
		}
	}
}

// UniqueEdges returns the merged split edges.
func (t *Topology) UniqueEdges() *EdgeList { return t.edgeList }
