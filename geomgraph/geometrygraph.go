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
)

// GeometryGraph is the graph of a single input geometry. Its edges are
// the linear components of the geometry, labelled with the locations of
// their sides, and its nodes are the points where the boundary and
// interior of the geometry are decided.
type GeometryGraph struct {
	*Graph

	// ArgIndex is the index of the geometry in a relate or overlay
	// operation, 0 or 1.
	ArgIndex int
	// Geom is the geometry the graph was built from.
	Geom geom.Geom
	// Rule decides which line endpoints are on the boundary.
	Rule planar.BoundaryNodeRule

	useBoundaryDeterminationRule bool
	boundaryCount                map[NodeID]int
	boundaryNodes                []*Node

	hasTooFewPoints bool
	invalidPoint    planar.Coordinate

	areaLocator *locate.IndexedPointInAreaLocator
	ptLocator   locate.PointLocator
}

// NewGeometryGraph builds the graph of g as argument argIndex. A nil rule
// means the Mod-2 rule.
func NewGeometryGraph(argIndex int, g geom.Geom, rule planar.BoundaryNodeRule) (*GeometryGraph, error) {
	if rule == nil {
		rule = planar.Mod2
	}
	gg := &GeometryGraph{
		Graph:                        NewGraph(),
		ArgIndex:                     argIndex,
		Geom:                         g,
		Rule:                         rule,
		useBoundaryDeterminationRule: true,
		boundaryCount:                make(map[NodeID]int),
		ptLocator:                    locate.PointLocator{Rule: rule},
	}
	if g != nil {
		if err := gg.add(g); err != nil {
			return nil, err
		}
	}
	gg.log().WithFields(logrus.Fields{
		"arg":   argIndex,
		"type":  fmt.Sprintf("%T", g),
		"edges": len(gg.edges),
		"nodes": len(gg.nodes),
	}).Debug("geomgraph: built geometry graph")
	return gg, nil
}

func (gg *GeometryGraph) add(g geom.Geom) error {
	if planar.IsEmpty(g) {
		return nil
	}
	switch t := g.(type) {
	case geom.Point:
		gg.insertPoint(planar.FromPoint(t), planar.Interior)
	case *geom.Point:
		gg.insertPoint(planar.FromPoint(*t), planar.Interior)
	case geom.LineString:
		gg.addLineString(t)
	case geom.Polygon:
		return gg.addPolygon(t)
	case geom.MultiPoint:
		for _, p := range t {
			gg.insertPoint(planar.FromPoint(p), planar.Interior)
		}
	case geom.MultiLineString:
		for _, l := range t {
			gg.addLineString(l)
		}
	case geom.MultiPolygon:
		// The boundaries of the polygons of a valid MultiPolygon only touch
		// at points, so node locations are not decided by counting.
		gg.useBoundaryDeterminationRule = false
		for _, p := range t {
			if err := gg.addPolygon(p); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, c := range t {
			if err := gg.add(c); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("geomgraph: unsupported geometry type %T", g)
	}
	return nil
}

func (gg *GeometryGraph) addPolygon(p geom.Polygon) error {
	for i, ring := range p {
		var err error
		if i == 0 {
			err = gg.addPolygonRing(ring, planar.Exterior, planar.Interior)
		} else {
			err = gg.addPolygonRing(ring, planar.Interior, planar.Exterior)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addPolygonRing adds a ring with cwLeft and cwRight as its side locations
// when it is oriented clockwise.
func (gg *GeometryGraph) addPolygonRing(ring []geom.Point, cwLeft, cwRight planar.Location) error {
	if len(ring) == 0 {
		return nil
	}
	pts := planar.RemoveRepeatedPoints(planar.RingCoordinates(ring))
	if len(pts) < 4 {
		gg.hasTooFewPoints = true
		gg.invalidPoint = pts[0]
		return nil
	}
	isCCW, err := algorithm.IsCCW(pts)
	if err != nil {
		return fmt.Errorf("geomgraph: adding polygon ring: %w", err)
	}
	left, right := cwLeft, cwRight
	if isCCW {
		left, right = cwRight, cwLeft
	}
	gg.InsertEdge(NewEdge(pts, NewGeomAreaLabel(gg.ArgIndex, planar.Boundary, left, right)))
	gg.insertPoint(pts[0], planar.Boundary)
	return nil
}

func (gg *GeometryGraph) addLineString(l geom.LineString) {
	if len(l) == 0 {
		return
	}
	pts := planar.RemoveRepeatedPoints(planar.Coordinates(l))
	if len(pts) < 2 {
		gg.hasTooFewPoints = true
		gg.invalidPoint = pts[0]
		return
	}
	gg.InsertEdge(NewEdge(pts, NewGeomLabel(gg.ArgIndex, planar.Interior)))
	gg.insertBoundaryPoint(pts[0])
	gg.insertBoundaryPoint(pts[len(pts)-1])
}

// AddEdge adds a line edge whose endpoints are on the boundary, as from
// the result of a noding operation.
func (gg *GeometryGraph) AddEdge(e *Edge) {
	gg.InsertEdge(e)
	gg.insertPoint(e.pts[0], planar.Boundary)
	gg.insertPoint(e.pts[len(e.pts)-1], planar.Boundary)
}

// AddPoint adds an isolated point in the interior of the geometry.
func (gg *GeometryGraph) AddPoint(p planar.Coordinate) {
	gg.insertPoint(p, planar.Interior)
}

func (gg *GeometryGraph) insertPoint(p planar.Coordinate, loc planar.Location) {
	n := gg.AddNode(p)
	n.SetLabelAt(gg.ArgIndex, loc)
	gg.boundaryNodes = nil
}

// insertBoundaryPoint adds a line endpoint at p and decides its location
// with the boundary node rule from the number of endpoints at p.
func (gg *GeometryGraph) insertBoundaryPoint(p planar.Coordinate) {
	n := gg.AddNode(p)
	gg.boundaryCount[n.ID]++
	n.SetLabelAt(gg.ArgIndex, planar.BoundaryLocation(gg.Rule, gg.boundaryCount[n.ID]))
	gg.boundaryNodes = nil
}

// HasTooFewPoints returns whether a component of the geometry had too few
// distinct points to form a line or ring. InvalidPoint returns a point
// of the first such component.
func (gg *GeometryGraph) HasTooFewPoints() bool { return gg.hasTooFewPoints }

// InvalidPoint returns a point of a component with too few points.
func (gg *GeometryGraph) InvalidPoint() planar.Coordinate { return gg.invalidPoint }

// isRings returns whether the edges of the graph are polygon rings.
func (gg *GeometryGraph) isRings() bool {
	switch gg.Geom.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return true
	}
	return false
}

// ComputeSelfNodes finds the self intersections of the geometry's edges
// and adds nodes for them. The segments of a single polygon ring are
// tested against each other only if computeRingSelfNodes is true, since
// the rings of a valid polygon do not self-intersect.
func (gg *GeometryGraph) ComputeSelfNodes(li *algorithm.LineIntersector, computeRingSelfNodes bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, true, false)
	esi := &EdgeSetIntersector{Log: gg.Log}
	esi.ComputeIntersections(gg.edges, si, computeRingSelfNodes || !gg.isRings())
	gg.addSelfIntersectionNodes()
	return si
}

// ComputeEdgeIntersections finds the intersections between the edges of
// gg and the edges of other, recording them on both.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li *algorithm.LineIntersector, includeProper bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, includeProper, true)
	si.SetBoundaryNodes(gg.BoundaryNodes(), other.BoundaryNodes())
	esi := &EdgeSetIntersector{Log: gg.Log}
	esi.ComputeMutualIntersections(gg.edges, other.edges, si)
	return si
}

// ComputeSplitEdges appends the edges of gg, split at their intersections,
// to edges.
func (gg *GeometryGraph) ComputeSplitEdges(edges []*Edge) []*Edge {
	for _, e := range gg.edges {
		edges = e.eiList.AddSplitEdges(edges)
	}
	return edges
}

func (gg *GeometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		loc := e.Label.LocationOn(gg.ArgIndex)
		for _, ei := range e.eiList.Intersections() {
			gg.addSelfIntersectionNode(ei.Coord, loc)
		}
	}
}

// addSelfIntersectionNode adds a node for a self intersection, unless one
// already exists on the boundary. A self intersection of area boundaries
// is decided by the boundary node rule.
func (gg *GeometryGraph) addSelfIntersectionNode(p planar.Coordinate, loc planar.Location) {
	if gg.IsBoundaryNode(gg.ArgIndex, p) {
		return
	}
	if loc == planar.Boundary && gg.useBoundaryDeterminationRule {
		gg.insertBoundaryPoint(p)
		return
	}
	gg.insertPoint(p, loc)
}

// BoundaryNodes returns the nodes on the boundary of the geometry, ordered
// by coordinate.
func (gg *GeometryGraph) BoundaryNodes() []*Node {
	if gg.boundaryNodes == nil {
		gg.boundaryNodes = gg.nodeMap.BoundaryNodes(gg.ArgIndex)
	}
	return gg.boundaryNodes
}

// BoundaryPoints returns the coordinates of the boundary nodes.
func (gg *GeometryGraph) BoundaryPoints() []planar.Coordinate {
	nodes := gg.BoundaryNodes()
	o := make([]planar.Coordinate, len(nodes))
	for i, n := range nodes {
		o[i] = n.Coord
	}
	return o
}

// Locate returns the location of p relative to the geometry. Polygonal
// geometries are located with an index built on first use.
func (gg *GeometryGraph) Locate(p planar.Coordinate) planar.Location {
	if gg.isRings() {
		if gg.areaLocator == nil {
			l, err := locate.NewIndexedPointInAreaLocator(gg.Geom)
			if err != nil {
				panic(err)
			}
			gg.areaLocator = l
		}
		return gg.areaLocator.Locate(p)
	}
	return gg.ptLocator.Locate(p, gg.Geom)
}

// LocateInArea returns the location of p relative to the areal components
// of the geometry only.
func (gg *GeometryGraph) LocateInArea(p planar.Coordinate) planar.Location {
	if gg.Geom == nil {
		return planar.Exterior
	}
	return locate.LocateInArea(p, gg.Geom)
}
