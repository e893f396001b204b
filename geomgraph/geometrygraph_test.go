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
	"testing"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

func TestBoundaryNodeRules(t *testing.T) {
	two := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 10}},
	}
	three := append(geom.MultiLineString{{{X: 0, Y: 0}, {X: -10, Y: 0}}}, two...)

	tests := []struct {
		name string
		g    geom.Geom
		rule planar.BoundaryNodeRule
		want planar.Location
	}{
		{"mod2 even", two, planar.Mod2, planar.Interior},
		{"mod2 odd", three, planar.Mod2, planar.Boundary},
		{"default rule", three, nil, planar.Boundary},
		{"endpoint", two, planar.EndPoint, planar.Boundary},
		{"multivalent", two, planar.MultiValentEndPoint, planar.Boundary},
		{"monovalent", three, planar.MonoValentEndPoint, planar.Interior},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gg, err := NewGeometryGraph(0, test.g, test.rule)
			if err != nil {
				t.Fatal(err)
			}
			n := gg.Find(planar.XY(0, 0))
			if n == nil {
				t.Fatal("missing node")
			}
			if loc := n.Label.LocationOn(0); loc != test.want {
				t.Errorf("have %v, want %v", loc, test.want)
			}
		})
	}

	gg, err := NewGeometryGraph(0, two, planar.Mod2)
	if err != nil {
		t.Fatal(err)
	}
	want := []planar.Coordinate{planar.XY(0, 10), planar.XY(10, 0)}
	if have := gg.BoundaryPoints(); !equal2D(have, want) {
		t.Errorf("boundary points: have %v, want %v", have, want)
	}
	if !gg.IsBoundaryNode(0, planar.XY(10, 0)) || gg.IsBoundaryNode(0, planar.XY(0, 0)) {
		t.Error("boundary nodes")
	}
	if gg.Locate(planar.XY(0, 0)) != planar.Interior || gg.Locate(planar.XY(0, 10)) != planar.Boundary {
		t.Error("locate on lines")
	}
}

func TestGeometryGraphPolygon(t *testing.T) {
	ccw := geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	gg, err := NewGeometryGraph(1, ccw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gg.Edges()) != 1 {
		t.Fatalf("edges: have %d, want 1", len(gg.Edges()))
	}
	e := gg.Edge(0)
	if e.NumPoints() != 5 || !e.IsClosed() {
		t.Errorf("ring was not closed: %v", e)
	}
	if e.Label.Location(1, planar.Left) != planar.Interior || e.Label.Location(1, planar.Right) != planar.Exterior {
		t.Errorf("counter-clockwise shell label: %v", e.Label)
	}
	if !e.Label.IsNull(0) {
		t.Errorf("other geometry should be null: %v", e.Label)
	}
	if n := gg.Find(planar.XY(0, 0)); n == nil || n.Label.LocationOn(1) != planar.Boundary {
		t.Error("ring start should be a boundary node")
	}
	tests := []struct {
		p    planar.Coordinate
		want planar.Location
	}{
		{planar.XY(5, 5), planar.Interior},
		{planar.XY(10, 5), planar.Boundary},
		{planar.XY(20, 5), planar.Exterior},
	}
	for _, test := range tests {
		if loc := gg.Locate(test.p); loc != test.want {
			t.Errorf("locate %v: have %v, want %v", test.p, loc, test.want)
		}
		if loc := gg.LocateInArea(test.p); loc != test.want {
			t.Errorf("locate in area %v: have %v, want %v", test.p, loc, test.want)
		}
	}

	cw := geom.Polygon{{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}}
	gg, err = NewGeometryGraph(0, cw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if l := gg.Edge(0).Label; l.Location(0, planar.Left) != planar.Exterior || l.Location(0, planar.Right) != planar.Interior {
		t.Errorf("clockwise shell label: %v", l)
	}
}

func TestTooFewPoints(t *testing.T) {
	tests := []struct {
		name string
		g    geom.Geom
	}{
		{"line", geom.LineString{{X: 1, Y: 1}, {X: 1, Y: 1}}},
		{"ring", geom.Polygon{{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gg, err := NewGeometryGraph(0, test.g, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !gg.HasTooFewPoints() {
				t.Fatal("should have too few points")
			}
			if !gg.InvalidPoint().Equals2D(planar.XY(1, 1)) {
				t.Errorf("invalid point: %v", gg.InvalidPoint())
			}
			if len(gg.Edges()) != 0 {
				t.Error("no edge should be added")
			}
		})
	}
}

func TestComputeSelfNodes(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	gg, err := NewGeometryGraph(0, line, nil)
	if err != nil {
		t.Fatal(err)
	}
	si := gg.ComputeSelfNodes(new(algorithm.LineIntersector), true)
	if !si.HasIntersection() || !si.HasProperIntersection() {
		t.Fatal("should find a proper self intersection")
	}
	if p, _ := si.ProperIntersectionPoint(); !p.Equals2D(planar.XY(5, 5)) {
		t.Errorf("proper intersection at %v", p)
	}
	if len(gg.Nodes()) != 3 {
		t.Errorf("nodes: have %d, want 3", len(gg.Nodes()))
	}
	if n := gg.Find(planar.XY(5, 5)); n == nil || n.Label.LocationOn(0) != planar.Interior {
		t.Error("self intersection should be an interior node")
	}

	split := gg.ComputeSplitEdges(nil)
	want := [][]planar.Coordinate{
		{planar.XY(0, 0), planar.XY(5, 5)},
		{planar.XY(5, 5), planar.XY(10, 10), planar.XY(10, 0), planar.XY(5, 5)},
		{planar.XY(5, 5), planar.XY(0, 10)},
	}
	if len(split) != len(want) {
		t.Fatalf("split edges: have %d, want %d", len(split), len(want))
	}
	for i, e := range split {
		if !equal2D(e.Coordinates(), want[i]) {
			t.Errorf("split edge %d: have %v, want %v", i, e.Coordinates(), want[i])
		}
		if e.Label.LocationOn(0) != planar.Interior {
			t.Errorf("split edge %d label: %v", i, e.Label)
		}
	}
}

func TestComputeEdgeIntersections(t *testing.T) {
	a := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 10}}
	b := geom.LineString{{X: 0, Y: 10}, {X: 10, Y: 0}}
	for _, includeProper := range []bool{true, false} {
		ga, err := NewGeometryGraph(0, a, nil)
		if err != nil {
			t.Fatal(err)
		}
		gb, err := NewGeometryGraph(1, b, nil)
		if err != nil {
			t.Fatal(err)
		}
		si := ga.ComputeEdgeIntersections(gb, new(algorithm.LineIntersector), includeProper)
		if !si.HasProperInteriorIntersection() {
			t.Errorf("includeProper=%v: should find a proper interior intersection", includeProper)
		}
		if ga.Edge(0).IsIsolated() || gb.Edge(0).IsIsolated() {
			t.Error("intersecting edges are not isolated")
		}
		wantSplit := 1
		if includeProper {
			wantSplit = 2
		}
		if n := len(ga.ComputeSplitEdges(nil)); n != wantSplit {
			t.Errorf("includeProper=%v: split edges: have %d, want %d", includeProper, n, wantSplit)
		}
	}
}

func TestEdgeList(t *testing.T) {
	pts := []planar.Coordinate{planar.XY(0, 0), planar.XY(5, 5), planar.XY(10, 0)}
	l := NewEdgeList()
	e := NewEdge(pts, NewGeomLabel(0, planar.Interior))
	l.Add(e)
	l.Add(NewEdge([]planar.Coordinate{planar.XY(0, 0), planar.XY(1, 0)}, NewGeomLabel(0, planar.Interior)))

	rev := NewEdge(planar.Reverse(pts), NewGeomLabel(1, planar.Interior))
	if l.FindEqualEdge(rev) != e {
		t.Error("reversed edge not found")
	}
	if rev.IsPointwiseEqual(e) || !rev.Equals(e) {
		t.Error("edge equality")
	}
	other := NewEdge([]planar.Coordinate{planar.XY(0, 0), planar.XY(5, 6), planar.XY(10, 0)}, NewGeomLabel(0, planar.Interior))
	if l.FindEqualEdge(other) != nil {
		t.Error("different edge found")
	}
	if l.FindEdgeIndex(e) != 0 || l.FindEdgeIndex(rev) != -1 || l.Len() != 2 {
		t.Error("edge index")
	}
}

func TestEdgeCollapse(t *testing.T) {
	e := NewEdge([]planar.Coordinate{planar.XY(0, 0), planar.XY(1, 1), planar.XY(0, 0)},
		NewGeomAreaLabel(0, planar.Boundary, planar.Exterior, planar.Interior))
	if !e.IsCollapsed() {
		t.Fatal("should be collapsed")
	}
	c := e.CollapsedEdge()
	if c.NumPoints() != 2 || !c.Label.IsLine(0) || c.Label.LocationOn(0) != planar.Boundary {
		t.Errorf("collapsed edge: %v", c)
	}
}

func TestEdgeIntersectionList(t *testing.T) {
	e := NewEdge([]planar.Coordinate{planar.XY(0, 0), planar.XY(10, 0), planar.XY(20, 0)}, NewGeomLabel(0, planar.Interior))
	l := e.Intersections()
	l.Add(planar.XY(15, 0), 1, 5)
	l.Add(planar.XY(5, 0), 0, 5)
	l.Add(planar.XY(5, 0), 0, 5)
	if l.Len() != 2 {
		t.Fatalf("intersections: have %d, want 2", l.Len())
	}
	if !l.IsIntersection(planar.XY(15, 0)) || l.IsIntersection(planar.XY(10, 0)) {
		t.Error("is intersection")
	}
	split := l.AddSplitEdges(nil)
	want := [][]planar.Coordinate{
		{planar.XY(0, 0), planar.XY(5, 0)},
		{planar.XY(5, 0), planar.XY(10, 0), planar.XY(15, 0)},
		{planar.XY(15, 0), planar.XY(20, 0)},
	}
	if len(split) != len(want) {
		t.Fatalf("split edges: have %d, want %d", len(split), len(want))
	}
	for i := range want {
		if !equal2D(split[i].Coordinates(), want[i]) {
			t.Errorf("split edge %d: have %v, want %v", i, split[i].Coordinates(), want[i])
		}
	}
}
