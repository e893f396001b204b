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
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/planar"
)

func square(x0, y0, size float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size}, {X: x0, Y: y0},
	}}
}

var squareWithHole = geom.Polygon{
	{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
	{{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}, {X: 2, Y: 2}},
}

func TestTopologyIntersectionMatrix(t *testing.T) {
	tests := []struct {
		name  string
		a, b  geom.Geom
		want  string
		edges int
	}{
		{
			name:  "disjoint squares",
			a:     square(0, 0, 10),
			b:     square(20, 0, 10),
			want:  "FF2FF1212",
			edges: 2,
		},
		{
			name:  "point in square",
			a:     geom.Point{X: 5, Y: 5},
			b:     square(0, 0, 10),
			want:  "0FFFFF212",
			edges: 1,
		},
		{
			name:  "equal squares",
			a:     square(0, 0, 10),
			b:     square(0, 0, 10),
			want:  "2FFF1FFF2",
			edges: 4,
		},
		{
			name:  "touching at a point",
			a:     square(0, 0, 10),
			b:     geom.Polygon{{{X: 10, Y: 5}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 5}}},
			want:  "FF2F01212",
			edges: 3,
		},
		{
			name:  "shared edge",
			a:     square(0, 0, 10),
			b:     square(10, 0, 10),
			want:  "FF2F11212",
			edges: 4,
		},
		{
			name:  "overlapping squares",
			a:     square(0, 0, 10),
			b:     square(5, 5, 10),
			want:  "212101212",
			edges: 6,
		},
		{
			name:  "square in hole",
			a:     squareWithHole,
			b:     square(4, 4, 2),
			want:  "FF2FF1212",
			edges: 3,
		},
		{
			name:  "square in polygon with hole",
			a:     squareWithHole,
			b:     square(0.5, 0.5, 1),
			want:  "212FF1FF2",
			edges: 3,
		},
		{
			name:  "line crossing boundary",
			a:     square(0, 0, 10),
			b:     geom.LineString{{X: 5, Y: 5}, {X: 15, Y: 5}},
			want:  "1020F1102",
			edges: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			logger.Level = logrus.DebugLevel
			top, err := NewTopology(tt.a, tt.b, nil, nil)
			if err != nil {
				t.Fatal(err)
			}
			top.Log = logger
			if err := top.Build(); err != nil {
				t.Fatal(err)
			}
			if im := top.IntersectionMatrix().String(); im != tt.want {
				t.Errorf("matrix: have %s, want %s", im, tt.want)
			}
			if n := top.UniqueEdges().Len(); n != tt.edges {
				t.Errorf("edges: have %d, want %d", n, tt.edges)
			}
			entry := hook.LastEntry()
			if entry == nil || entry.Message != "geomgraph: built topology" {
				t.Errorf("last log entry: %+v", entry)
			}
		})
	}
}

func TestTopologyLabels(t *testing.T) {
	top, err := NewTopology(square(0, 0, 10), square(20, 0, 10), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	n := top.Find(planar.XY(0, 0))
	if n == nil {
		t.Fatal("missing node")
	}
	if n.Label.LocationOn(0) != planar.Boundary || n.Label.LocationOn(1) != planar.Exterior {
		t.Errorf("node label: %v", n.Label)
	}
	for _, id := range n.Star.Edges() {
		de := top.DirectedEdge(id)
		if !de.Label.AllPositionsEqual(1, planar.Exterior) {
			t.Errorf("directed edge %d: %v", id, de.Label)
		}
		if de.IsInteriorAreaEdge() || de.IsLineEdge() {
			t.Errorf("directed edge %d classification", id)
		}
	}
}

func TestTopologyBoundaryNodes(t *testing.T) {
	top, err := NewTopology(square(0, 0, 10), square(10, 0, 10), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	for _, p := range []planar.Coordinate{planar.XY(10, 0), planar.XY(10, 10)} {
		n := top.Find(p)
		if n == nil {
			t.Fatalf("missing node at %v", p)
		}
		if n.Label.LocationOn(0) != planar.Boundary || n.Label.LocationOn(1) != planar.Boundary {
			t.Errorf("node %v label: %v", p, n.Label)
		}
	}
	im := top.IntersectionMatrix()
	if !im.IsTouches(planar.A, planar.A) {
		t.Errorf("%s does not touch", im)
	}
}

func TestInsertUniqueEdge(t *testing.T) {
	top, err := NewTopology(nil, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	pts := []planar.Coordinate{planar.XY(0, 0), planar.XY(10, 0)}
	top.InsertUniqueEdge(NewEdge(pts, NewGeomAreaLabel(0, planar.Boundary, planar.Interior, planar.Exterior)))
	top.InsertUniqueEdge(NewEdge(planar.Reverse(pts), NewGeomAreaLabel(1, planar.Boundary, planar.Exterior, planar.Interior)))
	if top.UniqueEdges().Len() != 1 {
		t.Fatalf("edges: have %d, want 1", top.UniqueEdges().Len())
	}
	e := top.UniqueEdges().Get(0)
	// The reversed edge is flipped into the direction of the first.
	if e.Label.Location(1, planar.Left) != planar.Interior || e.Label.Location(1, planar.Right) != planar.Exterior {
		t.Errorf("merged label: %v", e.Label)
	}
	d := e.Depth()
	if d.Get(0, planar.Left) != 1 || d.Get(1, planar.Left) != 1 || d.Get(1, planar.Right) != 0 {
		t.Errorf("merged depth: %v", d)
	}

	top.computeLabelsFromDepths()
	if !e.Label.IsAreaAt(0) || e.Label.Location(0, planar.Left) != planar.Interior {
		t.Errorf("label from depths: %v", e.Label)
	}
}

func TestComputeLabelsFromDepthsCollapse(t *testing.T) {
	top, err := NewTopology(nil, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	pts := []planar.Coordinate{planar.XY(0, 0), planar.XY(10, 0)}
	// Two areas of the same geometry on either side of a shared edge.
	top.InsertUniqueEdge(NewEdge(pts, NewGeomAreaLabel(0, planar.Boundary, planar.Interior, planar.Exterior)))
	top.InsertUniqueEdge(NewEdge(pts, NewGeomAreaLabel(0, planar.Boundary, planar.Exterior, planar.Interior)))
	top.computeLabelsFromDepths()
	e := top.UniqueEdges().Get(0)
	if !e.Label.IsLine(0) || e.Label.LocationOn(0) != planar.Boundary {
		t.Errorf("collapsed label: %v", e.Label)
	}
}
