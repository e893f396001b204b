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

package planar

import (
	"testing"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

func TestCoordinateEquality(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(1, 2, 4)
	if !a.Equals2D(b) {
		t.Error("Equals2D should ignore Z")
	}
	if a.Equals3D(b) {
		t.Error("Equals3D should compare Z")
	}
	if !XY(1, 2).Equals3D(XY(1, 2)) {
		t.Error("missing Z values should be equal")
	}
	if d := XY(0, 0).Distance(XY(3, 4)); d != 5 {
		t.Errorf("distance: have %g", d)
	}
	if XY(0, 1).Compare(XY(1, 0)) != -1 || XY(1, 1).Compare(XY(1, 0)) != 1 || XY(1, 1).Compare(XY(1, 1)) != 0 {
		t.Error("Compare")
	}
}

func TestPrecisionModel(t *testing.T) {
	var floating *PrecisionModel
	if c := floating.MakePrecise(XY(1.23456, 2.5)); c.X != 1.23456 {
		t.Errorf("floating model changed the coordinate: %v", c)
	}
	pm, err := NewFixedPrecision(10)
	if err != nil {
		t.Fatal(err)
	}
	c := pm.MakePrecise(XY(1.25, -1.25))
	if !floats.EqualWithinAbs(c.X, 1.3, 1e-12) || !floats.EqualWithinAbs(c.Y, -1.2, 1e-12) {
		t.Errorf("have %v", c)
	}
	if _, err := NewFixedPrecision(0); err == nil {
		t.Error("expected an error for a zero scale")
	}
}

func TestBoundaryNodeRules(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  Location
	}{
		{"mod2", 1, Boundary},
		{"mod2", 2, Interior},
		{"mod2", 3, Boundary},
		{"endpoint", 2, Boundary},
		{"multivalent", 1, Interior},
		{"multivalent", 2, Boundary},
		{"monovalent", 2, Interior},
	}
	for _, test := range tests {
		rule, err := BoundaryNodeRuleByName(test.name)
		if err != nil {
			t.Fatal(err)
		}
		if got := BoundaryLocation(rule, test.count); got != test.want {
			t.Errorf("%s(%d): have %v, want %v", test.name, test.count, got, test.want)
		}
	}
	if _, err := BoundaryNodeRuleByName("bogus"); err == nil {
		t.Error("expected an error for an unknown rule")
	}
}

func TestLinework(t *testing.T) {
	g := geom.GeometryCollection{
		geom.Point{X: 1, Y: 1},
		geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}},
		geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	}
	lines, err := Linework(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("have %d lines", len(lines))
	}
	ring := lines[1]
	if len(ring) != 4 || !ring[0].Equals2D(ring[3]) {
		t.Errorf("ring was not closed: %v", ring)
	}
	if got := RemoveRepeatedPoints([]Coordinate{XY(0, 0), XY(0, 0), XY(1, 1), XY(1, 1)}); len(got) != 2 {
		t.Errorf("RemoveRepeatedPoints: %v", got)
	}
}
