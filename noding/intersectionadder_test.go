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

package noding

import (
	"testing"
)

func TestIntersectionAdderTrivial(t *testing.T) {
	ring := NewNodedSegmentString(coords(0, 0, 10, 0, 10, 10, 0, 10, 0, 0), nil)
	a := NewIntersectionAdder(nil)

	// Adjacent segments and the first and last segments of the ring only
	// share a vertex.
	a.ProcessIntersections(ring, 0, ring, 1)
	a.ProcessIntersections(ring, 0, ring, 3)
	a.ProcessIntersections(ring, 3, ring, 0)
	if a.HasIntersection() {
		t.Error("shared vertices of a ring should be trivial intersections")
	}
	if a.NumIntersections != 3 {
		t.Errorf("have %d intersections, want 3", a.NumIntersections)
	}
	if ring.NodeList().Len() != 0 {
		t.Errorf("trivial intersections added %d nodes", ring.NodeList().Len())
	}

	a.ProcessIntersections(ring, 0, ring, 2)
	if a.NumTests != 4 {
		t.Errorf("have %d tests, want 4", a.NumTests)
	}
	if a.NumIntersections != 3 {
		t.Errorf("opposite sides of a square should not intersect")
	}
}

func TestIntersectionAdderProper(t *testing.T) {
	e0 := NewNodedSegmentString(coords(0, 0, 10, 10), nil)
	e1 := NewNodedSegmentString(coords(0, 10, 10, 0), nil)
	a := NewIntersectionAdder(nil)
	a.ProcessIntersections(e0, 0, e1, 0)
	if !a.HasIntersection() || !a.HasProperIntersection() || !a.HasInteriorIntersection() {
		t.Error("crossing segments should have a proper interior intersection")
	}
	if a.NumProperIntersections != 1 || a.NumInteriorIntersections != 1 {
		t.Errorf("have %d proper and %d interior intersections, want 1 and 1",
			a.NumProperIntersections, a.NumInteriorIntersections)
	}
	for _, ss := range []*NodedSegmentString{e0, e1} {
		nodes := ss.NodeList().Nodes()
		if len(nodes) != 1 || nodes[0].Coord.X != 5 || nodes[0].Coord.Y != 5 {
			t.Errorf("unexpected nodes %v", nodes)
		}
	}
}

func TestIntersectionAdderSelfCrossing(t *testing.T) {
	bowtie := NewNodedSegmentString(coords(0, 0, 10, 10, 10, 0, 0, 10, 0, 0), nil)
	a := NewIntersectionAdder(nil)
	a.ProcessIntersections(bowtie, 0, bowtie, 2)
	if !a.HasProperIntersection() {
		t.Error("bowtie should cross itself")
	}
	if bowtie.NodeList().Len() != 2 {
		t.Errorf("have %d nodes, want one on each crossing segment", bowtie.NodeList().Len())
	}
}
