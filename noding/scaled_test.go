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

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/planar"
)

func TestScaledNoder(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel

	pm, err := planar.NewFixedPrecision(1)
	if err != nil {
		t.Fatal(err)
	}
	snap := NewSnapRoundingNoder(pm)
	snap.Log = logger
	n := NewScaledNoder(snap, 10)
	n.Log = logger
	if n.IsIntegerPrecision() {
		t.Error("scale 10 is not integer precision")
	}

	ss := []SegmentString{
		NewBasicSegmentString(coords(0, 0, 0.01, 0.01, 1, 1), "a"),
		NewBasicSegmentString(coords(0.5, 0.5, 0.52, 0.52), "b"),
		NewBasicSegmentString(coords(0, 1, 1, 0), "c"),
	}
	if err := n.ComputeNodes(ss); err != nil {
		t.Fatal(err)
	}
	split, err := n.NodedSubstrings()
	if err != nil {
		t.Fatal(err)
	}
	if len(split) != 4 {
		t.Fatalf("have %d substrings, want 4: %v", len(split), canonical(split))
	}
	for _, s := range split {
		if s.Data() == "b" {
			t.Error("collapsed string should be dropped")
		}
		pts := s.Coordinates()
		if s.Size() != 2 {
			t.Errorf("substring %v should be a single segment", pts)
		}
		start, end := pts[0], pts[len(pts)-1]
		if !start.Equals2D(planar.XY(0.5, 0.5)) && !end.Equals2D(planar.XY(0.5, 0.5)) {
			t.Errorf("substring %v does not end at the node", pts)
		}
	}

	found := false
	for _, e := range hook.AllEntries() {
		if c, ok := e.Data["collapsed"]; ok {
			found = true
			if c != 1 {
				t.Errorf("logged %v collapsed strings, want 1", c)
			}
		}
	}
	if !found {
		t.Error("collapsed strings were not logged")
	}
}

func TestScaledNoderIntegerPrecision(t *testing.T) {
	n := NewScaledNoder(NewMCIndexNoder(NewIntersectionAdder(nil)), 1)
	if !n.IsIntegerPrecision() {
		t.Error("scale 1 should be integer precision")
	}
	ss := []SegmentString{
		NewNodedSegmentString(coords(0.25, 0, 0.25, 1), nil),
		NewNodedSegmentString(coords(0, 0.5, 1, 0.5), nil),
	}
	if err := n.ComputeNodes(ss); err != nil {
		t.Fatal(err)
	}
	split, err := n.NodedSubstrings()
	if err != nil {
		t.Fatal(err)
	}
	if len(split) != 4 {
		t.Errorf("have %d substrings, want 4", len(split))
	}
	// Coordinates are not rounded.
	if p := split[0].Coordinates()[1]; !p.Equals2D(planar.XY(0.25, 0.5)) {
		t.Errorf("have node %v, want (0.25, 0.5)", p)
	}
}
