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

package locate

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/planar"
)

var squareWithHole = geom.Polygon{
	{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
	{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}, {X: 2, Y: 2}},
}

func TestLocatePolygon(t *testing.T) {
	var pl PointLocator
	tests := []struct {
		name string
		p    planar.Coordinate
		want planar.Location
	}{
		{"interior", planar.XY(5, 5), planar.Interior},
		{"in hole", planar.XY(3, 3), planar.Exterior},
		{"hole boundary", planar.XY(2, 3), planar.Boundary},
		{"shell corner", planar.XY(10, 10), planar.Boundary},
		{"outside", planar.XY(15, 5), planar.Exterior},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := pl.Locate(test.p, squareWithHole); got != test.want {
				t.Errorf("have %v, want %v", got, test.want)
			}
		})
	}
}

func TestLocateLineString(t *testing.T) {
	var pl PointLocator
	open := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	closed := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}
	tests := []struct {
		name string
		l    geom.LineString
		p    planar.Coordinate
		want planar.Location
	}{
		{"open endpoint", open, planar.XY(0, 0), planar.Boundary},
		{"open far endpoint", open, planar.XY(10, 10), planar.Boundary},
		{"open vertex", open, planar.XY(10, 0), planar.Interior},
		{"open segment", open, planar.XY(5, 0), planar.Interior},
		{"open off line", open, planar.XY(5, 5), planar.Exterior},
		{"closed endpoint", closed, planar.XY(0, 0), planar.Interior},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := pl.Locate(test.p, test.l); got != test.want {
				t.Errorf("have %v, want %v", got, test.want)
			}
		})
	}
}

// Lines radiating from (5, 5): the shared endpoint is on the boundary of
// their union only when an odd number of lines end there.
func TestLocateMod2Rule(t *testing.T) {
	spokes := []geom.LineString{
		{{X: 0, Y: 0}, {X: 5, Y: 5}},
		{{X: 10, Y: 0}, {X: 5, Y: 5}},
		{{X: 10, Y: 10}, {X: 5, Y: 5}},
		{{X: 0, Y: 10}, {X: 5, Y: 5}},
	}
	hub := planar.XY(5, 5)
	var pl PointLocator
	tests := []struct {
		n    int
		want planar.Location
	}{
		{1, planar.Boundary},
		{2, planar.Interior},
		{3, planar.Boundary},
		{4, planar.Interior},
	}
	for _, test := range tests {
		ml := geom.MultiLineString(spokes[:test.n])
		if got := pl.Locate(hub, ml); got != test.want {
			t.Errorf("%d lines: have %v, want %v", test.n, got, test.want)
		}
		// The free ends are always on the boundary.
		if got := pl.Locate(planar.XY(0, 0), ml); got != planar.Boundary {
			t.Errorf("%d lines: free end is %v", test.n, got)
		}
	}

	ep := PointLocator{Rule: planar.EndPoint}
	if got := ep.Locate(hub, geom.MultiLineString(spokes[:2])); got != planar.Boundary {
		t.Errorf("endpoint rule: have %v, want Boundary", got)
	}
}

func TestLocateCollection(t *testing.T) {
	var pl PointLocator
	gc := geom.GeometryCollection{
		geom.Point{X: 20, Y: 20},
		squareWithHole,
		geom.LineString{{X: 30, Y: 0}, {X: 40, Y: 0}},
	}
	tests := []struct {
		p    planar.Coordinate
		want planar.Location
	}{
		{planar.XY(20, 20), planar.Interior},
		{planar.XY(5, 5), planar.Interior},
		{planar.XY(0, 5), planar.Boundary},
		{planar.XY(30, 0), planar.Boundary},
		{planar.XY(35, 0), planar.Interior},
		{planar.XY(3, 3), planar.Exterior},
	}
	for _, test := range tests {
		if got := pl.Locate(test.p, gc); got != test.want {
			t.Errorf("%v: have %v, want %v", test.p, got, test.want)
		}
	}
	if !pl.Intersects(planar.XY(20, 20), gc) {
		t.Error("collection should intersect (20, 20)")
	}
	if pl.Locate(planar.XY(1, 1), geom.MultiPolygon{}) != planar.Exterior {
		t.Error("empty geometry should be exterior")
	}
}

func TestLocateUnsupportedType(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pl := PointLocator{Log: logger}
	b := &geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}
	if got := pl.Locate(planar.XY(5, 5), b); got != planar.Exterior {
		t.Errorf("bounds: have %v, want Exterior", got)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["type"] != "*geom.Bounds" {
		t.Fatalf("log entry: %+v", entry)
	}

	// Supported members of a collection are still located.
	hook.Reset()
	gc := geom.GeometryCollection{b, squareWithHole}
	if got := pl.Locate(planar.XY(5, 5), gc); got != planar.Interior {
		t.Errorf("collection: have %v, want Interior", got)
	}
	if len(hook.Entries) != 1 {
		t.Errorf("have %d log entries, want 1", len(hook.Entries))
	}
}
