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

package algorithm

import (
	"testing"

	"github.com/spatialmodel/planar"
)

var square = []planar.Coordinate{
	planar.XY(0, 0), planar.XY(10, 0), planar.XY(10, 10), planar.XY(0, 10), planar.XY(0, 0),
}

func TestLocatePointInRing(t *testing.T) {
	tests := []struct {
		p    planar.Coordinate
		want planar.Location
	}{
		{planar.XY(5, 5), planar.Interior},
		{planar.XY(15, 5), planar.Exterior},
		{planar.XY(10, 5), planar.Boundary},
		{planar.XY(5, 0), planar.Boundary},
		{planar.XY(0, 0), planar.Boundary},
		{planar.XY(-1, 10), planar.Exterior},
		{planar.XY(5, 10), planar.Boundary},
		// The ray passes through the vertex (10, 10).
		{planar.XY(5, 10.5), planar.Exterior},
	}
	for _, test := range tests {
		if got := LocatePointInRing(test.p, square); got != test.want {
			t.Errorf("%v: have %v, want %v", test.p, got, test.want)
		}
	}
}

func TestIsPointInRing(t *testing.T) {
	if !IsPointInRing(planar.XY(5, 5), square) {
		t.Error("(5, 5) should be in the ring")
	}
	if IsPointInRing(planar.XY(15, 5), square) {
		t.Error("(15, 5) should not be in the ring")
	}
	if IsPointInRing(planar.XY(10, 5), square) {
		t.Error("boundary point (10, 5) must not be reported as inside")
	}
	if LocatePointInRing(planar.XY(10, 5), square) != planar.Boundary {
		t.Error("(10, 5) should be on the ring boundary")
	}
}

// A vertex touching the ray from below and above must be counted once.
func TestLocatePointInRingVertexOnRay(t *testing.T) {
	diamond := []planar.Coordinate{
		planar.XY(5, 0), planar.XY(10, 5), planar.XY(5, 10), planar.XY(0, 5), planar.XY(5, 0),
	}
	if got := LocatePointInRing(planar.XY(5, 5), diamond); got != planar.Interior {
		t.Errorf("have %v, want Interior", got)
	}
	if got := LocatePointInRing(planar.XY(-5, 5), diamond); got != planar.Exterior {
		t.Errorf("have %v, want Exterior", got)
	}
}

func TestIsOnLine(t *testing.T) {
	line := []planar.Coordinate{planar.XY(0, 0), planar.XY(10, 0), planar.XY(10, 10)}
	if !IsOnLine(planar.XY(10, 4), line) {
		t.Error("(10, 4) should be on the line")
	}
	if IsOnLine(planar.XY(4, 4), line) {
		t.Error("(4, 4) should not be on the line")
	}
}
