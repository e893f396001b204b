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
	"errors"
	"math/rand"
	"testing"

	"github.com/spatialmodel/planar"
)

func TestSignOfDet2x2(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 float64
		want           int
	}{
		{x1: 1, y1: 0, x2: 0, y2: 1, want: 1},
		{x1: 0, y1: 1, x2: 1, y2: 0, want: -1},
		{x1: 1, y1: 2, x2: 2, y2: 4, want: 0},
		{x1: 3, y1: 2, x2: 1, y2: 1, want: 1},
		{x1: -3, y1: 2, x2: 1, y2: -1, want: 1},
		{x1: 0, y1: 0, x2: 5, y2: 7, want: 0},
		{x1: 1e300, y1: 1e300, x2: 1e300, y2: 1e300, want: 0},
		{x1: 1 << 52, y1: 1<<52 + 1, x2: 1<<52 - 1, y2: 1 << 52, want: 1},
	}
	for _, test := range tests {
		got := SignOfDet2x2(test.x1, test.y1, test.x2, test.y2)
		if got != test.want {
			t.Errorf("SignOfDet2x2(%g, %g, %g, %g): have %d, want %d",
				test.x1, test.y1, test.x2, test.y2, got, test.want)
		}
	}
}

func TestOrientationIndex(t *testing.T) {
	p1, p2 := planar.XY(0, 0), planar.XY(10, 0)
	if o := OrientationIndex(p1, p2, planar.XY(5, 5)); o != CounterClockwise {
		t.Errorf("left point: have %d", o)
	}
	if o := OrientationIndex(p1, p2, planar.XY(5, -5)); o != Clockwise {
		t.Errorf("right point: have %d", o)
	}
	if o := OrientationIndex(p1, p2, planar.XY(20, 0)); o != Collinear {
		t.Errorf("collinear point: have %d", o)
	}
}

// Coordinates on a coarse grid keep the translations in OrientationIndex
// exact, so swapping the segment endpoints must negate the result.
func TestOrientationSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pt := func() planar.Coordinate {
		return planar.XY(float64(r.Intn(64)-32)/4, float64(r.Intn(64)-32)/4)
	}
	for i := 0; i < 5000; i++ {
		p1, p2, q := pt(), pt(), pt()
		if p1.Equals2D(p2) {
			continue
		}
		a := OrientationIndex(p1, p2, q)
		b := OrientationIndex(p2, p1, q)
		if a != -b {
			t.Fatalf("OrientationIndex(%v, %v, %v) = %d but reversed = %d", p1, p2, q, a, b)
		}
	}
}

func TestIsCCW(t *testing.T) {
	square := []planar.Coordinate{
		planar.XY(0, 0), planar.XY(10, 0), planar.XY(10, 10), planar.XY(0, 10), planar.XY(0, 0),
	}
	ccw, err := IsCCW(square)
	if err != nil {
		t.Fatal(err)
	}
	if !ccw {
		t.Error("square should be counter-clockwise")
	}
	if a := SignedArea(square); a != 100 {
		t.Errorf("area: have %g, want 100", a)
	}

	reversed := planar.Reverse(square)
	ccw, err = IsCCW(reversed)
	if err != nil {
		t.Fatal(err)
	}
	if ccw {
		t.Error("reversed square should be clockwise")
	}
	if a := SignedArea(reversed); a != -100 {
		t.Errorf("area: have %g, want -100", a)
	}

	// Flat top: the highest point has neighbours at the same height.
	flat := []planar.Coordinate{
		planar.XY(0, 0), planar.XY(10, 0), planar.XY(10, 10), planar.XY(5, 10),
		planar.XY(0, 10), planar.XY(0, 0),
	}
	ccw, err = IsCCW(flat)
	if err != nil {
		t.Fatal(err)
	}
	if !ccw {
		t.Error("flat-topped ring should be counter-clockwise")
	}
}

func TestIsCCWErrors(t *testing.T) {
	_, err := IsCCW([]planar.Coordinate{planar.XY(0, 0), planar.XY(1, 1), planar.XY(0, 0)})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("have %v, want ErrTooFewPoints", err)
	}
	_, err = IsCCW([]planar.Coordinate{
		planar.XY(0, 0), planar.XY(1, 1), planar.XY(1, 1), planar.XY(0, 0),
	})
	if !errors.Is(err, ErrDegenerateRing) {
		t.Errorf("have %v, want ErrDegenerateRing", err)
	}
	var argErr *ArgumentError
	if !errors.As(err, &argErr) || argErr.Op != "IsCCW" {
		t.Errorf("have %#v, want *ArgumentError", err)
	}
}
