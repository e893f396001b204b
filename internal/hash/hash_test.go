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


package hash

import (
	"math"
	"testing"

	"github.com/spatialmodel/planar"
)

func TestKey(t *testing.T) {
	a := Key([]float64{1, 2, 3})
	if a != Key([]float64{1, 2, 3}) {
		t.Error("equal values have different keys")
	}
	if a == Key([]float64{1, 2, 4}) {
		t.Error("different values have the same key")
	}
	if len(a) != 32 {
		t.Errorf("key length: have %d, want 32", len(a))
	}
	// gob cannot encode a struct without encodable fields, so the spew
	// dump is hashed instead.
	type onlyChan struct {
		C chan int
	}
	if k := Key(onlyChan{}); k != Key(onlyChan{}) || len(k) != 32 {
		t.Errorf("fallback key %q", k)
	}
}

func TestEdgeKey(t *testing.T) {
	pts := []planar.Coordinate{planar.XY(0, 0), planar.XY(5, 5), planar.XY(10, 0)}
	rev := planar.Reverse(pts)
	if EdgeKey(pts) != EdgeKey(rev) {
		t.Error("reversed path has a different key")
	}
	withZ := []planar.Coordinate{planar.XYZ(0, 0, 1), planar.XYZ(5, 5, math.NaN()), planar.XYZ(10, 0, 3)}
	if EdgeKey(pts) != EdgeKey(withZ) {
		t.Error("key depends on Z")
	}
	other := []planar.Coordinate{planar.XY(0, 0), planar.XY(5, 6), planar.XY(10, 0)}
	if EdgeKey(pts) == EdgeKey(other) {
		t.Error("different paths have the same key")
	}
	ring := []planar.Coordinate{planar.XY(0, 0), planar.XY(1, 0), planar.XY(0, 0)}
	if EdgeKey(ring) != EdgeKey(planar.Reverse(ring)) {
		t.Error("palindromic path keys differ")
	}
}
