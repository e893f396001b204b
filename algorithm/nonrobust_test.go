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
	"math"
	"math/rand"
	"testing"

	"github.com/spatialmodel/planar"
)

// nonRobustIntersection classifies segment intersections with plain
// floating point cross products. It is only used to cross-check the
// robust intersector on well-conditioned input.
func nonRobustIntersection(p1, p2, q1, q2 planar.Coordinate) (IntersectionType, planar.Coordinate) {
	cross := func(a, b, c planar.Coordinate) float64 {
		return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	}
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	if d1 == 0 && d2 == 0 {
		// Collinear input is not compared.
		return CollinearIntersection, planar.Coordinate{}
	}
	if (d1 > 0 && d2 > 0) || (d1 < 0 && d2 < 0) || (d3 > 0 && d4 > 0) || (d3 < 0 && d4 < 0) {
		return NoIntersection, planar.Coordinate{}
	}
	t := d1 / (d1 - d2)
	return PointIntersection, planar.XY(p1.X+t*(p2.X-p1.X), p1.Y+t*(p2.Y-p1.Y))
}

func TestRobustAgreesWithNonRobust(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pt := func() planar.Coordinate {
		return planar.XY(math.Round(r.Float64()*1000), math.Round(r.Float64()*1000))
	}
	var li LineIntersector
	for i := 0; i < 5000; i++ {
		a, b, c, d := pt(), pt(), pt(), pt()
		want, wantPt := nonRobustIntersection(a, b, c, d)
		if want == CollinearIntersection {
			continue
		}
		have := li.ComputeIntersection(a, b, c, d)
		if have == CollinearIntersection {
			t.Fatalf("%v-%v / %v-%v: unexpected collinear result", a, b, c, d)
		}
		if have != want {
			t.Fatalf("%v-%v / %v-%v: have %v, want %v", a, b, c, d, have, want)
		}
		if have == PointIntersection && li.Intersection(0).Distance(wantPt) > 1e-6 {
			t.Errorf("%v-%v / %v-%v: have %v, want %v", a, b, c, d, li.Intersection(0), wantPt)
		}
	}
}
