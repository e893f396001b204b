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
	"math"
	"sync"
	"testing"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
)

// circle returns a closed ring with n vertices.
func circle(cx, cy, r float64, n int) []geom.Point {
	ring := make([]geom.Point, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = geom.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	ring[n] = ring[0]
	return ring
}

func TestIndexedPointInAreaLocator(t *testing.T) {
	poly := geom.MultiPolygon{
		squareWithHole,
		{circle(30, 5, 4, 200)},
	}
	l, err := NewIndexedPointInAreaLocator(poly)
	if err != nil {
		t.Fatal(err)
	}
	simple := NewSimplePointInAreaLocator(poly)
	for x := -1.0; x <= 36; x += 0.5 {
		for y := -1.0; y <= 11; y += 0.5 {
			p := planar.XY(x, y)
			if have, want := l.Locate(p), simple.Locate(p); have != want {
				t.Errorf("%v: have %v, want %v", p, have, want)
			}
		}
	}
	if got := l.Locate(planar.XY(100, 100)); got != planar.Exterior {
		t.Errorf("far point: have %v", got)
	}
}

func TestIndexedPointInAreaLocatorSegments(t *testing.T) {
	var _ geom.Geom = &segment{}
	l, err := NewIndexedPointInAreaLocator(squareWithHole)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(l.tree.SearchIntersect(l.bounds)); n != 8 {
		t.Errorf("indexed %d segments, want 8", n)
	}
}

func TestIndexedPointInAreaLocatorNotPolygonal(t *testing.T) {
	_, err := NewIndexedPointInAreaLocator(geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err == nil {
		t.Error("expected an error for a linear geometry")
	}
}

func TestIndexedPointInAreaLocatorConcurrent(t *testing.T) {
	l, err := NewIndexedPointInAreaLocator(squareWithHole)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if l.Locate(planar.XY(5, 5)) != planar.Interior {
					errs <- "(5, 5) should be interior"
					return
				}
				if l.Locate(planar.XY(3, 3)) != planar.Exterior {
					errs <- "(3, 3) should be exterior"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
