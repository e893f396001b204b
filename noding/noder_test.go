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
	"fmt"
	"math"
	"os"
	"reflect"
	"sort"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/kr/pretty"
	"github.com/spatialmodel/planar"
)

type nodingCase struct {
	Name       string
	Lines      [][][]float64
	Substrings int
	Nodes      [][]float64
}

func loadNodingCases(t *testing.T) []nodingCase {
	f, err := os.Open("testdata/noding.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var c struct {
		Case []nodingCase
	}
	if _, err = toml.DecodeReader(f, &c); err != nil {
		t.Fatal(err)
	}
	return c.Case
}

func (c nodingCase) segmentStrings() []SegmentString {
	o := make([]SegmentString, len(c.Lines))
	for i, l := range c.Lines {
		pts := make([]planar.Coordinate, len(l))
		for j, xy := range l {
			pts[j] = planar.XY(xy[0], xy[1])
		}
		o[i] = NewNodedSegmentString(pts, i)
	}
	return o
}

func coords(xy ...float64) []planar.Coordinate {
	c := make([]planar.Coordinate, len(xy)/2)
	for i := range c {
		c[i] = planar.XY(xy[2*i], xy[2*i+1])
	}
	return c
}

// canonical returns a sorted description of a set of substrings, for
// comparing the results of different noders.
func canonical(ss []SegmentString) []string {
	o := make([]string, len(ss))
	for i, s := range ss {
		o[i] = fmt.Sprintf("%d %v", s.Data(), s.Coordinates())
	}
	sort.Strings(o)
	return o
}

func node(t *testing.T, n Noder, ss []SegmentString) []SegmentString {
	if err := n.ComputeNodes(ss); err != nil {
		t.Fatal(err)
	}
	o, err := n.NodedSubstrings()
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestNodingCases(t *testing.T) {
	for _, c := range loadNodingCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			mc := node(t, NewMCIndexNoder(NewIntersectionAdder(nil)), c.segmentStrings())
			if len(mc) != c.Substrings {
				t.Errorf("have %d substrings, want %d", len(mc), c.Substrings)
			}

			simple := node(t, NewSimpleNoder(NewIntersectionAdder(nil)), c.segmentStrings())
			if have, want := canonical(mc), canonical(simple); !reflect.DeepEqual(have, want) {
				t.Errorf("indexed and simple noders differ: %v", pretty.Diff(have, want))
			}

			endpoints := make(map[[2]float64]bool)
			for _, s := range mc {
				pts := s.Coordinates()
				for _, p := range []planar.Coordinate{pts[0], pts[len(pts)-1]} {
					endpoints[[2]float64{p.X, p.Y}] = true
				}
			}
			for _, n := range c.Nodes {
				if !endpoints[[2]float64{n[0], n[1]}] {
					t.Errorf("node %v is not a substring endpoint", n)
				}
			}

			if err := NewFastNodingValidator(mc).CheckValid(); err != nil {
				t.Errorf("noded substrings are not fully noded: %v", err)
			}
			if err := NewNodingValidator(mc).CheckValid(); err != nil {
				t.Errorf("brute force validation: %v", err)
			}
		})
	}
}

func TestNodingRoundTrip(t *testing.T) {
	for _, c := range loadNodingCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			split := node(t, NewMCIndexNoder(NewIntersectionAdder(nil)), c.segmentStrings())
			byParent := make(map[int][]SegmentString)
			for _, s := range split {
				i := s.Data().(int)
				byParent[i] = append(byParent[i], s)
			}
			for i, line := range c.Lines {
				subs := byParent[i]
				if len(subs) == 0 {
					t.Fatalf("line %d has no substrings", i)
				}
				var joined [][2]float64
				for j, s := range subs {
					pts := s.Coordinates()
					if j > 0 {
						prev := subs[j-1].Coordinates()
						if !prev[len(prev)-1].Equals2D(pts[0]) {
							t.Errorf("line %d: substring %d does not start where %d ends", i, j, j-1)
						}
						pts = pts[1:]
					}
					for _, p := range pts {
						joined = append(joined, [2]float64{p.X, p.Y})
					}
				}
				// Every original vertex appears in order.
				k := 0
				for _, p := range joined {
					if k < len(line) && p[0] == line[k][0] && p[1] == line[k][1] {
						k++
					}
				}
				if k != len(line) {
					t.Errorf("line %d: only %d of %d vertices found in order in %v", i, k, len(line), joined)
				}
			}
		})
	}
}

func TestNodingIdempotent(t *testing.T) {
	for _, c := range loadNodingCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			once := node(t, NewMCIndexNoder(NewIntersectionAdder(nil)), c.segmentStrings())
			twice := node(t, NewMCIndexNoder(NewIntersectionAdder(nil)), once)
			if len(twice) != len(once) {
				t.Errorf("renoding changed substring count from %d to %d", len(once), len(twice))
			}
		})
	}
}

func TestMCIndexNoderChains(t *testing.T) {
	n := NewMCIndexNoder(NewIntersectionAdder(nil))
	n.Log = nil
	ss := []SegmentString{
		NewNodedSegmentString(coords(0, 0, 2, 4, 4, 0, 6, 4, 8, 0), nil),
		NewNodedSegmentString(coords(0, 2, 8, 2), nil),
	}
	if err := n.ComputeNodes(ss); err != nil {
		t.Fatal(err)
	}
	if have, want := len(n.MonotoneChains()), 5; have != want {
		t.Errorf("have %d chains, want %d", have, want)
	}
	if have, want := n.Index().Len(), 5; have != want {
		t.Errorf("have %d indexed chains, want %d", have, want)
	}
	nodes := ss[1].(*NodedSegmentString).NodeList()
	if have, want := nodes.Len(), 4; have != want {
		t.Errorf("have %d nodes on the straight line, want %d: %v", have, want, nodes)
	}
}

func TestSimpleNoderEmpty(t *testing.T) {
	n := NewSimpleNoder(NewIntersectionAdder(nil))
	if err := n.ComputeNodes(nil); err != nil {
		t.Fatal(err)
	}
	split, err := n.NodedSubstrings()
	if err != nil {
		t.Fatal(err)
	}
	if len(split) != 0 {
		t.Errorf("have %d substrings, want none", len(split))
	}
}

func TestNoderNonFinite(t *testing.T) {
	for _, n := range []Noder{
		NewSimpleNoder(NewIntersectionAdder(nil)),
		NewMCIndexNoder(NewIntersectionAdder(nil)),
	} {
		t.Run(fmt.Sprintf("%T", n), func(t *testing.T) {
			ss := []SegmentString{
				NewNodedSegmentString(coords(0, 0, 10, 10), nil),
				NewNodedSegmentString([]planar.Coordinate{planar.XY(0, 10), planar.XY(math.NaN(), 0)}, nil),
			}
			if err := n.ComputeNodes(ss); err == nil {
				t.Error("expected an error for a NaN ordinate")
			}
		})
	}
}
