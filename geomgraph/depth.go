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

package geomgraph

import (
	"fmt"

	"github.com/spatialmodel/planar"
)

const nullDepth = -1

// Depth records the depth of the area on each side of an edge for both
// geometries: the number of overlapping area components a point beside the
// edge lies in.
type Depth struct {
	depth [2][3]int
}

// NewDepth returns a Depth with every value unset.
func NewDepth() Depth {
	var d Depth
	for i := range d.depth {
		for j := range d.depth[i] {
			d.depth[i][j] = nullDepth
		}
	}
	return d
}

// DepthAtLocation returns the depth contributed by a location: 1 in the
// interior, 0 in the exterior, and unset otherwise.
func DepthAtLocation(loc planar.Location) int {
	switch loc {
	case planar.Exterior:
		return 0
	case planar.Interior:
		return 1
	}
	return nullDepth
}

// Get returns the depth for geometry geomIndex at pos.
func (d *Depth) Get(geomIndex int, pos planar.Position) int { return d.depth[geomIndex][pos] }

// Set sets the depth for geometry geomIndex at pos.
func (d *Depth) Set(geomIndex int, pos planar.Position, depth int) {
	d.depth[geomIndex][pos] = depth
}

// Location returns Exterior if the depth for geometry geomIndex at pos is
// zero or less, and Interior otherwise.
func (d *Depth) Location(geomIndex int, pos planar.Position) planar.Location {
	if d.depth[geomIndex][pos] <= 0 {
		return planar.Exterior
	}
	return planar.Interior
}

// Add increases the depth for geometry geomIndex at pos if loc is
// Interior.
func (d *Depth) Add(geomIndex int, pos planar.Position, loc planar.Location) {
	if loc == planar.Interior {
		d.depth[geomIndex][pos]++
	}
}

// IsNull returns whether no depth has been set.
func (d *Depth) IsNull() bool {
	for i := range d.depth {
		for j := range d.depth[i] {
			if d.depth[i][j] != nullDepth {
				return false
			}
		}
	}
	return true
}

// IsNullAt returns whether the depth for geometry geomIndex is unset.
func (d *Depth) IsNullAt(geomIndex int) bool { return d.depth[geomIndex][1] == nullDepth }

// IsNullAtPos returns whether the depth for geometry geomIndex at pos is
// unset.
func (d *Depth) IsNullAtPos(geomIndex int, pos planar.Position) bool {
	return d.depth[geomIndex][pos] == nullDepth
}

// AddLabel adds the side locations of an area label.
func (d *Depth) AddLabel(l Label) {
	for i := 0; i < 2; i++ {
		for _, pos := range []planar.Position{planar.Left, planar.Right} {
			loc := l.Location(i, pos)
			if loc != planar.Exterior && loc != planar.Interior {
				continue
			}
			if d.IsNullAtPos(i, pos) {
				d.depth[i][pos] = DepthAtLocation(loc)
			} else {
				d.depth[i][pos] += DepthAtLocation(loc)
			}
		}
	}
}

// Delta returns the depth on the right minus the depth on the left for
// geometry geomIndex. This is the negation of Edge.DepthDelta.
func (d *Depth) Delta(geomIndex int) int {
	return d.depth[geomIndex][planar.Right] - d.depth[geomIndex][planar.Left]
}

// Normalize reduces the depths of each geometry to 0 or 1, keeping which
// side is deeper. The smaller side depth becomes 0.
func (d *Depth) Normalize() {
	for i := range d.depth {
		if d.IsNullAt(i) {
			continue
		}
		minDepth := d.depth[i][planar.Left]
		if d.depth[i][planar.Right] < minDepth {
			minDepth = d.depth[i][planar.Right]
		}
		if minDepth < 0 {
			minDepth = 0
		}
		for _, pos := range []planar.Position{planar.Left, planar.Right} {
			v := 0
			if d.depth[i][pos] > minDepth {
				v = 1
			}
			d.depth[i][pos] = v
		}
	}
}

func (d *Depth) String() string {
	return fmt.Sprintf("A: %d,%d B: %d,%d",
		d.depth[0][planar.Left], d.depth[0][planar.Right],
		d.depth[1][planar.Left], d.depth[1][planar.Right])
}
