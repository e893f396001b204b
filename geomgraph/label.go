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
	"github.com/spatialmodel/planar"
)

// Label records the topological relationship of a graph component to the
// two geometries of a graph, indexed 0 and 1. Like TopologyLocation it is
// a value type, so a Label copied into several components is never
// changed through another one.
type Label struct {
	elt [2]TopologyLocation
}

// NewLabel returns a line label with the same On location for both
// geometries.
func NewLabel(on planar.Location) Label {
	return Label{elt: [2]TopologyLocation{NewLineLocation(on), NewLineLocation(on)}}
}

// NewGeomLabel returns a line label with On location on for geometry
// geomIndex and None for the other geometry.
func NewGeomLabel(geomIndex int, on planar.Location) Label {
	l := NewLabel(planar.None)
	l.elt[geomIndex] = NewLineLocation(on)
	return l
}

// NewAreaLabel returns an area label with the same locations for both
// geometries.
func NewAreaLabel(on, left, right planar.Location) Label {
	return Label{elt: [2]TopologyLocation{NewAreaLocation(on, left, right), NewAreaLocation(on, left, right)}}
}

// NewGeomAreaLabel returns an area label with the given locations for
// geometry geomIndex and None for the other geometry.
func NewGeomAreaLabel(geomIndex int, on, left, right planar.Location) Label {
	l := NewAreaLabel(planar.None, planar.None, planar.None)
	l.elt[geomIndex] = NewAreaLocation(on, left, right)
	return l
}

// LineLabel returns a line label with the On locations of l.
func LineLabel(l Label) Label {
	return Label{elt: [2]TopologyLocation{l.elt[0].ToLine(), l.elt[1].ToLine()}}
}

// TopologyLocation returns the locations for geometry geomIndex.
func (l Label) TopologyLocation(geomIndex int) TopologyLocation { return l.elt[geomIndex] }

// Location returns the location for geometry geomIndex at pos.
func (l Label) Location(geomIndex int, pos planar.Position) planar.Location {
	return l.elt[geomIndex].Get(pos)
}

// LocationOn returns the On location for geometry geomIndex.
func (l Label) LocationOn(geomIndex int) planar.Location {
	return l.elt[geomIndex].Get(planar.On)
}

// WithLocation returns l with the location for geometry geomIndex at pos
// set to loc.
func (l Label) WithLocation(geomIndex int, pos planar.Position, loc planar.Location) Label {
	l.elt[geomIndex] = l.elt[geomIndex].With(pos, loc)
	return l
}

// WithLocationOn returns l with the On location for geometry geomIndex set
// to loc.
func (l Label) WithLocationOn(geomIndex int, loc planar.Location) Label {
	return l.WithLocation(geomIndex, planar.On, loc)
}

// WithAllLocations returns l with every location for geometry geomIndex
// set to loc.
func (l Label) WithAllLocations(geomIndex int, loc planar.Location) Label {
	l.elt[geomIndex] = l.elt[geomIndex].WithAll(loc)
	return l
}

// WithAllLocationsIfNull returns l with the None locations for geometry
// geomIndex set to loc.
func (l Label) WithAllLocationsIfNull(geomIndex int, loc planar.Location) Label {
	l.elt[geomIndex] = l.elt[geomIndex].WithAllIfNull(loc)
	return l
}

// Merge returns l with its None locations filled from o.
func (l Label) Merge(o Label) Label {
	for i := range l.elt {
		l.elt[i] = l.elt[i].Merge(o.elt[i])
	}
	return l
}

// Flip returns l with Left and Right swapped for both geometries.
func (l Label) Flip() Label {
	l.elt[0] = l.elt[0].Flip()
	l.elt[1] = l.elt[1].Flip()
	return l
}

// ToLine returns l with the locations for geometry geomIndex reduced to a
// line location.
func (l Label) ToLine(geomIndex int) Label {
	if l.elt[geomIndex].IsArea() {
		l.elt[geomIndex] = l.elt[geomIndex].ToLine()
	}
	return l
}

// GeometryCount returns the number of geometries with a location.
func (l Label) GeometryCount() int {
	n := 0
	for _, e := range l.elt {
		if !e.IsNull() {
			n++
		}
	}
	return n
}

// IsNull returns whether l has no location for geometry geomIndex.
func (l Label) IsNull(geomIndex int) bool { return l.elt[geomIndex].IsNull() }

// IsAnyNull returns whether any location for geometry geomIndex is None.
func (l Label) IsAnyNull(geomIndex int) bool { return l.elt[geomIndex].IsAnyNull() }

// IsArea returns whether l is an area label for either geometry.
func (l Label) IsArea() bool { return l.elt[0].IsArea() || l.elt[1].IsArea() }

// IsAreaAt returns whether l is an area label for geometry geomIndex.
func (l Label) IsAreaAt(geomIndex int) bool { return l.elt[geomIndex].IsArea() }

// IsLine returns whether l is a line label for geometry geomIndex.
func (l Label) IsLine(geomIndex int) bool { return l.elt[geomIndex].IsLine() }

// IsEqualOnSide returns whether l and o have the same locations at side
// for both geometries.
func (l Label) IsEqualOnSide(o Label, side planar.Position) bool {
	return l.elt[0].IsEqualOnSide(o.elt[0], side) && l.elt[1].IsEqualOnSide(o.elt[1], side)
}

// AllPositionsEqual returns whether every location for geometry geomIndex
// equals loc.
func (l Label) AllPositionsEqual(geomIndex int, loc planar.Location) bool {
	return l.elt[geomIndex].AllPositionsEqual(loc)
}

func (l Label) String() string {
	return "A:" + l.elt[0].String() + " B:" + l.elt[1].String()
}
