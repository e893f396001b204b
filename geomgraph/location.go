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

// TopologyLocation holds the locations of a graph component relative to
// one geometry. A point or line component has only an On location; an
// area component also has Left and Right locations.
//
// TopologyLocation is a value type: every method that changes a location
// returns a new value. The zero value is a line location with On set to
// None.
type TopologyLocation struct {
	loc [3]planar.Location
	n   int
}

// NewLineLocation returns a location with only an On position.
func NewLineLocation(on planar.Location) TopologyLocation {
	return TopologyLocation{loc: [3]planar.Location{on, planar.None, planar.None}, n: 1}
}

// NewAreaLocation returns a location with On, Left and Right positions.
func NewAreaLocation(on, left, right planar.Location) TopologyLocation {
	return TopologyLocation{loc: [3]planar.Location{on, left, right}, n: 3}
}

func (tl TopologyLocation) init() TopologyLocation {
	if tl.n == 0 {
		return NewLineLocation(planar.None)
	}
	return tl
}

// Get returns the location at pos, or None if tl has no such position.
func (tl TopologyLocation) Get(pos planar.Position) planar.Location {
	tl = tl.init()
	if int(pos) < tl.n {
		return tl.loc[pos]
	}
	return planar.None
}

// IsArea returns whether tl has Left and Right positions.
func (tl TopologyLocation) IsArea() bool { return tl.n == 3 }

// IsLine returns whether tl has only an On position.
func (tl TopologyLocation) IsLine() bool { return tl.n != 3 }

// IsNull returns whether every location is None.
func (tl TopologyLocation) IsNull() bool {
	tl = tl.init()
	for i := 0; i < tl.n; i++ {
		if tl.loc[i] != planar.None {
			return false
		}
	}
	return true
}

// IsAnyNull returns whether any location is None.
func (tl TopologyLocation) IsAnyNull() bool {
	tl = tl.init()
	for i := 0; i < tl.n; i++ {
		if tl.loc[i] == planar.None {
			return true
		}
	}
	return false
}

// IsEqualOnSide returns whether tl and o have the same location at pos.
func (tl TopologyLocation) IsEqualOnSide(o TopologyLocation, pos planar.Position) bool {
	return tl.Get(pos) == o.Get(pos)
}

// AllPositionsEqual returns whether every location equals loc.
func (tl TopologyLocation) AllPositionsEqual(loc planar.Location) bool {
	tl = tl.init()
	for i := 0; i < tl.n; i++ {
		if tl.loc[i] != loc {
			return false
		}
	}
	return true
}

// With returns tl with the location at pos set to loc. Setting a side of
// a line location turns it into an area location.
func (tl TopologyLocation) With(pos planar.Position, loc planar.Location) TopologyLocation {
	tl = tl.init()
	if pos != planar.On && tl.n == 1 {
		tl.n = 3
		tl.loc[planar.Left], tl.loc[planar.Right] = planar.None, planar.None
	}
	tl.loc[pos] = loc
	return tl
}

// WithAll returns tl with every location set to loc.
func (tl TopologyLocation) WithAll(loc planar.Location) TopologyLocation {
	tl = tl.init()
	for i := 0; i < tl.n; i++ {
		tl.loc[i] = loc
	}
	return tl
}

// WithAllIfNull returns tl with every None location set to loc.
func (tl TopologyLocation) WithAllIfNull(loc planar.Location) TopologyLocation {
	tl = tl.init()
	for i := 0; i < tl.n; i++ {
		if tl.loc[i] == planar.None {
			tl.loc[i] = loc
		}
	}
	return tl
}

// Flip returns tl with Left and Right swapped, as seen from the other
// direction along the component.
func (tl TopologyLocation) Flip() TopologyLocation {
	tl = tl.init()
	if tl.n == 3 {
		tl.loc[planar.Left], tl.loc[planar.Right] = tl.loc[planar.Right], tl.loc[planar.Left]
	}
	return tl
}

// Merge returns tl with its None locations taken from o. If o is an area
// location and tl is not, the result is an area location. Locations that
// are already set are never overwritten.
func (tl TopologyLocation) Merge(o TopologyLocation) TopologyLocation {
	tl = tl.init()
	o = o.init()
	if o.n > tl.n {
		tl.n = o.n
		tl.loc[planar.Left], tl.loc[planar.Right] = planar.None, planar.None
	}
	for i := 0; i < tl.n; i++ {
		if tl.loc[i] == planar.None && i < o.n {
			tl.loc[i] = o.loc[i]
		}
	}
	return tl
}

// ToLine returns a line location with the On location of tl.
func (tl TopologyLocation) ToLine() TopologyLocation {
	return NewLineLocation(tl.Get(planar.On))
}

func (tl TopologyLocation) String() string {
	tl = tl.init()
	if tl.n == 3 {
		return string([]byte{tl.loc[planar.Left].Symbol(), tl.loc[planar.On].Symbol(), tl.loc[planar.Right].Symbol()})
	}
	return string(tl.loc[planar.On].Symbol())
}
