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


// Package hash computes lookup keys for values that have no natural
// comparable form.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spatialmodel/planar"
)

// Key returns a 128-bit FNV hash of the gob encoding of object, as a hex
// string. Values gob cannot encode are hashed from their spew dump.
func Key(object interface{}) string {
	h := fnv.New128a()
	if err := gob.NewEncoder(h).Encode(object); err != nil {
		h.Reset()
		printer := spew.ConfigState{
			Indent:                  " ",
			SortKeys:                true,
			DisableMethods:          true,
			SpewKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		printer.Fprintf(h, "%#v", object)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// EdgeKey returns a key for the X-Y values of a path that does not depend
// on the direction of the path: pts and its reverse have the same key.
func EdgeKey(pts []planar.Coordinate) string {
	xy := make([][2]float64, len(pts))
	if increasing(pts) {
		for i, p := range pts {
			xy[i] = [2]float64{p.X, p.Y}
		}
	} else {
		for i, p := range pts {
			xy[len(pts)-1-i] = [2]float64{p.X, p.Y}
		}
	}
	return Key(xy)
}

// increasing returns whether the first point of pts that differs from its
// mirror point at the other end is the smaller of the two. Palindromic
// paths count as increasing.
func increasing(pts []planar.Coordinate) bool {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		if c := pts[i].Compare(pts[j]); c != 0 {
			return c < 0
		}
	}
	return true
}
