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

package planar

import "fmt"

// TopologyError indicates that the topology of the input or of an
// intermediate graph is invalid, for example because an input polygon
// self-intersects or because noding left intersections behind.
type TopologyError struct {
	Msg string
	// Pt is the location of the problem. It is only meaningful if HasPt
	// is true.
	Pt    Coordinate
	HasPt bool
}

// NewTopologyError returns a TopologyError located at pt.
func NewTopologyError(msg string, pt Coordinate) *TopologyError {
	return &TopologyError{Msg: msg, Pt: pt, HasPt: true}
}

func (e *TopologyError) Error() string {
	if e.HasPt {
		return fmt.Sprintf("topology error: %s [ %g %g ]", e.Msg, e.Pt.X, e.Pt.Y)
	}
	return "topology error: " + e.Msg
}
