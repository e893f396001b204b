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

	"github.com/spatialmodel/planar"
)

// PointToSegmentDistance returns the distance from p to the segment a-b.
func PointToSegmentDistance(p, a, b planar.Coordinate) float64 {
	if a.Equals2D(b) {
		return p.Distance(a)
	}
	len2 := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	r := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / len2
	if r <= 0 {
		return p.Distance(a)
	}
	if r >= 1 {
		return p.Distance(b)
	}
	s := ((a.Y-p.Y)*(b.X-a.X) - (a.X-p.X)*(b.Y-a.Y)) / len2
	return math.Abs(s) * math.Sqrt(len2)
}
