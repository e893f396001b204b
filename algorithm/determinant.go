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

// Package algorithm holds the robust computational geometry primitives the
// topology engine is built on: the sign of a 2x2 determinant, orientation
// tests, segment intersection and point-in-ring location.
package algorithm

import (
	"math"

	"github.com/spatialmodel/planar"
)

// Orientation index values.
const (
	Clockwise        = -1
	Collinear        = 0
	CounterClockwise = 1
)

// SignOfDet2x2 returns the sign (-1, 0 or 1) of the determinant
// x1*y2 - x2*y1 without forming the products, so that the result is exact
// for ill-conditioned inputs. The method is Olivier Devillers' scaled
// Euclidean reduction.
//
// It panics if any entry is NaN.
func SignOfDet2x2(x1, y1, x2, y2 float64) int {
	if math.IsNaN(x1) || math.IsNaN(y1) || math.IsNaN(x2) || math.IsNaN(y2) {
		panic("algorithm: NaN entry in determinant")
	}

	// Null entries.
	if x1 == 0 || y2 == 0 {
		if y1 == 0 || x2 == 0 {
			return 0
		}
		if y1 > 0 {
			if x2 > 0 {
				return -1
			}
			return 1
		}
		if x2 > 0 {
			return 1
		}
		return -1
	}
	if y1 == 0 || x2 == 0 {
		if y2 > 0 {
			if x1 > 0 {
				return 1
			}
			return -1
		}
		if x1 > 0 {
			return -1
		}
		return 1
	}

	// Make the y entries positive, with y1 <= y2.
	sign := 1
	if 0 < y1 {
		if 0 < y2 {
			if y1 > y2 {
				sign = -1
				x1, x2 = x2, x1
				y1, y2 = y2, y1
			}
		} else if y1 <= -y2 {
			sign = -1
			x2, y2 = -x2, -y2
		} else {
			x1, x2 = -x2, x1
			y1, y2 = -y2, y1
		}
	} else {
		if 0 < y2 {
			if -y1 <= y2 {
				sign = -1
				x1, y1 = -x1, -y1
			} else {
				x1, x2 = x2, -x1
				y1, y2 = y2, -y1
			}
		} else if y1 >= y2 {
			x1, y1, x2, y2 = -x1, -y1, -x2, -y2
		} else {
			sign = -1
			x1, x2 = -x2, -x1
			y1, y2 = -y2, -y1
		}
	}

	// Make the x entries positive. If |x2| < |x1| the sign is known.
	if 0 < x1 {
		if 0 < x2 {
			if x1 > x2 {
				return sign
			}
		} else {
			return sign
		}
	} else {
		if 0 < x2 {
			return -sign
		}
		if x1 >= x2 {
			sign = -sign
			x1, x2 = -x1, -x2
		} else {
			return -sign
		}
	}

	// All entries are now strictly positive with x1 <= x2 and y1 <= y2.
	for {
		k := math.Floor(x2 / x1)
		x2 -= k * x1
		y2 -= k * y1

		if y2 < 0 {
			return -sign
		}
		if y2 > y1 {
			return sign
		}

		if x1 > x2+x2 {
			if y1 < y2+y2 {
				return sign
			}
		} else {
			if y1 > y2+y2 {
				return -sign
			}
			x2 = x1 - x2
			y2 = y1 - y2
			sign = -sign
		}
		if y2 == 0 {
			if x2 == 0 {
				return 0
			}
			return -sign
		}
		if x2 == 0 {
			return sign
		}

		// Exchange the roles of the two rows.
		k = math.Floor(x1 / x2)
		x1 -= k * x2
		y1 -= k * y2

		if y1 < 0 {
			return sign
		}
		if y1 > y2 {
			return -sign
		}

		if x2 > x1+x1 {
			if y2 < y1+y1 {
				return -sign
			}
		} else {
			if y2 > y1+y1 {
				return sign
			}
			x1 = x2 - x1
			y1 = y2 - y1
			sign = -sign
		}
		if y1 == 0 {
			if x1 == 0 {
				return 0
			}
			return sign
		}
		if x1 == 0 {
			return -sign
		}
	}
}

// OrientationIndex returns CounterClockwise if q lies to the left of the
// directed segment p1-p2, Clockwise if it lies to the right and Collinear
// if it lies on the line through them.
func OrientationIndex(p1, p2, q planar.Coordinate) int {
	dx1 := p2.X - p1.X
	dy1 := p2.Y - p1.Y
	dx2 := q.X - p2.X
	dy2 := q.Y - p2.Y
	return SignOfDet2x2(dx1, dy1, dx2, dy2)
}
