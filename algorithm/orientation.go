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
	"errors"
	"fmt"

	"github.com/spatialmodel/planar"
)

var (
	// ErrTooFewPoints is returned for rings with fewer than four points.
	ErrTooFewPoints = errors.New("ring has fewer than 4 points, so orientation cannot be determined")
	// ErrDegenerateRing is returned for rings without three distinct
	// points around their highest vertex.
	ErrDegenerateRing = errors.New("degenerate ring has fewer than 3 distinct points")
)

// ArgumentError reports an input that an algorithm cannot be applied to.
type ArgumentError struct {
	Op  string
	Err error
}

func (e *ArgumentError) Error() string { return fmt.Sprintf("algorithm: %s: %v", e.Op, e.Err) }

// Unwrap returns the underlying error.
func (e *ArgumentError) Unwrap() error { return e.Err }

// IsCCW returns whether the closed ring is oriented counter-clockwise.
// The result is only meaningful for valid rings; repeated points are
// allowed.
func IsCCW(ring []planar.Coordinate) (bool, error) {
	nPts := len(ring) - 1
	if nPts < 3 {
		return false, &ArgumentError{Op: "IsCCW", Err: ErrTooFewPoints}
	}

	// Highest point.
	hi := ring[0]
	hiIndex := 0
	for i := 1; i <= nPts; i++ {
		if ring[i].Y > hi.Y {
			hi = ring[i]
			hiIndex = i
		}
	}

	// Distinct points before and after it.
	iPrev := hiIndex
	for {
		iPrev--
		if iPrev < 0 {
			iPrev = nPts
		}
		if !ring[iPrev].Equals2D(hi) || iPrev == hiIndex {
			break
		}
	}
	iNext := hiIndex
	for {
		iNext = (iNext + 1) % nPts
		if !ring[iNext].Equals2D(hi) || iNext == hiIndex {
			break
		}
	}

	prev, next := ring[iPrev], ring[iNext]
	if prev.Equals2D(hi) || next.Equals2D(hi) || prev.Equals2D(next) {
		return false, &ArgumentError{Op: "IsCCW", Err: ErrDegenerateRing}
	}

	disc := OrientationIndex(prev, hi, next)
	if disc == Collinear {
		// prev and next are at the same height as hi, on either side.
		return prev.X > next.X, nil
	}
	return disc > 0, nil
}

// SignedArea returns the shoelace area of ring, positive for
// counter-clockwise rings.
func SignedArea(ring []planar.Coordinate) float64 {
	if len(ring) < 3 {
		return 0
	}
	var sum float64
	x0 := ring[0].X
	for i := 1; i < len(ring)-1; i++ {
		x := ring[i].X - x0
		y1 := ring[i+1].Y
		y2 := ring[i-1].Y
		sum += x * (y2 - y1)
	}
	return -sum / 2
}
