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

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// safeEnvExpansion is the half-width of the search envelope of a hot pixel,
// in grid units. It exceeds the half-width of the pixel, so that no
// segment touching the pixel is missed.
const safeEnvExpansion = 0.75

// HotPixel is a unit square of the snap-rounding grid that contains a
// vertex or an intersection point. Every segment passing through a hot
// pixel gets a node at the pixel's point.
type HotPixel struct {
	li          *algorithm.LineIntersector
	originalPt  planar.Coordinate
	pt          planar.Coordinate
	scaleFactor float64
	corner      [4]planar.Coordinate
	minX, maxX  float64
	minY, maxY  float64
}

// NewHotPixel returns the hot pixel containing pt on the grid with the
// given scale factor.
func NewHotPixel(pt planar.Coordinate, scaleFactor float64, li *algorithm.LineIntersector) (*HotPixel, error) {
	if scaleFactor <= 0 {
		return nil, fmt.Errorf("noding: scale factor must be positive, have %g", scaleFactor)
	}
	hp := &HotPixel{
		li:          li,
		originalPt:  pt,
		pt:          pt,
		scaleFactor: scaleFactor,
	}
	if scaleFactor != 1 {
		hp.pt = planar.XY(hp.scale(pt.X), hp.scale(pt.Y))
	}
	const tolerance = 0.5
	hp.minX, hp.maxX = hp.pt.X-tolerance, hp.pt.X+tolerance
	hp.minY, hp.maxY = hp.pt.Y-tolerance, hp.pt.Y+tolerance
	hp.corner = [4]planar.Coordinate{
		planar.XY(hp.maxX, hp.maxY),
		planar.XY(hp.minX, hp.maxY),
		planar.XY(hp.minX, hp.minY),
		planar.XY(hp.maxX, hp.minY),
	}
	return hp, nil
}

func (hp *HotPixel) scale(v float64) float64 {
	return math.Floor(v*hp.scaleFactor + 0.5)
}

// Coordinate returns the point the pixel was created for.
func (hp *HotPixel) Coordinate() planar.Coordinate { return hp.originalPt }

// SafeBounds returns an envelope in input coordinates that contains every
// segment that may intersect the pixel.
func (hp *HotPixel) SafeBounds() *geom.Bounds {
	d := safeEnvExpansion / hp.scaleFactor
	return &geom.Bounds{
		Min: geom.Point{X: hp.originalPt.X - d, Y: hp.originalPt.Y - d},
		Max: geom.Point{X: hp.originalPt.X + d, Y: hp.originalPt.Y + d},
	}
}

// Intersects returns whether the segment p0-p1 intersects the pixel.
func (hp *HotPixel) Intersects(p0, p1 planar.Coordinate) bool {
	if hp.scaleFactor == 1 {
		return hp.intersectsScaled(p0, p1)
	}
	return hp.intersectsScaled(
		planar.XY(hp.scale(p0.X), hp.scale(p0.Y)),
		planar.XY(hp.scale(p1.X), hp.scale(p1.Y)))
}

func (hp *HotPixel) intersectsScaled(p0, p1 planar.Coordinate) bool {
	segMinX, segMaxX := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	segMinY, segMaxY := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	if hp.maxX < segMinX || hp.minX > segMaxX || hp.maxY < segMinY || hp.minY > segMaxY {
		return false
	}
	return hp.intersectsToleranceSquare(p0, p1)
}

// intersectsToleranceSquare tests the segment against the pixel, which
// is half-open: the top and right sides do not belong to it. A segment
// crossing a side or passing through the bottom-left corner intersects
// the pixel; one that only touches the top or right side does not.
func (hp *HotPixel) intersectsToleranceSquare(p0, p1 planar.Coordinate) bool {
	li := hp.li
	var intersectsLeft, intersectsBottom bool

	li.ComputeIntersection(p0, p1, hp.corner[0], hp.corner[1])
	if li.IsProper() {
		return true
	}
	li.ComputeIntersection(p0, p1, hp.corner[1], hp.corner[2])
	if li.IsProper() {
		return true
	}
	if li.HasIntersection() {
		intersectsLeft = true
	}
	li.ComputeIntersection(p0, p1, hp.corner[2], hp.corner[3])
	if li.IsProper() {
		return true
	}
	if li.HasIntersection() {
		intersectsBottom = true
	}
	li.ComputeIntersection(p0, p1, hp.corner[3], hp.corner[0])
	if li.IsProper() {
		return true
	}
	if intersectsLeft && intersectsBottom {
		return true
	}
	return p0.Equals2D(hp.pt) || p1.Equals2D(hp.pt)
}

// AddSnappedNode adds a node at the pixel's point to segment segIndex of
// ss if the segment intersects the pixel, and returns whether it did.
func (hp *HotPixel) AddSnappedNode(ss *NodedSegmentString, segIndex int) bool {
	if hp.Intersects(ss.Coordinate(segIndex), ss.Coordinate(segIndex+1)) {
		ss.AddIntersection(hp.originalPt, segIndex)
		return true
	}
	return false
}
