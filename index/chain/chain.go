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

// Package chain partitions coordinate sequences into monotone chains and
// indexes them for fast overlap queries.
//
// A monotone chain is a run of segments whose direction vectors all lie in
// the same quadrant. Its envelope is determined by its two end vertices,
// and any sub-range of it is again a monotone chain, which lets overlap
// and selection queries bisect chains instead of testing every segment.
package chain

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
)

// MonotoneChain is the range [Start, End] of vertex indices of a
// coordinate sequence that is monotone in one quadrant direction.
type MonotoneChain struct {
	pts        []planar.Coordinate
	Start, End int

	// ID identifies the chain within an index. Overlap queries use it to
	// visit each pair of chains once.
	ID int

	// Context is the opaque value passed to Build, typically the segment
	// string or edge that owns the coordinates.
	Context interface{}

	env *geom.Bounds
}

// OverlapFunc is called for each pair of segments of two chains whose
// envelopes overlap. start1 and start2 are the indices of the first
// vertex of each segment.
type OverlapFunc func(mc1 *MonotoneChain, start1 int, mc2 *MonotoneChain, start2 int)

// SelectFunc is called for each segment of a chain whose envelope
// intersects a search envelope.
type SelectFunc func(mc *MonotoneChain, start int)

func newMonotoneChain(pts []planar.Coordinate, start, end int, context interface{}) *MonotoneChain {
	return &MonotoneChain{
		pts:     pts,
		Start:   start,
		End:     end,
		Context: context,
		env:     planar.SegmentBounds(pts[start], pts[end]),
	}
}

// Bounds returns the envelope of the chain. The returned value must not be
// modified.
func (mc *MonotoneChain) Bounds() *geom.Bounds { return mc.env }

// Coordinates returns the coordinates of the chain.
func (mc *MonotoneChain) Coordinates() []planar.Coordinate {
	return mc.pts[mc.Start : mc.End+1]
}

// Segment returns the endpoints of the segment starting at vertex index i.
func (mc *MonotoneChain) Segment(i int) (planar.Coordinate, planar.Coordinate) {
	return mc.pts[i], mc.pts[i+1]
}

// Select calls f for every segment of the chain whose envelope may
// intersect searchEnv. It may also report segments that do not intersect
// it.
func (mc *MonotoneChain) Select(searchEnv *geom.Bounds, f SelectFunc) {
	mc.computeSelect(searchEnv, mc.Start, mc.End, f)
}

func (mc *MonotoneChain) computeSelect(searchEnv *geom.Bounds, start0, end0 int, f SelectFunc) {
	if end0-start0 == 1 {
		f(mc, start0)
		return
	}
	if !searchEnv.Overlaps(planar.SegmentBounds(mc.pts[start0], mc.pts[end0])) {
		return
	}
	mid := (start0 + end0) / 2
	if start0 < mid {
		mc.computeSelect(searchEnv, start0, mid, f)
	}
	if mid < end0 {
		mc.computeSelect(searchEnv, mid, end0, f)
	}
}

// ComputeOverlaps calls f for every pair of segments of mc and other whose
// envelopes, grown by tolerance, overlap.
func (mc *MonotoneChain) ComputeOverlaps(other *MonotoneChain, tolerance float64, f OverlapFunc) {
	mc.computeOverlaps(mc.Start, mc.End, other, other.Start, other.End, tolerance, f)
}

func (mc *MonotoneChain) computeOverlaps(start0, end0 int, other *MonotoneChain, start1, end1 int, tolerance float64, f OverlapFunc) {
	if end0-start0 == 1 && end1-start1 == 1 {
		f(mc, start0, other, start1)
		return
	}
	if !overlaps(mc.pts[start0], mc.pts[end0], other.pts[start1], other.pts[end1], tolerance) {
		return
	}
	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2
	if start0 < mid0 {
		if start1 < mid1 {
			mc.computeOverlaps(start0, mid0, other, start1, mid1, tolerance, f)
		}
		if mid1 < end1 {
			mc.computeOverlaps(start0, mid0, other, mid1, end1, tolerance, f)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			mc.computeOverlaps(mid0, end0, other, start1, mid1, tolerance, f)
		}
		if mid1 < end1 {
			mc.computeOverlaps(mid0, end0, other, mid1, end1, tolerance, f)
		}
	}
}

func overlaps(p1, p2, q1, q2 planar.Coordinate, tolerance float64) bool {
	minP, maxP := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	minQ, maxQ := math.Min(q1.X, q2.X), math.Max(q1.X, q2.X)
	if minP > maxQ+tolerance || maxP < minQ-tolerance {
		return false
	}
	minP, maxP = math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	minQ, maxQ = math.Min(q1.Y, q2.Y), math.Max(q1.Y, q2.Y)
	return !(minP > maxQ+tolerance || maxP < minQ-tolerance)
}

// Build partitions pts into monotone chains, each carrying context.
// Sequences with fewer than two points have no chains.
func Build(pts []planar.Coordinate, context interface{}) []*MonotoneChain {
	if len(pts) < 2 {
		return nil
	}
	var chains []*MonotoneChain
	start := 0
	for start < len(pts)-1 {
		end := findChainEnd(pts, start)
		chains = append(chains, newMonotoneChain(pts, start, end, context))
		start = end
	}
	return chains
}

// findChainEnd returns the index of the last vertex of the chain starting
// at start. Zero-length segments do not change the chain direction.
func findChainEnd(pts []planar.Coordinate, start int) int {
	safeStart := start
	for safeStart < len(pts)-1 && pts[safeStart].Equals2D(pts[safeStart+1]) {
		safeStart++
	}
	if safeStart >= len(pts)-1 {
		return len(pts) - 1
	}
	chainQuad := quadrant(pts[safeStart], pts[safeStart+1])
	last := start + 1
	for last < len(pts) {
		if !pts[last-1].Equals2D(pts[last]) && quadrant(pts[last-1], pts[last]) != chainQuad {
			break
		}
		last++
	}
	return last - 1
}

// quadrant returns the quadrant of the direction p0-p1, numbered
// counter-clockwise from the north-east. p0 and p1 must differ.
func quadrant(p0, p1 planar.Coordinate) int {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	switch {
	case dx >= 0 && dy >= 0:
		return 0
	case dx < 0 && dy >= 0:
		return 1
	case dx < 0:
		return 2
	}
	return 3
}
