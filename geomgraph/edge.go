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
	"strings"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
	"github.com/spatialmodel/planar/index/chain"
)

// Edge is a linear component of a graph. Its Label gives its location
// relative to both geometries of the graph; its intersections with other
// edges are recorded during noding.
type Edge struct {
	Label Label

	pts        []planar.Coordinate
	depth      Depth
	depthDelta int
	isIsolated bool
	eiList     *EdgeIntersectionList
	env        *geom.Bounds
	chains     []*chain.MonotoneChain
}

// NewEdge returns an edge along pts, which must contain at least two
// distinct points.
func NewEdge(pts []planar.Coordinate, label Label) *Edge {
	e := &Edge{
		Label:      label,
		pts:        pts,
		depth:      NewDepth(),
		isIsolated: true,
	}
	e.eiList = newEdgeIntersectionList(e)
	return e
}

// Coordinates returns the vertices of e.
func (e *Edge) Coordinates() []planar.Coordinate { return e.pts }

// Coordinate returns vertex i of e.
func (e *Edge) Coordinate(i int) planar.Coordinate { return e.pts[i] }

// NumPoints returns the number of vertices of e.
func (e *Edge) NumPoints() int { return len(e.pts) }

// MaximumSegmentIndex returns the index of the last segment of e.
func (e *Edge) MaximumSegmentIndex() int { return len(e.pts) - 1 }

// IsClosed returns whether the first and last vertices of e are equal.
func (e *Edge) IsClosed() bool { return e.pts[0].Equals2D(e.pts[len(e.pts)-1]) }

// IsCollapsed returns whether e is an area edge that has collapsed to an
// A-B-A line.
func (e *Edge) IsCollapsed() bool {
	return e.Label.IsArea() && len(e.pts) == 3 && e.pts[0].Equals2D(e.pts[2])
}

// CollapsedEdge returns the line edge a collapsed area edge reduces to.
func (e *Edge) CollapsedEdge() *Edge {
	return NewEdge([]planar.Coordinate{e.pts[0], e.pts[1]}, LineLabel(e.Label))
}

// Bounds returns the envelope of e.
func (e *Edge) Bounds() *geom.Bounds {
	if e.env == nil {
		e.env = planar.Bounds(e.pts)
	}
	return e.env
}

// MonotoneChains returns the monotone chains of e. Each chain has e as its
// context.
func (e *Edge) MonotoneChains() []*chain.MonotoneChain {
	if e.chains == nil {
		e.chains = chain.Build(e.pts, e)
	}
	return e.chains
}

// Depth returns the side depths of e.
func (e *Edge) Depth() *Depth { return &e.depth }

// DepthDelta returns the depth on the left of e minus the depth on its
// right. This is the negation of Depth.Delta.
func (e *Edge) DepthDelta() int { return e.depthDelta }

// SetDepthDelta sets the depth on the left of e minus the depth on its
// right.
func (e *Edge) SetDepthDelta(d int) { e.depthDelta = d }

// IsIsolated returns whether e intersects no other edge.
func (e *Edge) IsIsolated() bool { return e.isIsolated }

// SetIsolated sets whether e intersects no other edge.
func (e *Edge) SetIsolated(isolated bool) { e.isIsolated = isolated }

// Intersections returns the intersections recorded on e.
func (e *Edge) Intersections() *EdgeIntersectionList { return e.eiList }

// AddIntersections records every intersection point computed by li on
// segment segmentIndex. geomIndex is the index of e's segment among the
// two li intersected.
func (e *Edge) AddIntersections(li *algorithm.LineIntersector, segmentIndex, geomIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		e.AddIntersection(li, segmentIndex, geomIndex, i)
	}
}

// AddIntersection records intersection point intIndex of li. A point
// equal to the end of its segment is recorded at the start of the next
// segment.
func (e *Edge) AddIntersection(li *algorithm.LineIntersector, segmentIndex, geomIndex, intIndex int) {
	intPt := li.Intersection(intIndex)
	normalized := segmentIndex
	dist := li.EdgeDistance(geomIndex, intIndex)
	if next := segmentIndex + 1; next < len(e.pts) && intPt.Equals2D(e.pts[next]) {
		normalized = next
		dist = 0
	}
	e.eiList.Add(intPt, normalized, dist)
}

// UpdateIM raises the entries of im for the locations of e.
func (e *Edge) UpdateIM(im *planar.IntersectionMatrix) {
	UpdateIM(e.Label, im)
}

// UpdateIM raises the entries of im implied by an edge with the given
// label: dimension 1 along the edge and, for area labels, dimension 2 on
// either side.
func UpdateIM(l Label, im *planar.IntersectionMatrix) {
	im.SetAtLeastIfValid(l.Location(0, planar.On), l.Location(1, planar.On), planar.L)
	if l.IsArea() {
		im.SetAtLeastIfValid(l.Location(0, planar.Left), l.Location(1, planar.Left), planar.A)
		im.SetAtLeastIfValid(l.Location(0, planar.Right), l.Location(1, planar.Right), planar.A)
	}
}

// Equals returns whether e and o have the same vertices in the same or
// reverse order.
func (e *Edge) Equals(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	forward, reverse := true, true
	n := len(e.pts)
	for i := range e.pts {
		if !e.pts[i].Equals2D(o.pts[i]) {
			forward = false
		}
		if !e.pts[i].Equals2D(o.pts[n-1-i]) {
			reverse = false
		}
		if !forward && !reverse {
			return false
		}
	}
	return true
}

// IsPointwiseEqual returns whether e and o have the same vertices in the
// same order.
func (e *Edge) IsPointwiseEqual(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	for i := range e.pts {
		if !e.pts[i].Equals2D(o.pts[i]) {
			return false
		}
	}
	return true
}

func (e *Edge) String() string {
	parts := make([]string, len(e.pts))
	for i, p := range e.pts {
		parts[i] = fmt.Sprintf("%g %g", p.X, p.Y)
	}
	return fmt.Sprintf("edge LINESTRING (%s) %v %d", strings.Join(parts, ", "), e.Label, e.depthDelta)
}
