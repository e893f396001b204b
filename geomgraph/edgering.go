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
	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
)

// EdgeRing is a closed ring of directed edges in a graph. A maximal ring
// follows the Next links of its edges and may touch itself at nodes. A
// minimal ring follows the NextMin links and does not.
type EdgeRing struct {
	ID      RingID
	Minimal bool
	// Label holds the location of the ring interior in each geometry.
	Label Label
	// Shell is the ring containing a hole, or NoRing.
	Shell RingID
	// Holes are the rings a shell contains.
	Holes []RingID

	g             *Graph
	start         DirEdgeID
	edges         []DirEdgeID
	pts           []planar.Coordinate
	isHole        bool
	maxNodeDegree int
	env           *geom.Bounds
}

func (g *Graph) newEdgeRing(start DirEdgeID, minimal bool) (*EdgeRing, error) {
	r := &EdgeRing{
		ID:            RingID(len(g.rings)),
		Minimal:       minimal,
		Label:         NewLabel(planar.None),
		Shell:         NoRing,
		g:             g,
		maxNodeDegree: -1,
	}
	g.rings = append(g.rings, r)
	if err := r.computePoints(start); err != nil {
		return nil, err
	}
	isCCW, err := algorithm.IsCCW(r.pts)
	if err != nil {
		return nil, planar.NewTopologyError("invalid edge ring: "+err.Error(), r.pts[0])
	}
	r.isHole = isCCW
	return r, nil
}

func (r *EdgeRing) next(de *DirectedEdge) DirEdgeID {
	if r.Minimal {
		return de.NextMin
	}
	return de.Next
}

func (r *EdgeRing) ringOf(de *DirectedEdge) RingID {
	if r.Minimal {
		return de.MinEdgeRing
	}
	return de.EdgeRing
}

func (r *EdgeRing) setRing(de *DirectedEdge) {
	if r.Minimal {
		de.MinEdgeRing = r.ID
	} else {
		de.EdgeRing = r.ID
	}
}

func (r *EdgeRing) computePoints(start DirEdgeID) error {
	r.start = start
	id := start
	first := true
	for {
		de := r.g.dirEdges[id]
		if r.ringOf(de) == r.ID {
			return planar.NewTopologyError("directed edge visited twice during ring-building", de.Coordinate())
		}
		r.edges = append(r.edges, id)
		r.mergeLabel(de.Label)
		r.addPoints(de, first)
		first = false
		r.setRing(de)
		id = r.next(de)
		if id == NoDirEdge {
			return planar.NewTopologyError("found null directed edge", de.DirectedCoordinate())
		}
		if id == start {
			return nil
		}
	}
}

// mergeLabel takes the location of the ring interior from the right side
// of its directed edges.
func (r *EdgeRing) mergeLabel(l Label) {
	for i := 0; i < 2; i++ {
		loc := l.Location(i, planar.Right)
		if loc == planar.None {
			continue
		}
		if r.Label.LocationOn(i) == planar.None {
			r.Label = r.Label.WithLocationOn(i, loc)
		}
	}
}

func (r *EdgeRing) addPoints(de *DirectedEdge, first bool) {
	pts := de.edge.pts
	if de.IsForward {
		start := 1
		if first {
			start = 0
		}
		r.pts = append(r.pts, pts[start:]...)
		return
	}
	start := len(pts) - 2
	if first {
		start = len(pts) - 1
	}
	for i := start; i >= 0; i-- {
		r.pts = append(r.pts, pts[i])
	}
}

// Coordinates returns the closed ring of points.
func (r *EdgeRing) Coordinates() []planar.Coordinate { return r.pts }

// Edges returns the directed edges of the ring in order.
func (r *EdgeRing) Edges() []DirEdgeID { return r.edges }

// IsHole returns whether the ring is oriented counter-clockwise.
func (r *EdgeRing) IsHole() bool { return r.isHole }

// IsShell returns whether the ring is not contained in another ring.
func (r *EdgeRing) IsShell() bool { return r.Shell == NoRing }

// SetShell records shell as the ring containing r, and adds r to its
// holes.
func (r *EdgeRing) SetShell(shell RingID) {
	r.Shell = shell
	if shell != NoRing {
		s := r.g.rings[shell]
		s.Holes = append(s.Holes, r.ID)
	}
}

// MaxNodeDegree returns the largest number of ring edges at any node of
// the ring, counting both directions.
func (r *EdgeRing) MaxNodeDegree() int {
	if r.maxNodeDegree < 0 {
		max := 0
		id := r.start
		for {
			de := r.g.dirEdges[id]
			if d := r.g.nodes[de.Node].Star.OutgoingDegreeOf(r.ID); d > max {
				max = d
			}
			id = r.next(de)
			if id == r.start {
				break
			}
		}
		r.maxNodeDegree = max * 2
	}
	return r.maxNodeDegree
}

// Bounds returns the envelope of the ring.
func (r *EdgeRing) Bounds() *geom.Bounds {
	if r.env == nil {
		r.env = planar.Bounds(r.pts)
	}
	return r.env
}

// ContainsPoint returns whether p is inside the ring and outside all of
// its holes.
func (r *EdgeRing) ContainsPoint(p planar.Coordinate) bool {
	if !planar.BoundsContains(r.Bounds(), p) {
		return false
	}
	if !algorithm.IsPointInRing(p, r.pts) {
		return false
	}
	for _, h := range r.Holes {
		if r.g.rings[h].ContainsPoint(p) {
			return false
		}
	}
	return true
}

// LinkDirectedEdgesForMinimalEdgeRings links the directed edges of a
// maximal ring into minimal rings at every node of the ring.
func (r *EdgeRing) LinkDirectedEdgesForMinimalEdgeRings() error {
	id := r.start
	for {
		de := r.g.dirEdges[id]
		if err := r.g.nodes[de.Node].Star.LinkMinimalDirectedEdges(r.ID); err != nil {
			return err
		}
		id = de.Next
		if id == r.start {
			return nil
		}
	}
}

// BuildMinimalRings splits a maximal ring into minimal rings. The links
// must have been made with LinkDirectedEdgesForMinimalEdgeRings.
func (r *EdgeRing) BuildMinimalRings() ([]*EdgeRing, error) {
	var o []*EdgeRing
	id := r.start
	for {
		de := r.g.dirEdges[id]
		if de.MinEdgeRing == NoRing {
			minRing, err := r.g.newEdgeRing(id, true)
			if err != nil {
				return nil, err
			}
			o = append(o, minRing)
		}
		id = de.Next
		if id == r.start {
			return o, nil
		}
	}
}

// BuildMaximalEdgeRings builds a maximal ring from each area directed edge
// in the result that is not yet in a ring. The result edges must have
// been linked with LinkResultDirectedEdges.
func (g *Graph) BuildMaximalEdgeRings() ([]*EdgeRing, error) {
	var o []*EdgeRing
	for _, de := range g.dirEdges {
		if !de.InResult || !de.Label.IsArea() || de.EdgeRing != NoRing {
			continue
		}
		r, err := g.newEdgeRing(de.ID, false)
		if err != nil {
			return nil, err
		}
		o = append(o, r)
	}
	return o, nil
}
