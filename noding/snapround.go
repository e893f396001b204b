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
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
	"github.com/spatialmodel/planar/index/chain"
)

// SnapRoundingNoder nodes segment strings so that every node lies on a
// fixed grid. Interior intersections are rounded to the grid, and every
// segment passing through the grid cell (hot pixel) of an intersection or
// vertex gets a node at that point.
//
// Input vertices are expected to lie on the grid already. Wrap the noder
// in a ScaledNoder with a scale factor of 1 here to round arbitrary input.
type SnapRoundingNoder struct {
	Log logrus.FieldLogger

	pm              *planar.PrecisionModel
	li              *algorithm.LineIntersector
	scaleFactor     float64
	noder           *MCIndexNoder
	nodedSegStrings []*NodedSegmentString
}

// NewSnapRoundingNoder returns a snap-rounding noder for the grid of pm.
func NewSnapRoundingNoder(pm *planar.PrecisionModel) *SnapRoundingNoder {
	n := &SnapRoundingNoder{
		Log:         logrus.StandardLogger(),
		pm:          pm,
		li:          &algorithm.LineIntersector{PrecisionModel: pm},
		scaleFactor: 1,
	}
	if !pm.IsFloating() {
		n.scaleFactor = pm.Scale
	}
	return n
}

// ComputeNodes implements Noder.
func (n *SnapRoundingNoder) ComputeNodes(segStrings []SegmentString) error {
	n.nodedSegStrings = toNoded(segStrings)
	noded := make([]SegmentString, len(n.nodedSegStrings))
	for i, ss := range n.nodedSegStrings {
		noded[i] = ss
	}

	finder := NewInteriorIntersectionFinderAdder(n.li)
	n.noder = NewMCIndexNoder(finder)
	n.noder.Log = n.Log
	if err := n.noder.ComputeNodes(noded); err != nil {
		return err
	}

	snapped := 0
	for _, pt := range finder.InteriorIntersections() {
		hp, err := NewHotPixel(pt, n.scaleFactor, n.li)
		if err != nil {
			return err
		}
		if n.snap(hp, nil, -1) {
			snapped++
		}
	}
	for _, ss := range n.nodedSegStrings {
		if err := n.computeVertexSnaps(ss); err != nil {
			return err
		}
	}
	if n.Log != nil {
		n.Log.WithFields(logrus.Fields{
			"intersections": len(finder.InteriorIntersections()),
			"snapped":       snapped,
		}).Debug("noding: snap rounded")
	}
	return nil
}

// computeVertexSnaps snaps the segments near each vertex of ss to the
// vertex. A vertex that becomes a node of another segment is made a node
// of ss as well.
func (n *SnapRoundingNoder) computeVertexSnaps(ss *NodedSegmentString) error {
	pts := ss.Coordinates()
	for i, p := range pts {
		hp, err := NewHotPixel(p, n.scaleFactor, n.li)
		if err != nil {
			return err
		}
		if n.snap(hp, ss, i) {
			ss.AddIntersection(p, i)
		}
	}
	return nil
}

// snap adds a node at the hot pixel to every indexed segment passing
// through it, except the segment of parent starting at vertexIndex, and
// returns whether a node was added.
func (n *SnapRoundingNoder) snap(hp *HotPixel, parent *NodedSegmentString, vertexIndex int) bool {
	env := hp.SafeBounds()
	added := false
	selectFn := func(mc *chain.MonotoneChain, start int) {
		ss := mc.Context.(*NodedSegmentString)
		if ss == parent && start == vertexIndex {
			return
		}
		if hp.AddSnappedNode(ss, start) {
			added = true
		}
	}
	for _, mc := range n.noder.Index().Query(env) {
		mc.Select(env, selectFn)
	}
	return added
}

// NodedSubstrings implements Noder.
func (n *SnapRoundingNoder) NodedSubstrings() ([]SegmentString, error) {
	return NodedSubstrings(n.nodedSegStrings)
}
