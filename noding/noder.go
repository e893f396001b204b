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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar/index/chain"
)

// Noder computes the nodes of a set of segment strings.
type Noder interface {
	// ComputeNodes finds the intersections between segStrings and records
	// them as nodes.
	ComputeNodes(segStrings []SegmentString) error
	// NodedSubstrings splits the strings passed to ComputeNodes at their
	// nodes.
	NodedSubstrings() ([]SegmentString, error)
}

// SimpleNoder compares every segment with every other segment. It is
// quadratic in the number of segments and serves small inputs and as a
// reference for the indexed noders.
type SimpleNoder struct {
	SegmentIntersector SegmentIntersector
	nodedSegStrings    []*NodedSegmentString
}

// NewSimpleNoder returns a noder that reports segment pairs to si.
func NewSimpleNoder(si SegmentIntersector) *SimpleNoder {
	return &SimpleNoder{SegmentIntersector: si}
}

// ComputeNodes implements Noder.
func (n *SimpleNoder) ComputeNodes(segStrings []SegmentString) error {
	if err := checkFinite(segStrings); err != nil {
		return err
	}
	n.nodedSegStrings = toNoded(segStrings)
	for _, e0 := range n.nodedSegStrings {
		for _, e1 := range n.nodedSegStrings {
			n.computeIntersects(e0, e1)
			if n.SegmentIntersector.IsDone() {
				return nil
			}
		}
	}
	return nil
}

// checkFinite returns an error if a vertex of segStrings has a NaN or
// infinite X or Y ordinate.
func checkFinite(segStrings []SegmentString) error {
	for i, ss := range segStrings {
		for _, p := range ss.Coordinates() {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return fmt.Errorf("noding: segment string %d has non-finite vertex %v", i, p)
			}
		}
	}
	return nil
}

func (n *SimpleNoder) computeIntersects(e0, e1 *NodedSegmentString) {
	for i0 := 0; i0 < e0.Size()-1; i0++ {
		for i1 := 0; i1 < e1.Size()-1; i1++ {
			n.SegmentIntersector.ProcessIntersections(e0, i0, e1, i1)
		}
	}
}

// NodedSubstrings implements Noder.
func (n *SimpleNoder) NodedSubstrings() ([]SegmentString, error) {
	return NodedSubstrings(n.nodedSegStrings)
}

// MCIndexNoder finds candidate segment pairs through an R-tree of
// monotone chains, so only segments with overlapping envelopes are
// compared. Each pair of chains is processed once.
type MCIndexNoder struct {
	SegmentIntersector SegmentIntersector

	// OverlapTolerance grows the chain envelopes, so that segments that
	// are close but do not touch are also reported.
	OverlapTolerance float64

	Log logrus.FieldLogger

	nodedSegStrings []*NodedSegmentString
	monoChains      []*chain.MonotoneChain
	index           *chain.Index
	nOverlaps       int
}

// NewMCIndexNoder returns a noder that reports segment pairs to si.
func NewMCIndexNoder(si SegmentIntersector) *MCIndexNoder {
	return &MCIndexNoder{
		SegmentIntersector: si,
		Log:                logrus.StandardLogger(),
	}
}

// MonotoneChains returns the chains built by the last call to
// ComputeNodes.
func (n *MCIndexNoder) MonotoneChains() []*chain.MonotoneChain { return n.monoChains }

// Index returns the chain index built by the last call to ComputeNodes.
func (n *MCIndexNoder) Index() *chain.Index { return n.index }

// ComputeNodes implements Noder.
func (n *MCIndexNoder) ComputeNodes(segStrings []SegmentString) error {
	if err := checkFinite(segStrings); err != nil {
		return err
	}
	n.nodedSegStrings = toNoded(segStrings)
	n.monoChains = nil
	n.index = chain.NewIndex(n.OverlapTolerance)
	n.nOverlaps = 0
	for _, ss := range n.nodedSegStrings {
		for _, mc := range chain.Build(ss.Coordinates(), ss) {
			mc.ID = len(n.monoChains)
			n.monoChains = append(n.monoChains, mc)
			n.index.Insert(mc)
		}
	}
	n.intersectChains()
	if n.Log != nil {
		n.Log.WithFields(logrus.Fields{
			"strings":  len(n.nodedSegStrings),
			"chains":   len(n.monoChains),
			"overlaps": n.nOverlaps,
		}).Debug("noding: computed nodes")
	}
	return nil
}

func (n *MCIndexNoder) intersectChains() {
	si := n.SegmentIntersector
	overlap := func(mc1 *chain.MonotoneChain, start1 int, mc2 *chain.MonotoneChain, start2 int) {
		si.ProcessIntersections(mc1.Context.(*NodedSegmentString), start1,
			mc2.Context.(*NodedSegmentString), start2)
	}
	for _, queryChain := range n.monoChains {
		for _, testChain := range n.index.Query(queryChain.Bounds()) {
			// Each pair of chains is compared once.
			if testChain.ID <= queryChain.ID {
				continue
			}
			queryChain.ComputeOverlaps(testChain, n.OverlapTolerance, overlap)
			n.nOverlaps++
			if si.IsDone() {
				return
			}
		}
	}
}

// NodedSubstrings implements Noder.
func (n *MCIndexNoder) NodedSubstrings() ([]SegmentString, error) {
	return NodedSubstrings(n.nodedSegStrings)
}
