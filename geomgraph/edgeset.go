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
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar/index/chain"
)

// EdgeSetIntersector finds the intersections within and between sets of
// edges using an R-tree of their monotone chains.
type EdgeSetIntersector struct {
	// Log receives statistics about each run. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

func (esi *EdgeSetIntersector) log() logrus.FieldLogger {
	if esi.Log == nil {
		return logrus.StandardLogger()
	}
	return esi.Log
}

func indexEdges(edges []*Edge) (*chain.Index, []*chain.MonotoneChain) {
	ix := chain.NewIndex(0)
	var chains []*chain.MonotoneChain
	for _, e := range edges {
		for _, mc := range e.MonotoneChains() {
			mc.ID = len(chains)
			chains = append(chains, mc)
			ix.Insert(mc)
		}
	}
	return ix, chains
}

func addOverlap(si *SegmentIntersector) chain.OverlapFunc {
	return func(mc0 *chain.MonotoneChain, start0 int, mc1 *chain.MonotoneChain, start1 int) {
		si.AddIntersections(mc0.Context.(*Edge), start0, mc1.Context.(*Edge), start1)
	}
}

// ComputeIntersections finds the intersections among edges. Segments of
// the same edge are tested against each other only if testAllSegments is
// true.
func (esi *EdgeSetIntersector) ComputeIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	ix, chains := indexEdges(edges)
	f := addOverlap(si)
	for _, queryChain := range chains {
		for _, testChain := range ix.Query(queryChain.Bounds()) {
			if testChain.ID <= queryChain.ID {
				continue
			}
			if !testAllSegments && testChain.Context == queryChain.Context {
				continue
			}
			queryChain.ComputeOverlaps(testChain, 0, f)
		}
	}
	esi.log().WithFields(logrus.Fields{
		"edges":         len(edges),
		"chains":        len(chains),
		"tests":         si.NumTests,
		"intersections": si.NumIntersections,
	}).Debug("geomgraph: computed self intersections")
}

// ComputeMutualIntersections finds the intersections between edges0 and
// edges1. Edges of edges0 are passed to si first.
func (esi *EdgeSetIntersector) ComputeMutualIntersections(edges0, edges1 []*Edge, si *SegmentIntersector) {
	ix, chains1 := indexEdges(edges1)
	f := addOverlap(si)
	for _, e := range edges0 {
		for _, queryChain := range e.MonotoneChains() {
			for _, testChain := range ix.Query(queryChain.Bounds()) {
				queryChain.ComputeOverlaps(testChain, 0, f)
			}
		}
	}
	esi.log().WithFields(logrus.Fields{
		"edges0":        len(edges0),
		"edges1":        len(edges1),
		"chains1":       len(chains1),
		"tests":         si.NumTests,
		"intersections": si.NumIntersections,
	}).Debug("geomgraph: computed mutual intersections")
}
