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

package chain

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/spatialmodel/planar"
)

// entry is a chain stored in the R-tree. It owns a copy of the chain
// envelope, grown by the index tolerance, so the tree never modifies the
// chain's own.
type entry struct {
	geom.Geom
	mc *MonotoneChain
}

// Index is an R-tree of monotone chains. Queries are safe for concurrent
// use once all chains have been inserted.
type Index struct {
	tree      *rtree.Rtree
	tolerance float64
	n         int
}

// NewIndex returns an empty index. Chain envelopes are grown by tolerance
// on insertion.
func NewIndex(tolerance float64) *Index {
	return &Index{tree: rtree.NewTree(25, 50), tolerance: tolerance}
}

// Insert adds mc to the index.
func (ix *Index) Insert(mc *MonotoneChain) {
	b := mc.Bounds().Copy()
	if ix.tolerance > 0 {
		b = planar.ExpandBy(b, ix.tolerance)
	}
	ix.tree.Insert(&entry{Geom: b, mc: mc})
	ix.n++
}

// Len returns the number of chains in the index.
func (ix *Index) Len() int { return ix.n }

// Query returns the chains whose envelopes intersect b.
func (ix *Index) Query(b *geom.Bounds) []*MonotoneChain {
	items := ix.tree.SearchIntersect(b)
	o := make([]*MonotoneChain, len(items))
	for i, item := range items {
		o[i] = item.(*entry).mc
	}
	return o
}
