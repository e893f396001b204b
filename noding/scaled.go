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
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
)

// ScaledNoder wraps a noder that works on the integer grid, such as
// SnapRoundingNoder. Input coordinates are translated by the offset,
// multiplied by the scale factor and rounded to integers before noding;
// the noded substrings are transformed back.
//
// Rounding can collapse consecutive vertices. Repeated points are removed,
// and strings that collapse to a single point are dropped.
type ScaledNoder struct {
	OffsetX, OffsetY float64
	Log              logrus.FieldLogger

	noder       Noder
	scaleFactor float64
	isScaled    bool
}

// NewScaledNoder returns a ScaledNoder that multiplies coordinates by
// scaleFactor before passing them to noder.
func NewScaledNoder(noder Noder, scaleFactor float64) *ScaledNoder {
	return &ScaledNoder{
		Log:         logrus.StandardLogger(),
		noder:       noder,
		scaleFactor: scaleFactor,
		isScaled:    scaleFactor != 1,
	}
}

// IsIntegerPrecision returns whether the scale factor is 1, in which case
// coordinates are passed through unchanged.
func (n *ScaledNoder) IsIntegerPrecision() bool { return n.scaleFactor == 1 }

// ComputeNodes implements Noder.
func (n *ScaledNoder) ComputeNodes(segStrings []SegmentString) error {
	if n.isScaled {
		segStrings = n.scale(segStrings)
	}
	return n.noder.ComputeNodes(segStrings)
}

func (n *ScaledNoder) scale(segStrings []SegmentString) []SegmentString {
	o := make([]SegmentString, 0, len(segStrings))
	collapsed := 0
	for _, ss := range segStrings {
		pts := ss.Coordinates()
		round := make([]planar.Coordinate, len(pts))
		for i, p := range pts {
			round[i] = planar.Coordinate{
				X: math.Floor((p.X-n.OffsetX)*n.scaleFactor + 0.5),
				Y: math.Floor((p.Y-n.OffsetY)*n.scaleFactor + 0.5),
				Z: p.Z,
				M: p.M,
			}
		}
		round = planar.RemoveRepeatedPoints(round)
		if len(round) < 2 {
			collapsed++
			continue
		}
		o = append(o, NewNodedSegmentString(round, ss.Data()))
	}
	if collapsed > 0 && n.Log != nil {
		n.Log.WithFields(logrus.Fields{
			"collapsed": collapsed,
			"scale":     n.scaleFactor,
		}).Debug("noding: dropped segment strings that collapsed to a point")
	}
	return o
}

// NodedSubstrings implements Noder.
func (n *ScaledNoder) NodedSubstrings() ([]SegmentString, error) {
	split, err := n.noder.NodedSubstrings()
	if err != nil {
		return nil, err
	}
	if !n.isScaled {
		return split, nil
	}
	o := make([]SegmentString, len(split))
	for i, ss := range split {
		pts := ss.Coordinates()
		rescaled := make([]planar.Coordinate, len(pts))
		for j, p := range pts {
			p.X = p.X/n.scaleFactor + n.OffsetX
			p.Y = p.Y/n.scaleFactor + n.OffsetY
			rescaled[j] = p
		}
		o[i] = NewNodedSegmentString(rescaled, ss.Data())
	}
	return o, nil
}
