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


package planarutil

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
	"github.com/spatialmodel/planar/geomgraph"
	"github.com/spatialmodel/planar/noding"
	"gonum.org/v1/gonum/floats"
)

// segmentStrings returns the linework of geoms as noded segment strings.
// The data of each string is the index of the geometry it came from.
// Coordinates are rounded to pm if it is not nil.
func segmentStrings(geoms []geom.Geom, pm *planar.PrecisionModel) ([]noding.SegmentString, error) {
	var o []noding.SegmentString
	for i, g := range geoms {
		lines, err := planar.Linework(g)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			if pm != nil {
				for j, p := range l {
					l[j] = pm.MakePrecise(p)
				}
			}
			l = planar.RemoveRepeatedPoints(l)
			if len(l) < 2 {
				continue
			}
			o = append(o, noding.NewNodedSegmentString(l, i))
		}
	}
	return o, nil
}

// Node nodes the linework of geoms with n and returns the noded
// substrings. Input coordinates are first rounded to pm, if pm is not nil.
// If validate is true, the result is checked to be fully noded.
func Node(geoms []geom.Geom, n noding.Noder, pm *planar.PrecisionModel, validate bool, log logrus.FieldLogger) ([][]planar.Coordinate, error) {
	log = logger(log)
	ss, err := segmentStrings(geoms, pm)
	if err != nil {
		return nil, err
	}
	if err := n.ComputeNodes(ss); err != nil {
		return nil, fmt.Errorf("planar: computing nodes: %v", err)
	}
	split, err := n.NodedSubstrings()
	if err != nil {
		return nil, fmt.Errorf("planar: splitting noded strings: %v", err)
	}
	if validate {
		if err := noding.NewFastNodingValidator(split).CheckValid(); err != nil {
			return nil, fmt.Errorf("planar: noding validation failed: %v", err)
		}
	}
	o := make([][]planar.Coordinate, len(split))
	lengths := make([]float64, len(split))
	for i, s := range split {
		o[i] = s.Coordinates()
		lengths[i] = length(o[i])
	}
	log.WithFields(logrus.Fields{
		"input_strings":  len(ss),
		"output_strings": len(split),
		"length":         floats.Sum(lengths),
	}).Info("planar: noded linework")
	return o, nil
}

func length(pts []planar.Coordinate) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i-1].Distance(pts[i])
	}
	return l
}

// Validate returns every intersection showing that the linework of g is
// not fully noded. The result is empty for correctly noded linework.
func Validate(g geom.Geom) ([]planar.Coordinate, error) {
	ss, err := segmentStrings([]geom.Geom{g}, nil)
	if err != nil {
		return nil, err
	}
	return noding.ComputeIntersections(ss), nil
}

// Locate returns the location of each of pts relative to g.
func Locate(g geom.Geom, pts []planar.Coordinate, rule planar.BoundaryNodeRule) ([]planar.Location, error) {
	gg, err := geomgraph.NewGeometryGraph(0, g, rule)
	if err != nil {
		return nil, err
	}
	o := make([]planar.Location, len(pts))
	for i, p := range pts {
		o[i] = gg.Locate(p)
	}
	return o, nil
}

// GraphSummary describes the topology graph of one or two geometries.
type GraphSummary struct {
	Nodes, Edges int

	// BoundaryPoints are the boundary nodes of each input geometry.
	BoundaryPoints [][]planar.Coordinate

	// ProperIntersection is true if the linework of the inputs crosses at
	// a point which is not a vertex of either.
	ProperIntersection bool

	// IntersectionMatrix is the DE-9IM matrix of the first geometry
	// against the second. It is only computed for two inputs.
	IntersectionMatrix *planar.IntersectionMatrix
}

// Graph builds the topology graph of geoms, which must hold one or two
// geometries. For a single geometry the graph holds its self-noded
// edges; for two, the fully labelled graph of both.
func Graph(geoms []geom.Geom, rule planar.BoundaryNodeRule, pm *planar.PrecisionModel, log logrus.FieldLogger) (*GraphSummary, error) {
	log = logger(log)
	switch len(geoms) {
	case 1:
		gg, err := geomgraph.NewGeometryGraph(0, geoms[0], rule)
		if err != nil {
			return nil, err
		}
		gg.Log = log
		si := gg.ComputeSelfNodes(&algorithm.LineIntersector{PrecisionModel: pm}, true)
		split := gg.ComputeSplitEdges(nil)
		s := &GraphSummary{
			Nodes:              gg.NodeMap().Len(),
			Edges:              len(split),
			BoundaryPoints:     [][]planar.Coordinate{gg.BoundaryPoints()},
			ProperIntersection: si.HasProperInteriorIntersection(),
		}
		log.WithFields(logrus.Fields{
			"nodes":           s.Nodes,
			"edges":           s.Edges,
			"boundary_points": len(s.BoundaryPoints[0]),
			"intersections":   si.NumIntersections,
		}).Info("planar: built geometry graph")
		return s, nil
	case 2:
		t, err := geomgraph.NewTopology(geoms[0], geoms[1], rule, pm)
		if err != nil {
			return nil, err
		}
		t.Log = log
		if err := t.Build(); err != nil {
			return nil, err
		}
		s := &GraphSummary{
			Nodes: len(t.Nodes()),
			Edges: len(t.Edges()),
			BoundaryPoints: [][]planar.Coordinate{
				t.Args[0].BoundaryPoints(),
				t.Args[1].BoundaryPoints(),
			},
			IntersectionMatrix: t.IntersectionMatrix(),
		}
		if s.ProperIntersection, err = properIntersection(geoms[0], geoms[1], rule, pm); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"nodes":  s.Nodes,
			"edges":  s.Edges,
			"matrix": s.IntersectionMatrix.String(),
		}).Info("planar: built topology")
		return s, nil
	default:
		return nil, fmt.Errorf("planar: graph requires one or two input geometries but %d were given", len(geoms))
	}
}

// properIntersection returns whether the linework of g0 and g1 crosses at
// a point interior to segments of both.
func properIntersection(g0, g1 geom.Geom, rule planar.BoundaryNodeRule, pm *planar.PrecisionModel) (bool, error) {
	gg0, err := geomgraph.NewGeometryGraph(0, g0, rule)
	if err != nil {
		return false, err
	}
	gg1, err := geomgraph.NewGeometryGraph(1, g1, rule)
	if err != nil {
		return false, err
	}
	si := gg0.ComputeEdgeIntersections(gg1, &algorithm.LineIntersector{PrecisionModel: pm}, true)
	return si.HasProperInteriorIntersection(), nil
}

func logger(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}
