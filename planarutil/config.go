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
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/algorithm"
	"github.com/spatialmodel/planar/noding"
	"github.com/spf13/cast"
)

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// geometryCollection is the GeoJSON GeometryCollection layout, which
// the geojson package does not handle itself.
type geometryCollection struct {
	Type       string            `json:"type"`
	Geometries []json.RawMessage `json:"geometries,omitempty"`
}

// readGeometry reads a GeoJSON geometry, or a GeometryCollection of
// geometries, from r.
func readGeometry(r io.Reader) (geom.Geom, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var c geometryCollection
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("planar: reading GeoJSON: %v", err)
	}
	if c.Type != "GeometryCollection" {
		g, err := geojson.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("planar: reading GeoJSON: %v", err)
		}
		return g, nil
	}
	o := make(geom.GeometryCollection, len(c.Geometries))
	for i, raw := range c.Geometries {
		g, err := geojson.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("planar: reading GeoJSON geometry %d: %v", i, err)
		}
		o[i] = g
	}
	return o, nil
}

// readGeometryFiles reads the geometry in each of the given GeoJSON files.
func readGeometryFiles(files []string) ([]geom.Geom, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("planar: no input files specified; set the --input option")
	}
	o := make([]geom.Geom, len(files))
	for i, file := range expandStringSlice(files) {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("planar: opening input file: %v", err)
		}
		g, err := readGeometry(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%v (file %s)", err, file)
		}
		o[i] = g
	}
	return o, nil
}

// writeLines writes lines to w as a GeoJSON GeometryCollection of
// LineStrings.
func writeLines(w io.Writer, lines [][]planar.Coordinate) error {
	c := struct {
		Type       string              `json:"type"`
		Geometries []*geojson.Geometry `json:"geometries"`
	}{
		Type:       "GeometryCollection",
		Geometries: make([]*geojson.Geometry, len(lines)),
	}
	for i, l := range lines {
		g, err := geojson.ToGeoJSON(planar.Points(l))
		if err != nil {
			return err
		}
		c.Geometries[i] = g
	}
	return json.NewEncoder(w).Encode(c)
}

// writeLinesFile writes lines to the named file, or to w if the name is
// empty.
func writeLinesFile(file string, w io.Writer, lines [][]planar.Coordinate) error {
	if file == "" {
		return writeLines(w, lines)
	}
	f, err := os.Create(os.ExpandEnv(file))
	if err != nil {
		return fmt.Errorf("planar: creating output file: %v", err)
	}
	if err := writeLines(f, lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parsePoints parses a list of points. Ordinates may be separated by
// commas, semicolons or spaces and are paired in order, so that "1,2" and
// "1", "2" both give the point (1, 2).
func parsePoints(v interface{}) ([]planar.Coordinate, error) {
	s, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("planar: parsing points: %v", err)
	}
	var ords []float64
	for _, si := range s {
		fields := strings.FieldsFunc(si, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			x, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, fmt.Errorf("planar: parsing point ordinate %q: %v", f, err)
			}
			ords = append(ords, x)
		}
	}
	if len(ords)%2 != 0 {
		return nil, fmt.Errorf("planar: points have an odd number of ordinates (%d)", len(ords))
	}
	o := make([]planar.Coordinate, len(ords)/2)
	for i := range o {
		o[i] = planar.XY(ords[2*i], ords[2*i+1])
	}
	return o, nil
}

// boundaryRule returns the boundary node rule in the configuration.
func boundaryRule(cfg *viper.Viper) (planar.BoundaryNodeRule, error) {
	return planar.BoundaryNodeRuleByName(cfg.GetString("boundary_rule"))
}

// precisionModel returns the fixed precision model in the configuration.
func precisionModel(cfg *viper.Viper) (*planar.PrecisionModel, error) {
	return planar.NewFixedPrecision(cfg.GetFloat64("precision_scale"))
}

// NoderConfig returns the noder specified by the configuration, along with
// the precision model input coordinates must be rounded to before noding,
// which is nil except for snap-rounding.
func NoderConfig(cfg *viper.Viper, log logrus.FieldLogger) (noding.Noder, *planar.PrecisionModel, error) {
	var n noding.Noder
	var pm *planar.PrecisionModel
	switch name := cfg.GetString("noder"); name {
	case "mcindex":
		mc := noding.NewMCIndexNoder(noding.NewIntersectionAdder(&algorithm.LineIntersector{}))
		mc.OverlapTolerance = cfg.GetFloat64("tolerance")
		mc.Log = log
		n = mc
	case "simple":
		n = noding.NewSimpleNoder(noding.NewIntersectionAdder(&algorithm.LineIntersector{}))
	case "snapround":
		var err error
		pm, err = precisionModel(cfg)
		if err != nil {
			return nil, nil, err
		}
		sr := noding.NewSnapRoundingNoder(pm)
		sr.Log = log
		n = sr
	default:
		return nil, nil, fmt.Errorf("planar: invalid noder %q; valid options are mcindex, simple and snapround", name)
	}
	if scale := cfg.GetFloat64("scale"); scale != 0 {
		if scale < 0 {
			return nil, nil, fmt.Errorf("planar: invalid scale %g", scale)
		}
		sn := noding.NewScaledNoder(n, scale)
		sn.Log = log
		n = sn
	}
	return n, pm, nil
}
