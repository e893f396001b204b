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
	"os"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/noding"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []planar.Coordinate
		err  bool
	}{
		{
			name: "pairs",
			in:   []string{"1,2", "3.5, -4"},
			want: []planar.Coordinate{planar.XY(1, 2), planar.XY(3.5, -4)},
		},
		{
			name: "split by flag parsing",
			in:   []string{"1", "2", "3", "4"},
			want: []planar.Coordinate{planar.XY(1, 2), planar.XY(3, 4)},
		},
		{
			name: "environment string",
			in:   "1,2 3,4",
			want: []planar.Coordinate{planar.XY(1, 2), planar.XY(3, 4)},
		},
		{
			name: "odd",
			in:   []string{"1,2", "3"},
			err:  true,
		},
		{
			name: "not a number",
			in:   []string{"a,2"},
			err:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			have, err := parsePoints(tt.in)
			if tt.err {
				if err == nil {
					t.Errorf("expected an error, have %v", have)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(have) != len(tt.want) {
				t.Fatalf("have %v, want %v", have, tt.want)
			}
			for i := range have {
				if !have[i].Equals2D(tt.want[i]) {
					t.Errorf("point %d: have %v, want %v", i, have[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadGeometry(t *testing.T) {
	t.Run("polygon", func(t *testing.T) {
		g, err := readGeometry(strings.NewReader(`{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}`))
		if err != nil {
			t.Fatal(err)
		}
		p, ok := g.(geom.Polygon)
		if !ok || len(p) != 1 || len(p[0]) != 4 {
			t.Errorf("have %#v", g)
		}
	})
	t.Run("collection", func(t *testing.T) {
		g, err := readGeometry(strings.NewReader(`{"type": "GeometryCollection", "geometries": [
			{"type": "Point", "coordinates": [1, 2]},
			{"type": "LineString", "coordinates": [[0, 0], [1, 1]]}]}`))
		if err != nil {
			t.Fatal(err)
		}
		gc, ok := g.(geom.GeometryCollection)
		if !ok || len(gc) != 2 {
			t.Fatalf("have %#v", g)
		}
		if p, ok := gc[0].(geom.Point); !ok || p.X != 1 || p.Y != 2 {
			t.Errorf("first geometry: %#v", gc[0])
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := readGeometry(strings.NewReader(`{"type": "Polygon", "coordinates": [`)); err == nil {
			t.Error("expected an error for truncated input")
		}
	})
	t.Run("unsupported", func(t *testing.T) {
		if _, err := readGeometry(strings.NewReader(`{"type": "Circle", "coordinates": [0, 0]}`)); err == nil {
			t.Error("expected an error for an unsupported type")
		}
	})
}

func TestReadGeometryFilesMissing(t *testing.T) {
	if _, err := readGeometryFiles(nil); err == nil {
		t.Error("expected an error for no input files")
	}
	if _, err := readGeometryFiles([]string{"testdata/missing.geojson"}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestNoderConfig(t *testing.T) {
	tests := []struct {
		noder    string
		scale    float64
		snapping bool
		err      bool
	}{
		{noder: "mcindex"},
		{noder: "simple"},
		{noder: "snapround", snapping: true},
		{noder: "mcindex", scale: 100},
		{noder: "mcindex", scale: -1, err: true},
		{noder: "sweepline", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.noder, func(t *testing.T) {
			cfg := viper.New()
			cfg.Set("noder", tt.noder)
			cfg.Set("scale", tt.scale)
			cfg.Set("precision_scale", 10.0)
			n, pm, err := NoderConfig(cfg, nil)
			if tt.err {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if (pm != nil) != tt.snapping {
				t.Errorf("precision model: %v", pm)
			}
			if _, ok := n.(*noding.ScaledNoder); ok != (tt.scale != 0) {
				t.Errorf("noder is a %T", n)
			}
		})
	}
}

func TestSetConfig(t *testing.T) {
	old := Cfg
	Cfg = viper.New()
	defer func() { Cfg = old }()
	level := logrus.GetLevel()
	defer logrus.SetLevel(level)

	os.Setenv("PLANAR_TESTDATA", "testdata")
	defer os.Unsetenv("PLANAR_TESTDATA")

	Cfg.Set("config", "testdata/config.toml")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	if logrus.GetLevel() != logrus.WarnLevel {
		t.Errorf("log level: %v", logrus.GetLevel())
	}
	geoms, err := readGeometryFiles(Cfg.GetStringSlice("input"))
	if err != nil {
		t.Fatal(err)
	}
	logger, hook := test.NewNullLogger()
	n, pm, err := NoderConfig(Cfg, logger)
	if err != nil {
		t.Fatal(err)
	}
	if pm == nil || pm.Scale != 1 {
		t.Fatalf("precision model: %v", pm)
	}
	lines, err := Node(geoms, n, pm, Cfg.GetBool("validate"), logger)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Errorf("have %d lines, want 4", len(lines))
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Data["output_strings"] != 4 {
		t.Errorf("last log entry: %+v", entry)
	}
}

func TestSetConfigMissingFile(t *testing.T) {
	old := Cfg
	Cfg = viper.New()
	defer func() { Cfg = old }()
	Cfg.Set("config", "testdata/missing.toml")
	if err := setConfig(); err == nil {
		t.Error("expected an error for a missing configuration file")
	}
}
