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


// Package planarutil holds the command-line interface to the planar
// topology engine and the configuration it reads.
package planarutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log_level",
			usage: `
              log_level specifies the level of log messages to print:
              debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input specifies the GeoJSON files to read geometries from.
              Each file holds one geometry or a GeometryCollection.
              Environment variables in the paths are expanded.`,
			shorthand:  "i",
			defaultVal: []string{},
			flagsets: []*pflag.FlagSet{nodeCmd.Flags(), graphCmd.Flags(),
				locateCmd.Flags(), validateCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the GeoJSON file to write the noded linework to.
              If it is empty, the linework is written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags()},
		},
		{
			name: "noder",
			usage: `
              noder specifies the noding algorithm: mcindex (monotone chain
              index), simple (all pairs of segments) or snapround (snap
              rounding to the grid given by precision_scale).`,
			defaultVal: "mcindex",
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags()},
		},
		{
			name: "scale",
			usage: `
              scale, if not zero, multiplies coordinates by the given factor
              and rounds them to integers before noding. Noded coordinates
              are scaled back afterwards.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags()},
		},
		{
			name: "tolerance",
			usage: `
              tolerance expands segment envelopes when searching for
              intersecting segments with the mcindex noder.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags()},
		},
		{
			name: "validate",
			usage: `
              validate specifies whether to check that the noded linework
              is fully noded.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags()},
		},
		{
			name: "precision_scale",
			usage: `
              precision_scale is the number of grid cells per coordinate unit
              used by the snapround noder and for rounding computed
              intersections in graph.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{nodeCmd.Flags(), graphCmd.Flags()},
		},
		{
			name: "fixed_precision",
			usage: `
              fixed_precision specifies whether graph rounds computed
              intersection points to the grid given by precision_scale.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{graphCmd.Flags()},
		},
		{
			name: "boundary_rule",
			usage: `
              boundary_rule specifies which line endpoints are on the boundary:
              mod2 (endpoints shared by an odd number of lines), endpoint
              (all endpoints), multivalent (endpoints shared by more than one
              line) or monovalent (endpoints of exactly one line).`,
			defaultVal: "mod2",
			flagsets:   []*pflag.FlagSet{graphCmd.Flags(), locateCmd.Flags()},
		},
		{
			name: "points",
			usage: `
              points specifies the points to locate, as x,y pairs.`,
			shorthand:  "p",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{locateCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PLANAR")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // The flag only needs to be created once.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(nodeCmd)
	Root.AddCommand(graphCmd)
	Root.AddCommand(locateCmd)
	Root.AddCommand(validateCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("planar: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("planar: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "planar",
	Short: "A planar topology engine.",
	Long: `planar computes the topology of planar geometries: it nodes linework,
builds labelled topology graphs, and classifies points against geometries.
Use the subcommands specified below to access this functionality.

Geometries are read from GeoJSON files holding a Point, LineString, Polygon
or a GeometryCollection of these.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PLANAR_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of planar.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("planar v%s\n", planar.Version)
	},
	DisableAutoGenTag: true,
}

// nodeCmd nodes the linework of the input geometries.
var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Node linework.",
	Long: `node reads the linework of the input geometries, splits it at every
intersection, and writes the noded linework as a GeoJSON GeometryCollection
of LineStrings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geoms, err := readGeometryFiles(Cfg.GetStringSlice("input"))
		if err != nil {
			return err
		}
		log := logrus.StandardLogger()
		n, pm, err := NoderConfig(Cfg, log)
		if err != nil {
			return err
		}
		lines, err := Node(geoms, n, pm, Cfg.GetBool("validate"), log)
		if err != nil {
			return err
		}
		return writeLinesFile(Cfg.GetString("output"), cmd.OutOrStdout(), lines)
	},
	DisableAutoGenTag: true,
}

// graphCmd builds the topology graph of one or two input geometries.
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build a topology graph.",
	Long: `graph builds the topology graph of one or two input geometries and
prints a summary of it. For one geometry the graph holds its self-noded
edges. For two geometries it is fully labelled, and their DE-9IM
intersection matrix is printed as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geoms, err := readGeometryFiles(Cfg.GetStringSlice("input"))
		if err != nil {
			return err
		}
		rule, err := boundaryRule(Cfg)
		if err != nil {
			return err
		}
		var pm *planar.PrecisionModel
		if Cfg.GetBool("fixed_precision") {
			if pm, err = precisionModel(Cfg); err != nil {
				return err
			}
		}
		s, err := Graph(geoms, rule, pm, logrus.StandardLogger())
		if err != nil {
			return err
		}
		cmd.Printf("nodes: %d\n", s.Nodes)
		cmd.Printf("edges: %d\n", s.Edges)
		for i, b := range s.BoundaryPoints {
			cmd.Printf("boundary %d: %v\n", i, b)
		}
		cmd.Printf("proper intersection: %v\n", s.ProperIntersection)
		if s.IntersectionMatrix != nil {
			cmd.Printf("matrix: %s\n", s.IntersectionMatrix)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// locateCmd locates points against the first input geometry.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate points.",
	Long: `locate prints the topological location (Interior, Boundary or Exterior)
of each of the given points relative to the first input geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geoms, err := readGeometryFiles(Cfg.GetStringSlice("input"))
		if err != nil {
			return err
		}
		pts, err := parsePoints(Cfg.Get("points"))
		if err != nil {
			return err
		}
		rule, err := boundaryRule(Cfg)
		if err != nil {
			return err
		}
		locs, err := Locate(geoms[0], pts, rule)
		if err != nil {
			return err
		}
		for i, p := range pts {
			cmd.Printf("%v %v\n", p, locs[i])
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// validateCmd checks that the linework of each input is fully noded.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that linework is noded.",
	Long: `validate checks that the linework of each input geometry is fully
noded, that is, that no two segments intersect except at their endpoints.
Every intersection that violates this is printed, and an error is returned
if there are any.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := Cfg.GetStringSlice("input")
		geoms, err := readGeometryFiles(files)
		if err != nil {
			return err
		}
		var invalid int
		for i, g := range geoms {
			pts, err := Validate(g)
			if err != nil {
				return err
			}
			if len(pts) == 0 {
				cmd.Printf("%s: noded\n", files[i])
				continue
			}
			invalid++
			for _, p := range pts {
				cmd.Printf("%s: intersection at %v\n", files[i], p)
			}
		}
		if invalid > 0 {
			return fmt.Errorf("planar: %d of %d inputs are not fully noded", invalid, len(geoms))
		}
		return nil
	},
	DisableAutoGenTag: true,
}
