// Copyright 2025 The Spatial4j Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/clierror"
	"github.com/nknize/spatial4j/pkg/cli/cliflags"
	"github.com/nknize/spatial4j/pkg/cli/exit"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/wkt"
	"github.com/nknize/spatial4j/pkg/spatial"
	"github.com/spf13/cobra"
)

func newBBoxCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bbox <shape>",
		Short: "print the bounding box of a shape",
		Long: `
Print the bounding box of a shape as ENVELOPE(minX, maxX, maxY, minY). In
a geographic context a box crossing the dateline has minX > maxX.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.forEachShape(cmd, args[0], func(s spatial.Shape) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s.BoundingBox())
				return err
			})
		},
	}
}

const (
	unitSquareDegrees = "deg2"
	unitSquareKm      = "km2"
)

func newAreaCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area <shape>",
		Short: "print the area of a shape",
		Long: `
Print the planar area of a shape, or with --geodesic its approximate area
on the sphere.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArea(cmd, args[0])
		},
	}
	BoolFlag(cmd.Flags(), &c.geodesic, cliflags.Geodesic, false)
	StringFlag(cmd.Flags(), &c.areaUnit, cliflags.AreaUnit, unitSquareDegrees)
	return cmd
}

func (c *cliContext) runArea(cmd *cobra.Command, arg string) error {
	switch {
	case c.areaUnit != unitSquareDegrees && c.areaUnit != unitSquareKm:
		return clierror.NewError(
			errors.Newf("unknown area unit: %q", c.areaUnit),
			exit.CommandLineFlagError(),
		)
	case c.geodesic && !c.sc.IsGeo():
		return clierror.NewError(
			errors.WithHint(
				errors.New("geodesic areas require a geographic context"),
				"remove --geo=false",
			),
			exit.CommandLineFlagError(),
		)
	case c.areaUnit == unitSquareKm && !c.geodesic:
		return clierror.NewError(
			errors.WithHint(
				errors.Newf("unit %s requires --geodesic", unitSquareKm),
				"planar areas are in squared coordinate units",
			),
			exit.CommandLineFlagError(),
		)
	}

	var sc *spatial.Context
	if c.geodesic {
		sc = c.sc
	}
	return c.forEachShape(cmd, arg, func(s spatial.Shape) error {
		a := spatial.Area(s, sc)
		if c.areaUnit == unitSquareKm {
			a = spatial.SquareDegreesToSquareKm(a)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formatFloat(a))
		return err
	})
}

func newUnwrapCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap <shape>",
		Short: "print a shape with its dateline crossings unwrapped",
		Long: `
Print the number of dateline crossings of a shape and its coordinates as
stored: geometries crossing the dateline have longitudes beyond 180 and
rectangles are written as the polygon extending east of minX.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.forEachShape(cmd, args[0], func(s spatial.Shape) error {
				crossings := 0
				if g, ok := s.(*spatial.Geometry); ok {
					crossings = g.Crossings()
				}
				t, err := spatial.ToGeomT(s)
				if err != nil {
					return err
				}
				text, err := wkt.Marshal(t, wkt.DefaultMaxDecimalDigits)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "crossings=%d %s\n", crossings, text)
				return err
			})
		},
	}
}

func newValidateCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <shape>",
		Short: "check that a shape is valid",
		Long: `
Check that a shape is valid and print "valid". Otherwise the reason is
printed and the command exits with code 125.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.forEachShape(cmd, args[0], func(s spatial.Shape) error {
				if g, ok := s.(*spatial.Geometry); ok && !g.IsValid() {
					return errors.Wrapf(spatial.ErrInvalidShape, "%s", g.InvalidReason())
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return err
			})
			if errors.Is(err, spatial.ErrInvalidShape) {
				return clierror.NewError(err, exit.ValidationFailed())
			}
			return err
		},
	}
}

func newNormalizeCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <longitude> [<latitude>]",
		Short: "normalize a longitude and latitude",
		Long: `
Print a longitude normalized to (-180, 180], with the dateline written as
180, and a latitude normalized to [-90, 90]. Latitudes beyond a pole are
reflected back towards the equator.

Negative values must follow "--", as in "normalize -- -190 95".
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloatArg("longitude", args[0])
			if err != nil {
				return err
			}
			if x, err = geo.NormalizeLongitude(x); err != nil {
				return err
			}
			if len(args) == 1 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), formatFloat(x))
				return err
			}
			y, err := parseFloatArg("latitude", args[1])
			if err != nil {
				return err
			}
			if y, err = geo.NormalizeLatitude(y); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatFloat(x), formatFloat(y))
			return err
		},
	}
}
