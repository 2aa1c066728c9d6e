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
	"github.com/nknize/spatial4j/pkg/spatial"
	"github.com/spf13/cobra"
)

func newRelateCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relate <shape> <shape>",
		Short: "print the relation of a shape to another",
		Long: `
Print the relation of the first shape to the second: CONTAINS, WITHIN,
INTERSECTS or DISJOINT. Either shape may be "-" to relate every line of
stdin to the other one. With --expect, print whether the shapes have the
given relation.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRelate(cmd, args[0], args[1])
		},
	}
	StringFlag(cmd.Flags(), &c.expect, cliflags.Expect, "")
	return cmd
}

func (c *cliContext) runRelate(cmd *cobra.Command, a, b string) error {
	if a == stdinArg && b == stdinArg {
		return clierror.NewError(
			errors.New("only one shape can be read from stdin"),
			exit.CommandLineFlagError(),
		)
	}
	emit := func(rel spatial.SpatialRelation) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), rel)
		return err
	}
	if c.expect != "" {
		want, err := spatial.ParseSpatialRelation(c.expect)
		if err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
		emit = func(rel spatial.SpatialRelation) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rel == want)
			return err
		}
	}
	if b == stdinArg {
		sa, err := c.readShape(a)
		if err != nil {
			return err
		}
		return c.forEachShape(cmd, b, func(sb spatial.Shape) error {
			return emit(c.sc.Relate(sa, sb))
		})
	}
	sb, err := c.readShape(b)
	if err != nil {
		return err
	}
	return c.forEachShape(cmd, a, func(sa spatial.Shape) error {
		return emit(c.sc.Relate(sa, sb))
	})
}

func newDistanceCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <point> <point>",
		Short: "print the distance between two points",
		Long: `
Print the distance between two points. In a geographic context this is the
great circle distance in degrees and kilometers, otherwise the euclidean
distance. With --within-km, print whether the points are at most that far
apart.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed(cliflags.WithinKm.Name) && !c.sc.IsGeo() {
				return clierror.NewError(
					errors.WithHint(
						errors.Newf("--%s requires a geographic context", cliflags.WithinKm.Name),
						"remove --geo=false",
					),
					exit.CommandLineFlagError(),
				)
			}
			var pts [2]spatial.Point
			for i, arg := range args {
				s, err := c.readShape(arg)
				if err != nil {
					return err
				}
				p, ok := s.(spatial.Point)
				if !ok || p.IsEmpty() {
					return errors.Newf("distance requires two points, got %s", abbreviate(arg))
				}
				pts[i] = p
			}
			d := c.sc.Distance(pts[0], pts[1])
			if cmd.Flags().Changed(cliflags.WithinKm.Name) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), d <= spatial.KmToDegrees(c.withinKm))
				return err
			}
			if !c.sc.IsGeo() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), formatFloat(d))
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s degrees, %s km\n",
				formatFloat(d), formatFloat(spatial.DegreesToKm(d)))
			return err
		},
	}
	Float64Flag(cmd.Flags(), &c.withinKm, cliflags.WithinKm, 0)
	return cmd
}
