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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/clierror"
	"github.com/nknize/spatial4j/pkg/cli/cliflags"
	"github.com/nknize/spatial4j/pkg/cli/exit"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/wkt"
	"github.com/nknize/spatial4j/pkg/spatial"
	"github.com/spf13/cobra"
)

// Output formats of the encode command.
const (
	formatWKT     = "wkt"
	formatGeoJSON = "geojson"
	formatWKBHex  = "wkbhex"
	formatGeoHash = "geohash"
)

func newEncodeCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <shape>",
		Short: "encode a shape in another format",
		Long: `
Encode a shape as WKT, GeoJSON, hex encoded WKB or the GeoHash of the
center of its bounding box. WKT output has its longitudes normalized
while GeoJSON and WKB keep the unwrapped coordinates.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encode, err := c.encoder()
			if err != nil {
				return err
			}
			return c.forEachShape(cmd, args[0], func(s spatial.Shape) error {
				text, err := encode(s)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			})
		},
	}
	f := cmd.Flags()
	StringFlag(f, &c.format, cliflags.Format, formatWKT)
	IntFlag(f, &c.precision, cliflags.Precision, -1)
	StringFlag(f, &c.byteOrder, cliflags.ByteOrder, "ndr")
	BoolFlag(f, &c.includeBBox, cliflags.IncludeBBox, false)
	return cmd
}

// encoder returns the function encoding shapes in the selected format.
func (c *cliContext) encoder() (func(spatial.Shape) (string, error), error) {
	switch strings.ToLower(c.format) {
	case formatWKT:
		return c.encodeWKT, nil
	case formatGeoJSON:
		return c.encodeGeoJSON, nil
	case formatWKBHex:
		switch strings.ToLower(c.byteOrder) {
		case "ndr", "xdr":
		default:
			return nil, clierror.NewError(
				errors.Newf("unknown byte order: %q", c.byteOrder),
				exit.CommandLineFlagError(),
			)
		}
		return c.encodeWKBHex, nil
	case formatGeoHash:
		return c.encodeGeoHash, nil
	default:
		return nil, clierror.NewError(
			errors.WithHintf(
				errors.Newf("unknown format: %q", c.format),
				"supported formats are %s, %s, %s and %s",
				formatWKT, formatGeoJSON, formatWKBHex, formatGeoHash,
			),
			exit.CommandLineFlagError(),
		)
	}
}

func (c *cliContext) encodeWKT(s spatial.Shape) (string, error) {
	if c.precision < 0 {
		return c.sc.FormatShape(s)
	}
	// Rectangles keep the ENVELOPE syntax, which has no precision.
	if _, ok := s.(spatial.Rectangle); ok {
		return c.sc.FormatShape(s)
	}
	t, err := spatial.ToGeomT(s)
	if err != nil {
		return "", err
	}
	if c.sc.IsGeo() {
		if err := normalizeLongitudes(t.FlatCoords(), t.Stride()); err != nil {
			return "", err
		}
	}
	return wkt.Marshal(t, c.precision)
}

func normalizeLongitudes(flat []float64, stride int) error {
	for i := 0; i < len(flat); i += stride {
		x, err := geo.NormalizeLongitude(flat[i])
		if err != nil {
			return err
		}
		flat[i] = x
	}
	return nil
}

func (c *cliContext) encodeGeoJSON(s spatial.Shape) (string, error) {
	t, err := spatial.ToGeomT(s)
	if err != nil {
		return "", err
	}
	digits := c.precision
	if digits < 0 {
		digits = geo.DefaultGeoJSONDecimalDigits
	}
	var flag geo.GeoJSONFlag
	if c.includeBBox {
		flag |= geo.GeoJSONFlagIncludeBBox
	}
	b, err := geo.GeomTToGeoJSON(t, digits, flag)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *cliContext) encodeWKBHex(s spatial.Shape) (string, error) {
	t, err := spatial.ToGeomT(s)
	if err != nil {
		return "", err
	}
	return geo.GeomTToWKBHex(t, geo.StringToByteOrder(c.byteOrder))
}

func (c *cliContext) encodeGeoHash(s spatial.Shape) (string, error) {
	if !c.sc.IsGeo() {
		return "", clierror.NewError(
			errors.New("geohash requires a geographic context"),
			exit.CommandLineFlagError(),
		)
	}
	p := c.precision
	if p < 0 {
		p = geo.GeoHashAutoPrecision
	}
	return geo.BoundingBoxToGeoHash(s.BoundingBox(), p)
}
