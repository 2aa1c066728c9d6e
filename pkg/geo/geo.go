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

// Package geo contains the coordinate-level primitives shared by the shape
// implementations: longitude/latitude normalization, dateline-aware bounding
// boxes and helpers over go-geom geometries.
//
// Subpackages are available that perform operations using these primitives:
// - geo/dateline unwraps geometries that cross the antimeridian.
// - geo/planar is a planar topology engine computing DE-9IM matrices.
// - geo/de9im holds the intersection matrix type.
// - geo/wkt reads and writes Well Known Text.
package geo

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// ErrInvalidCoordinate is returned when a coordinate is NaN, infinite or
// outside of the bounds of the coordinate system.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CloneGeomT returns a deep copy of t. Only the geometry kinds supported by
// the shape implementations are handled.
func CloneGeomT(t geom.T) (geom.T, error) {
	switch t := t.(type) {
	case *geom.Point:
		return t.Clone(), nil
	case *geom.LineString:
		return t.Clone(), nil
	case *geom.Polygon:
		return t.Clone(), nil
	case *geom.MultiPoint:
		return t.Clone(), nil
	case *geom.MultiLineString:
		return t.Clone(), nil
	case *geom.MultiPolygon:
		return t.Clone(), nil
	default:
		return nil, errors.Newf("geo: unsupported geometry type %T", t)
	}
}

// ShiftX returns a copy of t with dx added to every x coordinate.
func ShiftX(t geom.T, dx float64) (geom.T, error) {
	c, err := CloneGeomT(t)
	if err != nil {
		return nil, err
	}
	flat := c.FlatCoords()
	stride := c.Stride()
	for i := 0; i < len(flat); i += stride {
		flat[i] += dx
	}
	return c, nil
}

// MinMaxX returns the raw (non-normalized) x extent of t. ok is false for
// empty geometries.
func MinMaxX(t geom.T) (minX, maxX float64, ok bool) {
	flat := t.FlatCoords()
	stride := t.Stride()
	if len(flat) < stride || stride == 0 {
		return 0, 0, false
	}
	minX, maxX = flat[0], flat[0]
	for i := stride; i < len(flat); i += stride {
		if flat[i] < minX {
			minX = flat[i]
		}
		if flat[i] > maxX {
			maxX = flat[i]
		}
	}
	return minX, maxX, true
}

// ShapeTypeName returns the WKT keyword for the kind of t.
func ShapeTypeName(t geom.T) string {
	switch t.(type) {
	case *geom.Point:
		return "POINT"
	case *geom.LineString:
		return "LINESTRING"
	case *geom.Polygon:
		return "POLYGON"
	case *geom.MultiPoint:
		return "MULTIPOINT"
	case *geom.MultiLineString:
		return "MULTILINESTRING"
	case *geom.MultiPolygon:
		return "MULTIPOLYGON"
	case *geom.GeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		panic(errors.AssertionFailedf("unknown geom type: %T", t))
	}
}
