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

package spatial

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/nknize/spatial4j/pkg/geo/wkt"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/twpayne/go-geom"
)

// Context makes shapes for one coordinate system and relates them.
type Context struct {
	cfg    Config
	logCtx context.Context
	// invalidEvery rate limits the warnings about invalid geometries.
	invalidEvery *log.EveryN
}

// GEO is the default geographic context. Out of range coordinates are
// rejected and geometries crossing the dateline are unwrapped.
var GEO = NewContext(DefaultConfig())

// CARTESIAN is a planar context with unbounded coordinates.
var CARTESIAN = NewContext(Config{Geo: false, DatelineRule: DatelineRuleNone})

// NewContext returns a context for cfg. The dateline rule of a planar
// context is ignored.
func NewContext(cfg Config) *Context {
	if !cfg.Geo {
		cfg.DatelineRule = DatelineRuleNone
	}
	name := "cartesian"
	if cfg.Geo {
		name = "geo"
	}
	return &Context{
		cfg:          cfg,
		logCtx:       logtags.AddTag(context.Background(), "sctx", name),
		invalidEvery: log.Every(time.Second),
	}
}

// Config returns the configuration of the context.
func (sc *Context) Config() Config { return sc.cfg }

// LogContext returns a context carrying the log tags of sc.
func (sc *Context) LogContext() context.Context { return sc.logCtx }

// IsGeo returns whether the context is geographic. A nil context is planar.
func (sc *Context) IsGeo() bool { return sc != nil && sc.cfg.Geo }

// WorldBounds returns the extent of the coordinate system.
func (sc *Context) WorldBounds() geopb.BoundingBox {
	if sc.IsGeo() {
		return geopb.BoundingBox{
			MinX: -geo.WorldBoundsX, MaxX: geo.WorldBoundsX,
			MinY: -geo.WorldBoundsY, MaxY: geo.WorldBoundsY,
		}
	}
	return geopb.BoundingBox{
		MinX: -math.MaxFloat64, MaxX: math.MaxFloat64,
		MinY: -math.MaxFloat64, MaxY: math.MaxFloat64,
	}
}

// normX validates a longitude and returns it in (-180, 180]. Out of range
// values are normalized only if the context allows it.
func (sc *Context) normX(x float64) (float64, error) {
	if !sc.IsGeo() {
		return x, geo.CheckCoordinate(x, 0)
	}
	if math.Abs(x) > geo.WorldBoundsX && !sc.cfg.NormWrapLongitude {
		return 0, errors.Wrapf(geo.ErrInvalidCoordinate, "longitude %v is out of range [-180, 180]", x)
	}
	return geo.NormalizeLongitude(x)
}

// normY validates a latitude.
func (sc *Context) normY(y float64) (float64, error) {
	if !sc.IsGeo() {
		return y, geo.CheckCoordinate(0, y)
	}
	if math.Abs(y) > geo.WorldBoundsY && !sc.cfg.NormWrapLongitude {
		return 0, errors.Wrapf(geo.ErrInvalidCoordinate, "latitude %v is out of range [-90, 90]", y)
	}
	return geo.NormalizeLatitude(y)
}

// MakePoint returns the point (x, y). In geographic contexts the dateline is
// always represented as +180.
func (sc *Context) MakePoint(x, y float64) (Point, error) {
	x, err := sc.normX(x)
	if err != nil {
		return Point{}, err
	}
	y, err = sc.normY(y)
	if err != nil {
		return Point{}, err
	}
	return Point{x: x, y: y, sc: sc}, nil
}

// MakeEmptyPoint returns the empty point.
func (sc *Context) MakeEmptyPoint() Point {
	return Point{empty: true, sc: sc}
}

// MakeRectangle returns the rectangle with the given edges. In geographic
// contexts minX > maxX makes a rectangle crossing the dateline and a width
// of 360 or more makes the whole world.
func (sc *Context) MakeRectangle(minX, maxX, minY, maxY float64) (Rectangle, error) {
	if err := geo.CheckCoordinate(minX, minY); err != nil {
		return Rectangle{}, err
	}
	if err := geo.CheckCoordinate(maxX, maxY); err != nil {
		return Rectangle{}, err
	}
	if minY > maxY {
		return Rectangle{}, errors.Wrapf(ErrInvalidShape, "maxY %v must be >= minY %v", maxY, minY)
	}
	if !sc.IsGeo() {
		if minX > maxX {
			return Rectangle{}, errors.Wrapf(ErrInvalidShape, "maxX %v must be >= minX %v", maxX, minX)
		}
		return Rectangle{bbox: geopb.BoundingBox{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}, sc: sc}, nil
	}

	if minY < -geo.WorldBoundsY || maxY > geo.WorldBoundsY {
		return Rectangle{}, errors.Wrapf(geo.ErrInvalidCoordinate,
			"latitudes %v, %v are out of range [-90, 90]", minY, maxY)
	}
	bbox := geopb.BoundingBox{MinY: minY, MaxY: maxY}
	if maxX-minX >= 2*geo.WorldBoundsX {
		bbox.MinX, bbox.MaxX = -geo.WorldBoundsX, geo.WorldBoundsX
		return Rectangle{bbox: bbox, sc: sc}, nil
	}
	var err error
	if bbox.MinX, err = sc.normX(minX); err != nil {
		return Rectangle{}, err
	}
	if bbox.MaxX, err = sc.normX(maxX); err != nil {
		return Rectangle{}, err
	}
	// Canonical dateline form: a rectangle that only touches the dateline
	// from the east starts at -180.
	if bbox.MinX == geo.WorldBoundsX && bbox.MaxX != geo.WorldBoundsX {
		bbox.MinX = -geo.WorldBoundsX
	}
	bbox.CrossesDateLine = bbox.MinX > bbox.MaxX
	return Rectangle{bbox: bbox, sc: sc}, nil
}

// MakeShape returns the shape for t. t is not retained: the shape owns a
// normalized copy of it, unwrapped across the dateline according to the
// dateline rule. Points become Points; every other supported kind becomes a
// *Geometry.
func (sc *Context) MakeShape(t geom.T) (Shape, error) {
	if p, ok := t.(*geom.Point); ok {
		if p.Empty() {
			return sc.MakeEmptyPoint(), nil
		}
		return sc.MakePoint(p.X(), p.Y())
	}
	return sc.makeGeometry(t)
}

// ReadShapeFromWKT parses s into a shape. Besides the WKT geometry kinds,
// "ENVELOPE(minX, maxX, maxY, minY)" makes a Rectangle.
func (sc *Context) ReadShapeFromWKT(s string) (Shape, error) {
	if wkt.IsEnvelope(s) {
		env, err := wkt.UnmarshalEnvelope(s)
		if err != nil {
			return nil, err
		}
		return sc.MakeRectangle(env.MinX, env.MaxX, env.MinY, env.MaxY)
	}
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, err
	}
	return sc.MakeShape(t)
}

// FormatShape returns s as text that ReadShapeFromWKT accepts. Rectangles
// use the ENVELOPE syntax. Unwrapped geometries are written with their
// longitudes normalized back into [-180, 180].
func (sc *Context) FormatShape(s Shape) (string, error) {
	switch s := s.(type) {
	case Point:
		return wkt.Marshal(s.planarGeom(), wkt.DefaultMaxDecimalDigits)
	case Rectangle:
		return s.String(), nil
	case *Geometry:
		t := s.Geom()
		if sc.IsGeo() {
			flat := t.FlatCoords()
			for i := 0; i < len(flat); i += t.Stride() {
				x, err := geo.NormalizeLongitude(flat[i])
				if err != nil {
					return "", err
				}
				flat[i] = x
			}
		}
		return wkt.Marshal(t, wkt.DefaultMaxDecimalDigits)
	default:
		return "", errors.AssertionFailedf("unknown shape type %T", s)
	}
}
