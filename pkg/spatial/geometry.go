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
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/dateline"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/nknize/spatial4j/pkg/geo/planar"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/twpayne/go-geom"
)

// Geometry is a shape backed by a go-geom geometry: a line, a polygon or a
// multi geometry. It owns a private copy of the coordinates, unwrapped
// across the dateline in geographic contexts.
type Geometry struct {
	g         geom.T
	sc        *Context
	crossings int
	valid     bool
	reason    string

	// Lazily computed. Concurrent computations store identical values.
	bbox atomic.Pointer[geopb.BoundingBox]
	area atomic.Pointer[float64]
}

// makeGeometry copies and normalizes t.
func (sc *Context) makeGeometry(t geom.T) (*Geometry, error) {
	c, err := geo.CloneGeomT(t)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidShape)
	}
	flat := c.FlatCoords()
	stride := c.Stride()
	for i := 0; i+1 < len(flat); i += stride {
		if flat[i], err = sc.normX(flat[i]); err != nil {
			return nil, err
		}
		if flat[i+1], err = sc.normY(flat[i+1]); err != nil {
			return nil, err
		}
	}

	g := &Geometry{g: c, sc: sc}
	ctx := logtags.AddTag(sc.logCtx, "shape", geo.ShapeTypeName(c))
	if sc.IsGeo() && sc.cfg.DatelineRule == DatelineRuleWidth180 {
		change, err := dateline.Unwrap(c)
		switch {
		case errors.Is(err, dateline.ErrUnwrapRingNotClosed):
			// Left as given, e.g. a ring around a pole.
			log.VEventf(ctx, 1, "not unwrapped: %v", err)
		case err != nil:
			return nil, errors.Mark(err, ErrInvalidShape)
		}
		g.crossings = change.Crossings
		if change.Changed() {
			log.VEventf(ctx, 2, "unwrapped %d dateline crossings", change.Crossings)
			g.invalidate()
		}
	}

	g.valid, g.reason = planar.IsValid(c)
	if !g.valid {
		if sc.cfg.ValidationRule == ValidationRuleError {
			return nil, errors.Wrapf(ErrInvalidShape, "%s", g.reason)
		}
		if sc.invalidEvery.ShouldLog() {
			log.Warningf(ctx, "accepting invalid geometry: %s", g.reason)
		}
	}
	return g, nil
}

// invalidate resets everything derived from the coordinates.
func (g *Geometry) invalidate() {
	g.bbox.Store(nil)
	g.area.Store(nil)
}

// Geom returns a copy of the backing geometry. Its x coordinates may extend
// beyond 180 if the geometry was unwrapped.
func (g *Geometry) Geom() geom.T {
	c, err := geo.CloneGeomT(g.g)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "cloning %T", g.g))
	}
	return c
}

// Crossings returns the number of dateline crossings unwrapped at
// construction.
func (g *Geometry) Crossings() int { return g.crossings }

// IsValid returns whether the geometry is topologically valid.
func (g *Geometry) IsValid() bool { return g.valid }

// InvalidReason describes why the geometry is not valid.
func (g *Geometry) InvalidReason() string { return g.reason }

// BoundingBox implements the Shape interface.
func (g *Geometry) BoundingBox() geopb.BoundingBox {
	if b := g.bbox.Load(); b != nil {
		return *b
	}
	var b geopb.BoundingBox
	if g.sc.IsGeo() {
		var err error
		if b, err = geo.BoundingBoxFromGeomT(g.g); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "coordinates were checked at construction"))
		}
	} else {
		b = geo.NaiveBoundingBox(g.g)
	}
	g.bbox.Store(&b)
	return b
}

// IsEmpty implements the Shape interface.
func (g *Geometry) IsEmpty() bool { return g.g.Empty() }

// Area implements the Shape interface. In geographic contexts the planar
// area is scaled by the ratio of the spherical to planar area of the
// bounding box, which is an approximation.
func (g *Geometry) Area(sc *Context) float64 {
	bbox := g.BoundingBox()
	a := g.planarArea()
	if !sc.IsGeo() || a == 0 {
		return a
	}
	return geodesicBoxArea(bbox) * (a / bbox.Area())
}

func (g *Geometry) planarArea() float64 {
	if a := g.area.Load(); a != nil {
		return *a
	}
	a := planar.Area(g.g)
	g.area.Store(&a)
	return a
}

// Center implements the Shape interface.
func (g *Geometry) Center() Point {
	if g.IsEmpty() {
		return Point{empty: true, sc: g.sc}
	}
	return Rectangle{bbox: g.BoundingBox(), sc: g.sc}.Center()
}

// Context implements the Shape interface.
func (g *Geometry) Context() *Context { return g.sc }

func (g *Geometry) planarGeom() geom.T { return g.g }

func (g *Geometry) String() string {
	s, err := g.sc.FormatShape(g)
	if err != nil {
		return geo.ShapeTypeName(g.g)
	}
	return s
}
