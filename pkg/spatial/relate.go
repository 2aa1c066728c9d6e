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
	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/nknize/spatial4j/pkg/geo/planar"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/twpayne/go-geom"
)

// Relate returns the relation of a to b.
//
// Empty shapes are disjoint from everything, themselves included. Any other
// shape contains itself. Points on the boundary of a polygon or rectangle
// are contained by it. In geographic contexts shapes are compared on the
// circle of longitudes, so either sign of the dateline matches.
func (sc *Context) Relate(a, b Shape) SpatialRelation {
	if a.IsEmpty() || b.IsEmpty() {
		return Disjoint
	}
	if a == b {
		return Contains
	}
	isGeo := sc.IsGeo()
	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Point:
			if a.equals(b, isGeo) {
				return Contains
			}
			return Disjoint
		case Rectangle:
			return relateBoxPoint(b.bbox, a, isGeo).Transpose()
		case *Geometry:
			return sc.relateGeometry(b, a).Transpose()
		}
	case Rectangle:
		switch b := b.(type) {
		case Point:
			return relateBoxPoint(a.bbox, b, isGeo)
		case Rectangle:
			return relateBoxes(a.bbox, b.bbox, isGeo)
		case *Geometry:
			return sc.relateGeometry(b, a).Transpose()
		}
	case *Geometry:
		return sc.relateGeometry(a, b)
	}
	panic(errors.AssertionFailedf("unhandled shape pair %T, %T", a, b))
}

func relateBoxPoint(b geopb.BoundingBox, p Point, isGeo bool) SpatialRelation {
	contains := b.ContainsPoint(p.x, p.y)
	if !isGeo {
		contains = p.x >= b.MinX && p.x <= b.MaxX && p.y >= b.MinY && p.y <= b.MaxY
	}
	if contains {
		return Contains
	}
	return Disjoint
}

// relateGeometry relates g to any shape using the planar topology engine.
// Close to the dateline the stored coordinates of the operands may run past
// 180 degrees, so both are folded back into [-180, 180] and related again,
// then once more with the other operand moved a full turn either way. Every
// pass compares real points of the sphere, so the strongest result wins.
func (sc *Context) relateGeometry(g *Geometry, other Shape) SpatialRelation {
	gb, ob := g.BoundingBox(), other.BoundingBox()
	switch relateBoxes(gb, ob, sc.IsGeo()) {
	case Disjoint:
		return Disjoint
	case Within:
		if _, ok := other.(Rectangle); ok {
			return Within
		}
	}

	otherGeom := other.planarGeom()
	rel := sc.relatePlanar(g.g, otherGeom)
	if rel == Contains || !sc.IsGeo() || !(gb.TouchesDateLine() || ob.TouchesDateLine()) {
		return rel
	}

	foldedG, err := planar.FoldX(g.g, -geo.WorldBoundsX, 2*geo.WorldBoundsX)
	if err != nil {
		log.Warningf(sc.logCtx, "relating unfolded %s: %v", geo.ShapeTypeName(g.g), err)
		return rel
	}
	foldedOther, err := planar.FoldX(otherGeom, -geo.WorldBoundsX, 2*geo.WorldBoundsX)
	if err != nil {
		log.Warningf(sc.logCtx, "relating unfolded %s: %v", geo.ShapeTypeName(otherGeom), err)
		return rel
	}
	rel = rel.combine(sc.relatePlanar(foldedG, foldedOther))
	// Folded shapes can still meet only on the dateline, one of them
	// written at -180 and the other at +180.
	for _, dx := range []float64{-2 * geo.WorldBoundsX, 2 * geo.WorldBoundsX} {
		if rel == Contains {
			break
		}
		shifted, err := geo.ShiftX(foldedOther, dx)
		if err != nil {
			log.Warningf(sc.logCtx, "shifting %s: %v", geo.ShapeTypeName(foldedOther), err)
			break
		}
		rel = rel.combine(sc.relatePlanar(foldedG, shifted))
	}
	return rel
}

// relatePlanar maps the DE-9IM matrix of a and b to a relation. A point
// touching the boundary of a is contained by it. The callers have already
// seen the bounding boxes of a and b intersect, so a failure of the engine
// reports Intersects.
func (sc *Context) relatePlanar(a, b geom.T) SpatialRelation {
	m, err := planar.Relate(a, b)
	if err != nil {
		log.Errorf(sc.logCtx, "reporting %s: %v", Intersects, err)
		return Intersects
	}
	rel := relationFromMatrix(m)
	if _, ok := b.(*geom.Point); ok && rel.Intersects() {
		return Contains
	}
	return rel
}
