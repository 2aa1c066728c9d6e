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
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// Rectangle is an axis-aligned box. In geographic contexts it may cross the
// dateline, in which case MinX > MaxX.
type Rectangle struct {
	bbox geopb.BoundingBox
	sc   *Context
}

// MinX returns the western edge.
func (r Rectangle) MinX() float64 { return r.bbox.MinX }

// MaxX returns the eastern edge.
func (r Rectangle) MaxX() float64 { return r.bbox.MaxX }

// MinY returns the southern edge.
func (r Rectangle) MinY() float64 { return r.bbox.MinY }

// MaxY returns the northern edge.
func (r Rectangle) MaxY() float64 { return r.bbox.MaxY }

// CrossesDateLine returns whether the rectangle wraps around the dateline.
func (r Rectangle) CrossesDateLine() bool { return r.bbox.CrossesDateLine }

// Width returns the x extent, measured eastwards.
func (r Rectangle) Width() float64 { return r.bbox.Width() }

// Height returns the y extent.
func (r Rectangle) Height() float64 { return r.bbox.Height() }

// BoundingBox implements the Shape interface.
func (r Rectangle) BoundingBox() geopb.BoundingBox { return r.bbox }

// IsEmpty implements the Shape interface.
func (r Rectangle) IsEmpty() bool { return r.bbox.IsEmpty() }

// Area implements the Shape interface.
func (r Rectangle) Area(sc *Context) float64 {
	if sc.IsGeo() {
		return geodesicBoxArea(r.bbox)
	}
	return r.bbox.Area()
}

// Center implements the Shape interface.
func (r Rectangle) Center() Point {
	x := r.bbox.MinX + r.bbox.Width()/2
	if r.sc.IsGeo() {
		// The input is finite, so normalizing cannot fail.
		x, _ = geo.NormalizeLongitude(x)
	}
	return Point{x: x, y: r.bbox.MinY + r.bbox.Height()/2, sc: r.sc}
}

// Context implements the Shape interface.
func (r Rectangle) Context() *Context { return r.sc }

// planarGeom returns the rectangle as a polygon extending east of MinX.
// Degenerate rectangles become a point or a line.
func (r Rectangle) planarGeom() geom.T {
	minX, minY, maxY := r.bbox.MinX, r.bbox.MinY, r.bbox.MaxY
	maxX := minX + r.bbox.Width()
	switch {
	case minX == maxX && minY == maxY:
		return geom.NewPointFlat(geom.XY, []float64{minX, minY})
	case minX == maxX || minY == maxY:
		return geom.NewLineStringFlat(geom.XY, []float64{minX, minY, maxX, maxY})
	}
	return geom.NewPolygonFlat(geom.XY, []float64{
		minX, minY,
		maxX, minY,
		maxX, maxY,
		minX, maxY,
		minX, minY,
	}, []int{10})
}

func (r Rectangle) String() string {
	return r.bbox.String()
}

// relateBoxes relates two non-empty boxes from the point of view of a.
func relateBoxes(a, b geopb.BoundingBox, isGeo bool) SpatialRelation {
	y := relateRange(a.MinY, a.MaxY, b.MinY, b.MaxY)
	if y == Disjoint {
		return Disjoint
	}
	x := relateXRange(a, b, isGeo)
	if x == Disjoint {
		return Disjoint
	}
	if x == y {
		return x
	}
	// If one side is equal, the other decides.
	if a.MinX == b.MinX && a.MaxX == b.MaxX {
		return y
	}
	if a.MinY == b.MinY && a.MaxY == b.MaxY {
		return x
	}
	return Intersects
}

// relateXRange relates the x ranges of a and b. In geographic contexts both
// ranges are taken eastwards from their minimum, and one of them is moved
// by 360 degrees if that makes them overlap.
func relateXRange(a, b geopb.BoundingBox, isGeo bool) SpatialRelation {
	minX, maxX := a.MinX, a.MaxX
	extMinX, extMaxX := b.MinX, b.MaxX
	if isGeo {
		maxX = eastwardMaxX(a)
		extMaxX = eastwardMaxX(b)
		if maxX < extMinX {
			minX += 2 * geo.WorldBoundsX
			maxX += 2 * geo.WorldBoundsX
		} else if extMaxX < minX {
			extMinX += 2 * geo.WorldBoundsX
			extMaxX += 2 * geo.WorldBoundsX
		}
	}
	return relateRange(minX, maxX, extMinX, extMaxX)
}

// eastwardMaxX returns the maximum x of b when its x range is taken
// eastwards from MinX without wrapping. A whole-world range covers every
// possible shift.
func eastwardMaxX(b geopb.BoundingBox) float64 {
	if b.Width() >= 2*geo.WorldBoundsX {
		return 3 * geo.WorldBoundsX
	}
	return b.MinX + b.Width()
}

// relateRange relates [extLo, extHi] to [lo, hi] from the point of view of
// the latter. Equal ranges contain each other.
func relateRange(lo, hi, extLo, extHi float64) SpatialRelation {
	switch {
	case extLo > hi || extHi < lo:
		return Disjoint
	case extLo >= lo && extHi <= hi:
		return Contains
	case extLo <= lo && extHi >= hi:
		return Within
	default:
		return Intersects
	}
}
