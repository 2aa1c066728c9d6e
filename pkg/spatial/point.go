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
	"fmt"

	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// Point is a single coordinate, or the empty point.
type Point struct {
	x, y  float64
	empty bool
	sc    *Context
}

// X returns the x coordinate (the longitude in geographic contexts).
func (p Point) X() float64 { return p.x }

// Y returns the y coordinate (the latitude in geographic contexts).
func (p Point) Y() float64 { return p.y }

// IsEmpty implements the Shape interface.
func (p Point) IsEmpty() bool { return p.empty }

// BoundingBox implements the Shape interface.
func (p Point) BoundingBox() geopb.BoundingBox {
	if p.empty {
		return *geopb.NewBoundingBox()
	}
	return geopb.BoundingBox{MinX: p.x, MaxX: p.x, MinY: p.y, MaxY: p.y}
}

// Area implements the Shape interface.
func (p Point) Area(*Context) float64 { return 0 }

// Center implements the Shape interface.
func (p Point) Center() Point { return p }

// Context implements the Shape interface.
func (p Point) Context() *Context { return p.sc }

func (p Point) planarGeom() geom.T {
	if p.empty {
		return geom.NewPointEmpty(geom.XY)
	}
	return geom.NewPointFlat(geom.XY, []float64{p.x, p.y})
}

// equals compares the coordinates of two points. In geographic contexts both
// signs of the dateline are the same meridian.
func (p Point) equals(o Point, isGeo bool) bool {
	if p.empty || o.empty || p.y != o.y {
		return false
	}
	if p.x == o.x {
		return true
	}
	return isGeo && geo.IsAntimeridian(p.x) && geo.IsAntimeridian(o.x)
}

func (p Point) String() string {
	if p.empty {
		return "POINT EMPTY"
	}
	return fmt.Sprintf("POINT (%v %v)", p.x, p.y)
}
