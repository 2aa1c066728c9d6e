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

// Package spatial implements shapes in a geographic or planar coordinate
// system and the relations between them. Geographic shapes may cross the
// dateline: their bounding boxes wrap around it and geometries crossing it
// are unwrapped at construction so that planar algorithms apply.
package spatial

import (
	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// ErrInvalidShape is returned when a shape cannot be constructed from its
// coordinates.
var ErrInvalidShape = errors.New("invalid shape")

// Shape is implemented by Point, Rectangle and *Geometry only.
//
// Shapes are immutable and safe for concurrent use.
type Shape interface {
	// BoundingBox returns the dateline-aware extent of the shape.
	BoundingBox() geopb.BoundingBox
	// IsEmpty returns whether the shape has no points.
	IsEmpty() bool
	// Area returns the planar area of the shape if sc is nil, and the
	// approximate area on the sphere in square degrees if sc is geographic.
	Area(sc *Context) float64
	// Center returns the center of the bounding box.
	Center() Point
	// Context returns the context the shape was made by.
	Context() *Context

	// planarGeom returns the geometry handed to the topology engine. The
	// result must not be modified.
	planarGeom() geom.T
}

var _ Shape = Point{}
var _ Shape = Rectangle{}
var _ Shape = (*Geometry)(nil)

// Area returns the area of s; see Shape.Area.
func Area(s Shape, sc *Context) float64 {
	if s.IsEmpty() {
		return 0
	}
	return s.Area(sc)
}

// Relate returns the relation of a to b, using the context of a.
func Relate(a, b Shape) SpatialRelation {
	return a.Context().Relate(a, b)
}

// ToGeomT returns a copy of s as a go-geom geometry. Rectangles become the
// polygon extending east of their MinX, and geometries keep their unwrapped
// coordinates.
func ToGeomT(s Shape) (geom.T, error) {
	return geo.CloneGeomT(s.planarGeom())
}
