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

// Package geopb holds the plain value types exchanged between the geo
// packages.
package geopb

import (
	"fmt"
	"math"
)

// BoundingBox is the axis-aligned extent of a shape.
//
// When CrossesDateLine is set, MinX > MaxX and the box covers
// [MinX, 180] and [-180, MaxX].
type BoundingBox struct {
	MinX, MaxX      float64
	MinY, MaxY      float64
	CrossesDateLine bool
}

// NewBoundingBox returns a properly initialized, empty bounding box.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		MinX: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// Update updates the BoundingBox coordinates. It does not account for
// wraparound; it is used for the naive extent.
func (b *BoundingBox) Update(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// IsEmpty returns whether the box has never been updated.
func (b BoundingBox) IsEmpty() bool {
	return b.MinY > b.MaxY
}

// Width returns the x extent, measured eastwards from MinX to MaxX.
func (b BoundingBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	if b.CrossesDateLine {
		return (180 - b.MinX) + (b.MaxX + 180)
	}
	return b.MaxX - b.MinX
}

// Height returns the y extent.
func (b BoundingBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Area returns the planar area of the box.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// ContainsX returns whether the longitude range of the box contains x. The
// antimeridian is matched regardless of the sign it is written with.
func (b BoundingBox) ContainsX(x float64) bool {
	if b.IsEmpty() {
		return false
	}
	if b.containsX(x) {
		return true
	}
	if math.Abs(x) == 180 {
		return b.containsX(-x)
	}
	return false
}

func (b BoundingBox) containsX(x float64) bool {
	if b.CrossesDateLine {
		return x >= b.MinX || x <= b.MaxX
	}
	return x >= b.MinX && x <= b.MaxX
}

// ContainsPoint returns whether the box contains (x, y), boundary included.
func (b BoundingBox) ContainsPoint(x, y float64) bool {
	return y >= b.MinY && y <= b.MaxY && b.ContainsX(x)
}

// TouchesDateLine returns whether the box crosses or ends at the
// antimeridian.
func (b BoundingBox) TouchesDateLine() bool {
	if b.IsEmpty() {
		return false
	}
	return b.CrossesDateLine || b.MinX <= -180 || b.MaxX >= 180
}

func (b BoundingBox) String() string {
	if b.IsEmpty() {
		return "ENVELOPE EMPTY"
	}
	return fmt.Sprintf("ENVELOPE(%v, %v, %v, %v)", b.MinX, b.MaxX, b.MaxY, b.MinY)
}
