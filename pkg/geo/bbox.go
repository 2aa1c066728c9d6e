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

package geo

import (
	"sort"

	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// BoundingBoxFromGeomT returns the dateline-aware bounding box of t. The x
// values of t may lie outside of [-180, 180] (e.g. after unwrapping); they are
// normalized before the extent is computed.
func BoundingBoxFromGeomT(t geom.T) (geopb.BoundingBox, error) {
	flat := t.FlatCoords()
	stride := t.Stride()
	if stride == 0 || len(flat) < stride {
		return *geopb.NewBoundingBox(), nil
	}
	n := len(flat) / stride
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i+1 < len(flat); i += stride {
		xs = append(xs, flat[i])
		ys = append(ys, flat[i+1])
	}
	return BoundingBoxFromPoints(xs, ys)
}

// BoundingBoxFromPoints returns the dateline-aware bounding box of the given
// vertices. xs and ys must have the same length.
//
// If the normalized x values span at most 180 degrees the box is the naive
// extent. Otherwise the x values are treated as points on a circle and the
// box is the complement of the largest gap between consecutive values.
func BoundingBoxFromPoints(xs, ys []float64) (geopb.BoundingBox, error) {
	bbox := geopb.NewBoundingBox()
	if len(xs) == 0 {
		return *bbox, nil
	}
	sorted := make([]float64, len(xs))
	for i := range xs {
		if err := CheckCoordinate(xs[i], ys[i]); err != nil {
			return geopb.BoundingBox{}, err
		}
		x, err := NormalizeLongitude(xs[i])
		if err != nil {
			return geopb.BoundingBox{}, err
		}
		sorted[i] = x
		bbox.Update(x, ys[i])
	}
	if bbox.MaxX-bbox.MinX <= WorldBoundsX {
		return *bbox, nil
	}
	sort.Float64s(sorted)

	// The wrap-around gap goes from the last value east to the first one.
	// Choosing it means the naive extent is the best box.
	last := len(sorted) - 1
	bestGap := sorted[0] + 2*WorldBoundsX - sorted[last]
	bestAfter := 0
	for i := 1; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap > bestGap {
			bestGap = gap
			bestAfter = i
		}
	}
	if bestAfter == 0 {
		return *bbox, nil
	}
	bbox.MinX = sorted[bestAfter]
	bbox.MaxX = sorted[bestAfter-1]
	if bbox.MinX == WorldBoundsX {
		// The shape only touches the dateline from the east.
		bbox.MinX = -WorldBoundsX
	}
	bbox.CrossesDateLine = bbox.MinX > bbox.MaxX
	return *bbox, nil
}

// NaiveBoundingBox returns the raw extent of t without any wraparound
// handling. It is used for planar coordinate systems and for geometries that
// have been unwrapped into an extended x range.
func NaiveBoundingBox(t geom.T) geopb.BoundingBox {
	bbox := geopb.NewBoundingBox()
	flat := t.FlatCoords()
	stride := t.Stride()
	if stride == 0 {
		return *bbox
	}
	for i := 0; i+1 < len(flat); i += stride {
		bbox.Update(flat[i], flat[i+1])
	}
	return *bbox
}
