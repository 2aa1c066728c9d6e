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
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestBoundingBoxFromGeomT(t *testing.T) {
	testCases := []struct {
		desc     string
		g        geom.T
		expected geopb.BoundingBox
		width    float64
	}{
		{
			desc:     "point",
			g:        geom.NewPointFlat(geom.XY, []float64{5, 6}),
			expected: geopb.BoundingBox{MinX: 5, MaxX: 5, MinY: 6, MaxY: 6},
			width:    0,
		},
		{
			desc:     "small polygon",
			g:        geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 0, 5, 5, 0, 0}, []int{8}),
			expected: geopb.BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5},
			width:    10,
		},
		{
			desc:     "line crossing the dateline",
			g:        geom.NewLineStringFlat(geom.XY, []float64{170, 0, -170, 10}),
			expected: geopb.BoundingBox{MinX: 170, MaxX: -170, MinY: 0, MaxY: 10, CrossesDateLine: true},
			width:    20,
		},
		{
			desc:     "unwrapped line crossing the dateline",
			g:        geom.NewLineStringFlat(geom.XY, []float64{170, 0, 190, 10}),
			expected: geopb.BoundingBox{MinX: 170, MaxX: -170, MinY: 0, MaxY: 10, CrossesDateLine: true},
			width:    20,
		},
		{
			desc:     "wide polygon not crossing the dateline",
			g:        geom.NewPolygonFlat(geom.XY, []float64{-90, 0, 91, 0, 0, 10, -90, 0}, []int{8}),
			expected: geopb.BoundingBox{MinX: -90, MaxX: 91, MinY: 0, MaxY: 10},
			width:    181,
		},
		{
			desc:     "wide polygon shifted across the dateline",
			g:        geom.NewPolygonFlat(geom.XY, []float64{90, 0, -89, 0, 180, 10, 90, 0}, []int{8}),
			expected: geopb.BoundingBox{MinX: 90, MaxX: -89, MinY: 0, MaxY: 10, CrossesDateLine: true},
			width:    181,
		},
		{
			desc:     "touching the dateline from the east",
			g:        geom.NewLineStringFlat(geom.XY, []float64{-180, 0, -170, 0, -160, 5}),
			expected: geopb.BoundingBox{MinX: -180, MaxX: -160, MinY: 0, MaxY: 5},
			width:    20,
		},
		{
			desc:     "touching the dateline from the west",
			g:        geom.NewLineStringFlat(geom.XY, []float64{170, 0, 180, 5}),
			expected: geopb.BoundingBox{MinX: 170, MaxX: 180, MinY: 0, MaxY: 5},
			width:    10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			bbox, err := BoundingBoxFromGeomT(tc.g)
			require.NoError(t, err)
			require.Equal(t, tc.expected, bbox)
			require.Equal(t, tc.width, bbox.Width())
		})
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	for _, g := range []geom.T{
		geom.NewPointEmpty(geom.XY),
		geom.NewPolygon(geom.XY),
		geom.NewMultiPolygon(geom.XY),
	} {
		bbox, err := BoundingBoxFromGeomT(g)
		require.NoError(t, err)
		require.True(t, bbox.IsEmpty())
		require.Equal(t, float64(0), bbox.Width())
		require.Equal(t, float64(0), bbox.Area())
	}
}

func TestBoundingBoxShiftInvariance(t *testing.T) {
	xs := []float64{-30, 40, 120, 100, -10}
	ys := []float64{0, 10, -5, 20, 3}
	base, err := BoundingBoxFromPoints(xs, ys)
	require.NoError(t, err)
	for _, shift := range []float64{-720, -360, 360, 1080} {
		shifted := make([]float64, len(xs))
		for i := range xs {
			shifted[i] = xs[i] + shift
		}
		bbox, err := BoundingBoxFromPoints(shifted, ys)
		require.NoError(t, err)
		require.Equal(t, base, bbox)
	}

	// A rigid shift by 180 moves the box across the dateline but keeps its
	// width.
	for i := range xs {
		xs[i] += 180
	}
	bbox, err := BoundingBoxFromPoints(xs, ys)
	require.NoError(t, err)
	require.True(t, bbox.CrossesDateLine)
	require.Equal(t, base.Width(), bbox.Width())
}

func TestBoundingBoxInvalid(t *testing.T) {
	_, err := BoundingBoxFromPoints([]float64{0, math.NaN()}, []float64{0, 0})
	require.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestNaiveBoundingBox(t *testing.T) {
	bbox := NaiveBoundingBox(geom.NewLineStringFlat(geom.XY, []float64{170, 0, 190, 10}))
	require.Equal(t, geopb.BoundingBox{MinX: 170, MaxX: 190, MinY: 0, MaxY: 10}, bbox)
	require.Equal(t, float64(20), bbox.Width())
}
