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
	"bytes"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/nknize/spatial4j/pkg/testutils/floatcmp"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestMakePoint(t *testing.T) {
	testCases := []struct {
		desc       string
		sc         *Context
		x, y       float64
		expectedX  float64
		expectedY  float64
		expectedEr error
	}{
		{desc: "in range", sc: GEO, x: 10, y: 20, expectedX: 10, expectedY: 20},
		{desc: "negative dateline", sc: GEO, x: -180, y: 0, expectedX: 180, expectedY: 0},
		{desc: "out of range longitude", sc: GEO, x: 181, y: 0, expectedEr: geo.ErrInvalidCoordinate},
		{desc: "out of range latitude", sc: GEO, x: 0, y: 91, expectedEr: geo.ErrInvalidCoordinate},
		{desc: "nan", sc: GEO, x: math.NaN(), y: 0, expectedEr: geo.ErrInvalidCoordinate},
		{desc: "planar infinity", sc: CARTESIAN, x: 0, y: math.Inf(-1), expectedEr: geo.ErrInvalidCoordinate},
		{desc: "planar unbounded", sc: CARTESIAN, x: -1000, y: 500, expectedX: -1000, expectedY: 500},
		{desc: "wrapped", sc: testContexts["wrap"], x: -115, y: -275, expectedX: -115, expectedY: 85},
		{desc: "wrapped longitude", sc: testContexts["wrap"], x: 540, y: 0, expectedX: 180, expectedY: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			p, err := tc.sc.MakePoint(tc.x, tc.y)
			if tc.expectedEr != nil {
				require.True(t, errors.Is(err, tc.expectedEr), "%v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedX, p.X())
			require.Equal(t, tc.expectedY, p.Y())
			require.Equal(t, tc.sc, p.Context())
			require.Zero(t, p.Area(tc.sc))
		})
	}
}

func TestMakeRectangle(t *testing.T) {
	testCases := []struct {
		desc                   string
		sc                     *Context
		minX, maxX, minY, maxY float64
		expected               geopb.BoundingBox
		width                  float64
	}{
		{
			desc: "simple",
			sc:   GEO,
			minX: -10, maxX: 10, minY: -5, maxY: 5,
			expected: geopb.BoundingBox{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5},
			width:    20,
		},
		{
			desc: "crossing the dateline",
			sc:   GEO,
			minX: 170, maxX: -170, minY: -5, maxY: 5,
			expected: geopb.BoundingBox{MinX: 170, MaxX: -170, MinY: -5, MaxY: 5, CrossesDateLine: true},
			width:    20,
		},
		{
			desc: "touching the dateline from the east",
			sc:   GEO,
			minX: 180, maxX: -170, minY: -5, maxY: 5,
			expected: geopb.BoundingBox{MinX: -180, MaxX: -170, MinY: -5, MaxY: 5},
			width:    10,
		},
		{
			desc: "touching the dateline from the west",
			sc:   GEO,
			minX: 170, maxX: -180, minY: -5, maxY: 5,
			expected: geopb.BoundingBox{MinX: 170, MaxX: 180, MinY: -5, MaxY: 5},
			width:    10,
		},
		{
			desc: "world",
			sc:   GEO,
			minX: -180, maxX: 180, minY: -90, maxY: 90,
			expected: geopb.BoundingBox{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90},
			width:    360,
		},
		{
			desc: "wider than the world",
			sc:   testContexts["wrap"],
			minX: -200, maxX: 300, minY: 0, maxY: 1,
			expected: geopb.BoundingBox{MinX: -180, MaxX: 180, MinY: 0, MaxY: 1},
			width:    360,
		},
		{
			desc: "wrapped",
			sc:   testContexts["wrap"],
			minX: 190, maxX: 200, minY: 0, maxY: 1,
			expected: geopb.BoundingBox{MinX: -170, MaxX: -160, MinY: 0, MaxY: 1},
			width:    10,
		},
		{
			desc: "planar",
			sc:   CARTESIAN,
			minX: -200, maxX: 300, minY: -100, maxY: 100,
			expected: geopb.BoundingBox{MinX: -200, MaxX: 300, MinY: -100, MaxY: 100},
			width:    500,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r, err := tc.sc.MakeRectangle(tc.minX, tc.maxX, tc.minY, tc.maxY)
			require.NoError(t, err)
			require.Equal(t, tc.expected, r.BoundingBox())
			require.Equal(t, tc.width, r.Width())
			require.Equal(t, tc.expected.CrossesDateLine, r.CrossesDateLine())
		})
	}

	t.Run("errors", func(t *testing.T) {
		for _, tc := range []struct {
			sc                     *Context
			minX, maxX, minY, maxY float64
			expected               error
		}{
			{GEO, 0, 10, 5, -5, ErrInvalidShape},
			{GEO, 0, 190, -5, 5, geo.ErrInvalidCoordinate},
			{GEO, 0, 10, -95, 5, geo.ErrInvalidCoordinate},
			{GEO, math.NaN(), 10, -5, 5, geo.ErrInvalidCoordinate},
			{CARTESIAN, 10, 0, -5, 5, ErrInvalidShape},
		} {
			_, err := tc.sc.MakeRectangle(tc.minX, tc.maxX, tc.minY, tc.maxY)
			require.True(t, errors.Is(err, tc.expected), "%v", err)
		}
	})
}

func TestRectangleCenter(t *testing.T) {
	r, err := GEO.MakeRectangle(170, -160, -10, 20)
	require.NoError(t, err)
	c := r.Center()
	require.Equal(t, -175.0, c.X())
	require.Equal(t, 5.0, c.Y())

	r, err = GEO.MakeRectangle(160, -160, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 180.0, r.Center().X())
}

func TestRelateBoxes(t *testing.T) {
	box := func(minX, maxX, minY, maxY float64) geopb.BoundingBox {
		r, err := GEO.MakeRectangle(minX, maxX, minY, maxY)
		require.NoError(t, err)
		return r.BoundingBox()
	}
	testCases := []struct {
		desc     string
		a, b     geopb.BoundingBox
		expected SpatialRelation
		reverse  SpatialRelation
	}{
		{"equal", box(0, 10, 0, 10), box(0, 10, 0, 10), Contains, Contains},
		{"inside", box(0, 10, 0, 10), box(2, 8, 2, 8), Contains, Within},
		{"outside", box(2, 8, 2, 8), box(0, 10, 0, 10), Within, Contains},
		{"overlap", box(0, 10, 0, 10), box(5, 15, 5, 15), Intersects, Intersects},
		{"shared edge", box(0, 10, 0, 10), box(10, 20, 0, 10), Intersects, Intersects},
		{"disjoint x", box(0, 10, 0, 10), box(20, 30, 0, 10), Disjoint, Disjoint},
		{"disjoint y", box(0, 10, 0, 10), box(0, 10, 20, 30), Disjoint, Disjoint},
		{"same x taller", box(0, 10, 0, 10), box(0, 10, -5, 15), Within, Contains},
		{"crossing contains east part", box(170, -170, 0, 10), box(-175, -172, 2, 8), Contains, Within},
		{"crossing contains west part", box(170, -170, 0, 10), box(172, 175, 2, 8), Contains, Within},
		{"east part within crossing", box(-175, -172, 2, 8), box(170, -170, 0, 10), Within, Contains},
		{"crossing vs crossing", box(170, -170, 0, 10), box(175, -160, 0, 10), Intersects, Intersects},
		{"crossing vs far", box(170, -170, 0, 10), box(-10, 10, 0, 10), Disjoint, Disjoint},
		{"either side of the dateline", box(170, 180, 0, 10), box(-180, -170, 0, 10), Intersects, Intersects},
		{"world", box(-180, 180, -90, 90), box(170, -170, 0, 10), Contains, Within},
		{"within world", box(170, -170, 0, 10), box(-180, 180, -90, 90), Within, Contains},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, relateBoxes(tc.a, tc.b, true))
			require.Equal(t, tc.reverse, relateBoxes(tc.b, tc.a, true))
		})
	}
}

func TestReadAndFormatShape(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"POINT(1 2)", "POINT (1 2)"},
		{"POINT(-180 2)", "POINT (180 2)"},
		{"POINT EMPTY", "POINT EMPTY"},
		{"ENVELOPE(170, -170, 10, -10)", "ENVELOPE(170, -170, 10, -10)"},
		{"LINESTRING(170 0, -170 0)", "LINESTRING (170 0, -170 0)"},
		{"POLYGON((0 0, 10 0, 5 5, 0 0))", "POLYGON ((0 0, 10 0, 5 5, 0 0))"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			s, err := GEO.ReadShapeFromWKT(tc.in)
			require.NoError(t, err)
			out, err := GEO.FormatShape(s)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)

			again, err := GEO.ReadShapeFromWKT(out)
			require.NoError(t, err)
			require.Equal(t, s.BoundingBox(), again.BoundingBox())
		})
	}

	_, err := GEO.ReadShapeFromWKT("GEOMETRYCOLLECTION(POINT(1 2))")
	require.Error(t, err)
	_, err = GEO.ReadShapeFromWKT("ENVELOPE(1, 2, 3)")
	require.Error(t, err)
}

func TestMakeShapeValidation(t *testing.T) {
	bowtie := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 10, 10, 0, 0, 10, 0, 0}, []int{10})

	var buf bytes.Buffer
	defer log.SetOutput(&buf)()
	s, err := GEO.MakeShape(bowtie)
	require.NoError(t, err)
	g := s.(*Geometry)
	require.False(t, g.IsValid())
	require.NotEmpty(t, g.InvalidReason())

	strict := NewContext(Config{Geo: true, ValidationRule: ValidationRuleError})
	_, err = strict.MakeShape(bowtie)
	require.True(t, errors.Is(err, ErrInvalidShape), "%v", err)

	_, err = GEO.MakeShape(geom.NewGeometryCollection())
	require.True(t, errors.Is(err, ErrInvalidShape), "%v", err)
}

func TestPolarRingIsNotUnwrapped(t *testing.T) {
	s, err := GEO.ReadShapeFromWKT("POLYGON((0 80, 90 80, 180 80, -90 80, 0 80))")
	require.NoError(t, err)
	g := s.(*Geometry)
	require.Equal(t, 0, g.Crossings())
	require.Equal(t, []float64{0, 80, 90, 80, 180, 80, -90, 80, 0, 80}, g.Geom().FlatCoords())
}

func TestArea(t *testing.T) {
	poly := mustReadGeometry(t, GEO, polyWKT)
	require.Equal(t, 1300.0, poly.Area(nil))
	require.Equal(t, 1300.0, Area(poly, CARTESIAN))

	bboxArea := Rectangle{bbox: poly.BoundingBox(), sc: GEO}.Area(GEO)
	require.InDelta(t, 0.27, poly.Area(GEO)/bboxArea, 0.009)
	require.Greater(t, bboxArea, poly.Area(GEO))

	t.Run("rectangle as polygon", func(t *testing.T) {
		for _, b := range [][4]float64{{-10, 20, -5, 15}, {100, 175, -80, 0}, {-180, -100, 10, 60}} {
			r, err := GEO.MakeRectangle(b[0], b[1], b[2], b[3])
			require.NoError(t, err)
			rPoly, err := GEO.MakeShape(r.planarGeom())
			require.NoError(t, err)
			require.Equal(t, r.Area(nil), rPoly.Area(nil))
			floatcmp.RequireEqualApprox(t, r.Area(GEO), rPoly.Area(GEO), floatcmp.DegreesFraction, floatcmp.DegreesMargin)
		}
	})

	t.Run("holes and components", func(t *testing.T) {
		withHole := mustReadGeometry(t, CARTESIAN, "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 4, 2 2))")
		require.Equal(t, 96.0, withHole.Area(nil))
		multi := mustReadGeometry(t, CARTESIAN,
			"MULTIPOLYGON(((0 0, 1 0, 1 1, 0 1, 0 0)), ((5 5, 7 5, 7 7, 5 7, 5 5)))")
		require.Equal(t, 5.0, multi.Area(nil))
		line := mustReadGeometry(t, CARTESIAN, "LINESTRING(0 0, 10 10)")
		require.Zero(t, line.Area(nil))
	})

	t.Run("winding", func(t *testing.T) {
		for _, tc := range []struct {
			sc       *Context
			cw, ccw  string
			expected float64
		}{
			{CARTESIAN, "POLYGON((0 0, 0 10, 10 10, 10 0, 0 0))", "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))", 100},
			{GEO, "POLYGON((0 0, 0 10, 10 10, 10 0, 0 0))", "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))", 100},
			{CARTESIAN,
				"MULTIPOLYGON(((0 0, 0 10, 10 10, 10 0, 0 0)), ((20 0, 30 0, 30 10, 20 10, 20 0)))",
				"MULTIPOLYGON(((0 0, 10 0, 10 10, 0 10, 0 0)), ((20 0, 30 0, 30 10, 20 10, 20 0)))", 200},
		} {
			cw, ccw := mustReadGeometry(t, tc.sc, tc.cw), mustReadGeometry(t, tc.sc, tc.ccw)
			require.Equal(t, tc.expected, cw.Area(nil), tc.cw)
			require.Equal(t, tc.expected, ccw.Area(nil), tc.ccw)
			require.Greater(t, cw.Area(tc.sc), 0.0)
			require.Equal(t, ccw.Area(tc.sc), cw.Area(tc.sc))
		}

		// Unwrapping moves the eastern side past 180, which reverses the
		// winding of the ring.
		flipped := mustReadGeometry(t, GEO, "POLYGON((-100 0, 100 0, 100 10, -100 10, -100 0))")
		reversed := mustReadGeometry(t, GEO, "POLYGON((-100 0, -100 10, 100 10, 100 0, -100 0))")
		require.Greater(t, flipped.Area(nil), 0.0)
		require.Greater(t, flipped.Area(GEO), 0.0)
		require.Equal(t, reversed.Area(nil), flipped.Area(nil))
		require.Equal(t, reversed.Area(GEO), flipped.Area(GEO))
	})

	t.Run("overlapping components are summed", func(t *testing.T) {
		twice := mustReadGeometry(t, CARTESIAN,
			"MULTIPOLYGON(((0 0, 10 0, 10 10, 0 10, 0 0)), ((0 0, 10 0, 10 10, 0 10, 0 0)))")
		require.False(t, twice.IsValid())
		require.Equal(t, 200.0, twice.Area(nil))
		require.Equal(t, 100.0, twice.BoundingBox().Area())
	})

	t.Run("dateline", func(t *testing.T) {
		crossing := mustReadGeometry(t, GEO, "POLYGON((170 -10, -170 -10, -170 10, 170 10, 170 -10))")
		centered := mustReadGeometry(t, GEO, "POLYGON((-10 -10, 10 -10, 10 10, -10 10, -10 -10))")
		require.Equal(t, 400.0, crossing.Area(nil))
		floatcmp.RequireEqualApprox(t, centered.Area(GEO), crossing.Area(GEO), floatcmp.DegreesFraction, floatcmp.DegreesMargin)
	})

	t.Run("bounded by the bounding box", func(t *testing.T) {
		for _, s := range []string{polyWKT, polyWithHoleWKT, "POLYGON((176 30, 178 40, -174 30, -176 20, 176 30))"} {
			g := mustReadGeometry(t, GEO, s)
			require.LessOrEqual(t, g.Area(nil), g.BoundingBox().Area())
			require.LessOrEqual(t, g.Area(GEO), geodesicBoxArea(g.BoundingBox())*(1+1e-12))
		}
	})
}

func TestGeodesicBoxArea(t *testing.T) {
	world := geopb.BoundingBox{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}
	floatcmp.RequireEqualApprox(t, 4*180*180/math.Pi, geodesicBoxArea(world), floatcmp.DegreesFraction, floatcmp.DegreesMargin)

	// Near the equator a small box is close to its planar area.
	small := geopb.BoundingBox{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	require.InDelta(t, 1.0, geodesicBoxArea(small), 1e-4)

	crossing := geopb.BoundingBox{MinX: 170, MaxX: -170, MinY: 0, MaxY: 10, CrossesDateLine: true}
	centered := geopb.BoundingBox{MinX: -10, MaxX: 10, MinY: 0, MaxY: 10}
	floatcmp.RequireEqualApprox(t, geodesicBoxArea(centered), geodesicBoxArea(crossing), floatcmp.DegreesFraction, floatcmp.DegreesMargin)

	require.Zero(t, geodesicBoxArea(*geopb.NewBoundingBox()))
	require.Zero(t, geodesicBoxArea(geopb.BoundingBox{MinX: 0, MaxX: 0, MinY: 0, MaxY: 10}))
}

func TestDistance(t *testing.T) {
	p := func(sc *Context, x, y float64) Point {
		pt, err := sc.MakePoint(x, y)
		require.NoError(t, err)
		return pt
	}
	require.InDelta(t, 90, GEO.Distance(p(GEO, 0, 0), p(GEO, 90, 0)), 1e-9)
	require.InDelta(t, 2, GEO.Distance(p(GEO, 179, 0), p(GEO, -179, 0)), 1e-9)
	require.InDelta(t, 180, GEO.Distance(p(GEO, 0, 90), p(GEO, 0, -90)), 1e-9)
	require.Equal(t, 5.0, CARTESIAN.Distance(p(CARTESIAN, 0, 0), p(CARTESIAN, 3, 4)))

	require.InDelta(t, 111.195, DegreesToKm(1), 1e-3)
	require.InDelta(t, 42.5, KmToDegrees(DegreesToKm(42.5)), 1e-12)
	require.InDelta(t, DegreesToKm(1)*DegreesToKm(1), SquareDegreesToSquareKm(1), 1e-9)
}

func TestWorldBounds(t *testing.T) {
	require.Equal(t, geopb.BoundingBox{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}, GEO.WorldBounds())
	require.Equal(t, math.MaxFloat64, CARTESIAN.WorldBounds().MaxX)
	require.True(t, GEO.IsGeo())
	require.False(t, CARTESIAN.IsGeo())
	require.False(t, (*Context)(nil).IsGeo())
	require.Equal(t, DatelineRuleNone, NewContext(Config{DatelineRule: DatelineRuleWidth180}).Config().DatelineRule)
}
