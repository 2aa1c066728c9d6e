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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

type unknownGeom struct{ *geom.Point }

func TestShapeTypeName(t *testing.T) {
	require.Equal(t, "POINT", ShapeTypeName(geom.NewPointEmpty(geom.XY)))
	require.Equal(t, "MULTIPOLYGON", ShapeTypeName(geom.NewMultiPolygon(geom.XY)))
	require.Equal(t, "GEOMETRYCOLLECTION", ShapeTypeName(geom.NewGeometryCollection()))

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "%v", r)
		require.True(t, errors.IsAssertionFailure(err), "%v", err)
		require.Contains(t, err.Error(), "unknown geom type: geo.unknownGeom")
	}()
	ShapeTypeName(unknownGeom{geom.NewPointEmpty(geom.XY)})
}
