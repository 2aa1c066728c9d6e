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

package planar

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Area returns the planar area of t. Holes are subtracted from their shell
// and the components of a multipolygon are summed. Points and lines have no
// area. Ring winding does not matter.
func Area(t geom.T) float64 {
	switch t := t.(type) {
	case *geom.Polygon:
		return polygonArea(t)
	case *geom.MultiPolygon:
		var a float64
		for i := 0; i < t.NumPolygons(); i++ {
			a += polygonArea(t.Polygon(i))
		}
		return a
	default:
		return 0
	}
}

// polygonArea is the area of the shell less the area of the holes. go-geom
// signs ring areas by winding, so each ring is taken as a magnitude.
func polygonArea(p *geom.Polygon) float64 {
	var a float64
	for i := 0; i < p.NumLinearRings(); i++ {
		ring := math.Abs(p.LinearRing(i).Area())
		if i == 0 {
			a = ring
		} else {
			a -= ring
		}
	}
	return a
}
