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
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
)

// squareDegreesPerSteradian converts the area of a region of the unit sphere
// into square degrees.
const squareDegreesPerSteradian = (180 / math.Pi) * (180 / math.Pi)

// geodesicBoxArea returns the area on the sphere of a longitude/latitude box
// in square degrees. The whole sphere measures 360*360/pi.
func geodesicBoxArea(b geopb.BoundingBox) float64 {
	if b.IsEmpty() || b.Width() == 0 || b.Height() == 0 {
		return 0
	}
	lng := s1.FullInterval()
	if b.Width() < 2*geo.WorldBoundsX {
		lng = s1.IntervalFromEndpoints(degToRad(b.MinX), degToRad(b.MaxX))
	}
	rect := s2.Rect{
		Lat: r1.Interval{Lo: degToRad(b.MinY), Hi: degToRad(b.MaxY)},
		Lng: lng,
	}
	return rect.Area() * squareDegreesPerSteradian
}

func degToRad(d float64) float64 {
	return (s1.Angle(d) * s1.Degree).Radians()
}
