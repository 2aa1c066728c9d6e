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

	"github.com/golang/geo/s2"
)

// EarthMeanRadiusKm is the mean radius of the earth in kilometers.
const EarthMeanRadiusKm = 6371.0087714

// DegreesToKm converts an angle on a great circle of the earth to a distance.
func DegreesToKm(d float64) float64 {
	return d * math.Pi / 180 * EarthMeanRadiusKm
}

// KmToDegrees converts a distance on the earth to an angle on a great circle.
func KmToDegrees(km float64) float64 {
	return km / EarthMeanRadiusKm * 180 / math.Pi
}

// SquareDegreesToSquareKm converts an area in square degrees, as returned by
// Shape.Area in geographic contexts, to square kilometers.
func SquareDegreesToSquareKm(a float64) float64 {
	r := DegreesToKm(1)
	return a * r * r
}

// DistanceDegrees returns the great circle distance between two points in
// degrees.
func DistanceDegrees(p1, p2 Point) float64 {
	a := s2.LatLngFromDegrees(p1.y, p1.x)
	b := s2.LatLngFromDegrees(p2.y, p2.x)
	return a.Distance(b).Degrees()
}

// Distance returns the distance between two points: the great circle
// distance in degrees in geographic contexts and the euclidean distance
// otherwise.
func (sc *Context) Distance(p1, p2 Point) float64 {
	if sc.IsGeo() {
		return DistanceDegrees(p1, p2)
	}
	return math.Hypot(p2.x-p1.x, p2.y-p1.y)
}
