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

	"github.com/cockroachdb/errors"
)

// WorldBoundsX is the absolute longitude of the antimeridian.
const WorldBoundsX float64 = 180

// WorldBoundsY is the absolute latitude of the poles.
const WorldBoundsY float64 = 90

// NormalizeLongitude normalizes a longitude in degrees to the range
// (-180, 180]. The antimeridian is always returned as +180, so -180 and 180
// map to the same value.
func NormalizeLongitude(x float64) (float64, error) {
	if err := checkFinite(x); err != nil {
		return 0, err
	}
	if x > -WorldBoundsX && x <= WorldBoundsX {
		// Common case; avoids shifting the value by float rounding.
		return x, nil
	}
	// math.Remainder(x, 360) returns in the range [-180, 180].
	x = math.Remainder(x, 2*WorldBoundsX)
	if x == -WorldBoundsX {
		return WorldBoundsX, nil
	}
	return x, nil
}

// NormalizeLatitude normalizes a latitude in degrees to the range [-90, 90].
// Latitudes beyond a pole curve back towards the equator, e.g. 91 -> 89.
func NormalizeLatitude(y float64) (float64, error) {
	if err := checkFinite(y); err != nil {
		return 0, err
	}
	if y >= -WorldBoundsY && y <= WorldBoundsY {
		return y, nil
	}
	y = math.Remainder(y, 2*WorldBoundsX)
	if y > WorldBoundsY {
		return WorldBoundsX - y, nil
	}
	if y < -WorldBoundsY {
		return -WorldBoundsX - y, nil
	}
	return y, nil
}

// IsAntimeridian returns whether x lies on the ±180 meridian.
func IsAntimeridian(x float64) bool {
	return math.Abs(x) == WorldBoundsX
}

// CheckCoordinate returns an error if either ordinate is not finite.
func CheckCoordinate(x, y float64) error {
	if err := checkFinite(x); err != nil {
		return err
	}
	return checkFinite(y)
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "%v is not a finite number", v)
	}
	return nil
}
