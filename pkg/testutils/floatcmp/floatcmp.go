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

// Package floatcmp provides functions for determining float values to be equal
// if they are within a tolerance. It is designed to be used in tests.
package floatcmp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	// CloseFraction can be used to set a "close" tolerance for the fraction
	// argument of functions in this package. It should typically be used with
	// the CloseMargin constant for the margin argument.
	CloseFraction float64 = 1e-14

	// CloseMargin can be used to set a "close" tolerance for the margin
	// argument of functions in this package. It should typically be used with
	// the CloseFraction constant for the fraction argument.
	//
	// It is set to the square of CloseFraction so it is only used when the
	// values are very close to zero.
	CloseMargin float64 = CloseFraction * CloseFraction

	// DegreesFraction and DegreesMargin are looser tolerances for values
	// derived from trigonometric computations on degrees, such as geodesic
	// areas.
	DegreesFraction float64 = 1e-9
	DegreesMargin   float64 = 1e-9
)

// EqualApprox reports whether expected and actual are deeply equal with the
// following modifications for float64 and float32 types:
//
// • If both expected and actual are not NaN or infinite, they are equal within
// the larger of the relative fraction or absolute margin.
//
// • If both expected and actual are NaN, they are equal.
//
// Both fraction and margin must be non-negative.
func EqualApprox(expected interface{}, actual interface{}, fraction float64, margin float64) bool {
	return cmp.Equal(expected, actual, cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs())
}

// RequireEqualApprox fails the test with a diff if expected and actual are
// not EqualApprox.
func RequireEqualApprox(
	t testing.TB, expected interface{}, actual interface{}, fraction float64, margin float64,
) {
	t.Helper()
	opts := []cmp.Option{cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs()}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("values differ (-expected +actual):\n%s", diff)
	}
}
