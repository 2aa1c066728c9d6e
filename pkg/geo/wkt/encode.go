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

package wkt

import (
	"github.com/twpayne/go-geom"
	geomwkt "github.com/twpayne/go-geom/encoding/wkt"
)

// DefaultMaxDecimalDigits is the number of decimal digits written when the
// caller does not need a specific precision.
const DefaultMaxDecimalDigits = 15

// Marshal returns the WKT representation of t, writing at most
// maxDecimalDigits digits after the decimal point. A negative value writes
// the shortest representation that round trips.
func Marshal(t geom.T, maxDecimalDigits int) (string, error) {
	if maxDecimalDigits < 0 {
		return geomwkt.Marshal(t)
	}
	return geomwkt.Marshal(t, geomwkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
}
