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
	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo/de9im"
	sfgeom "github.com/peterstace/simplefeatures/geom"
	"github.com/twpayne/go-geom"
)

// Relate returns the DE-9IM matrix of a and b.
func Relate(a, b geom.T) (de9im.Matrix, error) {
	ga, err := toSF(a)
	if err != nil {
		return "", err
	}
	gb, err := toSF(b)
	if err != nil {
		return "", err
	}
	return relateSF(ga, gb)
}

func relateSF(a, b sfgeom.Geometry) (de9im.Matrix, error) {
	s, err := sfgeom.Relate(a, b)
	if err != nil {
		return "", errors.Wrapf(err, "relating %s to %s", a.Type(), b.Type())
	}
	return de9im.ParseMatrix(s)
}
