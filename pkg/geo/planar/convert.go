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

// Package planar computes the planar topology of go-geom shapes. The work is
// done by simplefeatures; shapes cross over as WKB.
package planar

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo"
	sfgeom "github.com/peterstace/simplefeatures/geom"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

func toSF(t geom.T) (sfgeom.Geometry, error) {
	b, err := geo.GeomTToWKB(t, binary.LittleEndian)
	if err != nil {
		return sfgeom.Geometry{}, errors.Wrapf(err, "encoding %s", geo.ShapeTypeName(t))
	}
	g, err := sfgeom.UnmarshalWKB(b, sfgeom.NoValidate{})
	if err != nil {
		return sfgeom.Geometry{}, errors.Wrapf(err, "decoding %s", geo.ShapeTypeName(t))
	}
	return g, nil
}

func fromSF(g sfgeom.Geometry) (geom.T, error) {
	if g.IsEmpty() {
		return geom.NewGeometryCollection(), nil
	}
	t, err := wkb.Unmarshal(g.AsBinary())
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", g.Type())
	}
	return t, nil
}
