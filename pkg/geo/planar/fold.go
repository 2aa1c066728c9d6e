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
	"github.com/nknize/spatial4j/pkg/geo"
	sfgeom "github.com/peterstace/simplefeatures/geom"
	"github.com/twpayne/go-geom"
)

// FoldX maps t into the strip minX <= x <= minX+period. Parts of t east of
// the strip are moved west by one period. Parts already inside the strip are
// kept as they are. The shape must not extend beyond minX+2*period.
func FoldX(t geom.T, minX, period float64) (geom.T, error) {
	g, err := toSF(t)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := g.Envelope().MinMaxXYs()
	if !ok || (lo.X >= minX && hi.X <= minX+period) {
		return t, nil
	}
	strip := sfgeom.NewEnvelope(
		sfgeom.XY{X: minX, Y: lo.Y - 1},
		sfgeom.XY{X: minX + period, Y: hi.Y + 1},
	).AsGeometry()
	inside, err := sfgeom.Intersection(g, strip)
	if err != nil {
		return nil, errors.Wrap(err, "clipping to the strip")
	}
	shifted, err := geo.ShiftX(t, -period)
	if err != nil {
		return nil, err
	}
	west, err := toSF(shifted)
	if err != nil {
		return nil, err
	}
	wrapped, err := sfgeom.Intersection(west, strip)
	if err != nil {
		return nil, errors.Wrap(err, "clipping the wrapped part to the strip")
	}
	folded, err := sfgeom.Union(inside, wrapped)
	if err != nil {
		return nil, errors.Wrap(err, "joining the folded parts")
	}
	return fromSF(folded)
}
