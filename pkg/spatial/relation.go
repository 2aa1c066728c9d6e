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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo/de9im"
)

// SpatialRelation is the relation of a shape to another one, from the point
// of view of the first shape.
//
// CONTAINS and WITHIN are closed: they correspond to the OGC COVERS and
// COVERED BY predicates. There is no EQUALS; a shape contains an identical
// copy of itself.
type SpatialRelation int

const (
	// Disjoint means the shapes have no point in common.
	Disjoint SpatialRelation = iota
	// Intersects means the shapes share some points but neither covers the
	// other.
	Intersects
	// Within means every point of the first shape belongs to the second.
	Within
	// Contains means every point of the second shape belongs to the first.
	Contains
)

var relationNames = [...]string{
	Disjoint:   "DISJOINT",
	Intersects: "INTERSECTS",
	Within:     "WITHIN",
	Contains:   "CONTAINS",
}

func (r SpatialRelation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "UNKNOWN"
	}
	return relationNames[r]
}

// ParseSpatialRelation parses the name of a relation, case-insensitively.
func ParseSpatialRelation(s string) (SpatialRelation, error) {
	for r, name := range relationNames {
		if strings.EqualFold(s, name) {
			return SpatialRelation(r), nil
		}
	}
	return Disjoint, errors.Newf("unknown spatial relation: %q", s)
}

// Transpose returns the relation seen from the other shape.
func (r SpatialRelation) Transpose() SpatialRelation {
	switch r {
	case Within:
		return Contains
	case Contains:
		return Within
	default:
		return r
	}
}

// Intersects returns whether the shapes have at least one point in common.
func (r SpatialRelation) Intersects() bool {
	return r != Disjoint
}

// combine merges two evaluations of the same pair made in different
// longitude ranges. Each evaluation only sees real shared points, so the
// stronger relation holds: CONTAINS over WITHIN over INTERSECTS over
// DISJOINT, in declaration order.
func (r SpatialRelation) combine(other SpatialRelation) SpatialRelation {
	if other > r {
		return other
	}
	return r
}

// relationFromMatrix maps an intersection matrix to a relation.
func relationFromMatrix(m de9im.Matrix) SpatialRelation {
	switch {
	case m.IsCovers():
		return Contains
	case m.IsCoveredBy():
		return Within
	case m.IsDisjoint():
		return Disjoint
	default:
		return Intersects
	}
}
