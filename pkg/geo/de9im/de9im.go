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

// Package de9im holds DE-9IM intersection matrices and the predicates
// derived from them.
package de9im

import (
	"strings"

	"github.com/cockroachdb/errors"
	sfgeom "github.com/peterstace/simplefeatures/geom"
)

// Matrix is a DE-9IM intersection matrix in its nine character form, e.g.
// "FF2F11212". Rows are the interior, boundary and exterior of the first
// geometry; columns are the same for the second.
type Matrix string

// ParseMatrix parses a nine character matrix made of F, 0, 1 and 2.
func ParseMatrix(s string) (Matrix, error) {
	if len(s) != 9 {
		return "", errors.Newf("relation %q should be of length 9", s)
	}
	for _, c := range s {
		switch c {
		case 'F', '0', '1', '2':
		default:
			return "", errors.Newf("unrecognized relation character: %c", c)
		}
	}
	return Matrix(s), nil
}

func (m Matrix) String() string {
	return string(m)
}

// Transpose swaps the roles of the two geometries.
func (m Matrix) Transpose() Matrix {
	s := string(m)
	if len(s) != 9 {
		return m
	}
	return Matrix([]byte{s[0], s[3], s[6], s[1], s[4], s[7], s[2], s[5], s[8]})
}

// Matches reports whether the matrix matches the given pattern.
func (m Matrix) Matches(pattern string) (bool, error) {
	return MatchesDE9IM(string(m), pattern)
}

// MatchesDE9IM checks whether the given DE-9IM relation matches the pattern.
// Pattern characters are case-insensitive.
func MatchesDE9IM(relation string, pattern string) (bool, error) {
	if len(relation) != 9 {
		return false, errors.Newf("relation %q should be of length 9", relation)
	}
	if len(pattern) != 9 {
		return false, errors.Newf("pattern %q should be of length 9", pattern)
	}
	for _, c := range pattern {
		switch c {
		case 'T', 't', 'F', 'f', '*', '0', '1', '2':
		default:
			return false, errors.Newf("unrecognized pattern character: %c", c)
		}
	}
	ok, err := sfgeom.RelateMatches(strings.ToUpper(relation), strings.ToUpper(pattern))
	if err != nil {
		return false, errors.Wrapf(err, "matching %q against %q", relation, pattern)
	}
	return ok, nil
}

func (m Matrix) matchesAny(patterns ...string) bool {
	for _, p := range patterns {
		if ok, err := m.Matches(p); err == nil && ok {
			return true
		}
	}
	return false
}

// IsDisjoint reports whether the geometries share no point.
func (m Matrix) IsDisjoint() bool {
	return m.matchesAny("FF*FF****")
}

// IsCovers reports whether no point of the second geometry lies outside the
// first.
func (m Matrix) IsCovers() bool {
	return m.matchesAny("T*****FF*", "*T****FF*", "***T**FF*", "****T*FF*")
}

// IsCoveredBy reports whether no point of the first geometry lies outside the
// second.
func (m Matrix) IsCoveredBy() bool {
	return m.matchesAny("T*F**F***", "*TF**F***", "**FT*F***", "**F*TF***")
}
