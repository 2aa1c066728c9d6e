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

// Package cliflags describes the command line flags of spatial4j.
package cliflags

import "strings"

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

const usageWrapWidth = 72

// Usage returns a formatted usage string for the flag, including the
// environment variable if there is one.
func (f FlagInfo) Usage() string {
	s := "\n" + wrapDescription(f.Description)
	if f.EnvVar != "" {
		s += "\nEnvironment variable: " + f.EnvVar
	}
	return s + "\n"
}

// wrapDescription reflows s into lines of at most usageWrapWidth
// characters. Paragraphs separated by blank lines are kept.
func wrapDescription(s string) string {
	var b strings.Builder
	for i, para := range strings.Split(strings.TrimSpace(s), "\n\n") {
		if i > 0 {
			b.WriteString("\n\n")
		}
		width := 0
		for j, word := range strings.Fields(para) {
			if j > 0 {
				if width+1+len(word) > usageWrapWidth {
					b.WriteByte('\n')
					width = 0
				} else {
					b.WriteByte(' ')
					width++
				}
			}
			b.WriteString(word)
			width += len(word)
		}
	}
	return b.String()
}

// Flags shared by all commands.
var (
	Config = FlagInfo{
		Name:   "config",
		EnvVar: "SPATIAL4J_CONFIG",
		Description: `
Path to a YAML file configuring the spatial context. Flags given on the
command line override the values of the file.`,
	}

	Geo = FlagInfo{
		Name:   "geo",
		EnvVar: "SPATIAL4J_GEO",
		Description: `
Interpret coordinates as longitudes and latitudes in degrees. With
--geo=false coordinates are planar and unbounded.`,
	}

	NormWrapLongitude = FlagInfo{
		Name:   "norm-wrap-longitude",
		EnvVar: "SPATIAL4J_NORM_WRAP_LONGITUDE",
		Description: `
Normalize out of range longitudes and latitudes instead of rejecting
them.`,
	}

	DatelineRule = FlagInfo{
		Name:   "dateline-rule",
		EnvVar: "SPATIAL4J_DATELINE_RULE",
		Description: `
How geometries crossing the dateline are detected: "width180" treats edges
spanning more than 180 degrees of longitude as crossing it and "none"
keeps the coordinates as given.`,
	}

	ValidationRule = FlagInfo{
		Name:   "validation-rule",
		EnvVar: "SPATIAL4J_VALIDATION_RULE",
		Description: `
What to do with invalid geometries: "none" accepts them and "error"
rejects them.`,
	}

	Verbosity = FlagInfo{
		Name:      "verbosity",
		Shorthand: "v",
		EnvVar:    "SPATIAL4J_VERBOSITY",
		Description: `
Log verbosity. Events at or below this level are written to stderr.`,
	}
)

// Flags of the relate and distance commands.
var (
	Expect = FlagInfo{
		Name: "expect",
		Description: `
Print true or false depending on whether the shapes have the given
relation instead of printing the relation.`,
	}

	WithinKm = FlagInfo{
		Name: "within-km",
		Description: `
Print true or false depending on whether the points are at most this many
kilometers apart instead of printing the distance. Requires --geo.`,
	}
)

// Flags of the area command.
var (
	Geodesic = FlagInfo{
		Name: "geodesic",
		Description: `
Compute the approximate area on the sphere instead of the planar area of
the coordinates.`,
	}

	AreaUnit = FlagInfo{
		Name: "unit",
		Description: `
Unit of geodesic areas: "deg2" for square degrees or "km2" for square
kilometers.`,
	}
)

// Flags of the encode command.
var (
	Format = FlagInfo{
		Name:      "format",
		Shorthand: "f",
		Description: `
Output format: one of wkt, geojson, wkbhex or geohash.`,
	}

	Precision = FlagInfo{
		Name: "precision",
		Description: `
Number of decimal digits of wkt and geojson output, or the length of a
geohash. A negative value selects the default of the format.`,
	}

	ByteOrder = FlagInfo{
		Name: "byte-order",
		Description: `
Byte order of wkbhex output: "ndr" for little endian or "xdr" for big
endian.`,
	}

	IncludeBBox = FlagInfo{
		Name: "bbox",
		Description: `
Add the bounding box member to geojson output.`,
	}
)
