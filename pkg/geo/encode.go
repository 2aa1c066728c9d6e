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
	"encoding/binary"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo/geopb"
	"github.com/pierrre/geohash"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"
	"github.com/twpayne/go-geom/encoding/wkbhex"
)

// DefaultGeoJSONDecimalDigits is the default number of digits coordinates in GeoJSON.
const DefaultGeoJSONDecimalDigits = 9

// DefaultWKBEncodingFormat is the byte order used when none is requested.
var DefaultWKBEncodingFormat binary.ByteOrder = binary.LittleEndian

// GeoJSONFlag controls optional members of an encoded GeoJSON geometry.
type GeoJSONFlag int

const (
	// GeoJSONFlagIncludeBBox adds the "bbox" member.
	GeoJSONFlagIncludeBBox GeoJSONFlag = 1 << (iota)

	GeoJSONFlagZero = 0
)

// GeomTToGeoJSON transforms t to GeoJSON. Coordinates are written as stored,
// so an unwrapped geometry keeps its x values beyond 180.
func GeomTToGeoJSON(t geom.T, maxDecimalDigits int, flag GeoJSONFlag) ([]byte, error) {
	options := []geojson.EncodeGeometryOption{
		geojson.EncodeGeometryWithMaxDecimalDigits(maxDecimalDigits),
	}
	if flag&GeoJSONFlagIncludeBBox != 0 && !t.Empty() {
		options = append(options, geojson.EncodeGeometryWithBBox())
	}
	return geojson.Marshal(t, options...)
}

// GeomTToWKB transforms t to WKB.
func GeomTToWKB(t geom.T, byteOrder binary.ByteOrder) ([]byte, error) {
	return wkb.Marshal(t, byteOrder, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
}

// GeomTToWKBHex transforms t to upper case hex encoded WKB.
func GeomTToWKBHex(t geom.T, byteOrder binary.ByteOrder) (string, error) {
	ret, err := wkbhex.Encode(t, byteOrder, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	return strings.ToUpper(ret), err
}

// StringToByteOrder returns the byte order of string.
func StringToByteOrder(s string) binary.ByteOrder {
	switch strings.ToLower(s) {
	case "ndr":
		return binary.LittleEndian
	case "xdr":
		return binary.BigEndian
	default:
		return DefaultWKBEncodingFormat
	}
}

// GeoHashAutoPrecision means to calculate the precision of
// BoundingBoxToGeoHash based on input.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision for GeoHashes.
// 20 is picked as doubles have 51 decimals of precision, and each base32 position
// can contain 5 bits of data. As we have two points, we use floor((2 * 51) / 5) = 20.
const GeoHashMaxPrecision = 20

// BoundingBoxToGeoHash returns the GeoHash of the center of bbox. With
// GeoHashAutoPrecision the precision is the longest one whose cell contains
// the whole box. No GeoHash cell spans the dateline, so a crossing box needs
// an explicit precision.
func BoundingBoxToGeoHash(bbox geopb.BoundingBox, p int) (string, error) {
	if bbox.IsEmpty() {
		return "", nil
	}
	if bbox.MinX < -WorldBoundsX || bbox.MaxX > WorldBoundsX ||
		bbox.MinY < -WorldBoundsY || bbox.MaxY > WorldBoundsY {
		return "", errors.Newf(
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			bbox.MinX, bbox.MinY,
			bbox.MaxX, bbox.MaxY,
		)
	}

	if p <= GeoHashAutoPrecision {
		if bbox.CrossesDateLine {
			return "", errors.WithHint(
				errors.Newf("no GeoHash cell contains %s", bbox),
				"specify a precision to hash the center of the box",
			)
		}
		p = getPrecisionForBBox(bbox)
	}
	if p > GeoHashMaxPrecision {
		p = GeoHashMaxPrecision
	}

	centerLng, err := NormalizeLongitude(bbox.MinX + bbox.Width()/2.0)
	if err != nil {
		return "", err
	}
	centerLat := bbox.MinY + bbox.Height()/2.0
	return geohash.Encode(centerLat, centerLng, p), nil
}

// getPrecisionForBBox halves the world bounding box until it no longer fits
// inside the feature bounding box, giving a precision whose cell encompasses
// the entire bounding box.
func getPrecisionForBBox(bbox geopb.BoundingBox) int {
	bitPrecision := 0

	// This is a point, for points we use the full bitPrecision.
	if bbox.MinX == bbox.MaxX && bbox.MinY == bbox.MaxY {
		return GeoHashMaxPrecision
	}

	lonMin, lonMax := -WorldBoundsX, WorldBoundsX
	latMin, latMax := -WorldBoundsY, WorldBoundsY

	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta := 0.0, 0.0, 0.0, 0.0

		if bbox.MinX > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if bbox.MaxX < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if bbox.MinY > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if bbox.MaxY < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		// Every split adds precision; no split means the box straddles the
		// current cell's midline.
		precisionDelta := 0
		if lonMinDelta != 0.0 || lonMaxDelta != 0.0 {
			lonMin += lonMinDelta
			lonMax += lonMaxDelta
			precisionDelta++
		} else {
			break
		}
		if latMinDelta != 0.0 || latMaxDelta != 0.0 {
			latMin += latMinDelta
			latMax += latMaxDelta
			precisionDelta++
		} else {
			break
		}
		bitPrecision += precisionDelta
	}
	// Each character can represent 5 bits of bitPrecision.
	return bitPrecision / 5
}
