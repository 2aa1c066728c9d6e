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

// Package dateline rewrites geometries crossing the antimeridian into a
// contiguous x range extending east of +180, so that planar algorithms can
// operate on them.
package dateline

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/geo"
	"github.com/twpayne/go-geom"
)

// ErrUnwrapRingNotClosed is returned when a ring crosses the dateline an odd
// number of times, e.g. a ring around a pole, and so cannot be unwrapped into
// a closed ring.
var ErrUnwrapRingNotClosed = errors.New("ring does not close after unwrapping the dateline")

// Change describes what Unwrap did to a geometry.
type Change struct {
	// Crossings is the number of dateline crossings detected, summed over
	// every ring and line. Components that end up inside the world bounds
	// contribute nothing.
	Crossings int
	// Shifted is set if any coordinate was modified.
	Shifted bool
}

// Changed returns whether the owner of the geometry must invalidate anything
// derived from its coordinates.
func (c Change) Changed() bool {
	return c.Shifted
}

// Unwrap unwraps t in place using the geographic world bounds.
func Unwrap(t geom.T) (Change, error) {
	return UnwrapWithBounds(t, geo.WorldBoundsX)
}

// component is a polygon or a line as a list of [start, end) ranges into the
// flat coordinates; the first range of a polygon is its shell.
type component struct {
	ranges [][2]int
	closed bool
}

func components(t geom.T) ([]component, error) {
	switch t := t.(type) {
	case *geom.Point, *geom.MultiPoint:
		return nil, nil
	case *geom.LineString:
		if t.Empty() {
			return nil, nil
		}
		return []component{{ranges: [][2]int{{0, len(t.FlatCoords())}}}}, nil
	case *geom.MultiLineString:
		var ret []component
		start := 0
		for _, end := range t.Ends() {
			if end > start {
				ret = append(ret, component{ranges: [][2]int{{start, end}}})
			}
			start = end
		}
		return ret, nil
	case *geom.Polygon:
		if c, ok := polygonComponent(0, t.Ends()); ok {
			return []component{c}, nil
		}
		return nil, nil
	case *geom.MultiPolygon:
		var ret []component
		start := 0
		for _, ends := range t.Endss() {
			if c, ok := polygonComponent(start, ends); ok {
				ret = append(ret, c)
			}
			if len(ends) > 0 {
				start = ends[len(ends)-1]
			}
		}
		return ret, nil
	default:
		return nil, errors.Newf("dateline: unsupported geometry type %T", t)
	}
}

func polygonComponent(start int, ends []int) (component, bool) {
	c := component{closed: true}
	for _, end := range ends {
		if end > start {
			c.ranges = append(c.ranges, [2]int{start, end})
		}
		start = end
	}
	return c, len(c.ranges) > 0
}

const holeSlack = 1e-9

// UnwrapWithBounds unwraps t in place for a world spanning
// [-boundsX, boundsX].
//
// Walking every ring and line, a jump of more than boundsX between
// consecutive x values is a crossing; a cumulative offset of one world width
// is then applied to the rest of the sequence. Each component is shifted so
// that its minimum x lies in [-boundsX, boundsX), and each hole so that it
// lies within the x range of its shell. On error t is left untouched.
func UnwrapWithBounds(t geom.T, boundsX float64) (Change, error) {
	comps, err := components(t)
	if err != nil {
		return Change{}, err
	}
	flat := t.FlatCoords()
	stride := t.Stride()
	work := append([]float64(nil), flat...)
	width := 2 * boundsX

	var change Change
	for _, c := range comps {
		flips := 0
		for i, r := range c.ranges {
			seq := work[r[0]:r[1]]
			n, offset := unwrapSeq(seq, stride, boundsX)
			if c.closed && offset != 0 {
				return Change{}, errors.Wrapf(ErrUnwrapRingNotClosed,
					"ring %d has %d crossings", i, n)
			}
			flips += n
		}

		shell := work[c.ranges[0][0]:c.ranges[0][1]]
		shellMin, _ := xRange(shell, stride)
		shiftX(shell, stride, -width*math.Floor((shellMin+boundsX)/width))
		shellMin, shellMax := xRange(shell, stride)

		for _, r := range c.ranges[1:] {
			hole := work[r[0]:r[1]]
			holeMin, _ := xRange(hole, stride)
			// Place the hole's minimum x in [shellMin, shellMin+width). A hole
			// touching the shell's western edge may sit a rounding step west
			// of it.
			shiftX(hole, stride, -width*math.Floor((holeMin-shellMin+holeSlack)/width))
		}

		if shellMin >= -boundsX && shellMax <= boundsX {
			flips = 0
		}
		change.Crossings += flips
	}

	for i := range flat {
		if flat[i] != work[i] {
			change.Shifted = true
			flat[i] = work[i]
		}
	}
	return change, nil
}

// unwrapSeq applies the cumulative dateline offset to a coordinate sequence
// in place. It returns the number of crossings and the offset in effect at the
// end of the sequence.
func unwrapSeq(seq []float64, stride int, boundsX float64) (int, float64) {
	if len(seq) < 2*stride {
		return 0, 0
	}
	flips := 0
	offset := 0.0
	prev := seq[0]
	for i := stride; i < len(seq); i += stride {
		orig := seq[i]
		switch diff := orig - prev; {
		case diff > boundsX:
			offset -= 2 * boundsX
			flips++
		case diff < -boundsX:
			offset += 2 * boundsX
			flips++
		}
		prev = orig
		seq[i] = orig + offset
	}
	return flips, offset
}

func xRange(seq []float64, stride int) (float64, float64) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < len(seq); i += stride {
		minX = math.Min(minX, seq[i])
		maxX = math.Max(maxX, seq[i])
	}
	return minX, maxX
}

func shiftX(seq []float64, stride int, dx float64) {
	if dx == 0 {
		return
	}
	for i := 0; i < len(seq); i += stride {
		seq[i] += dx
	}
}
