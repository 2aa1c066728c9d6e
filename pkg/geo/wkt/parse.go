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

// Package wkt reads and writes the Well Known Text representation of the
// geometries handled by the relation engine. Only XY geometries are
// supported, plus the ENVELOPE(minX, maxX, maxY, minY) rectangle syntax.
package wkt

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
)

const xyOnlyHint = "only XY geometries are supported"

type parser struct {
	lex *wktLex
	tok token
}

func newParser(s string) *parser {
	p := &parser{lex: makeWktLex(s)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.lex()
}

// fail records a syntax error at the current token and returns the first error
// encountered while parsing.
func (p *parser) fail(problem string, hint string) error {
	p.lex.setParseError(p.tok.pos, problem, hint)
	return p.lex.lastErr
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return p.fail(fmt.Sprintf("expected %s, got %s", kind, p.tok.kind), "")
	}
	p.advance()
	return nil
}

func (p *parser) isKeyword(kw string) bool {
	return p.tok.kind == tokKeyword && p.tok.str == kw
}

func (p *parser) expectEOF() error {
	if p.tok.kind != tokEOF {
		return p.fail(fmt.Sprintf("unexpected %s after end of geometry", p.tok.kind), "")
	}
	return nil
}

// Unmarshal parses a WKT string into a geometry. Coordinates are returned as
// written; no normalization is applied.
func Unmarshal(wkt string) (geom.T, error) {
	p := newParser(wkt)
	t, err := p.parseGeometry()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) parseGeometry() (geom.T, error) {
	if p.tok.kind != tokKeyword {
		return nil, p.fail(fmt.Sprintf("expected geometry type, got %s", p.tok.kind), "")
	}
	kw := p.tok.str
	switch kw {
	case "POINT", "LINESTRING", "POLYGON", "MULTIPOINT", "MULTILINESTRING", "MULTIPOLYGON":
	case "GEOMETRYCOLLECTION":
		return nil, p.fail("unsupported geometry type GEOMETRYCOLLECTION", "")
	case "ENVELOPE":
		return nil, p.fail("ENVELOPE is not a geometry", "use UnmarshalEnvelope for rectangles")
	case "EMPTY":
		return nil, p.fail("expected geometry type, got EMPTY", "")
	default:
		return nil, p.fail(fmt.Sprintf("unsupported geometry type %s", kw), xyOnlyHint)
	}
	p.advance()

	if p.isKeyword("EMPTY") {
		p.advance()
		switch kw {
		case "POINT":
			return geom.NewPointEmpty(geom.XY), nil
		case "LINESTRING":
			return geom.NewLineString(geom.XY), nil
		case "POLYGON":
			return geom.NewPolygon(geom.XY), nil
		case "MULTIPOINT":
			return geom.NewMultiPoint(geom.XY), nil
		case "MULTILINESTRING":
			return geom.NewMultiLineString(geom.XY), nil
		default:
			return geom.NewMultiPolygon(geom.XY), nil
		}
	}

	switch kw {
	case "POINT":
		flat, err := p.parsePointText(nil)
		if err != nil {
			return nil, err
		}
		return geom.NewPointFlat(geom.XY, flat), nil
	case "LINESTRING":
		flat, err := p.parseCoordList(nil)
		if err != nil {
			return nil, err
		}
		return geom.NewLineStringFlat(geom.XY, flat), nil
	case "POLYGON":
		flat, ends, err := p.parsePolygonText(nil, nil)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygonFlat(geom.XY, flat, ends), nil
	case "MULTIPOINT":
		flat, err := p.parseMultiPointText()
		if err != nil {
			return nil, err
		}
		return geom.NewMultiPointFlat(geom.XY, flat), nil
	case "MULTILINESTRING":
		flat, ends, err := p.parsePolygonText(nil, nil)
		if err != nil {
			return nil, err
		}
		return geom.NewMultiLineStringFlat(geom.XY, flat, ends), nil
	default:
		flat, endss, err := p.parseMultiPolygonText()
		if err != nil {
			return nil, err
		}
		return geom.NewMultiPolygonFlat(geom.XY, flat, endss), nil
	}
}

// parseCoord parses an "x y" pair and appends it to flat.
func (p *parser) parseCoord(flat []float64) ([]float64, error) {
	for i := 0; i < 2; i++ {
		if p.tok.kind != tokNum {
			return nil, p.fail(fmt.Sprintf("expected number, got %s", p.tok.kind), "")
		}
		flat = append(flat, p.tok.num)
		p.advance()
	}
	if p.tok.kind == tokNum {
		pos := p.tok.pos
		n := 3
		for p.lex.lastErr == nil {
			p.advance()
			if p.tok.kind != tokNum {
				break
			}
			n++
		}
		p.lex.setParseError(
			pos,
			fmt.Sprintf("mixed dimensionality, parsed layout is XY so expecting 2 coords but got %d coords", n),
			xyOnlyHint,
		)
		return nil, p.lex.lastErr
	}
	return flat, nil
}

// parsePointText parses "(x y)".
func (p *parser) parsePointText(flat []float64) ([]float64, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	flat, err := p.parseCoord(flat)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return flat, nil
}

// parseCoordList parses "(x y, x y, ...)".
func (p *parser) parseCoordList(flat []float64) ([]float64, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	for {
		var err error
		if flat, err = p.parseCoord(flat); err != nil {
			return nil, err
		}
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return flat, nil
}

// parsePolygonText parses "((x y, ...), (x y, ...))", recording the end of
// each coordinate list in ends. It serves polygons and multilinestrings.
func (p *parser) parsePolygonText(flat []float64, ends []int) ([]float64, []int, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, nil, err
	}
	for {
		var err error
		if flat, err = p.parseCoordList(flat); err != nil {
			return nil, nil, err
		}
		ends = append(ends, len(flat))
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, nil, err
	}
	return flat, ends, nil
}

// parseMultiPointText accepts both "(x y, x y)" and "((x y), (x y))".
func (p *parser) parseMultiPointText() ([]float64, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var flat []float64
	for {
		var err error
		if p.tok.kind == tokLParen {
			flat, err = p.parsePointText(flat)
		} else {
			flat, err = p.parseCoord(flat)
		}
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return flat, nil
}

func (p *parser) parseMultiPolygonText() ([]float64, [][]int, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, nil, err
	}
	var flat []float64
	var endss [][]int
	for {
		var ends []int
		var err error
		if flat, ends, err = p.parsePolygonText(flat, nil); err != nil {
			return nil, nil, err
		}
		endss = append(endss, ends)
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, nil, err
	}
	return flat, endss, nil
}

// Envelope is an axis-aligned rectangle. MinX may be greater than MaxX for
// rectangles crossing the dateline.
type Envelope struct {
	MinX, MaxX, MinY, MaxY float64
}

// IsEnvelope returns whether s uses the ENVELOPE rectangle syntax.
func IsEnvelope(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= len("ENVELOPE") && strings.EqualFold(s[:len("ENVELOPE")], "ENVELOPE")
}

// UnmarshalEnvelope parses "ENVELOPE(minX, maxX, maxY, minY)".
func UnmarshalEnvelope(s string) (Envelope, error) {
	p := newParser(s)
	if !p.isKeyword("ENVELOPE") {
		return Envelope{}, p.fail(fmt.Sprintf("expected ENVELOPE, got %s", p.tok.kind), "")
	}
	p.advance()
	if err := p.expect(tokLParen); err != nil {
		return Envelope{}, err
	}
	var vals [4]float64
	for i := range vals {
		if i > 0 {
			if err := p.expect(tokComma); err != nil {
				return Envelope{}, err
			}
		}
		if p.tok.kind != tokNum {
			return Envelope{}, p.fail(fmt.Sprintf("expected number, got %s", p.tok.kind), "")
		}
		vals[i] = p.tok.num
		p.advance()
	}
	if err := p.expect(tokRParen); err != nil {
		return Envelope{}, err
	}
	if err := p.expectEOF(); err != nil {
		return Envelope{}, err
	}
	return Envelope{MinX: vals[0], MaxX: vals[1], MaxY: vals[2], MinY: vals[3]}, nil
}

// String returns the envelope in the syntax accepted by UnmarshalEnvelope.
func (e Envelope) String() string {
	return fmt.Sprintf("ENVELOPE(%v, %v, %v, %v)", e.MinX, e.MaxX, e.MaxY, e.MinY)
}
