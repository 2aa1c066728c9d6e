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
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// LexError is an error that occurs during lexing.
type LexError struct {
	expectedTokType string
	pos             int
	str             string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: invalid %s at pos %d\n%s\n%s^",
		e.expectedTokType, e.pos, e.str, strings.Repeat(" ", e.pos))
}

// ParseError is an error that occurs during parsing, which happens after lexing.
type ParseError struct {
	problem string
	pos     int
	str     string
	hint    string
}

func (e *ParseError) Error() string {
	err := fmt.Sprintf("%s at pos %d\n%s\n%s^", e.problem, e.pos, e.str, strings.Repeat(" ", e.pos))
	if e.hint != "" {
		err += fmt.Sprintf("\nHINT: %s", e.hint)
	}
	return err
}

// Constant returned by peek when the lexer reaches EOF.
const eof = 0

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokComma
	tokKeyword
	tokNum
	tokInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokComma:
		return `","`
	case tokKeyword:
		return "keyword"
	case tokNum:
		return "number"
	default:
		return "invalid token"
	}
}

type token struct {
	kind tokenKind
	pos  int
	str  string
	num  float64
}

type wktLex struct {
	line    string
	pos     int
	lastPos int
	lastErr error
}

func makeWktLex(line string) *wktLex {
	return &wktLex{line: line}
}

// lex lexes a token from the input. On error, lastErr is set and a token of
// kind tokInvalid is returned.
func (l *wktLex) lex() token {
	// Skip leading spaces.
	l.trimLeft()
	l.lastPos = l.pos

	switch c := l.peek(); c {
	case eof:
		return token{kind: tokEOF, pos: l.pos}
	case '(':
		l.next()
		return token{kind: tokLParen, pos: l.lastPos}
	case ')':
		l.next()
		return token{kind: tokRParen, pos: l.lastPos}
	case ',':
		l.next()
		return token{kind: tokComma, pos: l.lastPos}
	default:
		if unicode.IsLetter(c) {
			return l.keyword()
		} else if isNumStartRune(c) {
			return l.num()
		}
		l.next()
		l.setLexError("character")
		return token{kind: tokInvalid, pos: l.lastPos}
	}
}

func isGeometryKeyword(s string) bool {
	switch s {
	case "POINT", "LINESTRING", "POLYGON", "MULTIPOINT", "MULTILINESTRING",
		"MULTIPOLYGON", "GEOMETRYCOLLECTION":
		return true
	default:
		return false
	}
}

func isKnownKeyword(s string) bool {
	switch s {
	case "EMPTY", "ENVELOPE":
		return true
	}
	for _, suffix := range []string{"ZM", "Z", "M"} {
		if isGeometryKeyword(strings.TrimSuffix(s, suffix)) {
			return true
		}
	}
	return isGeometryKeyword(s)
}

// keyword lexes a string keyword.
func (l *wktLex) keyword() token {
	var b strings.Builder

	for {
		c := l.peek()
		if !unicode.IsLetter(c) {
			break
		}
		// Add the uppercase letter to the string builder.
		b.WriteRune(unicode.ToUpper(l.next()))
	}

	// Check for extra dimensions for geometry types, e.g. "POINT Z".
	if isGeometryKeyword(b.String()) {
		l.trimLeft()
		if unicode.ToUpper(l.peek()) == 'Z' {
			l.next()
			b.WriteRune('Z')
		}
		if unicode.ToUpper(l.peek()) == 'M' {
			l.next()
			b.WriteRune('M')
		}
	}

	s := b.String()
	if !isKnownKeyword(s) {
		l.setLexError("keyword")
		return token{kind: tokInvalid, pos: l.lastPos}
	}
	return token{kind: tokKeyword, pos: l.lastPos, str: s}
}

func isNumStartRune(r rune) bool {
	switch r {
	case '-', '+', '.':
		return true
	default:
		return unicode.IsDigit(r)
	}
}

// num lexes a number, including an optional exponent.
func (l *wktLex) num() token {
	var b strings.Builder

	for {
		c := l.peek()
		switch {
		case unicode.IsDigit(c), c == '.', c == '-', c == '+':
		case c == 'e' || c == 'E':
			b.WriteRune(l.next())
			if c := l.peek(); c == '-' || c == '+' {
				b.WriteRune(l.next())
			}
			continue
		default:
			fl, err := strconv.ParseFloat(b.String(), 64)
			if err != nil {
				l.setLexError("number")
				return token{kind: tokInvalid, pos: l.lastPos}
			}
			return token{kind: tokNum, pos: l.lastPos, str: b.String(), num: fl}
		}
		b.WriteRune(l.next())
	}
}

func (l *wktLex) peek() rune {
	if l.pos == len(l.line) {
		return eof
	}
	return rune(l.line[l.pos])
}

func (l *wktLex) next() rune {
	c := l.peek()
	if c != eof {
		l.pos++
	}
	return c
}

func (l *wktLex) trimLeft() {
	for {
		c := l.peek()
		if c == eof || !unicode.IsSpace(c) {
			break
		}
		l.next()
	}
}

func (l *wktLex) setLexError(expectedTokType string) {
	l.setError(&LexError{expectedTokType: expectedTokType, pos: l.lastPos, str: l.line})
}

func (l *wktLex) setParseError(pos int, problem string, hint string) {
	l.setError(&ParseError{
		problem: "syntax error: " + problem,
		pos:     pos,
		str:     l.line,
		hint:    hint,
	})
}

func (l *wktLex) setError(err error) {
	// The first error wins; lex errors are raised before the parser sees the
	// invalid token.
	if l.lastErr == nil {
		l.lastErr = err
	}
}
