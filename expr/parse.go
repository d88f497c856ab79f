// Copyright (C) 2024 joinengine contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports a lexical or structural problem found while
// Parsing a query file. Pos is a byte offset into the input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse error at byte %d: %s", e.Pos, e.Msg)
}

// Parse reads a single expression written in the textual form emitted
// by ToString for dynamic arguments — Head(arg, arg, ...), where an
// arg is itself an expression, a quoted string, a bare identifier
// (Symbol), true/false (Bool), or a number (Int or Float, the latter
// recognized by a decimal point). It does not parse the Span-rendered
// form ToString produces for typed spans; queries that need typed
// column data should spell it as a bare List(v0, v1, ...) argument
// sequence instead.
func Parse(s string) (Node, error) {
	p := &parser{src: s}
	p.skipSpace()
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, &ParseError{Pos: p.pos, Msg: "unexpected trailing input"}
	}
	return n, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseNode() (Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, &ParseError{Pos: p.pos, Msg: "unexpected end of input"}
	}
	switch {
	case c == '"':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdentOrCall()
	default:
		return nil, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) parseString() (Node, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for {
		c, ok := p.peek()
		if !ok {
			return nil, &ParseError{Pos: start, Msg: "unterminated string"}
		}
		if c == '"' {
			p.pos++
			return Str(b.String()), nil
		}
		if c == '\\' && p.pos+1 < len(p.src) {
			p.pos++
			c, _ = p.peek()
		}
		b.WriteByte(c)
		p.pos++
	}
}

func (p *parser) parseNumber() (Node, error) {
	start := p.pos
	if c, _ := p.peek(); c == '-' {
		p.pos++
	}
	isFloat := false
	for {
		c, ok := p.peek()
		if !ok {
			break
		}
		if c == '.' {
			isFloat = true
			p.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	text := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Pos: start, Msg: err.Error()}
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &ParseError{Pos: start, Msg: err.Error()}
	}
	return Int(i), nil
}

func (p *parser) parseIdentOrCall() (Node, error) {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || !isIdentCont(c) {
			break
		}
		p.pos++
	}
	ident := p.src[start:p.pos]

	switch ident {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}

	p.skipSpace()
	if c, ok := p.peek(); !ok || c != '(' {
		return Symbol(ident), nil
	}
	p.pos++ // '('

	var args []Node
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ')' {
		p.pos++
		return &Complex{Head: ident, Args: args}, nil
	}
	for {
		p.skipSpace()
		arg, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, &ParseError{Pos: p.pos, Msg: "unterminated argument list"}
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ')' {
			p.pos++
			break
		}
		return nil, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("expected ',' or ')', got %q", c)}
	}
	return &Complex{Head: ident, Args: args}, nil
}
