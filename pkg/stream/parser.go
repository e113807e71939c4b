// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package stream implements the text grammar for Monom, Polynomial,
// Ideal, BitWord and integer values: a small rune-indexed recursive
// descent reader and matching writers, so a session's ideal can be
// saved to and loaded from a plain text file.
package stream

import "fmt"

// SyntaxError reports a parse failure at a rune offset into the input.
type SyntaxError struct {
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("stream: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Parser is a minimal rune-indexed scanner over an input string.
type Parser struct {
	text  []rune
	index int
}

// NewParser returns a parser positioned at the start of text.
func NewParser(text string) *Parser {
	return &Parser{text: []rune(text)}
}

// Pos returns the current rune offset.
func (p *Parser) Pos() int {
	return p.index
}

// AtEnd reports whether the parser has consumed the entire input.
func (p *Parser) AtEnd() bool {
	return p.index >= len(p.text)
}

// Peek returns the next rune without consuming it.
func (p *Parser) Peek() (rune, bool) {
	if p.AtEnd() {
		return 0, false
	}

	return p.text[p.index], true
}

// Next consumes and returns the next rune.
func (p *Parser) Next() (rune, bool) {
	r, ok := p.Peek()
	if ok {
		p.index++
	}

	return r, ok
}

// pushBack steps the cursor back by one rune, used when a lookahead
// rune turns out not to belong to the construct being parsed.
func (p *Parser) pushBack() {
	if p.index > 0 {
		p.index--
	}
}

// error builds a SyntaxError anchored at the current position.
func (p *Parser) error(msg string) *SyntaxError {
	return &SyntaxError{Pos: p.index, Msg: msg}
}

// SkipWhitespace consumes space, tab, CR, LF and VT.
func (p *Parser) SkipWhitespace() {
	for {
		r, ok := p.Peek()
		if !ok || !isWhitespace(r) {
			return
		}

		p.index++
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// expect consumes r if it is next, reporting a SyntaxError otherwise.
func (p *Parser) expect(r rune) error {
	c, ok := p.Peek()
	if !ok || c != r {
		return p.error(fmt.Sprintf("expected %q", r))
	}

	p.index++

	return nil
}
