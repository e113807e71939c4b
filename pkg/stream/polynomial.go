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

package stream

import (
	"strings"

	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
)

// isBareZero reports whether the parser is sitting on a standalone "0"
// token (not the start of some longer digit run, which the grammar
// never produces but a malformed input might).
func isBareZero(p *Parser) bool {
	r, ok := p.Peek()
	if !ok || r != '0' {
		return false
	}

	nxt := p.index + 1

	return nxt >= len(p.text) || !isDigit(p.text[nxt])
}

// ParsePolynomial parses a polynomial: "0", or a monom followed by zero
// or more "+ (monom|0)" terms, over n variables under ord.
func ParsePolynomial(p *Parser, n uint, ord order.Order) (*poly.Polynomial, error) {
	p.SkipWhitespace()

	if isBareZero(p) {
		p.index++
		return poly.New(ord), nil
	}

	result := poly.New(ord)

	m, err := ParseMonom(p, n)
	if err != nil {
		return nil, err
	}

	result.SymDiffMonom(m)

	for {
		save := p.index
		p.SkipWhitespace()

		r, ok := p.Peek()
		if !ok || r != '+' {
			p.index = save
			break
		}

		p.index++
		p.SkipWhitespace()

		if isBareZero(p) {
			p.index++
			continue
		}

		m, err := ParseMonom(p, n)
		if err != nil {
			return nil, err
		}

		result.SymDiffMonom(m)
	}

	return result, nil
}

// WritePolynomial renders p per the grammar: "0" if empty, else its
// terms (in descending order, leading monomial first) joined by " + ".
func WritePolynomial(p *poly.Polynomial) string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}

	parts := make([]string, len(terms))
	for i, m := range terms {
		parts[i] = WriteMonom(m)
	}

	return strings.Join(parts, " + ")
}
