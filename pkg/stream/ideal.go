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

	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/order"
)

// ParseIdeal parses "{" (ws* polynomial (ws* "," ws* polynomial)*)? ws*
// "}" over n variables under ord.
func ParseIdeal(p *Parser, n uint, ord order.Order) (*ideal.Ideal, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	id := ideal.New(n, ord)

	p.SkipWhitespace()

	if r, ok := p.Peek(); ok && r == '}' {
		p.index++
		return id, nil
	}

	for {
		p.SkipWhitespace()

		poly, err := ParsePolynomial(p, n, ord)
		if err != nil {
			return nil, err
		}

		id.Insert(poly)

		p.SkipWhitespace()

		r, ok := p.Peek()
		if !ok {
			return nil, p.error("unexpected end of input inside ideal, expected ',' or '}'")
		}

		if r == ',' {
			p.index++
			continue
		}

		if r == '}' {
			p.index++
			break
		}

		return nil, p.error("expected ',' or '}'")
	}

	return id, nil
}

// WriteIdeal renders id per the grammar: "{" polys joined by ", " "}".
func WriteIdeal(id *ideal.Ideal) string {
	members := id.Members()
	parts := make([]string, len(members))

	for i, p := range members {
		parts[i] = WritePolynomial(p)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
