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
	"fmt"
	"strings"

	"github.com/agievich/GF2/pkg/monom"
)

// ParseVar parses a single "x<digits>" token, requiring the resulting
// index to be < n.
func ParseVar(p *Parser, n uint) (uint, error) {
	if err := p.expect('x'); err != nil {
		return 0, p.error("expected variable, e.g. x3")
	}

	start := p.index

	for {
		r, ok := p.Peek()
		if !ok || !isDigit(r) {
			break
		}

		p.index++
	}

	if p.index == start {
		return 0, p.error("expected decimal digits after 'x'")
	}

	v := uint(0)
	for _, r := range p.text[start:p.index] {
		v = v*10 + uint(r-'0')
	}

	if v >= n {
		return 0, p.error(fmt.Sprintf("variable index %d out of range [0,%d)", v, n))
	}

	return v, nil
}

// ParseMonom parses "1" (the constant monomial) or a whitespace-
// separated run of variables, over n variables.
func ParseMonom(p *Parser, n uint) (*monom.Monom, error) {
	r, ok := p.Peek()
	if ok && r == '1' {
		nxt := p.index + 1
		if nxt >= len(p.text) || !isDigit(p.text[nxt]) {
			p.index++
			return monom.New(n), nil
		}
	}

	m := monom.New(n)

	v, err := ParseVar(p, n)
	if err != nil {
		return nil, err
	}

	m.Word().Set(v, true)

	for {
		save := p.index
		p.SkipWhitespace()

		r, ok := p.Peek()
		if !ok || r != 'x' {
			p.index = save
			break
		}

		v, err := ParseVar(p, n)
		if err != nil {
			return nil, err
		}

		m.Word().Set(v, true)
	}

	return m, nil
}

// WriteMonom renders m per the grammar: "1" for the constant monomial,
// else its variables in increasing index order separated by a space.
func WriteMonom(m *monom.Monom) string {
	if m.IsOne() {
		return "1"
	}

	vars := m.Vars()
	parts := make([]string, len(vars))

	for i, v := range vars {
		parts[i] = fmt.Sprintf("x%d", v)
	}

	return strings.Join(parts, " ")
}
