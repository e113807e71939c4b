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

package buchberger

import (
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/poly"
)

// location identifies where one side of a CritPair's polynomial lives:
// in the live basis, or in the reserve list (the r-criterion moves a
// basis element to reserve without invalidating pairs that reference
// it).
type location int

const (
	locBasis location = iota
	locReserve
)

type ref struct {
	loc location
	idx int
}

// CritPair is a pending S-polynomial. It describes either a field
// equation x_v^2-x_v paired with poly2, or a pair of two basis/reserve
// polynomials poly1, poly2. poly2 is always the newer basis element.
type CritPair struct {
	fieldVar  uint
	isFieldEq bool
	ref1      ref
	ref2      ref
	lm1       *monom.Monom
	lm2       *monom.Monom
	lcm       *monom.Monom
	// isRPair marks a pair generated by the r-criterion: its older side
	// lives in reserve, not the live basis, and it bypasses Criteria B/C.
	isRPair bool
}

// LM1 returns the leading monomial of the pair's older operand: for a
// field-equation pair this is the single-variable monomial x_v.
func (p *CritPair) LM1() *monom.Monom { return p.lm1 }

// LM2 returns the leading monomial of the pair's newer operand.
func (p *CritPair) LM2() *monom.Monom { return p.lm2 }

// Lcm returns lcm(LM1,LM2).
func (p *CritPair) Lcm() *monom.Monom { return p.lcm }

// IsFieldEquation reports whether this pair's older side is a field
// equation x_v^2-x_v rather than a basis polynomial.
func (p *CritPair) IsFieldEquation() bool { return p.isFieldEq }

// isRPairShape reports the structural r-pair condition used by
// Criterion A: LM(poly2) | LM(poly1), independent of how the pair was
// created.
func (p *CritPair) isRPairShape() bool {
	return p.lm2.Divides(p.lm1)
}

// equalsKey reports whether two pairs share the same (variable-or-none,
// lcm) identity, per spec's pair-equality rule.
func (p *CritPair) equalsKey(o *CritPair) bool {
	if p.isFieldEq != o.isFieldEq {
		return false
	}

	if p.isFieldEq && p.fieldVar != o.fieldVar {
		return false
	}

	return p.lcm.Equals(o.lcm)
}

// dividesLcm reports whether p's lcm divides o's lcm, honouring the
// convention that a field-equation pair with variable v only divides
// another pair whose field variable is also v.
func (p *CritPair) dividesLcm(o *CritPair) bool {
	if p.isFieldEq && (!o.isFieldEq || p.fieldVar != o.fieldVar) {
		return false
	}

	return p.lcm.Divides(o.lcm)
}

func fieldEqLM(n uint, v uint) *monom.Monom {
	m := monom.New(n)
	m.Word().Set(v, true)

	return m
}

// sPoly forms the S-polynomial this pair describes, given the resolver
// closures to turn a ref into a live *poly.Polynomial.
func (p *CritPair) sPoly(get func(ref) *poly.Polynomial) *poly.Polynomial {
	g := get(p.ref2)

	if p.isFieldEq {
		return poly.SPolyFieldEquation(p.fieldVar, g)
	}

	f := get(p.ref1)

	return poly.SPoly(f, g)
}
