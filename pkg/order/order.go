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

// Package order provides monomial-order strategies over monom.Monom: lex,
// grlex, grevlex, a general matrix ("alex") order, and the reversed,
// graded and product combinators that build new orders out of existing
// ones.
package order

import (
	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/monom"
)

// Order totally orders monomials over a fixed number of variables in a
// way compatible with multiplication (a<=b implies ac<=bc for every
// monomial c), and can enumerate that order via Next.
type Order interface {
	// N returns the number of variables this order is defined over.
	N() uint
	// Compare returns -1, 0 or +1 as a compares less than, equal to, or
	// greater than b.
	Compare(a, b *monom.Monom) int
	// Next advances m to its successor under this order, returning false
	// (and resetting m to the minimum) when m was maximal. Orders with no
	// well-defined enumeration (e.g. Graded) always return false.
	Next(m *monom.Monom) bool
	// Equals reports whether other is the same order with the same
	// parameters (not merely one that happens to agree on some inputs).
	Equals(other Order) bool
}

// Lex orders monomials by reading the exponent vector right to left: the
// variable of largest index is most significant. This is exactly
// bitword.Word's integer comparison, since index 0 is its least
// significant bit.
type Lex struct {
	n uint
}

// NewLex returns the lexicographic order over n variables.
func NewLex(n uint) *Lex {
	return &Lex{n: n}
}

// N implements Order.
func (o *Lex) N() uint { return o.n }

// Compare implements Order.
func (o *Lex) Compare(a, b *monom.Monom) int {
	return a.Word().Compare(b.Word())
}

// Next implements Order.
func (o *Lex) Next(m *monom.Monom) bool {
	return m.Word().Next()
}

// Equals implements Order.
func (o *Lex) Equals(other Order) bool {
	o2, ok := other.(*Lex)
	return ok && o2.n == o.n
}

// Grlex orders monomials by total degree first, breaking ties with Lex.
type Grlex struct {
	n uint
}

// NewGrlex returns the graded-lex order over n variables.
func NewGrlex(n uint) *Grlex {
	return &Grlex{n: n}
}

// N implements Order.
func (o *Grlex) N() uint { return o.n }

// Compare implements Order.
func (o *Grlex) Compare(a, b *monom.Monom) int {
	if da, db := a.Deg(), b.Deg(); da != db {
		if da < db {
			return -1
		}

		return 1
	}

	return a.Word().Compare(b.Word())
}

// Next implements Order. Within a fixed degree class, successive
// monomials in increasing integer value are exactly the co-lexicographic
// weight-preserving successors bitword.Word.NextWeight enumerates, so
// degree classes are walked with NextWeight and, on exhausting one class,
// the next degree's minimal combination is loaded.
func (o *Grlex) Next(m *monom.Monom) bool {
	w := m.Word()
	deg := w.Weight()

	if deg == 0 {
		if o.n == 0 {
			return false
		}

		w.Assign(bitword.MinCombination(o.n, 1))

		return true
	}

	if w.NextWeight() {
		return true
	}
	// Exhausted this degree class; advance to the next one.
	if deg == o.n {
		w.Assign(bitword.New(o.n))
		return false
	}

	w.Assign(bitword.MinCombination(o.n, deg+1))

	return true
}

// Equals implements Order.
func (o *Grlex) Equals(other Order) bool {
	o2, ok := other.(*Grlex)
	return ok && o2.n == o.n
}

// Grevlex orders monomials by total degree first; among monomials of
// equal degree, the larger one is whichever has a smaller exponent at
// the smallest-index variable where they differ (equivalently: reading
// from variable 0 upward, the first point of disagreement favours the
// monomial NOT containing that variable).
type Grevlex struct {
	n uint
}

// NewGrevlex returns the graded-reverse-lex order over n variables.
func NewGrevlex(n uint) *Grevlex {
	return &Grevlex{n: n}
}

// N implements Order.
func (o *Grevlex) N() uint { return o.n }

// Compare implements Order.
func (o *Grevlex) Compare(a, b *monom.Monom) int {
	if da, db := a.Deg(), b.Deg(); da != db {
		if da < db {
			return -1
		}

		return 1
	}

	for i := uint(0); i < o.n; i++ {
		ai, bi := hasVar(a, i), hasVar(b, i)
		if ai == bi {
			continue
		}
		// Differ at i: the monomial without x_i is the larger one.
		if ai {
			return -1
		}

		return 1
	}

	return 0
}

// hasVar reports whether m holds variable i, treating m as zero-extended
// beyond its own width (matching bitword.Word.Equals/Compare semantics).
func hasVar(m *monom.Monom, i uint) bool {
	if i >= m.Word().N() {
		return false
	}

	return m.Has(i)
}

// Next implements Order. Grevlex has no simple closed-form successor
// distinct from brute enumeration of the degree class by Grevlex.Compare;
// since N is expected small in practice (spec scenarios run to N≈20 for
// Buchberger sessions), Next scans the current degree class.
func (o *Grevlex) Next(m *monom.Monom) bool {
	w := m.Word()
	deg := w.Weight()

	if deg == 0 {
		if o.n == 0 {
			return false
		}

		w.Assign(bitword.MinCombination(o.n, 1))

		return true
	}
	// Find the immediate grevlex-successor within the same degree class by
	// brute force over all C(n,deg) combinations, starting from the
	// current one.
	best := (*bitword.Word)(nil)

	cur := bitword.MinCombination(o.n, deg)
	for {
		if o.Compare(monom.FromWord(cur), m) > 0 && o.betterCandidate(best, cur, w) {
			best = cur.Clone()
		}

		if !cur.NextWeight() {
			break
		}
	}

	if best != nil {
		w.Assign(best)
		return true
	}

	if deg == o.n {
		w.Assign(bitword.New(o.n))
		return false
	}

	w.Assign(bitword.MinCombination(o.n, deg+1))

	return true
}

// betterCandidate reports whether cand is strictly closer to, yet still
// above, cur under this order than best is (best may be nil).
func (o *Grevlex) betterCandidate(best, cand, cur *bitword.Word) bool {
	if best == nil {
		return true
	}

	return o.Compare(monom.FromWord(cand), monom.FromWord(best)) < 0
}

// Equals implements Order.
func (o *Grevlex) Equals(other Order) bool {
	o2, ok := other.(*Grevlex)
	return ok && o2.n == o.n
}

// Reversed wraps an order O, comparing after reversing the exponent
// vectors of its operands.
type Reversed struct {
	base Order
	n    uint
}

// NewReversed wraps base so comparisons happen on bit-reversed operands.
func NewReversed(base Order) *Reversed {
	return &Reversed{base: base, n: base.N()}
}

// N implements Order.
func (o *Reversed) N() uint { return o.n }

// Compare implements Order.
func (o *Reversed) Compare(a, b *monom.Monom) int {
	ra := monom.FromWord(a.Word().Reverse())
	rb := monom.FromWord(b.Word().Reverse())

	return o.base.Compare(ra, rb)
}

// Next implements Order.
func (o *Reversed) Next(m *monom.Monom) bool {
	r := monom.FromWord(m.Word().Reverse())
	ok := o.base.Next(r)
	m.Word().Assign(r.Word().Reverse())

	return ok
}

// Equals implements Order.
func (o *Reversed) Equals(other Order) bool {
	o2, ok := other.(*Reversed)
	return ok && o2.n == o.n && o.base.Equals(o2.base)
}

// Graded wraps an order O, comparing total degree first and falling back
// to O on ties. Unlike Grlex this is a general combinator over any base
// order, not just Lex; it defines no successor (Next always returns
// false, per spec: "graded(O): ... no next").
type Graded struct {
	base Order
	n    uint
}

// NewGraded wraps base with a degree-first comparison.
func NewGraded(base Order) *Graded {
	return &Graded{base: base, n: base.N()}
}

// N implements Order.
func (o *Graded) N() uint { return o.n }

// Compare implements Order.
func (o *Graded) Compare(a, b *monom.Monom) int {
	if da, db := a.Deg(), b.Deg(); da != db {
		if da < db {
			return -1
		}

		return 1
	}

	return o.base.Compare(a, b)
}

// Next implements Order. Graded orders define no enumeration.
func (o *Graded) Next(m *monom.Monom) bool {
	return false
}

// Equals implements Order.
func (o *Graded) Equals(other Order) bool {
	o2, ok := other.(*Graded)
	return ok && o2.n == o.n && o.base.Equals(o2.base)
}

// ProductLR is the left-right product order over N1+N2 variables: the
// left N1-prefix is compared under O1 first, ties broken by the right
// N2-suffix under O2. It is an elimination order favouring the left
// block.
type ProductLR struct {
	o1, o2 Order
	n1, n2 uint
}

// NewProductLR builds the left-right product of o1 (over n1 variables,
// indices [0,n1)) and o2 (over n2 variables, indices [n1,n1+n2)).
func NewProductLR(o1 Order, n1 uint, o2 Order, n2 uint) *ProductLR {
	return &ProductLR{o1: o1, o2: o2, n1: n1, n2: n2}
}

// N implements Order.
func (o *ProductLR) N() uint { return o.n1 + o.n2 }

func splitWord(w *bitword.Word, n1, n2 uint) (*bitword.Word, *bitword.Word) {
	lo := w.GetLo(n1)
	hi := bitword.New(n2)

	for i := uint(0); i < n2; i++ {
		hi.Set(i, w.Test(n1+i))
	}

	return lo, hi
}

// Compare implements Order.
func (o *ProductLR) Compare(a, b *monom.Monom) int {
	al, ah := splitWord(a.Word(), o.n1, o.n2)
	bl, bh := splitWord(b.Word(), o.n1, o.n2)

	if c := o.o1.Compare(monom.FromWord(al), monom.FromWord(bl)); c != 0 {
		return c
	}

	return o.o2.Compare(monom.FromWord(ah), monom.FromWord(bh))
}

// Next implements Order: advances the right block first, carrying into
// the left block on wraparound, matching the precedence used by Compare.
func (o *ProductLR) Next(m *monom.Monom) bool {
	w := m.Word()
	lo, hi := splitWord(w, o.n1, o.n2)

	loM, hiM := monom.FromWord(lo), monom.FromWord(hi)

	if o.o2.Next(hiM) {
		assignBlocks(w, loM.Word(), hiM.Word(), o.n1, o.n2)
		return true
	}

	ok := o.o1.Next(loM)
	assignBlocks(w, loM.Word(), hiM.Word(), o.n1, o.n2)

	return ok
}

func assignBlocks(dst *bitword.Word, lo, hi *bitword.Word, n1, n2 uint) {
	zero := bitword.New(dst.N())
	dst.Assign(zero)

	for i := uint(0); i < n1; i++ {
		dst.Set(i, lo.Test(i))
	}

	for i := uint(0); i < n2; i++ {
		dst.Set(n1+i, hi.Test(i))
	}
}

// Equals implements Order.
func (o *ProductLR) Equals(other Order) bool {
	o2, ok := other.(*ProductLR)
	return ok && o.n1 == o2.n1 && o.n2 == o2.n2 && o.o1.Equals(o2.o1) && o.o2.Equals(o2.o2)
}

// ProductRL is the right-left product order: symmetric to ProductLR,
// comparing the right block first and breaking ties on the left.
type ProductRL struct {
	o1, o2 Order
	n1, n2 uint
}

// NewProductRL builds the right-left product of o1 (over n1 variables,
// indices [0,n1)) and o2 (over n2 variables, indices [n1,n1+n2)), with
// the right block (o2) dominating.
func NewProductRL(o1 Order, n1 uint, o2 Order, n2 uint) *ProductRL {
	return &ProductRL{o1: o1, o2: o2, n1: n1, n2: n2}
}

// N implements Order.
func (o *ProductRL) N() uint { return o.n1 + o.n2 }

// Compare implements Order.
func (o *ProductRL) Compare(a, b *monom.Monom) int {
	al, ah := splitWord(a.Word(), o.n1, o.n2)
	bl, bh := splitWord(b.Word(), o.n1, o.n2)

	if c := o.o2.Compare(monom.FromWord(ah), monom.FromWord(bh)); c != 0 {
		return c
	}

	return o.o1.Compare(monom.FromWord(al), monom.FromWord(bl))
}

// Next implements Order: advances the left block first, carrying into
// the right block on wraparound, matching the precedence used by
// Compare.
func (o *ProductRL) Next(m *monom.Monom) bool {
	w := m.Word()
	lo, hi := splitWord(w, o.n1, o.n2)

	loM, hiM := monom.FromWord(lo), monom.FromWord(hi)

	if o.o1.Next(loM) {
		assignBlocks(w, loM.Word(), hiM.Word(), o.n1, o.n2)
		return true
	}

	ok := o.o2.Next(hiM)
	assignBlocks(w, loM.Word(), hiM.Word(), o.n1, o.n2)

	return ok
}

// Equals implements Order.
func (o *ProductRL) Equals(other Order) bool {
	o2, ok := other.(*ProductRL)
	return ok && o.n1 == o2.n1 && o.n2 == o2.n2 && o.o1.Equals(o2.o1) && o.o2.Equals(o2.o2)
}
