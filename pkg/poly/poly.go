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

// Package poly implements Polynomial, an order-sorted sum of distinct
// monomials over F2[x0,...,x_{n-1}]/(xi^2-xi), and Geobucket, the
// amortised accumulator used to make repeated
// "pop leading term, subtract a multiple" reduction loops fast.
package poly

import (
	"sort"
	"strings"

	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
)

// Polynomial is a strictly-decreasing (under its Order), duplicate-free
// sequence of monomials -- a sum over F2. The zero polynomial is empty.
type Polynomial struct {
	ord   order.Order
	terms []*monom.Monom
}

// New returns the zero polynomial under ord.
func New(ord order.Order) *Polynomial {
	return &Polynomial{ord: ord}
}

// FromMonoms builds a polynomial from a set of monomials, normalising
// (sorting, descending, and cancelling any duplicate pair since addition
// is over F2).
func FromMonoms(ord order.Order, ms ...*monom.Monom) *Polynomial {
	p := New(ord)
	for _, m := range ms {
		p.symDiffMonom(m)
	}

	return p
}

// Order returns the order this polynomial is sorted under.
func (p *Polynomial) Order() order.Order {
	return p.ord
}

// IsEmpty reports whether this is the zero polynomial.
func (p *Polynomial) IsEmpty() bool {
	return len(p.terms) == 0
}

// Size returns the number of monomials (the Hamming weight of the
// polynomial as a sum).
func (p *Polynomial) Size() int {
	return len(p.terms)
}

// Degree returns the maximum monomial degree, or -1 if empty.
func (p *Polynomial) Degree() int {
	best := -1

	for _, m := range p.terms {
		if d := int(m.Deg()); d > best {
			best = d
		}
	}

	return best
}

// LM returns the leading monomial (the first term, since terms are
// stored in descending order) and whether the polynomial is non-empty.
func (p *Polynomial) LM() (*monom.Monom, bool) {
	if len(p.terms) == 0 {
		return nil, false
	}

	return p.terms[0], true
}

// PopLM removes and returns the leading monomial.
func (p *Polynomial) PopLM() (*monom.Monom, bool) {
	m, ok := p.LM()
	if !ok {
		return nil, false
	}

	p.terms = p.terms[1:]

	return m, true
}

// Terms returns the underlying descending monomial sequence. Callers
// must not mutate the returned slice.
func (p *Polynomial) Terms() []*monom.Monom {
	return p.terms
}

// Clone returns an independent deep copy.
func (p *Polynomial) Clone() *Polynomial {
	terms := make([]*monom.Monom, len(p.terms))
	for i, m := range p.terms {
		terms[i] = m.Clone()
	}

	return &Polynomial{ord: p.ord, terms: terms}
}

// Equals reports whether two polynomials have identical normalised term
// sequences (re-sorting the other operand under this polynomial's order
// first if the orders differ in parameters).
func (p *Polynomial) Equals(other *Polynomial) bool {
	return p.Compare(other) == 0
}

// Compare totally orders polynomials: lexicographic comparison of the
// descending monomial sequence, LM first. A shorter sequence that is a
// strict prefix of a longer one compares as smaller.
func (p *Polynomial) Compare(other *Polynomial) int {
	o := p.ord

	a, b := p.terms, other.terms
	if !p.ord.Equals(other.ord) {
		b = resorted(other.terms, o)
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := o.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func resorted(terms []*monom.Monom, o order.Order) []*monom.Monom {
	out := append([]*monom.Monom(nil), terms...)
	sort.Slice(out, func(i, j int) bool {
		return o.Compare(out[i], out[j]) > 0
	})

	return out
}

// symDiffMonom XORs a single monomial into the term list in place,
// preserving descending order and cancelling an existing equal term.
func (p *Polynomial) symDiffMonom(m *monom.Monom) {
	i := sort.Search(len(p.terms), func(i int) bool {
		return p.ord.Compare(p.terms[i], m) <= 0
	})

	if i < len(p.terms) && p.terms[i].Equals(m) {
		p.terms = append(p.terms[:i], p.terms[i+1:]...)
		return
	}

	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = m
}

// SymDiffMonom XORs a single monomial into p in place and returns p.
func (p *Polynomial) SymDiffMonom(m *monom.Monom) *Polynomial {
	p.symDiffMonom(m)
	return p
}

// SymDiff XORs other into p in place (addition over F2) and returns p.
func (p *Polynomial) SymDiff(other *Polynomial) *Polynomial {
	terms := other.terms
	if !p.ord.Equals(other.ord) {
		terms = resorted(other.terms, p.ord)
	}

	for _, m := range terms {
		p.symDiffMonom(m)
	}

	return p
}

// SymDiffNC is SymDiff accepting an operand whose order parameters may
// differ from p's; correctness is ensured by re-normalising other under
// p's order before merging.
func (p *Polynomial) SymDiffNC(other *Polynomial) *Polynomial {
	return p.SymDiff(other)
}

// Splice moves every monomial out of other (leaving it empty) and XORs
// them into p in place.
func (p *Polynomial) Splice(other *Polynomial) *Polynomial {
	p.SymDiff(other)
	other.terms = nil

	return p
}

// Union merges other into p in place as a set union (monomials present
// in either operand survive; unlike SymDiff, a monomial present in both
// is kept once rather than cancelled).
func (p *Polynomial) Union(other *Polynomial) *Polynomial {
	terms := other.terms
	if !p.ord.Equals(other.ord) {
		terms = resorted(other.terms, p.ord)
	}

	for _, m := range terms {
		if !p.contains(m) {
			p.insertSorted(m)
		}
	}

	return p
}

// Diff removes from p, in place, every monomial also present in other
// (set difference).
func (p *Polynomial) Diff(other *Polynomial) *Polynomial {
	terms := other.terms
	if !p.ord.Equals(other.ord) {
		terms = resorted(other.terms, p.ord)
	}

	out := p.terms[:0]

	for _, m := range p.terms {
		found := false

		for _, o := range terms {
			if o.Equals(m) {
				found = true
				break
			}
		}

		if !found {
			out = append(out, m)
		}
	}

	p.terms = out

	return p
}

func (p *Polynomial) contains(m *monom.Monom) bool {
	i := sort.Search(len(p.terms), func(i int) bool {
		return p.ord.Compare(p.terms[i], m) <= 0
	})

	return i < len(p.terms) && p.terms[i].Equals(m)
}

func (p *Polynomial) insertSorted(m *monom.Monom) {
	i := sort.Search(len(p.terms), func(i int) bool {
		return p.ord.Compare(p.terms[i], m) <= 0
	})
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = m
}

// MultiplyByMonom multiplies every term by m in place and renormalises
// (products of distinct source terms by the same m can collide and
// cancel).
func (p *Polynomial) MultiplyByMonom(m *monom.Monom) *Polynomial {
	old := p.terms
	p.terms = nil

	for _, t := range old {
		p.symDiffMonom(t.Mul(m))
	}

	return p
}

// MultiplyBy computes the classical convolution p*other (every pairwise
// product of terms, XOR-accumulated) and returns it as a new
// polynomial; p and other are unmodified.
func (p *Polynomial) MultiplyBy(other *Polynomial) *Polynomial {
	result := New(p.ord)

	for _, a := range p.terms {
		for _, b := range other.terms {
			result.symDiffMonom(a.Mul(b))
		}
	}

	return result
}

// MultiplyByGeobucket computes the same convolution as MultiplyBy but
// accumulates the partial sums through a Geobucket, avoiding the O(n^2)
// repeated linear-scan insertion MultiplyBy performs when either operand
// is large.
func (p *Polynomial) MultiplyByGeobucket(other *Polynomial, d uint) *Polynomial {
	gb := NewGeobucket(p.ord, d)

	for _, a := range p.terms {
		row := New(p.ord)
		for _, b := range other.terms {
			row.symDiffMonom(a.Mul(b))
		}

		gb.SymDiffPoly(row)
	}

	return gb.Mount()
}

// Mod reduces p in place by a single nonzero divisor: while LM(p) is
// divisible by LM(divisor), XOR in the appropriate multiple of divisor.
// Returns true iff p changed.
func (p *Polynomial) Mod(divisor *Polynomial) bool {
	lmD, ok := divisor.LM()
	if !ok {
		panic("poly: Mod by the zero polynomial")
	}

	changed := false
	gb := NewGeobucket(p.ord, 4)
	gb.SymDiffPoly(p)

	for {
		lm, ok := gb.PeekLM()
		if !ok {
			break
		}

		if !lmD.Divides(lm) {
			break
		}

		q := lmD.Quotient(lm)
		multiple := divisor.Clone().MultiplyByMonom(q)
		gb.SymDiffPoly(multiple)
		changed = true
	}

	*p = *gb.Mount()

	return changed
}

// Div computes the quotient of p by divisor (the list of monomials q_i
// such that p = sum(q_i*divisor) + remainder) and reduces p in place to
// the remainder, mirroring Mod's reduction loop. Returns the quotient
// polynomial and whether p changed.
func (p *Polynomial) Div(divisor *Polynomial) (*Polynomial, bool) {
	lmD, ok := divisor.LM()
	if !ok {
		panic("poly: Div by the zero polynomial")
	}

	quotient := New(p.ord)
	changed := false
	gb := NewGeobucket(p.ord, 4)
	gb.SymDiffPoly(p)

	for {
		lm, ok := gb.PeekLM()
		if !ok {
			break
		}

		if !lmD.Divides(lm) {
			break
		}

		q := lmD.Quotient(lm)
		quotient.symDiffMonom(q)
		multiple := divisor.Clone().MultiplyByMonom(q)
		gb.SymDiffPoly(multiple)
		changed = true
	}

	*p = *gb.Mount()

	return quotient, changed
}

// Replace substitutes variable v with poly throughout p, in place:
// terms containing v have that bit cleared and are multiplied by poly;
// terms without v pass through unchanged.
func (p *Polynomial) Replace(v uint, sub *Polynomial) *Polynomial {
	old := p.terms
	p.terms = nil

	for _, t := range old {
		if !t.Has(v) {
			p.symDiffMonom(t)
			continue
		}

		cleared := clearVar(t, v)
		rest := FromMonoms(p.ord, cleared)
		p.SymDiff(rest.MultiplyBy(sub))
	}

	return p
}

// ReplaceVar renames variable v to v2 throughout p, in place (possibly
// creating and cancelling duplicate monomials).
func (p *Polynomial) ReplaceVar(v, v2 uint) *Polynomial {
	old := p.terms
	p.terms = nil

	for _, t := range old {
		if !t.Has(v) {
			p.symDiffMonom(t)
			continue
		}

		renamed := clearVar(t, v)
		renamed = setVar(renamed, v2)
		p.symDiffMonom(renamed)
	}

	return p
}

// Set specialises variable v to a Boolean constant throughout p, in
// place. Setting v=false kills every term containing it; setting v=true
// clears the bit from every term that has it (possibly creating and
// cancelling duplicates).
func (p *Polynomial) Set(v uint, value bool) *Polynomial {
	old := p.terms
	p.terms = nil

	for _, t := range old {
		if !t.Has(v) {
			p.symDiffMonom(t)
			continue
		}

		if value {
			p.symDiffMonom(clearVar(t, v))
		}
		// value == false: term vanishes.
	}

	return p
}

func clearVar(m *monom.Monom, v uint) *monom.Monom {
	w := m.Word().Clone()
	w.Set(v, false)

	return monom.FromWord(w)
}

func setVar(m *monom.Monom, v uint) *monom.Monom {
	w := m.Word().Clone()
	w.Set(v, true)

	return monom.FromWord(w)
}

// SPoly computes the S-polynomial of f and g: with L=lcm(LM(f),LM(g)),
// S = (L/LM(f))*f XOR (L/LM(g))*g.
func SPoly(f, g *Polynomial) *Polynomial {
	lmF, okF := f.LM()
	lmG, okG := g.LM()

	if !okF || !okG {
		panic("poly: SPoly of an empty polynomial")
	}

	lcm := lmF.Lcm(lmG)
	qF := lmF.Quotient(lcm)
	qG := lmG.Quotient(lcm)

	left := f.Clone().MultiplyByMonom(qF)
	right := g.Clone().MultiplyByMonom(qG)

	return left.SymDiff(right)
}

// SPolyFieldEquation computes the S-polynomial of the field equation
// x_v^2-x_v (i.e. simply x_v, since x_v^2=x_v makes the equation
// identically zero as a polynomial, its only role being to impose
// LM=x_v) paired with f: x_v*f if x_v does not divide LM(f), otherwise
// x_v*f + f, in which the leading terms cancel.
func SPolyFieldEquation(v uint, f *Polynomial) *Polynomial {
	lmF, ok := f.LM()
	if !ok {
		panic("poly: SPolyFieldEquation of an empty polynomial")
	}

	xv := monom.New(f.ord.N())
	xv.Word().Set(v, true)

	s := f.Clone().MultiplyByMonom(xv)
	if lmF.Has(v) {
		s.SymDiff(f)
	}

	return s
}

// String renders the polynomial as its terms joined by " + ", in
// descending order, or "0" if empty.
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	parts := make([]string, len(p.terms))
	for i, m := range p.terms {
		parts[i] = m.String()
	}

	return strings.Join(parts, " + ")
}
