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

// Package monom reinterprets a bitword.Word as a Boolean monomial: an
// exponent vector in {0,1}^n over F2[x0,...,x_{n-1}]/(xi^2-xi). Because
// every variable is idempotent, a monomial is fully described by the set
// of variables it contains.
package monom

import "github.com/agievich/GF2/pkg/bitword"

// Monom is an exponent vector; bit i set means x_i occurs (to the first
// power, since x_i^2 = x_i). The all-zero Monom is the constant monomial
// 1 -- there is no zero monomial.
type Monom struct {
	w *bitword.Word
}

// New returns the constant monomial 1 over n variables.
func New(n uint) *Monom {
	return &Monom{w: bitword.New(n)}
}

// FromWord wraps an existing bitword.Word as a Monom without copying.
func FromWord(w *bitword.Word) *Monom {
	return &Monom{w: w}
}

// Word returns the underlying exponent vector.
func (m *Monom) Word() *bitword.Word {
	return m.w
}

// N returns the number of variables this monomial is defined over.
func (m *Monom) N() uint {
	return m.w.N()
}

// Clone returns an independent copy.
func (m *Monom) Clone() *Monom {
	return &Monom{w: m.w.Clone()}
}

// Equals reports whether two monomials have an identical exponent vector.
func (m *Monom) Equals(other *Monom) bool {
	return m.w.Equals(other.w)
}

// Has reports whether variable i occurs in this monomial.
func (m *Monom) Has(i uint) bool {
	return m.w.Test(i)
}

// Deg returns the degree of the monomial: the number of distinct
// variables it contains (population count of the exponent vector, since
// every exponent is 0 or 1).
func (m *Monom) Deg() uint {
	return m.w.Weight()
}

// IsOne reports whether this is the constant monomial 1.
func (m *Monom) IsOne() bool {
	return m.w.IsAllZero()
}

// Vars returns the sorted list of variable indices occurring in m.
func (m *Monom) Vars() []uint {
	return m.w.Indices()
}

// Mul returns the product of two monomials: x_i^2 = x_i makes
// multiplication the union of variable sets, i.e. bitwise OR.
func (m *Monom) Mul(other *Monom) *Monom {
	return &Monom{w: m.w.Or(other.w)}
}

// Gcd returns the greatest common divisor of two monomials: the
// variables common to both, i.e. bitwise AND.
func (m *Monom) Gcd(other *Monom) *Monom {
	return &Monom{w: m.w.And(other.w)}
}

// Lcm returns the least common multiple of two monomials: the union of
// their variable sets, i.e. bitwise OR (identical to Mul since every
// exponent saturates at 1).
func (m *Monom) Lcm(other *Monom) *Monom {
	return &Monom{w: m.w.Or(other.w)}
}

// Divides reports whether m divides other: every variable of m also
// occurs in other, i.e. m AND-NOT other is all zero.
func (m *Monom) Divides(other *Monom) bool {
	return m.w.AndNot(other.w).IsAllZero()
}

// Quotient returns other/m assuming m divides other (caller must check
// Divides first; the result is meaningless otherwise): the variables of
// other not cancelled by m, i.e. other AND-NOT m.
func (m *Monom) Quotient(other *Monom) *Monom {
	return &Monom{w: other.w.AndNot(m.w)}
}

// Coprime reports whether m and other share no variable, i.e. their gcd
// is the constant monomial 1.
func (m *Monom) Coprime(other *Monom) bool {
	return m.Gcd(other).IsOne()
}

// Calc evaluates the monomial at a Boolean point v (a bitword.Word of the
// same or greater length): the product of v_i over every i in m. Since
// every factor is 0 or 1, the product is 1 exactly when every variable m
// requires is set in v, i.e. m AND-NOT v is all zero.
func Calc(m *Monom, v *bitword.Word) bool {
	return m.w.AndNot(v).IsAllZero()
}

// String renders the monomial as its exponent vector's text form (see
// bitword.Word.String), e.g. "1010" for x0*x2 over 4 variables.
func (m *Monom) String() string {
	return m.w.String()
}
