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

// Package sbox builds ideals and cryptographic characteristics from
// vectorial Boolean functions (S-boxes), a secondary export consuming
// the core ring/ideal/Buchberger packages rather than participating in
// them.
package sbox

import (
	"fmt"
	"math/bits"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
)

// BFunc is a Boolean function {0,1}^n -> {0,1} given by its truth
// table, indexed by the integer encoding of the input (bit i of the
// index is variable x_i).
type BFunc struct {
	n     uint
	table []bool
}

// NewBFunc returns the zero function on n variables.
func NewBFunc(n uint) *BFunc {
	return &BFunc{n: n, table: make([]bool, 1<<n)}
}

// N returns the number of input variables.
func (f *BFunc) N() uint { return f.n }

// Size returns 2^n, the number of inputs.
func (f *BFunc) Size() int { return len(f.table) }

// Get returns the function's value at input x.
func (f *BFunc) Get(x uint) bool { return f.table[x] }

// Set assigns the function's value at input x.
func (f *BFunc) Set(x uint, v bool) { f.table[x] = v }

// FromANF builds the truth table of p by evaluating it at every point
// of {0,1}^n.
func FromANF(p *poly.Polynomial, n uint) *BFunc {
	f := NewBFunc(n)

	for x := uint(0); x < uint(1)<<n; x++ {
		w := bitword.FromUint64(n, uint64(x))

		v := false
		for _, m := range p.Terms() {
			v = v != monom.Calc(m, w)
		}

		f.Set(x, v)
	}

	return f
}

// ToANF returns the Zhegalkin (algebraic normal form) polynomial
// equal to f, under ord.
func (f *BFunc) ToANF(ord order.Order) *poly.Polynomial {
	p := poly.New(ord)

	for e := uint(0); e < uint(1)<<f.n; e++ {
		mWord := bitword.FromUint64(f.n, uint64(e))
		m := monom.FromWord(mWord)

		coeff := false
		for x := uint(0); x < uint(1)<<f.n; x++ {
			xWord := bitword.FromUint64(f.n, uint64(x))
			if monom.Calc(monom.FromWord(xWord), mWord) && f.Get(x) {
				coeff = !coeff
			}
		}

		if coeff {
			p.SymDiffMonom(m)
		}
	}

	return p
}

// Deg returns the algebraic degree of f: the maximal degree of a
// monomial appearing in its ANF (under an arbitrary order, since degree
// doesn't depend on term ordering), or -1 for the zero function.
func (f *BFunc) Deg() int {
	p := f.ToANF(order.NewGrlex(f.n))
	if p.IsEmpty() {
		return -1
	}

	max := 0
	for _, m := range p.Terms() {
		if d := int(m.Deg()); d > max {
			max = d
		}
	}

	return max
}

// walshHadamard computes the Walsh-Hadamard spectrum of f using the
// naive O(4^n) definition: W(u) = sum_x (-1)^(f(x) xor <x,u>).
func (f *BFunc) walshHadamard() []int {
	size := len(f.table)
	spectrum := make([]int, size)

	for u := 0; u < size; u++ {
		sum := 0

		for x := 0; x < size; x++ {
			if f.Get(uint(x)) == (bits.OnesCount(uint(x&u))%2 == 1) {
				sum++
			} else {
				sum--
			}
		}

		spectrum[u] = sum
	}

	return spectrum
}

func maxAbs(spectrum []int) int {
	max := 0
	for _, v := range spectrum {
		if v < 0 {
			v = -v
		}

		if v > max {
			max = v
		}
	}

	return max
}

// Nl returns the nonlinearity of f: its Hamming distance to the
// nearest affine function.
func (f *BFunc) Nl() int {
	return (len(f.table) - maxAbs(f.walshHadamard())) / 2
}

// IsBalanced reports whether f takes the values 0 and 1 equally often.
func (f *BFunc) IsBalanced() bool {
	ones := 0

	for _, v := range f.table {
		if v {
			ones++
		}
	}

	return ones*2 == len(f.table)
}

// IsBent reports whether f is bent: n even and every Walsh-Hadamard
// coefficient has magnitude exactly 2^(n/2).
func (f *BFunc) IsBent() bool {
	if f.n%2 != 0 {
		return false
	}

	want := 1 << (f.n / 2)

	for _, v := range f.walshHadamard() {
		if v < 0 {
			v = -v
		}

		if v != want {
			return false
		}
	}

	return true
}

// VBF is a vectorial Boolean function {0,1}^n -> {0,1}^m given by its
// truth table.
type VBF struct {
	n, m  uint
	table []uint64
}

// NewVBF returns the zero function with input width n and output
// width m.
func NewVBF(n, m uint) *VBF {
	return &VBF{n: n, m: m, table: make([]uint64, 1<<n)}
}

// FromTable builds a VBF from a truth table of 2^n output values, each
// an m-bit integer. Table entries beyond m bits are truncated.
func FromTable(n, m uint, table []uint64) (*VBF, error) {
	if uint64(len(table)) != uint64(1)<<n {
		return nil, fmt.Errorf("sbox: table has %d entries, expected %d for n=%d", len(table), uint64(1)<<n, n)
	}

	s := NewVBF(n, m)

	mask := uint64(1)<<m - 1
	if m == 64 {
		mask = ^uint64(0)
	}

	for x, v := range table {
		s.table[x] = v & mask
	}

	return s, nil
}

// N returns the input width.
func (s *VBF) N() uint { return s.n }

// M returns the output width.
func (s *VBF) M() uint { return s.m }

// Get returns the output at input x.
func (s *VBF) Get(x uint) uint64 { return s.table[x] }

// GetCoord returns the pos-th coordinate function of s as a BFunc:
// x |-> bit `pos` of s(x).
func (s *VBF) GetCoord(pos uint) *BFunc {
	f := NewBFunc(s.n)

	for x := range s.table {
		f.Set(uint(x), (s.table[x]>>pos)&1 == 1)
	}

	return f
}

// IsBijection reports whether s permutes {0,1}^n (n must equal m).
func (s *VBF) IsBijection() bool {
	if s.n != s.m {
		return false
	}

	seen := make([]bool, len(s.table))

	for _, v := range s.table {
		if v >= uint64(len(seen)) || seen[v] {
			return false
		}

		seen[v] = true
	}

	return true
}

// Inverse returns the inverse permutation of s. s must be a bijection.
func (s *VBF) Inverse() *VBF {
	if !s.IsBijection() {
		panic("sbox: Inverse of a non-bijective function")
	}

	inv := NewVBF(s.m, s.n)

	for x, v := range s.table {
		inv.table[v] = uint64(x)
	}

	return inv
}

// Deg returns the algebraic degree of s: the maximum degree over its
// coordinate functions.
func (s *VBF) Deg() int {
	max := -1

	for pos := uint(0); pos < s.m; pos++ {
		if d := s.GetCoord(pos).Deg(); d > max {
			max = d
		}
	}

	return max
}

// Nl returns the nonlinearity of s: the minimum nonlinearity over all
// nonzero linear combinations of its coordinate functions.
func (s *VBF) Nl() int {
	min := -1

	for comb := uint64(1); comb < uint64(1)<<s.m; comb++ {
		f := s.coordCombination(comb)

		if nl := f.Nl(); min == -1 || nl < min {
			min = nl
		}
	}

	return min
}

func (s *VBF) coordCombination(comb uint64) *BFunc {
	f := NewBFunc(s.n)

	for x := range s.table {
		v := s.table[x] & comb
		f.Set(uint(x), bits.OnesCount64(v)%2 == 1)
	}

	return f
}

// Ideal builds the ideal of R = F2[x0,...,x_{n-1},y0,...,y_{m-1}]/(field
// equations) expressing y_i = coord_i(s)(x) for each output bit i, the
// algebraic description of s used to feed S-box cryptanalysis problems
// into the Buchberger engine. Input variables occupy indices
// [0, n); output variables occupy [n, n+m).
func (s *VBF) Ideal(ord order.Order) *ideal.Ideal {
	total := s.n + s.m
	id := ideal.New(total, ord)

	narrow := order.NewGrlex(s.n)

	for pos := uint(0); pos < s.m; pos++ {
		bf := s.GetCoord(pos)
		p := liftPoly(bf.ToANF(narrow), total, ord)

		y := monom.New(total)
		y.Word().Set(s.n+pos, true)

		p.SymDiffMonom(y)

		id.Insert(p)
	}

	return id
}

// liftPoly re-embeds p (defined over some smaller number of variables)
// as a polynomial over n variables under ord, keeping the same
// variable indices and terms.
func liftPoly(p *poly.Polynomial, n uint, ord order.Order) *poly.Polynomial {
	out := poly.New(ord)

	for _, t := range p.Terms() {
		w := bitword.New(n)
		w.SetLo(t.Word())
		out.SymDiffMonom(monom.FromWord(w))
	}

	return out
}
