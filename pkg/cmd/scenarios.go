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

package cmd

import (
	"fmt"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/buchberger"
	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
	"github.com/agievich/GF2/pkg/sbox"
	"github.com/agievich/GF2/pkg/stream"
	"github.com/agievich/GF2/pkg/util"
)

// scenario is a fixed end-to-end check with a literal expected outcome,
// independent of any particular input file.
type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{"S1 order-equivalence", scenarioOrderEquivalence},
	{"S2 bent-MM", scenarioBentMM},
	{"S3 bash-ideal", scenarioBashIdeal},
	{"S4 commuting-matrices", scenarioCommutingMatrices},
	{"S5 even-mansour", scenarioEvenMansour},
	{"S6 bitword-roundtrip", scenarioBitWordRoundTrip},
}

func pairMonom(n uint, a, b uint) *monom.Monom {
	m := monom.New(n)
	m.Word().Set(a, true)
	m.Word().Set(b, true)

	return m
}

// liftPoly re-embeds p (defined over some small number of variables) as
// a polynomial over n variables under ord, keeping the same variable
// indices and terms.
func liftPoly(p *poly.Polynomial, n uint, ord order.Order) *poly.Polynomial {
	out := poly.New(ord)

	for _, t := range p.Terms() {
		w := bitword.New(n)
		w.SetLo(t.Word())
		out.SymDiffMonom(monom.FromWord(w))
	}

	return out
}

func evalPoly(p *poly.Polynomial, val *bitword.Word) bool {
	result := false

	for _, m := range p.Terms() {
		if monom.Calc(m, val) {
			result = !result
		}
	}

	return result
}

// scenarioOrderEquivalence checks that, for N=6, grlex and graded(lex)
// agree on every pair of monomials.
func scenarioOrderEquivalence() error {
	const n = 6

	grl := order.NewGrlex(n)
	grd := order.NewGraded(order.NewLex(n))

	for a := uint64(0); a < uint64(1)<<n; a++ {
		ma := monom.FromWord(bitword.FromUint64(n, a))

		for b := uint64(0); b < uint64(1)<<n; b++ {
			mb := monom.FromWord(bitword.FromUint64(n, b))

			if grl.Compare(ma, mb) != grd.Compare(ma, mb) {
				return fmt.Errorf("grlex and graded(lex) disagree at a=%d, b=%d", a, b)
			}
		}
	}

	return nil
}

// scenarioBentMM checks that the quadratic Majorana-McFarland
// construction on 12 variables is bent.
func scenarioBentMM() error {
	const n = 12

	ord := order.NewGrlex(n)
	p := poly.New(ord)

	p.SymDiffMonom(pairMonom(n, 0, 6))
	p.SymDiffMonom(pairMonom(n, 1, 7))
	p.SymDiffMonom(pairMonom(n, 2, 8))
	p.SymDiffMonom(pairMonom(n, 3, 9))
	p.SymDiffMonom(pairMonom(n, 4, 10))
	p.SymDiffMonom(pairMonom(n, 5, 11))

	f := sbox.FromANF(p, n)
	if !f.IsBent() {
		return fmt.Errorf("expected a bent function")
	}

	return nil
}

// scenarioBashIdeal runs Buchberger on the ideal describing the Bash
// S-box's coordinate functions and checks the reduced basis size and
// quotient-ring dimension.
func scenarioBashIdeal() error {
	table := []uint64{1, 2, 3, 4, 6, 7, 5, 0}

	s, err := sbox.FromTable(3, 3, table)
	if err != nil {
		return err
	}

	ord := order.NewGrevlex(6)
	id := s.Ideal(ord)

	eng := buchberger.Init(6, ord)
	eng.UpdateIdeal(id)
	eng.Process()

	out := ideal.New(6, ord)
	eng.Done(out)
	out.SelfReduce()

	if out.Len() != 14 {
		return fmt.Errorf("expected 14 reduced generators, got %d", out.Len())
	}

	if dim := out.QuotientBasisDim(); dim != 8 {
		return fmt.Errorf("expected QuotientBasisDim=8, got %d", dim)
	}

	return nil
}

// scenarioCommutingMatrices runs Buchberger on the ideal describing
// pairs of commuting invertible 2x2 binary matrices.
func scenarioCommutingMatrices() error {
	const n = 8

	ord := order.NewGrevlex(n)
	text := "{x0 x3 + x1 x2 + 1, x1 x6 + x2 x5, x1 x7 + x3 x5 + x0 x5 + x1 x4," +
		" x2 x7 + x3 x6 + x0 x6 + x2 x4, x4 x7 + x5 x6 + 1}"

	p := stream.NewParser(text)

	id, err := stream.ParseIdeal(p, n, ord)
	if err != nil {
		return err
	}

	eng := buchberger.Init(n, ord)
	eng.UpdateIdeal(id)
	eng.Process()

	out := ideal.New(n, ord)
	eng.Done(out)
	out.SelfReduce()

	if !out.IsGB() {
		return fmt.Errorf("Buchberger output is not a Groebner basis")
	}

	if dim := out.QuotientBasisDim(); dim != 18 {
		return fmt.Errorf("expected QuotientBasisDim=18, got %d", dim)
	}

	return nil
}

// scenarioEvenMansour builds the ideal of a two-round Even-Mansour
// cipher's round-key schedule from a chosen S-box, a chosen key, and
// the plaintext/ciphertext pairs that key produces. It checks both that
// the full codebook pins the key to a unique root (by brute-force
// enumeration of the variety, not by trusting Buchberger) and that
// running Buchberger on the same equations produces a reduced Groebner
// basis that still vanishes at that key.
func scenarioEvenMansour() error {
	const blockBits = 3
	const keyVars = 3 * blockBits

	table := []uint64{1, 2, 3, 4, 6, 7, 5, 0}

	s, err := sbox.FromTable(blockBits, blockBits, table)
	if err != nil {
		return err
	}

	ord3 := order.NewGrlex(blockBits)
	ord := order.NewGrlex(keyVars)

	coord := make([]*poly.Polynomial, blockBits)
	for i := uint(0); i < blockBits; i++ {
		coord[i] = liftPoly(s.GetCoord(i).ToANF(ord3), keyVars, ord)
	}

	// K1 = 101, K2 = 110, K3 = 010 (bit i is the coefficient of x_i).
	k1 := []bool{true, false, true}
	k2 := []bool{true, true, false}
	k3 := []bool{false, true, false}

	encrypt := func(plain uint) uint {
		k1Int, k2Int, k3Int := bitsToInt(k1), bitsToInt(k2), bitsToInt(k3)
		u := s.Get(plain ^ k1Int)
		v := s.Get(uint(u) ^ k2Int)

		return uint(v) ^ k3Int
	}

	id := ideal.New(keyVars, ord)

	for plain := uint(0); plain < uint(1)<<blockBits; plain++ {
		cipher := encrypt(plain)

		round1 := make([]*poly.Polynomial, blockBits)

		for i := uint(0); i < blockBits; i++ {
			round1[i] = coord[i].Clone()

			for j := uint(0); j < blockBits; j++ {
				sub := poly.New(ord)
				sub.SymDiffMonom(varMonom(keyVars, j))

				if (plain>>j)&1 == 1 {
					sub.SymDiffMonom(monom.New(keyVars))
				}

				round1[i].Replace(j, sub)
			}
		}

		for i := uint(0); i < blockBits; i++ {
			round2 := poly.New(ord)

			// Substitute every x_j at once, term by term: round1 itself
			// contains x_0..x_2, which must not be substituted again.
			for _, t := range coord[i].Terms() {
				prod := poly.FromMonoms(ord, monom.New(keyVars))

				for _, j := range t.Vars() {
					sub := round1[j].Clone()
					sub.SymDiffMonom(varMonom(keyVars, blockBits+j))
					prod = prod.MultiplyBy(sub)
				}

				round2.SymDiff(prod)
			}

			round2.SymDiffMonom(varMonom(keyVars, 2*blockBits+i))

			if (cipher>>i)&1 == 1 {
				round2.SymDiffMonom(monom.New(keyVars))
			}

			id.Insert(round2)
		}
	}

	trueKey := bitword.New(keyVars)
	for i := uint(0); i < blockBits; i++ {
		trueKey.Set(i, k1[i])
		trueKey.Set(blockBits+i, k2[i])
		trueKey.Set(2*blockBits+i, k3[i])
	}

	for _, gen := range id.Members() {
		if evalPoly(gen, trueKey) {
			return fmt.Errorf("the chosen key does not satisfy its own key-schedule equations")
		}
	}

	// The full 2^keyVars codebook is small enough to search directly: a
	// key-recovery claim means the equations admit trueKey as their only
	// common root, which this checks without relying on Buchberger.
	roots := 0

	for v := uint64(0); v < uint64(1)<<keyVars; v++ {
		cand := bitword.FromUint64(keyVars, v)

		isRoot := true
		for _, gen := range id.Members() {
			if evalPoly(gen, cand) {
				isRoot = false
				break
			}
		}

		if !isRoot {
			continue
		}

		roots++
		if !cand.Equals(trueKey) {
			return fmt.Errorf("key-schedule equations admit a root %s distinct from the true key %s", cand, trueKey)
		}
	}

	if roots != 1 {
		return fmt.Errorf("expected the key-schedule equations to pin a unique key, found %d roots", roots)
	}

	eng := buchberger.Init(keyVars, ord)
	eng.UpdateIdeal(id)
	eng.Process()

	out := ideal.New(keyVars, ord)
	eng.Done(out)
	out.SelfReduce()

	if !out.IsGB() {
		return fmt.Errorf("Buchberger output is not a Groebner basis")
	}

	for _, gen := range out.Members() {
		if evalPoly(gen, trueKey) {
			return fmt.Errorf("the reduced basis no longer vanishes at the true key")
		}
	}

	return nil
}

func bitsToInt(bits []bool) uint {
	var v uint

	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}

	return v
}

func varMonom(n, v uint) *monom.Monom {
	m := monom.New(n)
	m.Word().Set(v, true)

	return m
}

// scenarioBitWordRoundTrip serialises a random 127-bit word through the
// text grammar and parses it back.
func scenarioBitWordRoundTrip() error {
	const n = 127

	w := bitword.New(n)
	w.Fill(util.Global())

	text := stream.WriteBitWord(w)
	p := stream.NewParser(text)

	w2, err := stream.ParseBitWord(p)
	if err != nil {
		return err
	}

	if !w.Equals(w2) {
		return fmt.Errorf("round trip mismatch")
	}

	return nil
}
