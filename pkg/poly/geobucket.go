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

package poly

import (
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
)

// Geobucket is the Yan geobucket accumulator: a list of polynomial
// buckets B0,B1,... with |Bk| <= d^(k+1), used to make repeated
// "take the leading monomial, XOR in a multiple of some divisor" loops
// run in time roughly linear in output size times (d+2)/ln(d) rather
// than quadratic in the naive single-list implementation.
type Geobucket struct {
	ord     order.Order
	d       uint
	buckets []*Polynomial
}

// NewGeobucket returns an empty accumulator over ord with growth factor
// d (d>=2).
func NewGeobucket(ord order.Order, d uint) *Geobucket {
	if d < 2 {
		d = 2
	}

	return &Geobucket{ord: ord, d: d}
}

func (g *Geobucket) capacity(k int) int {
	cap := uint(1)
	for i := 0; i <= k; i++ {
		cap *= g.d
	}

	return int(cap)
}

func (g *Geobucket) ensureBucket(k int) {
	for len(g.buckets) <= k {
		g.buckets = append(g.buckets, New(g.ord))
	}
}

// SymDiffMonom XORs a single monomial into the accumulator.
func (g *Geobucket) SymDiffMonom(m *monom.Monom) {
	g.SymDiffPoly(FromMonoms(g.ord, m))
}

// SymDiffPoly XORs an entire polynomial into the accumulator, routing it
// to the smallest bucket it still fits in and cascading spills forward
// as needed to restore the size invariant.
func (g *Geobucket) SymDiffPoly(p *Polynomial) {
	if p.IsEmpty() {
		return
	}

	k := 0
	for g.capacity(k) < p.Size() {
		k++
	}

	g.ensureBucket(k)
	g.buckets[k].SymDiff(p)

	for g.buckets[k].Size() > g.capacity(k) {
		g.ensureBucket(k + 1)
		g.buckets[k+1].SymDiff(g.buckets[k])
		g.buckets[k] = New(g.ord)
		k++
	}
}

// PeekLM reports the leading monomial the accumulator would emit next,
// without removing it, by the same bucket-wise-maximum-with-cancellation
// rule PopLM uses; it may mutate bucket contents (popping and discarding
// cancelling duplicates) but never changes the accumulator's value.
func (g *Geobucket) PeekLM() (*monom.Monom, bool) {
	for {
		best := -1

		for i, b := range g.buckets {
			lm, ok := b.LM()
			if !ok {
				continue
			}

			if best == -1 {
				best = i
				continue
			}

			bestLM, _ := g.buckets[best].LM()
			if g.ord.Compare(lm, bestLM) > 0 {
				best = i
			}
		}

		if best == -1 {
			return nil, false
		}

		bestLM, _ := g.buckets[best].LM()

		count := 0

		for _, b := range g.buckets {
			lm, ok := b.LM()
			if ok && lm.Equals(bestLM) {
				count++
			}
		}

		if count%2 == 1 {
			return bestLM, true
		}
		// Even number of buckets share this leading monomial: they cancel.
		// Pop all of them and continue searching.
		for _, b := range g.buckets {
			lm, ok := b.LM()
			if ok && lm.Equals(bestLM) {
				b.PopLM()
			}
		}
	}
}

// PopLM removes and returns the monomial PeekLM would report.
func (g *Geobucket) PopLM() (*monom.Monom, bool) {
	m, ok := g.PeekLM()
	if !ok {
		return nil, false
	}

	for _, b := range g.buckets {
		lm, ok := b.LM()
		if ok && lm.Equals(m) {
			b.PopLM()
			break
		}
	}

	return m, true
}

// Mount drains the accumulator into a single normalised Polynomial,
// leaving the accumulator empty.
func (g *Geobucket) Mount() *Polynomial {
	out := New(g.ord)

	for _, b := range g.buckets {
		out.SymDiff(b)
	}

	g.buckets = nil

	return out
}
