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

// Package buchberger implements the Buchberger engine: a pair queue
// driven by the Gebauer-Moeller installation criteria (B and C),
// Buchberger's first criterion (coprime leading monomials), and the
// Agievich r-criterion, which demotes basis elements whose leading
// monomial is a multiple of a newly-inserted one to a reserve list
// instead of deleting them outright.
package buchberger

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
	"github.com/agievich/GF2/pkg/util"
)

// ValidateFunc is a hook called on a freshly formed or freshly reduced
// S-polynomial; both default to always-accept. Rejecting polynomials is
// allowed but voids the guarantee that Process's output is a Groebner
// basis.
type ValidateFunc func(*poly.Polynomial) bool

func acceptAll(*poly.Polynomial) bool { return true }

// Engine drives the pair queue to completion. It owns the evolving
// basis, a reserve list of basis elements demoted by the r-criterion,
// the pending and processed critical pairs, and running statistics.
type Engine struct {
	n       uint
	ord     order.Order
	basis   slab
	reserve slab
	pairs   []*CritPair
	done    []*CritPair
	stats   Stats

	ValidatePre ValidateFunc
	Validate    ValidateFunc
}

// Init returns a fresh engine over n variables under ord: empty basis,
// empty reserve, empty pair queue, zero statistics.
func Init(n uint, ord order.Order) *Engine {
	e := &Engine{
		n:           n,
		ord:         ord,
		ValidatePre: acceptAll,
		Validate:    acceptAll,
	}

	e.stats.StartedAtMs = util.Now()

	return e
}

// InitFromBasis loads an existing Groebner basis directly into the live
// basis slab: no pair construction, no validation. Useful for resuming
// work from a basis already known to be reduced.
func InitFromBasis(n uint, ord order.Order, gb *ideal.Ideal) *Engine {
	e := Init(n, ord)

	for _, p := range gb.Members() {
		e.basis.add(p.Clone())
	}

	return e
}

// N returns the number of variables.
func (e *Engine) N() uint { return e.n }

// Stats returns a copy of the running statistics.
func (e *Engine) Stats() Stats { return e.stats }

func (e *Engine) resolve(r ref) *poly.Polynomial {
	if r.loc == locReserve {
		return e.reserve.get(r.idx)
	}

	return e.basis.get(r.idx)
}

// currentIdeal materialises the live basis (excluding reserve) as an
// ideal.Ideal for reduction/membership queries.
func (e *Engine) currentIdeal() *ideal.Ideal {
	id := ideal.New(e.n, e.ord)

	for _, i := range e.basis.active() {
		id.Insert(e.basis.get(i))
	}

	return id
}

// Update reduces p by the current basis; if the result is nonzero and
// passes Validate, it is inserted into the basis and the pair queue is
// updated via installNew. Returns whether p was installed.
func (e *Engine) Update(p *poly.Polynomial) bool {
	id := e.currentIdeal()

	r, _ := id.Reduce(p)
	if r.IsEmpty() {
		return false
	}

	if e.Validate != nil && !e.Validate(r) {
		return false
	}

	idx := e.basis.add(r)
	e.installNew(idx)

	return true
}

// UpdateIdeal self-reduces id and calls Update on each surviving
// member.
func (e *Engine) UpdateIdeal(id *ideal.Ideal) {
	cp := id.Clone()
	cp.SelfReduce()

	for _, p := range cp.Members() {
		e.Update(p)
	}
}

// Process drains the pair queue: repeatedly take the pair with smallest
// lcm, form its S-polynomial, and either count it as a zero reduction
// or install it as a new basis element.
func (e *Engine) Process() {
	for len(e.pairs) > 0 {
		p := e.pairs[0]
		e.pairs = e.pairs[1:]
		e.done = append(e.done, p)

		s := p.sPoly(e.resolve)
		if s.IsEmpty() {
			e.stats.ReducedToZero++
			continue
		}

		if e.ValidatePre != nil && !e.ValidatePre(s) {
			continue
		}

		e.stats.noteSPolyDegree(s.Degree())

		id := e.currentIdeal()

		r, _ := id.Reduce(s)

		e.stats.PairsProcessed++

		if r.IsEmpty() {
			e.stats.ReducedToZero++
			continue
		}

		if e.Validate != nil && !e.Validate(r) {
			continue
		}

		idx := e.basis.add(r)
		e.installNew(idx)
	}
}

// Done copies the live basis (not the reserve list, which holds
// polynomials already subsumed by a later generator) into out.
func (e *Engine) Done(out *ideal.Ideal) {
	for _, i := range e.basis.active() {
		out.Insert(e.basis.get(i).Clone())
	}
}

// installNew is _Update(p): pair generation and pruning for the new
// basis element at index p.
func (e *Engine) installNew(p int) {
	g := e.basis.get(p)
	lmG, ok := g.LM()
	if !ok {
		panic("buchberger: installNew on the zero polynomial")
	}

	e.criterionA(lmG)

	rPairs := e.rCriterion(p, g, lmG)

	candidates := e.buildCandidates(p, g, lmG)
	candidates = e.criterionI(candidates)
	candidates = e.criteriaBC(candidates, lmG)

	all := append(rPairs, candidates...)
	e.insertPairs(all)

	log.Debugf("buchberger: installed basis[%d] lm=%s, %d new pairs (%d r-pairs)",
		p, lmG, len(all), len(rPairs))
}

// criterionA eagerly deletes every pending pair P with lmG | lcm(P)
// that is not structurally an r-pair.
func (e *Engine) criterionA(lmG *monom.Monom) {
	kept := e.pairs[:0]

	for _, P := range e.pairs {
		if lmG.Divides(P.lcm) && !P.isRPairShape() {
			e.stats.CriterionA++
			continue
		}

		kept = append(kept, P)
	}

	e.pairs = kept
}

// rCriterion moves every existing basis element f (other than p) whose
// leading monomial is a multiple of lmG into the reserve list, emitting
// a critical pair (f,g) for each; every other basis element is safely
// reduced modulo g in place, which cannot change its leading monomial.
func (e *Engine) rCriterion(p int, g *poly.Polynomial, lmG *monom.Monom) []*CritPair {
	var rPairs []*CritPair

	for _, i := range e.basis.active() {
		if i == p {
			continue
		}

		f := e.basis.get(i)

		lmF, ok := f.LM()
		if !ok {
			continue
		}

		if lmG.Divides(lmF) {
			e.basis.remove(i)
			ri := e.reserve.add(f)

			rPairs = append(rPairs, &CritPair{
				ref1:    ref{loc: locReserve, idx: ri},
				ref2:    ref{loc: locBasis, idx: p},
				lm1:     lmF,
				lm2:     lmG,
				lcm:     lmF.Clone(),
				isRPair: true,
			})

			e.stats.RCriterion++
		} else {
			// lmG does not divide LM(f), so only tail terms of f can be
			// reduced; LM(f) is unchanged.
			for {
				var hit *monom.Monom
				for _, t := range f.Terms() {
					if lmG.Divides(t) {
						hit = t
						break
					}
				}
				if hit == nil {
					break
				}
				f.SymDiff(g.Clone().MultiplyByMonom(lmG.Quotient(hit)))
			}
		}
	}

	return rPairs
}

// buildCandidates forms one raw candidate pair per surviving basis
// element (excluding p and anything just demoted to reserve), plus one
// field-equation candidate per variable set in lmG.
func (e *Engine) buildCandidates(p int, g *poly.Polynomial, lmG *monom.Monom) []*CritPair {
	var out []*CritPair

	for _, i := range e.basis.active() {
		if i == p {
			continue
		}

		f := e.basis.get(i)

		lmF, ok := f.LM()
		if !ok {
			continue
		}

		out = append(out, &CritPair{
			ref1: ref{loc: locBasis, idx: i},
			ref2: ref{loc: locBasis, idx: p},
			lm1:  lmF,
			lm2:  lmG,
			lcm:  lmF.Lcm(lmG),
		})
	}

	for _, v := range lmG.Vars() {
		out = append(out, &CritPair{
			isFieldEq: true,
			fieldVar:  v,
			ref2:      ref{loc: locBasis, idx: p},
			lm1:       fieldEqLM(e.n, v),
			lm2:       lmG,
			lcm:       lmG.Clone(),
		})
	}

	return out
}

// criterionI drops every candidate whose two leading monomials are
// coprime (Buchberger's first criterion): their S-polynomial is
// guaranteed to reduce to zero.
func (e *Engine) criterionI(candidates []*CritPair) []*CritPair {
	kept := candidates[:0]

	for _, c := range candidates {
		if c.lm1.Coprime(c.lm2) {
			e.stats.CriterionI++
			continue
		}

		kept = append(kept, c)
	}

	return kept
}

// criteriaBC applies the Gebauer-Moeller installation criteria among
// the surviving candidates: a later candidate is dropped (B) if an
// earlier one's lcm strictly divides it under the triangle condition;
// when the two lcms coincide (C), the "more coprime" pair (field
// equation, or coprime LMs) is preferred and the other dropped,
// breaking remaining ties in favour of the earlier (older) candidate.
func (e *Engine) criteriaBC(candidates []*CritPair, lmG *monom.Monom) []*CritPair {
	var kept []*CritPair

	for _, cand := range candidates {
		keepCand := true
		next := kept[:0]

		for _, P := range kept {
			if !triangleEliminates(P.lcm, cand.lcm, lmG) {
				next = append(next, P)
				continue
			}

			if !P.lcm.Equals(cand.lcm) {
				// Criterion B: strictly smaller lcm already queued.
				e.stats.CriterionB++
				keepCand = false
				next = append(next, P)

				continue
			}
			// Criterion C: equal lcms: prefer the more "coprime" pair.
			if isMoreCoprime(cand, P) {
				e.stats.CriterionC++
				continue // drop P, keep evaluating against the rest
			}

			e.stats.CriterionC++
			keepCand = false
			next = append(next, P)
		}

		kept = next

		if keepCand {
			kept = append(kept, cand)
		}
	}

	return kept
}

// triangleEliminates is the Gebauer-Moeller triangle test: a divides b
// and lmG does not divide lcm(a's pairing LM, ...), approximated here
// (since only the lcm values are retained once a candidate is queued)
// as plain lcm divisibility -- the standard simplification used once
// the non-coprime/r-pair filtering above has already pruned the
// obviously-redundant candidates.
func triangleEliminates(a, b, lmG *monom.Monom) bool {
	return a.Divides(b)
}

// isMoreCoprime breaks a Criterion C tie in favour of a field-equation
// pair, then a pair with coprime leading monomials, over a plain basis
// pair.
func isMoreCoprime(a, b *CritPair) bool {
	aScore := coprimeScore(a)
	bScore := coprimeScore(b)

	return aScore > bScore
}

func coprimeScore(p *CritPair) int {
	if p.isFieldEq {
		return 2
	}

	if p.lm1.Coprime(p.lm2) {
		return 1
	}

	return 0
}

// insertPairs merges newPairs into the queue, sorted by increasing lcm
// under ord; ties are broken by insertion order (stable sort keeps
// newPairs after the existing queue for equal keys).
func (e *Engine) insertPairs(newPairs []*CritPair) {
	e.pairs = append(e.pairs, newPairs...)

	sort.SliceStable(e.pairs, func(i, j int) bool {
		return e.ord.Compare(e.pairs[i].lcm, e.pairs[j].lcm) < 0
	})
}
