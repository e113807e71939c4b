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

import "github.com/agievich/GF2/pkg/poly"

// slab is a stable-index container of polynomials: a vector of slots
// plus a free list, so that a CritPair holding an index into a slab
// stays valid across insertions and removals elsewhere in the
// container (removing element k never shifts element k+1..n-1, unlike a
// plain slice-splice).
type slab struct {
	slots []*poly.Polynomial
	free  []int
}

// add inserts p, reusing a freed slot if one exists, and returns its
// stable index.
func (s *slab) add(p *poly.Polynomial) int {
	if n := len(s.free); n > 0 {
		i := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[i] = p

		return i
	}

	s.slots = append(s.slots, p)

	return len(s.slots) - 1
}

// get returns the polynomial at index i, or nil if that slot is free.
func (s *slab) get(i int) *poly.Polynomial {
	return s.slots[i]
}

// remove frees slot i, returning the polynomial that was stored there.
func (s *slab) remove(i int) *poly.Polynomial {
	p := s.slots[i]
	s.slots[i] = nil
	s.free = append(s.free, i)

	return p
}

// active returns the indices of every occupied slot, in slot order.
func (s *slab) active() []int {
	out := make([]int, 0, len(s.slots))

	for i, p := range s.slots {
		if p != nil {
			out = append(out, i)
		}
	}

	return out
}

// len returns the number of occupied slots.
func (s *slab) len() int {
	return len(s.slots) - len(s.free)
}
