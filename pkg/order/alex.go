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

package order

import (
	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/monom"
)

// bitwordFromUint builds an n-bit word from a plain integer value; only
// meaningful for n within machine-word range, which Alex.Next's brute
// force enumeration already requires to be tractable.
func bitwordFromUint(n uint, v uint64) *bitword.Word {
	return bitword.FromUint64(n, v)
}

// Alex is the general matrix order: monomials are compared by computing
// A*e for each exponent vector e (A a nonnegative integer matrix, row
// sums within machine-word range, rows linearly independent over Q, the
// last nonzero entry of each row positive) and comparing the resulting
// integer vectors lexicographically from the bottom row to the top. Any
// monomial order on a finite number of variables can be encoded this way.
type Alex struct {
	n    uint
	rows [][]int64
}

// NewAlex constructs the matrix order defined by rows, a slice of
// integer rows each of length n. rows[0] is the top (least significant)
// row; comparison proceeds from the last row (most significant) to the
// first.
func NewAlex(n uint, rows [][]int64) *Alex {
	cp := make([][]int64, len(rows))
	for i, r := range rows {
		cp[i] = append([]int64(nil), r...)
	}

	return &Alex{n: n, rows: cp}
}

// N implements Order.
func (o *Alex) N() uint { return o.n }

func (o *Alex) project(m *monom.Monom) []int64 {
	out := make([]int64, len(o.rows))

	for i, row := range o.rows {
		var sum int64
		for j := uint(0); j < o.n; j++ {
			if m.Has(j) {
				sum += row[j]
			}
		}

		out[i] = sum
	}

	return out
}

// Compare implements Order.
func (o *Alex) Compare(a, b *monom.Monom) int {
	pa, pb := o.project(a), o.project(b)

	for i := len(o.rows) - 1; i >= 0; i-- {
		if pa[i] < pb[i] {
			return -1
		}

		if pa[i] > pb[i] {
			return 1
		}
	}

	return 0
}

// Next implements Order by brute-force scan of the successor within
// {0,1}^n, which is acceptable given Alex is used for modest N in
// practice; a closed-form successor would require inverting the matrix
// projection, which is not guaranteed to exist over the integers.
func (o *Alex) Next(m *monom.Monom) bool {
	best := (*monom.Monom)(nil)

	total := uint64(1) << o.n
	for v := uint64(0); v < total; v++ {
		cand := monom.FromWord(bitwordFromUint(o.n, v))
		if o.Compare(cand, m) <= 0 {
			continue
		}

		if best == nil || o.Compare(cand, best) < 0 {
			best = cand
		}
	}

	if best == nil {
		m.Word().Assign(bitwordFromUint(o.n, 0))
		return false
	}

	m.Word().Assign(best.Word())

	return true
}

// Equals implements Order.
func (o *Alex) Equals(other Order) bool {
	o2, ok := other.(*Alex)
	if !ok || o2.n != o.n || len(o2.rows) != len(o.rows) {
		return false
	}

	for i := range o.rows {
		if len(o.rows[i]) != len(o2.rows[i]) {
			return false
		}

		for j := range o.rows[i] {
			if o.rows[i][j] != o2.rows[i][j] {
				return false
			}
		}
	}

	return true
}
