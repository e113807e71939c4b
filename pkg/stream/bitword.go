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

package stream

import "github.com/agievich/GF2/pkg/bitword"

// ParseBitWord parses a run of '0'/'1' characters; the run's length
// fixes N, and index 0 is the leftmost character (matching
// bitword.Word.String's convention).
func ParseBitWord(p *Parser) (*bitword.Word, error) {
	start := p.index

	for {
		r, ok := p.Peek()
		if !ok || (r != '0' && r != '1') {
			break
		}

		p.index++
	}

	n := uint(p.index - start)
	w := bitword.New(n)

	for i := uint(0); i < n; i++ {
		if p.text[int(start)+int(i)] == '1' {
			w.Set(i, true)
		}
	}

	return w, nil
}

// WriteBitWord renders w per the grammar: index 0 leftmost. Identical
// to w.String(), exposed here so callers working purely in terms of the
// stream package don't need to reach into bitword directly.
func WriteBitWord(w *bitword.Word) string {
	return w.String()
}
