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

import (
	"fmt"

	"github.com/agievich/GF2/pkg/util"
	"github.com/agievich/GF2/pkg/util/termio"
)

// Stats accumulates engine counters over a session, for diagnostics and
// the CLI "test"/"solve" reports.
type Stats struct {
	CriterionA     uint64
	CriterionB     uint64
	CriterionC     uint64
	CriterionI     uint64 // Buchberger's first criterion (coprime LMs)
	RCriterion     uint64
	PairsProcessed uint64
	ReducedToZero  uint64
	MaxSPolyDegree int
	// StartedAtMs is the process clock's reading (util.Now) when the
	// engine was initialised.
	StartedAtMs uint32
}

// ElapsedMs returns milliseconds elapsed on the process clock since the
// engine was initialised.
func (s *Stats) ElapsedMs() uint32 {
	return util.Now() - s.StartedAtMs
}

func (s *Stats) noteSPolyDegree(deg int) {
	if deg > s.MaxSPolyDegree {
		s.MaxSPolyDegree = deg
	}
}

// Report renders the counters as a two-column table, via the same
// TablePrinter the engine's host CLI uses elsewhere for pass/fail
// summaries.
func (s *Stats) Report() string {
	rows := [][2]string{
		{"pairs processed", fmt.Sprint(s.PairsProcessed)},
		{"reduced to zero", fmt.Sprint(s.ReducedToZero)},
		{"criterion A", fmt.Sprint(s.CriterionA)},
		{"criterion B", fmt.Sprint(s.CriterionB)},
		{"criterion C", fmt.Sprint(s.CriterionC)},
		{"criterion I (coprime)", fmt.Sprint(s.CriterionI)},
		{"r-criterion", fmt.Sprint(s.RCriterion)},
		{"max S-poly degree", fmt.Sprint(s.MaxSPolyDegree)},
		{"elapsed ms", fmt.Sprint(s.ElapsedMs())},
	}

	table := termio.NewTablePrinter(2, uint(len(rows)))
	table.AnsiEscapes(false)

	for i, row := range rows {
		table.SetRow(uint(i), row[0], row[1])
	}

	return table.String()
}
