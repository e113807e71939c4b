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
	"os"
	"strconv"
	"strings"

	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/sbox"
	"github.com/agievich/GF2/pkg/stream"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sboxCmd = &cobra.Command{
	Use:   "sbox --table=v0,v1,... [flags]",
	Short: "Report characteristics of an S-box, or build its ideal.",
	Long: `Parse a truth table given as a comma-separated list of values
and report its algebraic degree, nonlinearity and bijectivity; with
--ideal, print the ideal expressing its coordinate functions instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		table, n, m := parseTable(cmd)

		s, err := sbox.FromTable(n, m, table)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		if GetFlag(cmd, "ideal") {
			orderName := GetString(cmd, "order")

			ord, err := order.ByName(orderName, n+m)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}

			fmt.Println(stream.WriteIdeal(s.Ideal(ord)))

			return
		}

		fmt.Printf("n=%d m=%d\n", n, m)
		fmt.Printf("deg=%d\n", s.Deg())
		fmt.Printf("nl=%d\n", s.Nl())
		fmt.Printf("bijection=%v\n", s.IsBijection())
	},
}

func parseTable(cmd *cobra.Command) ([]uint64, uint, uint) {
	raw := GetString(cmd, "table")
	if raw == "" {
		log.Error("sbox: --table is required")
		os.Exit(1)
	}

	fields := strings.Split(raw, ",")
	table := make([]uint64, len(fields))

	max := uint64(0)

	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 64)
		if err != nil {
			log.Errorf("sbox: malformed table entry %q: %v", f, err)
			os.Exit(1)
		}

		table[i] = v

		if v > max {
			max = v
		}
	}

	n := GetUint(cmd, "vars")
	if n == 0 {
		for sz := uint(1); ; sz++ {
			if uint64(1)<<sz == uint64(len(table)) {
				n = sz
				break
			}

			if uint64(1)<<sz > uint64(len(table)) {
				log.Error("sbox: table length is not a power of two; pass --vars explicitly")
				os.Exit(1)
			}
		}
	}

	m := uint(1)
	for max>>m != 0 {
		m++
	}

	return table, n, m
}

func init() {
	sboxCmd.Flags().String("table", "", "comma-separated truth table, e.g. 2,6,3,14,...")
	sboxCmd.Flags().UintP("vars", "n", 0, "input width (defaults to log2 of the table length)")
	sboxCmd.Flags().Bool("ideal", false, "print the ideal of the coordinate functions instead of characteristics")
	sboxCmd.Flags().String("order", "grevlex", "monomial order used with --ideal")

	rootCmd.AddCommand(sboxCmd)
}
