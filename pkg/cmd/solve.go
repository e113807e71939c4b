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

	"github.com/agievich/GF2/pkg/buchberger"
	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/stream"
	"github.com/agievich/GF2/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [flags] ideal",
	Short: "Compute a reduced Groebner basis and the quotient-ring dimension.",
	Long: `Read an ideal given in the text grammar ("{ x0 x1 + x2, x1 + 1 }"),
run Buchberger's algorithm under the chosen monomial order, and print
the reduced basis and quotient-ring dimension.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := GetUint(cmd, "vars")
		orderName := GetString(cmd, "order")

		ord, err := order.ByName(orderName, n)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		p := stream.NewParser(args[0])

		id, err := stream.ParseIdeal(p, n, ord)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		stats := util.NewPerfStats()

		eng := buchberger.Init(n, ord)
		eng.UpdateIdeal(id)
		eng.Process()

		result := ideal.New(n, ord)
		eng.Done(result)

		stats.Log("Buchberger")

		result.SelfReduce()

		fmt.Println(stream.WriteIdeal(result))

		if GetFlag(cmd, "hex") {
			fmt.Printf("QuotientBasisDim = %s\n", stream.WriteIntegerHex(uint64(result.QuotientBasisDim())))
		} else {
			fmt.Printf("QuotientBasisDim = %d\n", result.QuotientBasisDim())
		}

		if GetFlag(cmd, "stats") {
			engStats := eng.Stats()
			fmt.Println(engStats.Report())
		}
	},
}

func init() {
	solveCmd.Flags().UintP("vars", "n", 0, "number of variables (required)")
	solveCmd.Flags().String("order", "grevlex", "monomial order: lex, grlex or grevlex")
	solveCmd.Flags().Bool("stats", false, "print engine statistics after solving")
	solveCmd.Flags().Bool("hex", false, "print QuotientBasisDim in hexadecimal")
	_ = solveCmd.MarkFlagRequired("vars")

	rootCmd.AddCommand(solveCmd)
}
