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

	"github.com/agievich/GF2/pkg/util"
	"github.com/agievich/GF2/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the fixed end-to-end scenario suite.",
	Long:  "Run each literal-input/literal-output scenario this engine is expected to satisfy, and report pass/fail.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}

		stats := util.NewPerfStats()

		table := termio.NewTablePrinter(2, uint(len(scenarios)))

		failures := 0

		for i, sc := range scenarios {
			err := sc.run()

			status := "ok"
			if err != nil {
				status = "FAIL: " + err.Error()
				failures++
			}

			table.SetRow(uint(i), sc.name, status)
		}

		fmt.Print(table.String())

		stats.Log("running scenarios")

		if failures > 0 {
			log.Errorf("%d of %d scenarios failed", failures, len(scenarios))
			os.Exit(1)
		}
	},
}

func init() {
	testCmd.Flags().Bool("debug", false, "enable debug-level logging")

	rootCmd.AddCommand(testCmd)
}
