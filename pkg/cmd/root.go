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

// Package cmd provides the cobra-based command-line front end: "solve"
// runs the Buchberger engine over a text-grammar ideal, "sbox" derives
// an ideal from a vectorial Boolean function's truth table, and "test"
// runs the fixed scenario suite.
package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/agievich/GF2/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building via make; left blank for "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "gf2",
	Short: "A Boolean Groebner-basis engine.",
	Long:  "A Groebner-basis engine over F2[x0,...,x_{n-1}]/(xi^2-xi), with Buchberger's algorithm, quotient-ring dimension counting, and an S-box-to-ideal export.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
			util.LogHostCapabilities()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("gf2 ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and runs it. It is
// called exactly once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// GetFlag fetches a boolean flag, exiting the process on a programming
// error (an undeclared flag name).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetString fetches a string flag, exiting the process on a programming
// error.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetUint fetches a uint flag, exiting the process on a programming
// error.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
