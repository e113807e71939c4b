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

// Package termio provides small terminal-output helpers: interactive
// detection and a coloured table printer, adapted from a much larger
// raw-mode terminal/widget package this module has no interactive surface
// to exercise (see DESIGN.md).
package termio

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal capable
// of displaying ANSI escapes.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
