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

import "fmt"

// ByName constructs one of the three base orders (the ones selectable
// without extra parameters) by name: "lex", "grlex" or "grevlex".
func ByName(name string, n uint) (Order, error) {
	switch name {
	case "lex":
		return NewLex(n), nil
	case "grlex":
		return NewGrlex(n), nil
	case "grevlex":
		return NewGrevlex(n), nil
	default:
		return nil, fmt.Errorf("order: unknown order %q (want lex, grlex or grevlex)", name)
	}
}
