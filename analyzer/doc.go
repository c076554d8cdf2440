// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the bitmaskcheck static analysis pass.
//
// # Overview
//
// Flag universes declared with [bitmask.NewUniverse] fail at run time when they are
// invalid. bitmaskcheck reports these failures where the arguments are constants.
//
// # Checks
//
//   - duplicates: a variant is listed twice in a universe declaration
//   - overflow: a universe declares more variants than its raw type has bits
//   - unmappable: a constant passed to [bitmask.Universe.Variant] is zero or has
//     more than one bit set
//
// # Example
//
//	var attrs = bitmask.MustUniverse[Attr, uint8](Big, Ugly, Big) // duplicate variant Big
//
//	attrs.MustVariant(3) // bit value 0x3 does not map to a single variant
//
// Diagnostics are suppressed by a //nolint:bitmaskcheck comment on the same line.
//
// [bitmask.NewUniverse]: https://pkg.go.dev/fillmore-labs.com/bitmask#NewUniverse
// [bitmask.Universe.Variant]: https://pkg.go.dev/fillmore-labs.com/bitmask#Universe.Variant
package analyzer
