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

// Package bitmask provides a generic, type-safe bitmask over integer flag types
// and automatic bit assignment for arbitrary enumerations.
//
// # Bitmasks
//
// A [Bitmask] wraps a single raw integer pattern. Flags declared as integer constants
// combine directly:
//
//	type Attribute uint16
//
//	const (
//	    Big Attribute = 1 << iota
//	    Ugly
//	    Scary
//	)
//
//	m := bitmask.New(Ugly, Scary)  // 0b0000000000000110
//	m.Contains(Ugly)               // true
//	m.MatchesAny(Scary, Big)       // true, at least one flag in common
//	m.Contains(Scary, Big)         // false, Big is missing
//
// Note the difference between the intersection test [Bitmask.Matches] and the
// containment test [Bitmask.Contains].
//
// # Automatic Bit Assignment
//
// A [Universe] declares the ordered list of all variants of a flag type. The variant at
// position i owns the bit 1 << i:
//
//	type Monster string
//
//	var monsters = bitmask.MustUniverse[Monster, uint16]("big", "ugly", "scary")
//
//	monsters.MustBitValue("scary") // 4
//	monsters.MustVariant(2)        // "ugly"
//
// The order of the declaration determines the bit values. Masks stored outside the
// program are only meaningful together with the declaration that produced them.
//
// # Option Sets
//
// An [OptionSet] is a read-only snapshot of a mask. When created from a [Universe]
// it enumerates the variants that are set:
//
//	set := monsters.OptionSet(monsters.MustMask("ugly", "scary"))
//	set.AreSet("ugly", "scary") // true
//	slices.Collect(set.Members()) // [ugly scary]
//
// # Concurrency
//
// Masks are plain values. Universes and option sets are immutable. Methods with pointer
// receivers modify the mask in place and need external synchronization.
package bitmask
