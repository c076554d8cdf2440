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

package config

import "fillmore-labs.com/bitmask"

// Check represents a single diagnostic category of the analyzer.
type Check uint8

//go:generate go tool stringer -type Check -linecomment
const (
	// CheckDuplicates reports variants declared twice in a universe.
	CheckDuplicates Check = 1 << iota // duplicates

	// CheckOverflow reports universes with more variants than bits in their raw type.
	CheckOverflow // overflow

	// CheckUnmappable reports constant bit values that cannot belong to a single variant.
	CheckUnmappable // unmappable
)

// Checks is the set of enabled checks.
type Checks = bitmask.Bitmask[Check]

// DefaultChecks returns all checks enabled.
func DefaultChecks() Checks {
	return bitmask.New(CheckDuplicates, CheckOverflow, CheckUnmappable)
}

// Behavior represents behavioral options.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// Behaviors is the set of enabled behavioral options.
type Behaviors = bitmask.Bitmask[Behavior]

// DefaultBehavior returns the default behavior, excluding generated files.
func DefaultBehavior() Behaviors {
	return bitmask.New[Behavior]()
}
