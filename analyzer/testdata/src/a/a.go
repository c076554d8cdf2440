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

package a

import "fillmore-labs.com/bitmask"

type monster string

const (
	big   monster = "big"
	ugly  monster = "ugly"
	scary monster = "scary"
)

var monsters = bitmask.MustUniverse[monster, uint16](big, ugly, scary)

var duplicate = bitmask.MustUniverse[monster, uint8](big, ugly, big) // want "duplicate variant big in universe, first declared at position 0"

var literal, _ = bitmask.NewUniverse[string, uint8]("big", "ugly", "scary", "ugly") // want `duplicate variant "ugly" in universe, first declared at position 1`

var ignored = bitmask.MustUniverse[monster, uint8](ugly, ugly) //nolint:bitmaskcheck

var anys = bitmask.MustUniverse[any, uint8](1, int8(1), "1")

var typed = bitmask.MustUniverse[any, uint8](int8(1), int8(1)) // want `duplicate variant int8\(1\) in universe, first declared at position 0`

var overflow, _ = bitmask.NewUniverse[int, uint8](0, 1, 2, 3, 4, 5, 6, 7, 8) // want "universe declares 9 variants, but uint8 holds only 8 bits"

var exact, _ = bitmask.NewUniverse[int, int8](0, 1, 2, 3, 4, 5, 6, 7)

type raw uint8

var named = bitmask.MustUniverse[int, raw](0, 1, 2, 3, 4, 5, 6, 7, 8) // want "universe declares 9 variants, but raw holds only 8 bits"

func variables(a, b monster) {
	_ = bitmask.MustUniverse[monster, uint8](a, b, a) // want "duplicate variant a in universe, first declared at position 0"

	variants := []monster{a, a}
	_ = bitmask.MustUniverse[monster, uint8](variants...)
}

func lookup(bits uint16) {
	_ = monsters.MustVariant(3) // want `bit value 0x3 does not map to a single variant`

	_, _ = monsters.Variant(0) // want `bit value 0x0 does not map to a single variant`

	_ = monsters.MustVariant(1 << 2)

	_ = monsters.MustVariant(bits)

	_, _ = monsters.BitValue(big)
}

func signed() {
	u := bitmask.MustUniverse[int, int8](0, 1, 2, 3, 4, 5, 6, 7)

	_ = u.MustVariant(-128)

	_ = u.MustVariant(-1) // want `bit value 0xff does not map to a single variant`
}

type wrapper struct {
	*bitmask.Universe[monster, uint16]
}

func embedded(w wrapper) {
	_ = w.MustVariant(1)

	_ = w.MustVariant(5) // want `bit value 0x5 does not map to a single variant`

	_, _ = w.Universe.Variant(6) // want `bit value 0x6 does not map to a single variant`
}
