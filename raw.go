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

package bitmask

// Raw is the constraint for types usable as the storage of a [Bitmask].
//
// Every fixed-width integer type satisfies it: the bitwise operators map directly to machine
// instructions, the zero value is the empty pattern and T(1) << i synthesizes a single bit.
type Raw interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Representable is implemented by flag types that are not integers themselves,
// but know the raw bit pattern they stand for.
type Representable[T Raw] interface {
	BitmaskValue() T
}

// Flag is a comparable [Representable], usable as a member of an [OptionSet].
type Flag[T Raw] interface {
	comparable
	Representable[T]
}

// Width returns the number of bits in T.
func Width[T Raw]() int {
	n := 0
	for b := T(1); b != 0; b <<= 1 {
		n++
	}

	return n
}

// bit returns the single bit at index i.
func bit[T Raw](i int) T {
	return T(1) << i
}

// singleBit reports whether exactly one bit is set in v.
func singleBit[T Raw](v T) bool {
	return v != 0 && v&(v-1) == 0
}
