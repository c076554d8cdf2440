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

import (
	"cmp"
	"log/slog"
	"strconv"
	"strings"
)

// Bitmask is a generic type that represents a bitmask for managing binary flags.
//
// The zero value is the empty mask. Value methods return new masks, pointer methods
// replace the stored pattern. Comparing two masks with == compares their raw patterns.
type Bitmask[T Raw] struct {
	value T
}

// New creates a new typed [Bitmask] instance with the specified flags enabled.
func New[T Raw](flags ...T) Bitmask[T] {
	return Bitmask[T]{value: combine(flags)}
}

// Single creates a [Bitmask] containing exactly the bits of flag.
func Single[T Raw](flag T) Bitmask[T] {
	return Bitmask[T]{value: flag}
}

// From creates a [Bitmask] from the bit values of [Representable] flags.
func From[T Raw, F Representable[T]](flags ...F) Bitmask[T] {
	var b Bitmask[T]
	for _, flag := range flags {
		b.value |= flag.BitmaskValue()
	}

	return b
}

// Merge creates a [Bitmask] with all bits set in any of the given masks.
func Merge[T Raw](masks ...Bitmask[T]) Bitmask[T] {
	var b Bitmask[T]
	for _, m := range masks {
		b.value |= m.value
	}

	return b
}

// AllOnes returns the [Bitmask] with every bit of T set.
func AllOnes[T Raw]() Bitmask[T] {
	return Bitmask[T]{value: ^T(0)}
}

// BitmaskValue implements [Representable], so masks can be combined with [From].
func (b Bitmask[T]) BitmaskValue() T { return b.value }

// Value returns the raw bit pattern.
func (b Bitmask[T]) Value() T { return b.value }

// IsZero reports whether no bit is set.
func (b Bitmask[T]) IsZero() bool { return b.value == 0 }

// IsAllOnes reports whether every bit of T is set.
func (b Bitmask[T]) IsAllOnes() bool { return b.value == ^T(0) }

// Bool reports whether at least one bit is set.
func (b Bitmask[T]) Bool() bool { return b.value != 0 }

// Equal reports whether both masks have identical bit patterns.
func (b Bitmask[T]) Equal(o Bitmask[T]) bool { return b.value == o.value }

// Compare orders masks by the numeric value of their raw patterns.
//
// This is a positional ordering for use in sorting, not a subset relation:
// New(4).Compare(New(1, 2)) is positive although neither mask contains the other.
// For signed raw types, masks with the highest bit set sort first.
func (b Bitmask[T]) Compare(o Bitmask[T]) int { return cmp.Compare(b.value, o.value) }

// Less reports whether b sorts before o, see [Bitmask.Compare].
func (b Bitmask[T]) Less(o Bitmask[T]) bool { return b.value < o.value }

// Or returns the union of both masks.
func (b Bitmask[T]) Or(o Bitmask[T]) Bitmask[T] { return Bitmask[T]{b.value | o.value} }

// And returns the intersection of both masks.
func (b Bitmask[T]) And(o Bitmask[T]) Bitmask[T] { return Bitmask[T]{b.value & o.value} }

// Xor returns the bits set in exactly one of the masks.
func (b Bitmask[T]) Xor(o Bitmask[T]) Bitmask[T] { return Bitmask[T]{b.value ^ o.value} }

// AndNot returns the bits of b not set in o.
func (b Bitmask[T]) AndNot(o Bitmask[T]) Bitmask[T] { return Bitmask[T]{b.value &^ o.value} }

// Not returns the complement of b.
func (b Bitmask[T]) Not() Bitmask[T] { return Bitmask[T]{^b.value} }

// NotFlag returns the complement of a single flag.
func NotFlag[T Raw](flag T) Bitmask[T] { return Bitmask[T]{^flag} }

// With returns b with the given flags added.
func (b Bitmask[T]) With(flags ...T) Bitmask[T] { return Bitmask[T]{b.value | combine(flags)} }

// Only returns b restricted to the given flags.
func (b Bitmask[T]) Only(flags ...T) Bitmask[T] { return Bitmask[T]{b.value & combine(flags)} }

// Toggled returns b with the given flags flipped.
func (b Bitmask[T]) Toggled(flags ...T) Bitmask[T] { return Bitmask[T]{b.value ^ combine(flags)} }

// Without returns b with the given flags removed.
func (b Bitmask[T]) Without(flags ...T) Bitmask[T] { return Bitmask[T]{b.value &^ combine(flags)} }

// Matches reports whether pattern and value share at least one bit.
//
// This is an intersection test. Use [Bitmask.Contains] to require all bits.
func Matches[T Raw](pattern, value Bitmask[T]) bool {
	return pattern.value&value.value != 0
}

// Matches reports whether b and o share at least one bit, see [Matches].
func (b Bitmask[T]) Matches(o Bitmask[T]) bool { return Matches(b, o) }

// MatchesAny reports whether any of the given flags shares a bit with b.
func (b Bitmask[T]) MatchesAny(flags ...T) bool { return b.value&combine(flags) != 0 }

// Contains reports whether all bits of the given flags are set in b.
// Called without flags it returns true.
func (b Bitmask[T]) Contains(flags ...T) bool {
	c := combine(flags)

	return b.value&c == c
}

// ContainsAll reports whether all bits of o are set in b.
func (b Bitmask[T]) ContainsAll(o Bitmask[T]) bool { return b.value&o.value == o.value }

// Enabled checks if the specified option is enabled in the current bitmask.
func (b Bitmask[T]) Enabled(flag T) bool { return b.value&flag == flag }

// SetValue replaces the stored pattern.
func (b *Bitmask[T]) SetValue(value T) { b.value = value }

// Set adjusts the bitmask by enabling or disabling the specified option.
func (b *Bitmask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flags in the current bitmask.
func (b *Bitmask[T]) Enable(flags ...T) { b.value |= combine(flags) }

// Disable removes the specified flags from the current bitmask.
func (b *Bitmask[T]) Disable(flags ...T) { b.value &^= combine(flags) }

// Retain clears every bit not set in the given flags.
func (b *Bitmask[T]) Retain(flags ...T) { b.value &= combine(flags) }

// Toggle flips the given flags.
func (b *Bitmask[T]) Toggle(flags ...T) { b.value ^= combine(flags) }

// Update adds all bits of o.
func (b *Bitmask[T]) Update(o Bitmask[T]) { b.value |= o.value }

// Intersect clears every bit not set in o.
func (b *Bitmask[T]) Intersect(o Bitmask[T]) { b.value &= o.value }

// Difference flips all bits set in o.
func (b *Bitmask[T]) Difference(o Bitmask[T]) { b.value ^= o.value }

// String renders the raw pattern in binary, padded to the width of T.
func (b Bitmask[T]) String() string {
	w := Width[T]()
	v := uint64(b.value)
	if w < 64 {
		v &= 1<<w - 1
	}

	s := strconv.FormatUint(v, 2)

	var sb strings.Builder
	sb.Grow(2 + w)
	sb.WriteString("0b")
	sb.WriteString(strings.Repeat("0", w-len(s)))
	sb.WriteString(s)

	return sb.String()
}

// LogValue implements [slog.LogValuer].
func (b Bitmask[T]) LogValue() slog.Value {
	return slog.StringValue(b.String())
}

// combine returns the bitwise OR of all flags.
func combine[T Raw](flags []T) T {
	var v T
	for _, flag := range flags {
		v |= flag
	}

	return v
}
