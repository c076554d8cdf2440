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
	"fmt"
	"iter"
	"slices"
)

// Universe assigns sequential bits to an ordered list of flag variants.
//
// The variant at position i owns the bit 1 << i. The declaration order is therefore
// load-bearing: reordering the variants changes the meaning of every stored mask.
// A Universe is immutable and safe for concurrent use.
type Universe[V comparable, T Raw] struct {
	variants []V
}

// NewUniverse declares the ordered, duplicate-free list of all variants of a flag type.
//
// It fails with [ErrUniverseOverflow] when T cannot hold a bit for every variant
// and with [ErrDuplicateVariant] when a variant is listed twice.
func NewUniverse[V comparable, T Raw](variants ...V) (*Universe[V, T], error) {
	if w := Width[T](); len(variants) > w {
		return nil, fmt.Errorf("%d variants, %d bits: %w", len(variants), w, ErrUniverseOverflow)
	}

	for i, v := range variants {
		if j := slices.Index(variants[:i], v); j >= 0 {
			return nil, fmt.Errorf("variant %v at positions %d and %d: %w", v, j, i, ErrDuplicateVariant)
		}
	}

	return &Universe[V, T]{variants: slices.Clone(variants)}, nil
}

// MustUniverse is like [NewUniverse] but panics on invalid declarations.
// It simplifies safe initialization of global variables holding universes.
func MustUniverse[V comparable, T Raw](variants ...V) *Universe[V, T] {
	u, err := NewUniverse[V, T](variants...)
	if err != nil {
		panic(fmt.Errorf("bitmask: MustUniverse: %w", err))
	}

	return u
}

// Len returns the number of declared variants.
func (u *Universe[V, T]) Len() int { return len(u.variants) }

// Variants returns a copy of the declared variants in declaration order.
func (u *Universe[V, T]) Variants() []V { return slices.Clone(u.variants) }

// All yields the bit index and variant of every declared variant in declaration order.
func (u *Universe[V, T]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range u.variants {
			if !yield(i, v) {
				return
			}
		}
	}
}

// BitValue returns the bit owned by the variant v.
func (u *Universe[V, T]) BitValue(v V) (T, error) {
	i := slices.Index(u.variants, v)
	if i < 0 {
		return 0, fmt.Errorf("bit value for %v: %w", v, ErrUnknownVariant)
	}

	return bit[T](i), nil
}

// MustBitValue is like [Universe.BitValue] but panics when v is not declared.
func (u *Universe[V, T]) MustBitValue(v V) T {
	b, err := u.BitValue(v)
	if err != nil {
		panic(fmt.Errorf("bitmask: %w", err))
	}

	return b
}

// Variant returns the variant owning the bit pattern bits.
func (u *Universe[V, T]) Variant(bits T) (V, error) {
	for i, v := range u.variants {
		if bit[T](i) == bits {
			return v, nil
		}
	}

	var null V

	return null, fmt.Errorf("variant for %v: %w", Single(bits), ErrUnmappableBitValue)
}

// MustVariant is like [Universe.Variant] but panics when no single variant owns bits.
func (u *Universe[V, T]) MustVariant(bits T) V {
	v, err := u.Variant(bits)
	if err != nil {
		panic(fmt.Errorf("bitmask: %w", err))
	}

	return v
}

// Mask combines the bits of the given variants.
func (u *Universe[V, T]) Mask(vs ...V) (Bitmask[T], error) {
	var b Bitmask[T]
	for _, v := range vs {
		bits, err := u.BitValue(v)
		if err != nil {
			return Bitmask[T]{}, err
		}

		b.value |= bits
	}

	return b, nil
}

// MustMask is like [Universe.Mask] but panics on undeclared variants.
func (u *Universe[V, T]) MustMask(vs ...V) Bitmask[T] {
	b, err := u.Mask(vs...)
	if err != nil {
		panic(fmt.Errorf("bitmask: %w", err))
	}

	return b
}

// Full returns the mask with the bits of all declared variants set.
func (u *Universe[V, T]) Full() Bitmask[T] {
	var b Bitmask[T]
	for i := range u.variants {
		b.value |= bit[T](i)
	}

	return b
}

// OptionSet returns a snapshot of m bounded by this universe.
// The method value u.OptionSet converts masks into views.
func (u *Universe[V, T]) OptionSet(m Bitmask[T]) OptionSet[V, T] {
	members := make([]V, 0, len(u.variants))
	for i, v := range u.variants {
		if b := bit[T](i); m.value&b == b {
			members = append(members, v)
		}
	}

	return OptionSet[V, T]{
		mask:    m,
		bits:    u.MustBitValue,
		members: members,
		bounded: true,
	}
}
