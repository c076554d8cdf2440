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
	"iter"
	"log/slog"
	"slices"
)

// OptionSet is a read-only snapshot of a [Bitmask] answering membership queries.
//
// A bounded OptionSet also knows the universe of meaningful variants and precomputes
// those that are set. Later changes to the originating mask are not reflected.
// Construct OptionSets with [NewOptionSet], [NewBoundedOptionSet] or [Universe.OptionSet];
// the zero value reports no variant as set.
type OptionSet[V comparable, T Raw] struct {
	mask    Bitmask[T]
	bits    func(V) T
	members []V
	bounded bool
}

// NewOptionSet returns an unbounded view of m. It answers [OptionSet.IsSet] and
// [OptionSet.AreSet], but enumerates no members.
func NewOptionSet[V Flag[T], T Raw](m Bitmask[T]) OptionSet[V, T] {
	return OptionSet[V, T]{mask: m, bits: bitmaskValue[V, T]}
}

// NewBoundedOptionSet returns a view of m over the given universe.
// Variants occurring more than once in universe are enumerated once, in first-seen order.
func NewBoundedOptionSet[V Flag[T], T Raw](m Bitmask[T], universe iter.Seq[V]) OptionSet[V, T] {
	var members []V
	for v := range universe {
		if b := v.BitmaskValue(); m.value&b == b && !slices.Contains(members, v) {
			members = append(members, v)
		}
	}

	return OptionSet[V, T]{
		mask:    m,
		bits:    bitmaskValue[V, T],
		members: members,
		bounded: true,
	}
}

func bitmaskValue[V Representable[T], T Raw](v V) T { return v.BitmaskValue() }

// IsSet reports whether all bits of v are set.
//
// For views created by [Universe.OptionSet] it panics when v is not declared in the universe.
func (o OptionSet[V, T]) IsSet(v V) bool {
	if o.bits == nil {
		return false
	}

	b := o.bits(v)

	return o.mask.value&b == b
}

// AreSet reports whether every one of the given variants is set.
func (o OptionSet[V, T]) AreSet(vs ...V) bool {
	var c T
	if o.bits != nil {
		for _, v := range vs {
			c |= o.bits(v)
		}
	} else if len(vs) > 0 {
		return false
	}

	return o.mask.value&c == c
}

// Members yields the variants of the universe that are set.
// Every iteration yields the same variants in the same order.
func (o OptionSet[V, T]) Members() iter.Seq[V] {
	return slices.Values(o.members)
}

// Len returns the number of members.
func (o OptionSet[V, T]) Len() int { return len(o.members) }

// Bounded reports whether the view was created with a universe and enumerates its members.
func (o OptionSet[V, T]) Bounded() bool { return o.bounded }

// Mask returns the snapshotted mask.
func (o OptionSet[V, T]) Mask() Bitmask[T] { return o.mask }

// LogValue implements [slog.LogValuer].
func (o OptionSet[V, T]) LogValue() slog.Value {
	if !o.bounded {
		return slog.GroupValue(slog.Any("mask", o.mask))
	}

	return slog.GroupValue(
		slog.Any("mask", o.mask),
		slog.Any("members", o.members),
	)
}
