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

package bitmask_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/bitmask"
)

type monster string

const (
	huge   monster = "big"
	nasty  monster = "ugly"
	creepy monster = "scary"
)

var monsters = MustUniverse[monster, uint16](huge, nasty, creepy)

func (m monster) BitmaskValue() uint16 { return monsters.MustBitValue(m) }

func TestBitValue(t *testing.T) {
	t.Parallel()

	for i, v := range monsters.All() {
		got, err := monsters.BitValue(v)
		if err != nil {
			t.Fatalf("BitValue(%q) failed: %v", v, err)
		}

		if want := uint16(1) << i; got != want {
			t.Errorf("BitValue(%q) = %d, want %d", v, got, want)
		}
	}

	tests := []struct {
		variant monster
		want    uint16
	}{
		{huge, 1},
		{nasty, 2},
		{creepy, 4},
	}

	for _, tt := range tests {
		if got := tt.variant.BitmaskValue(); got != tt.want {
			t.Errorf("%q.BitmaskValue() = %d, want %d", tt.variant, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range monsters.Variants() {
		if got := monsters.MustVariant(monsters.MustBitValue(v)); got != v {
			t.Errorf("Got %q, want %q", got, v)
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	t.Parallel()

	if _, err := monsters.BitValue("cute"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("BitValue error = %v, want %v", err, ErrUnknownVariant)
	}

	if _, err := monsters.Mask(nasty, "cute"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Mask error = %v, want %v", err, ErrUnknownVariant)
	}

	expectPanic(t, ErrUnknownVariant, func() { monsters.MustBitValue("cute") })
}

func TestUnmappableBitValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits uint16
	}{
		{"Zero", 0},
		{"Combined", 3},
		{"OutOfRange", 8},
		{"HighBit", 1 << 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := monsters.Variant(tt.bits)
			if !errors.Is(err, ErrUnmappableBitValue) {
				t.Errorf("Variant(%d) = %q, %v, want %v", tt.bits, v, err, ErrUnmappableBitValue)
			}

			expectPanic(t, ErrUnmappableBitValue, func() { monsters.MustVariant(tt.bits) })
		})
	}
}

func TestUniverseOverflow(t *testing.T) {
	t.Parallel()

	variants := make([]int, 9)
	for i := range variants {
		variants[i] = i
	}

	if _, err := NewUniverse[int, uint8](variants[:8]...); err != nil {
		t.Errorf("Expected 8 variants to fit into uint8: %v", err)
	}

	if _, err := NewUniverse[int, uint8](variants...); !errors.Is(err, ErrUniverseOverflow) {
		t.Errorf("NewUniverse error = %v, want %v", err, ErrUniverseOverflow)
	}

	expectPanic(t, ErrUniverseOverflow, func() { MustUniverse[int, int8](variants...) })
}

func TestUniverseWidth64(t *testing.T) {
	t.Parallel()

	variants := make([]int, 64)
	for i := range variants {
		variants[i] = i
	}

	u, err := NewUniverse[int, int64](variants...)
	if err != nil {
		t.Fatalf("NewUniverse failed: %v", err)
	}

	if got, want := u.MustBitValue(63), int64(-1<<63); got != want {
		t.Errorf("BitValue(63) = %d, want %d", got, want)
	}

	if got := u.MustVariant(-1 << 63); got != 63 {
		t.Errorf("Variant(1<<63) = %d, want 63", got)
	}

	if !u.Full().IsAllOnes() {
		t.Errorf("Full() = %v, want all ones", u.Full())
	}
}

func TestDuplicateVariant(t *testing.T) {
	t.Parallel()

	if _, err := NewUniverse[monster, uint8](huge, nasty, huge); !errors.Is(err, ErrDuplicateVariant) {
		t.Errorf("NewUniverse error = %v, want %v", err, ErrDuplicateVariant)
	}
}

func TestUniverseIsolation(t *testing.T) {
	t.Parallel()

	variants := []monster{huge, nasty}
	u := MustUniverse[monster, uint8](variants...)
	variants[0] = creepy

	if got := u.MustBitValue(huge); got != 1 {
		t.Errorf("BitValue changed after modifying declaration slice: %d", got)
	}

	copied := u.Variants()
	copied[1] = creepy

	if !slices.Equal(u.Variants(), []monster{huge, nasty}) {
		t.Errorf("Variants changed after modifying returned slice: %v", u.Variants())
	}
}

func TestUniverseMask(t *testing.T) {
	t.Parallel()

	m := monsters.MustMask(nasty, creepy)
	if got := m.Value(); got != 6 {
		t.Errorf("Mask(ugly, scary) = %d, want 6", got)
	}

	if got, want := From[uint16](nasty, creepy), m; got != want {
		t.Errorf("From(ugly, scary) = %v, want %v", got, want)
	}

	if got := monsters.Full().Value(); got != 7 {
		t.Errorf("Full() = %d, want 7", got)
	}

	if got := monsters.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func expectPanic(tb testing.TB, target error, f func()) {
	tb.Helper()

	defer func() {
		r := recover()
		if r == nil {
			tb.Errorf("Expected panic with %v", target)

			return
		}

		if err, ok := r.(error); !ok || !errors.Is(err, target) {
			tb.Errorf("Recovered %v, want %v", r, target)
		}
	}()

	f()
}
