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
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/bitmask"
)

func TestOptionSetMembers(t *testing.T) {
	t.Parallel()

	mask := monsters.MustMask(nasty, creepy)

	tests := []struct {
		name string
		set  OptionSet[monster, uint16]
	}{
		{"Universe", monsters.OptionSet(mask)},
		{"Seq", NewBoundedOptionSet(mask, slices.Values([]monster{huge, nasty, creepy}))},
		{"Duplicates", NewBoundedOptionSet(mask, slices.Values([]monster{creepy, nasty, creepy}))},
		{"Map", NewBoundedOptionSet(mask, maps.Keys(map[monster]struct{}{huge: {}, nasty: {}, creepy: {}}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !tt.set.Bounded() {
				t.Error("Expected bounded option set")
			}

			first := slices.Collect(tt.set.Members())
			second := slices.Collect(tt.set.Members())

			if !slices.Equal(first, second) {
				t.Errorf("Members not restartable: %v != %v", first, second)
			}

			got := slices.Sorted(slices.Values(first))
			if want := []monster{creepy, nasty}; !slices.Equal(got, want) {
				t.Errorf("Members() = %v, want %v", got, want)
			}

			if got := tt.set.Len(); got != 2 {
				t.Errorf("Len() = %d, want 2", got)
			}
		})
	}
}

func TestOptionSetOrder(t *testing.T) {
	t.Parallel()

	set := monsters.OptionSet(monsters.Full())

	if got, want := slices.Collect(set.Members()), monsters.Variants(); !slices.Equal(got, want) {
		t.Errorf("Members() = %v, want declaration order %v", got, want)
	}
}

func TestOptionSetQueries(t *testing.T) {
	t.Parallel()

	mask := New[uint16](nasty.BitmaskValue(), creepy.BitmaskValue())

	for _, set := range []OptionSet[monster, uint16]{
		monsters.OptionSet(mask),
		NewOptionSet[monster](mask),
	} {
		if !set.IsSet(nasty) {
			t.Errorf("Expected %q to be set", nasty)
		}

		if set.IsSet(huge) {
			t.Errorf("Expected %q not to be set", huge)
		}

		if !set.AreSet(nasty, creepy) {
			t.Errorf("Expected %q and %q to be set", nasty, creepy)
		}

		if set.AreSet(nasty, huge) {
			t.Errorf("Expected %q and %q not to be both set", nasty, huge)
		}

		if !set.AreSet() {
			t.Error("Expected empty query to be contained")
		}
	}
}

func TestOptionSetUnbounded(t *testing.T) {
	t.Parallel()

	set := NewOptionSet[monster](monsters.Full())

	if set.Bounded() {
		t.Error("Expected unbounded option set")
	}

	if got := slices.Collect(set.Members()); len(got) != 0 {
		t.Errorf("Members() = %v, want none", got)
	}
}

// multi is a flag type where a single variant spans multiple bits.
type multi uint8

func (m multi) BitmaskValue() multi { return m }

func TestOptionSetMultiBit(t *testing.T) {
	t.Parallel()

	const (
		read  multi = 0b001
		write multi = 0b010
		rw          = read | write
	)

	set := NewBoundedOptionSet(Single(read), slices.Values([]multi{read, write, rw}))

	if set.IsSet(rw) {
		t.Error("Expected read|write not to be contained in read")
	}

	if !set.IsSet(read) {
		t.Error("Expected read to be contained in read")
	}

	if got := slices.Collect(set.Members()); !slices.Equal(got, []multi{read}) {
		t.Errorf("Members() = %v, want [read]", got)
	}
}

func TestOptionSetSnapshot(t *testing.T) {
	t.Parallel()

	mask := monsters.MustMask(nasty)
	set := monsters.OptionSet(mask)

	mask.Enable(monsters.MustBitValue(creepy))

	if set.IsSet(creepy) {
		t.Error("Option set reflects later mask mutation")
	}

	if got := set.Mask().Value(); got != 2 {
		t.Errorf("Mask() = %d, want 2", got)
	}
}

func TestOptionSetUnknownVariant(t *testing.T) {
	t.Parallel()

	set := monsters.OptionSet(monsters.Full())

	expectPanic(t, ErrUnknownVariant, func() { set.IsSet("cute") })
}

func TestOptionSetLogValue(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))

	logger.Info("flags", "set", monsters.OptionSet(monsters.MustMask(nasty)))

	const want = `level=INFO msg=flags set.mask=0b0000000000000010 set.members=[ugly]` + "\n"
	if got := out.String(); got != want {
		t.Errorf("Got log %q, want %q", got, want)
	}
}
