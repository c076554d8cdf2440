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
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var errNoMask = errors.New("flag value without mask")

// BoolFlag returns a boolean [flag.Value] that enables or disables option in m.
func BoolFlag[T Raw](m *Bitmask[T], option T) flag.Getter {
	return boolValue[T]{mask: m, flag: option}
}

type boolValue[T Raw] struct {
	mask *Bitmask[T]
	flag T
}

// Set implements [flag.Value].
func (f boolValue[T]) Set(s string) error {
	if f.mask == nil {
		return errNoMask
	}

	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.flag, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[T]) String() string {
	if f.mask == nil {
		return "false"
	}

	return strconv.FormatBool(f.mask.Enabled(f.flag))
}

// Get implements [flag.Getter].
func (f boolValue[T]) Get() any {
	if f.mask == nil {
		return false
	}

	return f.mask.Enabled(f.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// Var returns a [flag.Value] setting m from a comma separated list of variant names.
//
// Variant names are their default formats, as printed by [fmt.Sprint].
// Setting the flag replaces the mask, an empty list clears it.
func (u *Universe[V, T]) Var(m *Bitmask[T]) flag.Getter {
	return listValue[V, T]{universe: u, mask: m}
}

type listValue[V comparable, T Raw] struct {
	universe *Universe[V, T]
	mask     *Bitmask[T]
}

// Set implements [flag.Value].
func (f listValue[V, T]) Set(s string) error {
	if f.universe == nil || f.mask == nil {
		return errNoMask
	}

	var value T

	if s != "" {
		for name := range strings.SplitSeq(s, ",") {
			b, err := f.lookup(strings.TrimSpace(name))
			if err != nil {
				return err
			}

			value |= b
		}
	}

	f.mask.SetValue(value)

	return nil
}

func (f listValue[V, T]) lookup(name string) (T, error) {
	for i, v := range f.universe.All() {
		if fmt.Sprint(v) == name {
			return bit[T](i), nil
		}
	}

	return 0, fmt.Errorf("flag name %q: %w", name, ErrUnknownVariant)
}

// String implements [flag.Value].
func (f listValue[V, T]) String() string {
	if f.universe == nil || f.mask == nil {
		return ""
	}

	var sb strings.Builder
	for v := range f.universe.OptionSet(*f.mask).Members() {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// Get implements [flag.Getter].
func (f listValue[V, T]) Get() any {
	if f.mask == nil {
		return Bitmask[T]{}
	}

	return *f.mask
}
