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

// Package bitmask declares the API surface of fillmore-labs.com/bitmask checked by the analyzer.
package bitmask

type Raw interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Universe[V comparable, T Raw] struct {
	variants []V
}

func NewUniverse[V comparable, T Raw](variants ...V) (*Universe[V, T], error) {
	return &Universe[V, T]{variants: variants}, nil
}

func MustUniverse[V comparable, T Raw](variants ...V) *Universe[V, T] {
	return &Universe[V, T]{variants: variants}
}

func (u *Universe[V, T]) Variant(bits T) (V, error) {
	var v V

	return v, nil
}

func (u *Universe[V, T]) MustVariant(bits T) V {
	var v V

	return v
}

func (u *Universe[V, T]) BitValue(v V) (T, error) {
	return 0, nil
}
