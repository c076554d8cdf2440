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

import "errors"

var (
	// ErrUnknownVariant is returned when a variant is not part of its declared [Universe].
	// It indicates a programming error: a case omitted from its own variant list.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnmappableBitValue is returned when a bit pattern is not owned by exactly one variant,
	// e.g. zero, a combination of flags or a bit beyond the declared variants.
	ErrUnmappableBitValue = errors.New("bit value does not map to a single variant")

	// ErrUniverseOverflow is returned when a [Universe] declares more variants than its raw type has bits.
	ErrUniverseOverflow = errors.New("too many variants for raw type")

	// ErrDuplicateVariant is returned when a [Universe] declares the same variant twice.
	ErrDuplicateVariant = errors.New("duplicate variant")
)
