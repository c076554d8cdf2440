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

package astutil

import (
	"go/ast"
	"go/constant"
	"go/types"
	"iter"
)

// Variadic reports whether the call passes a slice to a variadic parameter (f(xs...)).
func Variadic(call *ast.CallExpr) bool {
	return call.Ellipsis.IsValid()
}

// Argument is a call argument with its constant value.
type Argument struct {
	Expr ast.Expr
	// Value is nil when Expr is not a constant expression.
	Value constant.Value
}

// Arguments yields the position and value of all call arguments.
func Arguments(info *types.Info, call *ast.CallExpr) iter.Seq2[int, Argument] {
	return func(yield func(int, Argument) bool) {
		for i, arg := range call.Args {
			if !yield(i, Argument{Expr: arg, Value: info.Types[arg].Value}) {
				return
			}
		}
	}
}

// Identity returns a key identifying the value of an argument: its type and exact constant value,
// or the variable an identifier refers to. It returns nil when the value is unknown.
//
// Constants of different types are distinct, since they compare unequal as interface values.
func (a Argument) Identity(info *types.Info) any {
	if a.Value != nil {
		return types.TypeString(info.TypeOf(a.Expr), nil) + ":" + a.Value.Kind().String() + ":" + a.Value.ExactString()
	}

	if id, ok := ast.Unparen(a.Expr).(*ast.Ident); ok {
		if obj, ok := info.Uses[id].(*types.Var); ok {
			return obj
		}
	}

	return nil
}

// Bits returns the two's complement bit pattern of an integer constant truncated to width bits.
func Bits(value constant.Value, width int) (uint64, bool) {
	value = constant.ToInt(value)
	if value.Kind() != constant.Int {
		return 0, false
	}

	var bits uint64
	if u, ok := constant.Uint64Val(value); ok {
		bits = u
	} else if i, ok := constant.Int64Val(value); ok {
		bits = uint64(i)
	} else {
		return 0, false
	}

	if width < 64 {
		bits &= 1<<width - 1
	}

	return bits, true
}
