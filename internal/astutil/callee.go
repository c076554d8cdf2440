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
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// PackagePath is the import path of the bitmask package.
const PackagePath = "fillmore-labs.com/bitmask"

// Callee returns the generic origin of the bitmask package function or method called by call,
// or nil when call does not target the bitmask package.
func Callee(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PackagePath {
		return nil
	}

	return fn.Origin()
}

// ReceiverName returns the name of the receiver's named type for methods, or "" for functions.
func ReceiverName(fn *types.Func) string {
	recv := fn.Signature().Recv()
	if recv == nil {
		return ""
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	if n, ok := t.(*types.Named); ok {
		return n.Origin().Obj().Name()
	}

	return ""
}

// TypeArgs returns the type arguments of a generic function instantiated at call.
func TypeArgs(info *types.Info, call *ast.CallExpr) *types.TypeList {
	var id *ast.Ident

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun

	case *ast.SelectorExpr:
		id = fun.Sel

	case *ast.IndexExpr:
		id = funcIdent(fun.X)

	case *ast.IndexListExpr:
		id = funcIdent(fun.X)
	}

	if id == nil {
		return nil
	}

	return info.Instances[id].TypeArgs
}

func funcIdent(x ast.Expr) *ast.Ident {
	switch x := ast.Unparen(x).(type) {
	case *ast.Ident:
		return x

	case *ast.SelectorExpr:
		return x.Sel
	}

	return nil
}

// ReceiverTypeArgs returns the type arguments of the receiver of an instantiated method call.
// The receiver is taken from the called method, so methods promoted through embedding resolve
// to the embedded type.
func ReceiverTypeArgs(info *types.Info, call *ast.CallExpr) *types.TypeList {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return nil
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return nil
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	if n, ok := t.(*types.Named); ok {
		return n.TypeArgs()
	}

	return nil
}
