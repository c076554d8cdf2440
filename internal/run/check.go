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

package run

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bitmask/internal/astutil"
	"fillmore-labs.com/bitmask/internal/config"
)

// checker reports invalid uses of the bitmask package in a single file.
type checker struct {
	*analysis.Pass
	currentFile astutil.CurrentFile
	checks      config.Checks
}

// checkFile inspects all calls into the bitmask package.
func (c checker) checkFile(ctx context.Context, file inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	for cur := range file.Preorder((*ast.CallExpr)(nil)) {
		call := cur.Node().(*ast.CallExpr)

		fn := astutil.Callee(c.TypesInfo, call)
		if fn == nil {
			continue
		}

		switch recv := astutil.ReceiverName(fn); {
		case recv == "" && (fn.Name() == "NewUniverse" || fn.Name() == "MustUniverse"):
			c.checkUniverse(call)

		case recv == "Universe" && (fn.Name() == "Variant" || fn.Name() == "MustVariant"):
			c.checkVariant(call)
		}
	}
}

// checkUniverse validates a universe declaration.
func (c checker) checkUniverse(call *ast.CallExpr) {
	if astutil.Variadic(call) {
		return // variants unknown
	}

	if c.checks.Enabled(config.CheckOverflow) {
		c.checkOverflow(call)
	}

	if c.checks.Enabled(config.CheckDuplicates) {
		c.checkDuplicates(call)
	}
}

// checkOverflow reports universes declaring more variants than the raw type has bits.
func (c checker) checkOverflow(call *ast.CallExpr) {
	targs := astutil.TypeArgs(c.TypesInfo, call)
	if targs.Len() != 2 {
		astutil.InternalError(c.Pass, call, "Universe declaration without type arguments")

		return
	}

	raw := targs.At(1)

	width, ok := c.width(raw)
	if !ok || len(call.Args) <= width {
		return
	}

	c.report(call, config.CheckOverflow, "universe declares %d variants, but %s holds only %d bits",
		len(call.Args), types.TypeString(raw, types.RelativeTo(c.Pkg)), width)
}

// checkDuplicates reports variants declared more than once.
func (c checker) checkDuplicates(call *ast.CallExpr) {
	seen := make(map[any]int, len(call.Args))

	for i, arg := range astutil.Arguments(c.TypesInfo, call) {
		key := arg.Identity(c.TypesInfo)
		if key == nil {
			continue
		}

		first, ok := seen[key]
		if !ok {
			seen[key] = i

			continue
		}

		c.report(arg.Expr, config.CheckDuplicates, "duplicate variant %s in universe, first declared at position %d",
			types.ExprString(arg.Expr), first)
	}
}

// checkVariant reports constant bit values that no single variant can own.
func (c checker) checkVariant(call *ast.CallExpr) {
	if !c.checks.Enabled(config.CheckUnmappable) || len(call.Args) != 1 {
		return
	}

	targs := astutil.ReceiverTypeArgs(c.TypesInfo, call)
	if targs.Len() != 2 {
		return // receiver not resolved
	}

	arg := call.Args[0]

	value := c.TypesInfo.Types[arg].Value
	if value == nil {
		return // not constant
	}

	width, ok := c.width(targs.At(1))
	if !ok {
		return
	}

	bits, ok := astutil.Bits(value, width)
	if !ok || (bits != 0 && bits&(bits-1) == 0) {
		return
	}

	c.report(arg, config.CheckUnmappable, "bit value %#x does not map to a single variant", bits)
}

// width returns the number of bits in the raw type t.
func (c checker) width(t types.Type) (int, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return 0, false
	}

	sizes := c.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	return int(sizes.Sizeof(t)) * 8, true
}

// report emits a diagnostic unless suppressed by a nolint comment.
func (c checker) report(rng analysis.Range, check config.Check, format string, args ...any) {
	if c.currentFile.NoLintComment(rng.Pos()) {
		return
	}

	c.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: check.String(),
		Message:  fmt.Sprintf(format, args...),
	})
}
