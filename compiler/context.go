// This file is part of c-to-vm - https://github.com/itamar8910/c-to-vm
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

package compiler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/itamar8910/c-to-vm/ast"
)

// varSlot records where a local variable lives in the function's frame.
type varSlot struct {
	offset int // position among declared locals, 0-based, in declaration order
}

// context carries all per-compilation mutable state: the emitted code
// buffer, the temp-label counter, and the current function's variable
// table. One context is built fresh per Compile call, so nothing leaks
// between compilations — grounded on ngaro/asm.parser, which bundles a
// compilation's scanner/label/const state into a single struct rather than
// package-level globals (the original Python compiler.py uses module-level
// `code`/`TMP_LABEL_COUNT`/`SCOPE_TO_DATA` globals, which we deliberately do
// not carry over: see DESIGN.md, "Compiler ambient state").
type context struct {
	code     []string
	tmpCount int

	funcName string
	regsUsed []string
	vars     map[string]varSlot
	order    []string // declaration order, for the "PUSH 0" prologue
}

func newContext() *context {
	return &context{regsUsed: []string{"R1", "R2"}, vars: make(map[string]varSlot)}
}

func (c *context) emit(format string, args ...interface{}) {
	c.code = append(c.code, fmt.Sprintf(format, args...))
}

func (c *context) label() string {
	l := fmt.Sprintf("_TMP%d", c.tmpCount)
	c.tmpCount++
	return l
}

func (c *context) emitLabel(name string) {
	c.code = append(c.code, name+":")
}

// declareLocal registers a new local variable in declaration order, the
// way update_vars walks a function body's top-level Decl statements before
// any code is generated.
func (c *context) declareLocal(name string) error {
	if _, dup := c.vars[name]; dup {
		return errors.Errorf("variable %q redeclared", name)
	}
	c.vars[name] = varSlot{offset: len(c.order)}
	c.order = append(c.order, name)
	return nil
}

// loadAddrOf emits code leaving the address of name in R1, per
// compiler.py's load_addr_of: the distance from BP to a local is fixed by
// the number of saved registers and the local's declaration index.
func (c *context) loadAddrOf(name string) error {
	slot, ok := c.vars[name]
	if !ok {
		return errors.Errorf("undeclared variable %q", name)
	}
	offsetFromBP := -(1 + len(c.regsUsed) + slot.offset)
	c.emit("ADD R1 BP %d", offsetFromBP)
	return nil
}

// collectLocals scans a function body's top-level statements for
// declarations. Only top-level declarations are collected, matching
// compiler.py's update_vars (the subset has no block scoping).
func collectLocals(c *context, body *ast.Compound) error {
	for _, stmt := range body.Stmts {
		if decl, ok := stmt.(*ast.Decl); ok {
			if err := c.declareLocal(decl.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
