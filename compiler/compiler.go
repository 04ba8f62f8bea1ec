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
	"strings"

	"github.com/pkg/errors"

	"github.com/itamar8910/c-to-vm/ast"
)

// Compile lowers C subset source text into mnemonic assembly lines, ready
// for package asm. Every call runs against a fresh context: nothing from
// one Compile call is visible to the next.
func Compile(src string) ([]string, error) {
	prog, err := ast.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return CompileProgram(prog)
}

// CompileProgram lowers an already-parsed program, for callers that parse
// once and compile multiple times (e.g. tests asserting on the AST first).
func CompileProgram(prog *ast.Program) ([]string, error) {
	c := newContext()
	if err := compileFunc(c, prog.Func); err != nil {
		return nil, errors.Wrapf(err, "compiling function %s", prog.Func.Name)
	}
	return c.code, nil
}

// CompileText is Compile with its result already joined into assembler
// source text, the form package asm.Assemble reads.
func CompileText(src string) (string, error) {
	lines, err := Compile(src)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func compileFunc(c *context, fn *ast.FuncDef) error {
	c.funcName = fn.Name
	if err := collectLocals(c, fn.Body); err != nil {
		return err
	}

	for _, reg := range c.regsUsed {
		c.emit("PUSH %s", reg)
	}
	for range c.order {
		c.emit("PUSH 0")
	}

	if err := codeGen(c, fn.Body); err != nil {
		return err
	}

	c.emitLabel("_" + c.funcName + "_END")
	for i := len(c.regsUsed) - 1; i >= 0; i-- {
		c.emit("POP %s", c.regsUsed[i])
	}
	c.emit("RET")
	return nil
}
