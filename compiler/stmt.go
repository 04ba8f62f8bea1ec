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
	"github.com/pkg/errors"

	"github.com/itamar8910/c-to-vm/ast"
)

// codeGen lowers a statement, appending mnemonic lines to c.code.
func codeGen(c *context, stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.Compound:
		for _, s := range n.Stmts {
			if err := codeGen(c, s); err != nil {
				return err
			}
		}
		return nil

	case *ast.Return:
		if err := rightGen(c, n.Expr); err != nil {
			return err
		}
		c.emit("ADD R2 BP 2")
		c.emit("STR R2 R1")
		c.emit("JUMP _%s_END", c.funcName)
		return nil

	case *ast.Decl:
		if n.Init == nil {
			return nil // the frame prologue already zero-initialised this slot.
		}
		if err := c.loadAddrOf(n.Name); err != nil {
			return err
		}
		c.emit("PUSH R1")
		if err := rightGen(c, n.Init); err != nil {
			return err
		}
		c.emit("POP R2")
		c.emit("STR R2 R1")
		return nil

	case *ast.ExprStmt:
		return rightGen(c, n.X)

	case *ast.If:
		return codeGenIf(c, n)

	case *ast.While:
		return codeGenWhile(c, n)

	default:
		return errors.Wrapf(ErrUnsupportedNode, "statement node %T", stmt)
	}
}

// codeGenIf lowers a conditional branch: the VM's TJMP/FJMP opcodes exist
// to support exactly this.
func codeGenIf(c *context, n *ast.If) error {
	if err := rightGen(c, n.Cond); err != nil {
		return err
	}
	c.emit("TSTE R1 0")
	if n.Else == nil {
		end := c.label()
		c.emit("TJMP %s", end)
		if err := codeGen(c, n.Then); err != nil {
			return err
		}
		c.emitLabel(end)
		return nil
	}
	elseLabel := c.label()
	end := c.label()
	c.emit("TJMP %s", elseLabel)
	if err := codeGen(c, n.Then); err != nil {
		return err
	}
	c.emit("JUMP %s", end)
	c.emitLabel(elseLabel)
	if err := codeGen(c, n.Else); err != nil {
		return err
	}
	c.emitLabel(end)
	return nil
}

// codeGenWhile lowers a pretest loop; see codeGenIf for the branch shape.
func codeGenWhile(c *context, n *ast.While) error {
	start := c.label()
	end := c.label()
	c.emitLabel(start)
	if err := rightGen(c, n.Cond); err != nil {
		return err
	}
	c.emit("TSTE R1 0")
	c.emit("TJMP %s", end)
	if err := codeGen(c, n.Body); err != nil {
		return err
	}
	c.emit("JUMP %s", start)
	c.emitLabel(end)
	return nil
}
