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

// binOpMnemonics maps an arithmetic/bitwise BinaryExpr operator straight to
// its opcode mnemonic, exactly compiler.py's BIN_OP_MAP.
var binOpMnemonics = map[ast.TokenKind]string{
	ast.TkPlus:   "ADD",
	ast.TkMinus:  "SUB",
	ast.TkTimes:  "MUL",
	ast.TkDiv:    "DIV",
	ast.TkMod:    "MOD",
	ast.TkBitAnd: "AND",
	ast.TkBitOr:  "OR",
	ast.TkShl:    "SHL",
	ast.TkShr:    "SHR",
	ast.TkBitXor: "XOR",
}

// rightGen lowers expr so that its value ends up in R1, leaving the stack
// depth unchanged — the same invariant compiler.py's right_gen documents.
func rightGen(c *context, expr ast.Expr) error {
	switch n := expr.(type) {
	case *ast.IntLit:
		c.emit("MOV R1 %d", n.Value)
		return nil

	case *ast.Ident:
		if err := c.loadAddrOf(n.Name); err != nil {
			return err
		}
		c.emit("LOAD R1 R1")
		return nil

	case *ast.UnaryExpr:
		if err := rightGen(c, n.Operand); err != nil {
			return err
		}
		switch n.Op {
		case ast.TkMinus:
			c.emit("NEG R1")
		case ast.TkNot:
			c.emit("TSTE R1 0")
			c.emit("MOV R1 ZR")
		case ast.TkPlus:
			// no-op: unary + does not change the value.
		default:
			return errors.Errorf("unsupported unary operator %s", n.Op)
		}
		return nil

	case *ast.BinaryExpr:
		return rightGenBinary(c, n)

	case *ast.AssignExpr:
		return rightGenAssign(c, n)

	default:
		return errors.Wrapf(ErrUnsupportedNode, "expression node %T", expr)
	}
}

func rightGenBinary(c *context, n *ast.BinaryExpr) error {
	if err := rightGen(c, n.Left); err != nil {
		return err
	}
	c.emit("PUSH R1") // save left side
	if err := rightGen(c, n.Right); err != nil {
		return err
	}
	c.emit("POP R2") // R2 = left, R1 = right

	if mnemonic, ok := binOpMnemonics[n.Op]; ok {
		c.emit("%s R1 R2 R1", mnemonic)
		return nil
	}

	switch n.Op {
	case ast.TkEq:
		c.emit("TSTE R1 R2")
		c.emit("MOV R1 ZR")
	case ast.TkNe:
		c.emit("TSTN R1 R2")
		c.emit("MOV R1 ZR")
	case ast.TkLogAnd:
		c.emit("TSTN R1 0")
		c.emit("MOV R1 ZR")
		c.emit("TSTN R2 0")
		c.emit("AND R1 R1 ZR")
	case ast.TkLogOr:
		c.emit("TSTN R1 0")
		c.emit("MOV R1 ZR")
		c.emit("TSTN R2 0")
		c.emit("OR R1 R1 ZR")
	case ast.TkLt:
		c.emit("TSTL R2 R1")
		c.emit("MOV R1 ZR")
	case ast.TkLe:
		c.emit("TSTG R2 R1")
		c.emit("TSTN ZR 1")
		c.emit("MOV R1 ZR")
	case ast.TkGt:
		c.emit("TSTG R2 R1")
		c.emit("MOV R1 ZR")
	case ast.TkGe:
		c.emit("TSTL R2 R1")
		c.emit("TSTN ZR 1")
		c.emit("MOV R1 ZR")
	default:
		return errors.Errorf("unsupported binary operator %s", n.Op)
	}
	return nil
}

func rightGenAssign(c *context, n *ast.AssignExpr) error {
	if err := leftGen(c, n.Left); err != nil { // R1 = address
		return err
	}
	c.emit("PUSH R1")
	if err := rightGen(c, n.Right); err != nil { // R1 = rvalue
		return err
	}
	c.emit("POP R2") // R2 = address

	if n.Op != ast.TkAssign {
		arith, ok := compoundArithOp(n.Op)
		if !ok {
			return errors.Errorf("unsupported compound assignment operator %s", n.Op)
		}
		c.emit("PUSH R2")        // save address
		c.emit("LOAD R2 R2")     // R2 = current value
		c.emit("%s R1 R2 R1", arith)
		c.emit("POP R2") // restore address
	}
	c.emit("STR R2 R1")
	return nil
}

func compoundArithOp(op ast.TokenKind) (string, bool) {
	switch op {
	case ast.TkPlusAgn:
		return "ADD", true
	case ast.TkMinusAgn:
		return "SUB", true
	case ast.TkTimesAgn:
		return "MUL", true
	case ast.TkDivAgn:
		return "DIV", true
	case ast.TkModAgn:
		return "MOD", true
	case ast.TkAndAgn:
		return "AND", true
	case ast.TkOrAgn:
		return "OR", true
	case ast.TkXorAgn:
		return "XOR", true
	case ast.TkShlAgn:
		return "SHL", true
	case ast.TkShrAgn:
		return "SHR", true
	default:
		return "", false
	}
}

// leftGen lowers expr so that its address ends up in R1. The subset's only
// lvalue is a plain variable.
func leftGen(c *context, expr ast.Expr) error {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return errors.Wrapf(ErrUnsupportedNode, "lvalue %T", expr)
	}
	return c.loadAddrOf(ident.Name)
}
