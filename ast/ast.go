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

package ast

import "fmt"

// Node is the root of the AST node hierarchy, grounded on
// y1yang0-falcon/src/ast.AstNode's minimal "String() string" interface.
type Node interface {
	String() string
}

// Expr is any node that evaluates to a Word at runtime.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node lowered by code_gen rather than right_gen.
type Stmt interface {
	Node
	stmtNode()
}

// IntLit is an integer constant, e.g. `42`.
type IntLit struct {
	Value int64
}

func (n *IntLit) exprNode()      {}
func (n *IntLit) String() string { return fmt.Sprintf("IntLit{%d}", n.Value) }

// Ident is a variable reference, e.g. `x`.
type Ident struct {
	Name string
}

func (n *Ident) exprNode()      {}
func (n *Ident) String() string { return fmt.Sprintf("Ident{%s}", n.Name) }

// UnaryExpr is a prefix operator applied to a single operand: `-x`, `!x`.
// Op is one of TkMinus, TkNot, TkPlus (the last a no-op, accepted for
// symmetry with unary minus).
type UnaryExpr struct {
	Op      TokenKind
	Operand Expr
}

func (n *UnaryExpr) exprNode()      {}
func (n *UnaryExpr) String() string { return fmt.Sprintf("UnaryExpr{%s}", n.Op) }

// BinaryExpr is a two-operand operator: arithmetic, bitwise, relational, or
// logical, per compiler.py's BIN_OP_MAP plus its hardcoded comparison/logic
// cases in right_gen.
type BinaryExpr struct {
	Op    TokenKind
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) exprNode()      {}
func (n *BinaryExpr) String() string { return fmt.Sprintf("BinaryExpr{%s}", n.Op) }

// AssignExpr is `lvalue = rvalue` or a compound form (`+=`, `&=`, ...).
// Left must be an *Ident: the subset has no other lvalues.
type AssignExpr struct {
	Op    TokenKind
	Left  *Ident
	Right Expr
}

func (n *AssignExpr) exprNode()      {}
func (n *AssignExpr) String() string { return fmt.Sprintf("AssignExpr{%s}", n.Op) }

// ExprStmt wraps an expression used as a statement, typically an assignment
// (`x = 1;`, `x += 1;`); the parser accepts any expression here, and its
// value is discarded.
type ExprStmt struct {
	X Expr
}

func (n *ExprStmt) stmtNode()      {}
func (n *ExprStmt) String() string { return "ExprStmt" }

// Decl declares a local int variable, with an optional initializer. A nil
// Init means the slot is zero-initialized (the "PUSH 0" prologue case).
type Decl struct {
	Name string
	Init Expr
}

func (n *Decl) stmtNode()      {}
func (n *Decl) String() string { return fmt.Sprintf("Decl{%s}", n.Name) }

// Return lowers to storing Expr's value at BP+2 and jumping to the
// function's epilogue label.
type Return struct {
	Expr Expr
}

func (n *Return) stmtNode()      {}
func (n *Return) String() string { return "Return" }

// If is `if (Cond) Then [else Else]`. Else is nil when there is no else
// clause.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (n *If) stmtNode()      {}
func (n *If) String() string { return "If" }

// While is `while (Cond) Body`.
type While struct {
	Cond Expr
	Body Stmt
}

func (n *While) stmtNode()      {}
func (n *While) String() string { return "While" }

// Compound is a `{ ... }` block: a sequence of statements sharing the
// enclosing function's single flat scope (the subset has no block
// scoping, matching compiler.py's single SCOPE_TO_DATA entry per function).
// The compiler gives a frame slot only to a Decl placed directly in the
// function body; a Decl inside a nested block gets no slot of its own.
type Compound struct {
	Stmts []Stmt
}

func (n *Compound) stmtNode()      {}
func (n *Compound) String() string { return fmt.Sprintf("Compound{%d stmts}", len(n.Stmts)) }

// FuncDef is `int <Name>() <Body>`. The subset supports only a single,
// parameterless, int-returning function; multi-function programs are out
// of scope.
type FuncDef struct {
	Name string
	Body *Compound
}

func (n *FuncDef) String() string { return fmt.Sprintf("FuncDef{%s}", n.Name) }

// Program is the parse result: one function definition.
type Program struct {
	Func *FuncDef
}

func (n *Program) String() string { return "Program" }
