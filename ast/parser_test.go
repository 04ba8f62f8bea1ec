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

import "testing"

func TestParseSimpleReturn(t *testing.T) {
	prog, err := Parse("int main() { return 14; }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if prog.Func.Name != "main" {
		t.Fatalf("func name = %q, want main", prog.Func.Name)
	}
	if len(prog.Func.Body.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Func.Body.Stmts))
	}
	ret, ok := prog.Func.Body.Stmts[0].(*Return)
	if !ok {
		t.Fatalf("statement is %T, want *Return", prog.Func.Body.Stmts[0])
	}
	lit, ok := ret.Expr.(*IntLit)
	if !ok || lit.Value != 14 {
		t.Fatalf("return expr = %#v, want IntLit{14}", ret.Expr)
	}
}

func TestParseDeclAndAssignment(t *testing.T) {
	prog, err := Parse("int main() { int x = 1; x += 2; return x; }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	stmts := prog.Func.Body.Stmts
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}
	decl, ok := stmts[0].(*Decl)
	if !ok || decl.Name != "x" {
		t.Fatalf("stmt 0 = %#v, want Decl{x}", stmts[0])
	}
	exprStmt, ok := stmts[1].(*ExprStmt)
	if !ok {
		t.Fatalf("stmt 1 = %#v, want *ExprStmt", stmts[1])
	}
	assign, ok := exprStmt.X.(*AssignExpr)
	if !ok || assign.Op != TkPlusAgn || assign.Left.Name != "x" {
		t.Fatalf("assign = %#v, want x += ...", exprStmt.X)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	prog, err := Parse("int main() { return 1 + 2 * 3; }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ret := prog.Func.Body.Stmts[0].(*Return)
	bin, ok := ret.Expr.(*BinaryExpr)
	if !ok || bin.Op != TkPlus {
		t.Fatalf("top level op = %#v, want +", ret.Expr)
	}
	if _, ok := bin.Left.(*IntLit); !ok {
		t.Fatalf("left = %#v, want IntLit", bin.Left)
	}
	rhs, ok := bin.Right.(*BinaryExpr)
	if !ok || rhs.Op != TkTimes {
		t.Fatalf("right = %#v, want * expr", bin.Right)
	}
}

func TestParseIfElse(t *testing.T) {
	src := "int main() { int x = 5; if (x > 10) x = 1; else x = 2; return x; }"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ifStmt, ok := prog.Func.Body.Stmts[1].(*If)
	if !ok {
		t.Fatalf("stmt 1 = %#v, want *If", prog.Func.Body.Stmts[1])
	}
	if ifStmt.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestParseWhile(t *testing.T) {
	src := "int main() { int i = 0; int s = 0; while (i < 5) { s += i; i += 1; } return s; }"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	whileStmt, ok := prog.Func.Body.Stmts[2].(*While)
	if !ok {
		t.Fatalf("stmt 2 = %#v, want *While", prog.Func.Body.Stmts[2])
	}
	body, ok := whileStmt.Body.(*Compound)
	if !ok || len(body.Stmts) != 2 {
		t.Fatalf("while body = %#v, want 2-statement compound", whileStmt.Body)
	}
}

func TestParseRejectsAssignmentToNonIdent(t *testing.T) {
	_, err := Parse("int main() { 1 = 2; return 0; }")
	if err == nil {
		t.Fatal("expected an error assigning to a non-identifier")
	}
}

func TestParseRejectsMissingSemicolon(t *testing.T) {
	_, err := Parse("int main() { return 1 }")
	if err == nil {
		t.Fatal("expected an error for a missing semicolon")
	}
}
