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

// Package compiler lowers an ast.Program into mnemonic assembly text
// consumable by package asm, following the right_gen/code_gen split of the
// original Python reference compiler: right_gen evaluates an expression
// into R1 without disturbing stack depth, code_gen lowers a statement.
//
// A function's locals live in a single flat frame built at entry: two
// callee-saved registers are pushed first (R1, R2), then one zero word per
// local declaration, giving each local a fixed BP-relative address for its
// whole lifetime (BP + -(1 + len(savedRegs) + declIndex)). Return stores
// its value at BP+2 — the slot the loader's initial frame reserves right
// after the sentinel return address at BP+1 — and jumps to the function's
// epilogue label, which pops the saved registers and executes RET.
package compiler
