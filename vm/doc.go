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

// Package vm implements the register-based virtual machine at the core of
// c-to-vm: a flat word-addressed memory, eight general purpose registers
// plus IP/SP/BP/ZR, and a fetch-decode-execute loop over a compact
// instruction set (arithmetic, data movement, comparisons, control flow and
// call/return).
//
// Memory cells are heterogeneous: a cell holds either a Word or an
// Instruction, never both, and reading a cell as the wrong kind (or reading
// a cell that was never written) is a fatal fault surfaced as an error, not
// a panic.
//
// The calling convention (stack frame layout, CALL/RET semantics) is shared
// with package asm (which must compute compatible PC-relative offsets) and
// package loader (which builds the initial frame before the first
// instruction ever runs); see package loader for that ABI collected in one
// place.
package vm
