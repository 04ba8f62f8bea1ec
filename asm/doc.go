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

// Package asm translates the c-to-vm mnemonic language into vm.Instruction
// values, in two passes.
//
// Grammar: a program is a sequence of lines; each non-empty line is either a
// label ("name:") or an instruction mnemonic followed by its operands,
// whitespace-separated. Register operands name one of R1..R8, IP, SP, BP,
// ZR; anything else parseable as a signed integer is an immediate; anything
// else in a control-flow opcode's operand position is a label reference.
//
//	MOV R1 6
//	MOV R2 3
//	SHL R1 R1 R2
//	HALT
//
//	loop:
//	  TSTE R1 0
//	  TJMP done
//	  SUB R1 R1 1
//	  JUMP loop
//	done:
//	  HALT
//
// Pass 1 walks the lines and records, for each label, the index of the next
// instruction (labels contribute no instruction of their own). Pass 2 walks
// the lines again, decodes every instruction, and for control-class opcodes
// rewrites the label operand to the PC-relative offset
// symbol[label] - current_index. An undefined label, or a label redefined
// more than once, is a fatal ErrAsm.
package asm
