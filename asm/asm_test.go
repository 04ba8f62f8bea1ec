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

package asm

import (
	"strings"
	"testing"

	"github.com/itamar8910/c-to-vm/vm"
)

func TestAssembleLabelOffsets(t *testing.T) {
	src := `
loop:
  TSTE R1 0
  TJMP done
  SUB R1 R1 1
  JUMP loop
done:
  HALT
`
	instrs, symbols, err := Assemble("t.s", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(instrs) != 5 {
		t.Fatalf("got %d instructions, want 5", len(instrs))
	}
	// TJMP is at index 1, done: is at index 4.
	if got, want := instrs[1].Offset, symbols["done"]-1; got != want {
		t.Errorf("TJMP offset = %d, want %d", got, want)
	}
	// JUMP is at index 3, loop: is at index 0.
	if got, want := instrs[3].Offset, symbols["loop"]-3; got != want {
		t.Errorf("JUMP offset = %d, want %d", got, want)
	}
}

func TestAssembleUndefinedLabel(t *testing.T) {
	_, _, err := Assemble("t.s", strings.NewReader("JUMP nowhere\nHALT\n"))
	if err == nil {
		t.Fatal("expected an error for an undefined label")
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	src := "a:\nHALT\na:\nHALT\n"
	_, _, err := Assemble("t.s", strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for a duplicate label")
	}
}

func TestRoundTrip(t *testing.T) {
	instrs := []vm.Instruction{
		{Op: vm.OpAdd, Dst: vm.R1, Arg1: vm.R2, Arg2: vm.Reg(vm.R3)},
		{Op: vm.OpMov, Dst: vm.R1, Src: vm.Imm(42)},
		{Op: vm.OpNeg, Dst: vm.R1},
		{Op: vm.OpPush, Src: vm.Reg(vm.R1)},
		{Op: vm.OpPop, Dst: vm.R2},
		{Op: vm.OpTstg, Arg1: vm.R1, Arg2: vm.Imm(0)},
		{Op: vm.OpHalt},
		{Op: vm.OpRet},
	}
	for _, in := range instrs {
		text := in.String()
		fields := strings.Fields(text)
		var got vm.Instruction
		var err error
		if controlOpcodes[fields[0]] {
			continue // control opcodes need a symbol table; covered by TestAssembleLabelOffsets
		}
		got, err = decode(fields[0], fields[1:])
		if err != nil {
			t.Fatalf("decode(%q): %v", text, err)
		}
		if got != in {
			t.Errorf("round trip mismatch for %q: got %+v, want %+v", text, got, in)
		}
	}
}
