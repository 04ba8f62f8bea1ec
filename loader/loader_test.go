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

package loader

import (
	"testing"

	"github.com/itamar8910/c-to-vm/vm"
)

// returnConstantProgram moves v into R1, writes it to its own return-value
// slot (BP+2), then returns.
func returnConstantProgram(v vm.Word) []vm.Instruction {
	return []vm.Instruction{
		{Op: vm.OpMov, Dst: vm.R1, Src: vm.Imm(v)},
		{Op: vm.OpAdd, Dst: vm.R2, Arg1: vm.BP, Arg2: vm.Imm(2)},
		{Op: vm.OpStr, Dst: vm.R2, Src: vm.Reg(vm.R1)},
		{Op: vm.OpRet},
	}
}

func TestRunReturnsExitValue(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := m.Run(returnConstantProgram(14))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 14 {
		t.Errorf("exit value = %d, want 14", got)
	}
}

func TestRunDefaultExitValueIsMinusOne(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := m.Run([]vm.Instruction{{Op: vm.OpRet}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != -1 {
		t.Errorf("default exit value = %d, want -1", got)
	}
}

func TestLoadPlacesCodeAtProgramInitAddr(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	instrs := []vm.Instruction{{Op: vm.OpHalt}}
	if err := m.Load(instrs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := m.VM.Mem.Instruction(vm.ProgramInitAddr)
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	if got != instrs[0] {
		t.Errorf("loaded instruction = %+v, want %+v", got, instrs[0])
	}
}

func TestLoadAndRunConvenienceWrapper(t *testing.T) {
	got, err := LoadAndRun(returnConstantProgram(28))
	if err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	if got != 28 {
		t.Errorf("exit value = %d, want 28", got)
	}
}
