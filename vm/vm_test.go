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

package vm

import (
	"errors"
	"testing"
)

// load writes a straight-line program (no labels) at address 0 and
// initialises SP/BP far away from the code so PUSH/POP scratch space
// doesn't collide with it.
func load(t *testing.T, instrs ...Instruction) *Instance {
	t.Helper()
	i, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for addr, in := range instrs {
		if err := i.Mem.SetInstruction(addr, in); err != nil {
			t.Fatalf("SetInstruction: %v", err)
		}
	}
	if err := i.SetRegister(SP, 150); err != nil {
		t.Fatalf("SetRegister SP: %v", err)
	}
	if err := i.SetRegister(BP, 150); err != nil {
		t.Fatalf("SetRegister BP: %v", err)
	}
	return i
}

func TestShiftLeft(t *testing.T) {
	i := load(t,
		Instruction{Op: OpMov, Dst: R1, Src: Imm(6)},
		Instruction{Op: OpMov, Dst: R2, Src: Imm(3)},
		Instruction{Op: OpShl, Dst: R1, Arg1: R1, Arg2: Reg(R2)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got, err := i.GetRegister(R1)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if got != 48 {
		t.Errorf("R1 = %d, want 48", got)
	}
}

func TestStoreLoad(t *testing.T) {
	i := load(t,
		Instruction{Op: OpMov, Dst: R1, Src: Imm(8000)},
		Instruction{Op: OpStr, Dst: R1, Src: Imm(7)},
		Instruction{Op: OpLoad, Dst: R2, Src: Imm(8000)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	v, err := i.Mem.Word(8000)
	if err != nil {
		t.Fatalf("Mem.Word: %v", err)
	}
	if v != 7 {
		t.Errorf("MEM[8000] = %d, want 7", v)
	}
	r2, err := i.GetRegister(R2)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if r2 != 7 {
		t.Errorf("R2 = %d, want 7", r2)
	}
}

func TestFloorDivMod(t *testing.T) {
	i := load(t,
		Instruction{Op: OpMov, Dst: R1, Src: Imm(-7)},
		Instruction{Op: OpMov, Dst: R2, Src: Imm(2)},
		Instruction{Op: OpDiv, Dst: R3, Arg1: R1, Arg2: Reg(R2)},
		Instruction{Op: OpMod, Dst: R4, Arg1: R1, Arg2: Reg(R2)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	q, _ := i.GetRegister(R3)
	r, _ := i.GetRegister(R4)
	if q != -4 {
		t.Errorf("-7 div 2 = %d, want -4 (floor)", q)
	}
	if r != 1 {
		t.Errorf("-7 mod 2 = %d, want 1 (floor)", r)
	}
}

func TestDivisionByZeroFaults(t *testing.T) {
	i := load(t,
		Instruction{Op: OpMov, Dst: R1, Src: Imm(1)},
		Instruction{Op: OpMov, Dst: R2, Src: Imm(0)},
		Instruction{Op: OpDiv, Dst: R1, Arg1: R1, Arg2: Reg(R2)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err == nil {
		t.Fatal("expected a division-by-zero fault, got nil")
	}
}

func TestReadOfUninitialisedCellFaults(t *testing.T) {
	i := load(t,
		Instruction{Op: OpLoad, Dst: R1, Src: Imm(199)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err == nil {
		t.Fatal("expected a memory fault reading an unset cell, got nil")
	}
}

func TestCallReturnBalance(t *testing.T) {
	// main:  CALL fn ; HALT
	// fn:    RET
	i := load(t,
		Instruction{Op: OpCall, Offset: 2},
		Instruction{Op: OpHalt},
		Instruction{Op: OpRet},
	)
	spBefore, _ := i.GetRegister(SP)
	bpBefore, _ := i.GetRegister(BP)
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	spAfter, _ := i.GetRegister(SP)
	bpAfter, _ := i.GetRegister(BP)
	if spAfter != spBefore || bpAfter != bpBefore {
		t.Errorf("frame not balanced across CALL/RET: sp %d->%d, bp %d->%d", spBefore, spAfter, bpBefore, bpAfter)
	}
}

func TestUnknownOpcodeFaultMatchesSentinel(t *testing.T) {
	i := load(t,
		Instruction{Op: Opcode(999)},
	)
	err := i.Run()
	if err == nil {
		t.Fatal("expected a fault for an unrecognized opcode, got nil")
	}
	if !errors.As(err, new(*Fault)) {
		t.Fatalf("expected a *Fault, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("expected errors.Is(err, ErrUnknownOpcode) to hold, err = %v", err)
	}
}

func TestTjmpTaken(t *testing.T) {
	// TSTE R1 R1 (always true) ; TJMP +2 -> skip the MOV ; MOV R2 99 ; HALT
	i := load(t,
		Instruction{Op: OpTste, Arg1: R1, Arg2: Reg(R1)},
		Instruction{Op: OpTjmp, Offset: 2},
		Instruction{Op: OpMov, Dst: R2, Src: Imm(99)},
		Instruction{Op: OpHalt},
	)
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, _ := i.GetRegister(R2)
	if r2 != 0 {
		t.Errorf("R2 = %d, want 0 (TJMP should have skipped the MOV)", r2)
	}
}
