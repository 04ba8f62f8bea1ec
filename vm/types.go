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

import "strconv"

// Word is the machine's uniform integer datum.
type Word int64

// Fixed constants shared across the vm/asm/loader/compiler ABI.
const (
	MemSize         = 10000
	ProgramInitAddr = 1000
	InitSPAddr      = 9999
	NumRegisters    = 8
)

// Register identifies a general purpose or special register.
type Register int

// The register file: R1..R8 plus the four special registers.
const (
	R1 Register = iota + 1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	IP
	SP
	BP
	ZR
)

var registerNames = [...]string{
	R1: "R1", R2: "R2", R3: "R3", R4: "R4",
	R5: "R5", R6: "R6", R7: "R7", R8: "R8",
	IP: "IP", SP: "SP", BP: "BP", ZR: "ZR",
}

var registerIndex = func() map[string]Register {
	m := make(map[string]Register, len(registerNames))
	for r, name := range registerNames {
		if name != "" {
			m[name] = Register(r)
		}
	}
	return m
}()

// String returns the canonical mnemonic spelling of a register.
func (r Register) String() string {
	if int(r) >= 0 && int(r) < len(registerNames) && registerNames[r] != "" {
		return registerNames[r]
	}
	return "R?(" + strconv.Itoa(int(r)) + ")"
}

// ParseRegister looks up a register by its mnemonic name.
func ParseRegister(name string) (Register, bool) {
	r, ok := registerIndex[name]
	return r, ok
}

// Operand is either an immediate Word or a register reference. It covers
// every "source" position an instruction can take: arithmetic arg2,
// MOV/STR/LOAD src, PUSH src, test arg2.
type Operand struct {
	reg   Register
	imm   Word
	isReg bool
}

// Reg builds a register operand.
func Reg(r Register) Operand { return Operand{reg: r, isReg: true} }

// Imm builds an immediate operand.
func Imm(v Word) Operand { return Operand{imm: v} }

// IsRegister reports whether the operand names a register.
func (o Operand) IsRegister() bool { return o.isReg }

// Register returns the operand's register; only valid if IsRegister is true.
func (o Operand) Register() Register { return o.reg }

// Immediate returns the operand's immediate value; only valid if
// IsRegister is false.
func (o Operand) Immediate() Word { return o.imm }

func (o Operand) String() string {
	if o.isReg {
		return o.reg.String()
	}
	return strconv.FormatInt(int64(o.imm), 10)
}

// Value resolves the operand against the given register file.
func (o Operand) Value(i *Instance) (Word, error) {
	if !o.isReg {
		return o.imm, nil
	}
	return i.GetRegister(o.reg)
}

// Opcode identifies an instruction's operation.
type Opcode int

// Opcodes, grouped by class.
const (
	// Arithmetic: dst, arg1, arg2.
	OpAdd Opcode = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	// Unary arithmetic: dst.
	OpNeg
	// Data: dst, src (PUSH: src only, POP: dst only).
	OpMov
	OpStr
	OpLoad
	OpPush
	OpPop
	// Test: arg1, arg2.
	OpTste
	OpTstg
	OpTstl
	OpTstn
	// Control: offset.
	OpJump
	OpTjmp
	OpFjmp
	OpCall
	// Special: no operands.
	OpHalt
	OpRet
)

var opcodeNames = [...]string{
	OpAdd: "ADD", OpSub: "SUB", OpMul: "MUL", OpDiv: "DIV", OpMod: "MOD",
	OpAnd: "AND", OpOr: "OR", OpXor: "XOR", OpShl: "SHL", OpShr: "SHR",
	OpNeg: "NEG",
	OpMov: "MOV", OpStr: "STR", OpLoad: "LOAD", OpPush: "PUSH", OpPop: "POP",
	OpTste: "TSTE", OpTstg: "TSTG", OpTstl: "TSTL", OpTstn: "TSTN",
	OpJump: "JUMP", OpTjmp: "TJMP", OpFjmp: "FJMP", OpCall: "CALL",
	OpHalt: "HALT", OpRet: "RET",
}

var opcodeIndex = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	return m
}()

func (op Opcode) String() string {
	if int(op) >= 0 && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "OP?(" + strconv.Itoa(int(op)) + ")"
}

// ParseOpcode looks up an opcode by its mnemonic name.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// arithmeticOpcodes are dispatched as dst = arg1 OP arg2.
var arithmeticOpcodes = map[Opcode]func(x, y Word) (Word, error){
	OpAdd: func(x, y Word) (Word, error) { return x + y, nil },
	OpSub: func(x, y Word) (Word, error) { return x - y, nil },
	OpMul: func(x, y Word) (Word, error) { return x * y, nil },
	OpDiv: func(x, y Word) (Word, error) { return floorDiv(x, y) },
	OpMod: func(x, y Word) (Word, error) { return floorMod(x, y) },
	OpAnd: func(x, y Word) (Word, error) { return x & y, nil },
	OpOr:  func(x, y Word) (Word, error) { return x | y, nil },
	OpXor: func(x, y Word) (Word, error) { return x ^ y, nil },
	OpShl: func(x, y Word) (Word, error) { return x << uint(y), nil },
	OpShr: func(x, y Word) (Word, error) { return x >> uint(y), nil },
}

// testOpcodes are dispatched as ZR = arg1 CMP arg2.
var testOpcodes = map[Opcode]func(x, y Word) bool{
	OpTste: func(x, y Word) bool { return x == y },
	OpTstg: func(x, y Word) bool { return x > y },
	OpTstl: func(x, y Word) bool { return x < y },
	OpTstn: func(x, y Word) bool { return x != y },
}

// floorDiv implements DIV with floor semantics, not C-style truncation
// toward zero.
func floorDiv(x, y Word) (Word, error) {
	if y == 0 {
		return 0, &Fault{Kind: FaultArithmetic, Msg: "division by zero"}
	}
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q, nil
}

// floorMod is the modulo counterpart of floorDiv: sign follows the divisor.
func floorMod(x, y Word) (Word, error) {
	if y == 0 {
		return 0, &Fault{Kind: FaultArithmetic, Msg: "division by zero"}
	}
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m, nil
}

// Instruction is a tagged record over the operand subset relevant to its
// opcode's class.
type Instruction struct {
	Op Opcode

	// Dst: arithmetic/NEG/MOV/STR/LOAD destination register, POP destination.
	// For STR, Dst holds the *address* register (see vm/exec.go).
	Dst Register
	// Arg1: arithmetic left operand register, test left operand register.
	Arg1 Register
	// Arg2: arithmetic right operand, test right operand.
	Arg2 Operand
	// Src: MOV/STR/LOAD source operand, PUSH source operand.
	Src Operand
	// Offset: PC-relative signed offset for control-class opcodes.
	Offset int
}

// String renders the instruction in its textual mnemonic form, one
// instruction per line, whitespace-separated.
func (in Instruction) String() string {
	switch in.Op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpAnd, OpOr, OpXor, OpShl, OpShr:
		return in.Op.String() + " " + in.Dst.String() + " " + in.Arg1.String() + " " + in.Arg2.String()
	case OpNeg:
		return in.Op.String() + " " + in.Dst.String()
	case OpMov, OpStr, OpLoad:
		return in.Op.String() + " " + in.Dst.String() + " " + in.Src.String()
	case OpPush:
		return in.Op.String() + " " + in.Src.String()
	case OpPop:
		return in.Op.String() + " " + in.Dst.String()
	case OpTste, OpTstg, OpTstl, OpTstn:
		return in.Op.String() + " " + in.Arg1.String() + " " + in.Arg2.String()
	case OpJump, OpTjmp, OpFjmp, OpCall:
		return in.Op.String() + " " + strconv.Itoa(in.Offset)
	case OpHalt, OpRet:
		return in.Op.String()
	default:
		return "??? " + in.Op.String()
	}
}
