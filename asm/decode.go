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
	"fmt"
	"io"
	"strconv"

	"github.com/itamar8910/c-to-vm/vm"
)

var arithmeticSet = map[vm.Opcode]bool{
	vm.OpAdd: true, vm.OpSub: true, vm.OpMul: true, vm.OpDiv: true, vm.OpMod: true,
	vm.OpAnd: true, vm.OpOr: true, vm.OpXor: true, vm.OpShl: true, vm.OpShr: true,
}

var testSet = map[vm.Opcode]bool{
	vm.OpTste: true, vm.OpTstg: true, vm.OpTstl: true, vm.OpTstn: true,
}

// decode builds a vm.Instruction for every opcode class except the
// control-flow class (handled separately in decodeControl, since only it
// needs the symbol table).
func decode(mnemonic string, operands []string) (vm.Instruction, error) {
	op, ok := vm.ParseOpcode(mnemonic)
	if !ok {
		return vm.Instruction{}, fmt.Errorf("unknown opcode %s", mnemonic)
	}

	switch {
	case arithmeticSet[op]:
		if len(operands) != 3 {
			return vm.Instruction{}, fmt.Errorf("%s expects 3 operands (dst arg1 arg2), got %d", mnemonic, len(operands))
		}
		dst, err := parseRegister(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		arg1, err := parseRegister(operands[1])
		if err != nil {
			return vm.Instruction{}, err
		}
		arg2, err := parseOperand(operands[2])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Dst: dst, Arg1: arg1, Arg2: arg2}, nil

	case op == vm.OpNeg:
		if len(operands) != 1 {
			return vm.Instruction{}, fmt.Errorf("NEG expects 1 operand (dst), got %d", len(operands))
		}
		dst, err := parseRegister(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Dst: dst}, nil

	case op == vm.OpMov, op == vm.OpStr, op == vm.OpLoad:
		if len(operands) != 2 {
			return vm.Instruction{}, fmt.Errorf("%s expects 2 operands (dst src), got %d", mnemonic, len(operands))
		}
		dst, err := parseRegister(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		src, err := parseOperand(operands[1])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Dst: dst, Src: src}, nil

	case op == vm.OpPush:
		if len(operands) != 1 {
			return vm.Instruction{}, fmt.Errorf("PUSH expects 1 operand (src), got %d", len(operands))
		}
		src, err := parseOperand(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Src: src}, nil

	case op == vm.OpPop:
		if len(operands) != 1 {
			return vm.Instruction{}, fmt.Errorf("POP expects 1 operand (dst), got %d", len(operands))
		}
		dst, err := parseRegister(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Dst: dst}, nil

	case testSet[op]:
		if len(operands) != 2 {
			return vm.Instruction{}, fmt.Errorf("%s expects 2 operands (arg1 arg2), got %d", mnemonic, len(operands))
		}
		arg1, err := parseRegister(operands[0])
		if err != nil {
			return vm.Instruction{}, err
		}
		arg2, err := parseOperand(operands[1])
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Arg1: arg1, Arg2: arg2}, nil

	case op == vm.OpHalt, op == vm.OpRet:
		if len(operands) != 0 {
			return vm.Instruction{}, fmt.Errorf("%s takes no operands", mnemonic)
		}
		return vm.Instruction{Op: op}, nil

	default:
		return vm.Instruction{}, fmt.Errorf("unsupported opcode %s outside control-flow decoding", mnemonic)
	}
}

func parseRegister(s string) (vm.Register, error) {
	r, ok := vm.ParseRegister(s)
	if !ok {
		return 0, fmt.Errorf("expected a register, got %q", s)
	}
	return r, nil
}

func parseOperand(s string) (vm.Operand, error) {
	if r, ok := vm.ParseRegister(s); ok {
		return vm.Reg(r), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return vm.Operand{}, fmt.Errorf("expected a register or integer immediate, got %q", s)
	}
	return vm.Imm(vm.Word(n)), nil
}

// Disassemble writes the textual mnemonic form of instrs to w, one per
// line, the inverse of Assemble's decoding: assembling Disassemble's output
// reproduces the original instructions.
func Disassemble(instrs []vm.Instruction, w io.Writer) error {
	for _, in := range instrs {
		if _, err := io.WriteString(w, in.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
