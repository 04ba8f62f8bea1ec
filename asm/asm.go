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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itamar8910/c-to-vm/vm"
)

const maxErrors = 10

// ErrAsm collects one or more assembly errors, each tagged with the source
// line it came from. Assembly stops after maxErrors to avoid runaway output
// on badly malformed input, mirroring ngaro/asm.ErrAsm.
type ErrAsm []LineError

// LineError is a single assembly diagnostic.
type LineError struct {
	Name string // source name, as passed to Assemble
	Line int    // 1-based line number
	Msg  string
}

func (e ErrAsm) Error() string {
	parts := make([]string, 0, len(e))
	for _, le := range e {
		parts = append(parts, fmt.Sprintf("%s:%d: %s", le.Name, le.Line, le.Msg))
	}
	return strings.Join(parts, "\n")
}

// Assemble compiles the mnemonic text read from r into a list of
// vm.Instruction, resolving every label into a PC-relative offset. The name
// parameter is used only for error messages (typically the source file
// name). Assemble optionally returns the symbol table for debugging.
func Assemble(name string, r io.Reader) ([]vm.Instruction, map[string]int, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}

	symbols, err := firstPass(name, lines)
	if err != nil {
		return nil, nil, err
	}

	instrs, err := secondPass(name, lines, symbols)
	if err != nil {
		return nil, nil, err
	}
	return instrs, symbols, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isLabelLine(trimmed string) (string, bool) {
	if strings.HasSuffix(trimmed, ":") {
		return strings.TrimSuffix(trimmed, ":"), true
	}
	return "", false
}

// firstPass records, for each label, the index of the instruction that
// follows it. Duplicate labels are rejected.
func firstPass(name string, lines []string) (map[string]int, error) {
	symbols := make(map[string]int)
	var errs ErrAsm
	idx := 0
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if label, ok := isLabelLine(line); ok {
			if label == "" {
				errs = append(errs, LineError{name, lineNo + 1, "empty label name"})
			} else if _, dup := symbols[label]; dup {
				errs = append(errs, LineError{name, lineNo + 1, "duplicate label " + label})
			} else {
				symbols[label] = idx
			}
			continue
		}
		idx++
		if len(errs) >= maxErrors {
			break
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return symbols, nil
}

var controlOpcodes = map[string]bool{
	"JUMP": true, "TJMP": true, "FJMP": true, "CALL": true,
}

// secondPass decodes every instruction line and resolves control-flow
// label operands into PC-relative offsets.
func secondPass(name string, lines []string, symbols map[string]int) ([]vm.Instruction, error) {
	var instrs []vm.Instruction
	var errs ErrAsm
	idx := 0
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, ok := isLabelLine(line); ok {
			continue
		}
		fields := strings.Fields(line)
		mnemonic := fields[0]
		operands := fields[1:]

		if controlOpcodes[mnemonic] {
			in, err := decodeControl(mnemonic, operands, symbols, idx)
			if err != nil {
				errs = append(errs, LineError{name, lineNo + 1, err.Error()})
			} else {
				instrs = append(instrs, in)
			}
		} else {
			in, err := decode(mnemonic, operands)
			if err != nil {
				errs = append(errs, LineError{name, lineNo + 1, err.Error()})
			} else {
				instrs = append(instrs, in)
			}
		}
		idx++
		if len(errs) >= maxErrors {
			break
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return instrs, nil
}

func decodeControl(mnemonic string, operands []string, symbols map[string]int, curIdx int) (vm.Instruction, error) {
	op, ok := vm.ParseOpcode(mnemonic)
	if !ok {
		return vm.Instruction{}, fmt.Errorf("unknown opcode %s", mnemonic)
	}
	if len(operands) != 1 {
		return vm.Instruction{}, fmt.Errorf("%s expects a single label operand, got %d", mnemonic, len(operands))
	}
	label := operands[0]
	target, ok := symbols[label]
	if !ok {
		// A numeric operand is an already-resolved offset, the form
		// Instruction.String and Disassemble print.
		if n, err := strconv.Atoi(label); err == nil {
			return vm.Instruction{Op: op, Offset: n}, nil
		}
		return vm.Instruction{}, fmt.Errorf("undefined label %s", label)
	}
	return vm.Instruction{Op: op, Offset: target - curIdx}, nil
}
