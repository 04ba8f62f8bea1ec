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

import "fmt"

// cellKind tags what, if anything, a memory cell holds. This is the tagged
// variant called for in the Design Notes: a cell stores either a Word or an
// Instruction, never both, and an empty cell is simply unreadable.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellWord
	cellInstr
)

// Cell is one addressable location of VM memory.
type Cell struct {
	kind  cellKind
	word  Word
	instr Instruction
}

// WordCell builds a memory cell holding a plain data word.
func WordCell(w Word) Cell { return Cell{kind: cellWord, word: w} }

// InstrCell builds a memory cell holding an instruction.
func InstrCell(in Instruction) Cell { return Cell{kind: cellInstr, instr: in} }

// IsSet reports whether the cell has ever been written.
func (c Cell) IsSet() bool { return c.kind != cellEmpty }

// Memory is the VM's flat address space: a slice of Cell, index 0 to
// len(Memory)-1.
type Memory []Cell

// NewMemory allocates a Memory of the given size, all cells unset.
func NewMemory(size int) Memory {
	return make(Memory, size)
}

func (m Memory) checkRange(addr int) error {
	if addr < 0 || addr >= len(m) {
		return &Fault{Kind: FaultMemory, Msg: fmt.Sprintf("address %d out of range [0,%d)", addr, len(m))}
	}
	return nil
}

// Word reads the cell at addr as a data word. Reading an unset cell is a
// fatal memory fault; reading one holding an instruction is a fatal decode
// fault.
func (m Memory) Word(addr int) (Word, error) {
	if err := m.checkRange(addr); err != nil {
		return 0, err
	}
	c := m[addr]
	switch c.kind {
	case cellWord:
		return c.word, nil
	case cellEmpty:
		return 0, &Fault{Kind: FaultMemory, Msg: fmt.Sprintf("read of uninitialised cell at %d", addr)}
	default:
		return 0, &Fault{Kind: FaultDecode, Msg: fmt.Sprintf("cell at %d holds an instruction, not a word", addr)}
	}
}

// SetWord writes a data word at addr.
func (m Memory) SetWord(addr int, w Word) error {
	if err := m.checkRange(addr); err != nil {
		return err
	}
	m[addr] = WordCell(w)
	return nil
}

// Instruction reads the cell at addr as an instruction. Reading an unset
// cell is a fatal memory fault; reading one holding a word is a fatal
// decode fault.
func (m Memory) Instruction(addr int) (Instruction, error) {
	if err := m.checkRange(addr); err != nil {
		return Instruction{}, err
	}
	c := m[addr]
	switch c.kind {
	case cellInstr:
		return c.instr, nil
	case cellEmpty:
		return Instruction{}, &Fault{Kind: FaultMemory, Msg: fmt.Sprintf("read of uninitialised cell at %d", addr)}
	default:
		return Instruction{}, &Fault{Kind: FaultDecode, Msg: fmt.Sprintf("cell at %d holds a word, not an instruction", addr)}
	}
}

// SetInstruction writes an instruction at addr.
func (m Memory) SetInstruction(addr int, in Instruction) error {
	if err := m.checkRange(addr); err != nil {
		return err
	}
	m[addr] = InstrCell(in)
	return nil
}
