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
	"github.com/pkg/errors"

	"github.com/itamar8910/c-to-vm/vm"
)

// Machine bundles a vm.Instance with the OS-layer responsibilities of
// program loading, initial frame setup, and exit-value extraction.
type Machine struct {
	VM *vm.Instance
}

// Option configures a Machine's underlying vm.Instance.
type Option = vm.Option

// New builds a Machine with a freshly reset Instance: all memory unset, all
// registers zero, and a backstop HALT at address 0 so that any unexpected
// transfer to address 0 cleanly stops the machine.
func New(opts ...Option) (*Machine, error) {
	inst, err := vm.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "new vm instance")
	}
	m := &Machine{VM: inst}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Machine) reset() error {
	return m.VM.Mem.SetInstruction(0, vm.Instruction{Op: vm.OpHalt})
}

// Load places instrs at vm.ProgramInitAddr.
func (m *Machine) Load(instrs []vm.Instruction) error {
	for i, in := range instrs {
		if err := m.VM.Mem.SetInstruction(vm.ProgramInitAddr+i, in); err != nil {
			return errors.Wrapf(err, "load instruction %d", i)
		}
	}
	return nil
}

// setupStackFrame builds the initial call frame at vm.InitSPAddr: a
// sentinel return address pointing at the backstop HALT, a self-referential
// saved BP (there is no real caller), and a pre-seeded return-value slot.
func (m *Machine) setupStackFrame() error {
	sp := vm.Word(vm.InitSPAddr)
	if err := m.VM.Mem.SetWord(int(sp-1), 0); err != nil { // sentinel return address
		return err
	}
	sp -= 3
	bp := sp + 1
	if err := m.VM.Mem.SetWord(int(bp), bp); err != nil { // saved BP: self-loop
		return err
	}
	if err := m.VM.Mem.SetWord(int(bp)+2, -1); err != nil { // default return value
		return err
	}
	if err := m.VM.SetRegister(vm.SP, sp); err != nil {
		return err
	}
	return m.VM.SetRegister(vm.BP, bp)
}

// Run loads instrs, sets up the initial frame, executes to HALT, and
// returns the program's exit value.
func (m *Machine) Run(instrs []vm.Instruction) (vm.Word, error) {
	if err := m.Load(instrs); err != nil {
		return 0, err
	}
	if err := m.setupStackFrame(); err != nil {
		return 0, errors.Wrap(err, "setup stack frame")
	}
	if err := m.VM.SetRegister(vm.IP, vm.ProgramInitAddr); err != nil {
		return 0, err
	}
	if err := m.VM.Run(); err != nil {
		return 0, errors.Wrap(err, "run")
	}
	return m.ExitValue()
}

// ExitValue reads the program's result from the return-value slot of the
// frame BP currently points to: BP+2. The distance from BP to the
// return-value slot is a constant (2) by construction of setupStackFrame,
// distinct from BP+1, which holds the sentinel return address rather than
// a value. See DESIGN.md for the full reasoning.
func (m *Machine) ExitValue() (vm.Word, error) {
	bp, err := m.VM.GetRegister(vm.BP)
	if err != nil {
		return 0, err
	}
	return m.VM.Mem.Word(int(bp) + 2)
}

// LoadAndRun is a convenience wrapper for embedders that don't need to reuse
// a Machine across runs: it builds a fresh Machine, runs instrs, and
// returns the exit value.
func LoadAndRun(instrs []vm.Instruction, opts ...Option) (vm.Word, error) {
	m, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return m.Run(instrs)
}
