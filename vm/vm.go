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
	"io"

	"github.com/itamar8910/c-to-vm/internal/diag"
)

// Instance represents one c-to-vm virtual machine. It is not safe for
// concurrent use: the embedder owns a single Instance per running program.
type Instance struct {
	Mem Memory

	regs [ZR + 1]Word

	running  bool
	insCount int64

	trace *diag.ErrWriter
}

// Option configures an Instance at construction time.
type Option func(*Instance) error

// MemorySize overrides the default memory size (vm.MemSize cells).
func MemorySize(size int) Option {
	return func(i *Instance) error {
		i.Mem = NewMemory(size)
		return nil
	}
}

// Trace causes the Instance to write one line per fetched instruction to w,
// for introspection. Adapted from ngaro/internal/ngi.ErrWriter: the first
// write error is latched and further writes are skipped.
func Trace(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			i.trace = nil
			return nil
		}
		i.trace = diag.NewErrWriter(w)
		return nil
	}
}

// New creates a new Instance with the given options applied in order.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.Mem == nil {
		i.Mem = NewMemory(MemSize)
	}
	return i, nil
}

// GetRegister reads a register's value.
func (i *Instance) GetRegister(r Register) (Word, error) {
	if int(r) <= 0 || int(r) >= len(i.regs) {
		return 0, &Fault{Kind: FaultRegister, Msg: "unknown register " + r.String()}
	}
	return i.regs[r], nil
}

// SetRegister writes a register's value.
func (i *Instance) SetRegister(r Register, v Word) error {
	if int(r) <= 0 || int(r) >= len(i.regs) {
		return &Fault{Kind: FaultRegister, Msg: "unknown register " + r.String()}
	}
	i.regs[r] = v
	return nil
}

// Running reports whether the fetch-execute loop is currently active.
func (i *Instance) Running() bool { return i.running }

// InstructionCount returns the number of instructions executed in the most
// recent Run call.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// Halt clears the running flag, so a Run loop in progress stops after the
// current instruction. Run sets the flag again on entry, so Halt called
// before Run does not stop the next Run call.
func (i *Instance) Halt() { i.running = false }
