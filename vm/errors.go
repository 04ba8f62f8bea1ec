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

import "github.com/pkg/errors"

// ErrUnknownOpcode is the sentinel a caller can match against (with
// errors.Is/errors.As) when a Fault's root cause is a decoded instruction
// whose opcode the fetch-execute loop doesn't recognize.
var ErrUnknownOpcode = errors.New("unknown opcode")

// FaultKind classifies a fatal VM condition.
type FaultKind int

const (
	// FaultMemory: address out of range, or a read of an uninitialised cell.
	FaultMemory FaultKind = iota
	// FaultRegister: reference to an unknown register name.
	FaultRegister
	// FaultDecode: a memory cell holds something that isn't the expected kind.
	FaultDecode
	// FaultArithmetic: division (or modulo) by zero.
	FaultArithmetic
)

func (k FaultKind) String() string {
	switch k {
	case FaultMemory:
		return "memory fault"
	case FaultRegister:
		return "register fault"
	case FaultDecode:
		return "decode fault"
	case FaultArithmetic:
		return "arithmetic fault"
	default:
		return "fault"
	}
}

// Fault is a fatal condition raised by the fetch-execute loop. The VM does
// not recover from a Fault locally: Run stops and returns it to the
// embedder.
type Fault struct {
	Kind FaultKind
	Msg  string

	// Err, when set, is the sentinel this Fault wraps, letting a caller
	// use errors.Is/errors.As to test for a specific cause
	// rather than switching on Kind and parsing Msg.
	Err error
}

func (f *Fault) Error() string {
	return f.Kind.String() + ": " + f.Msg
}

func (f *Fault) Unwrap() error {
	return f.Err
}
