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
	"fmt"

	"github.com/pkg/errors"
)

// Run executes the fetch-decode-execute loop starting from the current IP
// until a HALT instruction is reached or a fault occurs.
//
// Control-flow opcodes advance IP by (offset - 1): the loop's own
// post-increment supplies the final +1, so a taken jump's PC-relative
// offset lands exactly on its target. This convention must match the one
// package asm uses to compute offsets.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if re, ok := e.(error); ok {
				err = errors.Wrapf(re, "recovered error at ip=%d", i.regs[IP])
			} else {
				panic(e)
			}
		}
	}()

	i.running = true
	i.insCount = 0
	for i.running {
		ip := int(i.regs[IP])
		in, err := i.Mem.Instruction(ip)
		if err != nil {
			return errors.Wrapf(err, "fetch at ip=%d", ip)
		}
		if i.trace != nil {
			fmt.Fprintf(i.trace, "%04d: %s\n", ip, in.String())
		}
		if err := i.execute(in); err != nil {
			return errors.Wrapf(err, "execute %q at ip=%d", in.String(), ip)
		}
		if i.running {
			i.regs[IP]++
		}
		i.insCount++
	}
	return nil
}

func (i *Instance) execute(in Instruction) error {
	if fn, ok := arithmeticOpcodes[in.Op]; ok {
		arg1, err := i.GetRegister(in.Arg1)
		if err != nil {
			return err
		}
		arg2, err := in.Arg2.Value(i)
		if err != nil {
			return err
		}
		res, err := fn(arg1, arg2)
		if err != nil {
			return err
		}
		return i.SetRegister(in.Dst, res)
	}
	if fn, ok := testOpcodes[in.Op]; ok {
		arg1, err := i.GetRegister(in.Arg1)
		if err != nil {
			return err
		}
		arg2, err := in.Arg2.Value(i)
		if err != nil {
			return err
		}
		zr := Word(0)
		if fn(arg1, arg2) {
			zr = 1
		}
		return i.SetRegister(ZR, zr)
	}

	switch in.Op {
	case OpNeg:
		v, err := i.GetRegister(in.Dst)
		if err != nil {
			return err
		}
		return i.SetRegister(in.Dst, -v)

	case OpMov:
		v, err := in.Src.Value(i)
		if err != nil {
			return err
		}
		return i.SetRegister(in.Dst, v)

	case OpStr:
		addr, err := i.GetRegister(in.Dst)
		if err != nil {
			return err
		}
		v, err := in.Src.Value(i)
		if err != nil {
			return err
		}
		return i.Mem.SetWord(int(addr), v)

	case OpLoad:
		addr, err := in.Src.Value(i)
		if err != nil {
			return err
		}
		v, err := i.Mem.Word(int(addr))
		if err != nil {
			return err
		}
		return i.SetRegister(in.Dst, v)

	case OpPush:
		v, err := in.Src.Value(i)
		if err != nil {
			return err
		}
		sp, err := i.GetRegister(SP)
		if err != nil {
			return err
		}
		if err := i.Mem.SetWord(int(sp), v); err != nil {
			return err
		}
		return i.SetRegister(SP, sp-1)

	case OpPop:
		sp, err := i.GetRegister(SP)
		if err != nil {
			return err
		}
		sp++
		v, err := i.Mem.Word(int(sp))
		if err != nil {
			return err
		}
		if err := i.SetRegister(SP, sp); err != nil {
			return err
		}
		return i.SetRegister(in.Dst, v)

	case OpJump:
		return i.branch(true, in.Offset)
	case OpTjmp:
		zr, err := i.GetRegister(ZR)
		if err != nil {
			return err
		}
		return i.branch(zr != 0, in.Offset)
	case OpFjmp:
		zr, err := i.GetRegister(ZR)
		if err != nil {
			return err
		}
		return i.branch(zr == 0, in.Offset)
	case OpCall:
		return i.call(in.Offset)

	case OpHalt:
		i.running = false
		return nil

	case OpRet:
		return i.ret()

	default:
		return &Fault{Kind: FaultDecode, Msg: "unknown opcode " + in.Op.String(), Err: ErrUnknownOpcode}
	}
}

// branch applies a PC-relative offset to IP when taken; otherwise IP is left
// for the loop's ordinary post-increment to advance past the instruction.
func (i *Instance) branch(taken bool, offset int) error {
	if !taken {
		return nil
	}
	ip, err := i.GetRegister(IP)
	if err != nil {
		return err
	}
	return i.SetRegister(IP, ip+Word(offset)-1)
}

// call performs the CALL prologue atomically, then applies the PC-relative
// offset exactly like an unconditional jump.
func (i *Instance) call(offset int) error {
	sp, err := i.GetRegister(SP)
	if err != nil {
		return err
	}
	bp, err := i.GetRegister(BP)
	if err != nil {
		return err
	}
	ip, err := i.GetRegister(IP)
	if err != nil {
		return err
	}
	if err := i.Mem.SetWord(int(sp), ip+1); err != nil {
		return err
	}
	if err := i.Mem.SetWord(int(sp-1), bp); err != nil {
		return err
	}
	if err := i.SetRegister(BP, sp-1); err != nil {
		return err
	}
	if err := i.SetRegister(SP, sp-2); err != nil {
		return err
	}
	return i.branch(true, offset)
}

// ret restores the caller's frame and resumes execution at the return
// address.
func (i *Instance) ret() error {
	bp, err := i.GetRegister(BP)
	if err != nil {
		return err
	}
	if err := i.SetRegister(SP, bp+1); err != nil {
		return err
	}
	retAddr, err := i.Mem.Word(int(bp) + 1)
	if err != nil {
		return err
	}
	savedBP, err := i.Mem.Word(int(bp))
	if err != nil {
		return err
	}
	if err := i.SetRegister(BP, savedBP); err != nil {
		return err
	}
	return i.SetRegister(IP, retAddr-1)
}
