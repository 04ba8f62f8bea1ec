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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/itamar8910/c-to-vm/asm"
	"github.com/itamar8910/c-to-vm/compiler"
	"github.com/itamar8910/c-to-vm/loader"
	"github.com/itamar8910/c-to-vm/vm"
)

var (
	cSource = flag.String("c", "", "compile and run a C subset source `file`")
	sSource = flag.String("s", "", "assemble and run a mnemonic assembly source `file`")
	disasm  = flag.Bool("disasm", false, "print the assembled instructions before running")
	trace   = flag.Bool("trace", false, "print one line per executed instruction to stderr")
	debug   = flag.Bool("debug", false, "print a full error stack trace on failure")
	stats   = flag.Bool("stats", false, "print the instruction count and wall-clock time upon exit")
)

func atExit(err error) {
	if err == nil {
		return
	}
	if *debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func assembleSource(text string) ([]vm.Instruction, error) {
	instrs, _, err := asm.Assemble("input", strings.NewReader(text))
	return instrs, err
}

func run() (vm.Word, error) {
	if (*cSource == "") == (*sSource == "") {
		return 0, errors.New("exactly one of -c or -s must be given")
	}

	var asmText string
	if *cSource != "" {
		src, err := os.ReadFile(*cSource)
		if err != nil {
			return 0, errors.Wrap(err, "read C source")
		}
		asmText, err = compiler.CompileText(string(src))
		if err != nil {
			return 0, errors.Wrap(err, "compile")
		}
	} else {
		src, err := os.ReadFile(*sSource)
		if err != nil {
			return 0, errors.Wrap(err, "read assembly source")
		}
		asmText = string(src)
	}

	instrs, err := assembleSource(asmText)
	if err != nil {
		return 0, errors.Wrap(err, "assemble")
	}

	if *disasm {
		if err := asm.Disassemble(instrs, os.Stdout); err != nil {
			return 0, errors.Wrap(err, "disassemble")
		}
	}

	var opts []loader.Option
	if *trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	m, err := loader.New(opts...)
	if err != nil {
		return 0, errors.Wrap(err, "new machine")
	}

	start := time.Now()
	exitValue, err := m.Run(instrs)
	if err != nil {
		return 0, errors.Wrap(err, "run")
	}
	if *stats {
		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "executed %d instructions in %v\n", m.VM.InstructionCount(), elapsed)
	}
	return exitValue, nil
}

func main() {
	flag.Parse()
	exitValue, err := run()
	atExit(err)
	os.Exit(int(exitValue))
}
