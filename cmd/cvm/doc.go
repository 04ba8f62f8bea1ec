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

// The cvm command drives the three subsystems end to end: it compiles a C
// subset source file, assembles the resulting mnemonic text, loads it into a
// fresh virtual machine, runs it to completion, and reports the program's
// exit value.
//
// Usage:
//
//	-c filename
//	      compile and run a C subset source file
//	-s filename
//	      assemble and run a mnemonic assembly source file (mutually
//	      exclusive with -c)
//	-disasm
//	      print the assembled instructions before running
//	-trace
//	      print one line per executed instruction to stderr
//	-debug
//	      print a full error stack trace on failure
//	-stats
//	      print the instruction count and wall-clock time upon exit
//
// Exactly one of -c or -s must be given. cvm exits with status 1 and the
// program's exit value is ignored if compilation, assembly, or execution
// fails; otherwise it exits with the program's own exit value, truncated to
// the host's int range.
package main
