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

// Package loader owns the memory image: resetting VM state, loading a
// program at the fixed code base, building the initial stack frame, running
// to HALT, and reading back the exit value. It is the one piece of the
// pipeline that knows about the memory map partition (0-499 reserved,
// 500-999 data, 1000-3999 code, 4000-5999 heap, 6000-9999 stack) even
// though the vm package itself does not enforce it.
package loader
