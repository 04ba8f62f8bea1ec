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

// Package ast lexes and parses the small C subset that compiler lowers: a
// single "int main() { ... }" function body made of declarations,
// assignments, return, if/else, and while, over integer constants,
// identifiers, and the usual arithmetic/relational/logical/bitwise
// operators. There are no types beyond int, no pointers, no arrays, no
// additional functions.
package ast
