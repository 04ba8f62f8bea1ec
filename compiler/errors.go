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

package compiler

import "github.com/pkg/errors"

// ErrUnsupportedNode is the sentinel a caller can match against (with
// errors.Is/errors.As) when compilation failed because an ast node kind
// has no lowering rule at all, as opposed to a recognized node carrying an
// operator or value this subset doesn't support.
var ErrUnsupportedNode = errors.New("unsupported ast node")
