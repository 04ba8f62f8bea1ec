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

package ast

import "testing"

func TestTokenizeOperators(t *testing.T) {
	toks, err := tokenize("x += 1 <<= 2 == 3 != 4")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := "<identifier> += <integer> <<= <integer> == <integer> != <integer> <eof>"
	if got := describeTokens(toks); got != want {
		t.Errorf("tokens = %q, want %q", got, want)
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, err := tokenize("int x; // a trailing comment\nreturn x;")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != TkEOF {
		t.Fatalf("expected token stream ending in EOF, got %v", toks)
	}
	want := "int <identifier> ; return <identifier> ; <eof>"
	if got := describeTokens(toks); got != want {
		t.Errorf("tokens = %q, want %q", got, want)
	}
}

func TestTokenizeRejectsUnknownCharacter(t *testing.T) {
	if _, err := tokenize("int x = 1 @ 2;"); err == nil {
		t.Fatal("expected an error for an unrecognised character")
	}
}
