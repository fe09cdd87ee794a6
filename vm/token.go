// This file is part of tape - https://github.com/db47h/tape
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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
	"strconv"

	"github.com/pkg/errors"
)

// Token is the atomic unit of programs and tape data.
type Token byte

// Instruction tokens and the counter marker.
const (
	Left   Token = '<'
	Right  Token = '>'
	Inc    Token = '+'
	Dec    Token = '-'
	Marker Token = '|'
)

var tokenNames = map[Token]string{
	Left:  "left",
	Right: "right",
	Inc:   "inc",
	Dec:   "dec",
}

// IsInstruction returns true if t belongs to the instruction alphabet.
func (t Token) IsInstruction() bool {
	_, ok := tokenNames[t]
	return ok
}

// Name returns the mnemonic of an instruction token, or an empty string.
func (t Token) Name() string {
	return tokenNames[t]
}

func (t Token) String() string {
	return strconv.QuoteRune(rune(t))
}

// Program is an ordered, immutable sequence of instruction tokens.
type Program []Token

// Validate checks that every token of the program is an instruction. It
// reports the offset of the first offending token.
func (p Program) Validate() error {
	for pc, t := range p {
		if !t.IsInstruction() {
			return errors.Errorf("invalid token %v at offset %d", t, pc)
		}
	}
	return nil
}

func (p Program) String() string {
	b := make([]byte, len(p))
	for i, t := range p {
		b[i] = byte(t)
	}
	return string(b)
}
