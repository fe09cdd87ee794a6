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

package asm

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/tape/internal/ew"
	"github.com/db47h/tape/vm"
)

// ErrEntry is a single assembly error.
type ErrEntry struct {
	Pos scanner.Position
	Msg string
}

func (e *ErrEntry) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It lists the errors in order
// of appearance in the source.
type ErrAsm []ErrEntry

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

// Assemble reads program source from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Each of the runes '<', '>', '+' and '-' is one instruction. Whitespace is
// ignored and text between parentheses is a comment; comments may nest. Any
// other rune, including the loop brackets '[' and ']', is rejected.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	return newParser().Parse(name, r)
}

// Disassemble writes the source of a program to the specified io.Writer. Runs
// of identical instructions are grouped and groups are separated by spaces,
// e.g. "++ > +++ < -".
func Disassemble(p vm.Program, w io.Writer) error {
	e := ew.New(w)
	for k := 0; k < len(p); {
		if k > 0 {
			e.Write([]byte{' '})
		}
		n := k + 1
		for n < len(p) && p[n] == p[k] {
			n++
		}
		e.Write([]byte(p[k:n].String()))
		k = n
	}
	return e.Err
}
