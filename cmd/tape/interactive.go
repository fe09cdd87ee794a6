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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/db47h/tape/vm"
)

const (
	ctrlC     = 3
	ctrlD     = 4
	clearHome = "\x1b[H\x1b[2J"
	keyHelp   = "< > + - to run, q to quit"
)

type flusher interface {
	Flush() error
}

// interact switches stdin to raw mode when possible and runs keys read from in
// as instructions, redrawing the tape after each of them.
func interact(i *vm.Instance, in *os.File, out io.Writer) error {
	tearDown, err := setRawIO(in.Fd())
	if err == nil {
		defer tearDown()
	}
	return keyLoop(i, bufio.NewReader(in), out, err == nil)
}

func redraw(i *vm.Instance, out io.Writer, clear bool) error {
	if clear {
		io.WriteString(out, clearHome)
	}
	if err := i.Dump(out); err != nil {
		return err
	}
	fmt.Fprintln(out, keyHelp)
	if f, ok := out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// keyLoop ends on 'q', Ctrl-C, Ctrl-D or EOF. A failing instruction ends it with an
// error, like it would a batch run.
func keyLoop(i *vm.Instance, r io.ByteReader, out io.Writer, clear bool) error {
	if err := redraw(i, out, clear); err != nil {
		return err
	}
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch tok := vm.Token(b); {
		case b == 'q' || b == ctrlC || b == ctrlD:
			return nil
		case tok.IsInstruction():
			if err = i.Exec(tok); err != nil {
				return &vm.Error{PC: i.PC, Token: tok, Err: err}
			}
			if err = redraw(i, out, clear); err != nil {
				return err
			}
		}
	}
}
