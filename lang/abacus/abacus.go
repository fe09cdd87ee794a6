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

// Package abacus provides helpers to use the tape machine as a row of unary
// counters: building programs that lay out a given row of values, reading a
// tape back as a row, and printing it bead by bead.
package abacus

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/tape/vm"
	"github.com/pkg/errors"
)

// Seed returns the program that, run from the initial tape, lays out cells
// from left to right and leaves the head on cells[head].
func Seed(cells []vm.Counter, head int) (vm.Program, error) {
	if len(cells) == 0 {
		return nil, errors.New("Seed: no cells")
	}
	if head < 0 || head >= len(cells) {
		return nil, errors.Errorf("Seed: head %d out of range [0, %d)", head, len(cells))
	}
	var p vm.Program
	for k, c := range cells {
		if k > 0 {
			p = append(p, vm.Right)
		}
		for n := vm.Counter(0); n < c; n++ {
			p = append(p, vm.Inc)
		}
	}
	for k := len(cells) - 1; k > head; k-- {
		p = append(p, vm.Left)
	}
	return p, nil
}

// Cells returns the cells of a tape in physical order together with the
// position of the head.
func Cells(t *vm.Tape) (cells []vm.Counter, head int) {
	back, front := t.Back(), t.Front()
	cells = make([]vm.Counter, 0, len(back)+len(front))
	for k := len(back) - 1; k >= 0; k-- {
		cells = append(cells, back[k])
	}
	return append(cells, front...), len(back) - 1
}

// Tape builds a tape holding cells with the head on cells[head]. It is
// equivalent to running the program returned by Seed.
func Tape(cells []vm.Counter, head int) (*vm.Tape, error) {
	if len(cells) == 0 || head < 0 || head >= len(cells) {
		return nil, errors.Errorf("Tape: bad layout %s", FormatLayout(cells, head))
	}
	back := make([]vm.Counter, 0, head+1)
	for k := head; k >= 0; k-- {
		back = append(back, cells[k])
	}
	return vm.TapeOf(back, cells[head+1:]), nil
}

// ParseLayout parses a row of values like "1,2,3@1": comma separated counter
// values, optionally followed by '@' and the position of the head. The head
// defaults to the last cell.
func ParseLayout(s string) (cells []vm.Counter, head int, err error) {
	vals, at, hasHead := strings.Cut(s, "@")
	for _, f := range strings.Split(vals, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 0)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "ParseLayout %q", s)
		}
		cells = append(cells, vm.Counter(n))
	}
	head = len(cells) - 1
	if hasHead {
		h, err := strconv.Atoi(strings.TrimSpace(at))
		if err != nil {
			return nil, 0, errors.Wrapf(err, "ParseLayout %q", s)
		}
		head = h
	}
	if head < 0 || head >= len(cells) {
		return nil, 0, errors.Errorf("ParseLayout %q: head %d out of range", s, head)
	}
	return cells, head, nil
}

// FormatLayout is the reverse of ParseLayout.
func FormatLayout(cells []vm.Counter, head int) string {
	s := make([]string, len(cells))
	for k, c := range cells {
		s[k] = c.String()
	}
	return strings.Join(s, ",") + "@" + strconv.Itoa(head)
}

// Dump writes the tape to w with counters shown as beads.
func Dump(w io.Writer, t *vm.Tape, bead vm.Token) error {
	return vm.Render(w, t, vm.Abacus, bead)
}
