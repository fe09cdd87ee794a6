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
	"io"

	"github.com/db47h/tape/internal/ew"
)

// DisplayMode selects how counters are printed.
type DisplayMode int

// Display modes.
const (
	Decimal DisplayMode = iota // counter value in base 10
	Abacus                     // bracketed marker sequence, e.g. [|||]
)

var modeNames = [...]string{"decimal", "abacus"}

func (m DisplayMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "DisplayMode(?)"
	}
	return modeNames[m]
}

// ParseDisplayMode returns the display mode with the given name.
func ParseDisplayMode(s string) (DisplayMode, bool) {
	for i, n := range modeNames {
		if n == s {
			return DisplayMode(i), true
		}
	}
	return Decimal, false
}

func dumpCells(w *ew.ErrWriter, cells []Counter, reverse bool, mode DisplayMode, m Token) {
	for k := range cells {
		c := cells[k]
		if reverse {
			c = cells[len(cells)-1-k]
		}
		if mode == Abacus {
			io.WriteString(w, c.Literal(m))
		} else {
			io.WriteString(w, c.String())
		}
		w.Write([]byte{'\n'})
	}
}

// Render writes a two section dump of the tape to w. Cells are written one per
// line in physical left to right order: the Back section ends with the
// current cell, the Front section starts with its right neighbor. The dump is
// terminated by a blank line.
func Render(w io.Writer, t *Tape, mode DisplayMode, marker Token) error {
	e := ew.New(w)
	io.WriteString(e, "Back:\n")
	dumpCells(e, t.Back(), true, mode, marker)
	io.WriteString(e, "Front:\n")
	dumpCells(e, t.Front(), false, mode, marker)
	e.Write([]byte{'\n'})
	return e.Err
}
