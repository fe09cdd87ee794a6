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
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

// Tape is the memory of the machine: two stacks of counters meeting at the
// head. The top of back is the current cell, the top of front its right
// neighbor. Back is never empty.
//
// A Tape must be created with NewTape or TapeOf.
type Tape struct {
	back  *arraystack.Stack
	front *arraystack.Stack
}

// NewTape returns the initial tape: a single zero cell under the head and
// nothing to its right.
func NewTape() *Tape {
	t := &Tape{arraystack.New(), arraystack.New()}
	t.back.Push(Counter(0))
	return t
}

// TapeOf builds a tape from nearest-first slices: back[0] is the current cell,
// front[0] its right neighbor. It panics if back is empty.
func TapeOf(back, front []Counter) *Tape {
	if len(back) == 0 {
		panic("vm: TapeOf with empty back")
	}
	t := &Tape{arraystack.New(), arraystack.New()}
	for i := len(back) - 1; i >= 0; i-- {
		t.back.Push(back[i])
	}
	for i := len(front) - 1; i >= 0; i-- {
		t.front.Push(front[i])
	}
	return t
}

func counters(s *arraystack.Stack) []Counter {
	v := s.Values()
	c := make([]Counter, len(v))
	for i := range v {
		c[i] = v[i].(Counter)
	}
	return c
}

// Back returns a copy of the current cell and the cells to its left,
// nearest first.
func (t *Tape) Back() []Counter { return counters(t.back) }

// Front returns a copy of the cells right of the head, nearest first.
func (t *Tape) Front() []Counter { return counters(t.front) }

// Current returns the counter under the head.
func (t *Tape) Current() Counter {
	v, _ := t.back.Peek()
	return v.(Counter)
}

// Len returns the number of cells visited so far.
func (t *Tape) Len() int { return t.back.Size() + t.front.Size() }

// Head returns the physical position of the head, 0 being the leftmost cell.
func (t *Tape) Head() int { return t.back.Size() - 1 }

// Clone returns a deep copy of the tape.
func (t *Tape) Clone() *Tape {
	return TapeOf(t.Back(), t.Front())
}

// Equal returns true if both tapes have the same Back/Front partition and
// contents.
func (t *Tape) Equal(o *Tape) bool {
	if t.back.Size() != o.back.Size() || t.front.Size() != o.front.Size() {
		return false
	}
	a, b := t.back.Values(), o.back.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	a, b = t.front.Values(), o.front.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// guards

func (t *Tape) hasLeft() bool     { return t.back.Size() >= 2 }
func (t *Tape) hasRight() bool    { return !t.front.Empty() }
func (t *Tape) headNonZero() bool { return t.Current() > 0 }

// transitions. Callers check guards first.

func (t *Tape) moveLeft() {
	v, _ := t.back.Pop()
	t.front.Push(v)
}

func (t *Tape) extendRight() {
	t.front.Push(Counter(0))
}

func (t *Tape) moveRight() {
	v, _ := t.front.Pop()
	t.back.Push(v)
}

func (t *Tape) setCurrent(c Counter) {
	t.back.Pop()
	t.back.Push(c)
}

func (t *Tape) increment() { t.setCurrent(t.Current() + 1) }
func (t *Tape) decrement() { t.setCurrent(t.Current() - 1) }

// MoveLeft moves the head one cell to the left. The current cell becomes the
// first cell of Front. It returns ErrTapeUnderflow, leaving the tape
// untouched, if the head is on the leftmost cell.
func (t *Tape) MoveLeft() error {
	if !t.hasLeft() {
		return errors.WithStack(ErrTapeUnderflow)
	}
	t.moveLeft()
	return nil
}

// MoveRight moves the head one cell to the right, appending a zero cell if
// none has been visited there yet.
func (t *Tape) MoveRight() {
	if !t.hasRight() {
		t.extendRight()
	}
	t.moveRight()
}

// Increment adds one marker to the current cell.
func (t *Tape) Increment() {
	t.increment()
}

// Decrement removes one marker from the current cell. It returns ErrStuck,
// leaving the tape untouched, if the cell is empty.
func (t *Tape) Decrement() error {
	if !t.headNonZero() {
		return errors.WithStack(ErrStuck)
	}
	t.decrement()
	return nil
}
