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
	"fmt"

	"github.com/pkg/errors"
)

// Run failures. They are never returned as is by an Instance but wrapped in an
// *Error; use errors.Cause or errors.Is to test for them.
var (
	// ErrTapeUnderflow is returned when moving left of the leftmost cell.
	ErrTapeUnderflow = errors.New("tape underflow")
	// ErrStuck is returned when no rule applies to the current state, e.g.
	// when decrementing an empty counter.
	ErrStuck = errors.New("no applicable rule")
	// ErrResourceExhausted is returned when a run exceeds its step limit.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ErrNoApplicableRule is an alias of ErrStuck.
var ErrNoApplicableRule = ErrStuck

// Error is the error type returned by Instance.Run and Instance.Step.
type Error struct {
	PC    int   // offset of the token that failed
	Token Token // token at PC
	Err   error // one of the Err* sentinels, possibly wrapped
}

func (e *Error) Error() string {
	return fmt.Sprintf("pc %d (%v): %v", e.PC, e.Token, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Format implements fmt.Formatter. With %+v, the stack trace of the cause is
// printed as well.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "pc %d (%v): %+v", e.PC, e.Token, e.Err)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
