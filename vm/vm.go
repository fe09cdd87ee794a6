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
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Instance is a tape machine running a single program.
//
// The whole state of a run is the pair (Program[PC:], Tape()); nothing else
// is carried between transitions.
type Instance struct {
	PC       int     // offset of the next token to execute
	Program  Program // program being run, never modified
	tape     *Tape
	insCount int64
	maxSteps int64
	mode     DisplayMode
	marker   Token
	logger   *slog.Logger
}

// Option interface
type Option func(*Instance) error

// MaxSteps limits the number of transitions a Run may perform. Exceeding it
// fails with ErrResourceExhausted. The default, 0, means no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// InitialTape replaces the initial tape. The tape is cloned. The default is
// the result of NewTape.
func InitialTape(t *Tape) Option {
	return func(i *Instance) error {
		if t == nil {
			return errors.New("nil tape")
		}
		i.tape = t.Clone()
		return nil
	}
}

// Display sets the display mode used by Dump. The default is Decimal.
func Display(mode DisplayMode) Option {
	return func(i *Instance) error {
		switch mode {
		case Decimal, Abacus:
			i.mode = mode
			return nil
		}
		return errors.Errorf("invalid display mode %d", mode)
	}
}

// MarkerToken sets the marker printed by Dump in Abacus mode. The default is
// Marker.
func MarkerToken(m Token) Option {
	return func(i *Instance) error {
		if m.IsInstruction() {
			return errors.Errorf("marker %v clashes with an instruction", m)
		}
		i.marker = m
		return nil
	}
}

// Logger sets the logger used to trace transitions at debug level. The
// default discards everything.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.logger = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new machine for the given program. The program is checked
// against the instruction alphabet before anything runs.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "New")
	}
	i := &Instance{
		Program: p,
		marker:  Marker,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.tape == nil {
		i.tape = NewTape()
	}
	if i.logger == nil {
		i.logger = slog.New(slog.DiscardHandler)
	}
	return i, nil
}

// Tape returns the machine tape. After a failed run, it holds the last valid
// state.
func (i *Instance) Tape() *Tape {
	return i.tape
}

// Remaining returns the part of the program not executed yet.
func (i *Instance) Remaining() Program {
	return i.Program[i.PC:]
}

// Done returns true once the whole program has been consumed.
func (i *Instance) Done() bool {
	return i.PC >= len(i.Program)
}

// InstructionCount returns the number of transitions executed by the last
// call to Run, or by Step calls since.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Exec applies a single token to the tape, outside of the program. The
// program counter is not affected.
func (i *Instance) Exec(tok Token) error {
	err := rewrite(i.tape, tok)
	if i.logger.Enabled(context.Background(), slog.LevelDebug) {
		i.logger.Debug("transition",
			"pc", i.PC,
			"token", tok.Name(),
			"back", i.tape.back.Size(),
			"front", i.tape.front.Size(),
			"current", i.tape.Current(),
			"error", err)
	}
	return err
}

// Step executes the token at PC and advances PC by one. It is a no-op once
// the program is done. On failure, PC is left on the offending token.
func (i *Instance) Step() error {
	if i.Done() {
		return nil
	}
	tok := i.Program[i.PC]
	if i.maxSteps > 0 && i.insCount >= i.maxSteps {
		return &Error{i.PC, tok, errors.Wrapf(ErrResourceExhausted, "step limit %d reached", i.maxSteps)}
	}
	if err := i.Exec(tok); err != nil {
		return &Error{i.PC, tok, err}
	}
	i.PC++
	i.insCount++
	return nil
}

// Run executes the program until it is exhausted or a transition fails. If an
// error occurs, the PC will point to the token that triggered it and the tape
// is left in its last valid state.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("%v", e)
		}
	}()
	i.insCount = 0
	for !i.Done() {
		if err = i.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Dump renders the tape to the specified io.Writer with the display options
// of the instance.
func (i *Instance) Dump(w io.Writer) error {
	return Render(w, i.tape, i.mode, i.marker)
}
