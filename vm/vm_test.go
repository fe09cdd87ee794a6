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

package vm_test

import (
	"bytes"
	"testing"

	"github.com/db47h/tape/asm"
	"github.com/db47h/tape/vm"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type C []vm.Counter

func setup(t *testing.T, code string, back, front C, opts ...vm.Option) *vm.Instance {
	p, err := asm.Assemble(t.Name(), bytes.NewBufferString(code))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if back != nil {
		opts = append(opts, vm.InitialTape(vm.TapeOf(back, front)))
	}
	i, err := vm.New(p, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, back, front C) {
	t.Helper()
	if err := i.Run(); err != nil {
		t.Errorf("%s: %+v", testName, err)
		return
	}
	if i.PC != len(i.Program) {
		t.Errorf("%s: Bad PC %d != %d", testName, i.PC, len(i.Program))
	}
	if diff := cmp.Diff(back, C(i.Tape().Back())); diff != "" {
		t.Errorf("%s: Back mismatch (-want +got):\n%s", testName, diff)
	}
	if diff := cmp.Diff(front, C(i.Tape().Front()), cmpEmpty); diff != "" {
		t.Errorf("%s: Front mismatch (-want +got):\n%s", testName, diff)
	}
}

// nil and empty fronts are the same tape.
var cmpEmpty = cmp.FilterValues(func(a, b C) bool { return len(a) == 0 && len(b) == 0 }, cmp.Ignore())

var tests = [...]struct {
	name  string
	code  string
	back  C
	front C
}{
	{"empty", "", C{0}, nil},
	{"inc", "+++", C{3}, nil},
	{"dec", "++-", C{1}, nil},
	{"right", ">", C{0, 0}, nil},
	{"right inc", "+>++", C{2, 1}, nil},
	{"left", ">+<", C{0}, C{1}},
	{"scenario D", "++>+++<-", C{1}, C{3}},
	{"walk", "+>++>+++<<", C{1}, C{2, 3}},
	{"revisit", ">+<>+", C{2, 0}, nil},
	{"comments", "+ ( bump ) > + ( again )", C{1, 1}, nil},
}

func TestRun(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.code, nil, nil)
		check(t, test.name, i, test.back, test.front)
	}
}

func TestRun_errors(t *testing.T) {
	data := []struct {
		name  string
		code  string
		cause error
		pc    int
		back  C
	}{
		{"underflow", "+<", vm.ErrTapeUnderflow, 1, C{1}},
		{"underflow after moves", "><<+", vm.ErrTapeUnderflow, 2, C{0}},
		{"stuck", "-", vm.ErrStuck, 0, C{0}},
		{"stuck later", "+>+--", vm.ErrStuck, 4, C{0, 1}},
	}
	for _, d := range data {
		i := setup(t, d.code, nil, nil)
		err := i.Run()
		if err == nil {
			t.Errorf("%s: expected error", d.name)
			continue
		}
		if errors.Cause(err) != d.cause {
			t.Errorf("%s: expected cause %v, got %v", d.name, d.cause, err)
		}
		if !errors.Is(err, d.cause) {
			t.Errorf("%s: errors.Is(%v) failed", d.name, d.cause)
		}
		var e *vm.Error
		if !errors.As(err, &e) {
			t.Fatalf("%s: expected *vm.Error, got %T", d.name, err)
		}
		if e.PC != d.pc || i.PC != d.pc {
			t.Errorf("%s: expected error at pc %d, got %d (instance pc %d)", d.name, d.pc, e.PC, i.PC)
		}
		if e.Token != i.Program[d.pc] {
			t.Errorf("%s: bad token %v", d.name, e.Token)
		}
		if diff := cmp.Diff(d.back, C(i.Tape().Back())); diff != "" {
			t.Errorf("%s: last valid tape mismatch (-want +got):\n%s", d.name, diff)
		}
		if got, want := i.Remaining().String(), d.code[d.pc:]; got != want {
			t.Errorf("%s: remaining program %q, expected %q", d.name, got, want)
		}
	}
}

func TestNew_invalid(t *testing.T) {
	for _, p := range []vm.Program{{'['}, {'+', ']'}, {'.'}, {vm.Marker}} {
		if _, err := vm.New(p); err == nil {
			t.Errorf("%q: expected validation error", p.String())
		}
	}
	if _, err := vm.New(nil, vm.MaxSteps(-1)); err == nil {
		t.Error("expected error for negative step limit")
	}
	if _, err := vm.New(nil, vm.MarkerToken(vm.Inc)); err == nil {
		t.Error("expected error for marker clashing with an instruction")
	}
	if _, err := vm.New(nil, vm.Display(vm.DisplayMode(7))); err == nil {
		t.Error("expected error for bad display mode")
	}
}

func TestExec_unknownToken(t *testing.T) {
	i := setup(t, "", nil, nil)
	for _, tok := range []vm.Token{'[', ']', vm.Marker} {
		if err := i.Exec(tok); errors.Cause(err) != vm.ErrStuck {
			t.Errorf("%v: expected stuck, got %v", tok, err)
		}
	}
}

// Every transition consumes exactly one token.
func TestStep_consumption(t *testing.T) {
	const code = "++>+>+++<<->-"
	i := setup(t, code, nil, nil)
	for n := 1; !i.Done(); n++ {
		if err := i.Step(); err != nil {
			t.Fatalf("%+v", err)
		}
		if i.PC != n || i.InstructionCount() != int64(n) {
			t.Fatalf("after %d steps: pc %d, count %d", n, i.PC, i.InstructionCount())
		}
		if len(i.Remaining()) != len(code)-n {
			t.Fatalf("after %d steps: %d tokens remaining", n, len(i.Remaining()))
		}
	}
	if err := i.Step(); err != nil || i.PC != len(code) {
		t.Fatalf("step past end: pc %d, err %v", i.PC, err)
	}

	i = setup(t, code, nil, nil)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.InstructionCount() != int64(len(code)) {
		t.Fatalf("expected %d transitions, got %d", len(code), i.InstructionCount())
	}
}

func TestMaxSteps(t *testing.T) {
	i := setup(t, "+++++", nil, nil, vm.MaxSteps(3))
	err := i.Run()
	if errors.Cause(err) != vm.ErrResourceExhausted {
		t.Fatalf("expected resource exhausted, got %v", err)
	}
	if i.PC != 3 || i.Tape().Current() != 3 {
		t.Fatalf("bad state after limit: pc %d, current %d", i.PC, i.Tape().Current())
	}

	i = setup(t, "+++", nil, nil, vm.MaxSteps(3))
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestInitialTape(t *testing.T) {
	tp := vm.TapeOf(C{3, 2, 1}, C{4, 5, 6})
	i := setup(t, "<", nil, nil, vm.InitialTape(tp))
	check(t, "scenario A", i, C{2, 1}, C{3, 4, 5, 6})
	// the option must not alias the caller's tape
	if !tp.Equal(vm.TapeOf(C{3, 2, 1}, C{4, 5, 6})) {
		t.Fatal("initial tape was modified")
	}
	if _, err := vm.New(nil, vm.InitialTape(nil)); err == nil {
		t.Fatal("expected error for nil tape")
	}
}

func TestDump(t *testing.T) {
	i := setup(t, "++>+++<-", nil, nil)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	var b bytes.Buffer
	if err := i.Dump(&b); err != nil {
		t.Fatal(err)
	}
	if exp := "Back:\n1\nFront:\n3\n\n"; b.String() != exp {
		t.Fatalf("Expected:\n%q\ngot:\n%q", exp, b.String())
	}

	i = setup(t, "++>+++<-", nil, nil, vm.Display(vm.Abacus), vm.MarkerToken('o'))
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	b.Reset()
	if err := i.Dump(&b); err != nil {
		t.Fatal(err)
	}
	if exp := "Back:\n[o]\nFront:\n[ooo]\n\n"; b.String() != exp {
		t.Fatalf("Expected:\n%q\ngot:\n%q", exp, b.String())
	}
}
