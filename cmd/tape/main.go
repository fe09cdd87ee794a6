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
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/tape/asm"
	"github.com/db47h/tape/internal/config"
	"github.com/db47h/tape/internal/logs"
	"github.com/db47h/tape/lang/abacus"
	"github.com/db47h/tape/vm"
	"github.com/pkg/errors"
)

var (
	debug       bool
	interactive bool
	list        bool
	abacusMode  bool
	journal     bool
	code        string
	configFile  string
	seed        string
	marker      string
	logFile     string
	maxSteps    int64
	timeout     string
)

// settings merges the configuration file, if any, with the flags set on the
// command line. Flags win.
func settings(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "abacus":
			if abacusMode {
				cfg.Display = vm.Abacus.String()
			} else {
				cfg.Display = vm.Decimal.String()
			}
		case "marker":
			cfg.Marker = marker
		case "max-steps":
			cfg.MaxSteps = maxSteps
		case "timeout":
			cfg.Timeout = timeout
		case "log":
			cfg.Log.File = logFile
		case "journal":
			cfg.Log.Journal = journal
		}
	})
	if debug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

// source returns the program text: the -e flag, the concatenation of the files
// named on the command line, or stdin.
func source(args []string, stdin io.Reader) (name string, r io.Reader, closeAll func(), err error) {
	closeAll = func() {}
	if code != "" {
		return "-e", strings.NewReader(code), closeAll, nil
	}
	if len(args) == 0 {
		if interactive {
			return "none", strings.NewReader(""), closeAll, nil
		}
		return "stdin", bufio.NewReader(stdin), closeAll, nil
	}
	var files []*os.File
	var readers []io.Reader
	closeAll = func() {
		for _, f := range files {
			f.Close()
		}
	}
	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			closeAll()
			return "", nil, func() {}, errors.Wrap(err, "open failed")
		}
		files = append(files, f)
		readers = append(readers, bufio.NewReader(f), strings.NewReader("\n"))
	}
	return args[0], io.MultiReader(readers...), closeAll, nil
}

func options(cfg config.Config, logger *slog.Logger) ([]vm.Option, error) {
	opts := []vm.Option{
		vm.Display(cfg.DisplayMode()),
		vm.MarkerToken(cfg.MarkerToken()),
		vm.MaxSteps(cfg.MaxSteps),
		vm.Logger(logger),
	}
	if seed != "" {
		cells, head, err := abacus.ParseLayout(seed)
		if err != nil {
			return nil, err
		}
		t, err := abacus.Tape(cells, head)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vm.InitialTape(t))
	}
	return opts, nil
}

// run drives the instance one transition at a time so that a deadline set on
// ctx can abort it between transitions.
func run(ctx context.Context, i *vm.Instance) error {
	for !i.Done() {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "aborted at pc %d", i.PC)
		default:
		}
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		diagnostics(os.Stderr, i)
	}
	os.Exit(1)
}

// diagnostics writes the state of a failed run: the position of the failure,
// the part of the program not executed and the last valid tape.
func diagnostics(w io.Writer, i *vm.Instance) {
	fmt.Fprintf(w, "PC: %d, executed: %d\nRemaining: ", i.PC, i.InstructionCount())
	asm.Disassemble(i.Remaining(), w)
	fmt.Fprintln(w)
	vm.Render(w, i.Tape(), vm.Decimal, vm.Marker)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	fs := flag.CommandLine
	fs.StringVar(&code, "e", "", "run `program` instead of reading files")
	fs.StringVar(&configFile, "config", "", "load settings from `file` (.cue, .yaml or .yml)")
	fs.StringVar(&seed, "seed", "", "initial tape `layout`, e.g. 1,2,3@1")
	fs.BoolVar(&abacusMode, "abacus", false, "display counters as beads instead of numbers")
	fs.StringVar(&marker, "marker", "|", "bead `character` used by -abacus")
	fs.Int64Var(&maxSteps, "max-steps", 0, "abort after `n` transitions (0 = no limit)")
	fs.StringVar(&timeout, "timeout", "", "abort after `duration`")
	fs.BoolVar(&interactive, "i", false, "interactive mode: one instruction per key press")
	fs.BoolVar(&list, "list", false, "print the program to stderr before running it")
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	fs.StringVar(&logFile, "log", "", "also write JSON logs to `file`")
	fs.BoolVar(&journal, "journal", false, "also log to the systemd journal")
	flag.Parse()

	cfg, err := settings(fs)
	if err != nil {
		return
	}

	level := new(slog.LevelVar)
	lvl, _ := cfg.LogLevel()
	level.Set(lvl)
	lopts := logs.Options{Level: level, Stderr: os.Stderr, Journal: cfg.Log.Journal}
	if cfg.Log.File != "" {
		var f *os.File
		f, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			err = errors.Wrap(err, "log file")
			return
		}
		defer f.Close()
		lopts.File = f
	}
	logger := logs.New(lopts)

	name, r, closeAll, err := source(flag.Args(), os.Stdin)
	if err != nil {
		return
	}
	p, err := asm.Assemble(name, r)
	closeAll()
	if err != nil {
		return
	}
	if list {
		asm.Disassemble(p, os.Stderr)
		fmt.Fprintln(os.Stderr)
	}

	opts, err := options(cfg, logger)
	if err != nil {
		return
	}
	i, err = vm.New(p, opts...)
	if err != nil {
		return
	}

	ctx := context.Background()
	if d, _ := cfg.TimeoutDuration(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	if err = run(ctx, i); err != nil {
		return
	}
	logger.Info("run complete", "transitions", i.InstructionCount(), "cells", i.Tape().Len())

	if interactive {
		err = interact(i, os.Stdin, stdout)
		return
	}
	err = i.Dump(stdout)
}
