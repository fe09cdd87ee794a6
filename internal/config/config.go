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

// Package config loads tape settings from CUE or YAML files.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/db47h/tape/vm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Schema is the CUE schema of configuration files. Both CUE and YAML files
// follow it.
const Schema = `
display?:  "decimal" | "abacus"
marker?:   =~"^.$"
maxSteps?: int & >=0
timeout?:  string
log?: close({
	level?:   "debug" | "info" | "warn" | "error"
	file?:    string
	journal?: bool
})
`

// Log holds the logging settings.
type Log struct {
	Level   string `json:"level,omitempty" yaml:"level"`
	File    string `json:"file,omitempty" yaml:"file"`
	Journal bool   `json:"journal,omitempty" yaml:"journal"`
}

// Config holds the settings of a run.
type Config struct {
	Display  string `json:"display,omitempty" yaml:"display"`
	Marker   string `json:"marker,omitempty" yaml:"marker"`
	MaxSteps int64  `json:"maxSteps,omitempty" yaml:"maxSteps"`
	Timeout  string `json:"timeout,omitempty" yaml:"timeout"`
	Log      Log    `json:"log,omitempty" yaml:"log"`
}

// Default returns the settings used when no configuration file is given.
func Default() Config {
	return Config{
		Display: vm.Decimal.String(),
		Marker:  string(rune(vm.Marker)),
		Log:     Log{Level: "warn"},
	}
}

// Load reads the configuration file at path. The format is chosen from the
// file extension: ".cue", ".yaml" or ".yml". Settings missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	switch ext := filepath.Ext(path); ext {
	case ".cue":
		err = decodeCUE(path, content, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(content, &cfg)
	default:
		err = errors.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func decodeCUE(path string, content []byte, cfg *Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return err
	}
	value := ctx.CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return err
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return value.Decode(cfg)
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Validate checks the settings. CUE files are already checked against Schema,
// YAML files are only checked here.
func (c *Config) Validate() error {
	if _, ok := vm.ParseDisplayMode(c.Display); !ok {
		return errors.Errorf("invalid display mode %q", c.Display)
	}
	if _, err := ParseMarker(c.Marker); err != nil {
		return err
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("invalid step limit %d", c.MaxSteps)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ParseMarker converts a single character string to a marker token.
func ParseMarker(s string) (vm.Token, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || r >= utf8.RuneSelf || r <= ' ' {
		return 0, errors.Errorf("invalid marker %q: need a single printable ASCII character", s)
	}
	if t := vm.Token(r); t.IsInstruction() || r == '[' || r == ']' {
		return 0, errors.Errorf("invalid marker %q: reserved character", s)
	}
	return vm.Token(r), nil
}

// DisplayMode returns the configured display mode.
func (c *Config) DisplayMode() vm.DisplayMode {
	m, _ := vm.ParseDisplayMode(c.Display)
	return m
}

// MarkerToken returns the configured marker, or vm.Marker if it is invalid.
func (c *Config) MarkerToken() vm.Token {
	m, err := ParseMarker(c.Marker)
	if err != nil {
		return vm.Marker
	}
	return m
}

// TimeoutDuration returns the configured timeout. 0 means none.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errors.Wrap(err, "invalid timeout")
	}
	if d < 0 {
		return 0, errors.Errorf("invalid timeout %v", d)
	}
	return d, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return l, errors.Wrap(err, "invalid log level")
	}
	return l, nil
}
