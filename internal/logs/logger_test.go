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

package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var text, js bytes.Buffer
	logger := New(Options{Level: slog.LevelDebug, Stderr: &text, File: &js})
	logger.Debug("transition", "pc", 3, "token", "inc")

	if s := text.String(); !strings.Contains(s, "msg=transition") || !strings.Contains(s, "pc=3") {
		t.Fatalf("unexpected text output %q", s)
	}
	var rec map[string]any
	if err := json.Unmarshal(js.Bytes(), &rec); err != nil {
		t.Fatalf("bad json output %q: %v", js.String(), err)
	}
	if rec["msg"] != "transition" || rec["token"] != "inc" {
		t.Fatalf("unexpected json record %v", rec)
	}
}

func TestNew_level(t *testing.T) {
	var text bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := New(Options{Level: level, Stderr: &text})
	logger.Info("hidden")
	if text.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", text.String())
	}
	level.Set(slog.LevelInfo)
	logger.Info("shown")
	if !strings.Contains(text.String(), "shown") {
		t.Fatalf("info not logged at info level: %q", text.String())
	}
}

func TestNew_discard(t *testing.T) {
	logger := New(Options{})
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("logger without destination should discard everything")
	}
}

func TestToJournalKey(t *testing.T) {
	if k := toJournalKey("vm.pc-count"); k != "VM_PC_COUNT" {
		t.Fatalf("got %q", k)
	}
}
