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

// Package vm implements a unary tape machine driven by rewrite rules.
//
// Programs are sequences of the four instruction tokens '<', '>', '+' and '-'.
// Memory is a tape of cells, each cell holding a Counter: a unary number whose
// value is the length of its marker sequence. The tape is stored as two
// stacks meeting at the head, Back (the current cell and everything to its
// left) and Front (everything to its right), so that moving the head only
// transfers one counter from one stack to the other.
//
// Each instruction is handled by a small set of guarded rules. The first rule
// whose guard matches the tape rewrites it; when no rule matches, the machine
// is stuck and the run aborts. This is how decrementing an empty counter is
// reported (ErrStuck): there is no check for negative values, simply no rule
// for it. Moving left of the leftmost cell fails with ErrTapeUnderflow while
// moving right of the rightmost visited cell creates a new zero cell, so the
// tape is only infinite to the right.
//
// Loops ('[' and ']') are not part of the language.
package vm
