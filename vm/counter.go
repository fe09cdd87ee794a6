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
	"strconv"
	"strings"
)

// Counter is the content of a single tape cell: a unary number whose value is
// the length of its marker sequence.
type Counter uint

// Len returns the number of markers in the counter.
func (c Counter) Len() int { return int(c) }

// Markers expands the counter into its marker sequence.
func (c Counter) Markers(m Token) []Token {
	s := make([]Token, c)
	for i := range s {
		s[i] = m
	}
	return s
}

// Literal returns the bracketed marker sequence, e.g. "[|||]".
func (c Counter) Literal(m Token) string {
	return "[" + strings.Repeat(string(rune(m)), int(c)) + "]"
}

func (c Counter) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
