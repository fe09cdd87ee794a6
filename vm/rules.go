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

import "github.com/pkg/errors"

// A rule rewrites the tape when its guard matches.
type rule struct {
	guard  func(*Tape) bool
	action func(*Tape)
}

func always(*Tape) bool { return true }

// ruleSet lists the rules for one token, tried in order. If none matches,
// the machine cannot proceed and miss is reported.
type ruleSet struct {
	rules []rule
	miss  error
}

var rules = map[Token]ruleSet{
	Left: {
		rules: []rule{
			{(*Tape).hasLeft, (*Tape).moveLeft},
		},
		miss: ErrTapeUnderflow,
	},
	Right: {
		rules: []rule{
			{(*Tape).hasRight, (*Tape).moveRight},
			{always, func(t *Tape) { t.extendRight(); t.moveRight() }},
		},
	},
	Inc: {
		rules: []rule{
			{always, (*Tape).increment},
		},
	},
	Dec: {
		rules: []rule{
			{(*Tape).headNonZero, (*Tape).decrement},
		},
		miss: ErrStuck,
	},
}

// rewrite applies the first matching rule for tok to t.
func rewrite(t *Tape, tok Token) error {
	rs, ok := rules[tok]
	if !ok {
		return errors.Wrapf(ErrStuck, "unknown token %v", tok)
	}
	for _, r := range rs.rules {
		if r.guard(t) {
			r.action(t)
			return nil
		}
	}
	if rs.miss == nil {
		return errors.WithStack(ErrStuck)
	}
	return errors.WithStack(rs.miss)
}
