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

package asm

import (
	"io"
	"strconv"
	"text/scanner"

	"github.com/db47h/tape/vm"
)

// maximum number of errors reported by Assemble
const maxErrors = 10

type parser struct {
	p      vm.Program
	s      scanner.Scanner
	errs   ErrAsm
	parens int // comment nesting
	cPos   scanner.Position
}

func newParser() *parser {
	return new(parser)
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrEntry{pos, msg})
	}
}

// Parse scans the source rune by rune.
func (p *parser) Parse(name string, r io.Reader) (vm.Program, error) {
	p.s.Init(r)
	p.s.Filename = name
	// only whitespace is handled by the scanner, everything else is returned
	// as single runes.
	p.s.Mode = 0
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if p.parens > 0 {
			switch tok {
			case '(':
				p.parens++
			case ')':
				p.parens--
			}
			continue
		}
		switch t := vm.Token(tok); {
		case tok == '(':
			p.parens++
			p.cPos = p.s.Position
		case tok == ')':
			p.error(p.s.Position, "unbalanced )")
		case tok == '[' || tok == ']':
			p.error(p.s.Position, "loops are not supported: "+strconv.QuoteRune(tok))
		case tok < 0x80 && t.IsInstruction():
			p.p = append(p.p, t)
		default:
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
		}
	}
	if p.parens > 0 {
		p.error(p.cPos, "unterminated comment")
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.p, nil
}
