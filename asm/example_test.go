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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/tape/asm"
)

func ExampleAssemble() {
	code := `
		++	( two in the first cell )
		>
		+++	( three in the second )
		<-	( back to the first, take one )
`
	p, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.Disassemble(p, os.Stdout)
	fmt.Println()
	fmt.Println(len(p), "instructions")

	// Output:
	// ++ > +++ < -
	// 8 instructions
}

func ExampleErrAsm() {
	_, err := asm.Assemble("loop.bf", strings.NewReader("+[-]"))
	for _, e := range err.(asm.ErrAsm) {
		fmt.Println(e.Pos, e.Msg)
	}

	// Output:
	// loop.bf:1:2 loops are not supported: '['
	// loop.bf:1:4 loops are not supported: ']'
}
