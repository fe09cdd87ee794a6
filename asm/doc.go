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

// Package asm provides utility functions to assemble and disassemble tape
// machine programs.
//
// Instructions:
//
//	token	name	description
//	-----	----	--------------------------------------------------------------
//	<	left	move the head one cell to the left. Fails on the leftmost cell.
//	>	right	move the head one cell to the right, creating a zero cell if needed
//	+	inc	add one marker to the current cell
//	-	dec	remove one marker from the current cell. Fails on an empty cell.
//
// Instructions need not be separated: "++>" is three instructions. White space
// is ignored.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. They may nest
// and need no surrounding spaces:
//
//	+++ (three) > + ( one (nested) )
//
// Any other character outside of a comment is an error. This includes '['
// and ']': loops are not part of the language.
package asm
