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

// The tape command runs programs for the unary tape machine of package
// github.com/db47h/tape/vm and prints the final tape.
//
// Usage:
//
//	tape [flags] [file ...]
//
//	-abacus
//		  display counters as beads instead of numbers
//	-config file
//		  load settings from file (.cue, .yaml or .yml)
//	-debug
//		  enable debug diagnostics
//	-e program
//		  run program instead of reading files
//	-i
//		  interactive mode: one instruction per key press
//	-journal
//		  also log to the systemd journal
//	-list
//		  print the program to stderr before running it
//	-log file
//		  also write JSON logs to file
//	-marker character
//		  bead character used by -abacus (default "|")
//	-max-steps n
//		  abort after n transitions (0 = no limit)
//	-seed layout
//		  initial tape layout, e.g. 1,2,3@1
//	-timeout duration
//		  abort after duration
//
// The program is read from the -e flag, from the files given on the command
// line, in order, or from stdin. On success, the tape is printed to stdout:
//
//	$ tape -e '++>+++<-'
//	Back:
//	1
//	Front:
//	3
//
// On failure, nothing is printed to stdout, the error goes to stderr and the
// exit status is 1.
//
// -debug: traces every transition and, should the run fail, prints the stack
// trace of the error, the instructions left and the last valid tape.
//
// -seed: starts from the given cells instead of a single empty cell. Values are
// separated by commas and the optional number after '@' is the position of
// the head, the last cell by default.
//
// -config: a CUE or YAML file with the following optional fields. Flags given
// on the command line take precedence.
//
//	display:  "decimal" | "abacus"
//	marker:   single character
//	maxSteps: integer >= 0
//	timeout:  duration, e.g. "1s"
//	log: {
//		level:   "debug" | "info" | "warn" | "error"
//		file:    path of a JSON log file
//		journal: bool
//	}
//
// -i: after running the program, if any, reads instructions from the keyboard
// and redraws the tape after each of them. The terminal is switched to raw
// mode when possible. Press q to quit.
package main
