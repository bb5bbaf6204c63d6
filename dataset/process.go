// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

const (
	emptyMessage   = "<EMPTY>"
	invalidMessage = "<INVALID COMMAND>"
)

// Statistics - counts from a run of Process
type Statistics struct {
	Commands int // non-blank lines read
	Invalid  int // lines answered with <INVALID COMMAND>
	Created  int // datasets produced by set operations
}

// the command table: arguments excludes the command name
type command struct {
	arguments int
	run       func(c *Collection, out io.Writer, arguments []string) error
	creates   bool
}

var commands = map[string]command{
	"print": {
		arguments: 1,
		run: func(c *Collection, out io.Writer, arguments []string) error {
			return c.Print(out, arguments[0])
		},
	},
	"complement": {
		arguments: 3,
		run: func(c *Collection, _ io.Writer, arguments []string) error {
			return c.Complement(arguments[0], arguments[1], arguments[2])
		},
		creates: true,
	},
	"intersect": {
		arguments: 3,
		run: func(c *Collection, _ io.Writer, arguments []string) error {
			return c.Intersect(arguments[0], arguments[1], arguments[2])
		},
		creates: true,
	},
	"union": {
		arguments: 3,
		run: func(c *Collection, _ io.Writer, arguments []string) error {
			return c.Union(arguments[0], arguments[1], arguments[2])
		},
		creates: true,
	},
}

// Process - execute one command per line from in, writing results to out
//
// a malformed command, or one naming an unknown dataset, writes
// <INVALID COMMAND> and processing continues whatever the line length;
// only I/O errors stop it
func (c *Collection) Process(in io.Reader, out io.Writer) (Statistics, error) {
	stats := Statistics{}

	reader := bufio.NewReader(in)
	for {
		line, err := readLine(reader)
		if io.EOF == err {
			return stats, nil
		}
		if nil != err {
			return stats, err
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}
		stats.Commands += 1

		err = c.execute(out, fields)
		switch {
		case nil == err:
			if commands[fields[0]].creates {
				stats.Created += 1
			}
		case fault.IsErrInvalid(err) || fault.IsErrNotFound(err):
			c.log.Debugf("command: %q  error: %s", fields, err)
			stats.Invalid += 1
			if _, err := fmt.Fprintln(out, invalidMessage); nil != err {
				return stats, err
			}
		default:
			return stats, err
		}
	}
}

// run a single command
func (c *Collection) execute(out io.Writer, fields []string) error {
	cmd, ok := commands[fields[0]]
	if !ok {
		return fmt.Errorf("%q: %w", fields[0], fault.ErrInvalidCommand)
	}
	if len(fields)-1 != cmd.arguments {
		return fmt.Errorf("%q needs %d arguments: %w", fields[0], cmd.arguments, fault.ErrInvalidCommand)
	}
	return cmd.run(c, out, fields[1:])
}
