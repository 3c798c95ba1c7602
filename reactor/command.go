// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Command is a parsed command-surface line. Exit is true
// for "exit"/"quit"; the driver, not this package, terminates the process.
type Command struct {
	Exit bool
	run  func(r *Reactor) error
}

// ParseCommand tokenizes and validates one command line. Unknown verbs or
// malformed arguments return a non-nil error and no Command; the caller
// must leave reactor state untouched.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, chk.Err("empty command")
	}

	switch fields[0] {
	case "exit", "quit":
		if len(fields) != 1 {
			return Command{}, chk.Err("%q takes no arguments", fields[0])
		}
		return Command{Exit: true}, nil

	case "select":
		return parseSelect(fields[1:])

	case "pull":
		return parsePull(fields[1:], -1)

	case "insert":
		return parsePull(fields[1:], 1)

	case "stop":
		if len(fields) != 1 {
			return Command{}, chk.Err("stop takes no arguments")
		}
		return Command{run: func(r *Reactor) error { r.MoveRod(0); return nil }}, nil

	case "scram":
		switch len(fields) {
		case 1:
			return Command{run: func(r *Reactor) error { r.Scram(); return nil }}, nil
		case 2:
			if fields[1] != "reset" {
				return Command{}, chk.Err("unknown scram subcommand %q", fields[1])
			}
			return Command{run: func(r *Reactor) error { r.ScramReset(); return nil }}, nil
		default:
			return Command{}, chk.Err("scram takes at most one argument")
		}

	default:
		return Command{}, chk.Err("unknown command %q", fields[0])
	}
}

func parseSelect(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, chk.Err("select requires arguments")
	}
	switch args[0] {
	case "all":
		if len(args) != 1 {
			return Command{}, chk.Err("select all takes no arguments")
		}
		return Command{run: func(r *Reactor) error { r.SelectAll(); return nil }}, nil

	case "sources":
		if len(args) != 1 {
			return Command{}, chk.Err("select sources takes no arguments")
		}
		return Command{run: func(r *Reactor) error { r.SelectSources(); return nil }}, nil

	case "group":
		if len(args) != 2 {
			return Command{}, chk.Err("select group requires exactly one argument")
		}
		g, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, chk.Err("select group: %v", err)
		}
		return Command{run: func(r *Reactor) error { return r.SelectGroup(g) }}, nil

	default:
		if len(args) != 2 {
			return Command{}, chk.Err("select requires exactly two coordinates")
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, chk.Err("select: %v", err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, chk.Err("select: %v", err)
		}
		return Command{run: func(r *Reactor) error {
			if !r.SelectRod(x+3, y+3) {
				return chk.Err("select %d %d: rejected", x, y)
			}
			return nil
		}}, nil
	}
}

// parsePull builds the pull/insert command, which differ only in the sign
// applied to the default-100 percentage step.
func parsePull(args []string, sign float64) (Command, error) {
	p := 100.0
	switch len(args) {
	case 0:
	case 1:
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, chk.Err("pull/insert: %v", err)
		}
		p = float64(v)
	default:
		return Command{}, chk.Err("pull/insert takes at most one argument")
	}
	dp := sign * p * 0.01
	return Command{run: func(r *Reactor) error { r.MoveRod(dp); return nil }}, nil
}

// Execute runs a parsed command against r. Calling Execute on an Exit
// command is a no-op; the driver is expected to check Exit first.
func (c Command) Execute(r *Reactor) error {
	if c.Exit || c.run == nil {
		return nil
	}
	return c.run(r)
}
