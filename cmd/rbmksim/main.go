// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rbmksim drives a reactor.Reactor at a fixed real-time cadence,
// feeding it command-surface lines from an optional scenario script and
// then from stdin, echoing rejected commands and optionally recording
// telemetry history. This is a minimal textual driver exercising the
// core end to end; a graphical dashboard is left to other tooling.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/salel/rbmkgo/reactor"
	"github.com/salel/rbmkgo/telemetry"
)

func main() {
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				io.Pfred("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	configPath := flag.String("config", "", "optional YAML config overriding the numeric contract")
	scriptPath := flag.String("script", "", "optional newline-separated command-surface script run before interactive mode")
	outDir := flag.String("out", "", "optional directory to record telemetry.csv")
	plotDir := flag.String("plot-dir", "", "optional directory to save a telemetry.png chart on exit")
	dumpLayout := flag.Bool("dump-layout", false, "print the column map and exit")
	dt := flag.Float64("dt", 0.025, "real-time step in seconds")
	flag.Parse()

	io.Pfcyan("\nrbmksim -- RBMK channel reactor simulator\n\n")

	cfg, err := reactor.LoadConfig(*configPath)
	if err != nil {
		io.Pfred("loading config: %v\n", err)
		os.Exit(1)
	}

	r, err := reactor.NewFromConfig(cfg)
	if err != nil {
		io.Pfred("constructing reactor: %v\n", err)
		os.Exit(1)
	}

	if *dumpLayout {
		fmt.Print(r.Dump())
		return
	}

	rec, err := telemetry.NewRecorder(*outDir)
	if err != nil {
		io.Pfred("opening telemetry recorder: %v\n", err)
		os.Exit(1)
	}
	defer rec.Close()

	if *scriptPath != "" {
		runScript(r, *scriptPath)
	}

	simTime := 0.0
	var history []telemetry.Sample
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	ticker := time.NewTicker(time.Duration(*dt * float64(time.Second)))
	defer ticker.Stop()

loop:
	for range ticker.C {
		select {
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if !runLine(r, line) {
				break loop
			}
		default:
		}

		r.Step(*dt)
		simTime += *dt

		sample := telemetry.Sample{
			Time:       simTime,
			Flux:       r.NeutronFlux(),
			Period:     r.Period(),
			RadialPeak: r.RadialPeak(),
		}
		history = append(history, sample)
		if err := rec.Record(sample); err != nil {
			io.Pfred("recording telemetry: %v\n", err)
		}
	}

	if err := telemetry.Chart(history, *plotDir); err != nil {
		io.Pfred("saving chart: %v\n", err)
	}
}

// runScript feeds each non-empty line of path through runLine before
// interactive mode begins.
func runScript(r *reactor.Reactor, path string) {
	f, err := os.Open(path)
	if err != nil {
		io.Pfred("opening script %q: %v\n", path, err)
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		runLine(r, line)
	}
}

// runLine parses and executes one command-surface line, echoing errors in
// red. Returns false if the line requests process exit.
func runLine(r *reactor.Reactor, line string) bool {
	cmd, err := reactor.ParseCommand(line)
	if err != nil {
		io.Pfred("command error: %v\n", err)
		return true
	}
	if cmd.Exit {
		return false
	}
	if err := cmd.Execute(r); err != nil {
		io.Pfred("command rejected: %v\n", err)
		return true
	}
	io.Pfgreen("ok: %s\n", utl.Sf("%s", line))
	return true
}
