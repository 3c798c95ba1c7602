// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry records a reactor's published telemetry over time to
// CSV and, optionally, a chart — both driver-side conveniences. The core
// persists nothing itself; only the driver, when asked, writes anything
// to disk.
package telemetry

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/gocarina/gocsv"
)

// Sample is one recorded telemetry row.
type Sample struct {
	Time       float64 `csv:"time"`
	Flux       float64 `csv:"flux"`
	Period     float64 `csv:"period"`
	RadialPeak float64 `csv:"radial_peak"`
}

// Recorder appends Samples to a CSV file, writing the header only once.
type Recorder struct {
	file          *os.File
	headerWritten bool
	samples       []Sample
}

// NewRecorder opens dir/telemetry.csv for writing. A blank dir disables
// recording: Record and Close become no-ops on the nil *Recorder.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, chk.Err("creating telemetry output directory: %v", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, chk.Err("creating telemetry.csv: %v", err)
	}
	return &Recorder{file: f}, nil
}

// Record appends one sample, recording the full in-memory history too so
// Chart can be built without re-reading the file.
func (rec *Recorder) Record(s Sample) error {
	if rec == nil {
		return nil
	}
	rec.samples = append(rec.samples, s)
	records := []Sample{s}
	if !rec.headerWritten {
		if err := gocsv.Marshal(records, rec.file); err != nil {
			return chk.Err("writing telemetry sample: %v", err)
		}
		rec.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, rec.file); err != nil {
		return chk.Err("writing telemetry sample: %v", err)
	}
	return nil
}

// Samples returns the in-memory history recorded so far.
func (rec *Recorder) Samples() []Sample {
	if rec == nil {
		return nil
	}
	return rec.samples
}

// Close flushes and closes the underlying file.
func (rec *Recorder) Close() error {
	if rec == nil || rec.file == nil {
		return nil
	}
	return rec.file.Close()
}
