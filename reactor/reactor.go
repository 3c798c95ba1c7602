// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reactor implements the RBMK-style channel reactor core: lattice
// geometry, rod population and selection, the mechanics and neutron
// diffusion solvers, telemetry, and the small command grammar the core
// answers to. The package owns no goroutines and does no I/O; a single
// caller drives it tick by tick (see cmd/rbmksim).
package reactor

import "github.com/cpmech/gosl/fun"

// Reactor is the single owning value of the whole simulator:
// column map, rod grid, flux buffers and telemetry scalars live here and
// nowhere else.
type Reactor struct {
	constants Constants
	columns   [W][W]ColumnType
	rods      [W][W]Rod

	flux FluxField
	post FluxField

	sourceStrength fun.Func

	scrammed bool

	totalFlux     float64
	previousFlux  float64
	period        float64
	radialPeak    float64
	telemetryTime float64

	simTime float64
}

// New constructs a Reactor with default physical constants.
func New() (*Reactor, error) {
	return NewWithConstants(DefaultConstants(), nil)
}

// NewWithConstants constructs a Reactor with the given constants and an
// optional source-strength fun.Prms override (nil uses the constant
// SourceStrength). CPS table index collisions abort construction.
func NewWithConstants(c Constants, sourcePrms fun.Prms) (*Reactor, error) {
	cols := BuildColumns()
	rods, err := populateRods(c, cols)
	if err != nil {
		return nil, err
	}
	return &Reactor{
		constants:      c,
		columns:        cols,
		rods:           rods,
		flux:           newFluxField(),
		post:           newFluxField(),
		sourceStrength: newSourceStrength(sourcePrms, c.SourceStrength),
	}, nil
}

// Step advances the reactor by dt seconds: scram handling, mechanics,
// N sub-stepped reaction/diffusion iterations, then telemetry.
func (r *Reactor) Step(dt float64) {
	r.stepMechanics(dt)

	n := int(dt / r.constants.PromptGenTime)
	for s := 0; s < n; s++ {
		r.simTime += r.constants.PromptGenTime
		r.stepReaction(r.simTime)
		r.stepDiffusion()
	}

	r.stepTelemetry(dt)
}

// Scram trips the reactor. Selection is cleared and Manual/Automatic
// rods start driving toward max_z on the next Step call, not immediately
// a command accepted before a step is observed by that step's mechanics.
func (r *Reactor) Scram() {
	r.scrammed = true
}

// ScramReset clears the scram condition, allowing mechanics and selection
// to resume normal operation.
func (r *Reactor) ScramReset() {
	r.scrammed = false
}

// Scrammed reports whether the reactor is currently tripped.
func (r *Reactor) Scrammed() bool { return r.scrammed }

// NeutronFlux returns the last published total_flux.
func (r *Reactor) NeutronFlux() float64 { return r.totalFlux }

// Period returns the last published reactor period.
func (r *Reactor) Period() float64 { return r.period }

// RadialPeak returns the last published radial peaking factor.
func (r *Reactor) RadialPeak() float64 { return r.radialPeak }

// Rods returns a copy of the rod grid for rendering.
func (r *Reactor) Rods() [W][W]Rod { return r.rods }

// Columns returns the immutable column map.
func (r *Reactor) Columns() [W][W]ColumnType { return r.columns }

// Constants returns the constants this reactor was built with.
func (r *Reactor) Constants() Constants { return r.constants }

// Flux returns a snapshot copy of the current flux field (supplement
// beyond the three published telemetry scalars, for a driver that wants
// to inspect more of the field).
func (r *Reactor) Flux() FluxField { return r.flux.clone() }
