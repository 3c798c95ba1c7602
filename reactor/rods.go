// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

// Kind is the tag distinguishing rod behavior: a single record carrying
// a tagged kind, rather than a subclass hierarchy.
type Kind int

const (
	KindNone Kind = iota
	KindManual
	KindShort
	KindAutomatic
	KindSource
	KindFuel
)

func (k Kind) String() string {
	switch k {
	case KindManual:
		return "manual"
	case KindShort:
		return "short"
	case KindAutomatic:
		return "automatic"
	case KindSource:
		return "source"
	case KindFuel:
		return "fuel"
	default:
		return "none"
	}
}

// Rod is the per-cell state of one lattice column. At most one rod exists per
// grid cell; a cell with no rod carries Kind == KindNone and zeroed limits.
type Rod struct {
	X, Y      int
	Kind      Kind
	MinZ      float64
	MaxZ      float64
	PosZ      float64
	TargetZ   float64
	Direction bool // true: enters from above; false: enters from below
	Selected  bool
}

// newRod builds a rod of the given kind at (x,y), applying the per-kind
// limits table below. target_z = pos_z at construction.
func newRod(c Constants, activeHeight float64, kind Kind, x, y int) Rod {
	r := Rod{X: x, Y: y, Kind: kind}
	switch kind {
	case KindManual, KindAutomatic:
		r.MinZ = -c.AbsorberLength + 0.5
		r.MaxZ = 0.5
		r.Direction = true
		r.PosZ = r.MaxZ // starts at max_z, the absorber spanning [0.5, 0.5+absorber_length] inside the core
	case KindShort:
		r.MinZ = activeHeight - c.ShortAbsorberLength - 0.5
		r.MaxZ = activeHeight - 0.5
		r.Direction = false
		r.PosZ = r.MinZ
	case KindSource:
		r.MinZ = -7
		r.MaxZ = 0.5
		r.Direction = true
		r.PosZ = r.MinZ
	case KindFuel:
		r.MinZ = 0
		r.MaxZ = 0
		r.Direction = true
		r.PosZ = 0
	default:
		return r
	}
	r.TargetZ = r.PosZ
	return r
}

// selectable reports whether the rod's kind may be the target of select_rod
// / select_all: Manual or Short only.
func (r Rod) selectable() bool {
	return r.Kind == KindManual || r.Kind == KindShort
}
