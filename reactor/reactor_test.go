// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"testing"

	"github.com/cpmech/gosl/utl"
)

func checkRodBounds(tst *testing.T, r *Reactor) {
	rods := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			rod := rods[i][j]
			if rod.Kind == KindNone {
				continue
			}
			if rod.PosZ < rod.MinZ-1e-9 || rod.PosZ > rod.MaxZ+1e-9 {
				tst.Fatalf("rod (%d,%d) pos_z=%v out of [%v,%v]", i, j, rod.PosZ, rod.MinZ, rod.MaxZ)
			}
			if rod.TargetZ < rod.MinZ-1e-9 || rod.TargetZ > rod.MaxZ+1e-9 {
				tst.Fatalf("rod (%d,%d) target_z=%v out of [%v,%v]", i, j, rod.TargetZ, rod.MinZ, rod.MaxZ)
			}
		}
	}
}

func Test_reactor01(tst *testing.T) {
	utl.TTitle("reactor01: S1 cold start")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	utl.CheckScalar(tst, "neutron_flux", 1e-15, r.NeutronFlux(), 0)
	utl.CheckScalar(tst, "period", 1e-15, r.Period(), 0)
	utl.CheckScalar(tst, "radial_peak", 1e-15, r.RadialPeak(), 0)
}

func Test_reactor02(tst *testing.T) {
	utl.TTitle("reactor02: rod bounds invariant across many steps")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectSources()
	r.MoveRod(-1)
	for n := 0; n < 200; n++ {
		r.Step(0.025)
		checkRodBounds(tst, r)
	}
}

func Test_reactor03(tst *testing.T) {
	utl.TTitle("reactor03: S3 scram timing")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.Scram()
	r.Step(12.8)

	rods := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			rod := rods[i][j]
			if rod.Kind != KindManual {
				continue
			}
			utl.CheckScalar(tst, "manual.pos_z after scram", 1e-9, rod.PosZ, rod.MaxZ)
		}
	}
	if x, y := r.SelectedRod(); x != -1 || y != -1 {
		tst.Fatalf("expected empty selection after scram, got (%d,%d)", x, y)
	}
}

func Test_reactor04(tst *testing.T) {
	utl.TTitle("reactor04: all rods fully inserted, zero flux stays zero")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectAll()
	r.MoveRod(1000) // drive every selected rod to its fully inserted limit (max_z for manual, min_z for short: the sign flips per direction)
	for n := 0; n < 50; n++ {
		r.Step(0.025)
	}
	utl.CheckScalar(tst, "total_flux stays zero", 1e-15, r.NeutronFlux(), 0)
}

func Test_reactor05(tst *testing.T) {
	utl.TTitle("reactor05: select_group idempotence")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := r.SelectGroup(1); err != nil {
		tst.Fatalf("select_group(1) failed: %v", err)
	}
	first := r.Rods()
	if err := r.SelectGroup(1); err != nil {
		tst.Fatalf("select_group(1) failed: %v", err)
	}
	second := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if first[i][j].Selected != second[i][j].Selected {
				tst.Fatalf("select_group(1) is not idempotent at (%d,%d)", i, j)
			}
		}
	}
}

func Test_reactor06(tst *testing.T) {
	utl.TTitle("reactor06: move_rod(+d); move_rod(-d) restores target_z")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectAll()
	before := r.Rods()

	r.MoveRod(0.3)
	r.MoveRod(-0.3)

	after := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if !before[i][j].Selected {
				continue
			}
			utl.CheckScalar(tst, "target_z round-trip", 1e-9, after[i][j].TargetZ, before[i][j].TargetZ)
		}
	}
}

func Test_reactor07(tst *testing.T) {
	utl.TTitle("reactor07: S5 invalid select does not clear existing selection")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectAll()
	before := r.Rods()

	if r.SelectRod(999, 999) {
		tst.Fatalf("select_rod(999,999) must be rejected")
	}

	after := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if before[i][j].Selected != after[i][j].Selected {
				tst.Fatalf("rejected select_rod must not change selection at (%d,%d)", i, j)
			}
		}
	}
}

func Test_reactor08(tst *testing.T) {
	utl.TTitle("reactor08: out-of-range group is rejected")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := r.SelectGroup(0); err == nil {
		tst.Fatalf("select_group(0) must be rejected")
	}
	if err := r.SelectGroup(NumGroups() + 1); err == nil {
		tst.Fatalf("select_group(NumGroups+1) must be rejected")
	}
}

func Test_reactor09(tst *testing.T) {
	utl.TTitle("reactor09: scram while selected clears selection and resets non-automatic targets")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectAll()
	r.MoveRod(-1)
	r.Scram()
	r.Step(0.025)

	if x, y := r.SelectedRod(); x != -1 || y != -1 {
		tst.Fatalf("expected empty selection after the step following scram, got (%d,%d)", x, y)
	}
	rods := r.Rods()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if rods[i][j].Kind != KindShort {
				continue
			}
			utl.CheckScalar(tst, "short.target_z reset to pos_z", 1e-9, rods[i][j].TargetZ, rods[i][j].PosZ)
		}
	}
}

func Test_reactor10(tst *testing.T) {
	utl.TTitle("reactor10: S2 source insertion grows total flux")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	r.SelectSources()
	r.MoveRod(100 * 0.01) // insert 100

	var prev float64
	increased := false
	for n := 0; n < int(20/0.025); n++ {
		r.Step(0.025)
		if r.NeutronFlux() > prev {
			increased = true
		}
		prev = r.NeutronFlux()
	}
	if !increased {
		tst.Fatalf("expected neutron flux to increase after source insertion")
	}
}
