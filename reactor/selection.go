// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/chk"

// resetTargets clears every non-Automatic rod's target_z to its current
// pos_z.
func (r *Reactor) resetTargets() {
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			rod := &r.rods[i][j]
			rod.Selected = false
			if rod.Kind != KindAutomatic {
				rod.TargetZ = rod.PosZ
			}
		}
	}
}

// unselectAll clears the selection and resets targets.
func (r *Reactor) unselectAll() {
	r.resetTargets()
}

// SelectRod selects the single rod at (x,y) if it is Manual or Short.
// While scrammed the call is accepted as a no-op with no side effect at
// all — not even a selection reset — returning true immediately before
// the bounds check. Once past the bounds check, an accepted-or-rejected-
// by-kind call always clears selection first, so a wrong-kind target
// still clears an existing selection.
func (r *Reactor) SelectRod(x, y int) bool {
	if r.scrammed {
		return true
	}
	if x < 0 || x >= W || y < 0 || y >= W {
		return false
	}
	r.resetTargets()
	rod := r.rods[x][y]
	if !rod.selectable() {
		return false
	}
	rod.TargetZ = rod.PosZ
	rod.Selected = true
	r.rods[x][y] = rod
	return true
}

// SelectAll selects every Manual and Short rod; no-op while scrammed, with
// no side effect at all.
func (r *Reactor) SelectAll() {
	if r.scrammed {
		return
	}
	r.resetTargets()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if r.rods[i][j].selectable() {
				r.rods[i][j].Selected = true
			}
		}
	}
}

// SelectGroup selects all rods listed in the 1-based group g, shifted by
// (+3,+3) to match the rod grid origin. Out-of-range g is rejected; a
// scrammed reactor no-ops with no side effect.
func (r *Reactor) SelectGroup(g int) error {
	if r.scrammed {
		return nil
	}
	if g < 1 || g > NumGroups() {
		return chk.Err("group %d out of range [1,%d]", g, NumGroups())
	}
	r.resetTargets()
	for _, c := range groups[g-1] {
		x, y := c.I+3, c.J+3
		if x < 0 || x >= W || y < 0 || y >= W {
			continue
		}
		r.rods[x][y].Selected = true
	}
	return nil
}

// SelectSources selects the union of center_sources and outer_sources;
// no-op while scrammed, with no side effect at all.
func (r *Reactor) SelectSources() {
	if r.scrammed {
		return
	}
	r.resetTargets()
	for _, c := range centerSources {
		r.rods[c.I][c.J].Selected = true
	}
	for _, c := range outerSources {
		r.rods[c.I][c.J].Selected = true
	}
}

// MoveRod sets target_z := clamp(pos_z + sign(direction)*dp, min_z, max_z)
// for every selected rod. dp == 0 stops all selected rods.
func (r *Reactor) MoveRod(dp float64) {
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			rod := &r.rods[i][j]
			if !rod.Selected {
				continue
			}
			sign := -1.0
			if rod.Direction {
				sign = 1.0
			}
			rod.TargetZ = clampF(rod.PosZ+sign*dp, rod.MinZ, rod.MaxZ)
		}
	}
}

// SelectedRod returns the (x,y) of the single currently selected rod, or
// (-1,-1) if none or more than one is selected.
func (r *Reactor) SelectedRod() (int, int) {
	x, y, count := -1, -1, 0
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if r.rods[i][j].Selected {
				x, y = i, j
				count++
			}
		}
	}
	if count != 1 {
		return -1, -1
	}
	return x, y
}
