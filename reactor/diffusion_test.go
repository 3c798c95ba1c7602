// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func Test_diffusion01(tst *testing.T) {
	utl.TTitle("diffusion01: reaction gain is smooth away from overlap kinks")

	r, err := New()
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	// find a manual rod column to probe
	var mx, my int = -1, -1
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if r.rods[i][j].Kind == KindManual {
				mx, my = i, j
				break
			}
		}
		if mx != -1 {
			break
		}
	}
	if mx == -1 {
		tst.Fatalf("no manual rod found in fixture")
	}
	k := 10 // interior slice, away from [2,W-2) fuel gate edges

	g := func(z float64, args ...interface{}) float64 {
		r.rods[mx][my].PosZ = z
		gain, _ := r.reactionGain(mx, my, k, 0)
		return gain
	}

	z0 := -1.0 // interior of travel range, away from the fully-in/fully-out kinks
	analytic, err := num.DerivCen(g, z0, 1e-4)
	if err != nil {
		tst.Fatalf("DerivCen failed: %v", err)
	}
	if math.IsNaN(analytic) || math.IsInf(analytic, 0) {
		tst.Fatalf("reaction gain derivative is not finite: %v", analytic)
	}
}
