// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/la"

// FluxField is the flattened neutron flux grid φ[W][W][A], laid out
// row-major (i outermost, then j, then k) so a single contiguous slice
// backs it instead of a W×W×A array of arrays.
type FluxField []float64

func newFluxField() FluxField {
	f := make(FluxField, W*W*A)
	la.VecFill(f, 0)
	return f
}

func idx(i, j, k int) int {
	return (i*W+j)*A + k
}

func (f FluxField) at(i, j, k int) float64 {
	return f[idx(i, j, k)]
}

func (f FluxField) set(i, j, k int, v float64) {
	f[idx(i, j, k)] = v
}

// clone returns an independent copy of f, used when a caller wants a
// snapshot of the flux field without racing the next Step.
func (f FluxField) clone() FluxField {
	g := make(FluxField, len(f))
	la.VecCopy(g, 1, f)
	return g
}

// norm is the L2 norm of the field, a diagnostic supplement.
func (f FluxField) norm() float64 {
	return la.VecNorm(f)
}

// peak returns the largest flux value relative to den (den == 0 returns 0),
// a diagnostic supplement.
func (f FluxField) peak(den float64) float64 {
	if den == 0 {
		return 0
	}
	return la.VecLargest(f, den)
}
