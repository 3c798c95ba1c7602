// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "math"

// overlap returns the length of the intersection of [a,b] and [c,d], or 0
// if they do not intersect.
func overlap(a, b, c, d float64) float64 {
	lo := math.Max(a, c)
	hi := math.Min(b, d)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// reactionGain returns the dimensionless per-cell gain g and the additive
// constant source term for cell (i,j,k), given the rod occupying the
// column (if any). simTime is the function-argument clock passed to the
// source-strength fun.Func.
func (r *Reactor) reactionGain(i, j, k int, simTime float64) (g, source float64) {
	col := r.columns[i][j]
	z0 := float64(k) * r.constants.GraphiteWidth
	w := r.constants.GraphiteWidth
	c := r.constants

	switch col {
	case ColumnRR:
		g -= c.rrGraphiteVolume() * c.GraphiteAbsMCS
		return g, 0

	case ColumnRRC:
		g -= c.graphiteVolume()*c.GraphiteAbsMCS + c.rrcCoolantVolume()*c.WaterAbsMCS
		return g, 0

	case ColumnFCCPS:
		rod := r.rods[i][j]
		switch rod.Kind {
		case KindSource:
			strength := r.sourceStrength.F(simTime, nil)
			ov := overlap(rod.PosZ, rod.PosZ+c.SourceLength, z0, z0+w)
			source = ov / w * strength
		case KindManual, KindAutomatic, KindShort:
			length := c.AbsorberLength
			if rod.Kind == KindShort {
				length = c.ShortAbsorberLength
			}
			f := overlap(rod.PosZ, rod.PosZ+length, z0, z0+w) / w
			g -= f*c.b4cVolume()*c.B4CAbsMCS + (1-f)*c.b4cVolume()*c.WaterAbsMCS
		case KindFuel:
			if k >= 2 && k < W-2 {
				g += c.UVolume * (c.Enrichment*c.U235FissionMCS*(c.U235Neutrons-1) -
					c.Enrichment*c.U235AbsMCS - (1-c.Enrichment)*c.U238AbsMCS)
			}
		}
		g -= c.coolantVolume()*c.WaterAbsMCS + c.graphiteVolume()*c.GraphiteAbsMCS
		return g, source

	default: // ColumnNone: passive leakage, no reaction term
		return 0, 0
	}
}

// stepReaction computes post = flux .* (1 + max(g,-1)) + source for every
// cell, reading flux and writing post.
func (r *Reactor) stepReaction(simTime float64) {
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			for k := 0; k < A; k++ {
				g, source := r.reactionGain(i, j, k, simTime)
				if g < -1 {
					g = -1
				}
				v := r.flux.at(i, j, k)*(1+g) + source
				r.post.set(i, j, k, v)
			}
		}
	}
}

// stepDiffusion applies the 6-neighbor Dirichlet-boundary diffusion
// kernel, reading post and writing flux.
func (r *Reactor) stepDiffusion() {
	const alpha = 1.0 / 9.0
	const beta = (1 - alpha) / 6

	neighbor := func(i, j, k int) float64 {
		if i < 0 || i >= W || j < 0 || j >= W || k < 0 || k >= A {
			return 0
		}
		return r.post.at(i, j, k)
	}

	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			for k := 0; k < A; k++ {
				sum := neighbor(i-1, j, k) + neighbor(i+1, j, k) +
					neighbor(i, j-1, k) + neighbor(i, j+1, k) +
					neighbor(i, j, k-1) + neighbor(i, j, k+1)
				v := alpha*r.post.at(i, j, k) + beta*sum
				r.flux.set(i, j, k, v)
			}
		}
	}
}
