// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "math"

// lattice size, fixed by the geometry builder
const (
	W = 56 // reactor_width
	A = 32 // axial_sections
)

// Constants holds the physical contract of the simulator (graphite/coolant/
// absorber cross sections, rod speeds, geometry). Defaults match the
// numeric contract exactly; a deployment may override any field by loading
// a Config (see config.go).
type Constants struct {
	GraphiteWidth             float64 // m
	AbsorberLength            float64 // m
	ShortAbsorberLength       float64 // m
	SourceLength              float64 // m
	RodInsertSpeed            float64 // m/s
	RodScramSpeed             float64 // m/s
	SourceStrength            float64 // flux added per sub-step to a cell the source fully overlaps
	Enrichment                float64 // dimensionless
	U235Neutrons              float64 // neutrons per fission, nu
	GraphiteAbsMCS            float64 // m-1
	B4CAbsMCS                 float64 // m-1
	U235FissionMCS            float64 // m-1
	U235AbsMCS                float64 // m-1
	U238AbsMCS                float64 // m-1
	WaterAbsMCS               float64 // m-1
	UVolume                   float64 // m3, per-cell uranium volume
	PressureTubeInnerDiameter float64 // m
	GraphiteHolesDiameter     float64 // m
	RodDiameter               float64 // m
	PromptGenTime             float64 // s, tau
	TelemetryDt               float64 // s
}

// DefaultConstants returns the reference physical constants.
func DefaultConstants() Constants {
	return Constants{
		GraphiteWidth:             0.25,
		AbsorberLength:            5.12,
		ShortAbsorberLength:       3.05,
		SourceLength:              7,
		RodInsertSpeed:            0.4,
		RodScramSpeed:             0.4,
		SourceStrength:            1e-10,
		Enrichment:                2e-2,
		U235Neutrons:              2.43,
		GraphiteAbsMCS:            2.26e-2,
		B4CAbsMCS:                 8.43e3,
		U235FissionMCS:            1.425e3,
		U235AbsMCS:                2.421e2,
		U238AbsMCS:                4.89,
		WaterAbsMCS:               1.338,
		UVolume:                   3.734e-4,
		PressureTubeInnerDiameter: 0.08,
		GraphiteHolesDiameter:     0.114,
		RodDiameter:               0.06,
		PromptGenTime:             0.002,
		TelemetryDt:               0.5,
	}
}

// ActiveHeight returns the reactor's active axial height (= A * graphite_width).
func (c Constants) ActiveHeight() float64 {
	return float64(A) * c.GraphiteWidth
}

// derived per-cell material volumes
func (c Constants) rrGraphiteVolume() float64 {
	return c.GraphiteWidth * c.GraphiteWidth * c.GraphiteWidth
}

func (c Constants) rrcCoolantVolume() float64 {
	return c.GraphiteWidth * math.Pi * c.PressureTubeInnerDiameter * c.PressureTubeInnerDiameter / 4
}

func (c Constants) graphiteVolume() float64 {
	return (c.GraphiteWidth*c.GraphiteWidth - math.Pi*c.GraphiteHolesDiameter*c.GraphiteHolesDiameter/4) * c.GraphiteWidth
}

func (c Constants) b4cVolume() float64 {
	return c.GraphiteWidth * math.Pi * c.RodDiameter * c.RodDiameter / 4
}

func (c Constants) coolantVolume() float64 {
	return c.GraphiteWidth * math.Pi * (c.PressureTubeInnerDiameter*c.PressureTubeInnerDiameter - c.RodDiameter*c.RodDiameter) / 4
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
