// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"github.com/cpmech/gosl/plt"
)

// Chart writes a three-panel PNG of flux/period/radial_peak history to
// dir/telemetry.png. Opt-in only (driver's -plot-dir flag); never called
// from the reactor core.
func Chart(samples []Sample, dir string) error {
	if dir == "" || len(samples) == 0 {
		return nil
	}
	t := make([]float64, len(samples))
	flux := make([]float64, len(samples))
	period := make([]float64, len(samples))
	peak := make([]float64, len(samples))
	for i, s := range samples {
		t[i], flux[i], period[i], peak[i] = s.Time, s.Flux, s.Period, s.RadialPeak
	}

	plt.Reset()
	plt.Subplot(3, 1, 1)
	plt.Plot(t, flux, "clip_on=0")
	plt.Gll("$t$", "$\\phi_{total}$", "")

	plt.Subplot(3, 1, 2)
	plt.Plot(t, period, "clip_on=0")
	plt.Cross()
	plt.Gll("$t$", "period", "")

	plt.Subplot(3, 1, 3)
	plt.Plot(t, peak, "clip_on=0")
	plt.Gll("$t$", "radial peak", "")

	plt.SaveD(dir, "telemetry.png")
	return nil
}
