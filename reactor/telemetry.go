// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "math"

// stepTelemetry accumulates telemetry_time by dt and, once it reaches
// telemetry_dt, refreshes total_flux, radial_peak and period. Between
// refreshes the previously published values remain observable.
func (r *Reactor) stepTelemetry(dt float64) {
	r.telemetryTime += dt
	if r.telemetryTime < r.constants.TelemetryDt {
		return
	}

	var total float64
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if r.columns[i][j] != ColumnFCCPS {
				continue
			}
			for k := 0; k < A; k++ {
				total += r.flux.at(i, j, k)
			}
		}
	}
	r.totalFlux = total

	var centerSum, outerSum float64
	for _, c := range centerSources {
		for k := 0; k < A; k++ {
			centerSum += r.flux.at(c.I, c.J, k)
		}
	}
	for _, c := range outerSources {
		for k := 0; k < A; k++ {
			outerSum += r.flux.at(c.I, c.J, k)
		}
	}
	if outerSum != 0 && centerSum != 0 {
		r.radialPeak = (float64(len(outerSources)) * centerSum) / (float64(len(centerSources)) * outerSum)
	} else {
		r.radialPeak = 0
	}

	if r.previousFlux == 0 {
		r.period = 0
	} else {
		ratio := r.totalFlux / r.previousFlux
		if ratio <= 0 {
			r.period = 0
		} else {
			rate := math.Log(math.Pow(ratio, 1/r.telemetryTime))
			if rate == 0 {
				r.period = 0
			} else {
				r.period = 1 / rate
			}
		}
	}

	r.previousFlux = r.totalFlux
	r.telemetryTime = 0
}
