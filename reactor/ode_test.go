// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"
)

// Test_ode01 cross-checks the telemetry period against the analytic
// point-kinetics ODE dn/dt = n/period integrated with ode.ODE: starting
// from an arbitrary n0 and a fixed period, the closed-form solution
// n(t) = n0*exp(t/period) must match the numerically integrated one.
func Test_ode01(tst *testing.T) {
	utl.TTitle("ode01: point-kinetics cross-check of the period definition")

	const period = 7.5
	const n0 = 1.0

	fcn := func(f []float64, t float64, y []float64, args ...interface{}) error {
		f[0] = y[0] / period
		return nil
	}
	jac := func(dfdy *la.Triplet, t float64, y []float64, args ...interface{}) error {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		dfdy.Start()
		dfdy.Put(0, 0, 1/period)
		return nil
	}

	var odesol ode.ODE
	odesol.Init("Radau5", 1, fcn, jac, nil, nil, true)
	odesol.SetTol(1e-10, 1e-8)

	y := []float64{n0}
	tEnd := 2.0
	if err := odesol.Solve(y, 0, tEnd, tEnd, false); err != nil {
		tst.Fatalf("ode solve failed: %v", err)
	}

	analytic := n0 * math.Exp(tEnd/period)
	utl.CheckScalar(tst, "point-kinetics n(t)", 1e-6, y[0], analytic)

	// recover period from two samples the way stepTelemetry does
	n1 := n0
	n2 := y[0]
	recovered := 1 / math.Log(math.Pow(n2/n1, 1/tEnd))
	utl.CheckScalar(tst, "recovered period", 1e-6, recovered, period)
}
