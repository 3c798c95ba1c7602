// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

// stepMechanics advances every rod's axial position by dt.
// Under scram, manual and automatic rods are first retargeted to max_z and
// driven at rod_scram_speed; the unconditional advance toward target_z that
// follows finalizes the clamp and also carries any short rod that received
// a command just before the scram edge.
func (r *Reactor) stepMechanics(dt float64) {
	if r.scrammed {
		r.unselectAll()
		for i := 0; i < W; i++ {
			for j := 0; j < W; j++ {
				rod := &r.rods[i][j]
				if rod.Kind != KindManual && rod.Kind != KindAutomatic {
					continue
				}
				rod.TargetZ = rod.MaxZ
				rod.PosZ = clampF(rod.PosZ+dt*r.constants.RodScramSpeed, rod.MinZ, rod.MaxZ)
			}
		}
	}

	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			rod := &r.rods[i][j]
			if rod.Kind == KindNone || rod.Kind == KindFuel {
				continue
			}
			advance := dt * r.constants.RodInsertSpeed
			switch {
			case rod.PosZ < rod.TargetZ:
				rod.PosZ = clampF(rod.PosZ+advance, rod.MinZ, rod.TargetZ)
			case rod.PosZ > rod.TargetZ:
				rod.PosZ = clampF(rod.PosZ-advance, rod.TargetZ, rod.MaxZ)
			}
		}
	}
}
