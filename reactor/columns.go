// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "math"

// ColumnType is the material of a lattice column.
type ColumnType int

const (
	ColumnNone  ColumnType = iota // no material, passive leakage region
	ColumnRRC                     // reflector coolant channel
	ColumnRR                      // reflector (graphite) column
	ColumnFCCPS                   // fuel channel / control-and-protection-system channel
)

// annulusTable is the packed quadrant-symmetric column table:
// 11 rows of two 32-bit words, 2-bit symbols per cell, MSB-first.
// 0=None, 1=RRC, 2=RR, 3=FC_CPS.
var annulusTable = [22]uint32{
	0xFFFFFFFF, 0xEA000000,
	0xFFFFFFFF, 0xAA000000,
	0xFFFFFFFE, 0xA9000000,
	0xFFFFFFFA, 0xA4000000,
	0xFFFFFFAA, 0x90000000,
	0xFFFFFAAA, 0x40000000,
	0xFFFEAAA5, 0x00000000,
	0xAAAAAA50, 0x00000000,
	0xAAAAA500, 0x00000000,
	0xAA955000, 0x00000000,
	0x55400000, 0x00000000,
}

// BuildColumns computes the fixed WxW column map.
// It is total and pure: the map is immutable thereafter (invariant 4).
func BuildColumns() [W][W]ColumnType {
	var cols [W][W]ColumnType
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			i0 := int(math.Floor(math.Abs(float64(i) - float64(W)/2 + 0.5)))
			j0 := int(math.Floor(math.Abs(float64(j) - float64(W)/2 + 0.5)))
			switch {
			case i0 <= 16 && j0 <= 16:
				cols[i][j] = ColumnFCCPS
			case i0 > 19 && j0 > 19:
				cols[i][j] = ColumnNone
			default:
				i1, j1 := i0, j0
				if i1 > j1 {
					i1, j1 = j1, i1
				}
				cell := annulusTable[(j1-17)*2+i1/16]
				val := (cell >> uint((15-(i1%16))*2)) & 0x3
				cols[i][j] = ColumnType(val)
			}
		}
	}
	return cols
}
