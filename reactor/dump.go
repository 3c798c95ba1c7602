// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/utl"

// Dump renders the column map as an ASCII grid, one rune per column type.
// Used for debugging and the driver's -dump-layout flag; never called by
// the command surface.
func (r *Reactor) Dump() string {
	s := ""
	for i := 0; i < W; i++ {
		row := ""
		for j := 0; j < W; j++ {
			switch r.columns[i][j] {
			case ColumnFCCPS:
				row += utl.Sf("#")
			case ColumnRR:
				row += utl.Sf("o")
			case ColumnRRC:
				row += utl.Sf("c")
			default:
				row += utl.Sf(".")
			}
		}
		s += row + "\n"
	}
	return s
}
