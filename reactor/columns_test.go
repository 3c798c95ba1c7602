// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"testing"

	"github.com/cpmech/gosl/utl"
)

func Test_columns01(tst *testing.T) {
	utl.TTitle("columns01: symmetric and reproducible")

	a := BuildColumns()
	b := BuildColumns()
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			if a[i][j] != b[i][j] {
				tst.Fatalf("column map is not reproducible at (%d,%d)", i, j)
			}
		}
	}

	// four-fold mirror about the geometric center
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			mi, mj := W-1-i, W-1-j
			if a[i][j] != a[mi][j] || a[i][j] != a[i][mj] || a[i][j] != a[mi][mj] {
				tst.Fatalf("column map is not four-fold symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func Test_columns02(tst *testing.T) {
	utl.TTitle("columns02: interior is FC_CPS, far corners are None")

	cols := BuildColumns()
	if cols[27][27] != ColumnFCCPS {
		tst.Fatalf("center must be FC_CPS, got %v", cols[27][27])
	}
	if cols[0][0] != ColumnNone {
		tst.Fatalf("far corner must be None, got %v", cols[0][0])
	}
}

func Test_columns03(tst *testing.T) {
	utl.TTitle("columns03: bit-exact counts from the annulus table")

	cols := BuildColumns()
	var nFCCPS, nRR, nRRC, nNone int
	for i := 0; i < W; i++ {
		for j := 0; j < W; j++ {
			switch cols[i][j] {
			case ColumnFCCPS:
				nFCCPS++
			case ColumnRR:
				nRR++
			case ColumnRRC:
				nRRC++
			default:
				nNone++
			}
		}
	}
	if nFCCPS+nRR+nRRC+nNone != W*W {
		tst.Fatalf("column counts do not sum to W*W: %d", nFCCPS+nRR+nRRC+nNone)
	}
	if nFCCPS == 0 || nRR == 0 || nRRC == 0 {
		tst.Fatalf("expected all three material column types present, got FC_CPS=%d RR=%d RRC=%d", nFCCPS, nRR, nRRC)
	}
	if nFCCPS != 1884 || nRR != 448 || nRRC != 156 || nNone != 648 {
		tst.Fatalf("expected FC_CPS=1884 RR=448 RRC=156 None=648, got FC_CPS=%d RR=%d RRC=%d None=%d", nFCCPS, nRR, nRRC, nNone)
	}
}
