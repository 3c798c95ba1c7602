// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/chk"

// cpsTable is the 17-row, 9-column symbol table, one 45°
// sector, 3-bit symbols per octal digit, MSB first.
// 0=none, 1=Manual, 2=Short, 3=Automatic, 4=Source.
var cpsTable = [17]uint32{
	0112000000, 0111110000, 0214121000, 0111111100, 0312111210,
	0111311110, 0214121412, 0131111111, 0112131211, 0131111111,
	0214121412, 0111311110, 0312111210, 0111111100, 0214121000,
	0111110000, 0112100000,
}

func cpsSymbol(row, col int) Kind {
	digit := (cpsTable[row] >> uint((8-col)*3)) & 0x7
	switch digit {
	case 1:
		return KindManual
	case 2:
		return KindShort
	case 3:
		return KindAutomatic
	case 4:
		return KindSource
	default:
		return KindNone
	}
}

// populateRods expands the CPS sector table across all four octants and
// fills the remaining interior FC_CPS columns with fuel.
func populateRods(c Constants, cols [W][W]ColumnType) (rods [W][W]Rod, err error) {
	activeHeight := c.ActiveHeight()
	place := func(x, y int, kind Kind) error {
		if rods[x][y].Kind != KindNone {
			return chk.Err("CPS expansion collision at (%d,%d): kind %v already placed, got %v", x, y, rods[x][y].Kind, kind)
		}
		rods[x][y] = newRod(c, activeHeight, kind, x, y)
		return nil
	}

	for i := 0; i <= 16; i++ {
		for j := 0; j <= 8; j++ {
			kind := cpsSymbol(i, j)
			if kind == KindNone {
				continue
			}
			x1, y1 := 11+2*i+2*j, 11+2*i-2*j
			if err := place(x1, y1, kind); err != nil {
				return rods, err
			}
			if j == 0 {
				continue
			}
			x2, y2 := 11+2*i-2*j, 11+2*i+2*j
			if err := place(x2, y2, kind); err != nil {
				return rods, err
			}
		}
	}

	for i := 4; i < W-4; i++ {
		for j := 4; j < W-4; j++ {
			if cols[i][j] != ColumnFCCPS {
				continue
			}
			if rods[i][j].Kind != KindNone {
				continue
			}
			rods[i][j] = newRod(c, activeHeight, KindFuel, i, j)
		}
	}

	return rods, nil
}
