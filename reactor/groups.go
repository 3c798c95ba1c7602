// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

// Coord is a plain (i,j) grid reference. Groups hold plain indices, never
// rod references.
type Coord struct{ I, J int }

// groups holds the seven named rod groups (concentric manual-rod rings,
// outwards to inwards). Coordinates are shifted by (+3,+3) at selection
// time to match the rod grid origin.
var groups = [][]Coord{
	{ // group 1 (outermost)
		{18, 2}, {22, 2}, {26, 2}, {30, 2}, {36, 4}, {38, 6}, {40, 8}, {42, 10}, {44, 12},
		{46, 18}, {46, 22}, {46, 26}, {46, 30}, {46, 34}, {44, 36}, {42, 38}, {40, 40}, {38, 42}, {36, 44},
		{34, 46}, {30, 46}, {26, 46}, {22, 46}, {18, 46}, {12, 44}, {10, 42}, {8, 40}, {6, 38}, {4, 36},
		{2, 30}, {2, 26}, {2, 22}, {2, 18}, {4, 12}, {6, 10}, {8, 8}, {10, 6}, {12, 4},
	},
	{ // group 2
		{16, 4}, {20, 4}, {24, 4}, {28, 4}, {32, 4},
		{34, 6}, {36, 8}, {38, 10}, {40, 12}, {42, 14}, {44, 16},
		{44, 20}, {44, 24}, {44, 28}, {44, 32},
		{42, 34}, {40, 36}, {38, 38}, {36, 40}, {34, 42}, {32, 44},
		{28, 44}, {24, 44}, {20, 44}, {16, 44},
		{14, 42}, {12, 40}, {10, 38}, {8, 36}, {6, 34}, {4, 32},
		{4, 28}, {4, 24}, {4, 20}, {4, 16},
		{6, 14}, {8, 12}, {10, 10}, {12, 8}, {14, 6},
	},
	{ // group 3
		{18, 6}, {22, 6}, {26, 6}, {30, 6},
		{34, 10}, {36, 12}, {38, 14},
		{42, 18}, {42, 22}, {42, 26}, {42, 30},
		{38, 34}, {36, 36}, {34, 38},
		{30, 42}, {26, 42}, {22, 42}, {18, 42},
		{14, 38}, {12, 36}, {10, 34},
		{6, 30}, {6, 26}, {6, 22}, {6, 18},
		{10, 14}, {12, 12}, {14, 10},
	},
	{ // group 4
		{20, 8}, {24, 8}, {28, 8},
		{30, 10}, {32, 12}, {34, 14}, {36, 16}, {38, 18},
		{40, 20}, {40, 24}, {40, 28},
		{38, 30}, {36, 32}, {34, 34}, {32, 36}, {30, 38},
		{28, 40}, {24, 40}, {20, 40},
		{18, 38}, {16, 36}, {14, 34}, {12, 32}, {10, 30},
		{8, 28}, {8, 24}, {8, 20},
		{10, 18}, {12, 16}, {14, 14}, {16, 12}, {18, 10},
		{22, 10}, {26, 10}, {38, 22}, {38, 26},
		{22, 38}, {26, 38}, {10, 22}, {10, 26},
	},
	{ // group 5
		{20, 12}, {22, 14}, {26, 14}, {28, 12},
		{30, 14}, {34, 18},
		{36, 20}, {34, 22}, {34, 26}, {36, 28},
		{34, 30}, {30, 34},
		{28, 36}, {26, 34}, {22, 34}, {20, 36},
		{18, 34}, {14, 30},
		{12, 28}, {14, 26}, {14, 22}, {12, 20},
		{14, 18}, {18, 14},
	},
	{ // group 6
		{16, 20}, {18, 18}, {20, 16},
		{28, 32}, {30, 30}, {32, 28},
		{28, 16}, {30, 18}, {32, 20},
		{16, 28}, {18, 30}, {20, 32},
		{18, 22}, {30, 22}, {18, 26}, {30, 26},
		{22, 18}, {22, 30}, {26, 18}, {26, 30},
	},
	{ // group 7 (innermost)
		{20, 20}, {22, 22}, {24, 24}, {26, 26}, {28, 28},
		{28, 20}, {26, 22}, {22, 26}, {20, 28},
	},
}

// NumGroups is the fixed number of named rod groups.
func NumGroups() int { return len(groups) }

// centerSources / outerSources are the two named monitor sets used only by
// telemetry (radial peaking) and by select_sources, given in rod-grid
// (already-shifted) coordinates.
var centerSources = []Coord{
	{27, 19}, {27, 35}, {19, 27}, {35, 27},
}

var outerSources = []Coord{
	{19, 11}, {35, 11}, {19, 43}, {35, 43},
	{11, 19}, {11, 35}, {43, 19}, {43, 35},
}
