// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/fun"

// newSourceStrength builds the source-strength function used by the
// reaction sub-step. It is always a constant fun.Cte: equal to fallback
// (Constants.SourceStrength), or to the value of a fun.Prm named "C" when
// prms holds one. NewFromConfig passes no prms, so a Config sets only the
// constant.
func newSourceStrength(prms fun.Prms, fallback float64) fun.Func {
	if len(prms) == 0 {
		return &fun.Cte{C: fallback}
	}
	c := fallback
	for _, p := range prms {
		if p.N == "C" {
			c = p.V
		}
	}
	return &fun.Cte{C: c}
}
