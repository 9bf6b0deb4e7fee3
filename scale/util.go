// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
)

// maxParts is the most parts partsAtLevel returns. Levels below -15
// all divide the range this finely.
const maxParts = 1000000

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}

// rangeSign returns the sign shared by the bounds of a meter range.
// Meter ranges sit on one side of 0, so the sign of whichever bound
// is non-zero wins. A range of [0, 0] is treated as positive.
func rangeSign(min, max float64) float64 {
	if s := mathx.Sign(min); s != 0 {
		return s
	}
	if s := mathx.Sign(max); s != 0 {
		return s
	}
	return 1
}

// partsAtLevel returns the number of equal parts the warped output
// range is divided into at the given tick level. Level 0 is 10 parts
// and levels step through 1-2-5 multiples, so level -1 is 20 parts
// and level 1 is 5 parts. Every level at or above 3 is a single part
// and every level at or below -15 is maxParts.
func partsAtLevel(level int) int {
	k := 3 - level
	if k <= 0 {
		return 1
	}
	if k > 18 {
		return maxParts
	}
	parts := [...]int{1, 2, 5}[k%3]
	for i := 0; i < k/3; i++ {
		parts *= 10
	}
	return parts
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
