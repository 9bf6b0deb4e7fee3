// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meter

import (
	"fmt"
	"math"
	"sort"
)

// A Ladder is an ascending list of dB thresholds that split the meter
// into len(l)+1 segments. Segment 0 lies below the first threshold.
type Ladder []float64

// DefaultLadder is the ten-segment lamp ladder of a mixer channel
// strip.
var DefaultLadder = Ladder{-43, -27, -16, -10, -6, -3, -2, -1, 0}

// NewLadder returns the ladder whose thresholds are the levels of
// d's breakpoints after the first, so every part of the division
// becomes one segment.
func NewLadder(d *Division) Ladder {
	levels := d.Levels()
	if len(levels) == 0 {
		return Ladder{}
	}
	l := Ladder(levels[1:])
	sort.Float64s(l)
	return l
}

// Segments returns the number of segments in l.
func (l Ladder) Segments() int {
	return len(l) + 1
}

// Segment returns the index of the segment db falls in, which is the
// number of thresholds at or below db. NaN is treated as silence.
func (l Ladder) Segment(db float64) int {
	if math.IsNaN(db) {
		return 0
	}
	return sort.Search(len(l), func(i int) bool {
		return db < l[i]
	})
}

// Validate checks that l is strictly ascending and finite.
func (l Ladder) Validate() error {
	for i, t := range l {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return &DomainError{Op: "ladder", Field: fmt.Sprintf("threshold %d", i), Value: t, Reason: "must be finite"}
		}
		if i > 0 && t <= l[i-1] {
			return fmt.Errorf("meter: ladder threshold %d (%v) is not above threshold %d (%v)", i, t, i-1, l[i-1])
		}
	}
	return nil
}
