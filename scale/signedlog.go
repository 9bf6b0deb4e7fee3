// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// SignedLog is a logarithmic scale that is defined on both sides of
// 0. Each input x is first mapped to sign(x)*log10(|x|+1), which is
// linear near 0 and logarithmic for large magnitudes, and the result
// is then mapped linearly onto [0, 1].
type SignedLog struct {
	Min, Max float64
	Clamp    bool
}

// *SignedLog is a Quantitative scale.
var _ mscale.Quantitative = &SignedLog{}

func sigLog(x float64) float64 {
	return math.Log10(math.Abs(x)+1) * mathx.Sign(x)
}

func sigExp(x float64) float64 {
	return (math.Pow(10, math.Abs(x)) - 1) * mathx.Sign(x)
}

func (s SignedLog) Map(x float64) float64 {
	lo, hi := sigLog(s.Min), sigLog(s.Max)
	if lo == hi {
		return 0.5
	}
	y := (sigLog(x) - lo) / (hi - lo)
	if s.Clamp {
		y = clamp(y)
	}
	return y
}

func (s SignedLog) Unmap(y float64) float64 {
	lo, hi := sigLog(s.Min), sigLog(s.Max)
	return sigExp(y*(hi-lo) + lo)
}

func (s *SignedLog) SetClamp(clamp bool) {
	s.Clamp = clamp
}

// CountTicks returns the number of ticks at level before rounding.
// Rounding can collapse neighboring ticks, so this is an upper bound
// on len(TicksAtLevel(level)).
func (s SignedLog) CountTicks(level int) int {
	return partsAtLevel(level) + 1
}

// TicksAtLevel returns ticks evenly spaced in the output range and
// rounded with Prettify. Ticks that round to the same value are
// collapsed, so there are at most CountTicks(level) of them.
func (s SignedLog) TicksAtLevel(level int) interface{} {
	parts := partsAtLevel(level)
	raw := vec.Map(func(y float64) float64 {
		return Prettify(s.Unmap(y))
	}, vec.Linspace(0, 1, parts+1))

	ticks := raw[:0]
	for i, t := range raw {
		if i > 0 && t == ticks[len(ticks)-1] {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Ticks returns the major ticks at the lowest level with at most o.Max
// ticks, and the minor ticks one level below that.
func (s SignedLog) Ticks(o mscale.TickOptions) (major, minor []float64) {
	if o.Max <= 0 {
		return nil, nil
	} else if s.Min == s.Max {
		return []float64{s.Min}, []float64{s.Min}
	} else if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}

	level, ok := o.FindLevel(&s, 0)
	if !ok {
		return nil, nil
	}
	return s.TicksAtLevel(level).([]float64), s.TicksAtLevel(level - 1).([]float64)
}

// Nice expands the domain of s to round values, as a linear scale
// over the same domain would.
func (s *SignedLog) Nice(o mscale.TickOptions) {
	lin := mscale.Linear{Min: s.Min, Max: s.Max}
	lin.Nice(o)
	s.Min, s.Max = lin.Min, lin.Max
}

// Prettify rounds x to one significant digit. 0, NaN and infinities
// are returned unchanged.
func Prettify(x float64) float64 {
	if x == 0 || !finite(x) {
		return x
	}
	exp := math.Pow(10, math.Floor(math.Log10(math.Abs(x))))
	return math.Round(x/exp) * exp
}
