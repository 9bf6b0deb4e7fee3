// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	mscale "github.com/aclements/go-moremath/scale"
)

// Sqrt is a square-root warped meter scale. It maps the magnitude of
// its input so that equal steps in the output range correspond to
// equal steps in the square root of the level. For a dB range such
// as [-70, 0] this expands the quiet end of the meter and compresses
// the loud end.
//
// Inside the domain only the magnitude of a value matters. Values on
// the far side of 0 from the domain take a negative square root, so
// the scale stays monotonic and they map beyond the end nearest 0.
type Sqrt struct {
	// Min and Max are the bounds of the input domain. Min maps to
	// 0 and Max maps to 1.
	Min, Max float64

	// If Clamp is true, Map clamps its result to [0, 1].
	Clamp bool
}

// *Sqrt is a Quantitative scale.
var _ mscale.Quantitative = &Sqrt{}

// NewSqrt returns a square-root scale over [min, max].
func NewSqrt(min, max float64) (Sqrt, error) {
	if !finite(min) || !finite(max) {
		return Sqrt{}, mscale.RangeErr("scale bounds must be finite")
	}
	return Sqrt{Min: min, Max: max}, nil
}

// root returns the signed square root of x, measured in the
// direction of the domain's sign.
func (s Sqrt) root(x float64) float64 {
	x *= rangeSign(s.Min, s.Max)
	return mathx.Sign(x) * math.Sqrt(math.Abs(x))
}

// unroot is the inverse of root.
func (s Sqrt) unroot(r float64) float64 {
	return rangeSign(s.Min, s.Max) * mathx.Sign(r) * r * r
}

func (s Sqrt) bounds() (sqrtMin, width float64) {
	sqrtMin = s.root(s.Min)
	return sqrtMin, sqrtMin - s.root(s.Max)
}

func (s Sqrt) Map(x float64) float64 {
	sqrtMin, width := s.bounds()
	if width == 0 {
		return 0.5
	}
	y := (sqrtMin - s.root(x)) / width
	if s.Clamp {
		y = clamp(y)
	}
	return y
}

func (s Sqrt) Unmap(y float64) float64 {
	sqrtMin, width := s.bounds()
	return s.unroot(sqrtMin - y*width)
}

func (s *Sqrt) SetClamp(clamp bool) {
	s.Clamp = clamp
}

// CountTicks returns the number of ticks at level, including both
// bounds of the input domain.
func (s Sqrt) CountTicks(level int) int {
	return partsAtLevel(level) + 1
}

// TicksAtLevel returns the ticks at level as a []float64 in
// ascending order. The ticks are evenly spaced in the output range.
func (s Sqrt) TicksAtLevel(level int) interface{} {
	parts := partsAtLevel(level)
	sqrtMin, width := s.bounds()
	sqrtMax := sqrtMin - width
	step := width / float64(parts)

	ticks := make([]float64, parts+1)
	for i := range ticks {
		ticks[i] = s.unroot(sqrtMax + (width - step*float64(i)))
	}
	sort.Float64s(ticks)
	return ticks
}

// Ticks returns the major ticks at the lowest level with at most o.Max
// ticks, and the minor ticks one level below that.
func (s Sqrt) Ticks(o mscale.TickOptions) (major, minor []float64) {
	if o.Max <= 0 {
		return nil, nil
	} else if s.Min == s.Max {
		return []float64{s.Min}, []float64{s.Min}
	}

	level, ok := o.FindLevel(&s, 0)
	if !ok {
		return nil, nil
	}
	return s.TicksAtLevel(level).([]float64), s.TicksAtLevel(level - 1).([]float64)
}

// Nice expands the domain of s to round values, as a linear scale
// over the same domain would.
func (s *Sqrt) Nice(o mscale.TickOptions) {
	lin := mscale.Linear{Min: s.Min, Max: s.Max}
	lin.Nice(o)
	s.Min, s.Max = lin.Min, lin.Max
}
