// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartsAtLevel(t *testing.T) {
	for level, want := range map[int]int{
		-3: 100,
		-2: 50,
		-1: 20,
		0:  10,
		1:  5,
		2:  2,
		3:  1,
		10: 1,
	} {
		assert.Equal(t, want, partsAtLevel(level), "level %d", level)
	}
	assert.Equal(t, maxParts, partsAtLevel(-15))
	assert.Equal(t, maxParts, partsAtLevel(-1000))
}

func TestSqrtMap(t *testing.T) {
	s := Sqrt{Min: -70, Max: 0}

	assert.InDelta(t, 0, s.Map(-70), 1e-12)
	assert.InDelta(t, 1, s.Map(0), 1e-12)
	assert.InDelta(t, 0.5, s.Map(-17.5), 1e-12)
	assert.InDelta(t, -17.5, s.Unmap(0.5), 1e-12)

	for _, x := range []float64{-70, -43, -16, -6, -1, -0.25, 0} {
		assert.InDelta(t, x, s.Unmap(s.Map(x)), 1e-9, "round trip of %v", x)
	}
}

func TestSqrtPastZero(t *testing.T) {
	s := Sqrt{Min: -70, Max: 0}

	assert.Greater(t, s.Map(6), 1.0)
	assert.Greater(t, s.Map(6), s.Map(3))
	assert.InDelta(t, 6, s.Unmap(s.Map(6)), 1e-9)

	s.SetClamp(true)
	assert.Equal(t, 1.0, s.Map(6))
}

func TestSqrtPositiveRange(t *testing.T) {
	s := Sqrt{Min: 0, Max: 70}

	assert.InDelta(t, 0, s.Map(0), 1e-12)
	assert.InDelta(t, 1, s.Map(70), 1e-12)
	assert.InDelta(t, 17.5, s.Unmap(0.5), 1e-12)
}

func TestSqrtDegenerate(t *testing.T) {
	s := Sqrt{Min: -6, Max: -6}
	assert.Equal(t, 0.5, s.Map(-6))

	major, minor := s.Ticks(mscale.TickOptions{Max: 5})
	assert.Equal(t, []float64{-6}, major)
	assert.Equal(t, []float64{-6}, minor)
}

func TestSqrtClamp(t *testing.T) {
	s := Sqrt{Min: -70, Max: 0}
	assert.Less(t, s.Map(-100), 0.0)

	s.SetClamp(true)
	assert.Equal(t, 0.0, s.Map(-100))
	assert.InDelta(t, 1, s.Map(0), 1e-12)
}

func TestNewSqrt(t *testing.T) {
	_, err := NewSqrt(math.NaN(), 0)
	require.Error(t, err)
	_, err = NewSqrt(-70, math.Inf(1))
	require.Error(t, err)

	s, err := NewSqrt(-70, 0)
	require.NoError(t, err)
	assert.Equal(t, Sqrt{Min: -70, Max: 0}, s)
}

func TestSqrtTicksAtLevel(t *testing.T) {
	s := Sqrt{Min: -70, Max: 0}
	ticks := s.TicksAtLevel(0).([]float64)
	require.Len(t, ticks, 11)
	assert.Equal(t, s.CountTicks(0), len(ticks))

	assert.InDelta(t, -70, ticks[0], 1e-9)
	assert.InDelta(t, 0, ticks[10], 1e-9)
	for i := 1; i < len(ticks); i++ {
		assert.Less(t, ticks[i-1], ticks[i])
	}

	// Ticks are evenly spaced after warping.
	for i, tick := range ticks {
		assert.InDelta(t, float64(i)/10, s.Map(tick), 1e-9)
	}
}

func TestSqrtTicks(t *testing.T) {
	s := Sqrt{Min: -70, Max: 0}

	major, minor := s.Ticks(mscale.TickOptions{Max: 11})
	assert.Len(t, major, 11)
	assert.Len(t, minor, 21)

	major, minor = s.Ticks(mscale.TickOptions{Max: 6})
	assert.Len(t, major, 6)
	assert.Len(t, minor, 11)

	major, minor = s.Ticks(mscale.TickOptions{})
	assert.Nil(t, major)
	assert.Nil(t, minor)
}

func TestSqrtNice(t *testing.T) {
	s := Sqrt{Min: -67, Max: 0}
	s.Nice(mscale.TickOptions{Max: 10})
	assert.InDelta(t, -70, s.Min, 1e-9)
	assert.InDelta(t, 0, s.Max, 1e-9)
}

func TestSqrtQQ(t *testing.T) {
	s := &Sqrt{Min: -70, Max: 0}
	px := mscale.QQ{Src: s, Dest: &mscale.Linear{Min: 200, Max: 0}}

	assert.InDelta(t, 200, px.Map(-70), 1e-9)
	assert.InDelta(t, 100, px.Map(-17.5), 1e-9)
	assert.InDelta(t, 0, px.Map(0), 1e-9)
	assert.InDelta(t, -17.5, px.Unmap(100), 1e-9)
}
