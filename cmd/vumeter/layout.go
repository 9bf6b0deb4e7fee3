// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-vumeter/internal/config"
	"github.com/aclements/go-vumeter/meter"
	"github.com/aclements/go-vumeter/scale"
)

// A band is one ladder segment drawn beside the bar.
type band struct {
	top, bottom float64 // y coordinates
	lo, hi      float64 // dB
	segment     int
	color       color.Color
}

// A tick is a major tick with its label.
type tick struct {
	y     float64
	label string
}

type layout struct {
	width, height int
	fontSize      float64

	barX, barW   float64
	tickLen      float64
	minorTickLen float64
	labelX       float64

	bands []band
	major []tick
	minor []float64
}

var (
	colorSafe = color.NRGBA{0x2e, 0xb8, 0x4b, 0xff}
	colorWarn = color.NRGBA{0xf2, 0xc1, 0x1d, 0xff}
	colorClip = color.NRGBA{0xe0, 0x33, 0x2b, 0xff}
)

// bandColor picks a lamp color from the segment's upper edge.
func bandColor(hi, max float64) color.Color {
	switch below := max - hi; {
	case below <= 3:
		return colorClip
	case below <= 10:
		return colorWarn
	}
	return colorSafe
}

func newLayout(cfg *config.Config) (*layout, error) {
	d, err := meter.Divide(cfg.Meter.Range(), cfg.Meter.Parts)
	if err != nil {
		return nil, err
	}
	ladder := meter.Ladder(cfg.Meter.Ladder)
	if len(ladder) == 0 {
		ladder = meter.NewLadder(d)
	}

	r := cfg.Render
	l := &layout{
		width:        r.Width,
		height:       r.Height,
		fontSize:     r.FontSize,
		barX:         4,
		barW:         float64(r.Width) / 4,
		tickLen:      6,
		minorTickLen: 3,
	}
	l.labelX = l.barX + l.barW + l.tickLen + 3

	// Pick the warp. The sqrt warp puts major ticks on the
	// division itself; the log warp picks its own round ticks.
	var (
		q            mscale.Quantitative
		major, minor []float64
	)
	ticks := mscale.TickOptions{Max: cfg.Meter.Parts + 1}
	switch r.Warp {
	case config.WarpSqrt:
		sc := d.Scale()
		q = &sc
		major = append(d.Levels(), d.Max)
		_, minor = sc.Ticks(ticks)
	case config.WarpLog:
		sl := &scale.SignedLog{Min: d.Min, Max: d.Max}
		q = sl
		major, minor = sl.Ticks(ticks)
	default:
		return nil, fmt.Errorf("unknown warp %q", r.Warp)
	}
	// Ladder thresholds can lie outside the range, and rounding can
	// put the end ticks just past it.
	q.SetClamp(true)

	// The loud end of the meter is at the top.
	top, bottom := r.FontSize, float64(r.Height)-r.FontSize
	out := scale.OutputScale{Min: bottom, Max: top, Mode: scale.Clamp}

	for i, y := range out.Ofs(vec.Map(q.Map, major)) {
		l.major = append(l.major, tick{y, fmt.Sprintf(r.LabelFormat, major[i])})
	}
	l.minor = out.Ofs(vec.Map(q.Map, minor))

	px := mscale.QQ{Src: q, Dest: &mscale.Linear{Min: bottom, Max: top}}
	edges := append(append([]float64{d.Min}, ladder...), d.Max)
	for i := 1; i < len(edges); i++ {
		lo, hi := edges[i-1], edges[i]
		l.bands = append(l.bands, band{
			top:     px.Map(hi),
			bottom:  px.Map(lo),
			lo:      lo,
			hi:      hi,
			segment: ladder.Segment(lo),
			color:   bandColor(hi, d.Max),
		})
	}
	return l, nil
}
