// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
)

// A canvas is an output format the meter can be drawn on.
type canvas interface {
	FillRect(x, y, w, h float64, c color.Color, title string)
	HLine(x, y, length float64, c color.Color)
	Label(x, y float64, size float64, c color.Color, text string)
	Done() error
}

func drawMeter(c canvas, l *layout) error {
	// Segment bands.
	for _, b := range l.bands {
		top, h := math.Min(b.top, b.bottom), math.Abs(b.bottom-b.top)
		if h == 0 {
			continue
		}
		c.FillRect(l.barX, top, l.barW, h, b.color, fmt.Sprintf("segment %d: %g to %g dB", b.segment, b.lo, b.hi))
	}

	// Ticks to the right of the bar.
	tickX := l.barX + l.barW
	for _, y := range l.minor {
		c.HLine(tickX, y, l.minorTickLen, color.Black)
	}
	for _, t := range l.major {
		c.HLine(tickX, t.y, l.tickLen, color.Black)
		c.Label(l.labelX, t.y, l.fontSize, color.Black, t.label)
	}
	return c.Done()
}

// svgCanvas draws on an SVG document.
type svgCanvas struct {
	svg *SVG
}

func newSVGCanvas(w io.Writer, width, height int) *svgCanvas {
	svg := NewSVG(w, width, height)
	svg.SetLineWidth(1)
	return &svgCanvas{svg}
}

func (c *svgCanvas) FillRect(x, y, w, h float64, col color.Color, title string) {
	c.svg.SetFill(col)
	c.svg.Rect(x, y, w, h).FillTooltip(title)
	c.svg.SetFill(nil)
}

func (c *svgCanvas) HLine(x, y, length float64, col color.Color) {
	c.svg.SetStroke(col)
	c.svg.MoveTo(x, y).LineToRel(length, 0).Stroke()
	c.svg.SetStroke(nil)
}

func (c *svgCanvas) Label(x, y, size float64, col color.Color, text string) {
	c.svg.SetFill(col)
	c.svg.Text(x, y, TextOpts{Anchor: AnchorStart, FontSize: size}, text)
	c.svg.SetFill(nil)
}

func (c *svgCanvas) Done() error {
	return c.svg.Done()
}
