// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// pngCanvas rasterizes the meter and encodes it as PNG on Done.
type pngCanvas struct {
	w       io.Writer
	img     *image.NRGBA
	fontCtx *freetype.Context
	err     error
}

var regular *truetype.Font

func loadFont() (*truetype.Font, error) {
	if regular != nil {
		return regular, nil
	}
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	regular = f
	return f, nil
}

func newPNGCanvas(w io.Writer, width, height int) (*pngCanvas, error) {
	font, err := loadFont()
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	fontCtx := freetype.NewContext()
	fontCtx.SetFont(font)
	fontCtx.SetDst(img)
	fontCtx.SetClip(img.Bounds())
	return &pngCanvas{w: w, img: img, fontCtx: fontCtx}, nil
}

func round(x float64) int {
	return int(math.Round(x))
}

func (c *pngCanvas) FillRect(x, y, w, h float64, col color.Color, title string) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *pngCanvas) HLine(x, y, length float64, col color.Color) {
	py := round(y)
	for px := round(x); px < round(x+length); px++ {
		c.img.Set(px, py, col)
	}
}

func (c *pngCanvas) Label(x, y, size float64, col color.Color, text string) {
	if c.err != nil {
		return
	}
	c.fontCtx.SetFontSize(size)
	c.fontCtx.SetSrc(image.NewUniform(col))
	// Put the baseline a third of the font size below y so the
	// text is roughly centered on it.
	_, c.err = c.fontCtx.DrawString(text, freetype.Pt(round(x), round(y+size/3)))
}

func (c *pngCanvas) Done() error {
	if c.err != nil {
		return c.err
	}
	return png.Encode(c.w, c.img)
}
