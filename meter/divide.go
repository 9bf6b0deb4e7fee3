// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meter

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/mathx"

	"github.com/aclements/go-vumeter/scale"
)

// Range is a decibel interval. Min is the quietest level shown on the
// meter and Max is the loudest.
type Range struct {
	Min, Max float64
}

// DefaultRange is the -70 dB to 0 dB range of a typical mixer meter.
var DefaultRange = Range{Min: -70, Max: 0}

// DefaultParts is the number of parts DefaultRange is divided into.
const DefaultParts = 10

func (r Range) check(op string) error {
	for _, b := range []struct {
		name string
		v    float64
	}{{"min", r.Min}, {"max", r.Max}} {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return &DomainError{Op: op, Field: b.name, Value: b.v, Reason: "must be finite"}
		}
	}
	return nil
}

// A Division is a square-root warped subdivision of a Range.
type Division struct {
	Range
	Parts int

	// SqrtMin and SqrtMax are the square roots of |Min| and |Max|.
	SqrtMin, SqrtMax float64

	// Breakpoints holds one magnitude per part, in index order.
	// Breakpoint i is (w - w/Parts*i)², where w is SqrtMin-SqrtMax.
	Breakpoints []float64
}

// Divide splits r into parts pieces that are equally wide in
// square-root space. Negative bounds are treated as magnitudes.
//
// Divide returns a *DomainError if parts is not positive or if either
// bound of r is NaN or infinite.
func Divide(r Range, parts int) (*Division, error) {
	if parts <= 0 {
		return nil, &DomainError{Op: "divide", Field: "parts", Value: float64(parts), Reason: "must be positive"}
	}
	if err := r.check("divide"); err != nil {
		return nil, err
	}

	d := &Division{
		Range:       r,
		Parts:       parts,
		SqrtMin:     math.Sqrt(math.Abs(r.Min)),
		SqrtMax:     math.Sqrt(math.Abs(r.Max)),
		Breakpoints: make([]float64, parts),
	}
	width := d.SqrtMin - d.SqrtMax
	step := width / float64(parts)
	for i := range d.Breakpoints {
		x := width - step*float64(i)
		d.Breakpoints[i] = x * x
	}
	return d, nil
}

// Levels returns the level in dB of each breakpoint, carrying the sign
// of the range. When Max is 0 these are just the signed breakpoints,
// so the default division gives -70, -56.7, ..., -0.7.
func (d *Division) Levels() []float64 {
	sign := mathx.Sign(d.Min)
	if sign == 0 {
		sign = mathx.Sign(d.Max)
	}
	if sign == 0 {
		sign = 1
	}

	step := (d.SqrtMin - d.SqrtMax) / float64(d.Parts)
	levels := make([]float64, len(d.Breakpoints))
	for i := range levels {
		x := d.SqrtMin - step*float64(i)
		levels[i] = sign * x * x
	}
	return levels
}

// Scale returns the square-root scale the division is taken on. Its
// ticks at level 0 are the default division's levels plus Max.
func (d *Division) Scale() scale.Sqrt {
	return scale.Sqrt{Min: d.Min, Max: d.Max}
}

// WriteTo writes d as text: SqrtMin and SqrtMax on the first line,
// separated by a space, followed by one breakpoint per line.
func (d *Division) WriteTo(w io.Writer) (int64, error) {
	buf := appendFloat(nil, d.SqrtMin)
	buf = append(buf, ' ')
	buf = appendFloat(buf, d.SqrtMax)
	buf = append(buf, '\n')
	for _, b := range d.Breakpoints {
		buf = appendFloat(buf, b)
		buf = append(buf, '\n')
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// appendFloat appends the shortest decimal form of x that parses back
// to x. Integral values keep a ".0" and exponents are used only below
// 1e-4 or from 1e16 up, so 70 is written as "70.0" and 0.00001 as
// "1e-05".
func appendFloat(buf []byte, x float64) []byte {
	e := strconv.AppendFloat(nil, x, 'e', -1, 64)
	if i := bytes.LastIndexByte(e, 'e'); i >= 0 {
		if exp, err := strconv.Atoi(string(e[i+1:])); err == nil && (exp < -4 || exp >= 16) {
			return append(buf, e...)
		}
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, x, 'f', -1, 64)
	if bytes.IndexByte(buf[start:], '.') < 0 {
		buf = append(buf, ".0"...)
	}
	return buf
}
