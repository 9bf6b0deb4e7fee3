// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// OutputScale maps the [0, 1] range of a Quantitative scale on to
// output coordinates, such as pixels along a meter bar. Min may be
// greater than Max, which is how a vertical meter puts its loud end
// at the top.
type OutputScale struct {
	Min, Max float64
	Mode     ClampMode
}

// ClampMode controls what OutputScale does with inputs outside [0, 1].
type ClampMode int

const (
	// Crop rejects inputs outside [0, 1].
	Crop ClampMode = iota
	// Unclamped maps every input linearly.
	Unclamped
	// Clamp pins inputs to [0, 1] before mapping.
	Clamp
)

// NewOutputScale returns a scale onto [min, max] that crops inputs
// outside [0, 1].
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, Crop}
}

// Of maps x to output coordinates. ok is false if x was cropped.
func (s OutputScale) Of(x float64) (y float64, ok bool) {
	switch s.Mode {
	case Crop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case Clamp:
		x = clamp(x)
	}
	return x*(s.Max-s.Min) + s.Min, true
}

// Ofs maps each x in xs, dropping cropped values.
func (s OutputScale) Ofs(xs []float64) []float64 {
	ys := make([]float64, 0, len(xs))
	for _, x := range xs {
		if y, ok := s.Of(x); ok {
			ys = append(ys, y)
		}
	}
	return ys
}
