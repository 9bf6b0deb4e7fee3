// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meter computes tick positions for level meters.
//
// The main entry point is Divide, which splits a decibel range into a
// number of parts that are evenly spaced after a square-root warp.
// For the usual -70 dB to 0 dB meter in 10 parts this gives ticks at
// roughly 70, 56.7, 44.8, ..., 0.7 dB below full scale.
//
// A Ladder assigns a level in dB to one of a fixed number of meter
// segments, for meters drawn as a column of lamps.
package meter
