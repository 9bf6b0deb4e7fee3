// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides warped scales for laying out level meters.
//
// Sqrt and SignedLog implement the Quantitative interface from
// github.com/aclements/go-moremath/scale, so they can be combined
// with that package's Linear scale and QQ mapping.
package scale
