// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meter

import "fmt"

// A DomainError reports an argument for which the meter arithmetic is
// undefined, such as a zero part count or a NaN bound.
type DomainError struct {
	Op     string  // operation, such as "divide"
	Field  string  // offending argument
	Value  float64 // offending value
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("meter: %s: %s %s (got %v)", e.Op, e.Field, e.Reason, e.Value)
}
