// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vumeter/meter"
)

const defaultOutput = `8.366600265340756 0.0
70.0
56.7
44.800000000000004
34.300000000000004
25.2
17.5
11.200000000000001
6.3
2.8000000000000003
0.7000000000000001
`

func TestRunDefault(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Equal(t, defaultOutput, out.String())
}

func TestRunRepeatable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(nil, &a))
	require.NoError(t, run(nil, &b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRunZeroParts(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-parts", "0"}, &out)

	var de *meter.DomainError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, "parts", de.Field)
	assert.Empty(t, out.String())
}

func TestRunFlags(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-min", "-60", "-max", "-6", "-parts", "4"}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 5)
}

func TestRunConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "meter.yaml")
	require.NoError(t, os.WriteFile(p, []byte("meter:\n  parts: 3\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", p}, &out))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 4)

	// Flags override the profile.
	out.Reset()
	require.NoError(t, run([]string{"-config", p, "-parts", "5"}, &out))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 6)
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"-h"}, &out))
	assert.Empty(t, out.String())
}

func TestRunBadArgs(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"extra"}, &out))
	assert.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out))
	assert.Empty(t, out.String())
}
