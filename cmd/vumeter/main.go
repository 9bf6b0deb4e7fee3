// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vumeter draws the scale of a VU meter.
//
// The meter is a vertical bar running from the quietest level at the
// bottom to the loudest at the top. Major ticks sit at the square-root
// warped breakpoints computed by vudivide and are labelled in dB. The
// bar is colored by segment, using the ladder from the profile or,
// if the profile has none, one segment per division.
//
// The -warp flag selects how levels are spaced: "sqrt" (the default)
// or "log", a signed logarithmic spacing with rounded tick values.
//
// Output goes to standard output as SVG unless -o names a file. Files
// ending in .png are rasterized; anything else is written as SVG.
//
//	vumeter -o meter.svg
//	vumeter -config meter.yaml -o meter.png
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aclements/go-vumeter/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("vumeter")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("vumeter", flag.ContinueOnError)
	var (
		flagConfig = fs.String("config", "", "read meter profile from `file`")
		flagOutput = fs.String("o", "", "write scale to `file` (.svg or .png)")
		flagParts  = fs.Int("parts", 0, "override the profile's number of divisions")
		flagWarp   = fs.String("warp", "", "override the profile's scale `warp` (sqrt or log)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parts":
			cfg.Meter.Parts = *flagParts
		case "warp":
			cfg.Render.Warp = *flagWarp
		}
	})

	l, err := newLayout(cfg)
	if err != nil {
		return err
	}

	asPNG := strings.EqualFold(filepath.Ext(*flagOutput), ".png")
	if *flagOutput == "" || *flagOutput == "-" {
		return writeMeter(stdout, l, asPNG)
	}

	f, err := os.Create(*flagOutput)
	if err != nil {
		return err
	}
	err = writeMeter(f, l, asPNG)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		// Don't leave a truncated scale behind.
		if fi, serr := os.Stat(*flagOutput); serr == nil && fi.Mode().IsRegular() {
			os.Remove(*flagOutput)
		}
		return err
	}
	log.Info().
		Str("file", *flagOutput).
		Int("ticks", len(l.major)).
		Int("segments", len(l.bands)).
		Msg("wrote meter scale")
	return nil
}

// writeMeter draws l to w as PNG or SVG.
func writeMeter(w io.Writer, l *layout, asPNG bool) error {
	bw := bufio.NewWriter(w)

	var c canvas
	if asPNG {
		var err error
		if c, err = newPNGCanvas(bw, l.width, l.height); err != nil {
			return err
		}
	} else {
		c = newSVGCanvas(bw, l.width, l.height)
	}
	if err := drawMeter(c, l); err != nil {
		return err
	}
	return bw.Flush()
}
