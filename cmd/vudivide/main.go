// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vudivide prints the square-root warped division of a VU
// meter's decibel range.
//
// With no arguments it divides -70 dB to 0 dB into 10 parts. The first
// output line holds sqrt(|min|) and sqrt(|max|); each following line is
// one breakpoint:
//
//	$ vudivide
//	8.366600265340756 0.0
//	70.0
//	56.7
//	44.800000000000004
//	...
//	0.7000000000000001
//
// A meter profile can be given with -config, and -min, -max and -parts
// override individual values. A part count of zero, or a non-finite
// bound, is reported as an error and nothing is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aclements/go-vumeter/internal/config"
	"github.com/aclements/go-vumeter/meter"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("vudivide")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("vudivide", flag.ContinueOnError)
	var (
		flagConfig  = fs.String("config", "", "read meter profile from `file`")
		flagMin     = fs.Float64("min", meter.DefaultRange.Min, "quietest level in dB")
		flagMax     = fs.Float64("max", meter.DefaultRange.Max, "loudest level in dB")
		flagParts   = fs.Int("parts", meter.DefaultParts, "number of divisions")
		flagVerbose = fs.Bool("v", false, "log the profile being divided")
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
	if *flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return err
		}
	}

	// Explicit flags win over the profile.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			cfg.Meter.Min = *flagMin
		case "max":
			cfg.Meter.Max = *flagMax
		case "parts":
			cfg.Meter.Parts = *flagParts
		}
	})

	log.Debug().
		Float64("min", cfg.Meter.Min).
		Float64("max", cfg.Meter.Max).
		Int("parts", cfg.Meter.Parts).
		Msg("dividing")

	d, err := meter.Divide(cfg.Meter.Range(), cfg.Meter.Parts)
	if err != nil {
		return err
	}
	_, err = d.WriteTo(stdout)
	return err
}
