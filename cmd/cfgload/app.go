// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/loader"
	"github.com/MKhiriev/go-layered-config/source"
)

const (
	exitFailure   = 1
	exitGenerated = 2
)

func newApp() *cli.App {
	return &cli.App{
		Name:                      "cfgload",
		Usage:                     "load layered application configuration",
		Version:                   buildInfo(),
		DisableSliceFlagSeparator: true,
		Flags:                     flags(),
		Action:                    run,
		// Exit codes are applied by main so the app stays runnable in tests.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "config source, highest priority first (default, env[:PREFIX], FORMAT:PATH)",
			Value:   cli.NewStringSlice("env:GPK_", "default"),
		},
		&cli.StringFlag{
			Name:    "fallback",
			Aliases: []string{"f"},
			Usage:   "write the default config to FORMAT:PATH when loading fails",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: json, toml, yaml",
			Value:   string(codec.YAML),
		},
		&cli.BoolFlag{
			Name:  "explain",
			Usage: "print the source of every key instead of the config",
		},
	}
}

func run(c *cli.Context) error {
	rt, err := config.GetRuntime()
	if err != nil {
		return cli.Exit(err, exitFailure)
	}
	log, err := newLogger(rt, c.App.ErrWriter)
	if err != nil {
		return cli.Exit(err, exitFailure)
	}

	sources, err := source.ParseAll(c.StringSlice("source"))
	if err != nil {
		return cli.Exit(err, exitFailure)
	}
	opts := []loader.Option{loader.WithLogger(log.Logger)}

	if c.Bool("explain") {
		return explain(c.App.Writer, sources, opts)
	}

	var fallback *source.File
	if d := c.String("fallback"); d != "" {
		f, err := source.ParseFile(d)
		if err != nil {
			return cli.Exit(err, exitFailure)
		}
		fallback = &f
	}

	format, err := codec.ParseFormat(c.String("output"))
	if err != nil {
		return cli.Exit(err, exitFailure)
	}

	cfg, err := config.GetStructuredConfig(sources, fallback, opts...)
	if errors.Is(err, loader.ErrDefaultConfigGenerated) {
		return cli.Exit(err, exitGenerated)
	}
	if err != nil {
		return cli.Exit(err, exitFailure)
	}

	data, err := loader.Encode(cfg, format, opts...)
	if err != nil {
		return cli.Exit(err, exitFailure)
	}
	if _, err := c.App.Writer.Write(data); err != nil {
		return cli.Exit(err, exitFailure)
	}

	return nil
}

func explain(w io.Writer, sources []source.Source, opts []loader.Option) error {
	merged, err := loader.Inspect[config.StructuredConfig](sources, opts...)
	if err != nil {
		return cli.Exit(err, exitFailure)
	}

	for _, key := range merged.Tree.Keys() {
		if _, err := fmt.Fprintf(w, "%s <- %s\n", key, merged.Origins[key]); err != nil {
			return cli.Exit(err, exitFailure)
		}
	}

	return nil
}

func newLogger(rt *config.Runtime, w io.Writer) (*logger.Logger, error) {
	lvl, err := rt.Level()
	if err != nil {
		return nil, err
	}

	if rt.LogFormat == config.LogFormatJSON {
		return logger.NewLogger("cfgload", w, lvl), nil
	}
	return logger.NewConsoleLogger("cfgload", w, lvl), nil
}
