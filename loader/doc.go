// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader loads a typed configuration value from an ordered list of
// sources and, when loading fails, optionally writes a default configuration
// file for the operator to edit.
//
// Load runs in three steps:
//  1. The sources are resolved and merged (see package source); a
//     resolution error is returned immediately and matches
//     source.ErrSourceResolution.
//  2. The merged tree is decoded into a fresh T using the struct tag named
//     by [DefaultTagName] (override with [WithTagName]). Decoding is weakly
//     typed, so strings from the environment become numbers, booleans,
//     durations and comma separated slices. Unless [WithPartial] is given,
//     every exported field must be supplied by some source.
//  3. When decoding fails and no fallback is given, the error matches
//     [ErrDeserialization]. With a fallback, the default value of T is
//     written to the fallback file, overwriting it, and a [*FallbackError]
//     matching [ErrDefaultConfigGenerated] is returned; if writing fails it
//     matches [ErrDefaultConfigGenerationFailed] instead. A generated file
//     is never treated as a successful load.
//
// The default value of T is new(T) with SetDefaults applied when *T
// implements [Defaulter].
//
// Example:
//
//	type Config struct {
//	    Host string `koanf:"host"`
//	    Port int    `koanf:"port"`
//	}
//
//	func (c *Config) SetDefaults() { c.Host, c.Port = "localhost", 8080 }
//
//	cfg, err := loader.Load[Config](
//	    []source.Source{
//	        source.Env{Prefix: "APP_"},
//	        source.File{Format: codec.TOML, Path: "./app.toml"},
//	        source.Default{},
//	    },
//	    &source.File{Format: codec.TOML, Path: "./app.toml"},
//	)
package loader
