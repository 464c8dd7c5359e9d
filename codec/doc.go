// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts configuration files between raw bytes and the
// untyped map form used by package tree.
//
// Supported formats are JSON, TOML and YAML, each backed by the matching
// koanf parser. Every format is compiled in by default and can be left out of
// a build with the build tags nojson, notoml and noyaml; looking up a format
// that was left out returns [ErrUnsupported].
package codec
