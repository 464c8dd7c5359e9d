// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"

	"github.com/MKhiriev/go-layered-config/codec"
)

// Source is one configuration origin. The set of implementations is closed:
// Default, Env and File.
type Source interface {
	fmt.Stringer
	isSource()
}

// Default is the structured form of the caller's default configuration value.
type Default struct{}

// Env reads process environment variables whose names start with Prefix.
// An empty Prefix selects every variable.
type Env struct {
	Prefix string
}

// File reads a structured file of the given Format. The file may not exist.
type File struct {
	Format codec.Format
	Path   string
}

func (Default) isSource() {}
func (Env) isSource()     {}
func (File) isSource()    {}

// String implements fmt.Stringer.
func (Default) String() string {
	return "default"
}

// String implements fmt.Stringer.
func (e Env) String() string {
	if e.Prefix == "" {
		return "env"
	}
	return "env:" + e.Prefix
}

// String implements fmt.Stringer.
func (f File) String() string {
	return f.Format.String() + ":" + f.Path
}
