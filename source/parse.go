// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-layered-config/codec"
)

// Parse converts a textual descriptor into a Source:
//
//	default              Default{}
//	env                  Env{}
//	env:APP_             Env{Prefix: "APP_"}
//	json:PATH            File{Format: codec.JSON, Path: PATH}
//	toml:PATH            File{Format: codec.TOML, Path: PATH}
//	yaml:PATH, yml:PATH  File{Format: codec.YAML, Path: PATH}
//	PATH                 File with the format taken from PATH's extension
func Parse(descriptor string) (Source, error) {
	d := strings.TrimSpace(descriptor)

	switch strings.ToLower(d) {
	case "":
		return nil, fmt.Errorf("%w: empty descriptor", ErrInvalidDescriptor)
	case "default":
		return Default{}, nil
	case "env":
		return Env{}, nil
	}

	if kind, rest, ok := strings.Cut(d, ":"); ok && strings.EqualFold(kind, "env") {
		return Env{Prefix: rest}, nil
	}

	return ParseFile(d)
}

// ParseFile converts a file descriptor ("FORMAT:PATH" or a bare PATH with a
// known extension) into a File.
func ParseFile(descriptor string) (File, error) {
	d := strings.TrimSpace(descriptor)
	if d == "" {
		return File{}, fmt.Errorf("%w: empty descriptor", ErrInvalidDescriptor)
	}

	if kind, path, ok := strings.Cut(d, ":"); ok {
		if f, err := codec.ParseFormat(kind); err == nil {
			if path == "" {
				return File{}, fmt.Errorf("%w: %q has no path", ErrInvalidDescriptor, descriptor)
			}
			return File{Format: f, Path: path}, nil
		}
	}

	f, err := codec.FormatFromPath(d)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	return File{Format: f, Path: d}, nil
}

// ParseAll parses every descriptor, keeping their order.
func ParseAll(descriptors []string) ([]Source, error) {
	out := make([]Source, 0, len(descriptors))
	for _, d := range descriptors {
		src, err := Parse(d)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}
