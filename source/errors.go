// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceResolution is matched by every error produced while resolving
	// a source.
	ErrSourceResolution = errors.New("config source resolution failed")
	// ErrFileAccess indicates a config file that exists but cannot be read.
	ErrFileAccess = errors.New("config file is not accessible")
	// ErrFileFormatInvalid indicates a config file whose content does not
	// parse under its declared format.
	ErrFileFormatInvalid = errors.New("config file has invalid format")
	// ErrFormatUnsupported indicates a file source whose format has no codec
	// in this build.
	ErrFormatUnsupported = errors.New("config file format is not supported")
	// ErrDefaults indicates that the default configuration value could not
	// be converted into a tree.
	ErrDefaults = errors.New("default config could not be encoded")
	// ErrUnknownSource indicates a Source implementation outside this package.
	ErrUnknownSource = errors.New("unknown config source")
	// ErrInvalidDescriptor indicates a textual source descriptor that
	// cannot be parsed.
	ErrInvalidDescriptor = errors.New("invalid config source descriptor")
)

// Error reports the failure to resolve one source. It matches
// ErrSourceResolution as well as the specific kind it wraps.
type Error struct {
	Source Source
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolve config source %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrSourceResolution, e.Err}
}
