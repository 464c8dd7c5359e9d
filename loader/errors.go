// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-layered-config/source"
)

var (
	// ErrDeserialization indicates that the merged sources could not
	// populate the typed configuration.
	ErrDeserialization = errors.New("config deserialization failed")
	// ErrDefaultConfigGenerated indicates that loading failed and a default
	// config file was written to the fallback path.
	ErrDefaultConfigGenerated = errors.New("default config file generated")
	// ErrDefaultConfigGenerationFailed indicates that loading failed and the
	// default config file could not be written either.
	ErrDefaultConfigGenerationFailed = errors.New("default config file generation failed")
)

// FallbackError is returned by Load when deserialization failed and a
// fallback file was requested. It always carries the deserialization error
// in Cause. Err is nil when the default file was written and holds the
// encode or write error otherwise.
type FallbackError struct {
	Target source.File
	Cause  error
	Err    error
}

// Generated reports whether the default config file was written.
func (e *FallbackError) Generated() bool {
	return e.Err == nil
}

func (e *FallbackError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v; default config written to %s, edit it and retry", e.Cause, e.Target.Path)
	}
	return fmt.Sprintf("%v; writing default config to %s failed: %v", e.Cause, e.Target.Path, e.Err)
}

func (e *FallbackError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDefaultConfigGenerated, e.Cause}
	}
	return []error{ErrDefaultConfigGenerationFailed, e.Cause, e.Err}
}
