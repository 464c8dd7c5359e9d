// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-layered-config/source"
)

const (
	fallbackDirPerm  = 0o755
	fallbackFilePerm = 0o644
)

// writeFallback writes the default value of T to target, replacing any
// existing file, and returns the *FallbackError Load reports.
func writeFallback[T any](target source.File, cause error, o *options) error {
	log := o.logger.With().Stringer("fallback", target).Logger()

	data, err := encode(Default[T](), target.Format, o)
	if err == nil {
		err = writeFile(source.ExpandPath(target.Path), data)
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to write default config file")
		return &FallbackError{Target: target, Cause: cause, Err: err}
	}

	log.Info().Msg("default config file written, edit it and restart")
	return &FallbackError{Target: target, Cause: cause}
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, fallbackDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, fallbackFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
