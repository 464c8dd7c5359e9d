// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrUnknownFormat indicates a format name or file extension that does
	// not correspond to any known format.
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrUnsupported indicates a known format whose codec was not compiled
	// into this build.
	ErrUnsupported = errors.New("config format not supported by this build")
)
