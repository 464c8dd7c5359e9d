// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading "~", "~/" or "~\" to the current user's home
// directory. Other paths, and all paths when the home directory is unknown,
// are returned unchanged.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`):
		return filepath.Join(home, path[2:])
	default:
		// "~user" forms are not expanded.
		return path
	}
}
