// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import "github.com/knadh/koanf/maps"

// Merge returns a new Tree holding low overlaid with high. Leaves of high win
// over leaves of low, zero values included. Mappings present on both sides
// are merged recursively and everything else is kept from whichever side has
// it. Both sides are normalized first, so keys match case-insensitively.
// Neither argument is modified.
func Merge(low, high Tree) Tree {
	out := Normalize(low)
	maps.Merge(map[string]any(Normalize(high)), map[string]any(out))
	return out
}
