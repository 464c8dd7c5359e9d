// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"sort"
	"strings"

	"github.com/knadh/koanf/maps"
)

// Delim separates the segments of a flattened key, e.g. "server.http_address".
const Delim = "."

// Tree is an untyped configuration value: a mapping from keys to nested
// mappings, sequences or scalars.
type Tree map[string]any

// New returns an empty, non-nil Tree.
func New() Tree {
	return Tree{}
}

// Normalize converts a codec or provider result into a Tree. Keys are
// lower-cased at every level so that sources agree on key case, and nested
// map[any]any values (as produced by some YAML decoders) and nested Tree
// values are rewritten as map[string]any so that every mapping has the same
// dynamic type. The input is not modified. A nil map yields an empty Tree.
func Normalize(m map[string]any) Tree {
	if m == nil {
		return New()
	}

	out := maps.Copy(m)
	maps.IntfaceKeysToStrings(out)

	return lowerKeys(out)
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch vv := v.(type) {
	case Tree:
		return lowerKeys(vv)
	case map[string]any:
		return lowerKeys(vv)
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	if len(t) == 0 {
		return New()
	}

	return maps.Copy(map[string]any(t))
}

// Flatten returns the leaf values of t keyed by their dotted path.
// Empty mappings are reported as leaves.
func (t Tree) Flatten() map[string]any {
	flat, _ := maps.Flatten(map[string]any(t), nil, Delim)
	return flat
}

// Keys returns the sorted dotted paths of every leaf in t.
func (t Tree) Keys() []string {
	flat := t.Flatten()

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Get returns the value stored under the dotted path, or nil when any
// segment is missing.
func (t Tree) Get(path string) any {
	if path == "" {
		return map[string]any(t)
	}

	return maps.Search(map[string]any(t), strings.Split(path, Delim))
}
