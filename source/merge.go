// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"github.com/MKhiriev/go-layered-config/tree"
)

// Merged is the combined value of an ordered source list.
type Merged struct {
	// Tree is the merged structured value.
	Tree tree.Tree

	// Origins maps every dotted leaf key of Tree to the source that
	// supplied it.
	Origins map[string]Source
}

// Merge resolves sources, highest priority first, and folds them into one
// tree so that a field set by an earlier source is never overwritten by a
// later one. Absent sources are skipped. The first resolution error aborts
// the merge and is returned as is.
func (r *Resolver) Merge(sources []Source) (*Merged, error) {
	acc := tree.New()
	origins := make(map[string]Source)

	// Fold from lowest to highest priority so higher leaves land last.
	for i := len(sources) - 1; i >= 0; i-- {
		src := sources[i]

		t, present, err := r.Resolve(src)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}

		acc = tree.Merge(acc, t)
		for _, key := range t.Keys() {
			origins[key] = src
		}
	}

	// Drop origins of leaves that a higher source replaced with a scalar or
	// a differently shaped mapping.
	final := acc.Flatten()
	for key := range origins {
		if _, ok := final[key]; !ok {
			delete(origins, key)
		}
	}

	r.log().Debug().
		Int("sources", len(sources)).
		Int("keys", len(final)).
		Msg("merged config sources")

	return &Merged{Tree: acc, Origins: origins}, nil
}
