// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree provides the format-agnostic structured value that every
// configuration source is reduced to before merging.
//
// A [Tree] is a nested map[string]any whose values are mappings
// (map[string]any), sequences ([]any or typed slices) or scalars. Trees are
// combined with [Merge], which never mutates its arguments:
//   - keys present on only one side are kept;
//   - keys present on both sides whose values are both mappings are merged
//     recursively;
//   - any other overlap is resolved in favour of the higher-priority side,
//     replacing the value wholesale (sequences are never concatenated).
package tree
