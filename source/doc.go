// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source describes where configuration comes from and reduces an
// ordered list of sources to a single merged tree.
//
// A [Source] is one of [Default], [Env] or [File]. The position of a source in
// the list passed to [Resolver.Merge] is its priority: index 0 wins over every
// later source for any field it sets, and fields it does not set fall
// through to the next source.
//
// Resolution rules:
//   - Default is always present and yields the structured form of the
//     caller's default configuration value.
//   - Env is always present, possibly empty. Variables are filtered by
//     prefix; the remainder is lower-cased and "__" separates nesting
//     levels, so with prefix "APP_" the variable APP_SERVER__HTTP_ADDRESS
//     sets server.http_address.
//   - File is absent when its path does not exist. An existing file that
//     cannot be read fails with [ErrFileAccess], one that does not parse
//     fails with [ErrFileFormatInvalid]. Empty files contribute an empty tree.
//
// Every resolution failure is reported as an [*Error] that matches
// [ErrSourceResolution] and aborts the merge.
package source
