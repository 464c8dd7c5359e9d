// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !notoml

package codec

import "github.com/knadh/koanf/parsers/toml/v2"

func init() {
	register(TOML, toml.Parser())
}
