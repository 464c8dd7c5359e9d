// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !noyaml

package codec

import "github.com/knadh/koanf/parsers/yaml"

func init() {
	register(YAML, yaml.Parser())
}
