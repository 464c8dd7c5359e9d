// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !nojson

package codec

import (
	"bytes"
	"encoding/json"

	kjson "github.com/knadh/koanf/parsers/json"
)

func init() {
	register(JSON, jsonCodec{kjson.Parser()})
}

// jsonCodec indents the compact output of the koanf JSON parser so that
// generated files are readable.
type jsonCodec struct {
	*kjson.JSON
}

func (c jsonCodec) Marshal(m map[string]any) ([]byte, error) {
	raw, err := c.JSON.Marshal(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
