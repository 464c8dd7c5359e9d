// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

//go:generate mockgen -source=codec.go -destination=../internal/mock/codec_mock.go -package=mock

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// Codec converts between the raw bytes of one file format and an untyped
// map. Implementations must be stateless; the method set matches
// koanf.Parser so every koanf parser is a Codec.
type Codec interface {
	// Unmarshal parses raw file content into a map.
	Unmarshal([]byte) (map[string]any, error)

	// Marshal renders a map as raw file content.
	Marshal(map[string]any) ([]byte, error)
}

var _ koanf.Parser = Codec(nil)

// builtin holds the codecs compiled into this build. It is filled by the
// format files' init functions and never written afterwards.
var builtin = map[Format]Codec{}

func register(f Format, c Codec) {
	builtin[f] = c
}

// Lookup returns the compiled-in codec for f.
func Lookup(f Format) (Codec, error) {
	c, ok := builtin[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f)
	}
	return c, nil
}

// Supported reports the formats compiled into this build in declaration
// order.
func Supported() []Format {
	out := make([]Format, 0, len(builtin))
	for _, f := range formats {
		if _, ok := builtin[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Registry overrides or extends the compiled-in codecs for a single caller.
// The zero value uses only the compiled-in codecs.
type Registry map[Format]Codec

// Lookup returns the codec registered in r for f, falling back to the
// compiled-in one.
func (r Registry) Lookup(f Format) (Codec, error) {
	if c, ok := r[f]; ok && c != nil {
		return c, nil
	}
	return Lookup(f)
}
