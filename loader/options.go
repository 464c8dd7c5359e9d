// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/source"
	"github.com/MKhiriev/go-layered-config/tree"
)

// DefaultTagName is the struct tag that names configuration keys.
const DefaultTagName = "koanf"

// Option configures a single Load, Inspect or Encode call.
type Option func(*options)

type options struct {
	logger  *logger.Logger
	tagName string
	partial bool
	codecs  codec.Registry
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  logger.Nop(),
		tagName: DefaultTagName,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger routes the loader's diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.Wrap(l).WithComponent("loader")
	}
}

// WithTagName sets the struct tag used for key names.
func WithTagName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.tagName = name
		}
	}
}

// WithPartial lets fields that no source supplies keep their zero value
// instead of failing deserialization.
func WithPartial() Option {
	return func(o *options) {
		o.partial = true
	}
}

// WithCodec uses c for files of format f, replacing the compiled-in codec
// or adding a format the build does not know.
func WithCodec(f codec.Format, c codec.Codec) Option {
	return func(o *options) {
		if o.codecs == nil {
			o.codecs = codec.Registry{}
		}
		o.codecs[f] = c
	}
}

func (o *options) resolver(defaults func() (tree.Tree, error)) *source.Resolver {
	return &source.Resolver{
		Defaults: defaults,
		Codecs:   o.codecs,
		Logger:   &o.logger.Logger,
	}
}
