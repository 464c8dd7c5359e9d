// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"

	"github.com/MKhiriev/go-layered-config/source"
	"github.com/MKhiriev/go-layered-config/tree"
)

// Defaulter is implemented by configuration types whose default value is
// not their zero value.
type Defaulter interface {
	SetDefaults()
}

// Default returns the default value of T.
func Default[T any]() *T {
	v := new(T)
	if d, ok := any(v).(Defaulter); ok {
		d.SetDefaults()
	}
	return v
}

// Load resolves sources in priority order (index 0 wins), merges them and
// decodes the result into a new T. See the package documentation for the
// fallback behavior.
func Load[T any](sources []source.Source, fallback *source.File, opts ...Option) (*T, error) {
	o := newOptions(opts)
	log := o.logger

	merged, err := o.resolver(defaultTree[T](o)).Merge(sources)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve config sources")
		return nil, err
	}

	cfg := new(T)
	if err := decode(merged.Tree, cfg, o); err != nil {
		err = fmt.Errorf("%w: %w", ErrDeserialization, err)
		log.Error().Err(err).Msg("failed to deserialize config")
		if fallback == nil {
			return nil, err
		}
		return nil, writeFallback[T](*fallback, err, o)
	}

	log.Debug().Int("sources", len(sources)).Any("config", cfg).Msg("config loaded")
	return cfg, nil
}

// Inspect resolves and merges sources exactly as Load does and returns the
// merged tree together with the source each leaf key came from. Nothing is
// decoded and no fallback file is written.
func Inspect[T any](sources []source.Source, opts ...Option) (*source.Merged, error) {
	o := newOptions(opts)
	return o.resolver(defaultTree[T](o)).Merge(sources)
}

func defaultTree[T any](o *options) func() (tree.Tree, error) {
	return func() (tree.Tree, error) {
		return toTree(Default[T](), o.tagName)
	}
}
