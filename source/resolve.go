// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/tree"
)

// EnvNestingDelim separates nesting levels in environment variable names.
const EnvNestingDelim = "__"

// Resolver turns sources into trees. The zero value resolves Env and File
// sources with the compiled-in codecs; Default requires Defaults.
type Resolver struct {
	// Defaults produces the tree for the Default source.
	Defaults func() (tree.Tree, error)

	// Codecs overrides the compiled-in codecs.
	Codecs codec.Registry

	// Logger receives per-source debug output. Nil disables logging.
	Logger *zerolog.Logger
}

// Resolve produces the tree contributed by src. The boolean is false when
// the source is absent, which is not an error.
func (r *Resolver) Resolve(src Source) (tree.Tree, bool, error) {
	var (
		t       tree.Tree
		present bool
		err     error
	)

	switch s := src.(type) {
	case Default:
		t, present, err = r.resolveDefault()
	case Env:
		t, present, err = r.resolveEnv(s)
	case File:
		t, present, err = r.resolveFile(s)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownSource, src)
	}

	if err != nil {
		return nil, false, &Error{Source: src, Err: err}
	}

	r.log().Debug().
		Stringer("source", src).
		Bool("present", present).
		Int("keys", len(t.Keys())).
		Msg("resolved config source")

	return t, present, nil
}

func (r *Resolver) resolveDefault() (tree.Tree, bool, error) {
	if r.Defaults == nil {
		return tree.New(), true, nil
	}

	t, err := r.Defaults()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrDefaults, err)
	}

	return tree.Normalize(t), true, nil
}

func (r *Resolver) resolveEnv(s Env) (tree.Tree, bool, error) {
	provider := env.Provider(s.Prefix, tree.Delim, func(name string) string {
		key := strings.TrimPrefix(name, s.Prefix)
		key = strings.ToLower(key)
		return strings.ReplaceAll(key, EnvNestingDelim, tree.Delim)
	})

	m, err := provider.Read()
	if err != nil {
		return nil, false, err
	}

	return tree.Normalize(m), true, nil
}

func (r *Resolver) resolveFile(s File) (tree.Tree, bool, error) {
	c, err := r.Codecs.Lookup(s.Format)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrFormatUnsupported, err)
	}

	path := ExpandPath(s.Path)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if info.IsDir() {
		return nil, false, fmt.Errorf("%w: %s is a directory", ErrFileAccess, path)
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	// Empty or whitespace-only files are an empty config, not a parse error.
	if strings.TrimSpace(string(data)) == "" {
		return tree.New(), true, nil
	}

	m, err := c.Unmarshal(data)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrFileFormatInvalid, path, err)
	}

	return tree.Normalize(m), true, nil
}

func (r *Resolver) log() *logger.Logger {
	if r.Logger == nil {
		return logger.Nop()
	}
	return logger.Wrap(*r.Logger)
}
