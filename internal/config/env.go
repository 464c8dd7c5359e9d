// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// RuntimeEnvPrefix prefixes the environment variables read by [GetRuntime].
const RuntimeEnvPrefix = "CFGLOAD_"

// Log output formats accepted in [Runtime.LogFormat].
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Runtime holds the settings of the cfgload process itself. They are read
// only from the environment and never from the sources being inspected.
type Runtime struct {
	// LogLevel is a zerolog level name.
	// Env: CFGLOAD_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat selects JSON or human-readable console output.
	// Env: CFGLOAD_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// GetRuntime reads the cfgload runtime settings from the environment.
func GetRuntime() (*Runtime, error) {
	rt := &Runtime{}
	if err := parseEnv(rt, RuntimeEnvPrefix); err != nil {
		return nil, err
	}

	rt.LogFormat = strings.ToLower(rt.LogFormat)
	if rt.LogFormat != LogFormatJSON && rt.LogFormat != LogFormatConsole {
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidRuntimeConfigs, rt.LogFormat)
	}
	if _, err := rt.Level(); err != nil {
		return nil, err
	}

	return rt, nil
}

// Level returns LogLevel as a zerolog level.
func (rt *Runtime) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(rt.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrInvalidRuntimeConfigs, err)
	}
	return lvl, nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags, each prefixed
// with prefix.
//
// Returns a wrapped error if parsing fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any, prefix string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
