// Package config holds the sample application configuration that cfgload
// loads and validates, and the runtime settings of cfgload itself.
//
// [StructuredConfig] is assembled by package loader from an ordered list of
// sources (environment, JSON/TOML/YAML files, built-in defaults) and then
// checked with [StructuredConfig.Validate]. [GetStructuredConfig] does both.
//
// [Runtime] is read with caarlos0/env from CFGLOAD_* variables by
// [GetRuntime].
package config
