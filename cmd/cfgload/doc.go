// Command cfgload loads the application configuration from an ordered list
// of sources and prints the result.
//
// Sources are given with repeated -s flags, highest priority first:
//
//	cfgload -s env:GPK_ -s yaml:./config.yaml -s default
//
// A source descriptor is "default", "env", "env:PREFIX", "FORMAT:PATH" or a
// path whose extension names the format (.json, .toml, .yaml, .yml).
//
// With -f FORMAT:PATH, a failed load writes the default configuration to
// PATH so it can be edited. The exit code is 0 on success, 2 when a default
// file was written and 1 on any other error.
//
// --explain prints every key together with the source it came from instead
// of the configuration itself.
//
// Logging is controlled by CFGLOAD_LOG_LEVEL and CFGLOAD_LOG_FORMAT
// (json or console) and goes to stderr.
package main
