// Package config loads Freighter's TOML configuration.
//
// The Load function resolves ~/.config/freighter/config.toml unless a path
// is given, and falls back to built-in defaults when the file is missing or
// fields are empty: the public demo API endpoint, a page size of 10, and a
// 10 second request timeout.
package config
