// Package config holds the five enumerated options from spec.md §6 that
// govern one discovery run: saturation bounds, the oracle's command line,
// its concurrency, and which rule set to saturate with.
package config
