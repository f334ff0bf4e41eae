// Package config loads crosspath settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a configuration file, TOML or YAML by extension
//  3. CROSSPATH_ environment variables
//
// Bookmarks under [paths] are decoded into crosspath.Path values, so an
// invalid bookmark fails the load rather than its first use.
package config
