// Package config loads desks configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/desks/config.toml or --config
//  3. DESKS_* environment variables (DESKS_ANCHOR_TEMP_SUFFIX sets anchor.temp_suffix)
//  4. Command line overrides
package config
