// Package file implements the ConfigStore port over a TOML file.
//
// Configuration lives in ~/.ratsdata/config.toml by default; the CLI can
// point elsewhere with --config. Nested tables flatten to dot-notation keys
// ("sources.agenda_items") so services address values uniformly.
package file
