// Package sqlite provides a SQLite-backed snapshot store for derived
// records. Snapshots are keyed by source fingerprint so a restart can
// skip re-parsing source files that have not changed on disk.
package sqlite
