// Package watch observes configured source files with fsnotify and
// emits a change event whenever an export is rewritten on disk, so
// cached snapshots can be invalidated without restarting.
package watch
