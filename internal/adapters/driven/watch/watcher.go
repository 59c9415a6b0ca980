package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
)

// Watcher observes the configured source files via fsnotify.
//
// fsnotify watches directories more reliably than single files across
// platforms (editors and exporters often replace files atomically), so
// the watcher registers each source's parent directory and filters
// events down to the configured paths.
type Watcher struct {
	sources domain.SourceSettings
	fsw     *fsnotify.Watcher

	// paths maps a cleaned source path to its collection.
	paths map[string]domain.Collection
}

var _ driven.SourceWatcher = (*Watcher)(nil)

// New creates a watcher for the configured, non-empty source paths.
func New(sources domain.SourceSettings) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		sources: sources,
		fsw:     fsw,
		paths:   make(map[string]domain.Collection),
	}

	for _, collection := range []domain.Collection{
		domain.CollectionAgendaItems,
		domain.CollectionPeople,
		domain.CollectionOrganizations,
		domain.CollectionMemberships,
	} {
		path := sources.Path(collection)
		if path == "" {
			continue
		}
		w.paths[filepath.Clean(path)] = collection
	}

	if len(w.paths) == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no source paths configured: %w", domain.ErrInvalidInput)
	}

	// Register parent directories, deduplicated.
	dirs := make(map[string]struct{})
	for path := range w.paths {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return w, nil
}

// Watch starts observing and returns a channel of change events. The
// channel is closed when the context is cancelled or the watcher is
// closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.SourceChange, error) {
	changes := make(chan domain.SourceChange)

	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				change, relevant := w.translate(event)
				if !relevant {
					continue
				}
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; keep observing.
			}
		}
	}()

	return changes, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// translate filters an fsnotify event down to a configured source path.
func (w *Watcher) translate(event fsnotify.Event) (domain.SourceChange, bool) {
	collection, ok := w.paths[filepath.Clean(event.Name)]
	if !ok {
		return domain.SourceChange{}, false
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return domain.SourceChange{}, false
	}
	return domain.SourceChange{Collection: collection, Path: event.Name}, true
}
