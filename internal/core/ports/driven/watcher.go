package driven

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// SourceWatcher observes configured source files for on-disk changes.
type SourceWatcher interface {
	// Watch starts observing and returns a channel of change events.
	// The channel is closed when the context is cancelled.
	Watch(ctx context.Context) (<-chan domain.SourceChange, error)

	// Close releases the underlying watcher resources.
	Close() error
}
