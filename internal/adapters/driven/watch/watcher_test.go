package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

func testSources(t *testing.T) (domain.SourceSettings, string) {
	t.Helper()
	dir := t.TempDir()
	sources := domain.SourceSettings{
		AgendaItems:   filepath.Join(dir, "agenda_items.json"),
		People:        filepath.Join(dir, "people.json"),
		Organizations: filepath.Join(dir, "organizations.json"),
		Memberships:   filepath.Join(dir, "memberships.json"),
	}
	return sources, dir
}

func TestWatcher_ReportsSourceWrites(t *testing.T) {
	sources, _ := testSources(t)

	w, err := New(sources)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(sources.AgendaItems, []byte(`{"data": []}`), 0644)
	}()

	select {
	case change := <-changes:
		assert.Equal(t, domain.CollectionAgendaItems, change.Collection)
		assert.Equal(t, sources.AgendaItems, change.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for source change event")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	sources, dir := testSources(t)

	w, err := New(sources)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case change := <-changes:
		t.Fatalf("unexpected change event: %+v", change)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ClosesChannelOnCancel(t *testing.T) {
	sources, _ := testSources(t)

	w, err := New(sources)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestWatcher_RequiresConfiguredSources(t *testing.T) {
	_, err := New(domain.SourceSettings{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWatcher_RejectsMissingDirectory(t *testing.T) {
	_, err := New(domain.SourceSettings{
		AgendaItems: "/nonexistent/dir/agenda_items.json",
	})
	assert.Error(t, err)
}
