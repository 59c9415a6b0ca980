// Package memory provides in-memory implementations of the driven storage
// ports, used by tests and as the no-persistence fallback.
package memory

import (
	"context"
	"sync"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu     sync.RWMutex
	agenda map[string][]domain.AgendaItem
	rows   map[string][]domain.MemberRow
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		agenda: make(map[string][]domain.AgendaItem),
		rows:   make(map[string][]domain.MemberRow),
	}
}

// SaveAgendaItems stores the parsed agenda items for a fingerprint.
func (s *SnapshotStore) SaveAgendaItems(_ context.Context, key string, items []domain.AgendaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agenda[key] = items
	return nil
}

// GetAgendaItems retrieves agenda items for a fingerprint.
func (s *SnapshotStore) GetAgendaItems(_ context.Context, key string) ([]domain.AgendaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.agenda[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

// SaveMemberRows stores the joined membership rows for a fingerprint.
func (s *SnapshotStore) SaveMemberRows(_ context.Context, key string, rows []domain.MemberRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[key] = rows
	return nil
}

// GetMemberRows retrieves joined membership rows for a fingerprint.
func (s *SnapshotStore) GetMemberRows(_ context.Context, key string) ([]domain.MemberRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.rows[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rows, nil
}

// Purge removes all cached snapshots.
func (s *SnapshotStore) Purge(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agenda = make(map[string][]domain.AgendaItem)
	s.rows = make(map[string][]domain.MemberRow)
	return nil
}
