package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
	"github.com/civica-labs/ratsdata-cli/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// cachedAgenda is the memoized agenda items snapshot.
type cachedAgenda struct {
	key   string
	items []domain.AgendaItem
}

// cachedMembers is the memoized membership join snapshot.
type cachedMembers struct {
	key  string
	rows []domain.MemberRow
}

// DatasetService loads the OParl collections, memoizes them keyed by source
// fingerprint, and keeps the persistent snapshot cache in step. Loaded
// snapshots are immutable; concurrent readers share them freely.
type DatasetService struct {
	reader    driven.CollectionReader
	snapshots driven.SnapshotStore
	settings  *domain.AppSettings

	mu      sync.Mutex
	agenda  *cachedAgenda
	members *cachedMembers
}

// NewDatasetService creates a new dataset service.
// The snapshots parameter is optional (can be nil); without it the service
// still memoizes in process but re-parses after a restart.
func NewDatasetService(
	reader driven.CollectionReader,
	snapshots driven.SnapshotStore,
	settings *domain.AppSettings,
) *DatasetService {
	return &DatasetService{
		reader:    reader,
		snapshots: snapshots,
		settings:  settings,
	}
}

// AgendaItems returns the agenda items collection with derived statuses.
// The parsed collection is memoized; a changed source fingerprint triggers
// a re-load on the next call.
func (s *DatasetService) AgendaItems(ctx context.Context) ([]domain.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.settings.Sources.AgendaItems
	if path == "" {
		return nil, fmt.Errorf("agenda items source not configured: %w", domain.ErrInvalidInput)
	}

	fp, err := s.reader.Fingerprint(path)
	if err != nil {
		return nil, err
	}
	key := fp.Key()

	if s.agenda != nil && s.agenda.key == key {
		logger.Debug("Agenda items: memoized snapshot hit (%d items)", len(s.agenda.items))
		return s.agenda.items, nil
	}

	if s.snapshots != nil {
		items, err := s.snapshots.GetAgendaItems(ctx, key)
		if err == nil {
			logger.Debug("Agenda items: snapshot store hit (%d items)", len(items))
			s.agenda = &cachedAgenda{key: key, items: items}
			return items, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Agenda items: snapshot store read failed: %v", err)
		}
	}

	logger.Info("Agenda items: parsing %s", path)
	raw, err := s.reader.ReadAgendaItems(ctx, path)
	if err != nil {
		return nil, err
	}
	items := domain.DeriveStatuses(raw)

	s.agenda = &cachedAgenda{key: key, items: items}
	if s.snapshots != nil {
		if err := s.snapshots.SaveAgendaItems(ctx, key, items); err != nil {
			logger.Warn("Agenda items: snapshot store write failed: %v", err)
		}
	}
	return items, nil
}

// MemberRows returns the joined membership rows. The join output is
// memoized under a fingerprint spanning all three people-model sources, so
// touching any one of them invalidates the cached join.
func (s *DatasetService) MemberRows(ctx context.Context) ([]domain.MemberRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.settings.Sources
	if src.People == "" || src.Organizations == "" || src.Memberships == "" {
		return nil, fmt.Errorf("people-model sources not configured: %w", domain.ErrInvalidInput)
	}

	var fps []domain.SourceFingerprint
	for _, path := range []string{src.Memberships, src.People, src.Organizations} {
		fp, err := s.reader.Fingerprint(path)
		if err != nil {
			return nil, err
		}
		fps = append(fps, fp)
	}
	key := domain.CombineFingerprints(fps...)

	if s.members != nil && s.members.key == key {
		logger.Debug("Members: memoized snapshot hit (%d rows)", len(s.members.rows))
		return s.members.rows, nil
	}

	if s.snapshots != nil {
		rows, err := s.snapshots.GetMemberRows(ctx, key)
		if err == nil {
			logger.Debug("Members: snapshot store hit (%d rows)", len(rows))
			s.members = &cachedMembers{key: key, rows: rows}
			return rows, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Members: snapshot store read failed: %v", err)
		}
	}

	logger.Info("Members: parsing and joining %s", src.Memberships)
	memberships, err := s.reader.ReadMemberships(ctx, src.Memberships)
	if err != nil {
		return nil, err
	}
	people, err := s.reader.ReadPeople(ctx, src.People)
	if err != nil {
		return nil, err
	}
	organizations, err := s.reader.ReadOrganizations(ctx, src.Organizations)
	if err != nil {
		return nil, err
	}

	rows := domain.JoinMembers(memberships, people, organizations, s.settings.Members.OrganizationPrefixes)

	s.members = &cachedMembers{key: key, rows: rows}
	if s.snapshots != nil {
		if err := s.snapshots.SaveMemberRows(ctx, key, rows); err != nil {
			logger.Warn("Members: snapshot store write failed: %v", err)
		}
	}
	return rows, nil
}

// Invalidate drops the in-process memoized snapshots.
func (s *DatasetService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agenda = nil
	s.members = nil
	logger.Debug("Dataset: memoized snapshots invalidated")
}

// Refresh drops all caches and reloads every collection. A failed category
// keeps the other categories loadable; all failures are reported together.
func (s *DatasetService) Refresh(ctx context.Context) error {
	s.Invalidate()

	if s.snapshots != nil {
		s.mu.Lock()
		err := s.snapshots.Purge(ctx)
		s.mu.Unlock()
		if err != nil {
			return fmt.Errorf("purging snapshot store: %w", err)
		}
	}

	var errs []error
	if _, err := s.AgendaItems(ctx); err != nil {
		errs = append(errs, fmt.Errorf("decisions: %w", err))
	}
	if _, err := s.MemberRows(ctx); err != nil {
		errs = append(errs, fmt.Errorf("members: %w", err))
	}
	return errors.Join(errs...)
}
