package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
)

// Collection labels used in the snapshots metadata table.
const (
	collectionAgendaItems = "agenda_items"
	collectionMemberRows  = "member_rows"
)

// Store is a SQLite-backed snapshot store. Derived agenda items and
// joined member rows are persisted per source fingerprint.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.SnapshotStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ratsdata/data/snapshots.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ratsdata", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshots.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveAgendaItems persists derived agenda items under the given
// fingerprint key, replacing any previous snapshot for that key.
func (s *Store) SaveAgendaItems(ctx context.Context, key string, items []domain.AgendaItem) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := replaceSnapshot(ctx, tx, key, collectionAgendaItems, "agenda_item_snapshots"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO agenda_item_snapshots (fingerprint, position, item_id, name, created, result, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		var result sql.NullString
		if item.Result != nil {
			result = sql.NullString{String: *item.Result, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, key, i, item.ID, item.Name,
			item.Created.UTC(), result, item.Status); err != nil {
			return fmt.Errorf("saving agenda item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetAgendaItems retrieves the agenda item snapshot for a fingerprint
// key. Returns domain.ErrNotFound when no snapshot exists.
func (s *Store) GetAgendaItems(ctx context.Context, key string) ([]domain.AgendaItem, error) {
	if err := s.checkSnapshot(ctx, key, collectionAgendaItems); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, name, created, result, status
		FROM agenda_item_snapshots WHERE fingerprint = ?
		ORDER BY position
	`, key)
	if err != nil {
		return nil, fmt.Errorf("querying agenda items: %w", err)
	}
	defer rows.Close()

	items := []domain.AgendaItem{}
	for rows.Next() {
		var item domain.AgendaItem
		var created sql.NullTime
		var result sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &created, &result, &item.Status); err != nil {
			return nil, fmt.Errorf("scanning agenda item: %w", err)
		}
		if created.Valid {
			item.Created = created.Time.UTC()
		}
		if result.Valid {
			item.Result = &result.String
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agenda items: %w", err)
	}

	return items, nil
}

// SaveMemberRows persists joined member rows under the given combined
// fingerprint key, replacing any previous snapshot for that key.
func (s *Store) SaveMemberRows(ctx context.Context, key string, rows []domain.MemberRow) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := replaceSnapshot(ctx, tx, key, collectionMemberRows, "member_row_snapshots"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO member_row_snapshots (fingerprint, position, name, organization, role, start_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, key, i, row.Name,
			row.Organization, row.Role, row.StartDate); err != nil {
			return fmt.Errorf("saving member row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetMemberRows retrieves the member row snapshot for a fingerprint
// key. Returns domain.ErrNotFound when no snapshot exists.
func (s *Store) GetMemberRows(ctx context.Context, key string) ([]domain.MemberRow, error) {
	if err := s.checkSnapshot(ctx, key, collectionMemberRows); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, organization, role, start_date
		FROM member_row_snapshots WHERE fingerprint = ?
		ORDER BY position
	`, key)
	if err != nil {
		return nil, fmt.Errorf("querying member rows: %w", err)
	}
	defer rows.Close()

	members := []domain.MemberRow{}
	for rows.Next() {
		var row domain.MemberRow
		if err := rows.Scan(&row.Name, &row.Organization, &row.Role, &row.StartDate); err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}

// Purge removes all stored snapshots.
func (s *Store) Purge(ctx context.Context) error {
	for _, table := range []string{"snapshots", "agenda_item_snapshots", "member_row_snapshots"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("purging %s: %w", table, err)
		}
	}
	return nil
}

// checkSnapshot verifies a snapshot exists for the key and collection.
// The metadata row distinguishes an empty snapshot from a missing one.
func (s *Store) checkSnapshot(ctx context.Context, key, collection string) error {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM snapshots WHERE fingerprint = ? AND collection = ?
	`, key, collection).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking snapshot: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// replaceSnapshot clears previous rows for a key and records fresh
// snapshot metadata inside the given transaction.
func replaceSnapshot(ctx context.Context, tx *sql.Tx, key, collection, table string) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE fingerprint = ?", key); err != nil {
		return fmt.Errorf("clearing previous snapshot: %w", err)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (fingerprint, collection, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(fingerprint, collection) DO UPDATE SET
			saved_at = excluded.saved_at
	`, key, collection, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording snapshot metadata: %w", err)
	}
	return nil
}
