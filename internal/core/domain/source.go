package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Collection identifies one of the OParl source collections.
type Collection string

// Source collections.
const (
	// CollectionAgendaItems holds the agenda items / decisions export.
	CollectionAgendaItems Collection = "agenda_items"

	// CollectionPeople holds the people export.
	CollectionPeople Collection = "people"

	// CollectionOrganizations holds the organizations export.
	CollectionOrganizations Collection = "organizations"

	// CollectionMemberships holds the memberships export.
	CollectionMemberships Collection = "memberships"
)

// IsValid returns true if the collection name is recognised.
func (c Collection) IsValid() bool {
	switch c {
	case CollectionAgendaItems, CollectionPeople, CollectionOrganizations, CollectionMemberships:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Collection) String() string {
	return string(c)
}

// SourceChange reports that a source file was written, created, or
// removed on disk.
type SourceChange struct {
	// Collection is the collection the changed file backs.
	Collection Collection

	// Path is the file path that changed.
	Path string
}

// SourceFingerprint identifies one snapshot of a source file. Two loads of
// the same path with equal fingerprints are guaranteed to see the same
// bytes, so parsed results may be reused.
type SourceFingerprint struct {
	// Path is the source file path.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file modification time.
	ModTime time.Time
}

// Key returns a stable cache key for the fingerprint.
func (f SourceFingerprint) Key() string {
	return fmt.Sprintf("%s|%d|%d", f.Path, f.Size, f.ModTime.UTC().UnixNano())
}

// CombineFingerprints derives a single cache key from several source
// fingerprints, for results joined across files (the membership join spans
// three sources).
func CombineFingerprints(fps ...SourceFingerprint) string {
	keys := make([]string, len(fps))
	for i, fp := range fps {
		keys[i] = fp.Key()
	}
	sum := sha256.Sum256([]byte(strings.Join(keys, "\n")))
	return hex.EncodeToString(sum[:])
}
