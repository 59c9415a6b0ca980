package oparl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReader_ReadAgendaItems(t *testing.T) {
	path := writeSource(t, "agenda.json", `{"data": [
		{"id": "a1", "name": "Haushaltsplan 2023", "created": "2023-01-15T10:30:00+01:00", "result": "Beschlossen"},
		{"id": "a2", "name": "Radwegeausbau", "created": "2023-02-01T09:00:00", "result": null},
		{"id": "a3", "name": "Kita-Plätze", "created": "2023-03-10", "extra": "ignored"}
	]}`)

	items, err := NewReader().ReadAgendaItems(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, items, 3)

	// Offset-carrying timestamps normalise to UTC.
	assert.Equal(t, time.Date(2023, 1, 15, 9, 30, 0, 0, time.UTC), items[0].Created)
	require.NotNil(t, items[0].Result)
	assert.Equal(t, "Beschlossen", *items[0].Result)

	// Naive timestamps are taken as UTC.
	assert.Equal(t, time.Date(2023, 2, 1, 9, 0, 0, 0, time.UTC), items[1].Created)
	assert.Nil(t, items[1].Result)

	// Date-only timestamps parse too; unknown fields are ignored.
	assert.Equal(t, time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), items[2].Created)
}

func TestReader_ReadAgendaItems_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := NewReader().ReadAgendaItems(context.Background(), path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
}

func TestReader_ReadAgendaItems_MalformedDocument(t *testing.T) {
	path := writeSource(t, "agenda.json", `{"data": [}`)

	_, err := NewReader().ReadAgendaItems(context.Background(), path)

	assert.True(t, errors.Is(err, domain.ErrSourceMalformed))
}

func TestReader_ReadAgendaItems_MissingRequiredKey(t *testing.T) {
	path := writeSource(t, "agenda.json", `{"data": [
		{"id": "a1", "name": "ok", "created": "2023-01-01"},
		{"id": "a2", "created": "2023-01-02"}
	]}`)

	_, err := NewReader().ReadAgendaItems(context.Background(), path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceMalformed))

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, 1, loadErr.Record)
	assert.Contains(t, err.Error(), "name")
}

func TestReader_ReadAgendaItems_BadTimestamp(t *testing.T) {
	path := writeSource(t, "agenda.json", `{"data": [
		{"id": "a1", "name": "x", "created": "gestern"}
	]}`)

	_, err := NewReader().ReadAgendaItems(context.Background(), path)

	assert.True(t, errors.Is(err, domain.ErrSourceMalformed))
}

func TestReader_ReadAgendaItems_EmptyData(t *testing.T) {
	path := writeSource(t, "agenda.json", `{"data": []}`)

	items, err := NewReader().ReadAgendaItems(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReader_ReadPeople(t *testing.T) {
	path := writeSource(t, "people.json", `{"data": [
		{"id": "p1", "name": "Alice"},
		{"id": "p2"}
	]}`)

	people, err := NewReader().ReadPeople(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Alice", people[0].Name)
	assert.Empty(t, people[1].Name)
}

func TestReader_ReadOrganizations(t *testing.T) {
	path := writeSource(t, "orgs.json", `{"data": [
		{"id": "o1", "name": "Fraktion der Grünen"}
	]}`)

	orgs, err := NewReader().ReadOrganizations(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Fraktion der Grünen", orgs[0].Name)
}

func TestReader_ReadMemberships(t *testing.T) {
	path := writeSource(t, "memberships.json", `{"data": [
		{"id": "m1", "person": "p1", "organization": "o1", "role": "Mitglied", "startDate": "2019-07-01"},
		{"id": "m2"}
	]}`)

	memberships, err := NewReader().ReadMemberships(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, memberships, 2)
	assert.Equal(t, "p1", memberships[0].PersonID)
	assert.Equal(t, "o1", memberships[0].OrganizationID)
	assert.Equal(t, "Mitglied", memberships[0].Role)
	assert.Equal(t, "2019-07-01", memberships[0].StartDate)
	assert.Empty(t, memberships[1].PersonID)
}

func TestReader_Fingerprint(t *testing.T) {
	path := writeSource(t, "people.json", `{"data": []}`)

	fp, err := NewReader().Fingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, path, fp.Path)
	assert.Equal(t, int64(12), fp.Size)

	// Rewriting the file changes the fingerprint.
	require.NoError(t, os.WriteFile(path, []byte(`{"data": [1]}`), 0600))
	fp2, err := NewReader().Fingerprint(path)
	require.NoError(t, err)
	assert.NotEqual(t, fp.Key(), fp2.Key())
}

func TestReader_Fingerprint_MissingFile(t *testing.T) {
	_, err := NewReader().Fingerprint(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))
}
