package oparl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.CollectionReader = (*Reader)(nil)

// Timestamp layouts seen in the exports. Offsets normalise to UTC; naive
// timestamps are taken as UTC so mixed records stay comparable.
var createdLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Reader parses OParl JSON exports from the local filesystem.
type Reader struct{}

// NewReader creates a new export reader.
func NewReader() *Reader {
	return &Reader{}
}

// Fingerprint returns the current fingerprint of the file at path.
func (r *Reader) Fingerprint(path string) (domain.SourceFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SourceFingerprint{}, domain.NewLoadError(path, domain.ErrSourceNotFound)
		}
		return domain.SourceFingerprint{}, domain.NewLoadError(path, err)
	}
	return domain.SourceFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// envelope is the outer document shape common to every export.
type envelope struct {
	Data []json.RawMessage `json:"data"`
}

// readEnvelope loads and unwraps the {"data": [...]} document at path.
func readEnvelope(path string) ([]json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewLoadError(path, domain.ErrSourceNotFound)
		}
		return nil, domain.NewLoadError(path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, domain.NewLoadError(path, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err))
	}
	return env.Data, nil
}

// agendaRecord is the raw agenda item shape. Pointer fields distinguish
// absent keys from empty values.
type agendaRecord struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Created *string `json:"created"`
	Result  *string `json:"result"`
}

// ReadAgendaItems parses the agenda items export.
func (r *Reader) ReadAgendaItems(ctx context.Context, path string) ([]domain.AgendaItem, error) {
	records, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AgendaItem, 0, len(records))
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec agendaRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, domain.NewRecordError(path, i, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err))
		}
		if err := requireFields(map[string]*string{
			"id": rec.ID, "name": rec.Name, "created": rec.Created,
		}); err != nil {
			return nil, domain.NewRecordError(path, i, err)
		}

		created, err := parseCreated(*rec.Created)
		if err != nil {
			return nil, domain.NewRecordError(path, i, err)
		}

		items = append(items, domain.AgendaItem{
			ID:      *rec.ID,
			Name:    *rec.Name,
			Created: created,
			Result:  rec.Result,
		})
	}
	return items, nil
}

// personRecord is the raw person shape.
type personRecord struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// ReadPeople parses the people export.
func (r *Reader) ReadPeople(ctx context.Context, path string) ([]domain.Person, error) {
	records, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	people := make([]domain.Person, 0, len(records))
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec personRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, domain.NewRecordError(path, i, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err))
		}
		if err := requireFields(map[string]*string{"id": rec.ID}); err != nil {
			return nil, domain.NewRecordError(path, i, err)
		}

		person := domain.Person{ID: *rec.ID}
		if rec.Name != nil {
			person.Name = *rec.Name
		}
		people = append(people, person)
	}
	return people, nil
}

// organizationRecord is the raw organization shape.
type organizationRecord struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// ReadOrganizations parses the organizations export.
func (r *Reader) ReadOrganizations(ctx context.Context, path string) ([]domain.Organization, error) {
	records, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	organizations := make([]domain.Organization, 0, len(records))
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec organizationRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, domain.NewRecordError(path, i, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err))
		}
		if err := requireFields(map[string]*string{"id": rec.ID}); err != nil {
			return nil, domain.NewRecordError(path, i, err)
		}

		org := domain.Organization{ID: *rec.ID}
		if rec.Name != nil {
			org.Name = *rec.Name
		}
		organizations = append(organizations, org)
	}
	return organizations, nil
}

// membershipRecord is the raw membership shape.
type membershipRecord struct {
	ID           *string `json:"id"`
	Person       *string `json:"person"`
	Organization *string `json:"organization"`
	Role         *string `json:"role"`
	StartDate    *string `json:"startDate"`
}

// ReadMemberships parses the memberships export.
func (r *Reader) ReadMemberships(ctx context.Context, path string) ([]domain.Membership, error) {
	records, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	memberships := make([]domain.Membership, 0, len(records))
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec membershipRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, domain.NewRecordError(path, i, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err))
		}
		if err := requireFields(map[string]*string{"id": rec.ID}); err != nil {
			return nil, domain.NewRecordError(path, i, err)
		}

		m := domain.Membership{ID: *rec.ID}
		if rec.Person != nil {
			m.PersonID = *rec.Person
		}
		if rec.Organization != nil {
			m.OrganizationID = *rec.Organization
		}
		if rec.Role != nil {
			m.Role = *rec.Role
		}
		if rec.StartDate != nil {
			m.StartDate = *rec.StartDate
		}
		memberships = append(memberships, m)
	}
	return memberships, nil
}

// requireFields reports the missing required keys of a record.
func requireFields(fields map[string]*string) error {
	var missing []string
	for name, value := range fields {
		if value == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: missing required keys: %s",
		domain.ErrSourceMalformed, strings.Join(missing, ", "))
}

// parseCreated parses a created timestamp and normalises it to UTC.
func parseCreated(value string) (time.Time, error) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable created timestamp %q",
		domain.ErrSourceMalformed, value)
}
