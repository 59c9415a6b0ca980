package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// memberFixture covers two fractions plus a membership whose person and
// organization references dangle.
func memberFixture() *MemberService {
	reader := newFakeReader()
	reader.people = []domain.Person{
		{ID: "p1", Name: "Alice Weber"},
		{ID: "p2", Name: "Bruno Keller"},
	}
	reader.orgs = []domain.Organization{
		{ID: "o1", Name: "Fraktion der Grünen"},
		{ID: "o2", Name: "Fraktion der SPD"},
	}
	reader.memberships = []domain.Membership{
		{ID: "m1", PersonID: "p1", OrganizationID: "o1", Role: "Vorsitz", StartDate: "2020-11-01"},
		{ID: "m2", PersonID: "p2", OrganizationID: "o2", Role: "Mitglied", StartDate: "2019-06-15"},
		{ID: "m3", PersonID: "p9", OrganizationID: "o9"},
	}

	dataset := NewDatasetService(reader, nil, testSettings())
	return NewMemberService(dataset)
}

func TestMemberService_Load(t *testing.T) {
	svc := memberFixture()

	rows, err := svc.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Grünen", rows[0].Organization)
	assert.Equal(t, "SPD", rows[1].Organization)
	assert.Equal(t, domain.Unknown, rows[2].Name)
	assert.Equal(t, domain.Unknown, rows[2].Organization)
}

func TestMemberService_QueryOrganizations(t *testing.T) {
	ctx := context.Background()
	svc := memberFixture()

	t.Run("nil set means no filter", func(t *testing.T) {
		rows, err := svc.Query(ctx, domain.MemberQuery{})
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("empty set selects nothing", func(t *testing.T) {
		rows, err := svc.Query(ctx, domain.MemberQuery{Organizations: []string{}})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("filters on display names", func(t *testing.T) {
		rows, err := svc.Query(ctx, domain.MemberQuery{Organizations: []string{"Grünen"}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Alice Weber", rows[0].Name)
	})

	t.Run("unknown bucket is selectable", func(t *testing.T) {
		rows, err := svc.Query(ctx, domain.MemberQuery{Organizations: []string{domain.Unknown}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.Unknown, rows[0].Name)
	})
}
