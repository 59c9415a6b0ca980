package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

func TestMembersCmd_Use(t *testing.T) {
	assert.Equal(t, "members", membersCmd.Use)
}

func TestMembersCmd_ListsJoinedRows(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "members")

	require.NoError(t, err)
	assert.Contains(t, out, "Alice Weber")
	assert.Contains(t, out, "Gruenen")
	assert.NotContains(t, out, "Fraktion der Gruenen")
	assert.Contains(t, out, domain.Unknown)
	assert.Contains(t, out, "3 memberships")
}

func TestMembersCmd_OrganizationFilter(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "members", "--org", "SPD")

	require.NoError(t, err)
	assert.Contains(t, out, "Bruno Keller")
	assert.NotContains(t, out, "Alice Weber")
	assert.Contains(t, out, "1 memberships")
}

func TestMembersCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "members", "--json")

	require.NoError(t, err)
	var rows []domain.MemberRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, domain.Unknown, rows[2].Name)
}

func TestMembersCmd_WithoutServices(t *testing.T) {
	servicesReady = true
	defer func() { servicesReady = false }()

	_, err := execute(t, "members")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
