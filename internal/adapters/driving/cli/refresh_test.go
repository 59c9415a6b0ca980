package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCmd_ReloadsSources(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "refresh")

	require.NoError(t, err)
	assert.Contains(t, out, "re-parsed")
}

func TestRefreshCmd_WithoutServices(t *testing.T) {
	servicesReady = true
	defer func() { servicesReady = false }()

	_, err := execute(t, "refresh")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
