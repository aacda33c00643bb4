package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGetCredentials(t *testing.T) {
	query, args, err := buildGetCredentials("bar")

	require.NoError(t, err)
	assert.Equal(t, "SELECT item_name, license_key, instance_id, created_at FROM credentials WHERE item_name = ?", query)
	assert.Equal(t, []any{"bar"}, args)
}

func TestBuildListCredentials(t *testing.T) {
	query, args, err := buildListCredentials()

	require.NoError(t, err)
	assert.Equal(t, "SELECT item_name, license_key, instance_id, created_at FROM credentials ORDER BY item_name", query)
	assert.Empty(t, args)
}

func TestBuildUpsertCredentials(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	creds := models.Credentials{ItemName: "bar", LicenseKey: "ABC123", InstanceID: "xyz"}

	query, args, err := buildUpsertCredentials(creds, now)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query,
		"INSERT INTO credentials (item_name,license_key,instance_id,created_at,updated_at) VALUES (?,?,?,?,?) ON CONFLICT (item_name) DO UPDATE SET"))
	assert.NotContains(t, query, "created_at = excluded.created_at")
	assert.Equal(t, []any{"bar", "ABC123", "xyz", now, now}, args)
}

func TestBuildDeleteCredentials(t *testing.T) {
	query, args, err := buildDeleteCredentials("bar")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credentials WHERE item_name = ?", query)
	assert.Equal(t, []any{"bar"}, args)
}
