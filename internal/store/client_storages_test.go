package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientStorages_SQLiteRoundTrip runs the credential store against a
// real SQLite file created under a nested, not yet existing directory.
func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "db", "kenv-keeper.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	creds := storages.Credentials

	_, err = creds.Get(ctx, "bar")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)

	require.NoError(t, creds.Set(ctx, models.Credentials{ItemName: "bar", LicenseKey: "ABC123", InstanceID: "xyz"}))
	got, err := creds.Get(ctx, "bar")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", got.LicenseKey)
	assert.Equal(t, "xyz", got.InstanceID)
	require.NotNil(t, got.CreatedAt)

	require.NoError(t, creds.Set(ctx, models.Credentials{ItemName: "bar", LicenseKey: "DEF456", InstanceID: "uvw"}))
	replaced, err := creds.Get(ctx, "bar")
	require.NoError(t, err)
	assert.Equal(t, "uvw", replaced.InstanceID)
	assert.True(t, got.CreatedAt.Equal(*replaced.CreatedAt))

	list, err := creds.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, creds.Delete(ctx, "bar"))
	_, err = creds.Get(ctx, "bar")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
