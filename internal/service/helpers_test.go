package service

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/mock"
	"github.com/MKhiriev/kenv-keeper/internal/store"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInstanceName = "5f1d0c0ffee"

type testEnv struct {
	ctrl     *gomock.Controller
	adapter  *mock.MockVendorAdapter
	prompter *mock.MockPrompter
	creds    store.CredentialStore
	cfg      config.ClientApp
	svcs     *ClientServices
}

// newTestEnv wires the real services to mocked vendor and prompter, an
// in-memory credential store and temporary root and download directories.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	base := t.TempDir()
	cfg := config.ClientApp{
		Secret:      "s3cr3t",
		Root:        filepath.Join(base, ".kenv"),
		DownloadDir: filepath.Join(base, "Downloads"),
	}

	env := &testEnv{
		ctrl:     ctrl,
		adapter:  mock.NewMockVendorAdapter(ctrl),
		prompter: mock.NewMockPrompter(ctrl),
		creds:    store.NewMemoryCredentialStore(),
		cfg:      cfg,
	}
	env.svcs = NewClientServices(env.creds, env.adapter, env.prompter, cfg)
	env.svcs.LicenseService.(*clientLicenseService).instanceName = func() (string, error) {
		return testInstanceName, nil
	}

	return env
}

func (e *testEnv) target(name string) string {
	return filepath.Join(e.cfg.KenvsDir(), name)
}

// serveZip makes DownloadFile write a zip with the given name → content
// entries to its destination.
func serveZip(t *testing.T, entries map[string]string) func(context.Context, string, string) error {
	t.Helper()
	return func(_ context.Context, _ string, dst string) error {
		f, err := os.Create(dst)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		for name, content := range entries {
			w, err := zw.Create(name)
			require.NoError(t, err)
			_, err = w.Write([]byte(content))
			require.NoError(t, err)
		}
		require.NoError(t, zw.Close())
		return f.Close()
	}
}

func paidItem(name string) models.CatalogItem {
	price := models.Price("10")
	return models.CatalogItem{Name: name, Title: "Bar kit", Price: &price, PurchaseLink: "https://vendor.example.com/buy/" + name}
}

func freeItem(name string) models.CatalogItem {
	return models.CatalogItem{Name: name, Title: "Foo kit"}
}

func instanceNameFor(t *testing.T, username string) string {
	t.Helper()
	name, err := utils.InstanceName(username)
	require.NoError(t, err)
	return name
}

// listDir returns the entry names of dir.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func errNotFoundForTest() error {
	return fmt.Errorf("lookup: %w", store.ErrCredentialsNotFound)
}
