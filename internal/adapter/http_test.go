// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "s3cr3t"

// newTestAdapter creates an httpVendorAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpVendorAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{Secret: testSecret}

	a, err := NewHTTPVendorAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpVendorAdapter)
}

// newVendor starts a chi router as a fake vendor API.
func newVendor(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── FetchCatalog ──────────────────────────────────────────────────────────────

func TestFetchCatalog_Success(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testSecret, r.URL.Query().Get("secret"))
			assert.Equal(t, "run-7", r.Header.Get(RequestIDHeader))
			_, _ = w.Write([]byte(`{"tools":[{"name":"foo","title":"Foo"},{"name":"bar","price":"10"}]}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	items, err := a.FetchCatalog(utils.WithRunID(context.Background(), "run-7"))

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "foo", items[0].Name)
	assert.True(t, items[0].IsFree())
	assert.Equal(t, "bar", items[1].Name)
	assert.False(t, items[1].IsFree())
}

func TestFetchCatalog_Malformed(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		})
	})

	_, err := newTestAdapter(t, srv.URL).FetchCatalog(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchCatalog_Unauthorized(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad secret", http.StatusUnauthorized)
		})
	})

	_, err := newTestAdapter(t, srv.URL).FetchCatalog(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "bad secret")
}

// ── FreeDownload / PaidDownload ───────────────────────────────────────────────

func TestFreeDownload_Success(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "foo", chi.URLParam(r, "name"))
			q := r.URL.Query()
			assert.Equal(t, testSecret, q.Get("secret"))
			assert.False(t, q.Has("licenseKey"))
			writeJSON(t, w, models.DownloadLink{URL: "https://cdn.example.com/foo.zip"})
		})
	})

	link, err := newTestAdapter(t, srv.URL).FreeDownload(context.Background(), "foo")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/foo.zip", link.URL)
}

func TestFreeDownload_EmptyURL(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{})
		})
	})

	_, err := newTestAdapter(t, srv.URL).FreeDownload(context.Background(), "foo")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPaidDownload_Success(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "bar", chi.URLParam(r, "name"))
			assert.Equal(t, "ABC123", q.Get("licenseKey"))
			assert.Equal(t, "xyz", q.Get("instanceId"))
			writeJSON(t, w, models.DownloadLink{URL: "https://cdn.example.com/bar.zip"})
		})
	})

	link, err := newTestAdapter(t, srv.URL).PaidDownload(context.Background(), models.PaidDownloadRequest{
		ItemName: "bar", LicenseKey: "ABC123", InstanceID: "xyz",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/bar.zip", link.URL)
}

func TestPaidDownload_NotFound(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "instance not found", http.StatusNotFound)
		})
	})

	_, err := newTestAdapter(t, srv.URL).PaidDownload(context.Background(), models.PaidDownloadRequest{ItemName: "bar"})

	assert.ErrorIs(t, err, ErrNotFound)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

// ── Activate ──────────────────────────────────────────────────────────────────

func TestActivate_Success(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Post("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "bar", chi.URLParam(r, "name"))
			assert.Equal(t, "ABC123", q.Get("licenseKey"))
			assert.Equal(t, "hashed", q.Get("instanceName"))
			writeJSON(t, w, models.Activation{URL: "https://cdn.example.com/bar.zip", InstanceID: "xyz"})
		})
	})

	got, err := newTestAdapter(t, srv.URL).Activate(context.Background(), models.ActivationRequest{
		ItemName: "bar", LicenseKey: "ABC123", InstanceName: "hashed",
	})

	require.NoError(t, err)
	assert.Equal(t, "xyz", got.InstanceID)
	assert.Equal(t, "https://cdn.example.com/bar.zip", got.URL)
}

func TestActivate_MissingInstanceID(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Post("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, models.Activation{URL: "https://cdn.example.com/bar.zip"})
		})
	})

	_, err := newTestAdapter(t, srv.URL).Activate(context.Background(), models.ActivationRequest{ItemName: "bar"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestActivate_LimitReached(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Post("/api/client/{name}", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "activation limit reached", http.StatusTooManyRequests)
		})
	})

	_, err := newTestAdapter(t, srv.URL).Activate(context.Background(), models.ActivationRequest{ItemName: "bar"})

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── ReportError ───────────────────────────────────────────────────────────────

func TestReportError_OmitsEmptyFields(t *testing.T) {
	var called bool
	srv := newVendor(t, func(r chi.Router) {
		r.Post("/api/client/{name}/error-reporting", func(w http.ResponseWriter, r *http.Request) {
			called = true
			q := r.URL.Query()
			assert.Equal(t, "foo", chi.URLParam(r, "name"))
			assert.Equal(t, testSecret, q.Get("secret"))
			assert.Equal(t, "me@example.com", q.Get("email"))
			assert.Equal(t, "vendor_unavailable", q.Get("error"))
			assert.Equal(t, "boom & bust", q.Get("errorBody"))
			assert.False(t, q.Has("licenseKey"))
			assert.False(t, q.Has("instanceId"))
			w.WriteHeader(http.StatusNoContent)
		})
	})

	err := newTestAdapter(t, srv.URL).ReportError(context.Background(), models.ErrorReport{
		ItemName: "foo", Code: "vendor_unavailable", Body: "boom & bust", Email: "me@example.com",
	})

	require.NoError(t, err)
	assert.True(t, called)
}

// ── DownloadFile ──────────────────────────────────────────────────────────────

func TestDownloadFile_Success(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/files/foo.zip", func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("secret"))
			_, _ = w.Write([]byte("PK-archive-bytes"))
		})
	})

	dst := filepath.Join(t.TempDir(), "foo.zip")
	err := newTestAdapter(t, "http://unused.invalid").DownloadFile(context.Background(), srv.URL+"/files/foo.zip", dst)

	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "PK-archive-bytes", string(b))
}

func TestDownloadFile_HTTPError(t *testing.T) {
	srv := newVendor(t, func(r chi.Router) {
		r.Get("/files/foo.zip", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "expired link", http.StatusForbidden)
		})
	})

	dst := filepath.Join(t.TempDir(), "foo.zip")
	err := newTestAdapter(t, srv.URL).DownloadFile(context.Background(), srv.URL+"/files/foo.zip", dst)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NoFileExists(t, dst)
}

// ── misc ──────────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://kenv.uffelmann.me/", want: "https://kenv.uffelmann.me"},
		{raw: "kenv.uffelmann.me", want: "https://kenv.uffelmann.me"},
		{raw: "http://localhost:8080", want: "http://localhost:8080"},
		{raw: "  ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusError_UnknownStatus(t *testing.T) {
	err := statusError(http.StatusTeapot, "")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "http 418")
}
