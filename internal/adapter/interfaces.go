// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// kenv vendor API.
//
// The primary abstraction is [VendorAdapter], which decouples the service
// layer from HTTP. The package ships a REST implementation
// ([NewHTTPVendorAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/kenv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vendor_adapter_mock.go -package=mock

// VendorAdapter defines communication with the kenv vendor API. Every call
// except DownloadFile authenticates with the shared secret passed as the
// "secret" query parameter.
type VendorAdapter interface {
	// FetchCatalog returns the items advertised by GET /api/client, in the
	// order the vendor sent them.
	FetchCatalog(ctx context.Context) ([]models.CatalogItem, error)

	// FreeDownload resolves the archive URL of a free item via
	// GET /api/client/<name>.
	FreeDownload(ctx context.Context, itemName string) (models.DownloadLink, error)

	// PaidDownload resolves the archive URL of a paid item using previously
	// stored credentials via GET /api/client/<name>?licenseKey&instanceId.
	PaidDownload(ctx context.Context, req models.PaidDownloadRequest) (models.DownloadLink, error)

	// Activate binds a license key to the hashed machine identity via
	// POST /api/client/<name>?licenseKey&instanceName. It returns the archive
	// URL together with the server-assigned instance id.
	Activate(ctx context.Context, req models.ActivationRequest) (models.Activation, error)

	// ReportError posts a diagnostic to /api/client/<name>/error-reporting.
	ReportError(ctx context.Context, report models.ErrorReport) error

	// DownloadFile streams the body of url into the file at dst, creating or
	// truncating it. The shared secret is not sent.
	DownloadFile(ctx context.Context, url, dst string) error
}
