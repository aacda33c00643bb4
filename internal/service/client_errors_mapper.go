// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/archive"
)

// mapAdapterError translates a transport error of a catalog or download-link
// call into a service error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrVendorRejected, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		return err
	case errors.Is(err, context.Canceled):
		return err
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
		return err
	}

	// 5xx, timeouts and connection errors
	return fmt.Errorf("%w: %w", ErrVendorUnavailable, err)
}

// mapActivationError translates an activation failure.
func mapActivationError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrConflict), errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrActivationLimitReached, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrLicenseInvalid, err)
	}

	return mapAdapterError(err)
}

// ErrorCode returns the short code sent as "error" in error reports.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrActivationLimitReached):
		return "activation_limit"
	case errors.Is(err, ErrLicenseInvalid):
		return "license_invalid"
	case errors.Is(err, ErrInstanceInvalid):
		return "instance_invalid"
	case errors.Is(err, ErrVendorRejected):
		return "unauthorized"
	case errors.Is(err, ErrItemNotFound):
		return "not_found"
	case errors.Is(err, ErrVendorUnavailable):
		return "vendor_unavailable"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, archive.ErrUnsafePath):
		return "unsafe_archive"
	case errors.Is(err, ErrExtractFailed):
		return "extract_failed"
	case errors.Is(err, ErrDownloadFailed):
		return "download_failed"
	default:
		return "unknown"
	}
}
