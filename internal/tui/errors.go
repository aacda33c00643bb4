// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/service"
)

// humanizeError turns err into the line shown to the user. Network failures
// collapse into a single message; everything else is shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, config.ErrMissingSecret):
		return "No vendor secret configured. Pass --secret or set KENV_APP_SECRET."
	case errors.Is(err, service.ErrVendorRejected):
		return "The vendor rejected this client. Check the configured secret."
	case errors.Is(err, service.ErrActivationLimitReached):
		return "This license is active on too many machines."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the vendor API is unreachable."
	}

	return err.Error()
}
