package service

import (
	"errors"

	"github.com/MKhiriev/kenv-keeper/models"
)

var (
	// ErrUserAborted is returned by a [Prompter] when the user cancels.
	ErrUserAborted = errors.New("aborted by user")

	ErrOverwriteDeclined = errors.New("existing install kept")
	ErrEmptyCatalog      = errors.New("vendor catalog is empty")
	ErrItemNotFound      = errors.New("kenv not found in catalog")
	ErrInvalidName       = errors.New("invalid kenv name")
	ErrNoCredentials     = errors.New("no stored license for this kenv")

	ErrLicenseKeyRequired     = errors.New("license key is required")
	ErrLicenseInvalid         = errors.New("license key was rejected")
	ErrActivationLimitReached = errors.New("license activation limit reached")
	ErrInstanceInvalid        = errors.New("stored license activation is no longer valid")
	ErrVendorRejected         = errors.New("vendor rejected the client secret")
	ErrVendorUnavailable      = errors.New("vendor API unavailable")

	ErrDownloadFailed = errors.New("download failed")
	ErrExtractFailed  = errors.New("extracting the archive failed")

	ErrDestinationExists = errors.New("destination already exists")

	// ErrMoveFailed marks a relocation failure the user was already told about.
	ErrMoveFailed = errors.New("moving the kenv failed")
)

// ReportableError is a failure the user may report to the vendor. Report
// holds the identifiers known when it happened.
type ReportableError struct {
	Report models.ErrorReport
	Err    error
}

func (e *ReportableError) Error() string {
	return e.Err.Error()
}

func (e *ReportableError) Unwrap() error {
	return e.Err
}

func reportable(report models.ErrorReport, err error) error {
	if err == nil {
		return nil
	}
	return &ReportableError{Report: report, Err: err}
}

// isQuiet reports whether err needs no error report: the user chose it.
func isQuiet(err error) bool {
	return errors.Is(err, ErrUserAborted) || errors.Is(err, ErrOverwriteDeclined)
}
