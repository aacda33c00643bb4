package service

import (
	"context"

	"github.com/MKhiriev/kenv-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Prompter is the interactive capability the services need from the UI.
// Every blocking method returns [ErrUserAborted] when the user cancels.
type Prompter interface {
	// Choose shows choices under title and returns the index picked.
	Choose(ctx context.Context, title string, choices []models.Choice) (int, error)

	// PromptText asks a single-line question and returns the answer as typed.
	PromptText(ctx context.Context, prompt models.TextPrompt) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, question string) (bool, error)

	// Notify shows msg without waiting for input.
	Notify(ctx context.Context, msg string)
}

// IDGenerator produces unique identifiers for staging directories.
type IDGenerator interface {
	Generate() string
}

// CatalogService fetches the vendor catalog and lets the user pick an item.
type CatalogService interface {
	// List returns the catalog in vendor order.
	List(ctx context.Context) ([]models.CatalogItem, error)

	// Select returns the item called name, or asks the user to pick one when
	// name is empty. Returns [ErrItemNotFound] for an unknown name and
	// [ErrEmptyCatalog] when there is nothing to choose from.
	Select(ctx context.Context, name string) (models.CatalogItem, error)
}

// LicenseService turns a catalog item into a download URL, running the
// license activation handshake for paid items.
type LicenseService interface {
	// ResolveDownloadURL returns the archive URL of item. Free items use the
	// free endpoint; paid items use stored credentials or activate a license
	// key entered by the user and persist the resulting credentials.
	//
	// Failures are returned as *[ReportableError] carrying what is known for
	// an error report. A failed paid download deletes the stored credentials.
	ResolveDownloadURL(ctx context.Context, item models.CatalogItem) (string, error)

	// Forget deletes the stored credentials of itemName. Returns
	// [ErrNoCredentials] when there are none.
	Forget(ctx context.Context, itemName string) error

	// Licensed returns the names of items with stored credentials.
	Licensed(ctx context.Context) (map[string]bool, error)
}

// InstallService places a downloaded kenv under the kenvs directory.
type InstallService interface {
	// ConfirmOverwrite asks before an existing install of item is replaced.
	// It returns [ErrOverwriteDeclined] when the user says no and touches
	// nothing on disk.
	ConfirmOverwrite(ctx context.Context, item models.CatalogItem) error

	// Install downloads url next to the download directory, extracts it into
	// a staging directory and swaps it into place. It returns the install
	// path. The downloaded archive is removed whatever the outcome.
	Install(ctx context.Context, item models.CatalogItem, url string) (string, error)

	// TargetDir returns the install directory of itemName.
	TargetDir(itemName string) string
}

// ErrorReporter offers to send a diagnostic report after a failure.
type ErrorReporter interface {
	// Offer asks the user whether to report cause for item and sends the
	// report if they agree. It never fails; delivery problems are logged.
	Offer(ctx context.Context, item models.CatalogItem, report models.ErrorReport, cause error)
}

// RelocateService moves a script folder into the kenvs directory.
type RelocateService interface {
	// Relocate moves src (asked for when empty) to kenvs/<name> and returns
	// the destination.
	Relocate(ctx context.Context, src string) (string, error)
}

// KenvInstaller runs the full install flow: select, confirm overwrite,
// resolve the download URL, install, notify.
type KenvInstaller interface {
	Run(ctx context.Context, name string) (string, error)
}
