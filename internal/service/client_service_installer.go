package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
)

type kenvInstaller struct {
	catalog  CatalogService
	license  LicenseService
	install  InstallService
	reporter ErrorReporter
	prompter Prompter
}

func NewKenvInstaller(catalog CatalogService, license LicenseService, install InstallService, reporter ErrorReporter, prompter Prompter) KenvInstaller {
	return &kenvInstaller{
		catalog:  catalog,
		license:  license,
		install:  install,
		reporter: reporter,
		prompter: prompter,
	}
}

// Run installs the kenv called name, or the one the user picks when name is
// empty. The overwrite question comes before any license or download call,
// so declining it costs nothing.
func (k *kenvInstaller) Run(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	item, err := k.catalog.Select(ctx, name)
	if err != nil {
		return "", err
	}

	if err = k.install.ConfirmOverwrite(ctx, item); err != nil {
		return "", err
	}

	url, err := k.license.ResolveDownloadURL(ctx, item)
	if err != nil {
		k.offerReport(ctx, item, err)
		return "", err
	}
	log.Debug().Str("item", item.Name).Msg("download url resolved")

	path, err := k.install.Install(ctx, item, url)
	if err != nil {
		k.offerReport(ctx, item, err)
		return "", err
	}

	k.prompter.Notify(ctx, fmt.Sprintf(app.MsgInstalled, item.DisplayTitle(), path))
	return path, nil
}

func (k *kenvInstaller) offerReport(ctx context.Context, item models.CatalogItem, err error) {
	if isQuiet(err) || errors.Is(err, ErrLicenseKeyRequired) || errors.Is(err, context.Canceled) {
		return
	}

	report := models.ErrorReport{ItemName: item.Name}
	var reportableErr *ReportableError
	if errors.As(err, &reportableErr) {
		report = reportableErr.Report
	}

	k.reporter.Offer(ctx, item, report, err)
}
