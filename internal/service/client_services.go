package service

import (
	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/store"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/internal/validators"
)

type ClientServices struct {
	CatalogService  CatalogService
	LicenseService  LicenseService
	InstallService  InstallService
	ErrorReporter   ErrorReporter
	RelocateService RelocateService
	KenvInstaller   KenvInstaller
}

func NewClientServices(credentials store.CredentialStore, vendor adapter.VendorAdapter, prompter Prompter, cfg config.ClientApp) *ClientServices {
	validator := validators.NewCatalogValidator()

	catalogSvc := NewClientCatalogService(vendor, prompter, validator)
	licenseSvc := NewClientLicenseService(credentials, vendor, prompter, validator)
	installSvc := NewClientInstallService(vendor, prompter, utils.NewUUIDGenerator(), cfg)
	reporter := NewClientErrorReporter(vendor, prompter)

	return &ClientServices{
		CatalogService:  catalogSvc,
		LicenseService:  licenseSvc,
		InstallService:  installSvc,
		ErrorReporter:   reporter,
		RelocateService: NewClientRelocateService(prompter, cfg),
		KenvInstaller:   NewKenvInstaller(catalogSvc, licenseSvc, installSvc, reporter, prompter),
	}
}
