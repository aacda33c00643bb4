package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/store"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/internal/validators"
	"github.com/MKhiriev/kenv-keeper/models"
)

type clientLicenseService struct {
	credentials store.CredentialStore
	adapter     adapter.VendorAdapter
	prompter    Prompter
	validator   validators.Validator

	// instanceName derives the hashed machine identity.
	instanceName func() (string, error)
}

func NewClientLicenseService(credentials store.CredentialStore, vendor adapter.VendorAdapter, prompter Prompter, validator validators.Validator) LicenseService {
	return &clientLicenseService{
		credentials:  credentials,
		adapter:      vendor,
		prompter:     prompter,
		validator:    validator,
		instanceName: utils.CurrentInstanceName,
	}
}

func (l *clientLicenseService) ResolveDownloadURL(ctx context.Context, item models.CatalogItem) (string, error) {
	if item.IsFree() {
		return l.freeDownload(ctx, item)
	}

	creds, err := l.credentials.Get(ctx, item.Name)
	if err == nil {
		err = l.checkStored(ctx, creds)
	}

	switch {
	case err == nil:
		return l.paidDownload(ctx, creds)
	case errors.Is(err, store.ErrCredentialsNotFound):
		return l.activate(ctx, item)
	default:
		return "", fmt.Errorf("read stored license: %w", err)
	}
}

// checkStored drops a stored record that lacks its license key or instance,
// so the caller falls back to activation.
func (l *clientLicenseService) checkStored(ctx context.Context, creds models.Credentials) error {
	err := l.validator.Validate(ctx, creds, validators.FieldLicenseKey, validators.FieldInstanceID)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn().Err(err).Str("item", creds.ItemName).Msg("stored license is incomplete, activating again")
	if delErr := l.credentials.Delete(ctx, creds.ItemName); delErr != nil {
		return fmt.Errorf("delete incomplete license: %w", delErr)
	}
	return store.ErrCredentialsNotFound
}

func (l *clientLicenseService) freeDownload(ctx context.Context, item models.CatalogItem) (string, error) {
	link, err := l.adapter.FreeDownload(ctx, item.Name)
	if err != nil {
		return "", reportable(models.ErrorReport{ItemName: item.Name}, mapAdapterError(err))
	}

	return link.URL, nil
}

// paidDownload uses stored credentials. Any failure other than cancellation
// invalidates them so the next run activates again instead of replaying a
// stale instance.
func (l *clientLicenseService) paidDownload(ctx context.Context, creds models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	link, err := l.adapter.PaidDownload(ctx, models.PaidDownloadRequest{
		ItemName:   creds.ItemName,
		LicenseKey: creds.LicenseKey,
		InstanceID: creds.InstanceID,
	})
	if err == nil {
		return link.URL, nil
	}
	if errors.Is(err, context.Canceled) {
		return "", err
	}

	log.Warn().Err(err).Str("item", creds.ItemName).Msg("paid download rejected, forgetting stored license")
	if delErr := l.credentials.Delete(ctx, creds.ItemName); delErr != nil {
		log.Err(delErr).Str("item", creds.ItemName).Msg("failed to delete stored license")
	}

	report := models.ErrorReport{
		ItemName:   creds.ItemName,
		LicenseKey: creds.LicenseKey,
		InstanceID: creds.InstanceID,
	}
	if name, nameErr := l.instanceName(); nameErr == nil {
		report.InstanceName = name
	}

	return "", reportable(report, fmt.Errorf("%w: %w", ErrInstanceInvalid, err))
}

func (l *clientLicenseService) activate(ctx context.Context, item models.CatalogItem) (string, error) {
	log := logger.FromContext(ctx)

	prompt := models.TextPrompt{
		Title:       fmt.Sprintf(app.MsgEnterLicenseKey, item.DisplayTitle()),
		Placeholder: app.MsgLicenseKeyPlaceholder,
		Secret:      true,
	}
	if item.PurchaseLink != "" {
		if err := l.validator.Validate(ctx, item, validators.FieldPurchaseLink); err != nil {
			log.Warn().Err(err).Str("item", item.Name).Msg("ignoring purchase link")
		} else {
			prompt.CopyText = item.PurchaseLink
			prompt.Hint = fmt.Sprintf(app.MsgBuyLicense, item.PurchaseLink)
		}
	}

	key, err := l.prompter.PromptText(ctx, prompt)
	if err != nil {
		return "", err
	}
	if key = strings.TrimSpace(key); key == "" {
		return "", ErrLicenseKeyRequired
	}

	instanceName, err := l.instanceName()
	if err != nil {
		return "", fmt.Errorf("derive instance name: %w", err)
	}

	activation, err := l.adapter.Activate(ctx, models.ActivationRequest{
		ItemName:     item.Name,
		LicenseKey:   key,
		InstanceName: instanceName,
	})
	if err != nil {
		report := models.ErrorReport{ItemName: item.Name, LicenseKey: key, InstanceName: instanceName}
		return "", reportable(report, mapActivationError(err))
	}

	creds := models.Credentials{ItemName: item.Name, LicenseKey: key, InstanceID: activation.InstanceID}
	if err = l.credentials.Set(ctx, creds); err != nil {
		return "", fmt.Errorf("save license: %w", err)
	}

	log.Info().Str("item", item.Name).Msg("license activated")
	return activation.URL, nil
}

func (l *clientLicenseService) Forget(ctx context.Context, itemName string) error {
	if _, err := l.credentials.Get(ctx, itemName); err != nil {
		if errors.Is(err, store.ErrCredentialsNotFound) {
			return fmt.Errorf("%w: %s", ErrNoCredentials, itemName)
		}
		return err
	}

	return l.credentials.Delete(ctx, itemName)
}

func (l *clientLicenseService) Licensed(ctx context.Context) (map[string]bool, error) {
	list, err := l.credentials.List(ctx)
	if err != nil {
		return nil, err
	}

	licensed := make(map[string]bool, len(list))
	for _, creds := range list {
		licensed[creds.ItemName] = true
	}
	return licensed, nil
}
