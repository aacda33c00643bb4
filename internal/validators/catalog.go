package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/kenv-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the item name, which doubles as a directory name.
	FieldName = "name"

	// FieldPurchaseLink targets the purchase page of a paid item.
	FieldPurchaseLink = "purchase_link"

	// FieldItems targets the item list of a catalog (item names and their
	// uniqueness). Purchase links are not checked here.
	FieldItems = "items"

	// FieldLicenseKey targets the license key of stored credentials.
	FieldLicenseKey = "license_key"

	// FieldInstanceID targets the activation instance of stored credentials.
	FieldInstanceID = "instance_id"
)

type CatalogValidator struct{}

// NewCatalogValidator returns a [Validator] for catalog items, catalogs and
// credentials. Without field names every rule of the value is checked.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CatalogItem:
		return v.validateItem(ctx, value, fields...)
	case *models.CatalogItem:
		return v.validateItem(ctx, *value, fields...)

	case models.Catalog:
		return v.validateCatalog(ctx, value, fields...)
	case *models.Catalog:
		return v.validateCatalog(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateItem(_ context.Context, item models.CatalogItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPurchaseLink}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := ValidateKenvName(item.Name); err != nil {
				return err
			}
		case FieldPurchaseLink:
			if err := validatePurchaseLink(item.PurchaseLink); err != nil {
				return fmt.Errorf("%s: %w", item.Name, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *CatalogValidator) validateCatalog(ctx context.Context, catalog models.Catalog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems}
	}

	for _, field := range fields {
		if field != FieldItems {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		seen := make(map[string]struct{}, len(catalog.Tools))
		for _, item := range catalog.Tools {
			if err := v.validateItem(ctx, item, FieldName); err != nil {
				return err
			}
			if _, ok := seen[item.Name]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicateName, item.Name)
			}
			seen[item.Name] = struct{}{}
		}
	}

	return nil
}

func (v *CatalogValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLicenseKey, FieldInstanceID}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := ValidateKenvName(creds.ItemName); err != nil {
				return err
			}
		case FieldLicenseKey:
			if strings.TrimSpace(creds.LicenseKey) == "" {
				return ErrEmptyLicenseKey
			}
		case FieldInstanceID:
			if strings.TrimSpace(creds.InstanceID) == "" {
				return ErrEmptyInstanceID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidateKenvName accepts names usable as a single directory name.
func ValidateKenvName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrEmptyName
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q", ErrHiddenName, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q", ErrPathInName, name)
	}
	return nil
}

// validatePurchaseLink accepts an empty link or an absolute http(s) URL.
func validatePurchaseLink(link string) error {
	if link == "" {
		return nil
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPurchaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPurchaseURL, link)
	}
	return nil
}
