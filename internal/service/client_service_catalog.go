package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/validators"
	"github.com/MKhiriev/kenv-keeper/models"
)

type clientCatalogService struct {
	adapter   adapter.VendorAdapter
	prompter  Prompter
	validator validators.Validator
}

func NewClientCatalogService(vendor adapter.VendorAdapter, prompter Prompter, validator validators.Validator) CatalogService {
	return &clientCatalogService{adapter: vendor, prompter: prompter, validator: validator}
}

func (c *clientCatalogService) List(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := c.adapter.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", mapAdapterError(err))
	}

	if err = c.validator.Validate(ctx, models.Catalog{Tools: items}); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("catalog has invalid items, skipping them")
		return c.validItems(ctx, items), nil
	}

	return items, nil
}

// validItems drops items whose name cannot be installed, keeping the first
// of duplicated names.
func (c *clientCatalogService) validItems(ctx context.Context, items []models.CatalogItem) []models.CatalogItem {
	log := logger.FromContext(ctx)

	valid := make([]models.CatalogItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := c.validator.Validate(ctx, item, validators.FieldName); err != nil {
			log.Debug().Err(err).Str("item", item.Name).Msg("skipping catalog item")
			continue
		}
		if _, ok := seen[item.Name]; ok {
			log.Debug().Str("item", item.Name).Msg("skipping duplicated catalog item")
			continue
		}
		seen[item.Name] = struct{}{}
		valid = append(valid, item)
	}
	return valid
}

func (c *clientCatalogService) Select(ctx context.Context, name string) (models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	items, err := c.List(ctx)
	if err != nil {
		return models.CatalogItem{}, err
	}

	if name = strings.TrimSpace(name); name != "" {
		item, ok := models.Catalog{Tools: items}.Find(name)
		if !ok {
			return models.CatalogItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, name)
		}
		return item, nil
	}

	if len(items) == 0 {
		return models.CatalogItem{}, ErrEmptyCatalog
	}

	idx, err := c.prompter.Choose(ctx, app.MsgChooseKenv, models.ChoicesFromCatalog(items))
	if err != nil {
		return models.CatalogItem{}, err
	}
	if idx < 0 || idx >= len(items) {
		return models.CatalogItem{}, fmt.Errorf("picker returned index %d of %d items", idx, len(items))
	}

	log.Debug().Str("item", items[idx].Name).Bool("free", items[idx].IsFree()).Msg("kenv selected")
	return items[idx], nil
}
