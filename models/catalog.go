// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CatalogItem is a single installable kenv (toolkit) advertised by the vendor
// catalog. Items are fetched fresh on every run and never persisted.
type CatalogItem struct {
	// Name is the unique key of the item. It is used in vendor URLs, as the
	// credential store key and as the install directory name.
	Name string `json:"name"`

	// Title is the human-readable name shown in the picker.
	Title string `json:"title"`

	// Description is a short (possibly markdown) description of the item.
	Description string `json:"description"`

	// Price is nil for free items.
	Price *Price `json:"price,omitempty"`

	// PurchaseLink points to the vendor page where a license can be bought.
	PurchaseLink string `json:"purchaseLink,omitempty"`

	// ScriptNames lists the scripts bundled in the kenv.
	ScriptNames []string `json:"scriptNames,omitempty"`
}

// IsFree reports whether the item can be downloaded without a license key.
func (c CatalogItem) IsFree() bool {
	return c.Price == nil || c.Price.String() == ""
}

// DisplayTitle returns Title, falling back to Name when the vendor sent no title.
func (c CatalogItem) DisplayTitle() string {
	if strings.TrimSpace(c.Title) == "" {
		return c.Name
	}
	return c.Title
}

// PriceLabel returns "free" or the price as sent by the vendor.
func (c CatalogItem) PriceLabel() string {
	if c.IsFree() {
		return "free"
	}
	return c.Price.String()
}

// Catalog is the body of GET /api/client.
type Catalog struct {
	Tools []CatalogItem `json:"tools"`
}

// Find returns the item with the given name.
func (c Catalog) Find(name string) (CatalogItem, bool) {
	for _, item := range c.Tools {
		if item.Name == name {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// Price is the vendor price of a paid item. The vendor sends it either as a
// JSON string ("10") or as a number (10); both decode to the same value.
// A numeric zero decodes to an empty price, which marks the item as free.
type Price string

// String returns the price as text.
func (p *Price) String() string {
	if p == nil {
		return ""
	}
	return string(*p)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode price string: %w", err)
		}
		*p = Price(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode price number: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*p = ""
		return nil
	}
	*p = Price(n.String())
	return nil
}
