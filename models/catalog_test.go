package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_DecodePrice(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantFree bool
		want     string
	}{
		{name: "absent", body: `{"name":"foo"}`, wantFree: true},
		{name: "null", body: `{"name":"foo","price":null}`, wantFree: true},
		{name: "string", body: `{"name":"bar","price":"10"}`, want: "10"},
		{name: "number", body: `{"name":"bar","price":12.5}`, want: "12.5"},
		{name: "zero number", body: `{"name":"foo","price":0}`, wantFree: true},
		{name: "empty string", body: `{"name":"foo","price":""}`, wantFree: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item CatalogItem
			require.NoError(t, json.Unmarshal([]byte(tt.body), &item))

			assert.Equal(t, tt.wantFree, item.IsFree())
			if !tt.wantFree {
				assert.Equal(t, tt.want, item.PriceLabel())
			} else {
				assert.Equal(t, "free", item.PriceLabel())
			}
		})
	}
}

func TestCatalog_DecodeToolsInOrder(t *testing.T) {
	body := `{"tools":[
		{"name":"b","title":"B kit","description":"second","scriptNames":["one","two"]},
		{"name":"a","title":"","price":"5","purchaseLink":"https://example.com/buy"}
	]}`

	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	require.Len(t, c.Tools, 2)

	assert.Equal(t, "b", c.Tools[0].Name)
	assert.Equal(t, []string{"one", "two"}, c.Tools[0].ScriptNames)
	assert.Equal(t, "a", c.Tools[1].DisplayTitle())
	assert.Equal(t, "https://example.com/buy", c.Tools[1].PurchaseLink)

	item, ok := c.Find("a")
	assert.True(t, ok)
	assert.False(t, item.IsFree())

	_, ok = c.Find("missing")
	assert.False(t, ok)
}

func TestChoicesFromCatalog(t *testing.T) {
	price := Price("10")
	choices := ChoicesFromCatalog([]CatalogItem{
		{Name: "foo", Title: "Foo", Description: "free kit"},
		{Name: "bar", Price: &price},
	})

	assert.Equal(t, []Choice{
		{Title: "Foo", Description: "free kit", Hint: "free"},
		{Title: "bar", Hint: "10"},
	}, choices)
}
