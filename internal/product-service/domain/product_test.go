package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"12.50", "12.5"},
		{"$12.50", "12.5"},
		{"$1,299.99", "1299.99"},
		{" 7 USD", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, raw := range []string{"", "free", "1.2.3"} {
		_, err := ParsePrice(raw)
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)
	}
}

func TestLoadCatalog(t *testing.T) {
	const doc = `[
		{"id": "p-1", "pid": "SKU-1", "name": "Widget", "price_per_unit": "$10.25"},
		{"id": "p-2", "pid": "SKU-2", "name": "Gadget", "price_per_unit": "3"}
	]`

	catalog, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	p, err := catalog.Lookup("SKU-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "10.25", p.PricePerUnit.StringFixed(2))

	_, err = catalog.Lookup("SKU-9")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`{`))
	assert.Error(t, err)

	_, err = LoadCatalog(strings.NewReader(`[{"id": "p-1", "price_per_unit": "1"}]`))
	assert.ErrorContains(t, err, "missing pid")

	_, err = LoadCatalog(strings.NewReader(`[{"id": "p-1", "pid": "A", "price_per_unit": "n/a"}]`))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
