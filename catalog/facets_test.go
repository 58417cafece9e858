package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

func TestFacetsFirstSeenOrder(t *testing.T) {
	meta := Facets(sampleCatalog())

	assert.Equal(t, []string{"electronics", "womens", "mens"}, meta.Categories)
	assert.Equal(t, []string{"Apple", "Sony", "Luxury Brand", "Fashion House", "Luxury Footwear"}, meta.Brands)

	// Colors dedupe across products, keeping first-seen order.
	assert.Equal(t, "Natural Titanium", meta.Colors[0])
	assert.Contains(t, meta.Colors, "Black")
	count := 0
	for _, c := range meta.Colors {
		if c == "Black" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFacetsPriceRange(t *testing.T) {
	meta := Facets(sampleCatalog())

	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, 280.0, meta.PriceRange.Min)
	assert.Equal(t, 2499.0, meta.PriceRange.Max)
}

func TestFacetsEmptyCatalog(t *testing.T) {
	meta := Facets(nil)

	assert.Empty(t, meta.Categories)
	assert.Empty(t, meta.Brands)
	assert.Empty(t, meta.Colors)
	assert.Empty(t, meta.Sizes)
	assert.Nil(t, meta.PriceRange)
}

func TestFacetsSingleProduct(t *testing.T) {
	meta := Facets([]models.Product{{
		ID: "1", Brand: "Apple", Category: "electronics", Price: 42,
		Colors: models.StringList{"Black"}, Sizes: models.StringList{"One Size"},
	}})

	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, 42.0, meta.PriceRange.Min)
	assert.Equal(t, 42.0, meta.PriceRange.Max)
}
