package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSourceLoadsSeedCatalog(t *testing.T) {
	products, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)

	first := products[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "iPhone 15 Pro Max", first.Name)
	assert.Equal(t, "Apple", first.Brand)
	assert.Equal(t, 1199.0, first.Price)
	assert.Equal(t, "electronics", first.Category)
	assert.True(t, first.IsNew)
	assert.True(t, first.RWNEligible)
	assert.Len(t, first.Sizes, 4)
	assert.Len(t, first.Colors, 4)

	// Sale items carry the original price for strike-through display.
	sony := products[2]
	require.NotNil(t, sony.OriginalPrice)
	assert.Equal(t, 449.0, *sony.OriginalPrice)
	assert.True(t, sony.IsOnSale)
}

func TestSeedCatalogHasThreeElectronics(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)

	electronics := 0
	for _, p := range products {
		if p.Category == "electronics" {
			electronics++
		}
	}
	assert.Equal(t, 3, electronics)
}

func TestLoadNavigationTree(t *testing.T) {
	tree, err := LoadNavigation()
	require.NoError(t, err)

	require.Len(t, tree.Main, 3)
	assert.Equal(t, "Womens", tree.Main[0].Label)
	assert.Equal(t, "Electronics", tree.Main[2].Label)

	// Electronics nests two levels deep.
	mobile := tree.Main[2].Children[0]
	assert.Equal(t, "Mobile", mobile.Label)
	require.NotEmpty(t, mobile.Children)
	assert.Equal(t, "/electronics/mobile/phones", mobile.Children[0].Href)

	require.Len(t, tree.Authenticated, 2)
	assert.Equal(t, "Get RWN", tree.Authenticated[0].Label)
}

func TestLoadRWNPacks(t *testing.T) {
	packs, err := LoadRWNPacks()
	require.NoError(t, err)
	require.Len(t, packs, 6)

	assert.Equal(t, int64(1000), packs[0].Tokens)
	assert.True(t, packs[3].Popular)
	assert.Equal(t, int64(250), packs[4].Bonus)
	assert.Equal(t, 500.0, packs[5].Price)
}
