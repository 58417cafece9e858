package catalog

import (
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Facets derives the filter sidebar metadata from the catalog: distinct
// categories, brands, colors, and sizes in first-seen order, plus the
// inclusive price range. An empty catalog yields empty lists and no range.
func Facets(catalog []models.Product) models.FilterMetadata {
	meta := models.FilterMetadata{
		Categories: make([]string, 0),
		Brands:     make([]string, 0),
		Colors:     make([]string, 0),
		Sizes:      make([]string, 0),
	}

	seenCategory := map[string]bool{}
	seenBrand := map[string]bool{}
	seenColor := map[string]bool{}
	seenSize := map[string]bool{}

	for i, p := range catalog {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			meta.Brands = append(meta.Brands, p.Brand)
		}
		for _, c := range p.Colors {
			if !seenColor[c] {
				seenColor[c] = true
				meta.Colors = append(meta.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if !seenSize[s] {
				seenSize[s] = true
				meta.Sizes = append(meta.Sizes, s)
			}
		}

		if i == 0 {
			meta.PriceRange = &models.PriceRangeData{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}

	return meta
}
