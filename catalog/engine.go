// Package catalog derives the visible product set from the full catalog and
// a filter/sort configuration. Everything here is pure: the input catalog is
// never mutated and a fresh slice is returned on every call.
package catalog

import (
	"sort"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Derive filters the catalog by the conjunction of every active predicate,
// then orders the survivors by the sort key. An empty catalog or a filter
// that matches nothing yields an empty slice, never an error; catalogs are
// small so the full recompute runs on every configuration change.
func Derive(catalog []models.Product, filters models.ProductFilters, sortKey models.SortKey) []models.Product {
	result := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, filters) {
			result = append(result, p)
		}
	}
	sortProducts(result, sortKey)
	return result
}

// matches applies every predicate; set-valued filters with no entries pass
// unconditionally.
func matches(p models.Product, f models.ProductFilters) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	// Price range is always active, inclusive on both bounds.
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if f.NewOnly && !p.IsNew {
		return false
	}
	if f.TrendOnly && !p.IsTrending {
		return false
	}
	if f.SaleOnly && !p.IsOnSale {
		return false
	}
	if f.RWNEligible && !p.RWNEligible {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// intersects reports whether the two lists share at least one element.
func intersects(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. Ties keep their relative input order, which
// callers rely on: featured is the identity ordering and newest only floats
// new-flagged items to the front.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// featured keeps the catalog order
	}
}
