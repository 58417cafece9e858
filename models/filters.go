package models

// SortKey selects the comparator applied after filtering. Sorting is stable:
// products with equal keys keep their relative catalog order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a query-string value onto a known sort key, falling back
// to featured for anything unrecognised.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// ProductFilters is the full filter configuration for a catalog query.
// Every set-valued field uses empty-means-unrestricted semantics; the price
// range is always active and inclusive on both bounds.
type ProductFilters struct {
	Category    string   `json:"category"`
	PriceMin    float64  `json:"price_min"`
	PriceMax    float64  `json:"price_max"`
	Brands      []string `json:"brands"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	NewOnly     bool     `json:"new_only"`
	TrendOnly   bool     `json:"trending_only"`
	SaleOnly    bool     `json:"sale_only"`
	RWNEligible bool     `json:"rwn_eligible"`
}

// DefaultPriceCeiling matches the storefront slider's upper bound.
const DefaultPriceCeiling = 5000

// DefaultFilters is the unrestricted configuration: all categories, full
// price range, no brand/color/size restriction, no toggles.
func DefaultFilters() ProductFilters {
	return ProductFilters{PriceMax: DefaultPriceCeiling}
}

// FilterMetadata is the facet data the storefront builds its sidebar from.
type FilterMetadata struct {
	Categories []string        `json:"categories"`
	Brands     []string        `json:"brands"`
	Colors     []string        `json:"colors"`
	Sizes      []string        `json:"sizes"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// PriceRangeData is the inclusive [min, max] price span of the catalog.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
