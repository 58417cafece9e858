package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseStorefrontFilters maps query params onto the engine's filter
// configuration. Absent params keep the unrestricted defaults.
func parseStorefrontFilters(c *gin.Context) models.ProductFilters {
	filters := models.DefaultFilters()

	filters.Category = c.Query("category")
	filters.Brands = c.QueryArray("brand")
	filters.Colors = c.QueryArray("color")
	filters.Sizes = c.QueryArray("size")

	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			filters.PriceMin = min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			filters.PriceMax = max
		}
	}

	filters.NewOnly = c.Query("new") == "true"
	filters.TrendOnly = c.Query("trending") == "true"
	filters.SaleOnly = c.Query("sale") == "true"
	filters.RWNEligible = c.Query("rwn") == "true"

	return filters
}

// paginate slices one page out of the derived product list.
func paginate(products []models.Product, page, limit int) ([]models.Product, int) {
	total := len(products)
	start := (page - 1) * limit
	if start >= total {
		return make([]models.Product, 0), total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return products[start:end], total
}
