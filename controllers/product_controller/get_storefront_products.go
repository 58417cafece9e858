package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Retrieve products with optional category, brand, colour, size, price range, flag toggles, and sorting.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category (empty = all)"
// @Param brand query []string false "Brands (repeatable)"
// @Param color query []string false "Colours (repeatable)"
// @Param size query []string false "Sizes (repeatable)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param new query bool false "New arrivals only"
// @Param trending query bool false "Trending only"
// @Param sale query bool false "On sale only"
// @Param rwn query bool false "RWN-eligible only"
// @Param sortBy query string false "Sort key (featured, newest, price-low, price-high, rating)" default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func (ctrl *Controller) GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	filters := parseStorefrontFilters(c)
	sortKey := models.ParseSortKey(c.DefaultQuery("sortBy", "featured"))

	all, err := ctrl.source.Load(c.Request.Context())
	if err != nil {
		log.Printf("ERROR loading catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	derived := catalog.Derive(all, filters, sortKey)
	pageItems, totalCount := paginate(derived, page, limit)
	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		pageItems,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
