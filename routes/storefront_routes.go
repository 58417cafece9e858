package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/controllers/filter_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/navigation_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/product_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/rwn_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
)

// SetupStorefrontRoutes wires the public, no-auth storefront endpoints.
func SetupStorefrontRoutes(
	router *gin.RouterGroup,
	products *product_controller.Controller,
	filters *filter_controller.Controller,
	navigation *navigation_controller.Controller,
	rwn *rwn_controller.Controller,
) {
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(120, time.Minute))

	// Product routes
	productGroup := store.Group("/products")
	{
		productGroup.GET("", products.GetStorefrontProducts)
		productGroup.GET("/:id", products.GetStorefrontProductByID)
	}

	store.GET("/filters/metadata", filters.GetFilterMetadata)
	store.GET("/navigation", navigation.GetNavigation)
	store.GET("/rwn/packs", rwn.GetPacks)
}
