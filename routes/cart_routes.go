package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/controllers/cart_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
)

// SetupCartRoutes wires the session cart. Guests get a session cookie; an
// authenticated token binds the cart to the login session instead.
func SetupCartRoutes(router *gin.RouterGroup, carts *cart_controller.Controller) {
	cart := router.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(), middleware.SessionMiddleware())
	{
		cart.GET("", carts.GetCart)
		cart.DELETE("", carts.ClearCart)
		cart.POST("/items", carts.AddItem)
		cart.PATCH("/items", carts.UpdateItem)
		cart.DELETE("/items", carts.RemoveItem)
		cart.POST("/toggle", carts.ToggleCart)
	}
}
