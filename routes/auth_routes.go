package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/controllers/auth_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/rwn_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
)

// SetupAuthRoutes wires the mocked login/register flow and the
// authenticated-only RWN purchase.
func SetupAuthRoutes(router *gin.RouterGroup, auths *auth_controller.Controller, rwn *rwn_controller.Controller) {
	authGroup := router.Group("/auth")
	authGroup.Use(middleware.OptionalAuthMiddleware(), middleware.SessionMiddleware())
	{
		authGroup.POST("/login", middleware.RateLimiter(10, time.Minute), auths.Login)
		authGroup.POST("/register", middleware.RateLimiter(10, time.Minute), auths.Register)
		authGroup.POST("/logout", auths.Logout)
	}

	me := router.Group("/auth")
	me.Use(middleware.AuthMiddleware(), middleware.SessionMiddleware())
	{
		me.GET("/me", auths.GetMe)
	}

	purchase := router.Group("/rwn")
	purchase.Use(middleware.AuthMiddleware(), middleware.SessionMiddleware())
	{
		purchase.POST("/purchase", rwn.PurchasePack)
	}
}
